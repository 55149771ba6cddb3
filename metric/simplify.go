package metric

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Simplifier rewrites an input before it is compared.
type Simplifier func(string) string

// Lower maps to lower case with strings.ToLower.
func Lower(s string) string {
	return strings.ToLower(s)
}

// CaseFold applies Unicode full case folding ("Straße" and "STRASSE" fold alike).
func CaseFold(s string) string {
	// Casers carry state; one per call keeps CaseFold safe for concurrent use.
	return cases.Fold().String(s)
}

// NFC composes combining sequences so "é" and "é" become one symbol.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// CollapseSpace trims the input and replaces every whitespace run with one space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// simplified applies simplifiers to both inputs before delegating.
type simplified struct {
	metric      StringMetric
	simplifiers []Simplifier
}

// Simplify wraps m so that both inputs pass through simplifiers, in order.
// With no simplifiers m is returned unchanged.
func Simplify(m StringMetric, simplifiers ...Simplifier) StringMetric {
	if len(simplifiers) == 0 {
		return m
	}
	return &simplified{metric: m, simplifiers: simplifiers}
}

// Compare implements StringMetric.
func (s *simplified) Compare(a, b string) float64 {
	for _, fn := range s.simplifiers {
		a, b = fn(a), fn(b)
	}
	return s.metric.Compare(a, b)
}

func (s *simplified) String() string {
	return fmt.Sprintf("%v [simplifiers=%d]", s.metric, len(s.simplifiers))
}

// simplifiers maps configuration names to simplifiers.
var simplifiers = map[string]Simplifier{
	"lower": Lower,
	"fold":  CaseFold,
	"nfc":   NFC,
	"space": CollapseSpace,
}

// SimplifierByName returns the simplifier registered under a configuration
// name: "lower", "fold", "nfc" or "space".
func SimplifierByName(name string) (Simplifier, bool) {
	fn, ok := simplifiers[name]
	return fn, ok
}
