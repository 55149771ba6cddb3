// SPDX-License-Identifier: MIT

package substitution

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// tableFile is the YAML shape of a Table.
type tableFile struct {
	Match      *float64   `yaml:"match"`
	Mismatch   *float64   `yaml:"mismatch"`
	Asymmetric bool       `yaml:"asymmetric"`
	Pairs      []pairFile `yaml:"pairs"`
}

type pairFile struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

// LoadTable decodes a YAML table definition from r.
// Missing match/mismatch keys default to the values of Default().
// Unknown keys are rejected.
func LoadTable(r io.Reader) (*Table, error) {
	var tf tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("substitution: empty table definition")
		}
		return nil, fmt.Errorf("substitution: decode table: %w", err)
	}

	def := Default()
	match, mismatch := def.Match, def.Mismatch
	if tf.Match != nil {
		match = *tf.Match
	}
	if tf.Mismatch != nil {
		mismatch = *tf.Mismatch
	}

	entries := make([]Entry, 0, len(tf.Pairs))
	for idx, p := range tf.Pairs {
		from, ok := singleRune(p.From)
		if !ok {
			return nil, fmt.Errorf("substitution: pair %d from=%q: %w", idx, p.From, ErrBadEntry)
		}
		to, ok := singleRune(p.To)
		if !ok {
			return nil, fmt.Errorf("substitution: pair %d to=%q: %w", idx, p.To, ErrBadEntry)
		}
		entries = append(entries, Entry{From: from, To: to, Cost: p.Cost})
	}

	return NewTable(match, mismatch, !tf.Asymmetric, entries...)
}

// LoadTableFile reads a YAML table definition from path.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("substitution: open table: %w", err)
	}
	defer f.Close()

	t, err := LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// singleRune returns the only rune of s.
func singleRune(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, r != utf8.RuneError
}
