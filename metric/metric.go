package metric

// StringMetric scores the similarity of two strings in [0, 1] where 1 means
// identical. *needleman.NeedlemanWunsch satisfies it.
type StringMetric interface {
	Compare(a, b string) float64
}

// Func adapts a plain function to StringMetric.
type Func func(a, b string) float64

// Compare implements StringMetric.
func (f Func) Compare(a, b string) float64 {
	return f(a, b)
}
