// Package metric is the string-level surface over the alignment engine:
// a StringMetric interface, input simplifiers, a logging decorator and
// best-match search for fuzzy lookup and record linkage.
//
//	m := metric.Simplify(needleman.Default(), metric.CaseFold, metric.NFC)
//	best, ok := metric.BestMatch(m, "jon smith", names, 0.8)
package metric
