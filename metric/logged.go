package metric

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// logged reports every comparison to an hclog.Logger at Trace level.
type logged struct {
	metric StringMetric
	logger hclog.Logger
}

// WithLogger wraps m so each Compare call is logged with its inputs and score.
// A nil logger discards output.
func WithLogger(m StringMetric, logger hclog.Logger) StringMetric {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &logged{metric: m, logger: logger}
}

// Compare implements StringMetric.
func (l *logged) Compare(a, b string) float64 {
	score := l.metric.Compare(a, b)
	if l.logger.IsTrace() {
		l.logger.Trace("compare", "metric", fmt.Sprint(l.metric), "a", a, "b", b, "score", score)
	}
	return score
}

func (l *logged) String() string {
	return fmt.Sprint(l.metric)
}
