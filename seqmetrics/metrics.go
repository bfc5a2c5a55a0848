// Package seqmetrics counts traversal activity on sequence definitions with
// Prometheus counters.
package seqmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"lazily/cursors"
	"lazily/seqs"
)

// Recorder holds the counter vectors. It is a prometheus.Collector.
type Recorder struct {
	opened   *prometheus.CounterVec
	produced *prometheus.CounterVec
}

// NewRecorder returns a recorder with zeroed counters. Register it with a
// prometheus.Registerer to expose them.
func NewRecorder() *Recorder {
	return &Recorder{
		opened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lazily",
			Name:      "cursors_opened_total",
			Help:      "Number of cursors requested from an instrumented sequence.",
		}, []string{"sequence"}),
		produced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lazily",
			Name:      "elements_produced_total",
			Help:      "Number of elements successfully produced by cursors of an instrumented sequence.",
		}, []string{"sequence"}),
	}
}

func (r *Recorder) Describe(ch chan<- *prometheus.Desc) {
	r.opened.Describe(ch)
	r.produced.Describe(ch)
}

func (r *Recorder) Collect(ch chan<- prometheus.Metric) {
	r.opened.Collect(ch)
	r.produced.Collect(ch)
}

// Instrument wraps s so that its cursors are counted by r under name.
// The wrapped cursors behave exactly like the cursors they wrap, including Remove
// and Close. A nil s is rejected with seqs.ErrNilUpstream.
func Instrument[T any](r *Recorder, name string, s seqs.Sequence[T]) (seqs.Sequence[T], error) {
	if err := seqs.RequireUpstream("instrument "+name, s); err != nil {
		return nil, err
	}
	opened := r.opened.WithLabelValues(name)
	produced := r.produced.WithLabelValues(name)
	return seqs.Func[T](func() cursors.Cursor[T] {
		opened.Inc()
		return &countingCursor[T]{Cursor: s.Cursor(), produced: produced}
	}), nil
}

type countingCursor[T any] struct {
	cursors.Cursor[T]
	produced prometheus.Counter
}

func (c *countingCursor[T]) Next() (T, error) {
	v, err := c.Cursor.Next()
	if err == nil {
		c.produced.Inc()
	}
	return v, err
}

func (c *countingCursor[T]) Close() error {
	return cursors.Close(c.Cursor)
}
