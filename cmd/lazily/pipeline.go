package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"lazily/internal/logging"
	"lazily/seqmetrics"
	"lazily/seqs"
)

var ordinals = []string{"first", "second", "third", "fourth", "fifth", "sixth"}

// tuple is satisfied by every tuple type in lazily/tuples.
type tuple interface {
	Values() []any
}

// invocation is one run of a subcommand. Its counters start from zero.
type invocation struct {
	cfg    *config
	rec    *seqmetrics.Recorder
	out    io.Writer
	errOut io.Writer
}

func newInvocation(cfg *config, cmd *cobra.Command) *invocation {
	return &invocation{
		cfg:    cfg,
		rec:    seqmetrics.NewRecorder(),
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
}

// inputs parses the LIST arguments and instruments each under its 1-based
// position.
func (r *invocation) inputs(args []string) ([]seqs.Sequence[string], error) {
	ls, err := parseLists(args)
	if err != nil {
		return nil, err
	}
	out := make([]seqs.Sequence[string], len(ls))
	for i, l := range ls {
		if out[i], err = seqmetrics.Instrument[string](r.rec, fmt.Sprintf("input%d", i+1), l); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func asRows[T tuple](s seqs.Sequence[T], err error) (seqs.Sequence[[]any], error) {
	if err != nil {
		return nil, err
	}
	return seqs.Map(s, func(t T) []any { return t.Values() })
}

// emit applies the row limit, renders and optionally dumps the counters.
func (r *invocation) emit(headers []string, rows seqs.Sequence[[]any]) error {
	out, err := newRenderer(r.cfg.Output, r.out)
	if err != nil {
		return err
	}
	if r.cfg.Limit > 0 {
		if rows, err = seqs.Take(rows, r.cfg.Limit); err != nil {
			return err
		}
	}
	if rows, err = seqmetrics.Instrument(r.rec, "output", rows); err != nil {
		return err
	}

	if err := out.render(headers, rows); err != nil {
		return err
	}
	logging.Debug().Strs("columns", headers).Msg("rendered")

	if r.cfg.Metrics {
		return r.dumpMetrics()
	}
	return nil
}

func (r *invocation) dumpMetrics() error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(r.rec); err != nil {
		return err
	}
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(r.errOut, mf); err != nil {
			return err
		}
	}
	return nil
}
