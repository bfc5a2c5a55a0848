package main

import (
	"github.com/spf13/cobra"

	"lazily/seqs"
)

func newEnumerateCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:     "enumerate LIST",
		Aliases: []string{"enum"},
		Short:   "Tag every element of a list with its zero-based position.",
		Example: `  lazily enumerate A,B,C`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newInvocation(cfg, cmd)
			in, err := r.inputs(args)
			if err != nil {
				return err
			}
			rows, err := asRows(seqs.Enumerate(in[0]))
			if err != nil {
				return err
			}
			return r.emit([]string{"index", "value"}, rows)
		},
	}
}
