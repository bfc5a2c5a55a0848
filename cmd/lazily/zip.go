package main

import (
	"github.com/spf13/cobra"

	"lazily/seqs"
)

func newZipCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "zip LIST LIST [LIST...]",
		Short: "Pair up corresponding elements of 2 to 6 lists, stopping at the shortest.",
		Example: `  lazily zip A,B,C,D 1,2,3
  lazily zip -o json @names.txt @ages.txt`,
		Args: cobra.RangeArgs(2, len(ordinals)),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newInvocation(cfg, cmd)
			in, err := r.inputs(args)
			if err != nil {
				return err
			}
			rows, err := zipRows(in)
			if err != nil {
				return err
			}
			return r.emit(ordinals[:len(args)], rows)
		},
	}
}

func zipRows(in []seqs.Sequence[string]) (seqs.Sequence[[]any], error) {
	switch len(in) {
	case 2:
		return asRows(seqs.Zip2(in[0], in[1]))
	case 3:
		return asRows(seqs.Zip3(in[0], in[1], in[2]))
	case 4:
		return asRows(seqs.Zip4(in[0], in[1], in[2], in[3]))
	case 5:
		return asRows(seqs.Zip5(in[0], in[1], in[2], in[3], in[4]))
	default:
		return asRows(seqs.Zip6(in[0], in[1], in[2], in[3], in[4], in[5]))
	}
}
