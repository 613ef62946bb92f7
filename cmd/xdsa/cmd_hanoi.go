package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/benz9527/xdsa/hanoi"
	"github.com/benz9527/xdsa/lib/infra"
)

func (c *cli) hanoiCmd() *cobra.Command {
	var from, to, via string
	var quiet bool
	cmd := &cobra.Command{
		Use:   "hanoi <disks>",
		Short: "Print the moves of the Tower of Hanoi",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return infra.WrapErrorStackWithMessage(err, fmt.Sprintf("[hanoi] disks %q", args[0]))
			}
			return runWith(c, cmd.Context(), func(ctx context.Context, deps loggerDeps) error {
				out := cmd.OutOrStdout()
				opts := []hanoi.SolveOption{hanoi.WithLogger(deps.Logger.Named("Hanoi"))}
				if !quiet {
					opts = append(opts, hanoi.WithMoveHook(func(m hanoi.Move, _ *hanoi.Tower) {
						fmt.Fprintln(out, m.String())
					}))
				}
				moves, err := hanoi.Solve(n, from, to, via, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "moves: %d\n", len(moves))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "A", "source peg")
	cmd.Flags().StringVar(&to, "to", "C", "target peg")
	cmd.Flags().StringVar(&via, "via", "B", "spare peg")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print the move count only")
	return cmd
}
