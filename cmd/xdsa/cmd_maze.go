package main

import (
	"bufio"
	"context"
	"fmt"

	"github.com/google/safeopen"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/maze"
)

const maxMazeLine = 1 << 20

func (c *cli) mazeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maze <file>",
		Short: "Find a way out of a maze file",
		Long:  "Reads a maze beneath maze.dir, one row per line: S start, + wall, space or . open.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWith(c, cmd.Context(), func(ctx context.Context, deps loggerDeps) error {
				m, err := readMaze(deps.Config.Maze.Dir, args[0])
				if err != nil {
					return err
				}
				search := maze.Search
				if deps.Config.Maze.Iterative {
					search = maze.SearchIterative
				}
				visits := 0
				found := search(m,
					maze.WithLogger(deps.Logger.Named("Maze")),
					maze.WithVisitHook(func(maze.Point, rune) { visits++ }),
				)
				deps.Logger.InfoContext(ctx, "maze searched",
					zap.String("file", args[0]),
					zap.Bool("found", found),
					zap.Int("marks", visits),
				)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "found: %t\n", found)
				if found {
					fmt.Fprintf(out, "path: %d cells\n", len(m.Path()))
				}
				fmt.Fprintln(out, m.String())
				return nil
			})
		},
	}
	cmd.Flags().Bool("iterative", false, "search with an explicit stack instead of recursion")
	lo.Must0(c.vi.BindPFlag("maze.iterative", cmd.Flags().Lookup("iterative")))
	return cmd
}

// readMaze refuses names escaping dir.
func readMaze(dir, name string) (*maze.Maze, error) {
	f, err := safeopen.OpenBeneath(dir, name)
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, fmt.Sprintf("[maze] open %s", name))
	}
	defer func() { _ = f.Close() }()

	lines := make([]string, 0, 32)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxMazeLine)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, fmt.Sprintf("[maze] read %s", name))
	}
	return maze.Parse(lines)
}
