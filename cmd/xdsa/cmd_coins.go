package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xdsa/coins"
	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/xlog"
)

// maxNaiveTarget keeps the exponential solver within seconds.
const maxNaiveTarget = 50

func (c *cli) coinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Minimum coin change",
	}
	cmd.PersistentFlags().IntSlice("denoms", nil, "coin denominations, overrides coins.denominations")
	cmd.PersistentFlags().String("store", "", "memo store: map, redis or sqlite")
	lo.Must0(c.vi.BindPFlag("coins.denominations", cmd.PersistentFlags().Lookup("denoms")))
	lo.Must0(c.vi.BindPFlag("coins.store", cmd.PersistentFlags().Lookup("store")))

	cmd.AddCommand(c.coinsSolveCmd())
	cmd.AddCommand(c.coinsSweepCmd())
	return cmd
}

func parseTarget(arg string) (int, error) {
	target, err := strconv.Atoi(arg)
	if err != nil {
		return 0, infra.WrapErrorStackWithMessage(err, fmt.Sprintf("[coins] target %q", arg))
	}
	return target, nil
}

func formatResult(strategy coins.Strategy, res coins.Result) string {
	var b strings.Builder
	b.WriteString(string(strategy))
	b.WriteString(": ")
	if res.Reachable {
		fmt.Fprintf(&b, "count=%d", res.Count)
	} else {
		b.WriteString("count=unreachable")
	}
	fmt.Fprintf(&b, " calls=%d memo=%d", res.Calls, res.MemoEntries)
	if len(res.Coins) > 0 {
		fmt.Fprintf(&b, " coins=%v", res.Coins)
	}
	return b.String()
}

func (c *cli) coinsSolveCmd() *cobra.Command {
	var strategy string
	cmd := &cobra.Command{
		Use:   "solve <target>",
		Short: "Solve one target with the chosen strategies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseTarget(args[0])
			if err != nil {
				return err
			}
			return runWith(c, cmd.Context(), func(ctx context.Context, deps coinsDeps) error {
				denoms := deps.Config.Coins.Denominations
				logger := deps.Logger.Named("Coins")
				opts := []coins.SolveOption{coins.WithLogger(logger)}

				var strategies []coins.Strategy
				switch s := coins.Strategy(strings.ToLower(strategy)); s {
				case "all":
					strategies = []coins.Strategy{coins.StrategyNaive, coins.StrategyMemoized, coins.StrategyTabulated}
				case coins.StrategyNaive, coins.StrategyMemoized, coins.StrategyTabulated:
					strategies = []coins.Strategy{s}
				default:
					return infra.NewErrorStack(fmt.Sprintf("[coins] unknown strategy %q", strategy))
				}

				out := cmd.OutOrStdout()
				for _, s := range strategies {
					var (
						res coins.Result
						err error
					)
					switch s {
					case coins.StrategyNaive:
						if target > maxNaiveTarget {
							if len(strategies) == 1 {
								return infra.NewErrorStack(fmt.Sprintf("[coins] naive target %d exceeds %d", target, maxNaiveTarget))
							}
							logger.Warn("naive strategy skipped", zap.Int("target", target))
							continue
						}
						res, err = coins.Naive(denoms, target, opts...)
					case coins.StrategyMemoized:
						res, err = coins.Memoized(ctx, denoms, target, append(opts, coins.WithMemoStore(deps.Store))...)
					case coins.StrategyTabulated:
						res, err = coins.Tabulated(denoms, target, opts...)
					}
					if err != nil {
						return err
					}
					fmt.Fprintln(out, formatResult(s, res))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "all", "naive, memoized, tabulated or all")
	return cmd
}

func (c *cli) coinsSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep <from> <to>",
		Short: "Solve every target of a range concurrently, cross-checking memoized and tabulated",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseTarget(args[0])
			if err != nil {
				return err
			}
			to, err := parseTarget(args[1])
			if err != nil {
				return err
			}
			if from < 0 || to < from {
				return infra.NewErrorStack(fmt.Sprintf("[coins] sweep range %d..%d", from, to))
			}
			return runWith(c, cmd.Context(), func(ctx context.Context, deps coinsDeps) error {
				results, err := sweep(ctx, deps, from, to, crossCheck(deps))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				unreachable := 0
				for i, res := range results {
					if !res.Reachable {
						unreachable++
						fmt.Fprintf(out, "%d: unreachable\n", from+i)
						continue
					}
					fmt.Fprintf(out, "%d: %d %v\n", from+i, res.Count, res.Coins)
				}
				fmt.Fprintf(out, "swept %d targets, %d unreachable\n", len(results), unreachable)
				return nil
			})
		},
	}
	cmd.Flags().Int("workers", 0, "worker pool size, overrides sweep.workers")
	lo.Must0(c.vi.BindPFlag("sweep.workers", cmd.Flags().Lookup("workers")))
	return cmd
}

// sweepFunc solves a single target of a sweep.
type sweepFunc func(ctx context.Context, target int) (coins.Result, error)

// crossCheck runs one memoized and one tabulated solve of target. Every
// solve owns its state, only the memo store is shared.
func crossCheck(deps coinsDeps) sweepFunc {
	logger := deps.Logger.Named("Sweep")
	denoms := deps.Config.Coins.Denominations
	return func(ctx context.Context, target int) (coins.Result, error) {
		memo, err := coins.Memoized(ctx, denoms, target,
			coins.WithMemoStore(deps.Store),
			coins.WithLogger(logger),
		)
		if err != nil {
			return coins.Result{}, err
		}
		tab, err := coins.Tabulated(denoms, target, coins.WithLogger(logger))
		if err != nil {
			return coins.Result{}, err
		}
		if memo.Count != tab.Count {
			return coins.Result{}, infra.NewErrorStack(fmt.Sprintf("[coins] target %d memoized %d tabulated %d", target, memo.Count, tab.Count))
		}
		return tab, nil
	}
}

// sweep runs solve for every target of from..to on an ants pool. A panicking
// task fails the sweep instead of leaving a zero result behind.
func sweep(ctx context.Context, deps coinsDeps, from, to int, solve sweepFunc) ([]coins.Result, error) {
	logger := deps.Logger.Named("Sweep")
	results := make([]coins.Result, to-from+1)
	var (
		wg   sync.WaitGroup
		lock sync.Mutex
		errs error
	)
	appendErr := func(err error) {
		lock.Lock()
		defer lock.Unlock()
		errs = multierr.Append(errs, err)
	}
	pool, err := ants.NewPool(deps.Config.Sweep.Workers,
		ants.WithLogger(xlog.NewAntsXLogger(deps.Logger)),
		ants.WithPanicHandler(func(p any) {
			// A panicking task never reaches its own wg.Done.
			defer wg.Done()
			appendErr(infra.NewErrorStack(fmt.Sprintf("[coins] sweep task panic: %v", p)))
		}),
	)
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[coins] sweep pool")
	}
	defer pool.Release()

	for target := from; target <= to; target++ {
		wg.Add(1)
		err := pool.Submit(func() {
			res, err := solve(ctx, target)
			if err != nil {
				appendErr(err)
			} else {
				results[target-from] = res
			}
			wg.Done()
		})
		if err != nil {
			wg.Done()
			appendErr(infra.WrapErrorStackWithMessage(err, fmt.Sprintf("[coins] submit %d", target)))
		}
	}
	wg.Wait()
	if errs != nil {
		logger.ErrorStack(errs, "sweep failed", zap.Int("failures", len(multierr.Errors(errs))))
		return nil, errs
	}
	logger.Info("sweep done", zap.Int("from", from), zap.Int("to", to))
	return results, nil
}
