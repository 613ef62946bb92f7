package coins

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/xlog"
)

var (
	ErrInvalidTarget        = errors.New("target must not be negative")
	ErrInvalidDenominations = errors.New("denominations must be non-empty and positive")
)

type Strategy string

const (
	StrategyNaive     Strategy = "naive"
	StrategyMemoized  Strategy = "memoized"
	StrategyTabulated Strategy = "tabulated"
)

// unreachable marks an amount no combination of coins can pay.
const unreachable = -1

// Result of one top-level solve.
type Result struct {
	// Count is the minimum number of coins, -1 when the target is unreachable.
	Count     int
	Reachable bool
	// Coins is one optimal combination in descending order, tabulation only.
	Coins []int
	// Calls counts recursive invocations for the top-down strategies and
	// table relaxations for tabulation.
	Calls int64
	// MemoEntries is the number of memo (or table) slots this solve filled.
	// Entries a shared memo store already held are not counted.
	MemoEntries int
}

func newResult(count int) Result {
	return Result{Count: count, Reachable: count != unreachable}
}

// normalize validates and returns a sorted copy without duplicates.
func normalize(denoms []int, target int) ([]int, error) {
	if target < 0 {
		return nil, infra.WrapErrorStackWithMessage(ErrInvalidTarget, fmt.Sprintf("[coins] target %d", target))
	}
	if len(denoms) == 0 {
		return nil, infra.WrapErrorStackWithMessage(ErrInvalidDenominations, "[coins] no denominations")
	}
	sorted := slices.Clone(denoms)
	sort.Ints(sorted)
	if sorted[0] <= 0 {
		return nil, infra.WrapErrorStackWithMessage(ErrInvalidDenominations, fmt.Sprintf("[coins] coin %d", sorted[0]))
	}
	return slices.Compact(sorted), nil
}

type solveOptions struct {
	logger xlog.XLogger
	store  MemoStore
	stats  *solverStats
}

type SolveOption func(*solveOptions)

func WithLogger(logger xlog.XLogger) SolveOption {
	return func(opts *solveOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMemoStore replaces the per call map of Memoized. The other strategies
// ignore it.
func WithMemoStore(store MemoStore) SolveOption {
	return func(opts *solveOptions) {
		opts.store = store
	}
}

func newSolveOptions(opts []SolveOption) *solveOptions {
	o := &solveOptions{
		logger: xlog.NewNopXLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.stats == nil {
		o.stats = newSolverStats(nil)
	}
	return o
}

func (o *solveOptions) done(ctx context.Context, strategy Strategy, target int, res Result, begin time.Time) {
	o.stats.record(ctx, strategy, res)
	o.logger.DebugContext(ctx, "coin change solved",
		zap.String("strategy", string(strategy)),
		zap.Int("target", target),
		zap.Int("count", res.Count),
		zap.Int64("calls", res.Calls),
		zap.Int("memoEntries", res.MemoEntries),
		zap.Duration("elapsed", time.Since(begin)),
	)
}

// Naive is plain top-down recursion without any cache. The work grows
// exponentially with the target.
func Naive(denoms []int, target int, opts ...SolveOption) (Result, error) {
	sorted, err := normalize(denoms, target)
	if err != nil {
		return Result{}, err
	}
	o := newSolveOptions(opts)
	begin := time.Now()
	var calls int64
	var solve func(amount int) int
	solve = func(amount int) int {
		calls++
		if amount == 0 {
			return 0
		}
		if _, ok := slices.BinarySearch(sorted, amount); ok {
			return 1
		}
		best := unreachable
		for _, coin := range sorted {
			if coin > amount {
				break
			}
			if sub := solve(amount - coin); sub != unreachable && (best == unreachable || sub+1 < best) {
				best = sub + 1
			}
		}
		return best
	}
	res := newResult(solve(target))
	res.Calls = calls
	o.done(context.Background(), StrategyNaive, target, res, begin)
	return res, nil
}

// memoState lives for exactly one Memoized call.
type memoState struct {
	ctx    context.Context
	denoms []int
	store  MemoStore
	scope  string
	calls  int64
	stored int
}

func (s *memoState) minCoins(amount int) (int, error) {
	s.calls++
	if amount == 0 {
		return 0, nil
	}
	if err := s.ctx.Err(); err != nil {
		return 0, infra.WrapErrorStackWithMessage(err, "[coins] memoized")
	}
	if count, ok, err := s.store.Load(s.ctx, s.scope, amount); err != nil {
		return 0, err
	} else if ok {
		return count, nil
	}
	best := unreachable
	for _, coin := range s.denoms {
		if coin > amount {
			break
		}
		sub, err := s.minCoins(amount - coin)
		if err != nil {
			return 0, err
		}
		if sub != unreachable && (best == unreachable || sub+1 < best) {
			best = sub + 1
		}
	}
	if err := s.store.Store(s.ctx, s.scope, amount, best); err != nil {
		return 0, err
	}
	s.stored++
	return best, nil
}

// Memoized is top-down recursion that caches every visited amount. Only the
// amounts reachable from target by subtracting coins are filled. The memo
// store is scoped by the denominations, a shared store never mixes answers
// of different coin sets.
func Memoized(ctx context.Context, denoms []int, target int, opts ...SolveOption) (Result, error) {
	sorted, err := normalize(denoms, target)
	if err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := newSolveOptions(opts)
	begin := time.Now()
	state := &memoState{
		ctx:    ctx,
		denoms: sorted,
		store:  o.store,
		scope:  Scope(sorted),
	}
	if state.store == nil {
		state.store = NewMapMemoStore()
	}
	count, err := state.minCoins(target)
	if err != nil {
		return Result{}, err
	}
	res := newResult(count)
	res.Calls = state.calls
	res.MemoEntries = state.stored
	o.done(ctx, StrategyMemoized, target, res, begin)
	return res, nil
}

// Tabulated fills a dense table for 0..target bottom-up without recursion
// and reconstructs one optimal combination from the last coin of each slot.
func Tabulated(denoms []int, target int, opts ...SolveOption) (Result, error) {
	sorted, err := normalize(denoms, target)
	if err != nil {
		return Result{}, err
	}
	o := newSolveOptions(opts)
	begin := time.Now()
	minCoins := make([]int, target+1)
	lastCoin := make([]int, target+1)
	var relaxations int64
	for amount := 1; amount <= target; amount++ {
		minCoins[amount] = unreachable
		for _, coin := range sorted {
			if coin > amount {
				break
			}
			relaxations++
			sub := minCoins[amount-coin]
			if sub != unreachable && (minCoins[amount] == unreachable || sub+1 < minCoins[amount]) {
				minCoins[amount] = sub + 1
				lastCoin[amount] = coin
			}
		}
	}
	res := newResult(minCoins[target])
	res.Calls = relaxations
	res.MemoEntries = len(minCoins)
	if res.Reachable {
		res.Coins = make([]int, 0, res.Count)
		for amount := target; amount > 0; amount -= lastCoin[amount] {
			res.Coins = append(res.Coins, lastCoin[amount])
		}
		sort.Sort(sort.Reverse(sort.IntSlice(res.Coins)))
	}
	o.done(context.Background(), StrategyTabulated, target, res, begin)
	return res, nil
}
