package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xdsa/coins"
	"github.com/benz9527/xdsa/xlog"
)

const textbookMaze = `++++++++++++++++++++++
+   +   ++ ++        +
      +     ++++++++++
+ +    ++  ++++ +++ ++
+ +   + + ++    +++  +
+          ++  ++  + +
+++++ + +      ++  + +
+++++ +++  + +  ++   +
+          + + S+ +  +
+++++ +  + + +     + +
++++++++++++++++++++++
`

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xdsa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	root := newRootCmd(out, zapcore.Lock(zapcore.AddSync(logs)))
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestConfig_Defaults(t *testing.T) {
	cfg, err := readInConfig(newViper(), writeConfig(t, "log:\n  level: error\n"))
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
	require.Equal(t, []int{1, 5, 10, 25}, cfg.Coins.Denominations)
	require.Equal(t, "map", cfg.Coins.Store)
	require.Equal(t, "none", cfg.Metrics.Exporter)
	require.Equal(t, 4, cfg.Sweep.Workers)
	require.False(t, cfg.Maze.Iterative)
}

func TestConfig_EnvOverride(t *testing.T) {
	t.Setenv("XDSA_COINS_DENOMINATIONS", "5,10")
	t.Setenv("XDSA_SWEEP_WORKERS", "2")
	cfg, err := readInConfig(newViper(), writeConfig(t, "coins:\n  denominations: [1, 2]\n"))
	require.NoError(t, err)
	require.Equal(t, []int{5, 10}, cfg.Coins.Denominations)
	require.Equal(t, 2, cfg.Sweep.Workers)
}

func TestConfig_Invalid(t *testing.T) {
	_, err := readInConfig(newViper(), writeConfig(t, "sweep:\n  workers: 0\n"))
	require.Error(t, err)
	_, err = readInConfig(newViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestMazeCmd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "textbook.txt"), []byte(textbookMaze), 0o644))
	cfgPath := writeConfig(t, "log:\n  level: error\nmaze:\n  dir: "+dir+"\n")

	for _, args := range [][]string{
		{"maze", "textbook.txt", "--config", cfgPath},
		{"maze", "textbook.txt", "--iterative", "--config", cfgPath},
	} {
		out, _, err := execute(t, args...)
		require.NoError(t, err)
		require.Contains(t, out, "found: true")
		require.Contains(t, out, "path: ")
		require.Contains(t, out, "O")
	}

	t.Log("names escaping maze.dir are refused")
	_, _, err := execute(t, "maze", "../textbook.txt", "--config", cfgPath)
	require.Error(t, err)
	_, _, err = execute(t, "maze", "missing.txt", "--config", cfgPath)
	require.Error(t, err)
}

func TestCoinsSolveCmd(t *testing.T) {
	cfgPath := writeConfig(t, "log:\n  level: error\n")
	out, _, err := execute(t, "coins", "solve", "42", "--config", cfgPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{
		"naive: count=5 calls=108534 memo=0",
		"memoized: count=5 calls=132 memo=42",
		"tabulated: count=5 calls=131 memo=43 coins=[25 10 5 1 1]",
	}, lines)

	out, _, err = execute(t, "coins", "solve", "23", "--denoms", "5,10", "--strategy", "memoized", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, "memoized: count=unreachable calls=8 memo=5\n", out)

	out, _, err = execute(t, "coins", "solve", "120", "--config", cfgPath)
	require.NoError(t, err)
	require.NotContains(t, out, "naive")

	_, _, err = execute(t, "coins", "solve", "120", "--strategy", "naive", "--config", cfgPath)
	require.Error(t, err)
	_, _, err = execute(t, "coins", "solve", "12", "--strategy", "greedy", "--config", cfgPath)
	require.Error(t, err)
	_, _, err = execute(t, "coins", "solve", "-3", "--strategy", "tabulated", "--config", cfgPath)
	require.Error(t, err)
}

func TestCoinsSolveCmd_Metrics(t *testing.T) {
	testcases := []struct {
		exporter string
		contains []string
	}{
		{"stdout", []string{`"Name":"xdsa.coins.calls"`, `"Name":"xdsa.coins.solves"`}},
		{"prometheus", []string{"# TYPE xdsa_coins_calls_total counter", "xdsa_coins_solves_total"}},
	}
	for _, tc := range testcases {
		t.Run(tc.exporter, func(t *testing.T) {
			cfgPath := writeConfig(t, "log:\n  level: error\nmetrics:\n  exporter: "+tc.exporter+"\n")
			out, logs, err := execute(t, "coins", "solve", "42", "--strategy", "tabulated", "--config", cfgPath)
			require.NoError(t, err)
			require.Equal(t, "tabulated: count=5 calls=131 memo=43 coins=[25 10 5 1 1]\n", out)
			for _, want := range tc.contains {
				require.Contains(t, logs, want)
			}
		})
	}

	cfgPath := writeConfig(t, "log:\n  level: error\nmetrics:\n  exporter: statsd\n")
	_, _, err := execute(t, "coins", "solve", "5", "--config", cfgPath)
	require.Error(t, err)
}

func TestCoinsSweepCmd(t *testing.T) {
	testcases := []struct {
		name  string
		store func(t *testing.T) string
	}{
		{
			name:  "map",
			store: func(t *testing.T) string { return "coins:\n  store: map\n" },
		},
		{
			name: "redis",
			store: func(t *testing.T) string {
				return "coins:\n  store: redis\n  redis:\n    addr: " + miniredis.RunT(t).Addr() + "\n"
			},
		},
		{
			name: "sqlite",
			store: func(t *testing.T) string {
				return "coins:\n  store: sqlite\n  sqlite:\n    dsn: " + filepath.Join(t.TempDir(), "memo.db") + "\n"
			},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			cfgPath := writeConfig(t, "log:\n  level: error\n"+tc.store(t))
			out, _, err := execute(t, "coins", "sweep", "0", "30", "--workers", "3", "--config", cfgPath)
			require.NoError(t, err)
			require.Contains(t, out, "0: 0 []\n")
			require.Contains(t, out, "30: 2 [25 5]\n")
			require.Contains(t, out, "swept 31 targets, 0 unreachable\n")

			out, _, err = execute(t, "coins", "sweep", "1", "12", "--denoms", "5,10", "--config", cfgPath)
			require.NoError(t, err)
			require.Contains(t, out, "1: unreachable\n")
			require.Contains(t, out, "10: 1 [10]\n")
			require.Contains(t, out, "swept 12 targets, 10 unreachable\n")
		})
	}
}

func TestCoinsSweepCmd_Failures(t *testing.T) {
	cfgPath := writeConfig(t, "log:\n  level: error\n")
	_, _, err := execute(t, "coins", "sweep", "10", "5", "--config", cfgPath)
	require.Error(t, err)

	mredis := miniredis.RunT(t)
	addr := mredis.Addr()
	mredis.Close()
	cfgPath = writeConfig(t, "log:\n  level: error\ncoins:\n  store: redis\n  redis:\n    addr: "+addr+"\n")
	_, _, err = execute(t, "coins", "sweep", "1", "5", "--config", cfgPath)
	require.Error(t, err)

	cfgPath = writeConfig(t, "log:\n  level: error\ncoins:\n  store: etcd\n")
	_, _, err = execute(t, "coins", "solve", "5", "--config", cfgPath)
	require.Error(t, err)
}

func TestSweep_TaskPanic(t *testing.T) {
	logs := &bytes.Buffer{}
	deps := coinsDeps{
		Config: &config{
			Coins: coinsConfig{Denominations: []int{1, 5, 10, 25}},
			Sweep: sweepConfig{Workers: 2},
		},
		Logger: xlog.NewXLogger(
			xlog.WithXLoggerWriter(zapcore.Lock(zapcore.AddSync(logs))),
			xlog.WithXLoggerLevel(xlog.LogLevelError),
		),
		Store: coins.NewMapMemoStore(),
	}
	solve := crossCheck(deps)

	results, err := sweep(context.Background(), deps, 0, 9, solve)
	require.NoError(t, err)
	require.Len(t, results, 10)
	require.Equal(t, 2, results[6].Count)

	results, err = sweep(context.Background(), deps, 0, 9, func(ctx context.Context, target int) (coins.Result, error) {
		if target == 7 {
			panic("solver blew up")
		}
		return solve(ctx, target)
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "solver blew up")
	require.Nil(t, results)
	require.Contains(t, logs.String(), "sweep failed")
}

func TestHanoiCmd(t *testing.T) {
	cfgPath := writeConfig(t, "log:\n  level: error\n")
	out, _, err := execute(t, "hanoi", "2", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, "disk 1: A -> B\ndisk 2: A -> C\ndisk 1: B -> C\nmoves: 3\n", out)

	out, _, err = execute(t, "hanoi", "10", "-q", "--from", "x", "--to", "y", "--via", "z", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, "moves: 1023\n", out)

	_, _, err = execute(t, "hanoi", "three", "--config", cfgPath)
	require.Error(t, err)
}

func TestExprCmd(t *testing.T) {
	cfgPath := writeConfig(t, "log:\n  level: error\n")
	out, _, err := execute(t, "expr", "postfix", "A * B + C", "--compact", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, "AB*C+\n", out)

	out, _, err = execute(t, "expr", "postfix", "( A + B ) * C", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, "A B + C *\n", out)

	out, _, err = execute(t, "expr", "eval", "7 8 + 3 2 + /", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, "3\n", out)

	out, _, err = execute(t, "expr", "calc", "2 ^ 3 ^ 2", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, "2 3 2 ^ ^ = 512\n", out)

	_, _, err = execute(t, "expr", "eval", "1 0 /", "--config", cfgPath)
	require.Error(t, err)
}

func TestBalanceCmd(t *testing.T) {
	cfgPath := writeConfig(t, "log:\n  level: error\n")
	testcases := []struct {
		args     []string
		expected string
	}{
		{[]string{"balance", "brackets", "(([{}]))"}, "balanced\n"},
		{[]string{"balance", "brackets", "(()"}, "unbalanced\n"},
		{[]string{"balance", "parens", "(()())"}, "balanced\n"},
		{[]string{"balance", "html", "<html><body><p>hi<br/></p></body></html>"}, "balanced\n"},
		{[]string{"balance", "html", "<b><i></b></i>"}, "unbalanced\n"},
	}
	for _, tc := range testcases {
		out, _, err := execute(t, append(tc.args, "--config", cfgPath)...)
		require.NoError(t, err)
		require.Equal(t, tc.expected, out, tc.args)
	}
}
