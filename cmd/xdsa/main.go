package main

import (
	"os"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := newRootCmd(os.Stdout, zapcore.Lock(os.Stderr))
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
