package main

import (
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type cli struct {
	vi      *viper.Viper
	cfg     *config
	cfgFile string
	logOut  zapcore.WriteSyncer
}

func newRootCmd(out io.Writer, logOut zapcore.WriteSyncer) *cobra.Command {
	c := &cli{
		vi:     newViper(),
		logOut: logOut,
	}

	cobra.EnableCommandSorting = false
	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Linear data structures and recursive solvers",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readInConfig(c.vi, c.cfgFile)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&c.cfgFile,
		"config", "", "config file (default ./xdsa.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error")
	lo.Must0(c.vi.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.AddCommand(c.mazeCmd())
	rootCmd.AddCommand(c.coinsCmd())
	rootCmd.AddCommand(c.hanoiCmd())
	rootCmd.AddCommand(c.exprCmd())
	rootCmd.AddCommand(c.balanceCmd())
	return rootCmd
}
