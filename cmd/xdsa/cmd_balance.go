package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/benz9527/xdsa/balance"
	"github.com/benz9527/xdsa/lib/infra"
)

func (c *cli) balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Check balanced brackets and HTML tags",
	}
	checks := []struct {
		use, short string
		check      func(string) bool
	}{
		{"brackets <text>", "Check ()[]{} nesting", balance.CheckBrackets},
		{"parens <text>", "Check parentheses only", balance.CheckParentheses},
		{"html <document|->", "Check HTML tag nesting, - reads stdin", balance.CheckHTMLTags},
	}
	for _, chk := range checks {
		cmd.AddCommand(&cobra.Command{
			Use:   chk.use,
			Short: chk.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				text := args[0]
				if text == "-" {
					raw, err := io.ReadAll(cmd.InOrStdin())
					if err != nil {
						return infra.WrapErrorStackWithMessage(err, "[balance] read stdin")
					}
					text = string(raw)
				}
				if chk.check(text) {
					fmt.Fprintln(cmd.OutOrStdout(), "balanced")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "unbalanced")
				}
				return nil
			},
		})
	}
	return cmd
}
