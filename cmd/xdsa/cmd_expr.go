package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/benz9527/xdsa/expr"
)

func (c *cli) exprCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expr",
		Short: "Infix to postfix conversion and postfix evaluation",
	}
	var compact bool
	postfixCmd := &cobra.Command{
		Use:   "postfix <infix>",
		Short: "Convert an infix expression to postfix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postfix, err := expr.ConvertInfix(args[0])
			if err != nil {
				return err
			}
			if compact {
				fmt.Fprintln(cmd.OutOrStdout(), postfix.Compact())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), postfix.String())
			}
			return nil
		},
	}
	postfixCmd.Flags().BoolVar(&compact, "compact", false, "join the tokens without spaces")

	evalCmd := &cobra.Command{
		Use:   "eval <postfix>",
		Short: "Evaluate a postfix expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := expr.EvaluatePostfix(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
			return nil
		},
	}

	calcCmd := &cobra.Command{
		Use:   "calc <infix>",
		Short: "Convert an infix expression and evaluate it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postfix, err := expr.ConvertInfix(args[0])
			if err != nil {
				return err
			}
			v, err := expr.EvalPostfix(postfix)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", postfix.String(), strconv.FormatFloat(v, 'g', -1, 64))
			return nil
		},
	}

	cmd.AddCommand(postfixCmd, evalCmd, calcCmd)
	return cmd
}
