package main

import (
	"fmt"

	"github.com/jmikkola/parsercombinator/calc"
	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "calc <expression>",
		Short:         "Evaluate an arithmetic expression",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := calc.Eval(args[0])
			if err != nil {
				return fmt.Errorf("eval: %w", err)
			}
			fmt.Println(result)
			return nil
		},
	}
}
