package main

import (
	"fmt"

	"github.com/jmikkola/parsercombinator/parse"
	"github.com/jmikkola/parsercombinator/text"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	var ruleName string
	var requireAll bool

	cmd := &cobra.Command{
		Use:           "match <input>",
		Short:         "Run a named recognizer against the input",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			parser, err := lookupRule(ruleName)
			if err != nil {
				return err
			}
			if requireAll {
				first := parser
				parser = parse.Apply(
					parse.Sequence(first, parse.End()),
					func(v any) any { return v.([]any)[0] },
				)
			}

			log.Debugf("matching rule %s against %d bytes of input", ruleName, len(input))

			st := text.NewStringText(input)
			value, end, err := parser.Recognize(st, st.StartCursor())
			if err != nil {
				return fmt.Errorf("match %s: %w", ruleName, err)
			}

			log.Infof("consumed %d of %d bytes", end.Offset(), len(input))
			fmt.Println(formatValue(value))
			return nil
		},
	}

	cmd.Flags().StringVarP(&ruleName, "rule", "r", "digits", "recognizer to run")
	cmd.Flags().BoolVar(&requireAll, "all", false, "require the whole input to match")

	return cmd
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the available recognizers",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range ruleNames() {
				fmt.Println(name)
			}
		},
	}
}
