package main

import (
	"fmt"
	"os"

	"github.com/jmikkola/parsercombinator/parse"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type checkCase struct {
	Rule  string `yaml:"rule"`
	Input string `yaml:"input"`
	Want  string `yaml:"want,omitempty"`
	Fail  bool   `yaml:"fail,omitempty"`
}

type checkFile struct {
	Cases []checkCase `yaml:"cases"`
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Run a YAML file of recognizer cases",
		Long: `Run a YAML file of recognizer cases. Each case names a rule and an input,
and either the expected value (want) or fail: true to expect a failed match:

    cases:
      - {rule: digits, input: "123abc", want: "123"}
      - {rule: bool, input: "yes", fail: true}`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read cases: %w", err)
			}

			var file checkFile
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("parse cases: %w", err)
			}
			if len(file.Cases) == 0 {
				return fmt.Errorf("%s: no cases", args[0])
			}

			failed := 0
			for i, c := range file.Cases {
				if err := runCase(c); err != nil {
					failed++
					fmt.Printf("FAIL case %d (%s on %q): %v\n", i+1, c.Rule, c.Input, err)
				} else {
					log.Debugf("ok case %d (%s on %q)", i+1, c.Rule, c.Input)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, len(file.Cases))
			}
			fmt.Printf("ok: %d cases\n", len(file.Cases))
			return nil
		},
	}

	return cmd
}

func runCase(c checkCase) error {
	parser, err := lookupRule(c.Rule)
	if err != nil {
		return err
	}

	value, err := parse.ParseString(c.Input, parser)
	if c.Fail {
		if err == nil {
			return fmt.Errorf("expected failure, matched %s", formatValue(value))
		}
		return nil
	}
	if err != nil {
		return err
	}
	if got := formatValue(value); c.Want != "" && got != c.Want {
		return fmt.Errorf("matched %s, want %s", got, c.Want)
	}
	return nil
}
