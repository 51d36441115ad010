package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zijistark/ck2audit/pdx"
)

func newTokensCmd() *cobra.Command {
	var paths pathFlags

	cmd := &cobra.Command{
		Use:   "tokens <path>",
		Short: "Dump the raw token stream of a script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			real, err := paths.resolve(args[0])
			if err != nil {
				return err
			}
			input, err := os.ReadFile(real)
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}

			lex := pdx.NewLexer(input, real)
			for {
				tok := lex.NextToken()
				if tok.Type == pdx.TokenEOF {
					return nil
				}
				fmt.Printf("L%-5d %-8s %q\n", lex.Line(), tok.Type, tok.Text)
			}
		},
	}

	addPathFlags(cmd, &paths)

	return cmd
}
