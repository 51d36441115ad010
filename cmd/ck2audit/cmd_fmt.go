package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zijistark/ck2audit/pdx"
)

func newFmtCmd() *cobra.Command {
	var paths pathFlags
	var saveStyle bool

	cmd := &cobra.Command{
		Use:   "fmt <path>",
		Short: "Reformat a script file to canonical surface syntax",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			real, err := paths.resolve(args[0])
			if err != nil {
				return err
			}

			var opts []pdx.Option
			if saveStyle {
				opts = append(opts, pdx.WithSave())
			}
			p, err := pdx.ParseFile(real, opts...)
			if err != nil {
				return err
			}

			printDiagnostics(p.Errors())
			return p.Root().Print(os.Stdout)
		},
	}

	cmd.Flags().BoolVar(&saveStyle, "save", false, "Parse as a savegame (header token, synthetic root)")
	addPathFlags(cmd, &paths)

	return cmd
}
