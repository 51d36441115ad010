package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zijistark/ck2audit/pdx"
)

func newParseCmd() *cobra.Command {
	var paths pathFlags
	var outputFormat string
	var saveStyle bool

	cmd := &cobra.Command{
		Use:   "parse <path>",
		Short: "Parse a script file and dump the resulting tree",
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

			switch outputFormat {
			case "text":
				return p.Root().Print(os.Stdout)
			case "json":
				enc := pdx.NewJSONEncoder(os.Stdout)
				if err := enc.Encode(p.Root()); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println()
				return nil
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVar(&outputFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&saveStyle, "save", false, "Parse as a savegame (header token, synthetic root)")
	addPathFlags(cmd, &paths)

	return cmd
}

func addPathFlags(cmd *cobra.Command, f *pathFlags) {
	cmd.Flags().StringVarP(&f.cfg, "cfg", "c", "", "Configuration file (script format)")
	cmd.Flags().StringVar(&f.game, "game-path", "", "Path to the game folder")
	cmd.Flags().StringVar(&f.mod, "mod-path", "", "Path to the root folder of a mod")
	cmd.Flags().StringVar(&f.submod, "submod-path", "", "Path to the root folder of a sub-mod")
}

var (
	warnColor = color.New(color.FgYellow)
	noteColor = color.New(color.FgCyan)
)

func printDiagnostics(q *pdx.ErrorQueue) {
	for _, e := range q.Errors() {
		c := noteColor
		if e.Severity == pdx.SeverityWarning {
			c = warnColor
		}
		c.Fprintf(os.Stderr, "%s: %s at %s\n", e.Severity, e.Message, e.Loc)
	}
}
