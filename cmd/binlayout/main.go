// Command binlayout inspects binary layout definitions and generates
// typed accessor code from them.
//
// Definitions come from YAML layout files (see the layoutfile package)
// or from Go source files with @binlayout-annotated structs.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/avreth/binlayout"
	"github.com/avreth/binlayout/internal/codegen"
	"github.com/avreth/binlayout/internal/parser"
	"github.com/avreth/binlayout/layoutfile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "binlayout",
		Short:         "Inspect binary layout definitions and generate accessor code",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newInspectCmd())
	root.AddCommand(newGenCmd())
	return root
}

// loadLayouts reads layout definitions from path: Go source for .go
// files, YAML layout documents otherwise.
func loadLayouts(path string) ([]*binlayout.Layout, error) {
	if filepath.Ext(path) == ".go" {
		return parser.ParseFile(path)
	}
	return layoutfile.LoadFile(path)
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the field table of every layout in a definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layouts, err := loadLayouts(args[0])
			if err != nil {
				return err
			}
			if len(layouts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No layout definitions found")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, l := range layouts {
				fmt.Fprintf(out, "\n%s (endian=%s, min size=%d)\n", l.Name(), l.Endianness(), l.MinSize())
				fmt.Fprintln(out, "Fields:")
				for i := 0; i < l.NumFields(); i++ {
					f := l.FieldAt(i)
					fmt.Fprintf(out, "  %-20s %-10s @%d", f.Name(), f.Type(), f.Offset())
					if size, ok := f.Size(); ok {
						fmt.Fprintf(out, " size=%d", size)
					} else {
						fmt.Fprintf(out, " size=open")
					}
					fmt.Fprintln(out)
				}
			}
			return nil
		},
	}
}

func newGenCmd() *cobra.Command {
	var (
		pkg    string
		output string
	)

	cmd := &cobra.Command{
		Use:   "gen <file>",
		Short: "Generate typed accessor code for every layout in a definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layouts, err := loadLayouts(args[0])
			if err != nil {
				return err
			}
			if len(layouts) == 0 {
				return fmt.Errorf("no layout definitions found in %s", args[0])
			}

			src, err := codegen.NewGenerator(pkg, layouts...).Generate()
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			return os.WriteFile(output, src, 0o644)
		},
	}

	cmd.Flags().StringVarP(&pkg, "package", "p", "", "package name for the generated file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("package")

	return cmd
}
