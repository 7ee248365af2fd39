// Command zsplit prints or charts the z-score gradient split of the built-in
// dataset.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	zsplit "github.com/jgbaldwinbrown/zsplit/pkg"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

type flags struct {
	Config    string
	Mode      string
	Strategy  string
	Threshold float64
	Format    string
	Output    string
	Title     string
	NoColor   bool
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "zsplit",
		Short:         "Split line gradients at a z-score threshold",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, e := zsplit.LoadConfig(f.Config)
			if e != nil {
				return e
			}
			applyFlags(cmd, f, &c)
			return zsplit.Run(cmd.OutOrStdout(), c)
		},
	}

	o := zsplit.DefaultOptions()
	cmd.Flags().StringVarP(&f.Config, "config", "c", "", "YAML config file (default ./zsplit.yaml if present)")
	cmd.Flags().StringVarP(&f.Mode, "mode", "m", string(o.Mode), "z-score mode: shared or per-field")
	cmd.Flags().StringVarP(&f.Strategy, "strategy", "s", string(o.Strategy), "offset strategy: per-series or pooled")
	cmd.Flags().Float64VarP(&f.Threshold, "threshold", "t", o.Threshold, "z-score threshold where the line color changes")
	cmd.Flags().StringVarP(&f.Format, "format", "f", string(zsplit.TableFormat), "output format: table, tsv or html")
	cmd.Flags().StringVarP(&f.Output, "output", "o", "", "output path (default stdout; .gz compresses)")
	cmd.Flags().StringVar(&f.Title, "title", zsplit.DefaultChartOptions().Title, "chart title")
	cmd.Flags().BoolVar(&f.NoColor, "no-color", false, "disable colored table output")

	cmd.AddCommand(versionCmd())
	return cmd
}

// applyFlags lets explicitly set flags win over the config file and
// environment.
func applyFlags(cmd *cobra.Command, f flags, c *zsplit.Config) {
	fs := cmd.Flags()
	if fs.Changed("mode") {
		c.Mode = f.Mode
	}
	if fs.Changed("strategy") {
		c.Strategy = f.Strategy
	}
	if fs.Changed("threshold") {
		c.Threshold = f.Threshold
	}
	if fs.Changed("format") {
		c.Format = f.Format
	}
	if fs.Changed("output") {
		c.Output = f.Output
	}
	if fs.Changed("title") {
		c.Title = f.Title
	}
	if fs.Changed("no-color") {
		c.NoColor = f.NoColor
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "zsplit %s\n", version)
		},
	}
}

func main() {
	if e := newRootCommand().Execute(); e != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", e)
		os.Exit(1)
	}
}
