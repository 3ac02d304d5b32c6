package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/govalues/bigint/internal/calc"
)

var evalJobs int

func init() {
	evalCmd.Flags().IntVar(&evalJobs, "jobs", runtime.NumCPU(), "maximum expressions evaluated in parallel")
}

var evalCmd = &cobra.Command{
	Use:   "eval EXPR [EXPR...]",
	Short: "Evaluate integer expressions",
	Example: `  bigcalc eval "123 * 456"
  bigcalc eval "2*2*2*2" "10 - (3 + 4)" "-00042"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		jobs := evalJobs
		if jobs < 1 {
			jobs = 1
		}

		results := make([]string, len(args))
		g, gctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(min(jobs, len(args)))
		for i, expr := range args {
			i, expr := i, expr
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				v, err := calc.Eval(expr)
				if err != nil {
					return fmt.Errorf("%q: %w", expr, err)
				}
				results[i] = v.String()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		resultColor := color.New(color.FgGreen, color.Bold)
		if !colorEnabled(cfg.Output.Color, os.Stdout) {
			resultColor.DisableColor()
		}

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			fmt.Fprintln(out, resultColor.Sprint(results[0]))
			return nil
		}
		for i, expr := range args {
			fmt.Fprintf(out, "%s = %s\n", expr, resultColor.Sprint(results[i]))
		}
		return nil
	},
}
