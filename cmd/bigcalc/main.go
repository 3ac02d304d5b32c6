// Command bigcalc is an arbitrary-precision integer calculator built on
// the bigint package.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "bigcalc",
	Short: "Arbitrary-precision integer calculator",
	Long: `Bigcalc evaluates integer expressions of unlimited size,
supporting addition, subtraction, and multiplication.`,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to a bigcalc.toml configuration file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
