package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "turing",
	Short: "Turing is a deterministic single-tape Turing machine simulator",
	Long: `Turing runs machine definitions written in JSON or YAML. The bundled machine
computes the Fibonacci number F(n) for a unary input 1^n.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for bad user input or a broken definition, 1 otherwise.
func exitCode(err error) int {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, cli.ErrInvalidMachine) {
		return 2
	}
	return 1
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("machine", "m", "", "Machine definition file (.json, .yaml); defaults to the bundled Fibonacci machine")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every step and halt to stderr")
}

// globalOptions reads the persistent flags.
func globalOptions(cmd *cobra.Command) cli.Options {
	machine, _ := cmd.Flags().GetString("machine")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.Options{Machine: machine, Debug: debug}
}
