package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a machine definition for consistency",
	Long: `Loads a definition and reports every problem: malformed rules, unknown
states or symbols, and a blank symbol missing from the alphabet.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("machine")
		if len(args) > 0 {
			path = args[0]
		}
		return cli.Validate(path, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
