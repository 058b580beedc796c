package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [input...]",
	Short: "Run the machine on one or more inputs",
	Long: `Runs the machine and prints its configurations and a summary.
An input made only of decimal digits is read as n ("5" means 11111); anything
else must be unary. Without inputs, prompts on a terminal or reads one input
per line from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		diagrams, _ := cmd.Flags().GetString("diagrams")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.Run(ctx, cli.RunOptions{
			Options:  globalOptions(cmd),
			Inputs:   args,
			Quiet:    quiet,
			MaxSteps: maxSteps,
			Diagrams: diagrams,
			In:       cmd.InOrStdin(),
			Out:      cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("quiet", "q", false, "Print one result line per input instead of the trace")
	runCmd.Flags().Int("max-steps", 0, "Step budget per run (0 uses the default of 100000)")
	runCmd.Flags().String("diagrams", "", "Regenerate the diagram files in this directory before running")

	// Running without a subcommand behaves like 'turing run'.
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.RunE = runCmd.RunE
}
