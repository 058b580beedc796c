package main

import (
	"time"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Measure how steps and time grow with n",
	Long: `Runs n = 0, 1, 2, ... and records steps and wall time, stopping after
--max-n or the first measurement slower than --time-limit. Prints the table
and an exponential fit, then saves the report as JSON (or to Redis).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		opts := cli.AnalyzeOptions{
			Options: globalOptions(cmd),
			Out:     cmd.OutOrStdout(),
		}
		opts.MaxN, _ = f.GetInt("max-n")
		opts.TimeLimit, _ = f.GetDuration("time-limit")
		opts.MaxSteps, _ = f.GetInt("max-steps")
		opts.StepsOnly, _ = f.GetBool("steps-only")
		opts.Workers, _ = f.GetInt("workers")
		opts.OutDir, _ = f.GetString("out")
		opts.RedisAddr, _ = f.GetString("redis")
		opts.RedisTTL, _ = f.GetDuration("redis-ttl")
		opts.NoSave, _ = f.GetBool("no-save")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		_, err := cli.Analyze(ctx, opts)
		return err
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Int("max-n", 15, "Largest n to measure")
	analyzeCmd.Flags().Duration("time-limit", 30*time.Second, "Stop after a measurement slower than this")
	analyzeCmd.Flags().Int("max-steps", 10_000_000, "Step budget per run")
	analyzeCmd.Flags().Bool("steps-only", false, "Count steps concurrently without timing")
	analyzeCmd.Flags().Int("workers", 4, "Concurrent machines for --steps-only")
	analyzeCmd.Flags().String("out", "analysis", "Directory for JSON reports")
	analyzeCmd.Flags().String("redis", "", "Store the report in Redis at this address instead")
	analyzeCmd.Flags().Duration("redis-ttl", 0, "Expiry of reports stored in Redis (0 keeps them)")
	analyzeCmd.Flags().Bool("no-save", false, "Print the report without storing it")
}
