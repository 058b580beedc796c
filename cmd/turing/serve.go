package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the machine over HTTP: /definition, /run, /run/stream, /graph,
/reports, /metrics and /healthz.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		reports, _ := cmd.Flags().GetString("reports")
		redisAddr, _ := cmd.Flags().GetString("redis")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.Serve(ctx, cli.ServeOptions{
			Options:    globalOptions(cmd),
			Addr:       addr,
			MaxSteps:   maxSteps,
			ReportsDir: reports,
			RedisAddr:  redisAddr,
			Out:        cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().Int("max-steps", 1_000_000, "Largest step budget a request may use")
	serveCmd.Flags().String("reports", "analysis", "Directory of analysis reports served under /reports")
	serveCmd.Flags().String("redis", "", "Serve reports from Redis at this address instead")
}
