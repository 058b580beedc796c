package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the transition diagram",
	Long: `Prints the machine as a Mermaid state diagram, a Graphviz digraph or a
Markdown report. With -o, writes <name>_diagram.md and <name>_diagram.dot.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")
		render, _ := cmd.Flags().GetBool("render")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")

		opts := cli.GraphOptions{
			Options:  globalOptions(cmd),
			Dir:      dir,
			Format:   format,
			Render:   render,
			MaxSteps: maxSteps,
			Out:      cmd.OutOrStdout(),
		}
		if cmd.Flags().Changed("trace") {
			trace, _ := cmd.Flags().GetString("trace")
			opts.Trace = &trace
		}
		return cli.Graph(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("output", "o", "", "Write the Markdown and DOT files to this directory")
	graphCmd.Flags().StringP("format", "f", "mermaid", "Output format: mermaid, dot or markdown")
	graphCmd.Flags().Bool("render", false, "Render the output for the terminal")
	graphCmd.Flags().String("trace", "", "Run this input and highlight the states it visits")
	graphCmd.Flags().Int("max-steps", 0, "Step budget for --trace")
}
