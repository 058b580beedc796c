package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/unary"
)

// GraphOptions configures the graph command.
type GraphOptions struct {
	Options
	// Dir, when set, writes the Markdown and DOT files there instead of
	// printing.
	Dir    string
	Format string // mermaid, dot or markdown
	Render bool   // render Markdown through glamour
	// Trace, when set, runs this input and highlights the visited states.
	Trace    *string
	MaxSteps int

	Out io.Writer
	Now func() time.Time
}

// Graph handles the 'graph' command.
func Graph(ctx context.Context, opts GraphOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	sim, err := createSimulator(opts.Options, createLogger(opts.Debug))
	if err != nil {
		return err
	}
	def := sim.Definition()

	if opts.Dir != "" {
		mdPath, dotPath, err := graph.Save(def, opts.Dir, opts.Now())
		if err != nil {
			return err
		}
		printSystemMessage(opts.Out, "Markdown: %s", mdPath)
		printSystemMessage(opts.Out, "DOT:      %s", dotPath)
		return nil
	}

	var overlay *graph.Overlay
	if opts.Trace != nil {
		input, err := unary.Normalize(*opts.Trace)
		if err != nil {
			return err
		}
		out, err := sim.Trace(ctx, input, opts.MaxSteps)
		if err != nil {
			return err
		}
		overlay = graph.OverlayFromHistory(out.Snapshots)
	}

	var text string
	switch opts.Format {
	case "", "mermaid":
		text = graph.GenerateMermaid(def, overlay)
	case "dot":
		text = graph.GenerateDOT(def)
	case "markdown", "md":
		text = graph.GenerateMarkdown(def, graph.GenerateMermaid(def, overlay), opts.Now())
	default:
		return fmt.Errorf("unknown graph format %q (expected mermaid, dot or markdown)", opts.Format)
	}

	if opts.Render {
		render, err := tui.NewRenderer(0)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		if opts.Format != "markdown" && opts.Format != "md" {
			text = "```\n" + text + "```\n"
		}
		if text, err = render(text); err != nil {
			return err
		}
	}
	_, err = fmt.Fprint(opts.Out, text)
	return err
}
