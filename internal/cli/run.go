package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/unary"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Options
	// Inputs are decimal or unary arguments. Without any, inputs come from
	// the prompt (terminal) or one per line (pipe).
	Inputs   []string
	Quiet    bool
	MaxSteps int
	// Diagrams, when set, regenerates the diagram files in that directory
	// before running.
	Diagrams string
	// Interactive forces the prompt even when In is not a terminal.
	Interactive bool

	In  io.Reader
	Out io.Writer
}

// Run handles the 'run' command.
func Run(ctx context.Context, opts RunOptions) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	logger := createLogger(opts.Debug)
	sim, err := createSimulator(opts.Options, logger)
	if err != nil {
		return err
	}

	def := sim.Definition()
	if !opts.Quiet {
		tui.PrintBanner(opts.Out)
		printSystemMessage(opts.Out, "Machine: %s", def.Name)
		if def.Description != "" {
			printSystemMessage(opts.Out, "%s", def.Description)
		}
	}
	if opts.Diagrams != "" {
		mdPath, dotPath, err := graph.Save(def, opts.Diagrams, time.Now())
		if err != nil {
			return err
		}
		if !opts.Quiet {
			printSystemMessage(opts.Out, "Diagrams updated: %s, %s", mdPath, dotPath)
		}
	}

	r := &runner{sim: sim, printer: tui.NewPrinter(opts.Out), out: opts.Out, quiet: opts.Quiet, maxSteps: opts.MaxSteps}

	switch {
	case len(opts.Inputs) > 0:
		for _, arg := range opts.Inputs {
			input, err := unary.Normalize(arg)
			if err != nil {
				return err
			}
			if err := r.run(ctx, input); err != nil {
				return err
			}
		}
		return nil
	case opts.Interactive || IsTerminal(opts.In):
		return handleExecutionError(r.prompt(ctx, opts.In))
	default:
		return r.lines(ctx, opts.In)
	}
}

type runner struct {
	sim      *turing.Simulator
	printer  *tui.Printer
	out      io.Writer
	quiet    bool
	maxSteps int
}

func (r *runner) run(ctx context.Context, input string) error {
	if err := unary.Validate(input); err != nil {
		return err
	}

	if r.quiet {
		out, err := r.sim.Simulate(ctx, input, r.maxSteps)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "F(%d) = %d\tsteps=%d\tstate=%s\taccepted=%t\n",
			len(input), out.Value, out.Steps, out.State, out.Accepted)
		return nil
	}

	out, err := r.sim.Trace(ctx, input, r.maxSteps)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintln(r.out, "CONFIGURATIONS")
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	r.printer.PrintHistory(out.Snapshots)
	r.printer.PrintSummary(out)
	return nil
}

// lines runs every non-empty line of in as a decimal or unary input.
func (r *runner) lines(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		input, err := unary.Normalize(line)
		if err != nil {
			return err
		}
		if err := r.run(ctx, input); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// prompt asks for unary inputs until the user declines another run.
func (r *runner) prompt(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		input, err := r.readInput(scanner)
		if err != nil {
			return err
		}
		if err := r.run(ctx, input); err != nil {
			return err
		}

		fmt.Fprint(r.out, "\nRun another simulation? [y/N]: ")
		answer, err := readLine(scanner)
		if err != nil {
			return err
		}
		if a := strings.ToLower(answer); a != "y" && a != "yes" {
			break
		}
	}
	fmt.Fprintln(r.out, "\nThanks for using the simulator!")
	return nil
}

func (r *runner) readInput(scanner *bufio.Scanner) (string, error) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintln(r.out, "INPUT")
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintln(r.out, "Enter n in unary to compute F(n).")
	fmt.Fprintln(r.out, "Examples: '' (empty) for F(0), '1' for F(1), '111' for F(3)")
	fmt.Fprintln(r.out, strings.Repeat("-", 60))

	for {
		fmt.Fprint(r.out, "Input (n in unary): ")
		line, err := readLine(scanner)
		if err != nil {
			return "", err
		}
		if err := unary.Validate(line); err != nil {
			fmt.Fprintln(r.out, "Error: the input must contain only '1's or be empty.")
			continue
		}
		return line, nil
	}
}

func readLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}
