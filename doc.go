/*
Package turing simulates deterministic single-tape Turing machines and ships
a machine that computes Fibonacci numbers in unary.

Given 1^n on the tape, the bundled machine halts accepting with

	D^n # ; T0 ; T1 ; ... ; Tn

where Tk is F(k) written in unary and each D is a consumed counter unit. The
last term is the answer.

# Usage

	sim, err := turing.New()
	if err != nil {
		log.Fatal(err)
	}

	out, err := sim.Simulate(ctx, unary.Encode(7), 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.Value, out.Steps) // 13 1286

Other machines can be loaded from JSON or YAML files (WithDefinitionFile),
from any ports.DefinitionLoader (WithLoader), or built in Go with pkg/dsl
(WithDefinition).

# Architecture

  - pkg/domain: symbols, moves, definitions, snapshots, events, reports.
  - pkg/tape: the unbounded sparse tape.
  - internal/runtime: the interpreter (Reset, Step, Run, History).
  - pkg/definition: loading and validation of definition documents.
  - pkg/analysis: empirical step-count measurements and fits.
  - pkg/adapters: definition loaders, report stores and the HTTP service.
*/
package turing
