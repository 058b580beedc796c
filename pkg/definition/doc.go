// Package definition loads Turing machine definitions from JSON or YAML.
//
// A definition document looks like:
//
//	{
//	  "states": ["q0", "qaccept"],
//	  "initial_state": "q0",
//	  "accepting_states": ["qaccept"],
//	  "tape_alphabet": ["1", "_"],
//	  "blank_symbol": "_",
//	  "transitions": {
//	    "q0": {"1": ["q0", "1", "R"], "_": ["qaccept", "_", "S"]}
//	  }
//	}
//
// Loading happens in three passes. The raw document is checked against a
// schema, decoded into a Document, and compiled into a domain.Definition
// whose cross references (states, symbols, moves) are verified. Every pass
// reports all of its problems at once through schema.AggregateError.
package definition
