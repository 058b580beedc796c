// Package runtime interprets a domain.Definition on a single tape.
//
// A Machine owns its tape, state, head and history. It is not safe for
// concurrent use; run independent machines in parallel instead.
package runtime
