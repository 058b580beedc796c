/*
Package domain contains the core domain models of the Turing machine simulator.

It defines the vocabulary shared by the interpreter and its collaborators:
symbols, head directions, machine definitions (the transition table), the
halt status and the snapshots recorded while a machine runs. This package is
kept pure and free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Symbol: one cell of the tape alphabet.
  - Direction: the closed set of head moves (Left, Right, Stay).
  - Definition: a validated machine description (states, alphabet, rules).
  - Status: Running, Accepted or Rejected.
  - Snapshot: an observation of the machine configuration at one step.
*/
package domain
