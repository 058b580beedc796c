package domain

// Status is the halt classification of a machine.
type Status string

const (
	StatusRunning  Status = "running"  // No terminal condition reached yet
	StatusAccepted Status = "accepted" // Halted in (or entered) an accepting state
	StatusRejected Status = "rejected" // Halted anywhere else
)

// Halted reports whether the status is terminal.
func (s Status) Halted() bool {
	return s != StatusRunning
}

// Snapshot records the machine configuration at one step.
// Snapshots are for observation only; the interpreter never reads them back.
type Snapshot struct {
	Step   int    `json:"step"`
	State  string `json:"state"`
	Head   int    `json:"head"`
	Tape   string `json:"tape"`   // Rendered window around the occupied cells
	Offset int    `json:"offset"` // Absolute position of Tape's first character
}
