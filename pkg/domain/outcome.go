package domain

// Outcome summarizes one finished (or budget-exhausted) run.
type Outcome struct {
	Input       string     `json:"input"`
	Steps       int        `json:"steps"`
	State       string     `json:"state"`
	Status      Status     `json:"status"`
	Accepted    bool       `json:"accepted"`
	Result      string     `json:"result"`
	CleanResult string     `json:"clean_result"`
	Value       int        `json:"value"` // CleanResult decoded from unary
	Snapshots   []Snapshot `json:"snapshots,omitempty"`
}
