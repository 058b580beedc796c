package domain

// StepEvent describes one executed transition.
type StepEvent struct {
	Step  int       `json:"step"`
	From  string    `json:"from"`
	To    string    `json:"to"`
	Read  Symbol    `json:"read"`
	Write Symbol    `json:"write"`
	Move  Direction `json:"move"`
	Head  int       `json:"head"` // Head position after the move
}

// HaltEvent describes the end of a run.
type HaltEvent struct {
	State  string `json:"state"`
	Status Status `json:"status"`
	Steps  int    `json:"steps"`
}

// LifecycleHooks defines callbacks for machine observability.
// Hooks run synchronously inside Step; keep them cheap.
type LifecycleHooks struct {
	OnStep func(*StepEvent)
	OnHalt func(*HaltEvent)
}
