package domain

const (
	// DefaultBlank is the blank symbol used when a definition does not override it.
	DefaultBlank Symbol = '_'

	// DefaultMaxSteps bounds a run when the caller does not choose a budget.
	DefaultMaxSteps = 100000

	// HistoryMargin is the number of blank cells shown around the tape in snapshots.
	HistoryMargin = 3
)
