package domain

import "time"

// Measurement is the observed cost of running the machine on 1^N.
type Measurement struct {
	N           int           `json:"n" yaml:"n"`
	Steps       int           `json:"steps" yaml:"steps"`
	Value       int           `json:"value" yaml:"value"`
	Repetitions int           `json:"repetitions" yaml:"repetitions"`
	Avg         time.Duration `json:"avg_ns" yaml:"avg_ns"`
	Min         time.Duration `json:"min_ns" yaml:"min_ns"`
	Max         time.Duration `json:"max_ns" yaml:"max_ns"`
	Completed   bool          `json:"completed" yaml:"completed"`
}

// Fit is an exponential model steps ≈ Coefficient * Base^n.
type Fit struct {
	Coefficient float64 `json:"coefficient" yaml:"coefficient"`
	Base        float64 `json:"base" yaml:"base"`
	RSquared    float64 `json:"r_squared" yaml:"r_squared"`
	Points      int     `json:"points" yaml:"points"`
}

// Report is a persisted analysis run.
type Report struct {
	ID           string        `json:"id" yaml:"id"`
	Machine      string        `json:"machine" yaml:"machine"`
	CreatedAt    time.Time     `json:"created_at" yaml:"created_at"`
	Measurements []Measurement `json:"measurements" yaml:"measurements"`
	Ratios       []float64     `json:"ratios,omitempty" yaml:"ratios,omitempty"`
	Fit          *Fit          `json:"fit,omitempty" yaml:"fit,omitempty"`
}
