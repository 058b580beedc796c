// Package analysis measures how the number of steps a machine needs grows
// with its input, and fits an exponential model to the measurements.
//
// For the bundled Fibonacci machine the step ratio between consecutive n
// approaches φ² ≈ 2.618 from below: every copied unit walks across the term
// being built, whose length itself grows by φ.
package analysis
