package easetimeline

import (
	"fmt"
)

// Config holds the numeric integration parameters for a timeline.
//
// The configuration is fixed per timeline at construction time and shared
// by every segment the timeline creates. Both parameters trade accuracy
// against memory and query cost:
//
//   - Step is the quadrature step of the left-endpoint Riemann sum. Halving
//     it roughly halves the integration error and doubles the cost of cache
//     builds and boundary corrections.
//   - BlockLength is the granularity of each segment's displacement cache.
//     Smaller blocks mean larger caches but cheaper partial-block
//     corrections on range queries.
type Config struct {
	// Step is the quadrature step in time units. Must be positive.
	Step float64

	// BlockLength is the cache block length in time units. Must be at
	// least Step, so that every block covers one or more quadrature steps.
	BlockLength float64
}

// DefaultConfig returns the default integration parameters
// (Step 0.01, BlockLength 0.1).
func DefaultConfig() Config {
	return Config{
		Step:        DefaultStep,
		BlockLength: DefaultBlockLength,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Step <= 0 {
		return fmt.Errorf("%w: integration step must be positive, got %v", ErrInvalidConfig, c.Step)
	}

	if c.Step < minStep {
		return fmt.Errorf("%w: integration step too small (min %v)", ErrInvalidConfig, minStep)
	}

	if c.BlockLength < c.Step {
		return fmt.Errorf("%w: block length %v smaller than integration step %v", ErrInvalidConfig, c.BlockLength, c.Step)
	}

	return nil
}
