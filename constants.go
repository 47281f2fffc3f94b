package easetimeline

// Default integration parameters.
const (
	// DefaultStep is the default quadrature step in time units.
	DefaultStep = 0.01

	// DefaultBlockLength is the default cache block length in time units.
	DefaultBlockLength = 0.1
)

// Configuration limits.
const (
	// minStep guards against steps so small that cache builds would take
	// effectively unbounded time on long segments.
	minStep = 1e-9
)
