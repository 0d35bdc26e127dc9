package types

// Sampling defaults for universes that do not declare a step.
const (
	// DefaultSteps is the number of intervals a universe is split into when
	// no step is configured, giving DefaultSteps+1 samples.
	DefaultSteps = 100

	// GridEpsilon absorbs floating point drift when counting universe samples,
	// so that a max lying on the step grid is always included.
	GridEpsilon = 1e-9
)
