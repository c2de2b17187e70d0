package rabinkarp

import "errors"

// Sentinel errors. Empty grids and patterns larger than the text are not
// errors: they produce an empty result.
var (
	// ErrInvalidModulus indicates a modulus below 2.
	ErrInvalidModulus = errors.New("rabinkarp: modulus must be >= 2")

	// ErrInvalidBase indicates a base that is zero modulo the modulus.
	ErrInvalidBase = errors.New("rabinkarp: base must be non-zero modulo the modulus")

	// ErrInvalidWorkers indicates a negative worker count.
	ErrInvalidWorkers = errors.New("rabinkarp: workers must be >= 0")

	// ErrNilMapper indicates a nil SymbolMapper was passed to New.
	ErrNilMapper = errors.New("rabinkarp: symbol mapper is nil")

	// ErrNilGrid indicates a nil text or pattern grid.
	ErrNilGrid = errors.New("rabinkarp: grid is nil")
)
