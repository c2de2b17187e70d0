package rabinkarp

import (
	"fmt"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBaseCol is the multiplier of the intra-row (horizontal) hash.
	DefaultBaseCol = 31

	// DefaultBaseRow is the multiplier of the inter-row (vertical) hash.
	DefaultBaseRow = 37

	// DefaultModulus bounds all hash arithmetic (the prime 10^9+7).
	DefaultModulus = 1_000_000_007

	// DefaultWorkers scans column windows sequentially.
	DefaultWorkers = 1
)

// HashParams is the immutable configuration of one search: two polynomial
// bases and the modulus bounding all arithmetic.
type HashParams struct {
	BaseCol uint64 `json:"base_col" yaml:"base_col"`
	BaseRow uint64 `json:"base_row" yaml:"base_row"`
	Modulus uint64 `json:"modulus" yaml:"modulus"`
}

// DefaultHashParams returns {31, 37, 1_000_000_007}.
func DefaultHashParams() HashParams {
	return HashParams{
		BaseCol: DefaultBaseCol,
		BaseRow: DefaultBaseRow,
		Modulus: DefaultModulus,
	}
}

// Validate returns ErrInvalidModulus when Modulus < 2, and ErrInvalidBase
// when either base is 0 modulo Modulus (every window would then hash alike).
func (p HashParams) Validate() error {
	if p.Modulus < 2 {
		return fmt.Errorf("HashParams.Validate: %w", ErrInvalidModulus)
	}
	if p.BaseCol%p.Modulus == 0 {
		return fmt.Errorf("HashParams.Validate: BaseCol: %w", ErrInvalidBase)
	}
	if p.BaseRow%p.Modulus == 0 {
		return fmt.Errorf("HashParams.Validate: BaseRow: %w", ErrInvalidBase)
	}

	return nil
}

// reduced returns p with both bases reduced modulo Modulus.
func (p HashParams) reduced() HashParams {
	p.BaseCol %= p.Modulus
	p.BaseRow %= p.Modulus

	return p
}

// ---------- Functional options ----------

// Option configures a Searcher. Options are resolved once by New.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	params    HashParams
	workers   int
	randomize bool
	seed      uint64
	logger    *slog.Logger
}

// defaultOptions mirrors the documented defaults.
func defaultOptions() options {
	return options{
		params:  DefaultHashParams(),
		workers: DefaultWorkers,
		logger:  slog.New(slog.DiscardHandler),
	}
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts ...Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.randomize {
		// Configured bases are replaced on every search; only the modulus matters.
		if o.params.Modulus < 2 {
			return o, fmt.Errorf("gatherOptions: %w", ErrInvalidModulus)
		}
	} else if err := o.params.Validate(); err != nil {
		return o, err
	}
	if o.workers < 0 {
		return o, fmt.Errorf("gatherOptions: %w", ErrInvalidWorkers)
	}
	if o.workers == 0 {
		o.workers = DefaultWorkers
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	o.params = o.params.reduced()

	return o, nil
}

// WithBaseCol sets the horizontal (intra-row) polynomial base.
func WithBaseCol(base uint64) Option {
	return func(o *options) { o.params.BaseCol = base }
}

// WithBaseRow sets the vertical (inter-row) polynomial base.
func WithBaseRow(base uint64) Option {
	return func(o *options) { o.params.BaseRow = base }
}

// WithModulus sets the modulus bounding all hash arithmetic.
// A large prime keeps collisions (and verification work) rare; any value ≥ 2
// yields correct results.
func WithModulus(m uint64) Option {
	return func(o *options) { o.params.Modulus = m }
}

// WithHashParams replaces all three hash parameters at once.
func WithHashParams(p HashParams) Option {
	return func(o *options) { o.params = p }
}

// WithWorkers sets how many goroutines scan disjoint column ranges.
// 0 and 1 mean sequential; negative values are rejected by New.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithRandomizedBases draws fresh bases in [2, Modulus−1] for every search.
// With seed != 0 the k-th search of a Searcher always draws the same bases;
// seed == 0 draws from the runtime's random source. The configured modulus is
// kept; configured bases are ignored and not validated.
func WithRandomizedBases(seed uint64) Option {
	return func(o *options) {
		o.randomize = true
		o.seed = seed
	}
}

// WithLogger sets the structured logger. One Debug record is emitted per
// search; nil restores the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
