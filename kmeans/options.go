package kmeans

// Default knobs; DefaultOptions is the single source of truth for the
// zero-configuration behavior.
const (
	// DefaultMaxIterations caps Lloyd iterations per restart.
	DefaultMaxIterations = 100

	// DefaultRestarts is the number of independent seeded runs; the run
	// with the lowest inertia wins.
	DefaultRestarts = 10
)

// Options configures Partition. The zero value is NOT valid; start from
// DefaultOptions and override fields as needed.
type Options struct {
	// Seed drives all randomness (k-means++ sampling, restart streams).
	// Seed==0 maps to a fixed default seed, so the zero value is still
	// deterministic; it never falls back to the wall clock.
	Seed int64

	// MaxIterations caps Lloyd iterations per restart (≥ 1).
	MaxIterations int

	// Restarts is the number of independent runs (≥ 1), each with its own
	// derived RNG stream.
	Restarts int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Seed:          0,
		MaxIterations: DefaultMaxIterations,
		Restarts:      DefaultRestarts,
	}
}

// validate reports ErrBadOptions for out-of-range knobs.
func (o *Options) validate() error {
	if o.MaxIterations < 1 || o.Restarts < 1 {
		return ErrBadOptions
	}

	return nil
}
