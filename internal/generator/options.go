package generator

// Options configures puzzle generation behavior.
type Options struct {
	// RemoveCount is how many cells to blank when carving, 1–64.
	RemoveCount int

	// Seed makes generation reproducible (0 = time-based).
	Seed int64

	// MaxAttempts caps carve iterations (0 = default cap).
	MaxAttempts int
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		RemoveCount: DefaultRemoveCount,
		Seed:        0,
		MaxAttempts: 0,
	}
}
