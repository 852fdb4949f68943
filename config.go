package skipscan

import "log/slog"

// Config holds the options of an Engine. The zero value is ready to use.
type Config struct {
	// Verify re-checks every reported position against the text and panics
	// if the text does not hold the pattern there.
	Verify bool

	// CacheSize is the number of FindAll results kept for reuse.
	// Zero disables the cache.
	CacheSize int

	// Logger receives debug events. Nil means the process-wide logger.
	Logger *slog.Logger
}

func (c *Config) applyDefaults() {
	if c.CacheSize < 0 {
		c.CacheSize = 0
	}
}
