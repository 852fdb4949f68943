package skipscan

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/mhr3/skipscan/ascii"
	"github.com/mhr3/skipscan/internal/logger"
	"github.com/mhr3/skipscan/search"
)

// Result is the outcome of a FindAll call.
type Result struct {
	Algorithm search.Algorithm `json:"algorithm" yaml:"algorithm"`
	Positions []int            `json:"positions" yaml:"positions"`
}

// NoMatches reports whether the pattern does not occur in the text.
func (r Result) NoMatches() bool { return len(r.Positions) == 0 }

// Count returns the number of occurrences found.
func (r Result) Count() int { return len(r.Positions) }

// Engine runs searches with a fixed configuration. It is safe for concurrent use.
type Engine struct {
	cfg   Config
	cache *resultCache
}

// New returns an Engine for cfg.
func New(cfg Config) *Engine {
	cfg.applyDefaults()
	e := &Engine{cfg: cfg}
	if cfg.CacheSize > 0 {
		e.cache = newResultCache(cfg.CacheSize)
	}
	return e
}

func (e *Engine) log() *slog.Logger {
	if e.cfg.Logger != nil {
		return e.cfg.Logger
	}
	return logger.Get()
}

// Compile preprocesses pattern for repeated searches.
func (e *Engine) Compile(pattern string, algo search.Algorithm) (search.Matcher, error) {
	if len(pattern) == 0 {
		return nil, &EmptyInputError{Arg: "pattern"}
	}
	if !algo.Valid() {
		return nil, fmt.Errorf("skipscan: %w: %d", search.ErrUnknownAlgorithm, uint8(algo))
	}
	m := search.New(pattern, algo)
	e.log().Debug("matcher built", "algorithm", algo.String(), "pattern_len", len(pattern))
	return m, nil
}

// FindAll returns every position in text where pattern occurs, ignoring
// ASCII case.
func (e *Engine) FindAll(text, pattern string, algo search.Algorithm) (Result, error) {
	if err := validate(text, pattern); err != nil {
		return Result{}, err
	}

	var key cacheKey
	if e.cache != nil && algo.Valid() {
		key = makeCacheKey(text, pattern, algo)
		if pos, ok := e.cache.get(key); ok {
			e.log().Debug("result cache hit", "algorithm", algo.String(), "matches", len(pos))
			return Result{Algorithm: algo, Positions: pos}, nil
		}
	}

	seq, err := e.matches(text, pattern, algo)
	if err != nil {
		return Result{}, err
	}
	res := Result{Algorithm: algo, Positions: search.Collect(seq)}

	if e.cache != nil {
		e.cache.put(key, res.Positions)
	}
	e.log().Debug("search finished", "algorithm", algo.String(), "text_len", len(text), "matches", res.Count())
	return res, nil
}

// Matches is the lazy form of FindAll. Positions are produced as the scan
// advances; each range over the sequence scans text again.
func (e *Engine) Matches(text, pattern string, algo search.Algorithm) (iter.Seq[int], error) {
	if err := validate(text, pattern); err != nil {
		return nil, err
	}
	return e.matches(text, pattern, algo)
}

func (e *Engine) matches(text, pattern string, algo search.Algorithm) (iter.Seq[int], error) {
	m, err := e.Compile(pattern, algo)
	if err != nil {
		return nil, err
	}
	if log := e.log(); log.Enabled(context.Background(), slog.LevelDebug) && !ascii.ValidString(text) {
		log.Debug("text is not ASCII; non-ASCII bytes match exactly", "text_len", len(text))
	}

	seq := m.All(text)
	if e.cfg.Verify {
		seq = verified(seq, text, pattern)
	}
	return seq, nil
}

// verified wraps seq and panics on any position that is out of order or
// does not hold the pattern.
func verified(seq iter.Seq[int], text, pattern string) iter.Seq[int] {
	return func(yield func(int) bool) {
		prev := -1
		for pos := range seq {
			if pos <= prev || pos+len(pattern) > len(text) || !ascii.EqualFold(text[pos:pos+len(pattern)], pattern) {
				panic(fmt.Sprintf("skipscan: bad match at %d for pattern %q", pos, pattern))
			}
			prev = pos
			if !yield(pos) {
				return
			}
		}
	}
}

var defaultEngine = New(Config{})

// FindAll searches text with a default Engine.
func FindAll(text, pattern string, algo search.Algorithm) (Result, error) {
	return defaultEngine.FindAll(text, pattern, algo)
}
