// File: engine.go
// Role: Engine, the process-wide context object spec.md §9's Design
// Notes describe: one LineSolver driver, one LineCache, one Zobrist
// table, shared across every puzzle an Engine solves.

package engine

import (
	"github.com/go-logr/logr"

	"github.com/vlaran/nonogram/linecache"
	"github.com/vlaran/nonogram/linesolver"
	"github.com/vlaran/nonogram/zobrist"
)

// Option configures optional behavior of a new Engine. Use with New(opts...).
type Option func(*config)

type config struct {
	cacheSizeLog2 uint
	zobristSeed   string
	log           logr.Logger
}

func defaultConfig() config {
	return config{
		cacheSizeLog2: linecache.DefaultSizeLog2,
		zobristSeed:   zobrist.DefaultSeed,
		log:           logr.Discard(),
	}
}

// WithCacheSizeLog2 sizes the Engine's LineCache at 2^log2 entries instead
// of linecache.DefaultSizeLog2.
func WithCacheSizeLog2(log2 uint) Option {
	return func(c *config) {
		c.cacheSizeLog2 = log2
	}
}

// WithZobristSeed deterministically reseeds the Engine's Zobrist table.
// Two Engines built with the same seed produce identical cache contents
// and node counts for the same puzzle (spec.md §8 Determinism).
func WithZobristSeed(seed string) Option {
	return func(c *config) {
		c.zobristSeed = seed
	}
}

// WithLogger installs a logr.Logger the Engine emits round-boundary and
// error events to. Default is logr.Discard().
func WithLogger(log logr.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// Engine owns the process-wide collaborators a solve needs: the Zobrist
// table that fingerprints clues, the LineSolver driver, and the LineCache
// those two share across every puzzle this Engine solves. Distinct Engine
// values share nothing and may be driven concurrently from separate
// goroutines.
type Engine struct {
	zobrist *zobrist.Table
	driver  *linesolver.Driver
	cache   *linecache.Cache
	log     logr.Logger
}

// New constructs an Engine. With no options, it uses a deterministic
// default Zobrist seed, a 2^20-entry LineCache, and a discarding logger.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{
		zobrist: zobrist.Build(cfg.zobristSeed),
		driver:  linesolver.NewDriver(),
		cache:   linecache.New(cfg.cacheSizeLog2),
		log:     cfg.log,
	}
}

// Zobrist returns the Engine's fingerprint table, for callers building
// board.LineClue values to feed this Engine (e.g. via the parse package).
func (e *Engine) Zobrist() *zobrist.Table {
	return e.zobrist
}
