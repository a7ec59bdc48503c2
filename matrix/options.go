// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the random constructors.
// This file defines:
//   - RandomOption (functional option over an internal randomConfig),
//   - WithSeed / WithRand constructors (panic on nonsensical values),
//   - newRandomConfig, which applies options in order (later overrides earlier).
//
// Design goals:
//   - No global state: every call owns its source unless WithRand shares one.
//   - Determinism is explicit: seed via WithSeed for reproducible fixtures.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math/rand"
	"time"
)

// randomConfig aggregates the knobs of Random / RandomVector.
// It is built per call and never escapes.
type randomConfig struct {
	// rng is the sample source; nil means "seed a fresh source from the clock".
	rng *rand.Rand
}

// RandomOption customizes a random constructor by mutating a randomConfig.
// Complexity: applying N options costs O(N) time, O(1) space.
type RandomOption func(*randomConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) {
		// Seeded source → reproducible draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit source, e.g. to draw several matrices from
// one stream. *rand.Rand is not safe for concurrent use; the caller owns it.
// Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) RandomOption {
	if r == nil {
		// Fail fast to avoid silent fallback to a clock seed.
		panic("matrix: WithRand(nil)")
	}
	return func(c *randomConfig) {
		c.rng = r
	}
}

// newRandomConfig applies opts in order and resolves the source.
// Complexity: O(len(opts)).
func newRandomConfig(opts ...RandomOption) randomConfig {
	var cfg randomConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		// Independent, unsynchronized source per call.
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
