// options.go - functional options and the resolved Config.
//
// Option constructors validate and panic on meaningless inputs; the
// constructors themselves only ever return sentinel errors.

package builder

import "math/rand"

// defaultSeed feeds the RNG when neither WithSeed nor WithRand is given,
// so stochastic value generators stay reproducible out of the box.
const defaultSeed int64 = 1

// Config carries the resolved builder settings a Constructor works with.
// BuildGraph resolves one from its options; tests may also fill a Config
// by hand when invoking a Constructor directly.
type Config[K comparable, V any] struct {
	// IDFn maps a zero-based node index to its key. Required: constructors
	// return ErrNeedIDFn when it is nil.
	IDFn IDFn[K]

	// ValueFn produces the value stored on each emitted edge. When nil,
	// edges carry the zero value of V.
	ValueFn ValueFn[K, V]

	// Rand drives stochastic ValueFns. Never nil after option resolution.
	Rand *rand.Rand
}

// value resolves the edge value for (nodeU, nodeV), tolerating a nil ValueFn.
func (c Config[K, V]) value(nodeU, nodeV K) V {
	if c.ValueFn == nil {
		var zero V
		return zero
	}

	return c.ValueFn(nodeU, nodeV, c.Rand)
}

// Option customizes the Config a Constructor receives.
type Option[K comparable, V any] func(*Config[K, V])

// newConfig applies opts over the defaults.
func newConfig[K comparable, V any](opts ...Option[K, V]) Config[K, V] {
	cfg := Config[K, V]{
		Rand: rand.New(rand.NewSource(defaultSeed)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDFn sets the deterministic node ID scheme: index -> key.
// Panics on nil.
func WithIDFn[K comparable, V any](fn IDFn[K]) Option[K, V] {
	if fn == nil {
		panic("builder: WithIDFn(nil)")
	}
	return func(c *Config[K, V]) {
		c.IDFn = fn
	}
}

// WithValueFn sets the per-edge value generator.
// Panics on nil.
func WithValueFn[K comparable, V any](fn ValueFn[K, V]) Option[K, V] {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *Config[K, V]) {
		c.ValueFn = fn
	}
}

// WithSeed replaces the RNG with one seeded deterministically.
func WithSeed[K comparable, V any](seed int64) Option[K, V] {
	return func(c *Config[K, V]) {
		c.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Prefer WithSeed for reproducible runs.
// Panics on nil.
func WithRand[K comparable, V any](r *rand.Rand) Option[K, V] {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *Config[K, V]) {
		c.Rand = r
	}
}
