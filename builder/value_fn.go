// value_fn.go - edge value generators.
//
// A ValueFn must be deterministic for a given RNG state so builds stay
// reproducible per seed.

package builder

import (
	"fmt"
	"math/rand"
)

// ValueFn produces the value stored on the edge (nodeU, nodeV). The RNG is
// the one resolved into the Config; generators that ignore it are constant.
type ValueFn[K comparable, V any] func(nodeU, nodeV K, rng *rand.Rand) V

// ConstantValue returns a ValueFn that puts the same value on every edge.
func ConstantValue[K comparable, V any](value V) ValueFn[K, V] {
	return func(_, _ K, _ *rand.Rand) V {
		return value
	}
}

// UniformInt returns a ValueFn drawing integers uniformly from [min, max].
// Panics if max < min.
func UniformInt[K comparable](min, max int) ValueFn[K, int] {
	if max < min {
		panic(fmt.Sprintf("builder: UniformInt requires min <= max, got min=%d, max=%d", min, max))
	}
	return func(_, _ K, rng *rand.Rand) int {
		if max == min {
			return min
		}

		return min + rng.Intn(max-min+1)
	}
}

// UniformFloat returns a ValueFn drawing floats uniformly from [min, max).
// Panics if max < min.
func UniformFloat[K comparable](min, max float64) ValueFn[K, float64] {
	if max < min {
		panic(fmt.Sprintf("builder: UniformFloat requires min <= max, got min=%g, max=%g", min, max))
	}
	return func(_, _ K, rng *rand.Rand) float64 {
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
