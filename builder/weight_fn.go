// File: weight_fn.go
// Role: edge-length distributions. All values stay within ±core.MaxLength.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/shortpath/core"
)

// DefaultEdgeWeight is the length emitted when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn returns the next edge length. rng may be nil.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Negative values are allowed.
// Panics if |value| > core.MaxLength.
func ConstantWeightFn(value int64) WeightFn {
	checkLength("ConstantWeightFn", value)

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [min,max]. Without an RNG it returns
// min. Panics if max < min or either bound exceeds ±core.MaxLength.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	checkLength("UniformWeightFn", min)
	checkLength("UniformWeightFn", max)

	span := max - min + 1
	return func(rng *rand.Rand) int64 {
		if rng == nil || span == 1 {
			return min
		}

		return min + rng.Int63n(span)
	}
}

func checkLength(method string, v int64) {
	if v > core.MaxLength || v < -core.MaxLength {
		panic(fmt.Sprintf("%s: |%d| exceeds %d", method, v, int64(core.MaxLength)))
	}
}
