// File: impl_floydwarshall.go
// Role: in-place Floyd–Warshall all-pairs shortest paths over int64 lengths.
// Determinism: fixed k→i→j loop order; strict improvement only.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const opFloydWarshall = "FloydWarshall"

// FloydWarshall relaxes d in place so that d[i][j] becomes the shortest
// distance from i to j through any intermediate vertices.
//
// d must be square and is expected to come from FromGraph or NewDistances.
// Entries equal to core.Infinity are skipped, so unreachable pairs stay +∞.
// Returns ErrNegativeCycle as soon as a diagonal entry turns negative; d then
// holds partially relaxed values and must be discarded.
//
// Complexity: O(V³) time, O(1) extra space.
func FloydWarshall(d *Dense) error {
	if d == nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, ErrNilMatrix)
	}
	if d.r != d.c {
		return fmt.Errorf("%s: %dx%d: %w", opFloydWarshall, d.r, d.c, ErrNonSquare)
	}

	n := d.r
	data := d.data

	var (
		k, i, j      int   // loop indices
		baseK, baseI int   // row offsets for K and I in the flat buffer
		ik, kj, cand int64 // d[i,k], d[k,j] and the candidate via k
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == core.Infinity {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == core.Infinity {
					continue
				}
				if cand = ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}

		// Stop at the first negative diagonal: further rounds would only
		// drive entries toward overflow.
		for i = 0; i < n; i++ {
			if data[i*n+i] < 0 {
				return fmt.Errorf("%s: vertex %d: %w", opFloydWarshall, i, ErrNegativeCycle)
			}
		}
	}

	return nil
}
