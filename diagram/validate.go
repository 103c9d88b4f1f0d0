// File: validate.go
// Role: Invariant checks the Rewriter and Optimizer run after every rewrite
//       (spec.md §7, §8 properties 5 and 6).
// AI-HINT (file):
//   - Validate never mutates; a violation always means a bug in a rule or
//     the rewriter itself, never bad caller input — spec.md classifies it
//     InvariantViolation, fatal.
package diagram

import (
	"fmt"
	"math"

	"github.com/zxlab/zxrewrite/zxerr"
)

// Validate checks the two structural invariants spec.md §8 calls out as
// testable properties: every boundary has degree exactly 1, and every
// spider phase lies in [0, 2*Pi). It returns the first violation found,
// wrapped as zxerr.ErrInvariantViolation.
//
// Complexity: O(V + E).
func (d *Diagram) Validate() error {
	for _, id := range d.Vertices() {
		v, err := d.GetVertex(id)
		if err != nil {
			return zxerr.Wrap("diagram.Validate", err)
		}
		if v.Kind == KindBoundary {
			deg, err := d.Degree(id)
			if err != nil {
				return zxerr.Wrap("diagram.Validate", err)
			}
			if deg != 1 {
				return zxerr.Wrap("diagram.Validate",
					fmt.Errorf("boundary %s has degree %d: %w", id, deg, zxerr.ErrInvariantViolation))
			}
		} else {
			if v.Phase < 0 || v.Phase >= 2*math.Pi {
				return zxerr.Wrap("diagram.Validate",
					fmt.Errorf("spider %s phase %v out of range: %w", id, v.Phase, zxerr.ErrInvariantViolation))
			}
		}
	}

	return nil
}
