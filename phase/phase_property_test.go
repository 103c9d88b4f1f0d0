// SPDX-License-Identifier: MIT
package phase_test

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/zxlab/zxrewrite/phase"
)

// exprGen builds a random Const/BinOp tree, mirroring the random-structure
// generators in dshills-dungo's synthesis and graph property tests.
func exprGen(t *rapid.T, depth int) phase.Expr {
	if depth <= 0 || rapid.Bool().Draw(t, "leaf") {
		return phase.Const(rapid.Float64Range(-100, 100).Draw(t, "const"))
	}
	ops := []func(l, r phase.Expr) phase.Expr{phase.Add, phase.Sub, phase.Mul}
	op := ops[rapid.IntRange(0, len(ops)-1).Draw(t, "op")]

	return op(exprGen(t, depth-1), exprGen(t, depth-1))
}

// TestEvaluate_AlwaysNormalized checks the modularity property from the
// universal-properties list: any fully-resolved phase expression evaluates
// to a value in [0, 2*pi).
func TestEvaluate_AlwaysNormalized(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := exprGen(t, 3)
		v, err := phase.Evaluate(e, phase.NewBindings())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v < 0 || v >= 2*math.Pi {
			t.Fatalf("Evaluate returned %v, want value in [0, 2*pi)", v)
		}
	})
}

// TestNormalize_IsIdempotent checks that normalizing an already-normalized
// value is a no-op, and that normalizing any value twice agrees with
// normalizing it once.
func TestNormalize_IsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-1000, 1000).Draw(t, "x")
		once := phase.Normalize(x)
		twice := phase.Normalize(once)
		if math.Abs(once-twice) > 1e-9 {
			t.Fatalf("Normalize not idempotent: once=%v twice=%v", once, twice)
		}
	})
}
