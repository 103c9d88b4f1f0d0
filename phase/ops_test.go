// SPDX-License-Identifier: MIT
// Package phase_test verifies Expr evaluation and matching contracts.
package phase_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zxlab/zxrewrite/phase"
)

func TestEvaluate_Const(t *testing.T) {
	v, err := phase.Evaluate(phase.Const(math.Pi), phase.NewBindings())
	assert.NoError(t, err)
	assert.InDelta(t, math.Pi, v, phase.Epsilon)
}

func TestEvaluate_UnresolvedVariable(t *testing.T) {
	_, err := phase.Evaluate(phase.Var("alpha"), phase.NewBindings())
	assert.Error(t, err)
}

func TestEvaluate_BinOp(t *testing.T) {
	e := phase.Add(phase.Const(1), phase.Const(2))
	v, err := phase.Evaluate(e, phase.NewBindings())
	assert.NoError(t, err)
	assert.InDelta(t, 3.0, v, phase.Epsilon)
}

func TestMatch_ConstExact(t *testing.T) {
	b := phase.NewBindings()
	assert.True(t, phase.Match(phase.Const(math.Pi/4), math.Pi/4, b))
	assert.False(t, phase.Match(phase.Const(math.Pi/4), math.Pi/2, b))
}

func TestMatch_VariableBindsOnFirstUse(t *testing.T) {
	b := phase.NewBindings()
	v := phase.Var("alpha")

	// First encounter: matches anything and resolves alpha.
	assert.True(t, phase.Match(v, math.Pi/3, b))
	bound, ok := b.Resolved("alpha")
	assert.True(t, ok)
	assert.InDelta(t, math.Pi/3, bound, phase.Epsilon)

	// Second encounter: must agree with the stored value.
	assert.True(t, phase.Match(v, math.Pi/3, b))
	assert.False(t, phase.Match(v, math.Pi/2, b))
}

func TestMatch_BinOpRejectsUnresolvedVariable(t *testing.T) {
	b := phase.NewBindings()
	e := phase.Add(phase.Var("alpha"), phase.Const(1))
	assert.False(t, phase.Match(e, 3, b))
}

func TestMatch_BinOpMatchesWhenFullyResolved(t *testing.T) {
	b := phase.NewBindings()
	b.Resolve("alpha", 1)
	e := phase.Add(phase.Var("alpha"), phase.Const(2))
	assert.True(t, phase.Match(e, 3, b))
	assert.False(t, phase.Match(e, 4, b))
}

func TestNormalize_Wraparound(t *testing.T) {
	assert.InDelta(t, 0.0, phase.Normalize(phase.TwoPi), 1e-12)
	assert.InDelta(t, phase.TwoPi-1, phase.Normalize(-1), 1e-12)
}

func TestVariables_DistinctInOrder(t *testing.T) {
	e := phase.Add(phase.Var("a"), phase.Mul(phase.Var("b"), phase.Var("a")))
	assert.Equal(t, []string{"a", "b"}, phase.Variables(e))
}
