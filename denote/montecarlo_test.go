// SPDX-License-Identifier: MIT
package denote_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxlab/zxrewrite/denote"
	"github.com/zxlab/zxrewrite/diagram"
)

// identityDenote ignores its diagram and always returns the identity map,
// letting these tests exercise Equivalent's statistics without a real
// tensor-contraction backend.
func identityDenote(*diagram.Diagram) (denote.LinearMap, error) {
	return func(probe []complex128) []complex128 {
		out := make([]complex128, len(probe))
		copy(out, probe)

		return out
	}, nil
}

// scaledDenote returns a LinearMap that scales every component by a fixed
// nonzero complex scalar, simulating a rewrite that is sound "up to a
// global scalar."
func scaledDenote(scalar complex128) denote.DenoteFunc {
	return func(*diagram.Diagram) (denote.LinearMap, error) {
		return func(probe []complex128) []complex128 {
			out := make([]complex128, len(probe))
			for i, x := range probe {
				out[i] = x * scalar
			}

			return out
		}, nil
	}
}

func TestMonteCarlo_EquivalentUpToGlobalScalar(t *testing.T) {
	oracle := denote.NewMonteCarlo(identityDenote, 4, denote.WithRand(rand.New(rand.NewSource(2))))

	d := diagram.NewDiagram()
	a, err := oracle.Denote(d)
	require.NoError(t, err)

	scaled := scaledDenote(complex(0, 3)) // a purely imaginary, magnitude-3 scalar
	b, err := denote.NewMonteCarlo(scaled, 4).Denote(d)
	require.NoError(t, err)

	assert.True(t, oracle.Equivalent(a, b))
}

func TestMonteCarlo_RejectsGenuineDifference(t *testing.T) {
	oracle := denote.NewMonteCarlo(identityDenote, 4, denote.WithRand(rand.New(rand.NewSource(3))))

	d := diagram.NewDiagram()
	a, err := oracle.Denote(d)
	require.NoError(t, err)

	permuted := func(*diagram.Diagram) (denote.LinearMap, error) {
		return func(probe []complex128) []complex128 {
			out := make([]complex128, len(probe))
			for i, x := range probe {
				out[(i+1)%len(probe)] = x
			}

			return out
		}, nil
	}
	b, err := denote.NewMonteCarlo(permuted, 4).Denote(d)
	require.NoError(t, err)

	assert.False(t, oracle.Equivalent(a, b))
}

func TestMonteCarlo_WithTrialsPanicsBelowMinimum(t *testing.T) {
	assert.Panics(t, func() { denote.WithTrials(10) })
}

func TestMonteCarlo_DoesNotMutateInput(t *testing.T) {
	d := diagram.NewDiagram()
	d.AddSpider(diagram.Green, 0)
	before := d.VertexCount()

	mutatingDenote := func(clone *diagram.Diagram) (denote.LinearMap, error) {
		clone.AddSpider(diagram.Red, 1) // mutate the clone, never the original
		return func(probe []complex128) []complex128 { return probe }, nil
	}
	_, err := denote.NewMonteCarlo(mutatingDenote, 2).Denote(d)
	require.NoError(t, err)

	assert.Equal(t, before, d.VertexCount())
}
