// File: montecarlo.go
// Role: MonteCarlo — the reference Oracle adapter spec.md §6 specifies:
//       apply both linear maps to the same random probe vectors, normalize
//       the outputs into probability distributions (invariant to any
//       nonzero global scalar), and compare componentwise over >=100
//       trials.
package denote

import (
	"math"
	"math/rand"

	"github.com/zxlab/zxrewrite/diagram"
	"github.com/zxlab/zxrewrite/zxerr"
)

// DefaultTrials is the minimum trial count spec.md §6 requires ("≥100
// trials").
const DefaultTrials = 100

// DefaultEpsilon is the per-component tolerance used when comparing
// normalized probability vectors.
const DefaultEpsilon = 1e-6

// MonteCarlo is a reference Oracle: it clones its input before calling the
// injected DenoteFunc (so the live diagram is never at risk, regardless of
// what that function does internally), and decides Equivalent via randomized
// probe-vector sampling.
type MonteCarlo struct {
	denote   DenoteFunc
	inputDim int
	trials   int
	epsilon  float64
	rng      *rand.Rand
}

// MonteCarloOption customizes a MonteCarlo oracle.
type MonteCarloOption func(*MonteCarlo)

// WithTrials overrides the number of probe vectors sampled per Equivalent
// call. Panics if n < DefaultTrials, since spec.md §6 mandates at least 100.
func WithTrials(n int) MonteCarloOption {
	if n < DefaultTrials {
		panic("denote: WithTrials below the minimum of 100")
	}

	return func(m *MonteCarlo) { m.trials = n }
}

// WithEpsilon overrides the per-component comparison tolerance.
func WithEpsilon(eps float64) MonteCarloOption {
	return func(m *MonteCarlo) { m.epsilon = eps }
}

// WithRand supplies an explicit RNG, for reproducible comparisons in tests.
func WithRand(r *rand.Rand) MonteCarloOption {
	if r == nil {
		panic("denote: WithRand(nil)")
	}

	return func(m *MonteCarlo) { m.rng = r }
}

// NewMonteCarlo builds a MonteCarlo oracle around denote, which must accept
// (and return a LinearMap over) vectors of the given inputDim.
func NewMonteCarlo(denote DenoteFunc, inputDim int, opts ...MonteCarloOption) *MonteCarlo {
	m := &MonteCarlo{
		denote:   denote,
		inputDim: inputDim,
		trials:   DefaultTrials,
		epsilon:  DefaultEpsilon,
		rng:      rand.New(rand.NewSource(1)),
	}
	for _, apply := range opts {
		apply(m)
	}

	return m
}

// Denote clones d and hands the clone to the injected DenoteFunc, so the
// oracle never risks mutating the live diagram (spec.md §6).
func (m *MonteCarlo) Denote(d *diagram.Diagram) (LinearMap, error) {
	lm, err := m.denote(d.Clone())
	if err != nil {
		return nil, zxerr.Wrap("denote.MonteCarlo.Denote", err)
	}

	return lm, nil
}

// Equivalent reports whether a and b agree up to a nonzero global scalar,
// sampled over m.trials random probe vectors: apply both maps to the same
// probe, normalize each output into a probability distribution, and compare
// componentwise within m.epsilon.
func (m *MonteCarlo) Equivalent(a, b LinearMap) bool {
	for t := 0; t < m.trials; t++ {
		probe := m.randomProbe()
		pa, ok := normalizeToProbabilities(a(probe))
		if !ok {
			return false
		}
		pb, ok := normalizeToProbabilities(b(probe))
		if !ok {
			return false
		}
		if len(pa) != len(pb) {
			return false
		}
		for i := range pa {
			if math.Abs(pa[i]-pb[i]) > m.epsilon {
				return false
			}
		}
	}

	return true
}

func (m *MonteCarlo) randomProbe() []complex128 {
	probe := make([]complex128, m.inputDim)
	for i := range probe {
		probe[i] = complex(2*m.rng.Float64()-1, 2*m.rng.Float64()-1)
	}

	return probe
}

// normalizeToProbabilities turns an amplitude vector into |amplitude|^2
// components summing to 1, which is invariant to any nonzero global scalar
// multiplying the original vector. Returns ok=false for an all-zero vector,
// which cannot be normalized and signals a degenerate (non-comparable)
// output.
func normalizeToProbabilities(v []complex128) ([]float64, bool) {
	out := make([]float64, len(v))
	var sum float64
	for i, x := range v {
		p := real(x)*real(x) + imag(x)*imag(x)
		out[i] = p
		sum += p
	}
	if sum == 0 {
		return nil, false
	}
	for i := range out {
		out[i] /= sum
	}

	return out, true
}
