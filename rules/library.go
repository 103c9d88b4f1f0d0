// File: library.go
// Role: Concrete rule constructors (C8) — one function per named scenario,
//       each building its Source/Target rule.Structure literally and wiring
//       VariableMap/ConnectingWiresMap by hand, the way the teacher's
//       builder package hand-assembles named topologies (K_{m,n}, wheel,
//       star) rather than deriving them from a generic graph grammar.
package rules

import (
	"math"

	"github.com/zxlab/zxrewrite/phase"
	"github.com/zxlab/zxrewrite/rule"
)

// mustRule panics on a construction error; every rule built in this file is
// a fixed, hand-checked literal, so a failure here means a programmer error
// in this package, not bad external input.
func mustRule(r *rule.Rule, err error) *rule.Rule {
	if err != nil {
		panic("rules: " + err.Error())
	}

	return r
}

func mustStructure(s *rule.Structure, err error) *rule.Structure {
	if err != nil {
		panic("rules: " + err.Error())
	}

	return s
}

// SpiderFusion matches two adjacent same-colored spiders joined by a plain
// wire and fuses them into one spider of that color whose phase is the sum
// of the two originals (spec.md §8 Spider-1). color must be rule.ClassGreen
// or rule.ClassRed.
func SpiderFusion(color rule.ColorClass) *rule.Rule {
	source := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "a", ColorClass: color, Phase: phase.Var("alpha"), WireBound: rule.AnyWireBound()},
			{ID: "b", ColorClass: color, Phase: phase.Var("beta"), WireBound: rule.AnyWireBound()},
		},
		[]*rule.StructEdge{{A: "a", B: "b"}},
	))
	target := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{{ID: "c", ColorClass: color, Phase: phase.Add(phase.Var("gamma1"), phase.Var("gamma2"))}},
		nil,
	))

	return mustRule(rule.NewRule("spider-fusion", source, target,
		map[string]string{"alpha": "gamma1", "beta": "gamma2"},
		map[string]rule.ConnectingTarget{"a": {"c"}, "b": {"c"}}))
}

// IdentityRemoval absorbs an interior degree-2 green spider of phase 0,
// fusing its two external connections directly (spec.md §8 Spider-2).
func IdentityRemoval() *rule.Rule {
	source := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "s0", ColorClass: rule.ClassGreen, Phase: phase.Const(0), WireBound: rule.MaxWires(2)},
		},
		nil,
	))
	target := mustStructure(rule.NewStructure(nil, nil))

	return mustRule(rule.NewRule("identity-removal", source, target, nil,
		map[string]rule.ConnectingTarget{"s0": nil}))
}

// Bialgebra matches a fully bipartite K_{2,2} of two phase-0 green spiders
// and two phase-0 red spiders (each with one further external connection),
// and fuses it down to one green and one red spider joined by a single wire,
// re-homing the four external lines (spec.md §8 Bialgebra).
func Bialgebra() *rule.Rule {
	source := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "g1", ColorClass: rule.ClassGreen, Phase: phase.Const(0), WireBound: rule.MaxWires(1)},
			{ID: "g2", ColorClass: rule.ClassGreen, Phase: phase.Const(0), WireBound: rule.MaxWires(1)},
			{ID: "b1", ColorClass: rule.ClassRed, Phase: phase.Const(0), WireBound: rule.MaxWires(1)},
			{ID: "b2", ColorClass: rule.ClassRed, Phase: phase.Const(0), WireBound: rule.MaxWires(1)},
		},
		[]*rule.StructEdge{
			{A: "g1", B: "b1"}, {A: "g1", B: "b2"},
			{A: "g2", B: "b1"}, {A: "g2", B: "b2"},
		},
	))
	target := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "ng", ColorClass: rule.ClassGreen, Phase: phase.Const(0)},
			{ID: "nb", ColorClass: rule.ClassRed, Phase: phase.Const(0)},
		},
		[]*rule.StructEdge{{A: "ng", B: "nb"}},
	))

	return mustRule(rule.NewRule("bialgebra", source, target, nil,
		map[string]rule.ConnectingTarget{
			"g1": {"ng"}, "g2": {"ng"},
			"b1": {"nb"}, "b2": {"nb"},
		}))
}

// PiCommutation matches a green spider of free phase α joined by a Hadamard
// wire to a red π spider, and swaps their roles: the result is a red π
// spider joined by a Hadamard wire to a green spider of phase −α, with the
// two original external connections crossed over accordingly (spec.md §8
// π-commutation).
func PiCommutation() *rule.Rule {
	source := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "gv", ColorClass: rule.ClassGreen, Phase: phase.Var("alpha"), WireBound: rule.MaxWires(1)},
			{ID: "rv", ColorClass: rule.ClassRed, Phase: phase.Const(math.Pi), WireBound: rule.MaxWires(1)},
		},
		[]*rule.StructEdge{{A: "gv", B: "rv", Hadamard: true}},
	))
	target := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "newRed", ColorClass: rule.ClassRed, Phase: phase.Const(math.Pi)},
			{ID: "newGreen", ColorClass: rule.ClassGreen, Phase: phase.Negate(phase.Var("alpha2"))},
		},
		[]*rule.StructEdge{{A: "newRed", B: "newGreen", Hadamard: true}},
	))

	return mustRule(rule.NewRule("pi-commutation", source, target,
		map[string]string{"alpha": "alpha2"},
		// Crossed over: gv's old external (toward "in") re-homes to the new
		// red, rv's old external (toward "out") re-homes to the new green.
		map[string]rule.ConnectingTarget{"gv": {"newRed"}, "rv": {"newGreen"}}))
}

// ColorChange recolors a green spider of any phase and degree to red,
// flipping every one of its incident wires (plain <-> Hadamard) and
// preserving its phase (spec.md §8 Color change).
func ColorChange() *rule.Rule {
	source := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "s", ColorClass: rule.ClassGreen, Phase: phase.Var("alpha"), WireBound: rule.AnyWireBound(), Flip: rule.FlipAll()},
		},
		nil,
	))
	target := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{{ID: "t", ColorClass: rule.ClassRed, Phase: phase.Var("alpha2")}},
		nil,
	))

	return mustRule(rule.NewRule("color-change", source, target,
		map[string]string{"alpha": "alpha2"},
		map[string]rule.ConnectingTarget{"s": {"t"}}))
}

// Copy matches a phase-0 red "copy state" (a degree-1 spider absorbed
// entirely into the match) attached to a green spider with at most two
// further external connections, and copies the red state through: the
// green spider vanishes and two fresh phase-0 red spiders take its
// remaining legs, one leg each; with fewer than two legs, a red spider
// without a leg is left unconnected (spec.md §8 Copy, fixed at the smallest
// well-defined arity — the degree of the green spider's external fan-out
// equals the target list length, the well-defined round-robin case spec.md
// §9's second Open Question calls out).
func Copy() *rule.Rule {
	source := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "r", ColorClass: rule.ClassRed, Phase: phase.Const(0), WireBound: rule.MaxWires(0)},
			{ID: "g", ColorClass: rule.ClassGreen, Phase: phase.Var("alpha"), WireBound: rule.MaxWires(2)},
		},
		[]*rule.StructEdge{{A: "r", B: "g"}},
	))
	target := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "r1", ColorClass: rule.ClassRed, Phase: phase.Const(0)},
			{ID: "r2", ColorClass: rule.ClassRed, Phase: phase.Const(0)},
		},
		nil,
	))

	return mustRule(rule.NewRule("copy", source, target, nil,
		map[string]rule.ConnectingTarget{"r": nil, "g": {"r1", "r2"}}))
}

// Hopf matches two opposite-colored spiders joined by exactly two parallel
// plain wires and removes both wires, leaving the two spiders exactly as
// they were on any other connections they carry (spec.md §8 Hopf). Both
// spiders are always rebuilt: a pair with no further externals remains in
// the diagram as two isolated spiders; it is not removed.
func Hopf() *rule.Rule {
	source := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "sa", ColorClass: rule.ClassWhite, Phase: phase.Var("alpha"), WireBound: rule.AnyWireBound()},
			{ID: "sb", ColorClass: rule.ClassBlack, Phase: phase.Var("beta"), WireBound: rule.AnyWireBound()},
		},
		[]*rule.StructEdge{{A: "sa", B: "sb"}, {A: "sa", B: "sb"}},
	))
	target := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "na", ColorClass: rule.ClassWhite, Phase: phase.Var("alpha2")},
			{ID: "nb", ColorClass: rule.ClassBlack, Phase: phase.Var("beta2")},
		},
		nil,
	))

	return mustRule(rule.NewRule("hopf", source, target,
		map[string]string{"alpha": "alpha2", "beta": "beta2"},
		map[string]rule.ConnectingTarget{"sa": {"na"}, "sb": {"nb"}}))
}

// SelfLoopCleanup matches a spider of either color carrying at least one
// self-loop wire of the given Hadamard flag and rebuilds the spider with the
// same color and phase but without any of its self-loops: every loop on the
// matched spider counts as interior, so all of them are removed (spec.md §8
// "parallel/self-loop cleanup", self-loop half — the parallel-wire half of
// that entry is Hopf, above).
func SelfLoopCleanup(hadamard bool) *rule.Rule {
	source := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "s1", ColorClass: rule.ClassWhite, Phase: phase.Var("alpha"), WireBound: rule.AnyWireBound()},
		},
		[]*rule.StructEdge{{A: "s1", B: "s1", Hadamard: hadamard}},
	))
	target := mustStructure(rule.NewStructure(
		[]*rule.StructVertex{{ID: "t1", ColorClass: rule.ClassWhite, Phase: phase.Var("alpha2")}},
		nil,
	))

	return mustRule(rule.NewRule("self-loop-cleanup", source, target,
		map[string]string{"alpha": "alpha2"},
		map[string]rule.ConnectingTarget{"s1": {"t1"}}))
}
