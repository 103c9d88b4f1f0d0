// SPDX-License-Identifier: MIT
// Package: zxlab/zxerr
//
// errors.go — sentinel errors shared across the ZX-diagram rewriting core.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations SHOULD attach context using `%w` (see Wrap below).
//   - Packages MUST NOT panic for ordinary control flow. Invariant
//     violations (spec §7) are returned as errors wrapping
//     ErrInvariantViolation, not raised as panics; the panics in this module
//     are plain-string panics on invalid construction-time arguments
//     (config and denote option constructors, the rules library's literals).
//
// AI-Hints (practical guidance):
//   - Wrap lower-level errors with method context: zxerr.Wrap("Rewriter.Splice", err).
//   - Check with errors.Is in tests and production code; avoid string comparisons.
package zxerr

import (
	"errors"
	"fmt"
)

// ErrUnresolvedVariable indicates Evaluate() was called on a phase expression
// that still contains an unresolved Variable. Per spec §7 this is a program
// bug (UnresolvedExpression) and is always fatal.
var ErrUnresolvedVariable = errors.New("zx: unresolved phase variable")

// ErrInvalidColorClass indicates a rule referenced a color class outside
// {green, red, white, black, grey}. Construction-time check; fatal.
var ErrInvalidColorClass = errors.New("zx: invalid color class")

// ErrInvariantViolation indicates a diagram invariant was broken (e.g. a
// boundary with degree != 1 after a rewrite). Fatal; indicates a bug in the
// rule or the rewriter, never in caller input.
var ErrInvariantViolation = errors.New("zx: diagram invariant violation")

// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
var ErrVertexNotFound = errors.New("zx: vertex not found")

// ErrEdgeNotFound indicates an operation referenced a non-existent wire.
var ErrEdgeNotFound = errors.New("zx: wire not found")

// ErrNotBoundary indicates an operation expected a boundary vertex but found
// a spider.
var ErrNotBoundary = errors.New("zx: vertex is not a boundary")

// ErrNotSpider indicates an operation expected a spider vertex but found a
// boundary.
var ErrNotSpider = errors.New("zx: vertex is not a spider")

// ErrNotInvertible indicates a rule cannot construct a sound inverse because
// its source phase expressions contain unresolved binary operations (spec
// §4.6). The placeholder inverse returned in this case never matches;
// match.Match reports it as an ordinary no-match (nil, false, nil), not as
// this error.
var ErrNotInvertible = errors.New("zx: rule has no sound inverse")

// ErrNoConnectingTargets indicates a connecting-wires map entry resolved to
// an empty target list while externals still needed reconnection.
var ErrNoConnectingTargets = errors.New("zx: no connecting-wire targets")

// Wrap attaches method-name context to err using %w, preserving errors.Is
// compatibility with the wrapped sentinel.
func Wrap(method string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", method, err)
}
