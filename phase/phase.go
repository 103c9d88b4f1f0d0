// File: phase.go
// Role: Expr tagged variant (Const/Var/BinOp) and modular-arithmetic helpers.
// Determinism:
//   - Normalize always folds into [0, 2*Pi); never returns a negative value.
// AI-HINT (file):
//   - Var carries only a name; resolution lives in a Bindings map (see bindings.go).
//   - Epsilon is the shared tolerance for all phase comparisons in this module.

package phase

import "math"

// Epsilon is the tolerance used by every modular phase comparison in this
// package and in the packages built on top of it (rule, match, rewrite).
const Epsilon = 1e-9

// TwoPi is the modulus all phases are folded into.
const TwoPi = 2 * math.Pi

// Op identifies a binary phase operator.
type Op int

// The four binary operators a BinOp may carry.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// String renders an Op using its conventional symbol, for diagnostics.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// Expr is a node in a phase-expression tree. The only implementations are
// Const, Var, and BinOp, declared in this package; external packages consume
// Expr values through Evaluate/Match/Variables and never need to type-switch
// on it themselves.
type Expr interface {
	exprNode()
}

// Const is a literal phase value, not subject to resolution.
type Const float64

func (Const) exprNode() {}

// Var is a named, unresolved phase variable. Two Var values with the same
// name refer to the same logical variable within one Bindings context.
type Var string

func (Var) exprNode() {}

// BinOp applies Op to Left and Right.
type BinOp struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (*BinOp) exprNode() {}

// Add, Sub, Mul, Div are small constructors mirroring the four operators,
// convenient when the rule library builds literal expression trees.
func Add(l, r Expr) Expr { return &BinOp{Op: OpAdd, Left: l, Right: r} }
func Sub(l, r Expr) Expr { return &BinOp{Op: OpSub, Left: l, Right: r} }
func Mul(l, r Expr) Expr { return &BinOp{Op: OpMul, Left: l, Right: r} }
func Div(l, r Expr) Expr { return &BinOp{Op: OpDiv, Left: l, Right: r} }

// Negate returns -e as a BinOp subtraction from the zero constant, since
// phase values have no dedicated unary negation node.
func Negate(e Expr) Expr { return Sub(Const(0), e) }

// Normalize folds x into [0, TwoPi).
//
// Complexity: O(1).
func Normalize(x float64) float64 {
	y := math.Mod(x, TwoPi)
	if y < 0 {
		y += TwoPi
	}

	return y
}

// modularEqual reports whether a and b denote the same phase within
// Epsilon, accounting for wraparound near 0/TwoPi.
func modularEqual(a, b float64) bool {
	d := math.Mod(math.Abs(Normalize(a)-Normalize(b)), TwoPi)
	if d > TwoPi/2 {
		d = TwoPi - d
	}

	return d < Epsilon
}

// Variables returns the distinct variable names appearing in e, in
// first-encounter (pre-order, left-to-right) order.
//
// Complexity: O(n) in the size of the expression tree.
func Variables(e Expr) []string {
	seen := make(map[string]bool)
	var out []string
	var walk func(Expr)
	walk = func(n Expr) {
		switch t := n.(type) {
		case Const:
			// no variables
		case Var:
			if !seen[string(t)] {
				seen[string(t)] = true
				out = append(out, string(t))
			}
		case *BinOp:
			walk(t.Left)
			walk(t.Right)
		}
	}
	walk(e)

	return out
}
