// Package watchsat implements a DPLL SAT solver using chronological
// backtracking and two-watched-literal unit propagation.
package watchsat

import "fmt"

// Literal packs a variable index, its polarity, and a decision marker into a
// single integer. Variable indices start at 1; the zero value is the
// reserved null literal.
type Literal int32

const (
	litDecisionBit Literal = 1
	litPolarityBit Literal = 2
	litVarShift            = 2
)

// NewLiteral returns the literal for variable v (v must be >= 1) under the
// given polarity. negated true yields ¬v.
func NewLiteral(v int, negated bool) Literal {
	l := Literal(v) << litVarShift
	if negated {
		l |= litPolarityBit
	}
	return l
}

// PositiveLiteral returns v.
func PositiveLiteral(v int) Literal { return NewLiteral(v, false) }

// NegativeLiteral returns ¬v.
func NegativeLiteral(v int) Literal { return NewLiteral(v, true) }

// VarID returns the variable this literal refers to.
func (l Literal) VarID() int { return int(l >> litVarShift) }

// IsNegative reports whether l is the negation of its variable.
func (l Literal) IsNegative() bool { return l&litPolarityBit != 0 }

// Negate toggles l's polarity bit only; the decision marker is unaffected.
func (l Literal) Negate() Literal { return l ^ litPolarityBit }

// IsDecision reports whether l carries the decision marker.
func (l Literal) IsDecision() bool { return l&litDecisionBit != 0 }

// MarkDecision sets l's decision marker.
func (l Literal) MarkDecision() Literal { return l | litDecisionBit }

// ClearDecision clears l's decision marker.
func (l Literal) ClearDecision() Literal { return l &^ litDecisionBit }

// EqualIgnoringDecision reports whether a and b denote the same literal,
// disregarding their decision markers.
func EqualIgnoringDecision(a, b Literal) bool {
	return a&^litDecisionBit == b&^litDecisionBit
}

// SignedValue returns the DIMACS-style signed integer for l, e.g. -3 for ¬x3.
func (l Literal) SignedValue() int {
	if l.IsNegative() {
		return -l.VarID()
	}
	return l.VarID()
}

func (l Literal) String() string {
	if l == 0 {
		return "<nil-literal>"
	}
	s := fmt.Sprintf("%d", l.SignedValue())
	if l.IsDecision() {
		s += "*"
	}
	return s
}

// litIndex returns the dense, 0-based index used by the watch index for l:
// 2*varID + polarity. It ignores the decision marker, per the watch index's
// keying rule (see the Open Question in the design notes).
func litIndex(l Literal) int {
	idx := 2 * l.VarID()
	if l.IsNegative() {
		idx++
	}
	return idx
}
