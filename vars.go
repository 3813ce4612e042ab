package watchsat

import "math/bits"

const varWordBits = 64

// DefaultMaxVar is used by FormulaNew when no explicit variable ceiling is
// given. It matches the V_MAX floor of 2048 called for in the external
// interfaces.
const DefaultMaxVar = 2048

// Vars is a dense, bit-packed mapping from variable index to
// {Undef, True, False}. A single type serves both as a partial assignment
// (Trial.varsIn / Trial.varsOut) and as a plain variable set (a Formula's
// appears-in set, where polarity is simply never consulted).
type Vars struct {
	maxVar   int
	used     []uint64
	polarity []uint64
}

// NewVars allocates a Vars covering variables 1..maxVar, all initially
// unused.
func NewVars(maxVar int) *Vars {
	n := varWords(maxVar)
	return &Vars{
		maxVar:   maxVar,
		used:     make([]uint64, n),
		polarity: make([]uint64, n),
	}
}

func varWords(maxVar int) int {
	return maxVar/varWordBits + 1
}

func varWordBit(v int) (int, uint) {
	return v / varWordBits, uint(v % varWordBits)
}

// Assert marks l's variable used, recording l's polarity.
func (vs *Vars) Assert(l Literal) {
	w, b := varWordBit(l.VarID())
	vs.used[w] |= 1 << b
	if l.IsNegative() {
		vs.polarity[w] |= 1 << b
	} else {
		vs.polarity[w] &^= 1 << b
	}
}

// Retract clears variable v's used bit.
func (vs *Vars) Retract(v int) {
	w, b := varWordBit(v)
	vs.used[w] &^= 1 << b
	vs.polarity[w] &^= 1 << b
}

func (vs *Vars) isUsed(v int) bool {
	w, b := varWordBit(v)
	return vs.used[w]&(1<<b) != 0
}

func (vs *Vars) isNegativeAssigned(v int) bool {
	w, b := varWordBit(v)
	return vs.polarity[w]&(1<<b) != 0
}

// IsTrue reports whether l is true under this assignment.
func (vs *Vars) IsTrue(l Literal) bool {
	v := l.VarID()
	if !vs.isUsed(v) {
		return false
	}
	return vs.isNegativeAssigned(v) == l.IsNegative()
}

// IsFalse reports whether l is false under this assignment.
func (vs *Vars) IsFalse(l Literal) bool {
	v := l.VarID()
	if !vs.isUsed(v) {
		return false
	}
	return vs.isNegativeAssigned(v) != l.IsNegative()
}

// IsUndef reports whether l's variable has no value yet.
func (vs *Vars) IsUndef(l Literal) bool {
	return !vs.isUsed(l.VarID())
}

// EqualSupport reports whether a and b have assigned the same set of
// variables, regardless of polarity.
func EqualSupport(a, b *Vars) bool {
	n := len(a.used)
	if len(b.used) < n {
		n = len(b.used)
	}
	for i := 0; i < n; i++ {
		if a.used[i] != b.used[i] {
			return false
		}
	}
	for i := n; i < len(a.used); i++ {
		if a.used[i] != 0 {
			return false
		}
	}
	for i := n; i < len(b.used); i++ {
		if b.used[i] != 0 {
			return false
		}
	}
	return true
}

// PopAnyUsed scans for any used variable, removes it, and returns it as a
// literal carrying the stored polarity. The scan order (lowest word, lowest
// bit first) is deterministic but the spec only guarantees termination and
// completeness, not any particular branching order.
func (vs *Vars) PopAnyUsed() (Literal, bool) {
	for w, word := range vs.used {
		if word == 0 {
			continue
		}
		b := bits.TrailingZeros64(word)
		v := w*varWordBits + b
		neg := vs.polarity[w]&(1<<uint(b)) != 0
		vs.used[w] &^= 1 << uint(b)
		vs.polarity[w] &^= 1 << uint(b)
		return NewLiteral(v, neg), true
	}
	return 0, false
}

// Assignment returns the signed DIMACS-style value for every used variable
// in [1, maxVar]. It supplements the minimal programmatic surface so tests
// (and the CLI) can report a witness, not just the verdict.
func (vs *Vars) Assignment(maxVar int) []int {
	out := make([]int, 0, maxVar)
	for v := 1; v <= maxVar; v++ {
		if !vs.isUsed(v) {
			continue
		}
		if vs.isNegativeAssigned(v) {
			out = append(out, -v)
		} else {
			out = append(out, v)
		}
	}
	return out
}
