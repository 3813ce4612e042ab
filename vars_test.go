package watchsat

import "testing"

func TestVarsAssertRetract(t *testing.T) {
	vs := NewVars(16)
	l := NegativeLiteral(5)

	if !vs.IsUndef(l) {
		t.Fatalf("fresh Vars should report IsUndef for every literal")
	}

	vs.Assert(l)
	if !vs.IsTrue(l) {
		t.Errorf("IsTrue(%v) = false, want true after asserting it", l)
	}
	if vs.IsFalse(l) {
		t.Errorf("IsFalse(%v) = true, want false", l)
	}
	if !vs.IsFalse(l.Negate()) {
		t.Errorf("IsFalse(%v) = false, want true", l.Negate())
	}
	if vs.IsUndef(l) {
		t.Errorf("IsUndef(%v) = true, want false after asserting it", l)
	}

	vs.Retract(l.VarID())
	if !vs.IsUndef(l) {
		t.Errorf("IsUndef(%v) = false, want true after retracting", l)
	}
}

func TestVarsEqualSupport(t *testing.T) {
	a := NewVars(16)
	b := NewVars(16)
	if !EqualSupport(a, b) {
		t.Fatalf("two empty Vars should have equal support")
	}

	a.Assert(PositiveLiteral(3))
	if EqualSupport(a, b) {
		t.Fatalf("support should differ once a assigns a variable b has not")
	}

	// Polarity must not matter to support comparison.
	b.Assert(NegativeLiteral(3))
	if !EqualSupport(a, b) {
		t.Fatalf("equal_support should ignore polarity, only compare used bits")
	}
}

func TestVarsPopAnyUsedDrainsExactlyOnce(t *testing.T) {
	vs := NewVars(128)
	want := map[int]bool{2: false, 70: true, 127: false}
	for v, neg := range want {
		vs.Assert(NewLiteral(v, neg))
	}

	got := make(map[int]bool)
	for {
		l, ok := vs.PopAnyUsed()
		if !ok {
			break
		}
		if _, dup := got[l.VarID()]; dup {
			t.Fatalf("PopAnyUsed returned variable %d twice", l.VarID())
		}
		got[l.VarID()] = l.IsNegative()
	}

	if len(got) != len(want) {
		t.Fatalf("PopAnyUsed drained %d variables, want %d", len(got), len(want))
	}
	for v, neg := range want {
		if got[v] != neg {
			t.Errorf("variable %d: polarity = %v, want %v", v, got[v], neg)
		}
	}
	if _, ok := vs.PopAnyUsed(); ok {
		t.Fatalf("PopAnyUsed succeeded after the set was drained")
	}
}

func TestVarsAssignment(t *testing.T) {
	vs := NewVars(8)
	vs.Assert(PositiveLiteral(1))
	vs.Assert(NegativeLiteral(2))
	got := vs.Assignment(8)
	want := []int{1, -2}
	if len(got) != len(want) {
		t.Fatalf("Assignment() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Assignment() = %v, want %v", got, want)
		}
	}
}
