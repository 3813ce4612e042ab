package watchsat

import "testing"

func mustInsert(t *testing.T, f *Formula, lits ...int) {
	t.Helper()
	out := make([]Literal, len(lits))
	for i, v := range lits {
		if v < 0 {
			out[i] = NegativeLiteral(-v)
		} else {
			out[i] = PositiveLiteral(v)
		}
	}
	f.Insert(NewClause(out))
}

func TestPreprocessDetectsUnsatByUnitContradiction(t *testing.T) {
	f := NewFormula(4)
	mustInsert(t, f, 1)
	mustInsert(t, f, -1)

	_, _, _, result := Preprocess(f)
	if result != Unsat {
		t.Fatalf("Preprocess() result = %v, want Unsat", result)
	}
}

func TestPreprocessDetectsSatWhenEveryClauseResolves(t *testing.T) {
	f := NewFormula(4)
	mustInsert(t, f, 1)
	mustInsert(t, f, 2, 1) // subsumed once variable 1 is asserted true

	out, _, _, result := Preprocess(f)
	if result != Sat {
		t.Fatalf("Preprocess() result = %v, want Sat", result)
	}
	if out.Size() != 0 {
		t.Fatalf("output formula size = %d, want 0", out.Size())
	}
}

func TestPreprocessDiscardsTautology(t *testing.T) {
	f := NewFormula(4)
	mustInsert(t, f, 1, -1, 2)
	mustInsert(t, f, 2, 3)

	out, _, _, result := Preprocess(f)
	if result != Undetermined {
		t.Fatalf("Preprocess() result = %v, want Undetermined", result)
	}
	if out.Size() != 1 {
		t.Fatalf("output formula size = %d, want 1 (tautology discarded)", out.Size())
	}
}

func TestPreprocessDedupesRepeatedLiteral(t *testing.T) {
	f := NewFormula(4)
	mustInsert(t, f, 1, 2, 1, 2)

	out, _, _, result := Preprocess(f)
	if result != Undetermined {
		t.Fatalf("Preprocess() result = %v, want Undetermined", result)
	}
	if out.Size() != 1 {
		t.Fatalf("output formula size = %d, want 1", out.Size())
	}
	if got := out.Get(0).Size(); got != 2 {
		t.Fatalf("deduplicated clause size = %d, want 2", got)
	}
}

func TestPreprocessBuildsWatchIndexIncrementally(t *testing.T) {
	f := NewFormula(4)
	mustInsert(t, f, 1, 2)
	mustInsert(t, f, 2, 3)

	_, _, watch, result := Preprocess(f)
	if result != Undetermined {
		t.Fatalf("Preprocess() result = %v, want Undetermined", result)
	}
	if got := watch.ListFor(PositiveLiteral(1)).Size(); got != 1 {
		t.Fatalf("watch list for 1 has %d clauses, want 1", got)
	}
	if got := watch.ListFor(PositiveLiteral(2)).Size(); got != 2 {
		t.Fatalf("watch list for 2 has %d clauses, want 2", got)
	}
}

func TestPreprocessIsIdempotent(t *testing.T) {
	f := NewFormula(6)
	mustInsert(t, f, 1, 2, 3)
	mustInsert(t, f, -1, 2)
	mustInsert(t, f, 4)

	out1, _, _, result1 := Preprocess(f)
	if result1 != Undetermined {
		t.Fatalf("first Preprocess() result = %v, want Undetermined", result1)
	}

	out2, _, _, result2 := Preprocess(out1)
	if result2 != Undetermined {
		t.Fatalf("second Preprocess() result = %v, want Undetermined", result2)
	}
	if out1.Size() != out2.Size() {
		t.Fatalf("preprocessing a preprocessed formula changed clause count: %d vs %d", out1.Size(), out2.Size())
	}
}
