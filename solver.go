package watchsat

import "fmt"

// Tracer receives optional diagnostic notifications for each decide,
// propagate, and backtrack step. It is purely a debugging aid: nothing in
// the core depends on a Tracer being present, and a nil Tracer is always
// valid.
type Tracer interface {
	OnDecide(level int, l Literal)
	OnPropagate(level int, l Literal)
	OnBacktrack(level int, l Literal)
	OnConflict(level int)
}

func traceDecide(tr Tracer, level int, l Literal) {
	if tr != nil {
		tr.OnDecide(level, l)
	}
}

func tracePropagate(tr Tracer, level int, l Literal) {
	if tr != nil {
		tr.OnPropagate(level, l)
	}
}

func traceBacktrack(tr Tracer, level int, l Literal) {
	if tr != nil {
		tr.OnBacktrack(level, l)
	}
}

func traceConflict(tr Tracer, level int) {
	if tr != nil {
		tr.OnConflict(level)
	}
}

// doAssert is the core assertion primitive (§4.I): append l to the trial,
// then notify the watch list of the literal that just became falsified.
func doAssert(t *Trial, w *WatchIndex, l Literal, tr Tracer) {
	wasDecision := l.IsDecision()
	t.Assert(l)
	if wasDecision {
		traceDecide(tr, t.Level(), l)
	} else {
		tracePropagate(tr, t.Level(), l)
	}
	negL := l.ClearDecision().Negate()
	notify(t, w, negL)
}

// notify rebuilds the watch list for the newly falsified literal negL,
// migrating clauses that find a fresh literal to watch, and detecting units
// and conflicts along the way.
func notify(t *Trial, w *WatchIndex, negL Literal) {
	old := w.ListFor(negL)
	kept := NewVec[*Clause](old.Size())

	for i := 0; i < old.Size(); i++ {
		c := old.Get(i)

		if t.varsIn.IsTrue(c.Watch1()) {
			kept.Push(c)
			continue
		}
		if c.Watch1() != negL && c.Watch2() != negL {
			kept.Push(c) // stale entry from an earlier relocation
			continue
		}
		if c.Watch1() == negL {
			c.SwapWatches()
		}
		if t.varsIn.IsTrue(c.Watch1()) {
			kept.Push(c)
			continue
		}

		relocated := false
		for j := 2; j < c.Size(); j++ {
			if !t.varsIn.IsFalse(c.Literal(j)) {
				c.SetWatch2(j)
				w.ListFor(c.Watch2()).Push(c)
				relocated = true
				break
			}
		}
		if relocated {
			continue
		}

		kept.Push(c)
		if t.varsIn.IsFalse(c.Watch1()) {
			t.SetConflict()
		} else {
			t.QueueImplied(c.Watch1())
		}
	}

	w.SetListFor(negL, kept)
}

// propagateToFixpoint repeatedly asserts queued literals until the queue is
// empty or a conflict is detected.
func propagateToFixpoint(t *Trial, w *WatchIndex, tr Tracer) {
	for !t.conflict {
		l, ok := t.TakeImplied()
		if !ok {
			return
		}
		doAssert(t, w, l, tr)
	}
}

// decide picks the next branching variable from vars_out, asserting it under
// whichever polarity it was last recorded under there (see the design notes
// on the ambiguous decide polarity).
func decide(t *Trial, w *WatchIndex, tr Tracer) {
	l, ok := t.varsOut.PopAnyUsed()
	if !ok {
		panic("watchsat: decide called with no candidate variables in vars_out")
	}
	doAssert(t, w, l.MarkDecision(), tr)
}

// backtrack pops the trial back through its most recent decision and
// asserts that decision's negation as a forced consequence at the
// enclosing level.
func backtrack(t *Trial, w *WatchIndex, tr Tracer) {
	last := t.PopThroughLastDecision()
	t.ClearConflict()
	flipped := last.Negate().ClearDecision()
	traceBacktrack(tr, t.Level(), flipped)
	doAssert(t, w, flipped, tr)
}

// search drives the decide/propagate/backtrack loop to completion.
func search(f *Formula, t *Trial, w *WatchIndex, tr Tracer) Result {
	for {
		propagateToFixpoint(t, w, tr)

		if t.Conflict() {
			traceConflict(tr, t.Level())
			if t.Level() == 0 {
				return Unsat
			}
			backtrack(t, w, tr)
			continue
		}

		if EqualSupport(t.varsIn, f.AppearsIn()) {
			return Sat
		}

		decide(t, w, tr)
	}
}

// FormulaNew returns a new, empty formula with the default variable ceiling.
func FormulaNew() *Formula { return NewFormula(DefaultMaxVar) }

// FormulaNewMax returns a new, empty formula whose variables range over
// [1, maxVar]. It supplements FormulaNew with the configurable V_MAX called
// for in the design notes.
func FormulaNewMax(maxVar int) *Formula { return NewFormula(maxVar) }

// FormulaInsertClause adds a clause given as DIMACS-style signed integers:
// each value's absolute value must be in [1, F.MaxVar()] and zero is
// forbidden.
func FormulaInsertClause(f *Formula, lits []int) error {
	out := make([]Literal, len(lits))
	for i, v := range lits {
		if v == 0 {
			return fmt.Errorf("watchsat: literal 0 is not a valid clause literal")
		}
		av := v
		if av < 0 {
			av = -av
		}
		if av > f.MaxVar() {
			return fmt.Errorf("watchsat: variable %d exceeds the configured maximum %d", av, f.MaxVar())
		}
		out[i] = NewLiteral(av, v < 0)
	}
	f.Insert(NewClause(out))
	return nil
}

// FormulaRelease drops f's storage. f must not be used afterward.
func FormulaRelease(f *Formula) {
	f.clauses = nil
	f.appearsIn = nil
}

// Options configures an optional, non-contractual diagnostic Tracer for
// SolveWithOptions.
type Options struct {
	Tracer Tracer
}

// Solve runs the DPLL search to completion and reports whether f is
// satisfiable.
func Solve(f *Formula) Result {
	return SolveWithOptions(f, Options{})
}

// SolveWithOptions behaves like Solve, additionally routing step
// notifications through opts.Tracer when it is non-nil.
func SolveWithOptions(f *Formula, opts Options) Result {
	out, trial, watch, status := Preprocess(f)
	if status != Undetermined {
		return status
	}
	return search(out, trial, watch, opts.Tracer)
}

// SolveWitness behaves like Solve, additionally returning a satisfying
// assignment (one signed integer per assigned variable) when the result is
// Sat. This supplements the minimal programmatic surface for callers (and
// tests) that need the witness, not just the verdict.
func SolveWitness(f *Formula) (Result, []int) {
	return SolveWitnessWithOptions(f, Options{})
}

// SolveWitnessWithOptions combines SolveWithOptions and SolveWitness: it
// threads an optional Tracer through the search loop and also returns a
// satisfying assignment when the result is Sat.
func SolveWitnessWithOptions(f *Formula, opts Options) (Result, []int) {
	out, trial, watch, status := Preprocess(f)
	if status == Undetermined {
		status = search(out, trial, watch, opts.Tracer)
	}
	if status != Sat {
		return status, nil
	}
	return Sat, trial.varsIn.Assignment(f.MaxVar())
}
