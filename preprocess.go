package watchsat

// Result is the tri-state verdict threaded between preprocessing and the
// search loop.
type Result int

const (
	// Undetermined means preprocessing could not decide the formula on its
	// own; the search loop must run.
	Undetermined Result = iota
	Unsat
	Sat
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNDETERMINED"
	}
}

// Preprocess normalizes raw into an output formula of clauses with size >= 2,
// resolving unit clauses (and the chains of propagation they trigger) along
// the way. It returns the normalized formula, the trial built up while doing
// so, the watch index grown incrementally alongside the output formula (see
// the implementation note under §4.H), and a verdict: Sat or Unsat if the
// formula was decided outright, Undetermined if the search loop must run on
// the returned formula/trial/watch triple.
func Preprocess(raw *Formula) (*Formula, *Trial, *WatchIndex, Result) {
	maxVar := raw.MaxVar()
	out := NewFormula(maxVar)
	trial := NewTrial(maxVar)
	watch := NewWatchIndex(maxVar)

	buf := make([]Literal, 0, 8)

	for ci := 0; ci < raw.Size(); ci++ {
		c := raw.Get(ci)
		buf = buf[:0]
		discard := false

		for li := 0; li < c.Size(); li++ {
			l := c.Literal(li)

			if trial.varsIn.IsFalse(l) {
				continue
			}
			if trial.varsIn.IsTrue(l) {
				discard = true
				break
			}

			dup := false
			for _, seen := range buf {
				if seen.VarID() != l.VarID() {
					continue
				}
				if seen.IsNegative() == l.IsNegative() {
					dup = true
				} else {
					discard = true
				}
				break
			}
			if discard {
				break
			}
			if dup {
				continue
			}

			buf = append(buf, l)
		}

		if discard {
			continue
		}

		// Only now that the clause is known to survive do its literals'
		// variables become real candidates (vars_out) or real assignments
		// (appears_in for a resolved unit): a literal scanned before a later
		// literal in the same clause triggers a tautology/already-true
		// discard must never be recorded anywhere.
		switch len(buf) {
		case 0:
			return out, trial, watch, Unsat
		case 1:
			doAssert(trial, watch, buf[0], nil)
			propagateToFixpoint(trial, watch, nil)
			if trial.Conflict() {
				return out, trial, watch, Unsat
			}
			// The unit's variable is never inserted into out as a clause, so
			// it would otherwise be absent from out.appears_in even though
			// it has been validly assigned; record it directly so the
			// search loop's EqualSupport(vars_in, appears_in) check can
			// still recognize a fully-assigned formula as SAT.
			out.AppearsIn().Assert(PositiveLiteral(buf[0].VarID()))
		default:
			lits := append([]Literal(nil), buf...)
			cl := NewClause(lits)
			out.Insert(cl)
			for _, l := range buf {
				trial.varsOut.Assert(l)
			}
			watch.addWatch(cl.Watch1(), cl)
			watch.addWatch(cl.Watch2(), cl)
		}
	}

	if out.Size() == 0 {
		return out, trial, watch, Sat
	}
	return out, trial, watch, Undetermined
}
