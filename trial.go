package watchsat

// Trial holds the search state: the assertion stack with decision levels,
// the propagation queue, and the live/pending variable sets.
type Trial struct {
	assigned *Vec[Literal]

	queue  []Literal
	queued map[Literal]bool

	level int

	varsIn  *Vars
	varsOut *Vars

	conflict bool
}

// NewTrial returns an empty trial over variables [1, maxVar]: nothing
// assigned, nothing queued, level 0.
func NewTrial(maxVar int) *Trial {
	return &Trial{
		assigned: NewVec[Literal](maxVar),
		queued:   make(map[Literal]bool),
		varsIn:   NewVars(maxVar),
		varsOut:  NewVars(maxVar),
	}
}

func (t *Trial) Level() int { return t.level }

func (t *Trial) Conflict() bool { return t.conflict }

func (t *Trial) SetConflict() { t.conflict = true }

func (t *Trial) ClearConflict() { t.conflict = false }

func (t *Trial) VarsIn() *Vars { return t.varsIn }

func (t *Trial) VarsOut() *Vars { return t.varsOut }

func (t *Trial) AssignedSize() int { return t.assigned.Size() }

func (t *Trial) AssignedAt(i int) Literal { return t.assigned.Get(i) }

// Assert appends l to the assertion stack and updates level and the live
// variable sets. It does not touch the propagation queue or watch index:
// callers use the doAssert primitive in solver.go for the full assertion.
func (t *Trial) Assert(l Literal) {
	t.assigned.Push(l)
	if l.IsDecision() {
		t.level++
	}
	t.varsIn.Assert(l)
	t.varsOut.Retract(l.VarID())
}

// QueueImplied enqueues l (with its decision marker cleared) for
// propagation, unless it is already queued.
func (t *Trial) QueueImplied(l Literal) {
	key := l.ClearDecision()
	if t.queued[key] {
		return
	}
	t.queued[key] = true
	t.queue = append(t.queue, key)
}

// TakeImplied removes and returns one queued literal, or reports that the
// queue is empty.
func (t *Trial) TakeImplied() (Literal, bool) {
	if len(t.queue) == 0 {
		return 0, false
	}
	l := t.queue[0]
	t.queue = t.queue[1:]
	delete(t.queued, l)
	return l, true
}

// PopThroughLastDecision drains the queue, then pops literals off assigned
// (retracting them from varsIn and re-adding them to varsOut) until and
// including the topmost decision-marked literal, which is returned.
func (t *Trial) PopThroughLastDecision() Literal {
	t.queue = nil
	for k := range t.queued {
		delete(t.queued, k)
	}

	for {
		if t.assigned.Size() == 0 {
			panic("watchsat: pop through last decision with no decision on the trial")
		}
		l := t.assigned.Pop()
		t.varsIn.Retract(l.VarID())
		t.varsOut.Assert(l)
		if l.IsDecision() {
			t.level--
			return l
		}
	}
}
