package watchsat

// WatchIndex maps each literal to the clauses currently watching it: a
// clause c of size >= 2 is watched by exactly watch1(c) and watch2(c).
type WatchIndex struct {
	lists []*Vec[*Clause]
}

// NewWatchIndex allocates an empty watch index over variables [1, maxVar].
func NewWatchIndex(maxVar int) *WatchIndex {
	n := 2 * (maxVar + 1)
	lists := make([]*Vec[*Clause], n)
	for i := range lists {
		lists[i] = NewVec[*Clause](4)
	}
	return &WatchIndex{lists: lists}
}

// ListFor returns the clauses currently watching l.
func (w *WatchIndex) ListFor(l Literal) *Vec[*Clause] {
	return w.lists[litIndex(l)]
}

// SetListFor atomically replaces the list of clauses watching l, used by
// notify after a full rescan.
func (w *WatchIndex) SetListFor(l Literal, newList *Vec[*Clause]) {
	w.lists[litIndex(l)] = newList
}

// Init populates the watch index from a fully preprocessed formula: every
// clause watches its literals at positions 0 and 1.
func (w *WatchIndex) Init(f *Formula) {
	for i := 0; i < f.Size(); i++ {
		c := f.Get(i)
		w.addWatch(c.Watch1(), c)
		w.addWatch(c.Watch2(), c)
	}
}

// addWatch inserts c into the list for l, deduplicated: a degenerate clause
// may have both watches pointing at the same literal.
func (w *WatchIndex) addWatch(l Literal, c *Clause) {
	list := w.ListFor(l)
	if list.Contains(c, func(a, b *Clause) bool { return a == b }) {
		return
	}
	list.Push(c)
}
