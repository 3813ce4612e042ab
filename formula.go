package watchsat

// Formula is a sorted collection of clauses, plus the set of variables
// mentioned in any of them. Clauses are ordered by size (and, within a size,
// by literal value) purely to give the sorted container a real collaborator:
// nothing downstream depends on this order, since the watch index addresses
// clauses by pointer, never by position in this collection.
type Formula struct {
	clauses   *SortedVec[*Clause]
	appearsIn *Vars
	maxVar    int
}

// NewFormula returns an empty formula whose variables range over
// [1, maxVar].
func NewFormula(maxVar int) *Formula {
	return &Formula{
		clauses:   NewSortedVec[*Clause](16, clauseLess),
		appearsIn: NewVars(maxVar),
		maxVar:    maxVar,
	}
}

// clauseLess orders clauses by size, then lexicographically by signed
// literal value; it exists only to give Formula's SortedVec a total order,
// not to encode any solving-relevant preference.
func clauseLess(a, b *Clause) bool {
	if a.Size() != b.Size() {
		return a.Size() < b.Size()
	}
	for i := 0; i < a.Size(); i++ {
		av, bv := a.Literal(i).SignedValue(), b.Literal(i).SignedValue()
		if av != bv {
			return av < bv
		}
	}
	return false
}

// Insert inserts c in sorted position and marks every variable it mentions
// as present in the appears-in set. The appears-in VARS records membership
// only: its polarity bit is always left clear, since it is used as a set,
// not an assignment.
func (f *Formula) Insert(c *Clause) {
	f.clauses.InsertSorted(c)
	for i := 0; i < c.Size(); i++ {
		f.appearsIn.Assert(PositiveLiteral(c.Literal(i).VarID()))
	}
}

// Size returns the number of clauses in f.
func (f *Formula) Size() int { return f.clauses.Size() }

// Get returns the clause at index i.
func (f *Formula) Get(i int) *Clause { return f.clauses.Get(i) }

// AppearsIn returns the set of variables mentioned in f.
func (f *Formula) AppearsIn() *Vars { return f.appearsIn }

// MaxVar returns the configured variable ceiling for f.
func (f *Formula) MaxVar() int { return f.maxVar }
