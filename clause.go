package watchsat

import "strings"

// Clause is a disjunction of at least one literal. Clauses of size >= 2
// designate two watched positions, at index 0 and 1; preprocessing
// guarantees every clause retained in a Formula has size >= 2.
type Clause struct {
	lits *Vec[Literal]
}

// NewClause builds a clause from lits, in the given order. The literal
// multiset never changes afterward; only positions 0 and 1 move, via the
// watch accessors below.
func NewClause(lits []Literal) *Clause {
	v := NewVec[Literal](len(lits))
	for _, l := range lits {
		v.Push(l)
	}
	return &Clause{lits: v}
}

// Size returns the number of literals in c.
func (c *Clause) Size() int { return c.lits.Size() }

// Literal returns the literal at index i.
func (c *Clause) Literal(i int) Literal { return c.lits.Get(i) }

func (c *Clause) requireWatchable() {
	if c.Size() < 2 {
		panic("watchsat: watch accessors require a clause of size >= 2")
	}
}

// Watch1 returns the literal at position 0.
func (c *Clause) Watch1() Literal {
	c.requireWatchable()
	return c.lits.Get(0)
}

// Watch2 returns the literal at position 1.
func (c *Clause) Watch2() Literal {
	c.requireWatchable()
	return c.lits.Get(1)
}

// SwapWatches exchanges the literals at positions 0 and 1.
func (c *Clause) SwapWatches() {
	c.requireWatchable()
	c.lits.Swap(0, 1)
}

// SetWatch2 moves the literal currently at index i into position 1.
func (c *Clause) SetWatch2(i int) {
	c.requireWatchable()
	c.lits.Swap(1, i)
}

func (c *Clause) String() string {
	var sb strings.Builder
	sb.WriteString("Clause[")
	for i := 0; i < c.Size(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.Literal(i).String())
	}
	sb.WriteByte(']')
	return sb.String()
}
