package watchsat

import "fmt"

func ExampleSolveWitness() {
	// Problem: (not x or not y) and (not y or z) and (x or not z or y) and y

	f := FormulaNewMax(3)
	FormulaInsertClause(f, []int{-1, -2})
	FormulaInsertClause(f, []int{-2, 3})
	FormulaInsertClause(f, []int{1, -3, 2})
	FormulaInsertClause(f, []int{2})

	result, assignment := SolveWitness(f)
	if result != Sat {
		fmt.Println("not satisfiable")
		return
	}
	fmt.Println("satisfiable:", assignment)
	// Output: satisfiable: [-1 2 3]
}
