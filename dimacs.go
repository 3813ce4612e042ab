package watchsat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxDIMACSLineLength bounds each input line per §6; bufio.Scanner's
// default split function errors out (bufio.ErrTooLong) once a line exceeds
// the buffer built from this constant.
const maxDIMACSLineLength = 120

// ParseDIMACS reads a formula in the DIMACS CNF format. It is a thin,
// well-defined boundary around the solver core: it only ever calls
// FormulaNewMax/FormulaInsertClause, never touching the trial, watch index,
// or search loop directly.
func ParseDIMACS(r io.Reader) (*Formula, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, maxDIMACSLineLength+2), maxDIMACSLineLength+2)

	var f *Formula
	sawProblem := false
	declaredClauses := 0
	parsedClauses := 0

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == 'c' {
			continue
		}
		if line[0] == '%' {
			break
		}

		if line[0] == 'p' {
			if sawProblem {
				return nil, fmt.Errorf("dimacs: duplicate problem line")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, fmt.Errorf("dimacs: malformed problem line %q", line)
			}
			numVars, err := strconv.Atoi(fields[2])
			if err != nil || numVars < 0 {
				return nil, fmt.Errorf("dimacs: bad variable count in %q", line)
			}
			declaredClauses, err = strconv.Atoi(fields[3])
			if err != nil || declaredClauses < 0 {
				return nil, fmt.Errorf("dimacs: bad clause count in %q", line)
			}
			f = FormulaNewMax(numVars)
			sawProblem = true
			continue
		}

		if !sawProblem {
			return nil, fmt.Errorf("dimacs: clause line appears before the problem line")
		}

		var clause []int
		for _, field := range strings.Fields(line) {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("dimacs: invalid literal %q: %w", field, err)
			}
			if v == 0 {
				break
			}
			clause = append(clause, v)
		}
		if err := FormulaInsertClause(f, clause); err != nil {
			return nil, fmt.Errorf("dimacs: %w", err)
		}
		parsedClauses++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	if !sawProblem {
		return nil, fmt.Errorf("dimacs: missing problem line")
	}
	if parsedClauses != declaredClauses {
		return nil, fmt.Errorf("dimacs: problem line declares %d clauses, but %d were parsed", declaredClauses, parsedClauses)
	}
	return f, nil
}

// WriteDIMACS serializes f in the DIMACS CNF format. It supplements
// ParseDIMACS so the round-trip law in §8 (DIMACS-parse(serialize(F)) is
// equivalent as a clause multiset to F) has a codec to test against.
func WriteDIMACS(w io.Writer, f *Formula) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", f.MaxVar(), f.Size()); err != nil {
		return err
	}
	for i := 0; i < f.Size(); i++ {
		c := f.Get(i)
		var sb strings.Builder
		for j := 0; j < c.Size(); j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", c.Literal(j).SignedValue())
		}
		sb.WriteString(" 0\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
