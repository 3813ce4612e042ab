// Command watchsat reads a CNF formula in the DIMACS format from a file or
// standard input and reports whether it is satisfiable.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mira-tools/watchsat"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "watchsat [path-to-cnf]",
		Short: "A DPLL SAT solver with two-watched-literal propagation",
		Long: `watchsat reads a single problem specification in the DIMACS CNF format.
It writes the output in the conventional way: either the first line is UNSAT,
or else the first line is SAT and the second line gives the assignment in
the same format as an input clause.

If no input file is given, watchsat reads from standard input.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each decide/propagate/backtrack step to stderr")
	return cmd
}

func run(cmd *cobra.Command, args []string, verbose bool) error {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("watchsat: %w", err)
		}
		defer file.Close()
		r = file
	}

	formula, err := watchsat.ParseDIMACS(r)
	if err != nil {
		return fmt.Errorf("watchsat: could not parse input as DIMACS CNF: %w", err)
	}

	opts := watchsat.Options{}
	if verbose {
		log := logrus.New()
		log.SetOutput(cmd.ErrOrStderr())
		log.SetLevel(logrus.DebugLevel)
		opts.Tracer = watchsat.NewLogTracer(log)
	}

	out := cmd.OutOrStdout()
	result, assignment := watchsat.SolveWitnessWithOptions(formula, opts)
	fmt.Fprintln(out, result)
	if result == watchsat.Sat {
		for i, v := range assignment {
			if i > 0 {
				fmt.Fprint(out, " ")
			}
			fmt.Fprint(out, v)
		}
		fmt.Fprintln(out)
	}
	return nil
}
