// Command simplesat decides satisfiability of a CNF formula given in
// DIMACS format. It is the CLI boundary around the core solver in
// github.com/cespare/simplesat: read a formula, run the search, and emit a
// DIMACS-style solution report.
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cespare/simplesat"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "simplesat [infile]",
		Short:   "Decide satisfiability of a CNF formula in DIMACS format",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.infile = args[0]
			}

			log := logrus.New()
			log.SetOutput(os.Stderr)
			if opts.verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			return run(opts, log)
		},
	}

	cmd.Flags().StringVarP(&opts.outfile, "output", "o", "", "write the solution to this file instead of stdout")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug tracing of branch/propagation steps")

	return cmd
}

func run(opts *options, log *logrus.Logger) error {
	r, closeIn, err := openInput(opts.infile)
	if err != nil {
		return err
	}
	defer closeIn()

	sv, err := simplesat.ParseDIMACS(r)
	if err != nil {
		log.Errorf("%s", err)
		return err
	}

	if opts.verbose {
		sv.Trace = true
		sv.Tracer = &simplesat.LogrusTracer{Log: log}
	}

	log.Infof("read formula: %d variables, %d clauses", sv.NumVars(), sv.NumClauses())

	sv.Solve()

	stats := sv.Stats()
	log.Infof(
		"solved in %s: %s (%d branches, %d unit propagations)",
		stats.Elapsed(), sv.Solution(), stats.Branches, stats.UnitPropagations,
	)

	w, closeOut, err := openOutput(opts.outfile)
	if err != nil {
		return err
	}
	defer closeOut()

	if err := simplesat.WriteSolution(w, sv); err != nil {
		log.Errorf("%s", err)
		return err
	}
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
