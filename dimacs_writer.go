package simplesat

import (
	"bufio"
	"fmt"
	"io"
)

// maxLineWidth is the column limit for "v " lines in WriteSolution: no
// line exceeds 79 columns, and continuation lines also begin with "v".
const maxLineWidth = 79

// generatorName/generatorVersion identify this implementation in the
// comment block emitted by WriteSolution.
const (
	generatorName    = "simplesat"
	generatorVersion = "0.1.0"
)

// WriteSolution writes the solver's outcome to w: a comment block with
// generator/timing/counter info, a status line, and — when satisfiable —
// a value block listing the signed literal of every variable the search
// fixed, wrapped at 79 columns. A variable the search left as a
// don't-care is omitted.
//
// sv must have already had Solve called on it.
func WriteSolution(w io.Writer, sv *Solver) error {
	bw := bufio.NewWriter(w)

	stats := sv.Stats()
	fmt.Fprintf(bw, "c Generated by %s %s\n", generatorName, generatorVersion)
	fmt.Fprintf(bw, "c\n")
	fmt.Fprintf(bw, "c Performance statistics\n")
	fmt.Fprintf(bw, "c ----------------------\n")
	fmt.Fprintf(bw, "c Elapsed time:       %f (s)\n", stats.Elapsed().Seconds())
	fmt.Fprintf(bw, "c Attempted branches: %d\n", stats.Branches)
	fmt.Fprintf(bw, "c Unit propagations:  %d\n", stats.UnitPropagations)
	fmt.Fprintf(bw, "c\n")

	fmt.Fprintf(bw, "s %s\n", sv.Solution())

	if sv.Solution() == Satisfiable {
		if err := writeValueBlock(bw, sv.Assignment()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeValueBlock(bw *bufio.Writer, assignment []int) error {
	column := 2
	if _, err := bw.WriteString("v"); err != nil {
		return err
	}
	for _, v := range assignment {
		tok := fmt.Sprintf(" %d", v)
		if column+len(tok) > maxLineWidth {
			if _, err := bw.WriteString("\nv"); err != nil {
				return err
			}
			column = 1
		}
		if _, err := bw.WriteString(tok); err != nil {
			return err
		}
		column += len(tok)
	}
	if column+2 > maxLineWidth {
		_, err := bw.WriteString("\nv 0\n")
		return err
	}
	_, err := bw.WriteString(" 0\n")
	return err
}
