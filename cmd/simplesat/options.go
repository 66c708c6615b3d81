package main

const version = "0.1.0"

// options holds the parsed CLI surface: a single positional input file
// (stdin if omitted), an output file flag, and a verbosity flag that gates
// debug tracing of branch/propagation steps.
type options struct {
	infile  string
	outfile string
	verbose bool
}
