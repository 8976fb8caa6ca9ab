// Package cli implements the arith command line: evaluating expressions from
// arguments, files, or standard input, printing token streams, and an
// interactive session.
package cli
