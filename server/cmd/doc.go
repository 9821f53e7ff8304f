// Package cmd implements the parsing of command lines: finding quoted strings
// spanning multiple arguments, parsing flags such as --gui and -G, and
// resolving targets and positions from arguments.
//
// A command line is represented by a Context, which holds the label of the
// command and the arguments passed to it. A Context is never modified after it
// is created. Parse failures caused by user input are not errors: they are
// reported as absent results and logged on the Logger passed to the Context.
package cmd
