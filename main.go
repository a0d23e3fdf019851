// main package for primer command-line tool
// Package main is the entry point for the Primer CLI.
package main

import "primer.dev/pkg/primer/cmd"

func main() {
	cmd.Execute()
}
