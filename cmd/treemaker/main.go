// Command treemaker converts a list of taxa and their classifications into
// a Newick or NEXUS tree.
//
// Usage:
//
//	treemaker [flags] <input>
//
// Each line of the input holds a taxon name and a comma separated
// classification, separated by white space:
//
//	A    a
//	AB1  a, b
//	AB2  a, b
//	C    c
//
// gives the tree ((A,(AB1,AB2)),C);
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
