// complewise demonstrates complement-wise traversal on small data sets.
//
// Usage:
//
//	complewise print 1 2 3 4 5       # each item with its complement
//	complewise sum 1 2 3 4 5         # add the complement sum to each item
//	complewise sum --check 1 2 3     # also verify against a nested index loop
//	complewise gravity -n 5          # force on each body from all others
//
// Global flags:
//
//	-v, --verbose  trace each step
//	    --plain    never draw tables, even on a terminal
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
