// Command gridsearch locates every exact occurrence of a pattern grid (text
// or image) inside a larger grid using two-dimensional Rabin–Karp hashing.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
