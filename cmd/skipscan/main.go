// Command skipscan prints every case-insensitive occurrence of a pattern in
// the given files or standard input.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
