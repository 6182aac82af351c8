// Command euclid evaluates geometry scripts and runs one-off intersection
// queries from the shell.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "euclid:", err)
		os.Exit(1)
	}
}
