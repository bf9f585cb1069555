// Command irtool is a small demonstration CLI over internal/ir: it
// assembles a sample Function through a Builder, then pretty-prints it
// or dumps the mutation log that assembling it produced.
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
