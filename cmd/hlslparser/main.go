// Command hlslparser lexes, parses, type-checks, and transforms shading
// language source files.
package main

import (
	"fmt"
	"os"

	"github.com/laurentdupin/hlslparser/cmd/hlslparser/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
