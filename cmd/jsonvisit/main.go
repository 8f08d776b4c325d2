// Command jsonvisit validates and inspects JSON documents using the
// jsonvisit streaming parser.
package main

import (
	"os"

	"github.com/maniartech/jsonvisit/cmd/jsonvisit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
