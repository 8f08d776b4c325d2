// Package utils holds small CLI-side presentation helpers shared by the
// jsonvisit commands. None of it is imported by the core parser.
package utils

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/k0kubun/pp/v3"

	"github.com/maniartech/jsonvisit"
)

// PrettyPrintEvents prints a Collector's whole trace as a single
// colorized, indented struct dump via k0kubun/pp.
func PrettyPrintEvents(events []jsonvisit.Event) {
	pp.Println(events)
}

// ReprEvents renders events as Go-literal syntax, for copy-pasting a
// trace into a test's expected-value slice.
func ReprEvents(events []jsonvisit.Event) string {
	return repr.String(events, repr.Indent("  "))
}

// DumpEvent prints a single event in the compact one-line form the
// "dump" subcommand uses outside --pretty mode.
func DumpEvent(data []byte, e jsonvisit.Event) {
	fmt.Printf("[%d,%d) %#x %q\n", e.Start, e.End, uint64(e.Info), e.String(data))
}
