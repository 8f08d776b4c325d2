package jsonvisit

// Visitor is called once per syntactic element encountered by Parse, in
// document order. start and end delimit the element's literal bytes in
// the original buffer (data[start:end]); info tags its kind and position.
//
// The return value steers the parse:
//
//   - Stop (0) aborts parsing immediately; Parse returns the current
//     offset as a positive value.
//   - SkipChildren (-1) is only meaningful on a container OPEN callback:
//     no further callbacks fire for that subtree, but the matching CLOSE
//     callback still fires. On any other callback it behaves like
//     Continue.
//   - Any other value, including Continue (1), continues parsing normally.
type Visitor func(start, end int, info Info) int64

// Return value constants a Visitor may produce.
const (
	// Stop aborts the parse immediately.
	Stop int64 = 0
	// SkipChildren skips a container's subtree; only meaningful on OPEN.
	SkipChildren int64 = -1
	// Continue resumes parsing normally.
	Continue int64 = 1
)

// ContinueVisitor is the trivial Visitor that always continues. It is
// useful for validation-only calls: Parse(data, 0, jsonvisit.ContinueVisitor) > 0.
func ContinueVisitor(start, end int, info Info) int64 {
	return Continue
}

// Valid reports whether data is a well-formed JSON document. Parse
// reports a malformed-at-offset-0 failure the same way it would report
// an (impossible, for ContinueVisitor) stop or success at offset 0 —
// as plain 0 — so success must be tested as strictly positive, not
// non-negative.
func Valid(data []byte) bool {
	return Parse(data, 0, ContinueVisitor) > 0
}

// Event captures the arguments of a single Visitor callback. It is an
// opt-in, allocating convenience built on top of Parse — the core parse
// loop itself never constructs one.
type Event struct {
	Start int
	End   int
	Info  Info
}

// Bytes returns the zero-copy byte range this event covers in data.
func (e Event) Bytes(data []byte) []byte {
	return data[e.Start:e.End]
}

// String copies and returns the text this event covers in data.
func (e Event) String(data []byte) string {
	return string(data[e.Start:e.End])
}

// Collector accumulates every callback it receives into Events, always
// returning Continue. Use Collector.Visit as the Visitor argument to Parse
// when the full event trace is wanted, e.g. for tests or for the CLI's
// dump subcommand.
type Collector struct {
	Events []Event
}

// Visit implements the Visitor signature.
func (c *Collector) Visit(start, end int, info Info) int64 {
	c.Events = append(c.Events, Event{Start: start, End: end, Info: info})
	return Continue
}

// First runs Parse over data and returns the first event whose Info
// satisfies match, stopping the parse as soon as it is found.
func First(data []byte, match func(Info) bool) (Event, bool) {
	var found Event
	ok := false
	Parse(data, 0, func(start, end int, info Info) int64 {
		if match(info) {
			found = Event{Start: start, End: end, Info: info}
			ok = true
			return Stop
		}
		return Continue
	})
	return found, ok
}
