package jsonvisit

// outcome tells a caller in the recursive descent what happened at the
// position a scan function returns, and whether it must bubble straight
// up without doing any further grammar-level work (checking for a
// trailing comma, emitting a CLOSE, and so on).
type outcome int

const (
	// ok means the element was recognized; the caller proceeds with its
	// own next grammar step (e.g. look for ',' or '}').
	ok outcome = iota
	// stopped means the Visitor returned Stop; every enclosing level must
	// return immediately without emitting further callbacks.
	stopped
	// failed means malformed input was found; every enclosing level must
	// return immediately, propagating the failure offset.
	failed
)

func (o outcome) bubble() bool { return o != ok }

// Parse walks data in a single forward pass, calling visit once for every
// value, token, and structural event it recognizes, and returns:
//
//   - len(data), if the whole document parsed successfully and visit never
//     returned Stop;
//   - the offset at which visit returned Stop, as a positive value;
//   - the negated offset at which malformed input was detected.
//
// An error at offset 0 (including an empty buffer) is reported as 0;
// callers that need to distinguish that from "empty success" should also
// check len(data) == 0.
func Parse(data []byte, opts Options, visit Visitor) int64 {
	i, out := vdoc(data, 0, opts, visit)
	if out == failed {
		return -int64(i)
	}
	return int64(i)
}

// vdoc recognizes exactly one top-level value, then rejects any trailing
// non-whitespace.
func vdoc(data []byte, i int, opts Options, visit Visitor) (int, outcome) {
	i, out := vany(data, i, opts, START, visit, false)
	if out.bubble() {
		return i, out
	}
	for i < len(data) {
		if isWS(data[i]) {
			i++
			continue
		}
		return i, failed
	}
	return i, ok
}
