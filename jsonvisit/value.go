package jsonvisit

// vany recognizes a single JSON value at or after i: a string, object,
// array, number, or one of the three keyword literals. dinfo carries the
// positional flags (START, VALUE, or zero) to OR into the emitted
// callback. skip suppresses all callbacks for this value and everything
// beneath it.
func vany(data []byte, i int, opts Options, dinfo Info, visit Visitor, skip bool) (int, outcome) {
	for i < len(data) {
		if isWS(data[i]) {
			i++
			continue
		}

		switch {
		case data[i] == '"':
			mark := i
			end, info, out := vstring(data, i+1)
			if out.bubble() {
				return end, out
			}
			return emitScalar(data, visit, mark, end, info|STRING, dinfo, skip)

		case data[i] == '{':
			return vcontainer(data, i, opts, dinfo, visit, skip, OBJECT, vobject)

		case data[i] == '[':
			return vcontainer(data, i, opts, dinfo, visit, skip, ARRAY, varray)

		case data[i] == '-' || isNum(data[i]):
			mark := i
			end, info, out := vnumber(data, i)
			if out.bubble() {
				return end, out
			}
			return emitScalar(data, visit, mark, end, info|NUMBER, dinfo, skip)

		case data[i] == 't':
			mark := i
			end, out := vkeyword(data, i+1, "rue")
			if out.bubble() {
				return end, out
			}
			return emitScalar(data, visit, mark, end, TRUE, dinfo, skip)

		case data[i] == 'f':
			mark := i
			end, out := vkeyword(data, i+1, "alse")
			if out.bubble() {
				return end, out
			}
			return emitScalar(data, visit, mark, end, FALSE, dinfo, skip)

		case data[i] == 'n':
			mark := i
			end, out := vkeyword(data, i+1, "ull")
			if out.bubble() {
				return end, out
			}
			return emitScalar(data, visit, mark, end, NULL, dinfo, skip)

		default:
			return i, failed
		}
	}
	return i, failed
}

// emitScalar fires the single callback for a fully-scanned scalar value,
// adding END when dinfo carried START (the scalar is the whole document).
func emitScalar(data []byte, visit Visitor, start, end int, info, dinfo Info, skip bool) (int, outcome) {
	if skip {
		return end, ok
	}
	if dinfo.Has(START) {
		dinfo |= END
	}
	if visit(start, end, info|dinfo) == Stop {
		return end, stopped
	}
	return end, ok
}

// bodyRecognizer is the shape shared by vobject and varray: given the
// offset just past the opening bracket, recognize the container body and
// return the offset just past the matching closing bracket.
type bodyRecognizer func(data []byte, i int, opts Options, visit Visitor, skip bool) (int, outcome)

// vcontainer implements the OPEN/body/CLOSE sequence common to objects and
// arrays: emit OPEN, let the visitor's return value decide whether to
// descend normally, skip the body via squash, or skip it while still
// validating it, then emit the matching CLOSE.
func vcontainer(data []byte, i int, opts Options, dinfo Info, visit Visitor, skip bool, kind Info, body bodyRecognizer) (int, outcome) {
	oskip := skip
	if !skip {
		r := visit(i, i+1, kind|OPEN|dinfo)
		if r == Stop {
			return i, stopped
		}
		if r == SkipChildren {
			oskip = true
		}
	}

	var end int
	if opts.Has(Unchecked) && oskip {
		var out outcome
		end, out = squash(data, i+1)
		if out.bubble() {
			return end, out
		}
	} else {
		var out outcome
		end, out = body(data, i+1, opts, visit, oskip)
		if out.bubble() {
			return end, out
		}
	}

	if !skip {
		cinfo := dinfo &^ VALUE
		if cinfo.Has(START) {
			cinfo &^= START
			cinfo |= END
		}
		if visit(end-1, end, kind|CLOSE|cinfo) == Stop {
			return end, stopped
		}
	}
	return end, ok
}
