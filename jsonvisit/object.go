package jsonvisit

// vobject recognizes an object body starting just past the opening '{',
// returning the offset just past the matching '}'. Each member emits a
// KEY string callback, a COLON token callback, and the member's value
// (tagged VALUE) in order.
func vobject(data []byte, i int, opts Options, visit Visitor, skip bool) (int, outcome) {
	i = skipWS(data, i)
	if i < len(data) && data[i] == '}' {
		return i + 1, ok
	}

	for {
		i = skipWS(data, i)
		if i >= len(data) || data[i] != '"' {
			return i, failed
		}
		mark := i
		end, info, out := vstring(data, i+1)
		if out.bubble() {
			return end, out
		}
		if !skip {
			if visit(mark, end, info|STRING|KEY) == Stop {
				return end, stopped
			}
		}
		i = end

		i = skipWS(data, i)
		if i >= len(data) || data[i] != ':' {
			return i, failed
		}
		if o := emitToken(visit, i, COLON, skip); o.bubble() {
			return i, o
		}
		i++

		i = skipWS(data, i)
		var out2 outcome
		i, out2 = vany(data, i, opts, VALUE, visit, skip)
		if out2.bubble() {
			return i, out2
		}

		i = skipWS(data, i)
		if i >= len(data) {
			return i, failed
		}
		if data[i] == ',' {
			if o := emitToken(visit, i, COMMA, skip); o.bubble() {
				return i, o
			}
			i++
			continue
		}
		if data[i] == '}' {
			return i + 1, ok
		}
		return i, failed
	}
}
