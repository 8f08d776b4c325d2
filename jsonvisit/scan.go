package jsonvisit

// skipWS advances i past any run of whitespace.
func skipWS(data []byte, i int) int {
	for i < len(data) && isWS(data[i]) {
		i++
	}
	return i
}

// emitToken fires a single-byte token callback (COMMA or COLON) unless
// skip suppresses it.
func emitToken(visit Visitor, i int, info Info, skip bool) outcome {
	if skip {
		return ok
	}
	if visit(i, i+1, info) == Stop {
		return stopped
	}
	return ok
}
