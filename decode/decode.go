// Package decode offers opt-in value materialization on top of
// jsonvisit.Parse, for callers who want a Go string, float64, or bool
// instead of a raw byte range. It imports jsonvisit but is never
// imported back: the core stays allocation-free regardless of what this
// package does with its output.
package decode

import (
	"strconv"
	"strings"

	"github.com/maniartech/jsonvisit"
)

// String decodes a STRING event's bytes (including the surrounding
// quotes) into a Go string, resolving the standard JSON escapes. It
// reports false if data is not a well-formed quoted string.
func String(data []byte) (string, bool) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return "", false
	}
	body := data[1 : len(data)-1]
	if !strings.ContainsRune(string(body), '\\') {
		return string(body), true
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", false
		}
		switch body[i] {
		case '"', '\\', '/':
			b.WriteByte(body[i])
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			if i+4 >= len(body) {
				return "", false
			}
			r, err := strconv.ParseUint(string(body[i+1:i+5]), 16, 32)
			if err != nil {
				return "", false
			}
			b.WriteRune(rune(r))
			i += 4
		default:
			return "", false
		}
	}
	return b.String(), true
}

// Number decodes a NUMBER event's bytes into a float64.
func Number(data []byte) (float64, bool) {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Bool decodes a TRUE or FALSE event's bytes into a bool, using info
// rather than re-scanning the bytes.
func Bool(data []byte, info jsonvisit.Info) (bool, bool) {
	switch {
	case info.Has(jsonvisit.TRUE):
		return true, true
	case info.Has(jsonvisit.FALSE):
		return false, true
	default:
		return false, false
	}
}

// IsNull reports whether info tags a NULL literal.
func IsNull(info jsonvisit.Info) bool {
	return info.Has(jsonvisit.NULL)
}
