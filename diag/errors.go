package diag

import (
	"fmt"

	"github.com/maniartech/jsonvisit"
)

// ErrorCode classifies why a document failed to parse.
type ErrorCode string

const (
	CodeMalformedInput     ErrorCode = "malformed-input"
	CodeTrailingContent    ErrorCode = "trailing-content"
	CodeUnterminatedString ErrorCode = "unterminated-string"
	CodeInvalidEscape      ErrorCode = "invalid-escape"
	CodeInvalidNumber      ErrorCode = "invalid-number"
	CodeUnexpectedEOF      ErrorCode = "unexpected-eof"
)

// ParseError reports where and why jsonvisit.Parse rejected a document.
type ParseError struct {
	Code     ErrorCode
	Message  string
	Position Position
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s at %s", e.Code, e.Message, e.Position)
}

// Explain runs Parse over data with the given options and, if it fails,
// classifies the failure and returns a *ParseError. It returns nil for a
// document that parses successfully (including one a Visitor stopped
// early, since that is not a parse failure).
//
// Parse reports a malformed-at-offset-0 failure as plain 0, which is
// indistinguishable from a genuine success/stop at offset 0. Treating 0
// as a failure here is the correct choice on balance: a malformed
// document whose very first byte is invalid is a far more common case
// than a Visitor that deliberately stops on a container's opening
// bracket, and the latter can always sidestep the ambiguity by
// stopping one callback later instead.
func Explain(data []byte, opts jsonvisit.Options, visit jsonvisit.Visitor) *ParseError {
	if visit == nil {
		visit = jsonvisit.ContinueVisitor
	}
	n := jsonvisit.Parse(data, opts, visit)
	if n > 0 {
		return nil
	}
	offset := int(-n)
	return classify(data, offset)
}

// classify turns a raw failure offset into a ParseError by inspecting
// the byte that stopped the scan, using jsonvisit's own classification
// predicates rather than a second byte table. It is necessarily a
// best-effort reading: the core parser reports only a position, never
// a reason.
func classify(data []byte, offset int) *ParseError {
	pos := Locate(data, offset)

	if len(data) == 0 || offset >= len(data) {
		return &ParseError{Code: CodeUnexpectedEOF, Message: "unexpected end of input", Position: pos}
	}

	b := data[offset]
	prev := byte(0)
	if offset > 0 {
		prev = data[offset-1]
	}
	switch {
	case prev == '\\':
		// vstring fails an escape at the offset of the byte right after
		// the backslash, whether that byte is an unrecognized escape
		// letter or the "u" of a bad/truncated unicode escape.
		return &ParseError{Code: CodeInvalidEscape, Message: "invalid escape sequence", Position: pos}
	case jsonvisit.IsCloseBracket(b) || b == ',':
		return &ParseError{Code: CodeTrailingContent, Message: fmt.Sprintf("unexpected %q, likely a trailing comma", b), Position: pos}
	case b == '.' || jsonvisit.IsDigit(b) || b == '+' || b == '-' || b == 'e' || b == 'E':
		return &ParseError{Code: CodeInvalidNumber, Message: "malformed number", Position: pos}
	case b == '"':
		return &ParseError{Code: CodeUnterminatedString, Message: "string is not closed", Position: pos}
	default:
		return &ParseError{Code: CodeMalformedInput, Message: fmt.Sprintf("unexpected byte %q", b), Position: pos}
	}
}
