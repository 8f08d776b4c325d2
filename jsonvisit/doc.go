// Package jsonvisit is a streaming, callback-driven JSON validator and
// tokenizer. It walks a byte buffer in a single forward pass and reports
// every value, token, and structural event to a caller-supplied Visitor
// as half-open [start, end) byte ranges into the original buffer, tagged
// with an Info bitmask describing what was found.
//
// The parser never allocates, never copies string payloads, never
// decodes numbers or escape sequences, and never builds a tree. Callers
// that want a decoded value slice the original buffer themselves, or
// reach for the decode subpackage.
package jsonvisit
