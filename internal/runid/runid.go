// Package runid generates the single per-process correlation id the CLI
// attaches to every log line of one invocation.
package runid

import "github.com/gofrs/uuid"

// New returns a fresh v4 UUID string. It panics if the platform's random
// source is unavailable, the same failure mode uuid.Must encodes.
func New() string {
	return uuid.Must(uuid.NewV4()).String()
}
