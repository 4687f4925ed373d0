package core

import "github.com/google/uuid"

// NewJobID returns a fresh identifier for one decode run. Every log entry of
// the run carries it, so runs interleaved in a shared log file stay
// attributable.
func NewJobID() string {
	return uuid.NewString()
}
