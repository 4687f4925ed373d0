package core

// Exit codes for the command-line tool, following Unix conventions.
const (
	// ExitCodeSuccess indicates a completed decode (exit code 0)
	ExitCodeSuccess = 0

	// ExitCodeError indicates a usage error, I/O failure, or decode
	// failure (exit code 1)
	ExitCodeError = 1
)

// ExitCodeName returns a human-readable name for an exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitCodeSuccess:
		return "success"
	case ExitCodeError:
		return "error"
	default:
		return "unknown"
	}
}
