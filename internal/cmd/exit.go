// Package cmd provides CLI command implementations.
package cmd

// Exit codes reported by the waterws binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates a waterfile, catalog, or configuration
	// violation: schema failures, unknown mnemonics, inheritance cycles.
	ExitValidationError = 2

	// ExitNotFound indicates a module, file, or catalog entry was not found.
	ExitNotFound = 3

	// ExitIOError indicates a filesystem read or write failed.
	ExitIOError = 4
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitIOError:
		return "I/O Error"
	default:
		return "Unknown"
	}
}
