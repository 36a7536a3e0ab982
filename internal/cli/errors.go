package cli

import (
	"fmt"

	"github.com/vburojevic/logtally/internal/output"
)

// outputErrorCommon prints a coded error to stderr and returns it so the
// caller exits non-zero. Errors are printed even in quiet mode.
func outputErrorCommon(globals *Globals, code, message, hint string) error {
	cliErr := &CLIError{Code: code, Message: message, Hint: hint}
	if globals == nil {
		return cliErr
	}
	prefix := output.Prefix(globals.Stderr, output.Styles.Danger, fmt.Sprintf("Error [%s]:", code))
	fmt.Fprintf(globals.Stderr, "%s %s\n", prefix, message)
	if hint != "" {
		fmt.Fprintf(globals.Stderr, "Hint: %s\n", hint)
	}
	return cliErr
}
