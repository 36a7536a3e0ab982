package cli

import (
	"fmt"

	"github.com/vburojevic/logtally/internal/output"
)

// emitWarning respects quiet.
func emitWarning(globals *Globals, msg string) {
	if globals.Quiet {
		return
	}
	prefix := output.Prefix(globals.Stderr, output.Styles.Warning, "Warning:")
	fmt.Fprintf(globals.Stderr, "%s %s\n", prefix, msg)
}
