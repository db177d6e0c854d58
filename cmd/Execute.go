package cmd

import (
	"fmt"
	"os"
)

// Execute runs the root command. Any error, a failed connection included,
// is reported on stderr and ends the process with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		exitFunc(1)
	}
}
