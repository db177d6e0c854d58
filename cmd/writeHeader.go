package cmd

import (
	"fmt"
	"io"
)

// writeHeading writes a blank line and a "=== title ===" banner.
func writeHeading(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "\n=== %s ===\n", title)
	return err
}
