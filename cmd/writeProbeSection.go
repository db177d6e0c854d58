package cmd

import (
	"bufio"
	"fmt"
	"io"
)

// writeProbeSection writes one probe's result for the given status.
func writeProbeSection(w io.Writer, p probe, stdout, status string) error {
	bw := bufio.NewWriter(w)
	switch status {
	case statusFound:
		switch {
		case p.Found == "":
			_, _ = fmt.Fprintln(bw, stdout)
		case p.Inline:
			_, _ = fmt.Fprintf(bw, "%s %s\n", p.Found, stdout)
		default:
			_, _ = fmt.Fprintln(bw, p.Found)
			_, _ = fmt.Fprintln(bw, stdout)
		}
		if p.Hint != "" {
			_, _ = fmt.Fprintln(bw, p.Hint)
		}
	case statusFallback:
		_, _ = fmt.Fprintln(bw, p.Fallback)
	}
	return bw.Flush()
}
