package cmd

import (
	"bufio"
	"fmt"
	"io"
)

// writePlan prints the commands a run would execute, in order, without
// connecting anywhere.
func writePlan(w io.Writer, probes []probe) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "# Planned probes (%d probes)\n", len(probes))
	for i, p := range probes {
		_, _ = fmt.Fprintf(bw, "[%d/%d] %s: %s\n", i+1, len(probes), p.Name, p.Command)
		for f := p.FollowUp; f != nil; f = f.FollowUp {
			_, _ = fmt.Fprintf(bw, "      then %s: %s\n", f.Name, f.Command)
		}
	}
	return bw.Flush()
}
