package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// runDiagnostics runs every probe strictly in order over one client.
func runDiagnostics(w io.Writer, client sessionClient, probes []probe, cmdTimeout time.Duration) ([]probeOutcome, error) {
	outcomes := make([]probeOutcome, 0, len(probes))
	for i, p := range probes {
		slog.Debug("probe", "index", i+1, "total", len(probes), "name", p.Name)
		o, err := runProbe(w, client, p, cmdTimeout)
		outcomes = append(outcomes, o)
		if err != nil {
			return outcomes, fmt.Errorf("failed writing output: %w", err)
		}
	}
	return outcomes, nil
}
