package cmd

import (
	"fmt"
	"io"
	"log/slog"
)

// diagnose opens the single SSH session, runs the probes and closes the
// session. The close runs exactly once, after every probe, on every exit
// path including a panicking probe.
func diagnose(w io.Writer, c runnerConfig, probes []probe) (err error) {
	target := normalizeTarget(c.Target)
	_, _ = fmt.Fprintf(w, "Connecting to %s...\n", target)

	client, err := dialSSHFunc(c.dialOptions())
	if err != nil {
		return fmt.Errorf("ssh connection failed: %w", err)
	}
	_, _ = fmt.Fprintln(w, "Connected!")
	slog.Debug("ssh session established", "target", target, "user", c.User)

	sc := sshClientWrapper{client}
	defer func() {
		_ = writeHeading(w, "Disconnecting")
		if cerr := sc.Close(); cerr != nil {
			slog.Warn("ssh close failed", "target", target, "error", cerr)
		}
		_, _ = fmt.Fprintln(w, "SSH connection closed")
	}()

	outcomes, err := runDiagnostics(w, sc, probes, c.CmdTimeout)

	if c.ReportPath != "" {
		report := newYAMLReport(c)
		report.addOutcomes(outcomes)
		if werr := writeReportFile(c.ReportPath, report); werr != nil && err == nil {
			err = werr
		} else if werr == nil {
			slog.Info("report written", "path", c.ReportPath)
		}
	}
	return err
}
