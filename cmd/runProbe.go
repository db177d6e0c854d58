package cmd

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// runProbe executes one probe and prints its section to w. Failures to run
// the command are logged and treated like empty output, so a broken probe
// never stops the ones after it. The returned error is a write failure.
func runProbe(w io.Writer, client sessionClient, p probe, defaultTimeout time.Duration) (probeOutcome, error) {
	if p.Title != "" {
		if err := writeHeading(w, p.Title); err != nil {
			return probeOutcome{Probe: p}, err
		}
	}

	timeout := p.perCommandTimeout(defaultTimeout)
	slog.Debug("running probe", "probe", p.Name, "command", p.Command, "timeout", timeout)
	res, runErr := runRemoteCommandFunc(client, p.Command, timeout)
	switch {
	case runErr != nil:
		slog.Warn("probe command failed", "probe", p.Name, "error", runErr)
	case res.ExitCode != 0 || res.Stderr != "":
		slog.Debug("probe command reported problems", "probe", p.Name, "exit_code", res.ExitCode, "stderr", res.Stderr)
	}

	stdout := capLines(strings.TrimSpace(res.Stdout), p.MaxLines)
	outcome := probeOutcome{
		Probe:  p,
		Result: res,
		Status: classify(stdout, p),
		Err:    runErr,
	}
	outcome.Result.Stdout = stdout

	if err := writeProbeSection(w, p, stdout, outcome.Status); err != nil {
		return outcome, err
	}

	if outcome.Status == statusFound && p.FollowUp != nil {
		f, err := runProbe(w, client, *p.FollowUp, defaultTimeout)
		outcome.FollowUp = &f
		if err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

// capLines keeps the first n lines of s; n <= 0 keeps everything.
func capLines(s string, n int) string {
	if n <= 0 || s == "" {
		return s
	}
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
