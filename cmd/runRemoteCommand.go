package cmd

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// runRemoteCommand executes cmd on a fresh session and returns its trimmed
// stdout/stderr and exit status. A non-zero exit status is reported through
// the result, not the error: probes such as grep exit 1 on "nothing found".
// The error is reserved for transport problems and timeouts.
func runRemoteCommand(client sessionClient, cmd string, timeout time.Duration) (commandResult, error) {
	type result struct {
		res commandResult
		err error
	}

	run := func() result {
		currSession, err := client.NewSession()
		if err != nil {
			return result{commandResult{ExitCode: -1}, err}
		}
		defer func(thisSession session) {
			if err := thisSession.Close(); err != nil {
				slog.Debug("session close failed", "error", err)
			}
		}(currSession)

		stdout, stderr, err := currSession.Output(cmd)
		res := commandResult{
			Stdout: strings.TrimSpace(string(stdout)),
			Stderr: strings.TrimSpace(string(stderr)),
		}
		if err == nil {
			return result{res, nil}
		}
		var ee *ssh.ExitError
		if errors.As(err, &ee) {
			res.ExitCode = ee.ExitStatus()
			return result{res, nil}
		}
		var missing *ssh.ExitMissingError
		if errors.As(err, &missing) {
			res.ExitCode = -1
			return result{res, nil}
		}
		res.ExitCode = -1
		return result{res, err}
	}

	if timeout <= 0 {
		r := run()
		return r.res, r.err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ch := make(chan result, 1)
	go func() { ch <- run() }()

	select {
	case r := <-ch:
		return r.res, r.err
	case <-ctx.Done():
		return commandResult{ExitCode: -1}, context.DeadlineExceeded
	}
}
