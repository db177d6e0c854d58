package sshserv

import (
	"fmt"
	"strings"
)

// Canned state of the host served by RunnerHost.
const (
	RunnerProcessLine = "ci  4242  0.3  0.4 409214 36096 ??  S  10:15AM  0:04.12 /Users/ci/actions-runner/bin/Runner.Listener run"
	RunnerServiceLine = "-\t0\tactions.runner.acme-ssh-terminal.mac-mini"
	RunnerScriptPath  = "/Users/ci/actions-runner/run.sh"
	RunnerLogA        = "/Users/ci/actions-runner/_diag/Runner_20261016-101500-utc.log"
	RunnerLogB        = "/Users/ci/actions-runner/_diag/Worker_20261016-101533-utc.log"
	RunnerListing     = "total 8\ndrwxr-xr-x  12 ci  staff   384 Oct 16 10:15 .\n-rwxr-xr-x   1 ci  staff  2014 Oct 16 10:14 run.sh\ndrwxr-xr-x   6 ci  staff   192 Oct 16 10:15 _diag"

	// RunnerLogTailLines is deliberately above the default 40-line cap.
	RunnerLogTailLines = 45
)

// RunnerLogTail is the concatenated tail returned for the log follow-up.
func RunnerLogTail() string {
	var b strings.Builder
	for i := 1; i <= RunnerLogTailLines; i++ {
		fmt.Fprintf(&b, "[2026-10-16 10:15:%02d Z INFO JobDispatcher] entry %d\n", i%60, i)
	}
	return b.String()
}

// RunnerHost answers the runner-check probe commands the way a macOS build
// host with an idle GitHub Actions runner would: process, directory, service,
// two fresh logs and the launch script present; no build artifacts; no
// devicectl.
func RunnerHost() Handler {
	return func(cmd string) Reply {
		switch {
		case strings.HasPrefix(cmd, "ps aux"):
			return Reply{Stdout: RunnerProcessLine + "\n"}
		case strings.HasPrefix(cmd, "ls -la "):
			return Reply{Stdout: RunnerListing + "\n"}
		case strings.Contains(cmd, "launchctl list"):
			return Reply{Stdout: RunnerServiceLine + "\n"}
		case strings.Contains(cmd, "-exec tail"):
			return Reply{Stdout: RunnerLogTail()}
		case strings.HasPrefix(cmd, "find ") && strings.Contains(cmd, "*.log"):
			return Reply{Stdout: RunnerLogA + "\n" + RunnerLogB + "\n"}
		case strings.HasPrefix(cmd, "find "):
			return Reply{}
		case strings.HasPrefix(cmd, "ls ") && strings.Contains(cmd, "run.sh"):
			return Reply{Stdout: RunnerScriptPath + "\n"}
		case strings.Contains(cmd, "devicectl"):
			return Reply{Stderr: "xcrun: error: unable to find utility \"devicectl\"\n", ExitStatus: 72}
		default:
			return Reply{Stderr: "sh: command not found\n", ExitStatus: 127}
		}
	}
}
