package cmd

import (
	"fmt"
	"path"
	"strings"
)

// defaultProbes builds the built-in CI runner diagnostics, in run order.
func defaultProbes(c runnerConfig) []probe {
	dir := remotePath(c.RunnerDir)
	return []probe{
		{
			Name:     "runner-process",
			Title:    "Checking GitHub Actions Runner Status",
			Command:  fmt.Sprintf("ps aux | grep -i %s | grep -v grep", shellQuote(c.AgentName)),
			Found:    "Runner processes found:",
			Fallback: "No runner processes running",
		},
		{
			Name:     "runner-install",
			Title:    "Checking Runner Installation",
			Command:  fmt.Sprintf("ls -la %s 2>/dev/null", dir),
			Fallback: "Runner directory not found",
		},
		{
			Name:    "runner-service",
			Title:   "Checking Runner Service",
			Command: fmt.Sprintf("%s 2>/dev/null | grep -i %s", c.ServiceListCmd, shellQuote(c.ServiceName)),
			Found:   "Service status:",
		},
		logsProbe(c, dir),
		artifactsProbe(c),
		{
			Name:     "launch-script",
			Title:    "Checking if runner needs to be started",
			Command:  fmt.Sprintf("ls %s 2>/dev/null", remotePath(path.Join(c.RunnerDir, c.LaunchScript))),
			Found:    "Runner script found at:",
			Inline:   true,
			Hint:     fmt.Sprintf("\nTo start the runner, run:\ncd %s && ./%s", dir, shellQuote(c.LaunchScript)),
			Fallback: "Runner not installed or in different location",
		},
		{
			Name:     "devices",
			Title:    "Checking iPhone for installed apps",
			Command:  fmt.Sprintf("%s 2>/dev/null", c.DeviceCmd),
			Found:    "Connected devices:",
			Fallback: "No devices found or devicectl not available",
		},
	}
}

// logsProbe lists recently modified logs and, when any exist, tails them.
func logsProbe(c runnerConfig, dir string) probe {
	find := fmt.Sprintf("find %s -name '*.log' -type f -mtime -%d", dir, c.LogMaxAge)
	return probe{
		Name:     "runner-logs",
		Title:    "Recent Runner Logs",
		Command:  withHead(find+" 2>/dev/null", c.LogLimit),
		Found:    "Recent log files:",
		Fallback: "No recent log files found",
		FollowUp: &probe{
			Name:     "runner-log-tail",
			Command:  withHead(fmt.Sprintf("%s -exec tail -%d {} \\; 2>/dev/null", find, c.LogTail), c.LogTailCap),
			Found:    "\nLast log entries:",
			MaxLines: c.LogTailCap,
		},
	}
}

func artifactsProbe(c runnerConfig) probe {
	sub := shellQuote("*/" + strings.Trim(c.ArtifactPath, "/") + "/*")
	clauses := make([]string, 0, len(c.ArtifactExts))
	for _, ext := range c.ArtifactExts {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		clauses = append(clauses, fmt.Sprintf("-name %s -path %s", shellQuote("*"+ext), sub))
	}
	expr := strings.Join(clauses, " -o ")
	if len(clauses) > 1 {
		expr = `\( ` + expr + ` \)`
	}
	return probe{
		Name:     "build-artifacts",
		Title:    "Checking for iOS Build Artifacts",
		Command:  withHead(fmt.Sprintf("find %s %s 2>/dev/null", remotePath(c.ArtifactRoot), expr), c.ArtifactLimit),
		Found:    "iOS build artifacts found:",
		Fallback: "No iOS build artifacts found yet",
	}
}

// withHead caps a pipeline's output on the remote side; n <= 0 leaves it as is.
func withHead(cmd string, n int) string {
	if n <= 0 {
		return cmd
	}
	return fmt.Sprintf("%s | head -%d", cmd, n)
}
