package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// runnerConfig is the fully resolved configuration for one diagnostic run.
// It is assembled from flags, environment and config file by loadConfig and
// handed to the runner by value.
type runnerConfig struct {
	// Connection
	Target        string
	User          string
	Password      string
	KeyPath       string
	Passphrase    string
	KnownHosts    string
	HostKeyPolicy string
	ConnTimeout   time.Duration
	CmdTimeout    time.Duration

	// Runner agent
	AgentName      string
	RunnerDir      string
	ServiceName    string
	ServiceListCmd string
	LaunchScript   string

	// Logs
	LogMaxAge  int
	LogLimit   int
	LogTail    int
	LogTailCap int

	// Build artifacts
	ArtifactRoot  string
	ArtifactPath  string
	ArtifactExts  []string
	ArtifactLimit int

	DeviceCmd string

	ProbesFile string
	ReportPath string
	Noop       bool
}

// validate checks the probe-shaping settings. Connection settings are checked
// separately by validateConnection since --noop and verify never dial.
func (c runnerConfig) validate() error {
	for _, n := range []struct {
		flag string
		v    int
	}{
		{"log-max-age", c.LogMaxAge},
		{"log-limit", c.LogLimit},
		{"log-tail", c.LogTail},
		{"log-tail-cap", c.LogTailCap},
		{"artifact-limit", c.ArtifactLimit},
	} {
		if n.v < 0 {
			return fmt.Errorf("--%s must be >= 0", n.flag)
		}
	}
	if c.CmdTimeout < 0 {
		return errors.New("--cmd-timeout must be >= 0")
	}
	if c.ProbesFile != "" {
		return nil
	}
	if strings.TrimSpace(c.RunnerDir) == "" {
		return errors.New("--runner-dir is required")
	}
	if strings.TrimSpace(c.AgentName) == "" {
		return errors.New("--agent-name is required")
	}
	if len(c.ArtifactExts) == 0 {
		return errors.New("--artifact-ext requires at least one extension")
	}
	return nil
}

func (c runnerConfig) validateConnection() error {
	if strings.TrimSpace(c.Target) == "" {
		return errors.New("--target is required (host or host:port)")
	}
	if strings.TrimSpace(c.User) == "" {
		return errors.New("--user is required for SSH authentication")
	}
	if c.Password == "" && c.KeyPath == "" {
		return errors.New("--password or --key is required")
	}
	switch c.HostKeyPolicy {
	case hostKeyAutoAdd, hostKeyStrict, hostKeyInsecure:
	default:
		return fmt.Errorf("unknown host-key policy %q", c.HostKeyPolicy)
	}
	if c.ConnTimeout < 0 {
		return errors.New("--conn-timeout must be >= 0")
	}
	return nil
}

func (c runnerConfig) dialOptions() dialOptions {
	return dialOptions{
		Target:        c.Target,
		User:          c.User,
		Password:      c.Password,
		KeyPath:       c.KeyPath,
		Passphrase:    c.Passphrase,
		KnownHosts:    c.KnownHosts,
		HostKeyPolicy: c.HostKeyPolicy,
		Timeout:       c.ConnTimeout,
	}
}

// splitList splits comma-separated values, dropping blanks.
func splitList(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
