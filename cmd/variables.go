package cmd

import "github.com/spf13/viper"

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

// envPrefix namespaces every environment override, e.g. RUNNER_CHECK_TARGET.
const envPrefix = "RUNNER_CHECK"

var (
	// cfg is the configuration resolved for the current invocation.
	cfg runnerConfig

	// Bootstrap flags read before viper resolves everything else.
	cfgFile    string
	cfgEnvFile string
)

// configKeys lists every flag that is also resolvable through viper.
var configKeys = []string{
	"target", "user", "password", "key", "passphrase", "known-hosts",
	"host-key-policy", "conn-timeout", "cmd-timeout",
	"agent-name", "runner-dir", "service-name", "service-list-cmd", "launch-script",
	"log-max-age", "log-limit", "log-tail", "log-tail-cap",
	"artifact-root", "artifact-path", "artifact-ext", "artifact-limit",
	"device-cmd", "probes", "report", "noop", "verbose",
}

// Allow tests to stub dialing and command execution
var (
	dialSSHFunc          = dialSSH
	runRemoteCommandFunc = runRemoteCommand
)

// configFromViper snapshots the resolved settings.
func configFromViper() runnerConfig {
	return runnerConfig{
		Target:         viper.GetString("target"),
		User:           viper.GetString("user"),
		Password:       viper.GetString("password"),
		KeyPath:        viper.GetString("key"),
		Passphrase:     viper.GetString("passphrase"),
		KnownHosts:     viper.GetString("known-hosts"),
		HostKeyPolicy:  viper.GetString("host-key-policy"),
		ConnTimeout:    viper.GetDuration("conn-timeout"),
		CmdTimeout:     viper.GetDuration("cmd-timeout"),
		AgentName:      viper.GetString("agent-name"),
		RunnerDir:      viper.GetString("runner-dir"),
		ServiceName:    viper.GetString("service-name"),
		ServiceListCmd: viper.GetString("service-list-cmd"),
		LaunchScript:   viper.GetString("launch-script"),
		LogMaxAge:      viper.GetInt("log-max-age"),
		LogLimit:       viper.GetInt("log-limit"),
		LogTail:        viper.GetInt("log-tail"),
		LogTailCap:     viper.GetInt("log-tail-cap"),
		ArtifactRoot:   viper.GetString("artifact-root"),
		ArtifactPath:   viper.GetString("artifact-path"),
		ArtifactExts:   splitList(viper.GetStringSlice("artifact-ext")...),
		ArtifactLimit:  viper.GetInt("artifact-limit"),
		DeviceCmd:      viper.GetString("device-cmd"),
		ProbesFile:     viper.GetString("probes"),
		ReportPath:     viper.GetString("report"),
		Noop:           viper.GetBool("noop"),
	}
}
