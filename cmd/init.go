package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// init registers the persistent flags shared by the root command and verify,
// binds them through Viper, and wires the subcommands.
func init() {
	flags := rootCmd.PersistentFlags()

	// Connection
	flags.StringP("target", "t", "", "Remote host or host:port (port 22 when omitted)")
	flags.StringP("user", "u", "", "SSH username")
	flags.String("password", "", "SSH password (or set RUNNER_CHECK_PASSWORD)")
	flags.String("key", "", "Path to SSH private key (PEM, OpenSSH)")
	flags.String("passphrase", "", "Private key passphrase (or set RUNNER_CHECK_PASSPHRASE)")
	flags.String("known-hosts", filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"), "Path to known_hosts file")
	flags.String("host-key-policy", hostKeyAutoAdd, "Host key handling: auto-add, strict or insecure")
	flags.Duration("conn-timeout", 30*time.Second, "Connection timeout")
	flags.Duration("cmd-timeout", 0, "Per-probe timeout (e.g., 30s). 0 disables")

	// Probe inputs
	flags.String("agent-name", "actions-runner", "Runner agent process-name substring")
	flags.String("runner-dir", "~/actions-runner", "Runner installation directory on the remote host")
	flags.String("service-name", "actions", "Service-name substring to look for")
	flags.String("service-list-cmd", "launchctl list", "Command listing services on the remote host")
	flags.String("launch-script", "run.sh", "Launch script file name inside --runner-dir")
	flags.Int("log-max-age", 1, "Only consider log files modified within this many days")
	flags.Int("log-limit", 5, "Maximum number of recent log paths to list")
	flags.Int("log-tail", 20, "Lines to tail from each recent log file")
	flags.Int("log-tail-cap", 40, "Maximum tailed lines printed in total (0 disables the cap)")
	flags.String("artifact-root", "~", "Directory searched for build artifacts")
	flags.String("artifact-path", "ssh-terminal", "Path component build artifacts must live under")
	flags.String("artifact-ext", ".app,.ipa", "Comma-separated build artifact extensions")
	flags.Int("artifact-limit", 10, "Maximum number of artifact paths to list")
	flags.String("device-cmd", "xcrun devicectl list devices", "Command listing connected devices")

	// Run shaping
	flags.String("probes", "", "Path to a YAML probes file replacing the built-in probe list")
	flags.String("report", "", "Write a YAML report of every probe result to this path")
	flags.Bool("noop", false, "Print the planned probe commands and exit without connecting")
	flags.BoolP("verbose", "v", false, "Enable debug logging on stderr")

	// Bootstrap
	flags.StringVar(&cfgFile, "config", "", "Path to a config file (yaml) using the flag names as keys")
	flags.StringVar(&cfgEnvFile, "env-file", "", "Path to a dotenv file loaded before reading RUNNER_CHECK_* variables")

	bindConfig()

	rootCmd.AddCommand(verifyCmd)
}

// bindConfig binds every config key to its flag and to RUNNER_CHECK_<KEY>
// environment variables. Tests call it again after viper.Reset.
func bindConfig() {
	for _, key := range configKeys {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
