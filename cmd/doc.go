// Package cmd implements the runner-check command-line interface.
//
// runner-check opens one SSH session to a remote host and runs an ordered
// list of read-only probes (runner process, installation directory, service,
// recent logs, build artifacts, launch script, connected devices). Each probe
// is declarative: a command plus the labels printed when its trimmed stdout
// is empty or not. A single routine, runProbe, executes all of them.
//
// Start with rootCmd.go and diagnose.go for the execution flow,
// defaultProbes.go for the built-in probe list, and init.go / loadConfig.go
// for how flags, RUNNER_CHECK_* variables, dotenv files and config files are
// resolved.
package cmd
