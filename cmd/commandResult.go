package cmd

// commandResult is the transient outcome of one remote command. Stdout and
// Stderr are decoded and trimmed of surrounding whitespace.
type commandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}
