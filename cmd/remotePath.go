package cmd

import "strings"

// remotePath quotes a path for the remote shell while leaving a leading "~"
// unquoted so it still expands to the login user's home directory.
func remotePath(p string) string {
	switch {
	case p == "~":
		return p
	case strings.HasPrefix(p, "~/"):
		rest := strings.TrimPrefix(p, "~/")
		if rest == "" {
			return "~/"
		}
		return "~/" + shellQuote(rest)
	default:
		return shellQuote(p)
	}
}
