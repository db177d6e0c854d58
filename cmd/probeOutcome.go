package cmd

// Probe outcome statuses.
const (
	statusFound    = "found"
	statusFallback = "fallback"
	statusSkipped  = "skipped"
)

// probeOutcome records what one probe saw and which branch it printed.
type probeOutcome struct {
	Probe    probe
	Result   commandResult
	Status   string
	Err      error
	FollowUp *probeOutcome
}

// classify picks the printed branch from the trimmed stdout alone.
func classify(stdout string, p probe) string {
	switch {
	case stdout != "":
		return statusFound
	case p.Fallback != "":
		return statusFallback
	default:
		return statusSkipped
	}
}
