package cmd

// sessionClient hands out one session per probe command.
type sessionClient interface {
	NewSession() (session, error)
}
