package cmd

// session is a minimal interface for running one command on its own exec
// channel and closing it afterwards.
type session interface {
	Output(cmd string) (stdout, stderr []byte, err error)
	Close() error
}
