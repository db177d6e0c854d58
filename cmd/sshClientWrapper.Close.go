package cmd

// Close tears down the SSH connection. A wrapper around a nil client (as
// produced by stubbed dialers in tests) closes to nil.
func (w sshClientWrapper) Close() error {
	if w.c == nil {
		return nil
	}
	return w.c.Close()
}
