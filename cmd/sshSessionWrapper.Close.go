package cmd

import (
	"errors"
	"io"
)

// Close closes the underlying ssh.Session. The channel is usually already
// shut by the remote side once Run returns, so io.EOF is not an error here.
func (w sshSessionWrapper) Close() error {
	if err := w.s.Close(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
