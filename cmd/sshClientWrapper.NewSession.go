package cmd

import (
	"errors"
	"fmt"
)

var errNoClient = errors.New("ssh client is not connected")

// NewSession opens one exec channel for a single probe command.
func (w sshClientWrapper) NewSession() (session, error) {
	if w.c == nil {
		return nil, errNoClient
	}
	s, err := w.c.NewSession()
	if err != nil {
		return nil, fmt.Errorf("open exec channel: %w", err)
	}
	return sshSessionWrapper{s: s}, nil
}
