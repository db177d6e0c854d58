package cmd

import "golang.org/x/crypto/ssh"

// sshSessionWrapper is a session backed by a single exec channel.
type sshSessionWrapper struct {
	s *ssh.Session
}
