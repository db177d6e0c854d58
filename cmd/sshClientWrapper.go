package cmd

import "golang.org/x/crypto/ssh"

// sshClientWrapper is the sessionClient backed by the one dialed connection.
// Every probe opens its own exec channel on it.
type sshClientWrapper struct {
	c *ssh.Client
}
