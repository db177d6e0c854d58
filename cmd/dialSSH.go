package cmd

import (
	"errors"
	"fmt"
	"net"
	"time"

	"golang.org/x/crypto/ssh"
)

// dialOptions carries everything needed to open the single SSH session.
type dialOptions struct {
	Target        string
	User          string
	Password      string
	KeyPath       string
	Passphrase    string
	KnownHosts    string
	HostKeyPolicy string
	Timeout       time.Duration
}

// dialSSH establishes an authenticated SSH client connection using static
// credentials only: a password, a private key file, or both.
func dialSSH(opts dialOptions) (*ssh.Client, error) {
	var auths []ssh.AuthMethod

	if opts.KeyPath != "" {
		signer, err := loadSigner(opts.KeyPath, opts.Passphrase)
		if err != nil {
			return nil, fmt.Errorf("load key: %w", err)
		}
		auths = append(auths, ssh.PublicKeys(signer))
	}

	if opts.Password != "" {
		auths = append(auths, ssh.Password(opts.Password))
	}

	if len(auths) == 0 {
		return nil, errors.New("no authentication method configured")
	}

	hostKeyCB, err := hostKeyCallback(opts.HostKeyPolicy, opts.KnownHosts)
	if err != nil {
		return nil, err
	}

	cfg := &ssh.ClientConfig{
		User:            opts.User,
		Auth:            auths,
		HostKeyCallback: hostKeyCB,
		Timeout:         opts.Timeout,
	}

	// Use explicit net.Dialer for connection timeout
	target := normalizeTarget(opts.Target)
	d := net.Dialer{Timeout: opts.Timeout}
	conn, err := d.Dial("tcp", target)
	if err != nil {
		return nil, err
	}
	if opts.Timeout > 0 {
		// Bound the handshake as well; cleared once the session is up.
		_ = conn.SetDeadline(time.Now().Add(opts.Timeout))
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, target, cfg)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	_ = conn.SetDeadline(time.Time{})
	return ssh.NewClient(c, chans, reqs), nil
}

// normalizeTarget appends the default SSH port when target has none.
func normalizeTarget(target string) string {
	if _, _, err := net.SplitHostPort(target); err == nil {
		return target
	}
	host := target
	if len(host) > 1 && host[0] == '[' && host[len(host)-1] == ']' {
		host = host[1 : len(host)-1]
	}
	return net.JoinHostPort(host, "22")
}
