package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Host-key policies accepted by --host-key-policy.
const (
	hostKeyAutoAdd  = "auto-add"
	hostKeyStrict   = "strict"
	hostKeyInsecure = "insecure"
)

// hostKeyCallback maps a policy name to an ssh.HostKeyCallback.
//
// auto-add trusts hosts already in known_hosts, records unknown hosts there on
// first sight, and still rejects a known host that presents a different key.
// strict requires an existing matching entry. insecure accepts anything and
// persists nothing.
func hostKeyCallback(policy, knownHostsPath string) (ssh.HostKeyCallback, error) {
	switch policy {
	case hostKeyInsecure:
		return ssh.InsecureIgnoreHostKey(), nil
	case hostKeyStrict:
		if _, err := os.Stat(knownHostsPath); err != nil {
			return nil, fmt.Errorf("known_hosts file not found at %s and host-key policy is strict", knownHostsPath)
		}
		cb, err := knownhosts.New(knownHostsPath)
		if err != nil {
			return nil, fmt.Errorf("known_hosts: %w", err)
		}
		return cb, nil
	case hostKeyAutoAdd, "":
		if knownHostsPath == "" {
			return nil, errors.New("--known-hosts is required for the auto-add host-key policy")
		}
		return autoAddHostKey(knownHostsPath), nil
	default:
		return nil, fmt.Errorf("unknown host-key policy %q", policy)
	}
}

func autoAddHostKey(path string) ssh.HostKeyCallback {
	return func(hostname string, remote net.Addr, key ssh.PublicKey) error {
		if err := ensureKnownHosts(path); err != nil {
			return err
		}
		cb, err := knownhosts.New(path)
		if err != nil {
			return fmt.Errorf("known_hosts: %w", err)
		}
		err = cb(hostname, remote, key)
		if err == nil {
			return nil
		}
		var keyErr *knownhosts.KeyError
		if errors.As(err, &keyErr) && len(keyErr.Want) == 0 {
			return appendKnownHost(path, hostname, remote, key)
		}
		return err
	}
}

// ensureKnownHosts creates the trust store (and its directory) when missing.
func ensureKnownHosts(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create known_hosts dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open known_hosts: %w", err)
	}
	return f.Close()
}

func appendKnownHost(path, hostname string, remote net.Addr, key ssh.PublicKey) error {
	addresses := []string{knownhosts.Normalize(hostname)}
	if remote != nil {
		if r := knownhosts.Normalize(remote.String()); r != addresses[0] {
			addresses = append(addresses, r)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open known_hosts: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, knownhosts.Line(addresses, key)); err != nil {
		return fmt.Errorf("write known_hosts: %w", err)
	}
	slog.Info("added host key to known_hosts", "host", hostname, "type", key.Type(), "path", path)
	return nil
}
