package cmd

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"
)

// loadSigner reads a static private key file. An encrypted key without a
// passphrase gets an actionable error instead of the library's.
func loadSigner(path, passphrase string) (ssh.Signer, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if passphrase == "" {
		s, err := ssh.ParsePrivateKey(pem)
		var missing *ssh.PassphraseMissingError
		if errors.As(err, &missing) {
			return nil, fmt.Errorf("private key %s is encrypted; provide --passphrase or RUNNER_CHECK_PASSPHRASE", path)
		}
		return s, err
	}
	return ssh.ParsePrivateKeyWithPassphrase(pem, []byte(passphrase))
}
