package cmd

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func TestExecute_Success_NoExit(t *testing.T) {
	resetConfig()
	stubDial(t)
	stubRemote(t)

	origExit := exitFunc
	t.Cleanup(func() { exitFunc = origExit })
	calledExit := 0
	exitFunc = func(code int) { calledExit = code }

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	rootCmd.SetArgs(connArgs())

	Execute()

	require.Equal(t, 0, calledExit)
	require.Contains(t, out.String(), "SSH connection closed")
}

func TestExecute_ConnectionFailure_StderrExit1(t *testing.T) {
	resetConfig()
	origDial := dialSSHFunc
	t.Cleanup(func() { dialSSHFunc = origDial })
	dialSSHFunc = func(dialOptions) (*ssh.Client, error) {
		return nil, errors.New("dial tcp 10.0.0.9:22: connect: no route to host")
	}
	calls := stubRemote(t)

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	code := 0
	origExit := exitFunc
	exitFunc = func(c int) { code = c }
	defer func() { exitFunc = origExit }()

	rootCmd.SetOut(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	rootCmd.SetArgs(connArgs())
	Execute()

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	require.Contains(t, buf.String(), "Error: ssh connection failed: dial tcp 10.0.0.9:22")
	require.Equal(t, 1, code)
	require.Empty(t, *calls)
}
