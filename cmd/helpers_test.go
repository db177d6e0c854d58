package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

// writeTemp creates a temp file with content and returns its path.
func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// resetConfig clears global configuration so tests don't leak state
func resetConfig() {
	viper.Reset()
	resetFlags(rootCmd.PersistentFlags())
	resetFlags(rootCmd.Flags())
	bindConfig()
	cfg = runnerConfig{}
	cfgFile = ""
	cfgEnvFile = ""
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// runRoot executes the root command with args and returns what it printed
// on stdout.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

// connArgs are the minimum flags for a run against a stubbed dialer.
func connArgs(extra ...string) []string {
	return append([]string{
		"--target", "10.0.0.9",
		"--user", "tester",
		"--password", "pw",
		"--host-key-policy", "insecure",
	}, extra...)
}

// stubDial replaces the dialer with one that succeeds with a nil client and
// records the options it was called with.
func stubDial(t *testing.T) *[]dialOptions {
	t.Helper()
	orig := dialSSHFunc
	t.Cleanup(func() { dialSSHFunc = orig })
	var calls []dialOptions
	dialSSHFunc = func(opts dialOptions) (*ssh.Client, error) {
		calls = append(calls, opts)
		return nil, nil
	}
	return &calls
}

// cannedReply answers any command containing match.
type cannedReply struct {
	match string
	res   commandResult
	err   error
}

// stubRemote answers commands from replies (first substring match wins) and
// records every command in order. Unmatched commands behave like grep with
// no match: empty stdout, exit 1.
func stubRemote(t *testing.T, replies ...cannedReply) *[]string {
	t.Helper()
	orig := runRemoteCommandFunc
	t.Cleanup(func() { runRemoteCommandFunc = orig })
	var calls []string
	runRemoteCommandFunc = func(client sessionClient, cmd string, timeout time.Duration) (commandResult, error) {
		calls = append(calls, cmd)
		for _, r := range replies {
			if strings.Contains(cmd, r.match) {
				return r.res, r.err
			}
		}
		return commandResult{ExitCode: 1}, nil
	}
	return &calls
}

func reply(s string) commandResult { return commandResult{Stdout: s} }

// fakeSession is a scripted session for runRemoteCommand tests.
type fakeSession struct {
	stdout []byte
	stderr []byte
	err    error
	delay  time.Duration
	closed bool
	cmd    string
}

func (f *fakeSession) Output(cmd string) ([]byte, []byte, error) {
	f.cmd = cmd
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.stdout, f.stderr, f.err
}

func (f *fakeSession) Close() error { f.closed = true; return nil }

type fakeClient struct {
	sess   *fakeSession
	newErr error
}

func (c *fakeClient) NewSession() (session, error) {
	if c.newErr != nil {
		return nil, c.newErr
	}
	return c.sess, nil
}

// Compile-time checks
var (
	_ session       = (*fakeSession)(nil)
	_ sessionClient = (*fakeClient)(nil)
	_ session       = sshSessionWrapper{}
	_ sessionClient = sshClientWrapper{}
)
