package cmd

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunProbe_BranchIsTrimmedEmptiness(t *testing.T) {
	p := probe{Name: "p", Title: "T", Command: "c", Found: "Found:", Fallback: "Nothing"}
	cases := []struct {
		stdout string
		status string
		want   string
	}{
		{"value", statusFound, "\n=== T ===\nFound:\nvalue\n"},
		{"  padded\n\n", statusFound, "\n=== T ===\nFound:\npadded\n"},
		{"", statusFallback, "\n=== T ===\nNothing\n"},
		{" \n\t ", statusFallback, "\n=== T ===\nNothing\n"},
	}
	for _, tc := range cases {
		stubRemote(t, cannedReply{match: "c", res: reply(tc.stdout)})
		var buf bytes.Buffer
		o, err := runProbe(&buf, nil, p, 0)
		require.NoError(t, err)
		require.Equal(t, tc.status, o.Status, "stdout %q", tc.stdout)
		require.Equal(t, tc.want, buf.String())
	}
}

func TestRunProbe_SilentWithoutFallback(t *testing.T) {
	stubRemote(t)
	var buf bytes.Buffer
	o, err := runProbe(&buf, nil, probe{Name: "svc", Command: "launchctl list", Found: "Service status:"}, 0)
	require.NoError(t, err)
	require.Equal(t, statusSkipped, o.Status)
	require.Empty(t, buf.String())
}

func TestRunProbe_RawOutputWithoutLabel(t *testing.T) {
	stubRemote(t, cannedReply{match: "ls", res: reply("a\nb")})
	var buf bytes.Buffer
	_, err := runProbe(&buf, nil, probe{Name: "ls", Command: "ls", Fallback: "none"}, 0)
	require.NoError(t, err)
	require.Equal(t, "a\nb\n", buf.String())
}

func TestRunProbe_InlineWithHint(t *testing.T) {
	stubRemote(t, cannedReply{match: "ls", res: reply("/r/run.sh")})
	var buf bytes.Buffer
	_, err := runProbe(&buf, nil, probe{
		Name: "script", Command: "ls", Found: "Script at:", Inline: true, Hint: "\nrun it",
	}, 0)
	require.NoError(t, err)
	require.Equal(t, "Script at: /r/run.sh\n\nrun it\n", buf.String())
}

func TestRunProbe_FollowUpOnlyWhenFound(t *testing.T) {
	p := probe{
		Name: "logs", Command: "find", Found: "Logs:", Fallback: "No logs",
		FollowUp: &probe{Name: "tail", Command: "tail", Found: "\nTail:", MaxLines: 2},
	}

	calls := stubRemote(t)
	var buf bytes.Buffer
	o, err := runProbe(&buf, nil, p, 0)
	require.NoError(t, err)
	require.Nil(t, o.FollowUp)
	require.Equal(t, []string{"find"}, *calls)
	require.Equal(t, "No logs\n", buf.String())

	calls = stubRemote(t,
		cannedReply{match: "tail", res: reply("1\n2\n3")},
		cannedReply{match: "find", res: reply("/a.log")},
	)
	buf.Reset()
	o, err = runProbe(&buf, nil, p, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"find", "tail"}, *calls)
	require.NotNil(t, o.FollowUp)
	require.Equal(t, "1\n2", o.FollowUp.Result.Stdout)
	require.Equal(t, "Logs:\n/a.log\n\nTail:\n1\n2\n", buf.String())
}

func TestRunProbe_CommandErrorTreatedAsEmpty(t *testing.T) {
	boom := errors.New("ssh: rejected: administratively prohibited")
	stubRemote(t, cannedReply{match: "ps", res: commandResult{ExitCode: -1}, err: boom})
	var buf bytes.Buffer
	o, err := runProbe(&buf, nil, probe{Name: "ps", Command: "ps", Fallback: "none"}, 0)
	require.NoError(t, err)
	require.Equal(t, statusFallback, o.Status)
	require.ErrorIs(t, o.Err, boom)
	require.Equal(t, "none\n", buf.String())
}

func TestRunProbe_PerProbeTimeoutOverridesDefault(t *testing.T) {
	orig := runRemoteCommandFunc
	t.Cleanup(func() { runRemoteCommandFunc = orig })
	var got []time.Duration
	runRemoteCommandFunc = func(client sessionClient, cmd string, timeout time.Duration) (commandResult, error) {
		got = append(got, timeout)
		return commandResult{}, nil
	}

	_, err := runProbe(io.Discard, nil, probe{Name: "a", Command: "a"}, 5*time.Second)
	require.NoError(t, err)
	_, err = runProbe(io.Discard, nil, probe{Name: "b", Command: "b", Timeout: "250ms"}, 5*time.Second)
	require.NoError(t, err)
	_, err = runProbe(io.Discard, nil, probe{Name: "c", Command: "c", Timeout: "soon"}, 5*time.Second)
	require.NoError(t, err)
	require.Equal(t, []time.Duration{5 * time.Second, 250 * time.Millisecond, 5 * time.Second}, got)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestRunDiagnostics_StopsOnWriteFailure(t *testing.T) {
	calls := stubRemote(t)
	probes := []probe{{Name: "a", Command: "a", Fallback: "x"}, {Name: "b", Command: "b", Fallback: "y"}}
	outcomes, err := runDiagnostics(failingWriter{}, nil, probes, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed writing output")
	require.Len(t, outcomes, 1)
	require.Len(t, *calls, 1)
}

func TestCapLines(t *testing.T) {
	require.Equal(t, "a\nb\nc", capLines("a\nb\nc", 0))
	require.Equal(t, "a\nb", capLines("a\nb\nc", 2))
	require.Equal(t, "a\nb\nc", capLines("a\nb\nc", 3))
	require.Equal(t, "a", capLines("a", 5))
	require.Equal(t, "", capLines("", 5))
}
