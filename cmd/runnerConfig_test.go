package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunnerConfig_Validate(t *testing.T) {
	require.NoError(t, defaultTestConfig().validate())

	c := defaultTestConfig()
	c.LogTailCap = -1
	require.EqualError(t, c.validate(), "--log-tail-cap must be >= 0")

	c = defaultTestConfig()
	c.CmdTimeout = -time.Second
	require.EqualError(t, c.validate(), "--cmd-timeout must be >= 0")

	c = defaultTestConfig()
	c.ArtifactExts = nil
	require.EqualError(t, c.validate(), "--artifact-ext requires at least one extension")

	// A probes file replaces the built-in probes, so their settings are moot.
	c.RunnerDir = ""
	c.ProbesFile = "probes.yaml"
	require.NoError(t, c.validate())
}

func TestRunnerConfig_ValidateConnection(t *testing.T) {
	base := runnerConfig{Target: "h", User: "u", Password: "p", HostKeyPolicy: hostKeyAutoAdd}
	require.NoError(t, base.validateConnection())

	c := base
	c.Password, c.KeyPath = "", "/k"
	require.NoError(t, c.validateConnection())

	c = base
	c.Target = " "
	require.EqualError(t, c.validateConnection(), "--target is required (host or host:port)")

	c = base
	c.User = ""
	require.EqualError(t, c.validateConnection(), "--user is required for SSH authentication")

	c = base
	c.Password = ""
	require.EqualError(t, c.validateConnection(), "--password or --key is required")

	c = base
	c.HostKeyPolicy = "yolo"
	require.EqualError(t, c.validateConnection(), `unknown host-key policy "yolo"`)
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{".app", ".ipa"}, splitList(".app, .ipa"))
	require.Equal(t, []string{"a", "b", "c"}, splitList("a", "b,,c", " "))
	require.Nil(t, splitList(""))
}
