//go:build integration
// +build integration

package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func setupSqliteEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HBNB_CONFIG_PATH", "")
	t.Setenv("HBNB_DB_TYPE", "sqlite")
	t.Setenv("HBNB_DB_DSN", filepath.Join(t.TempDir(), "hbnb.db"))
	t.Setenv("HBNB_ENV", "")
	t.Setenv("HBNB_LOG_LEVEL", "error")
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "hbnb-cli", SilenceUsage: true, SilenceErrors: true}
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	require.NoError(t, InitStorageCommands(rootCmd, nil))

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestStorageCommands_Lifecycle(t *testing.T) {
	setupSqliteEnv(t)

	out, err := runCLI(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema is up to date")

	out, err = runCLI(t, "create", "State", `name="New_York"`)
	require.NoError(t, err)
	stateID := strings.TrimSpace(out)
	require.NotEmpty(t, stateID)

	out, err = runCLI(t, "create", "City", "state_id="+stateID, `name="Buffalo"`)
	require.NoError(t, err)
	cityID := strings.TrimSpace(out)

	out, err = runCLI(t, "all", "State")
	require.NoError(t, err)
	var states map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &states))
	require.Len(t, states, 1)
	assert.Contains(t, states["State."+stateID], "name='New York'")

	out, err = runCLI(t, "all", "--output", "yaml")
	require.NoError(t, err)
	var all map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &all))
	assert.Len(t, all, 2)
	assert.Contains(t, all, "City."+cityID)

	out, err = runCLI(t, "show", "City", cityID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[City] ("+cityID+")"))

	_, err = runCLI(t, "destroy", "State", stateID)
	require.NoError(t, err)

	out, err = runCLI(t, "all")
	require.NoError(t, err)
	var remaining map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &remaining))
	assert.Empty(t, remaining, "cities are cascade deleted with their state")
}

func TestStorageCommands_Errors(t *testing.T) {
	setupSqliteEnv(t)

	_, err := runCLI(t, "all", "Spaceship")
	assert.Error(t, err)

	_, err = runCLI(t, "all", "--output", "xml")
	assert.Error(t, err)

	_, err = runCLI(t, "create", "User", `first_name="Ada"`)
	assert.Error(t, err, "email and password are required")

	_, err = runCLI(t, "destroy", "User", "missing")
	assert.Error(t, err)
}
