package cli

import (
	"context"
	"io"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCLI() *CLI {
	c := New(io.Discard, LogDebug)
	c.newScreen = func() (tcell.Screen, error) {
		return tcell.NewSimulationScreen("UTF-8"), nil
	}
	return c
}

// execute runs the root command with args under an already cancelled context,
// so long-running commands start up and return straight away.
func execute(t *testing.T, c *CLI, args ...string) error {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func TestRootCommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Subset(t, names, []string{"serve", "browse", "field"})
}

func TestServeStopsOnCancel(t *testing.T) {
	err := execute(t, newTestCLI(), "serve", "--addr", "127.0.0.1:0", "--no-reveal")
	assert.NoError(t, err)
}

func TestServeWithContentFile(t *testing.T) {
	err := execute(t, newTestCLI(), "serve", "--addr", "127.0.0.1:0", "--content", "../content/testdata/site.toml")
	assert.NoError(t, err)
}

func TestBrowseStopsOnCancel(t *testing.T) {
	err := execute(t, newTestCLI(), "browse", "--seed", "1", "--variant", "flow")
	assert.NoError(t, err)
}

func TestFieldStopsOnCancel(t *testing.T) {
	err := execute(t, newTestCLI(), "field", "--density", "80")
	assert.NoError(t, err)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"serve density zero", []string{"serve", "--density", "0"}, "--density"},
		{"serve density too high", []string{"serve", "--density", "150"}, "--density"},
		{"serve bad variant", []string{"serve", "--variant", "spiral"}, "--variant"},
		{"serve missing content", []string{"serve", "--content", "testdata/missing.toml"}, "read content"},
		{"browse bad variant", []string{"browse", "--variant", "spiral"}, "--variant"},
		{"field bad density", []string{"field", "--density", "-1"}, "--density"},
		{"unexpected args", []string{"field", "extra"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, newTestCLI(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv(envPort, "9000")
	t.Setenv(envContent, "site.toml")
	t.Setenv(envDensity, "25")

	cmd := newTestCLI().serveCommand()
	assert.Equal(t, ":9000", cmd.Flags().Lookup("addr").DefValue)
	assert.Equal(t, "site.toml", cmd.Flags().Lookup("content").DefValue)
	assert.Equal(t, "25", cmd.Flags().Lookup("density").DefValue)
}

func TestEnvDensityFallback(t *testing.T) {
	t.Setenv(envDensity, "lots")
	assert.Equal(t, 40.0, envDensityOr(40))

	t.Setenv(envDensity, "")
	assert.Equal(t, 50.0, envDensityOr(50))
}

func TestDefaultAddr(t *testing.T) {
	t.Setenv(envPort, "")
	assert.Equal(t, ":8080", defaultAddr())
}
