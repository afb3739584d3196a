package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/packspec/internal/app"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, DefaultSpecPath, cfg.SpecPath)
	assert.Equal(t, "", cfg.Profile)
	assert.Equal(t, app.OutputSpec, cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.ListFiles)
}

func TestParse_PositionalSpecPath(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"my.spec"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "my.spec", cfg.SpecPath)
}

func TestParse_FlagsAndShorthands(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want func(t *testing.T, cfg *app.Config)
	}{
		{
			name: "long flags",
			args: []string{"-spec", "a.spec", "-profile", "demo", "-output", "yaml", "-files", "-root", "/tmp/src"},
			want: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, "a.spec", cfg.SpecPath)
				assert.Equal(t, "demo", cfg.Profile)
				assert.Equal(t, app.OutputYAML, cfg.Output)
				assert.True(t, cfg.ListFiles)
				assert.Equal(t, "/tmp/src", cfg.Root)
			},
		},
		{
			name: "shorthands",
			args: []string{"-s", "b.spec", "-p", "release", "-o", "yaml"},
			want: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, "b.spec", cfg.SpecPath)
				assert.Equal(t, "release", cfg.Profile)
				assert.Equal(t, app.OutputYAML, cfg.Output)
			},
		},
		{
			name: "list profiles",
			args: []string{"-list-profiles"},
			want: func(t *testing.T, cfg *app.Config) {
				assert.True(t, cfg.ListProfiles)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc := tc
			t.Parallel()
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			require.False(t, shouldExit)
			tc.want(t, cfg)
		})
	}
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--no-such-flag"}},
		{name: "bad output", args: []string{"-output", "toml"}},
		{name: "bad log format", args: []string{"-log-format", "xml"}},
		{name: "bad log level", args: []string{"-log-level", "chatty"}},
		{name: "files and list-profiles together", args: []string{"-files", "-list-profiles"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc := tc
			t.Parallel()
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
