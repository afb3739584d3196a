package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/packspec/internal/specfile"
	"gopkg.in/yaml.v3"
)

const demoSpec = `
[app]
title = Video Date
version = 1.2.0

[app@demo]
title = Video Date (Demo)

[app:permissions]
INTERNET
CAMERA

[source]
dir = src
include_exts = py, png
exclude_dirs = build

[source:exclude_patterns]
**/*.pyc
`

// writeSpec writes spec text plus a small source tree and returns the spec path.
func writeSpec(t *testing.T, spec string, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	specPath := filepath.Join(dir, "packspec.spec")
	require.NoError(t, os.WriteFile(specPath, []byte(spec), 0o600))
	for _, f := range files {
		full := filepath.Join(dir, "src", filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o600))
	}
	return specPath
}

// runApp builds an App over the given config and runs it, capturing stdout.
func runApp(t *testing.T, cfg Config) (string, error) {
	t.Helper()
	full, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	a := New(out, logs, full, specfile.NewLoader())
	runErr := a.Run(context.Background())
	return out.String(), runErr
}

func TestRun_EmitSpecText(t *testing.T) {
	t.Parallel()

	specPath := writeSpec(t, demoSpec)
	out, err := runApp(t, Config{SpecPath: specPath, Profile: "demo"})
	require.NoError(t, err)

	assert.Contains(t, out, "title = Video Date (Demo)")
	assert.Contains(t, out, "[app:permissions]\nINTERNET\nCAMERA\n")

	// The emitted text is itself a valid spec.
	_, parseErr := specfile.Parse("emitted.spec", []byte(out))
	assert.NoError(t, parseErr)
}

func TestRun_EmitYAML(t *testing.T) {
	t.Parallel()

	specPath := writeSpec(t, demoSpec)
	out, err := runApp(t, Config{SpecPath: specPath, Output: OutputYAML})
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "Video Date", decoded["app"]["title"])
	assert.Equal(t, "1.2.0", decoded["app"]["version"])
	assert.Equal(t, []any{"INTERNET", "CAMERA"}, decoded["app"]["permissions"])
	// Scalars stay strings in yaml output; typing is the consumer's decision.
	assert.Equal(t, "py, png", decoded["source"]["include_exts"])
}

func TestRun_ListProfiles(t *testing.T) {
	t.Parallel()

	specPath := writeSpec(t, demoSpec)
	out, err := runApp(t, Config{SpecPath: specPath, ListProfiles: true})
	require.NoError(t, err)
	assert.Equal(t, "demo\n", out)
}

func TestRun_ListFiles(t *testing.T) {
	t.Parallel()

	specPath := writeSpec(t, demoSpec,
		"main.py",
		"icon.png",
		"notes.txt",
		"cache.pyc",
		"build/main.py",
	)
	out, err := runApp(t, Config{SpecPath: specPath, ListFiles: true})
	require.NoError(t, err)
	assert.Equal(t, "icon.png\nmain.py\n", out)
}

func TestRun_ListFilesWithRootOverride(t *testing.T) {
	t.Parallel()

	specPath := writeSpec(t, demoSpec, "main.py")
	other := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(other, "alt.py"), []byte("x"), 0o600))

	out, err := runApp(t, Config{SpecPath: specPath, ListFiles: true, Root: other})
	require.NoError(t, err)
	assert.Equal(t, "alt.py\n", out)
}

func TestRun_LoadErrorIsFatal(t *testing.T) {
	t.Parallel()

	specPath := writeSpec(t, "[app]\nbroken line\n")
	_, err := runApp(t, Config{SpecPath: specPath})
	require.Error(t, err)

	var synErr *specfile.SyntaxError
	assert.ErrorAs(t, err, &synErr)
}

func TestRun_MissingSpecFile(t *testing.T) {
	t.Parallel()

	_, err := runApp(t, Config{SpecPath: filepath.Join(t.TempDir(), "absent.spec")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewConfig_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.Error(t, err)

	_, err = NewConfig(Config{SpecPath: "a.spec", Output: "toml"})
	require.Error(t, err)

	cfg, err := NewConfig(Config{SpecPath: "a.spec"})
	require.NoError(t, err)
	assert.Equal(t, OutputSpec, cfg.Output)
}
