package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geometryCatalog = `
package: geometry
rep: float64
kinds:
  - name: length
    dimension: L
  - name: radius
    parent: length
    doc: Distance from a centre.
  - name: height
    parent: length
  - name: rate_of_climb
    parent: height
    dimension: L/T
  - name: wavenumber
    parent: length
    dimension: L^-1
  - name: one
    dimension: "1"
`

// testEnv is an isolated configuration and data directory pair.
type testEnv struct {
	t       *testing.T
	tempDir string
	config  string
	dataDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	tempDir := t.TempDir()
	e := &testEnv{
		t:       t,
		tempDir: tempDir,
		config:  filepath.Join(tempDir, "config"),
		dataDir: filepath.Join(tempDir, "data"),
	}
	e.writeConfig("backend: sqlite\ndata_dir: " + e.dataDir + "\n")
	return e
}

func (e *testEnv) writeConfig(content string) {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(e.config, 0o755))
	require.NoError(e.t, os.WriteFile(filepath.Join(e.config, configFileExt), []byte(content), 0o644))
}

// writeFile writes content under the environment's temp dir and returns
// the path.
func (e *testEnv) writeFile(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.tempDir, name)
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

type cmdResult struct {
	stdout   string
	stderr   string
	exitCode int
}

func (e *testEnv) run(args ...string) cmdResult {
	e.t.Helper()
	all := append([]string{"--config-dir", e.config, "--data-dir", e.dataDir}, args...)

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	code := run(root, all, &stderr)
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), exitCode: code}
}

func (e *testEnv) mustRun(args ...string) cmdResult {
	e.t.Helper()
	r := e.run(args...)
	require.Equal(e.t, exitSuccess, r.exitCode, "quantikind %v\nstdout: %s\nstderr: %s", args, r.stdout, r.stderr)
	return r
}

func parseJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(s), &v), s)
	return v
}

func TestVersion(t *testing.T) {
	r := newTestEnv(t).mustRun("version")
	assert.Contains(t, r.stdout, "quantikind v"+Version)
	assert.Contains(t, r.stdout, modulePath)
}

func TestInit(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, os.Remove(filepath.Join(e.config, configFileExt)))

	r := e.mustRun("init")
	assert.Contains(t, r.stdout, "quantikind initialized")
	assert.FileExists(t, filepath.Join(e.config, configFileExt))
	assert.FileExists(t, filepath.Join(e.dataDir, "kinds.jsonl"))
	assert.FileExists(t, filepath.Join(e.dataDir, "resolutions.jsonl"))

	out := parseJSON[map[string]any](t, e.mustRun("--json", "init").stdout)
	assert.EqualValues(t, 8, out["kinds"], "ISQ base kinds plus one")
}

func TestKindCommands(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("init")

	r := e.mustRun("kind", "add", "radius", "--parent", "length", "--doc", "Distance from a centre.")
	assert.Equal(t, "added radius (L) under length\n", r.stdout)
	e.mustRun("kind", "add", "wavenumber", "--parent", "length", "--dim", "L^-1")
	e.mustRun("kind", "add", "height", "--parent", "length")
	e.mustRun("kind", "add", "rate_of_climb", "--parent", "height", "--dim", "L/T")

	r = e.mustRun("kind", "tree", "length")
	assert.Equal(t, "length [L]\n  radius\n  wavenumber [L^-1]\n  height\n    rate_of_climb [L·T^-1]\n", r.stdout)

	show := parseJSON[map[string]any](t, e.mustRun("--json", "kind", "show", "rate_of_climb").stdout)
	assert.Equal(t, "rate_of_climb", show["name"])
	assert.Equal(t, "L·T^-1", show["dimension"])
	assert.Equal(t, "height", show["parent"])
	assert.Equal(t, "length", show["base"])
	assert.Equal(t, []any{"height", "length"}, show["ancestors"])

	r = e.mustRun("kind", "show", "radius")
	assert.Contains(t, r.stdout, "Parent:     length")
	assert.Contains(t, r.stdout, "Distance from a centre.")

	children := parseJSON[[]map[string]any](t, e.mustRun("--json", "kind", "list", "--parent", "length").stdout)
	require.Len(t, children, 3)
	assert.Equal(t, "radius", children[0]["name"])

	r = e.mustRun("kind", "list", "--limit", "2")
	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	assert.Len(t, lines, 3, "header and two kinds")
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))

	e.mustRun("kind", "delete", "rate_of_climb")
	assert.Equal(t, exitUserError, e.run("kind", "show", "rate_of_climb").exitCode)
}

func TestKindErrors(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("init")
	e.mustRun("kind", "add", "radius", "--parent", "length")

	tests := []struct {
		name string
		args []string
	}{
		{"duplicate", []string{"kind", "add", "radius", "--parent", "length"}},
		{"base without dimension", []string{"kind", "add", "angle"}},
		{"unknown parent", []string{"kind", "add", "depth", "--parent", "nope"}},
		{"bad dimension", []string{"kind", "add", "area", "--dim", "Q^2"}},
		{"name with space", []string{"kind", "add", "rate of climb", "--parent", "length"}},
		{"show unknown", []string{"kind", "show", "nope"}},
		{"delete with children", []string{"kind", "delete", "length"}},
		{"missing argument", []string{"kind", "add"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := e.run(tt.args...)
			assert.Equal(t, exitUserError, r.exitCode, r.stderr)
			assert.Contains(t, r.stderr, "quantikind:")
		})
	}
}

func TestResolveAndHistory(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("init")
	e.mustRun("import", e.writeFile("geometry.yaml", geometryCatalog))

	assert.Equal(t, "wavenumber\n", e.mustRun("resolve", "radius", "L^-1").stdout)
	assert.Equal(t, "rate_of_climb\n", e.mustRun("resolve", "radius", "L/T").stdout)
	assert.Equal(t, "length[T]\n", e.mustRun("resolve", "radius", "T").stdout)

	e.mustRun("kind", "add", "altitude", "--parent", "length")
	e.mustRun("kind", "add", "ascent_rate", "--parent", "altitude", "--dim", "L/T")
	r := e.run("resolve", "height", "L/T")
	assert.Equal(t, exitUserError, r.exitCode)
	assert.Contains(t, r.stderr, "ambiguous")

	history := parseJSON[[]map[string]any](t, e.mustRun("--json", "history").stdout)
	require.Len(t, history, 4)
	assert.Equal(t, "ambiguous", history[0]["outcome"])
	assert.Equal(t, "rate_of_climb, ascent_rate", history[0]["result"])
	assert.Equal(t, "bound", history[1]["outcome"])
	assert.Equal(t, "declared", history[3]["outcome"])

	bound := parseJSON[[]map[string]any](t, e.mustRun("--json", "history", "--outcome", "bound").stdout)
	require.Len(t, bound, 1)
	assert.Equal(t, "length[T]", bound[0]["result"])

	r = e.mustRun("history", "--seed", "radius")
	assert.Len(t, strings.Split(strings.TrimSpace(r.stdout), "\n"), 4, "header and three entries")

	assert.Equal(t, exitUserError, e.run("history", "--outcome", "maybe").exitCode)
	assert.Equal(t, exitUserError, e.run("resolve", "radius", "Q").exitCode)
}

func TestImportExport(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("init")
	path := e.writeFile("geometry.yaml", geometryCatalog)

	r := e.mustRun("import", path)
	assert.Equal(t, "imported 4 kinds from "+path+"\n", r.stdout)

	again := parseJSON[map[string]any](t, e.mustRun("--json", "import", path).stdout)
	assert.Empty(t, again["added"], "a second import adds nothing")

	out := filepath.Join(e.tempDir, "export.yaml")
	e.mustRun("export", "-o", out, "--package", "geo")
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package: geo")
	assert.Contains(t, string(data), "name: rate_of_climb")
	assert.Contains(t, string(data), "doc: Distance from a centre.")

	conflict := e.writeFile("conflict.yaml", "kinds:\n  - name: length\n    dimension: M\n")
	r = e.run("import", conflict)
	assert.Equal(t, exitUserError, r.exitCode)
	assert.Contains(t, r.stderr, "conflicts")

	assert.Equal(t, exitUserError, e.run("import").exitCode, "no catalog configured")
}

func TestCalc(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("init")
	path := e.writeFile("geometry.yaml", geometryCatalog)
	e.mustRun("import", path)

	assert.Equal(t, "radius(10 m)\n", e.mustRun("calc", "radius(5 m) * one(2)").stdout)
	assert.Equal(t, "wavenumber(0.2 1/m)\n", e.mustRun("calc", "1", "/", "radius(5 m)").stdout)
	assert.Equal(t, "5 m\n", e.mustRun("calc", "5 m").stdout)

	out := parseJSON[calcResult](t, e.mustRun("--json", "calc", "height(120 m) / 60 s").stdout)
	assert.Equal(t, "rate_of_climb", out.Kind)
	assert.Equal(t, 2.0, out.Value)
	assert.Equal(t, "m/s", out.Unit)
	assert.Equal(t, "L·T^-1", out.Dimension)

	r := e.run("calc", "radius(5)")
	assert.Equal(t, exitUserError, r.exitCode)
	assert.Contains(t, r.stderr, "not dimensionless")

	other := newTestEnv(t)
	assert.Equal(t, "radius(2 m)\n", other.mustRun("calc", "--catalog", path, "radius(200 cm) in m").stdout)
}

func TestGenerate(t *testing.T) {
	e := newTestEnv(t)
	path := e.writeFile("geometry.yaml", geometryCatalog)
	out := filepath.Join(e.tempDir, "geometry.go")

	r := e.mustRun("generate", path, "-o", out)
	assert.Contains(t, r.stdout, "generated 6 kinds")
	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package geometry")
	assert.Contains(t, string(src), "type Radius struct")

	assert.Equal(t, exitUserError, e.run("generate").exitCode)

	e.writeConfig("backend: sqlite\ncatalog: " + path + "\n")
	r = e.mustRun("generate")
	assert.Contains(t, r.stdout, "type RateOfClimb struct")
}

func TestBadConfig(t *testing.T) {
	e := newTestEnv(t)
	e.writeConfig("backend: postgres\n")
	r := e.run("kind", "list")
	assert.Equal(t, exitSysError, r.exitCode)
	assert.Contains(t, r.stderr, "config.yaml")

	e.writeConfig("backend: [unclosed\n")
	assert.Equal(t, exitSysError, e.run("kind", "list").exitCode)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitUserError, exitCode(errors.New("bad input")))
	assert.Equal(t, exitSysError, exitCode(sysErr(errors.New("disk full"))))
	assert.Nil(t, sysErr(nil))
}
