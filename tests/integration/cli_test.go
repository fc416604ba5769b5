package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meninoebom/breadcrumbs/pkg/types"
)

var (
	// breadcrumbsBin is the path to the built breadcrumbs binary.
	breadcrumbsBin string
	// buildErr captures any build error from TestMain.
	buildErr error
)

// TestMain builds the CLI binary once for all CLI tests.
func TestMain(m *testing.M) {
	root, err := findProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(m.Run())
	}

	binDir, err := os.MkdirTemp("", "breadcrumbs-bin-")
	if err != nil {
		buildErr = err
		os.Exit(m.Run())
	}
	defer os.RemoveAll(binDir)

	bin := filepath.Join(binDir, "breadcrumbs")
	cmd := exec.Command("go", "build", "-o", bin, "./cmd/breadcrumbs")
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		buildErr = fmt.Errorf("%w: %s", err, out)
		os.Exit(m.Run())
	}

	breadcrumbsBin = bin
	os.Exit(m.Run())
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

func TestCLIVersion(t *testing.T) {
	env := newTestEnv(t)
	result := env.mustRun("version")
	assert.Contains(t, result.stdout, "breadcrumbs")
}

func TestCLIInit(t *testing.T) {
	env := newTestEnv(t)
	result := env.mustRun("init")
	assert.Contains(t, result.stdout, "initialized successfully")
	assert.FileExists(t, filepath.Join(env.dataDir, "breadcrumbs.db"))
}

func TestCLIUnitCommands(t *testing.T) {
	env := newTestEnv(t)

	result := env.mustRun("unit", "add", "--name", "morning-thoughts", "--json")
	unit := parseJSON[types.UnitPublic](t, result.stdout)
	assert.Positive(t, unit.ID)
	assert.Equal(t, "morning-thoughts", unit.Name)

	result = env.mustRun("unit", "list")
	assert.Contains(t, result.stdout, "morning-thoughts")
	assert.Contains(t, result.stdout, "Total: 1 unit(s)")

	env.mustRun("unit", "rename", "1", "evening-thoughts")
	result = env.mustRun("unit", "show", "1")
	assert.Contains(t, result.stdout, "evening-thoughts")
}

func TestCLICrumbCommands(t *testing.T) {
	env := newTestEnv(t)

	result := env.mustRun("crumb", "add",
		"--body", "# First idea",
		"--unit", "journal",
		"--tag", "Machine Learning",
		"--json")
	crumb := parseJSON[types.CrumbPublic](t, result.stdout)
	assert.Equal(t, types.VisibilityDraft, crumb.Visibility)
	require.NotNil(t, crumb.Unit)
	assert.Equal(t, "journal", crumb.Unit.Name)
	require.Len(t, crumb.Tags, 1)
	assert.Equal(t, "machine-learning", crumb.Tags[0].Name)

	result = env.mustRun("crumb", "list", "--visibility", "draft")
	assert.Contains(t, result.stdout, "# First idea")

	env.mustRun("crumb", "update", "1", "--visibility", "published")
	result = env.mustRun("crumb", "get", "1")
	assert.Contains(t, result.stdout, "published")

	env.mustRun("crumb", "tag", "1", "extra tag")
	env.mustRun("crumb", "untag", "1", "2")

	env.mustRun("crumb", "delete", "1")
	result = env.run("crumb", "get", "1")
	assert.NotEqual(t, 0, result.exitCode)
	assert.Contains(t, result.stderr, "not found")
}

func TestCLITagCommands(t *testing.T) {
	env := newTestEnv(t)

	result := env.mustRun("tag", "add", "--name", "Deep Work", "--json")
	tag := parseJSON[types.TagPublic](t, result.stdout)
	assert.Equal(t, "deep-work", tag.Name)
	assert.Equal(t, "Deep Work", tag.DisplayName)

	// Duplicate normalized name fails with a user error.
	result = env.run("tag", "add", "--name", "deep   work")
	assert.NotEqual(t, 0, result.exitCode)

	result = env.mustRun("tag", "list")
	assert.Contains(t, result.stdout, "deep-work")

	env.mustRun("tag", "delete", "1")
	result = env.mustRun("tag", "list")
	assert.Contains(t, result.stdout, "No tags found.")
}

func TestCLIExport(t *testing.T) {
	env := newTestEnv(t)

	env.mustRun("crumb", "add", "--body", "note", "--unit", "session", "--tag", "go")
	exportDir := filepath.Join(env.dataDir, "export")
	result := env.mustRun("export", "--dir", exportDir)
	assert.Contains(t, result.stdout, "Exported to")

	for _, name := range []string{"units.jsonl", "crumbs.jsonl", "tags.jsonl"} {
		assert.FileExists(t, filepath.Join(exportDir, name))
	}

	crumbs := readJSONLFile[types.CrumbPublic](t, filepath.Join(exportDir, "crumbs.jsonl"))
	require.Len(t, crumbs, 1)
	assert.Equal(t, "note", strings.TrimSpace(crumbs[0].Body))
}
