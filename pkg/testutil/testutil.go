package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// ReadFile returns the content of path, failing the test on error
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// IsolateEnv points the XDG config and state directories at a fresh temporary
// tree and unsets every STREAMPRINTER_* variable for the duration of the test.
// It returns the root of the tree.
func IsolateEnv(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	// Registered first so it runs after the environment is restored
	t.Cleanup(xdg.Reload)

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "config-dirs"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "STREAMPRINTER_") {
			t.Setenv(name, "")
			if err := os.Unsetenv(name); err != nil {
				t.Fatalf("Failed to unset %s: %v", name, err)
			}
		}
	}

	xdg.Reload()
	return root
}

// NewRenderer returns a renderer writing to out with a fixed color profile.
// A nil out discards.
func NewRenderer(out io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	if out == nil {
		out = io.Discard
	}
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(profile)
	return r
}
