// Package testutil provides a temp-workspace harness for running the
// generator end to end in tests.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/iomapper/internal/app"
	"github.com/vk/iomapper/internal/hcl"
)

// Workspace file names used by the harness.
const (
	CatalogFile   = "IOModuleTypes.yml"
	HardwareFile  = "Hardware.hw"
	TypesFile     = "Global.typ"
	VariablesFile = "Global.var"
	IOMapFile     = "IoMap.iom"
	SettingsFile  = "iomapper.hcl"
)

// settingsHCL points every path at the settings file's own directory.
const settingsHCL = `
paths {
  catalog   = "${config_dir}/IOModuleTypes.yml"
  hardware  = "${config_dir}/Hardware.hw"
  types     = "${config_dir}/Global.typ"
  variables = "${config_dir}/Global.var"
  iomap     = "${config_dir}/IoMap.iom"
}
`

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a harness run.
type HarnessResult struct {
	Dir       string
	LogOutput string
	Err       error
	Report    *app.Report
}

// File returns the content of a workspace file, or "" when it does not exist.
func (r *HarnessResult) File(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Dir, name))
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(data)
}

// Exists reports whether a workspace file was created.
func (r *HarnessResult) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(r.Dir, name))
	return err == nil
}

// WriteWorkspace creates a temp directory holding files plus a settings file
// that points the generator at that directory.
func WriteWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	all := map[string]string{SettingsFile: settingsHCL}
	for name, content := range files {
		all[name] = content
	}
	for name, content := range all {
		WriteFile(t, dir, name, content)
	}
	return dir
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

// Run writes a workspace and runs the generator once against it.
func Run(t *testing.T, files map[string]string, strict bool) *HarnessResult {
	t.Helper()
	return RunIn(t, WriteWorkspace(t, files), strict)
}

// RunIn runs the generator against an existing workspace.
func RunIn(t *testing.T, dir string, strict bool) *HarnessResult {
	t.Helper()

	logBuffer := &SafeBuffer{}
	appConfig := &app.Config{
		SettingsPath: filepath.Join(dir, SettingsFile),
		LogLevel:     "debug",
		LogFormat:    "text",
		Strict:       strict,
	}

	result := &HarnessResult{Dir: dir}
	a, err := app.NewApp(logBuffer, appConfig, hcl.NewLoader())
	if err != nil {
		result.Err = err
		result.LogOutput = logBuffer.String()
		return result
	}

	result.Report, result.Err = a.Run(context.Background())
	result.LogOutput = logBuffer.String()

	if os.Getenv("IOMAPPER_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}
	return result
}
