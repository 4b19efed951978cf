// Package integration provides CLI integration tests for perkg.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// perkgBin is the path to the built perkg binary.
	perkgBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetPerkgBin sets the path to the perkg binary (called from TestMain).
func SetPerkgBin(path string) {
	perkgBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and data
// directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates an isolated environment using the file backend.
func NewTestEnv(t *testing.T) *TestEnv {
	return newTestEnv(t, "file")
}

// NewTestEnvSQLite creates an isolated environment using the sqlite backend.
func NewTestEnvSQLite(t *testing.T) *TestEnv {
	return newTestEnv(t, "sqlite")
}

func newTestEnv(t *testing.T, backend string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build perkg: %v", buildErr)
	}
	if perkgBin == "" {
		t.Fatal("perkg binary not built (perkgBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: " + backend + "\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a perkg command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunPerkg executes the perkg CLI with the given arguments.
func (e *TestEnv) RunPerkg(args ...string) CmdResult {
	return e.RunPerkgInput("", args...)
}

// RunPerkgInput executes the perkg CLI with the given stdin content.
func (e *TestEnv) RunPerkgInput(stdin string, args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(perkgBin, allArgs...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run perkg: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunPerkg executes the perkg CLI and fails the test on a non-zero exit.
func (e *TestEnv) MustRunPerkg(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunPerkg(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("perkg %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Item mirrors the persisted item shape for JSON parsing.
type Item struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PricePerKg string  `json:"pricePerKg"`
	IsFavorite bool    `json:"isFavorite"`
	Category   string  `json:"category"`
	LastUsed   *string `json:"lastUsed"`
}

// Calculation mirrors the persisted calculation shape for JSON parsing.
type Calculation struct {
	ID         string `json:"id"`
	ItemID     string `json:"itemId"`
	ItemName   string `json:"itemName"`
	Mode       string `json:"mode"`
	Input      string `json:"input"`
	Result     string `json:"result"`
	PerKgPrice string `json:"perKgPrice"`
	Timestamp  string `json:"timestamp"`
}

// ReadJSONFile reads and parses a JSON document from the data directory.
func ReadJSONFile[T any](t *testing.T, path string) T {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return ParseJSON[T](t, string(data))
}

// FindItem returns the first item with the given name, or fails the test.
func FindItem(t *testing.T, items []Item, name string) Item {
	t.Helper()
	for _, item := range items {
		if item.Name == name {
			return item
		}
	}
	t.Fatalf("item %q not found in %d items", name, len(items))
	return Item{}
}
