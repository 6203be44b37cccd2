// Package testutil provides utilities for testing wasdk in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// GitHubFiles holds the per-test GitHub Actions command files created
// by SetupGitHubEnv.
type GitHubFiles struct {
	PathFile   string
	EnvFile    string
	OutputFile string
}

// SetupGitHubEnv points the GitHub Actions file variables at empty
// files inside a per-test temporary directory, so exports never touch a
// real runner environment. Cleanup is handled by t.TempDir and
// t.Setenv.
func SetupGitHubEnv(t *testing.T) GitHubFiles {
	t.Helper()

	tmpDir := t.TempDir()

	files := GitHubFiles{
		PathFile:   filepath.Join(tmpDir, "github_path"),
		EnvFile:    filepath.Join(tmpDir, "github_env"),
		OutputFile: filepath.Join(tmpDir, "github_output"),
	}

	for _, path := range []string{files.PathFile, files.EnvFile, files.OutputFile} {
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatalf("failed to create test file %s: %v", path, err)
		}
	}

	t.Setenv("GITHUB_PATH", files.PathFile)
	t.Setenv("GITHUB_ENV", files.EnvFile)
	t.Setenv("GITHUB_OUTPUT", files.OutputFile)

	return files
}

// ClearGitHubEnv unsets the GitHub Actions file variables for tests
// that exercise the missing-variable failure paths. t.Setenv registers
// restoration, so the original environment comes back after the test.
func ClearGitHubEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{"GITHUB_PATH", "GITHUB_ENV", "GITHUB_OUTPUT"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}
