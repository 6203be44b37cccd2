package gha

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wasi-tools/wasdk/internal/sdk"
	"github.com/wasi-tools/wasdk/internal/testutil"
)

func testResult() *sdk.Result {
	return &sdk.Result{
		InstallDir:  "/opt/wasi-sdk",
		Version:     "25.0",
		ClangPath:   "/opt/wasi-sdk/bin/clang",
		SysrootPath: "/opt/wasi-sdk/share/wasi-sysroot",
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestExportPath(t *testing.T) {
	files := testutil.SetupGitHubEnv(t)

	if err := ExportPath(testResult()); err != nil {
		t.Fatalf("ExportPath() error: %v", err)
	}

	pathLines := readLines(t, files.PathFile)
	if len(pathLines) != 1 || pathLines[0] != filepath.FromSlash("/opt/wasi-sdk/bin") {
		t.Errorf("path file = %v, want [/opt/wasi-sdk/bin]", pathLines)
	}

	envLines := readLines(t, files.EnvFile)
	want := []string{
		"WASI_SDK_PATH=/opt/wasi-sdk",
		"WASI_SDK_VERSION=25.0",
		"CC=/opt/wasi-sdk/bin/clang --sysroot=/opt/wasi-sdk/share/wasi-sysroot",
		"CXX=/opt/wasi-sdk/bin/clang++ --sysroot=/opt/wasi-sdk/share/wasi-sysroot",
	}
	if len(envLines) != len(want) {
		t.Fatalf("env file has %d lines, want %d: %v", len(envLines), len(want), envLines)
	}
	for i, line := range want {
		if envLines[i] != line {
			t.Errorf("env line %d = %q, want %q", i, envLines[i], line)
		}
	}
}

func TestExportPathAppends(t *testing.T) {
	files := testutil.SetupGitHubEnv(t)

	if err := os.WriteFile(files.PathFile, []byte("/existing/entry\n"), 0644); err != nil {
		t.Fatalf("failed to seed path file: %v", err)
	}

	if err := ExportPath(testResult()); err != nil {
		t.Fatalf("ExportPath() error: %v", err)
	}

	lines := readLines(t, files.PathFile)
	if len(lines) != 2 || lines[0] != "/existing/entry" {
		t.Errorf("existing content was not preserved: %v", lines)
	}
}

func TestExportPathMissingPathVar(t *testing.T) {
	files := testutil.SetupGitHubEnv(t)
	os.Unsetenv(PathFileEnv)

	err := ExportPath(testResult())
	if err == nil {
		t.Fatal("expected error for missing GITHUB_PATH, got none")
	}

	var exportErr *ExportError
	if !errors.As(err, &exportErr) || exportErr.Var != PathFileEnv {
		t.Errorf("error = %v, want ExportError for %s", err, PathFileEnv)
	}

	// Nothing may be written when a required variable is missing
	for _, path := range []string{files.PathFile, files.EnvFile} {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			t.Fatalf("failed to read %s: %v", path, readErr)
		}
		if len(data) != 0 {
			t.Errorf("%s was written despite missing variable", path)
		}
	}
}

func TestExportPathMissingEnvVar(t *testing.T) {
	files := testutil.SetupGitHubEnv(t)
	os.Unsetenv(EnvFileEnv)

	if err := ExportPath(testResult()); err == nil {
		t.Fatal("expected error for missing GITHUB_ENV, got none")
	}

	// The check precedes the path-file write as well
	data, err := os.ReadFile(files.PathFile)
	if err != nil {
		t.Fatalf("failed to read path file: %v", err)
	}
	if len(data) != 0 {
		t.Error("path file was written despite missing GITHUB_ENV")
	}
}

func TestExportOutput(t *testing.T) {
	files := testutil.SetupGitHubEnv(t)

	if err := ExportOutput(testResult()); err != nil {
		t.Fatalf("ExportOutput() error: %v", err)
	}

	lines := readLines(t, files.OutputFile)
	want := []string{
		"wasi-sdk-path=/opt/wasi-sdk",
		"wasi-sdk-version=25.0",
		"clang-path=/opt/wasi-sdk/bin/clang",
		"sysroot-path=/opt/wasi-sdk/share/wasi-sysroot",
	}
	if len(lines) != len(want) {
		t.Fatalf("output file has %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("output line %d = %q, want %q", i, lines[i], line)
		}
	}
}

func TestExportOutputMissingVar(t *testing.T) {
	testutil.ClearGitHubEnv(t)

	if err := ExportOutput(testResult()); err == nil {
		t.Error("expected error for missing GITHUB_OUTPUT, got none")
	}
}
