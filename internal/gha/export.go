// Package gha exports install results to the files GitHub Actions
// provides through its runner environment.
//
// GitHub Actions communicates paths, environment variables, and step
// outputs through append-only files whose locations arrive in the
// GITHUB_PATH, GITHUB_ENV, and GITHUB_OUTPUT environment variables.
// Each export checks its required variables before writing anything, so
// a missing variable never leaves a partial write behind.
package gha

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wasi-tools/wasdk/internal/sdk"
)

// Environment variables supplied by the GitHub Actions runner.
const (
	PathFileEnv   = "GITHUB_PATH"
	EnvFileEnv    = "GITHUB_ENV"
	OutputFileEnv = "GITHUB_OUTPUT"
)

// ExportError describes a failed export operation.
type ExportError struct {
	Var     string // environment variable involved
	Path    string // file being written, if known
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Var, e.Message)
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// ExportPath appends the SDK's binary directory to the runner's path
// file and the SDK environment declarations to the runner's env file.
// Both GITHUB_PATH and GITHUB_ENV must be set; the check happens before
// either file is touched.
func ExportPath(result *sdk.Result) error {
	pathFile, ok := os.LookupEnv(PathFileEnv)
	if !ok || pathFile == "" {
		return &ExportError{Var: PathFileEnv, Message: "environment variable must be set"}
	}

	envFile, ok := os.LookupEnv(EnvFileEnv)
	if !ok || envFile == "" {
		return &ExportError{Var: EnvFileEnv, Message: "environment variable must be set"}
	}

	binDir := filepath.Dir(result.ClangPath)
	if err := appendLines(pathFile, []string{binDir}); err != nil {
		return &ExportError{Var: PathFileEnv, Path: pathFile, Message: "failed to append", Cause: err}
	}

	envLines := []string{
		fmt.Sprintf("WASI_SDK_PATH=%s", result.InstallDir),
		fmt.Sprintf("WASI_SDK_VERSION=%s", result.Version),
		fmt.Sprintf("CC=%s --sysroot=%s", result.ClangPath, result.SysrootPath),
		fmt.Sprintf("CXX=%s++ --sysroot=%s", result.ClangPath, result.SysrootPath),
	}
	if err := appendLines(envFile, envLines); err != nil {
		return &ExportError{Var: EnvFileEnv, Path: envFile, Message: "failed to append", Cause: err}
	}

	return nil
}

// ExportOutput appends the install locations as step outputs to the
// runner's output file. GITHUB_OUTPUT must be set.
func ExportOutput(result *sdk.Result) error {
	outputFile, ok := os.LookupEnv(OutputFileEnv)
	if !ok || outputFile == "" {
		return &ExportError{Var: OutputFileEnv, Message: "environment variable must be set"}
	}

	lines := []string{
		fmt.Sprintf("wasi-sdk-path=%s", result.InstallDir),
		fmt.Sprintf("wasi-sdk-version=%s", result.Version),
		fmt.Sprintf("clang-path=%s", result.ClangPath),
		fmt.Sprintf("sysroot-path=%s", result.SysrootPath),
	}
	if err := appendLines(outputFile, lines); err != nil {
		return &ExportError{Var: OutputFileEnv, Path: outputFile, Message: "failed to append", Cause: err}
	}

	return nil
}

// appendLines appends lines to a file, creating it if absent.
func appendLines(path string, lines []string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}

	return nil
}
