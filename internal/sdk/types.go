// Package sdk downloads, verifies, and installs WASI SDK release
// archives.
//
// An install is a single linear pipeline: download the release tarball
// to a temporary file, optionally verify its integrity, extract it into
// the install directory with the top-level path component stripped, and
// check that the expected compiler and sysroot exist afterwards.
package sdk

// Logger provides structured logging for install operations.
// This interface allows users to plug in their own logging implementation.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs warning-level messages with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})
}

// noopLogger is a Logger implementation that does nothing.
// This is the default logger used when none is provided.
type noopLogger struct{}

func (n *noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *noopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (n *noopLogger) Error(msg string, keysAndValues ...interface{}) {}

// Options configures an install run.
type Options struct {
	// URL is the release artifact download URL.
	URL string
	// InstallDir is the absolute directory to extract into.
	InstallDir string
	// Version is the resolved version, recorded in the result.
	Version string

	// SHA256 is an optional hex digest or checksum file path to verify
	// the downloaded archive against. Empty disables checksum checking.
	SHA256 string
	// SignaturePath is an optional detached PGP signature file.
	SignaturePath string
	// KeyringPath is the keyring used to check SignaturePath.
	KeyringPath string
}

// Result contains the locations resolved by a completed install.
type Result struct {
	InstallDir  string
	Version     string
	ClangPath   string
	SysrootPath string
	// ArchivePath is the temporary download file, left on disk.
	ArchivePath string
}
