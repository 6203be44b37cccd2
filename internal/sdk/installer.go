package sdk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Installer orchestrates download, verification, extraction, and layout
// checks for a WASI SDK release.
type Installer struct {
	downloader *Downloader
	extractor  *Extractor
	verifier   *Verifier
	logger     Logger
}

// NewInstaller creates a new installer. A nil logger keeps the
// installer silent.
func NewInstaller(logger Logger) *Installer {
	if logger == nil {
		logger = &noopLogger{}
	}
	return &Installer{
		downloader: NewDownloader(),
		extractor:  NewExtractor(),
		verifier:   NewVerifier(),
		logger:     logger,
	}
}

// Install runs the full pipeline for one release. There is no rollback:
// a failed run may leave a partially extracted directory and the
// downloaded temporary file behind.
func (i *Installer) Install(ctx context.Context, opts Options) (*Result, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("download URL is required")
	}
	if opts.InstallDir == "" {
		return nil, fmt.Errorf("install directory is required")
	}

	i.logger.Info("downloading", "url", opts.URL)
	archivePath, err := i.downloader.DownloadArchive(ctx, opts.URL)
	if err != nil {
		return nil, err
	}
	i.logger.Info("downloaded", "path", archivePath)

	if opts.SHA256 != "" {
		if err := i.verifier.VerifySHA256(archivePath, opts.SHA256); err != nil {
			return nil, fmt.Errorf("verify checksum: %w", err)
		}
		i.logger.Debug("checksum verified")
	}

	if opts.SignaturePath != "" {
		if opts.KeyringPath == "" {
			return nil, fmt.Errorf("signature verification requires a keyring")
		}
		if err := i.verifier.VerifySignature(archivePath, opts.SignaturePath, opts.KeyringPath); err != nil {
			return nil, fmt.Errorf("verify signature: %w", err)
		}
		i.logger.Debug("signature verified")
	}

	if err := os.MkdirAll(opts.InstallDir, 0755); err != nil {
		return nil, fmt.Errorf("create install dir: %w", err)
	}

	if err := i.extractor.ExtractTarGz(archivePath, opts.InstallDir); err != nil {
		return nil, fmt.Errorf("extract archive: %w", err)
	}
	i.logger.Info("extracted", "dir", opts.InstallDir)

	clangPath, sysrootPath, err := VerifyLayout(opts.InstallDir)
	if err != nil {
		return nil, err
	}
	i.logger.Info("found clang", "path", clangPath)
	i.logger.Info("found sysroot", "path", sysrootPath)

	return &Result{
		InstallDir:  opts.InstallDir,
		Version:     opts.Version,
		ClangPath:   clangPath,
		SysrootPath: sysrootPath,
		ArchivePath: archivePath,
	}, nil
}

// VerifyLayout checks that an install directory contains the expected
// compiler executable and sysroot, and returns their paths. Either
// missing is a fatal, descriptive error.
func VerifyLayout(installDir string) (clangPath, sysrootPath string, err error) {
	clangPath = filepath.Join(installDir, "bin", "clang"+executableSuffix())

	info, err := os.Stat(clangPath)
	if err != nil || !info.Mode().IsRegular() {
		return "", "", fmt.Errorf("clang not found at %s", clangPath)
	}

	sysrootPath = filepath.Join(installDir, "share", "wasi-sysroot")

	info, err = os.Stat(sysrootPath)
	if err != nil || !info.IsDir() {
		return "", "", fmt.Errorf("sysroot not found at %s", sysrootPath)
	}

	return clangPath, sysrootPath, nil
}

// executableSuffix returns the platform executable suffix.
func executableSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
