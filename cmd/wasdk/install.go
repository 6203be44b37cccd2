package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wasi-tools/wasdk/internal/gha"
	"github.com/wasi-tools/wasdk/internal/manifest"
	"github.com/wasi-tools/wasdk/internal/platform"
	"github.com/wasi-tools/wasdk/internal/release"
	"github.com/wasi-tools/wasdk/internal/sdk"
)

// installFlags holds the raw command line for the install subcommand.
// The *Set booleans distinguish "flag given" from a zero value so that
// flags can override manifest declarations.
type installFlags struct {
	version       string
	versionSet    bool
	installDir    string
	installDirSet bool
	addToPath     bool
	addToPathSet  bool
	mirror        string
	mirrorSet     bool
	manifestPath  string
	sha256        string
	signaturePath string
	keyringPath   string
	verbosity     int
	showHelp      bool
}

// installConfig is the effective configuration after merging defaults,
// manifest values, and flags.
type installConfig struct {
	version       string
	installDir    string
	addToPath     bool
	mirror        string
	sha256        string
	signaturePath string
	keyringPath   string
}

// runInstall handles the `wasdk install` subcommand
func runInstall(args []string) error {
	flags, err := parseInstallFlags(args)
	if err != nil {
		return err
	}

	if flags.showHelp {
		printInstallHelp()
		return nil
	}

	logger := newLogger(flags.verbosity)

	// Downloads of full SDK archives can be slow on CI runners
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	detector := platform.NewDetector()

	var m *manifest.Manifest
	if flags.manifestPath != "" {
		parser := manifest.NewParser(detector)
		m, err = parser.ParseFile(ctx, flags.manifestPath)
		if err != nil {
			return fmt.Errorf("load manifest: %w", err)
		}
		logger.Debug("loaded manifest", "path", flags.manifestPath)
	}

	cfg := mergeConfig(flags, m)

	installDir, err := filepath.Abs(cfg.installDir)
	if err != nil {
		return fmt.Errorf("resolve install directory: %w", err)
	}

	platformInfo, err := detector.Detect(ctx)
	if err != nil {
		return fmt.Errorf("detect platform: %w", err)
	}
	logger.Debug("detected platform",
		"os", platformInfo.OS,
		"arch", platformInfo.Arch,
		"distro", platformInfo.Platform,
		"family", platformInfo.Family)

	resolver := release.NewResolver()
	version, tag, err := resolver.Resolve(ctx, cfg.version)
	if err != nil {
		return err
	}
	logger.Info("resolved release", "version", version, "tag", tag)

	base := release.DefaultBaseURL
	if cfg.mirror != "" {
		base = cfg.mirror
	}
	url := release.ArtifactURLWithBase(base, version, tag, platformInfo.Arch, platformInfo.OS)

	installer := sdk.NewInstaller(&logAdapter{logger: logger})
	result, err := installer.Install(ctx, sdk.Options{
		URL:           url,
		InstallDir:    installDir,
		Version:       version,
		SHA256:        cfg.sha256,
		SignaturePath: cfg.signaturePath,
		KeyringPath:   cfg.keyringPath,
	})
	if err != nil {
		return err
	}

	if cfg.addToPath {
		if err := gha.ExportPath(result); err != nil {
			return err
		}
		logger.Info("exported path and environment")
	}

	// Step outputs are written whenever the runner provides the file,
	// independent of --add-to-path
	if _, ok := os.LookupEnv(gha.OutputFileEnv); ok {
		if err := gha.ExportOutput(result); err != nil {
			return err
		}
		logger.Info("exported step outputs")
	}

	fmt.Printf("Installed WASI SDK %s to %s\n", result.Version, result.InstallDir)
	return nil
}

// parseInstallFlags parses the install subcommand's arguments.
func parseInstallFlags(args []string) (installFlags, error) {
	flags := installFlags{}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--help", "-h":
			flags.showHelp = true
		case "--add-to-path":
			flags.addToPath = true
			flags.addToPathSet = true
		case "-v", "--verbose":
			flags.verbosity++
		case "-vv":
			flags.verbosity += 2
		case "--version", "--install-dir", "--mirror", "--manifest", "--sha256", "--signature", "--keyring":
			if i+1 >= len(args) {
				return flags, fmt.Errorf("%s requires a value\nRun 'wasdk install --help' for usage", arg)
			}
			i++
			value := args[i]
			switch arg {
			case "--version":
				flags.version = value
				flags.versionSet = true
			case "--install-dir":
				flags.installDir = value
				flags.installDirSet = true
			case "--mirror":
				flags.mirror = value
				flags.mirrorSet = true
			case "--manifest":
				flags.manifestPath = value
			case "--sha256":
				flags.sha256 = value
			case "--signature":
				flags.signaturePath = value
			case "--keyring":
				flags.keyringPath = value
			}
		default:
			return flags, fmt.Errorf("unknown option: %s\nRun 'wasdk install --help' for usage", arg)
		}
	}

	return flags, nil
}

// mergeConfig layers defaults, manifest values, and flags, with flags
// taking precedence over the manifest.
func mergeConfig(flags installFlags, m *manifest.Manifest) installConfig {
	cfg := installConfig{
		version:    "latest",
		installDir: ".",
	}

	if m != nil {
		if m.Version != "" {
			cfg.version = m.Version
		}
		if m.InstallDir != "" {
			cfg.installDir = m.InstallDir
		}
		if m.AddToPath {
			cfg.addToPath = true
		}
		if m.Mirror != "" {
			cfg.mirror = m.Mirror
		}
	}

	if flags.versionSet {
		cfg.version = flags.version
	}
	if flags.installDirSet {
		cfg.installDir = flags.installDir
	}
	if flags.addToPathSet {
		cfg.addToPath = flags.addToPath
	}
	if flags.mirrorSet {
		cfg.mirror = flags.mirror
	}

	cfg.sha256 = flags.sha256
	cfg.signaturePath = flags.signaturePath
	cfg.keyringPath = flags.keyringPath

	return cfg
}

// newLogger builds the CLI logger. Verbosity raises the level:
// warnings only by default, -v for info, -vv for debug.
func newLogger(verbosity int) *log.Logger {
	level := log.WarnLevel
	switch {
	case verbosity >= 2:
		level = log.DebugLevel
	case verbosity == 1:
		level = log.InfoLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "wasdk",
	})
}

// logAdapter bridges charmbracelet/log to the sdk.Logger interface.
type logAdapter struct {
	logger *log.Logger
}

func (a *logAdapter) Debug(msg string, keysAndValues ...interface{}) {
	a.logger.Debug(msg, keysAndValues...)
}

func (a *logAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Info(msg, keysAndValues...)
}

func (a *logAdapter) Warn(msg string, keysAndValues ...interface{}) {
	a.logger.Warn(msg, keysAndValues...)
}

func (a *logAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.logger.Error(msg, keysAndValues...)
}

func printInstallHelp() {
	fmt.Println("Usage: wasdk install [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version <v>        Version to install (e.g., 25.0); defaults to latest")
	fmt.Println("  --install-dir <dir>  Directory to install to; defaults to the current directory")
	fmt.Println("  --add-to-path        Export the SDK to GitHub's path and env files")
	fmt.Println("  --mirror <url>       Alternate base URL for release artifacts")
	fmt.Println("  --manifest <file>    Lua manifest declaring install parameters")
	fmt.Println("  --sha256 <sum>       Hex digest or checksum file to verify the download")
	fmt.Println("  --signature <file>   Detached PGP signature to verify the download")
	fmt.Println("  --keyring <file>     Keyring used with --signature")
	fmt.Println("  -v, -vv              Increase logging verbosity")
	fmt.Println("  -h, --help           Show this help")
}
