// Package manifest parses optional Lua install manifests.
//
// A manifest declares install parameters declaratively and may branch
// on the injected read-only platform table:
//
//	wasdk = {
//	  version = "25.0",
//	  install_dir = platform.when(platform.is_macos, "/opt/wasi-sdk") or ".wasi-sdk",
//	  add_to_path = true,
//	  mirror = "https://mirror.example.com/wasi-sdk",
//	}
//
// Manifests run in a sandboxed Lua VM with no access to the OS,
// filesystem, or module loading, so they stay declarative.
// Command-line flags take precedence over manifest values.
package manifest

import (
	"fmt"
	"net/url"
	"regexp"
)

// versionPattern matches "latest" or a dotted numeric version.
var versionPattern = regexp.MustCompile(`^(latest|\d+(\.\d+)?)$`)

// Manifest holds the install parameters a manifest file may declare.
// Zero values mean "not declared" and defer to flags or defaults.
type Manifest struct {
	Version    string
	InstallDir string
	AddToPath  bool
	Mirror     string
}

// Validate checks the declared values for well-formedness.
func (m *Manifest) Validate() error {
	if m.Version != "" && !versionPattern.MatchString(m.Version) {
		return fmt.Errorf("invalid version %q: must be \"latest\" or a dotted number", m.Version)
	}

	if m.Mirror != "" {
		u, err := url.Parse(m.Mirror)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid mirror %q: must be an http(s) URL", m.Mirror)
		}
	}

	return nil
}

// ParseError represents a manifest parsing error with friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}
