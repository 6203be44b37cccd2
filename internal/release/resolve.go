package release

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the HTTP timeout for metadata requests
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is the User-Agent header sent with requests
	DefaultUserAgent = "wasdk/1.0"
)

// Resolver resolves version strings to (version, tag) pairs.
type Resolver struct {
	client    *http.Client
	apiURL    string
	userAgent string
	lister    TagLister
}

// NewResolver creates a resolver backed by the GitHub releases API with
// a go-git remote tag listing as rate-limit fallback.
func NewResolver() *Resolver {
	return &Resolver{
		client:    &http.Client{Timeout: DefaultTimeout},
		apiURL:    latestAPIURL,
		userAgent: DefaultUserAgent,
		lister:    NewRemoteTagLister(),
	}
}

// NormalizeVersion ensures a version string contains a minor component.
// "25" becomes "25.0"; versions that already contain a dot pass through.
func NormalizeVersion(version string) string {
	if !strings.Contains(version, ".") {
		return version + ".0"
	}
	return version
}

// TagForVersion derives the release tag for a version. Release tags omit
// a trailing ".0" minor: versions "25" and "25.0" both map to
// "wasi-sdk-25", while "25.1" maps to "wasi-sdk-25.1".
func TagForVersion(version string) string {
	return TagPrefix + strings.TrimSuffix(version, ".0")
}

// Resolve turns a user-supplied version string (possibly "latest") into
// a concrete (version, tag) pair. Network failures while resolving
// "latest" propagate unretried.
func (r *Resolver) Resolve(ctx context.Context, version string) (string, string, error) {
	var tag string

	if version == "latest" {
		latest, err := r.latestTag(ctx)
		if err != nil {
			return "", "", fmt.Errorf("resolve latest release: %w", err)
		}
		tag = latest
		version = strings.TrimPrefix(tag, TagPrefix)
	} else {
		tag = TagForVersion(version)
	}

	return NormalizeVersion(version), tag, nil
}
