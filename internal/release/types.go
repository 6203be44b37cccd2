// Package release resolves WASI SDK version strings to concrete release
// versions, tags, and download URLs.
//
// A user-supplied version may be a dotted number ("25", "25.0", "25.1")
// or "latest". Resolution of "latest" queries the GitHub releases API;
// when the API rate-limits an anonymous request, the resolver falls back
// to listing the repository's remote tags with go-git.
package release

import "errors"

const (
	// TagPrefix is the prefix of every WASI SDK release tag.
	TagPrefix = "wasi-sdk-"

	// DefaultBaseURL is the base URL release artifacts are downloaded from.
	DefaultBaseURL = "https://github.com/WebAssembly/wasi-sdk/releases/download"

	// repoURL is the upstream repository, used for the tag-list fallback.
	repoURL = "https://github.com/WebAssembly/wasi-sdk"

	// latestAPIURL is the GitHub releases metadata endpoint.
	latestAPIURL = "https://api.github.com/repos/WebAssembly/wasi-sdk/releases/latest"

	// tokenEnv names the optional bearer token for the metadata request.
	// macOS CI runners share IPs and are rate-limited without it
	// (https://github.com/actions/runner-images/issues/602).
	tokenEnv = "GITHUB_TOKEN"
)

// Common resolution errors
var (
	ErrNoReleaseTags = errors.New("no release tags found")
	ErrRateLimited   = errors.New("GitHub API rate limit exceeded")
)
