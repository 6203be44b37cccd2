package release

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/storage/memory"
)

// TagLister lists tags from the upstream repository.
type TagLister interface {
	ListTags(ctx context.Context) ([]string, error)
}

// RemoteTagLister lists tags over the git protocol without cloning,
// equivalent to `git ls-remote --tags`.
type RemoteTagLister struct {
	url string
}

// NewRemoteTagLister creates a tag lister for the WASI SDK repository.
func NewRemoteTagLister() *RemoteTagLister {
	return &RemoteTagLister{url: repoURL}
}

// ListTags returns the short names of all tags on the remote.
func (l *RemoteTagLister) ListTags(ctx context.Context) ([]string, error) {
	remote := gogit.NewRemote(memory.NewStorage(), &gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{l.url},
	})

	refs, err := remote.ListContext(ctx, &gogit.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list remote refs: %w", err)
	}

	var tags []string
	for _, ref := range refs {
		if ref.Name().IsTag() {
			tags = append(tags, ref.Name().Short())
		}
	}

	return tags, nil
}

// newestReleaseTag picks the highest-versioned release tag from a tag
// list. Tags without the release prefix or with non-numeric versions
// are ignored.
func newestReleaseTag(tags []string) (string, error) {
	best := ""
	bestMajor, bestMinor := -1, -1

	for _, tag := range tags {
		if !strings.HasPrefix(tag, TagPrefix) {
			continue
		}

		major, minor, ok := parseVersion(strings.TrimPrefix(tag, TagPrefix))
		if !ok {
			continue
		}

		if major > bestMajor || (major == bestMajor && minor > bestMinor) {
			best = tag
			bestMajor, bestMinor = major, minor
		}
	}

	if best == "" {
		return "", ErrNoReleaseTags
	}

	return best, nil
}

// parseVersion splits a "major" or "major.minor" version into numbers.
func parseVersion(version string) (major, minor int, ok bool) {
	parts := strings.SplitN(version, ".", 2)

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}

	if len(parts) == 1 {
		return major, 0, true
	}

	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}

	return major, minor, true
}
