package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
)

// latestRelease is the subset of the GitHub release object we decode.
type latestRelease struct {
	TagName string `json:"tag_name"`
}

// latestTag retrieves the tag of the most recent WASI SDK release from
// the GitHub releases API. Anonymous requests that get rate-limited fall
// back to listing the repository's remote tags.
func (r *Resolver) latestTag(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	token := os.Getenv(tokenEnv)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("query releases endpoint: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusForbidden, http.StatusTooManyRequests:
		// Shared-IP runners hit the anonymous rate limit; remote tag
		// listing does not count against it
		if token == "" && r.lister != nil {
			return r.latestTagFromRemote(ctx)
		}
		return "", fmt.Errorf("%w (status %d)", ErrRateLimited, resp.StatusCode)
	default:
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var release latestRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decode release metadata: %w", err)
	}

	if release.TagName == "" {
		return "", errors.New("release metadata has no tag_name")
	}

	return release.TagName, nil
}

// latestTagFromRemote lists remote tags and picks the newest release tag.
func (r *Resolver) latestTagFromRemote(ctx context.Context) (string, error) {
	tags, err := r.lister.ListTags(ctx)
	if err != nil {
		return "", fmt.Errorf("list remote tags: %w", err)
	}

	tag, err := newestReleaseTag(tags)
	if err != nil {
		return "", err
	}

	return tag, nil
}
