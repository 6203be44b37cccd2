package release

import (
	"errors"
	"testing"
)

func TestNewestReleaseTag(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		want    string
		wantErr bool
	}{
		{
			name: "picks highest major",
			tags: []string{"wasi-sdk-23", "wasi-sdk-25", "wasi-sdk-24"},
			want: "wasi-sdk-25",
		},
		{
			name: "minor beats bare major",
			tags: []string{"wasi-sdk-25", "wasi-sdk-25.1"},
			want: "wasi-sdk-25.1",
		},
		{
			name: "ignores unrelated tags",
			tags: []string{"v1.0", "wasi-sdk-25", "latest", "wasi-sdk-prerelease"},
			want: "wasi-sdk-25",
		},
		{
			name: "double digit minor",
			tags: []string{"wasi-sdk-25.2", "wasi-sdk-25.10"},
			want: "wasi-sdk-25.10",
		},
		{
			name:    "no release tags",
			tags:    []string{"v1.0", "unrelated"},
			wantErr: true,
		},
		{
			name:    "empty list",
			tags:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newestReleaseTag(tt.tags)
			if tt.wantErr {
				if !errors.Is(err, ErrNoReleaseTags) {
					t.Errorf("expected ErrNoReleaseTags, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("newestReleaseTag() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("newestReleaseTag() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		version string
		major   int
		minor   int
		ok      bool
	}{
		{"25", 25, 0, true},
		{"25.1", 25, 1, true},
		{"25.10", 25, 10, true},
		{"prerelease", 0, 0, false},
		{"25.x", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		major, minor, ok := parseVersion(tt.version)
		if ok != tt.ok || major != tt.major || minor != tt.minor {
			t.Errorf("parseVersion(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tt.version, major, minor, ok, tt.major, tt.minor, tt.ok)
		}
	}
}
