package release

import (
	"fmt"

	"github.com/wasi-tools/wasdk/internal/platform"
)

// ArtifactURL generates the download URL for a release artifact from
// the version, tag, and raw architecture and OS names. It is pure
// string substitution: identical inputs produce identical output.
//
// ArtifactURL("25.0", "wasi-sdk-25", "x86_64", "Linux") yields
// .../download/wasi-sdk-25/wasi-sdk-25.0-x86_64-linux.tar.gz.
func ArtifactURL(version, tag, arch, osName string) string {
	return ArtifactURLWithBase(DefaultBaseURL, version, tag, arch, osName)
}

// ArtifactURLWithBase is ArtifactURL against an alternate base URL,
// for mirrors of the release artifacts.
func ArtifactURLWithBase(base, version, tag, arch, osName string) string {
	return fmt.Sprintf("%s/%s/wasi-sdk-%s-%s-%s.tar.gz",
		base, tag, version, platform.ReleaseArch(arch), platform.ReleaseOS(osName))
}
