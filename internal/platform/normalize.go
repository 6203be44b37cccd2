package platform

import "strings"

// familyMap maps distribution names to their canonical family names.
// This normalizes the family strings gopsutil reports across distros.
var familyMap = map[string]string{
	"debian":   FamilyDebian,
	"ubuntu":   FamilyDebian, // gopsutil might return ubuntu as family
	"rhel":     FamilyRHEL,
	"centos":   FamilyRHEL,
	"rocky":    FamilyRHEL,
	"fedora":   FamilyFedora,
	"suse":     FamilySUSE,
	"opensuse": FamilySUSE,
	"arch":     FamilyArch,
	"manjaro":  FamilyArch,
	"alpine":   FamilyAlpine,
}

// ReleaseOS maps an OS name to the naming used by WASI SDK release
// artifacts. "Darwin" (any case) becomes "macos"; everything else is
// lowercased ("Linux" -> "linux", "Windows" -> "windows").
func ReleaseOS(osName string) string {
	if strings.EqualFold(osName, "darwin") {
		return "macos"
	}
	return strings.ToLower(osName)
}

// ReleaseArch maps an architecture name to the naming used by WASI SDK
// release artifacts. "amd64" (any case) becomes "x86_64"; all other
// values pass through unchanged (release assets already use "arm64").
func ReleaseArch(arch string) string {
	if strings.EqualFold(arch, "amd64") {
		return "x86_64"
	}
	return arch
}

// normalizePlatform converts platform IDs to lowercase for consistency.
func normalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

// mapFamily maps distribution family strings to canonical family names.
func mapFamily(family string) string {
	normalized := strings.ToLower(strings.TrimSpace(family))
	if canonical, ok := familyMap[normalized]; ok {
		return canonical
	}
	return FamilyUnknown
}
