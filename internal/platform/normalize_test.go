package platform

import "testing"

func TestReleaseOS(t *testing.T) {
	tests := []struct {
		name   string
		osName string
		want   string
	}{
		{"darwin maps to macos", "darwin", "macos"},
		{"Darwin maps to macos", "Darwin", "macos"},
		{"linux unchanged", "linux", "linux"},
		{"Linux lowercased", "Linux", "linux"},
		{"Windows lowercased", "Windows", "windows"},
		{"windows unchanged", "windows", "windows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReleaseOS(tt.osName); got != tt.want {
				t.Errorf("ReleaseOS(%q) = %q, want %q", tt.osName, got, tt.want)
			}
		})
	}
}

func TestReleaseArch(t *testing.T) {
	tests := []struct {
		name string
		arch string
		want string
	}{
		{"amd64 maps to x86_64", "amd64", "x86_64"},
		{"AMD64 maps to x86_64", "AMD64", "x86_64"},
		{"arm64 unchanged", "arm64", "arm64"},
		{"x86_64 unchanged", "x86_64", "x86_64"},
		{"riscv64 unchanged", "riscv64", "riscv64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReleaseArch(tt.arch); got != tt.want {
				t.Errorf("ReleaseArch(%q) = %q, want %q", tt.arch, got, tt.want)
			}
		})
	}
}

func TestMapFamily(t *testing.T) {
	tests := []struct {
		family string
		want   string
	}{
		{"debian", FamilyDebian},
		{"Ubuntu", FamilyDebian},
		{"rhel", FamilyRHEL},
		{"  fedora  ", FamilyFedora},
		{"alpine", FamilyAlpine},
		{"haiku", FamilyUnknown},
		{"", FamilyUnknown},
	}

	for _, tt := range tests {
		if got := mapFamily(tt.family); got != tt.want {
			t.Errorf("mapFamily(%q) = %q, want %q", tt.family, got, tt.want)
		}
	}
}
