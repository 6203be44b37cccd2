package platform

import (
	"context"
	"runtime"
	"testing"
)

func TestDetectReturnsHostValues(t *testing.T) {
	detector := NewDetector()

	info, err := detector.Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}

	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", info.Arch, runtime.GOARCH)
	}
}

func TestDetectReleaseNaming(t *testing.T) {
	detector := NewDetector()

	info, err := detector.Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}

	// Release naming must be consistent with the pure mapping functions
	if got, want := info.ReleaseOS(), ReleaseOS(runtime.GOOS); got != want {
		t.Errorf("ReleaseOS() = %q, want %q", got, want)
	}
	if got, want := info.ReleaseArch(), ReleaseArch(runtime.GOARCH); got != want {
		t.Errorf("ReleaseArch() = %q, want %q", got, want)
	}
}

func TestGetDistro(t *testing.T) {
	tests := []struct {
		name    string
		info    Info
		wantNil bool
	}{
		{
			name:    "linux with platform",
			info:    Info{OS: "linux", Platform: "ubuntu", Family: FamilyDebian, Version: "22.04"},
			wantNil: false,
		},
		{
			name:    "linux without platform",
			info:    Info{OS: "linux"},
			wantNil: true,
		},
		{
			name:    "macos",
			info:    Info{OS: "darwin", Platform: "ubuntu"},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distro := tt.info.GetDistro()
			if (distro == nil) != tt.wantNil {
				t.Errorf("GetDistro() = %v, wantNil = %v", distro, tt.wantNil)
			}
			if distro != nil && distro.ID != tt.info.Platform {
				t.Errorf("distro.ID = %q, want %q", distro.ID, tt.info.Platform)
			}
		})
	}
}
