package d3d9to11

import (
	"errors"
	"testing"

	"github.com/Fraxinus001/d3d9-to-11/d3d9types"
)

func TestTextureMipChain(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	tex, err := dev.CreateTexture(32, 32, 0, 0, d3d9types.FormatA8R8G8B8, d3d9types.PoolManaged, 0)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	if got := tex.LevelCount(); got != 6 {
		t.Fatalf("LevelCount = %d, want 6", got)
	}

	tests := []struct {
		level uint32
		w, h  uint32
	}{
		{0, 32, 32},
		{1, 16, 16},
		{4, 2, 2},
		{5, 1, 1},
	}
	for _, tt := range tests {
		desc, err := tex.LevelDesc(tt.level)
		if err != nil {
			t.Errorf("LevelDesc(%d): %v", tt.level, err)
			continue
		}
		if desc.Width != tt.w || desc.Height != tt.h {
			t.Errorf("level %d extent = %dx%d, want %dx%d",
				tt.level, desc.Width, desc.Height, tt.w, tt.h)
		}
	}
}

func TestTextureSurfaceLevelBounds(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	tex, err := dev.CreateTexture(32, 32, 3, 0, d3d9types.FormatA8R8G8B8, d3d9types.PoolManaged, 0)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	if _, err := tex.GetSurfaceLevel(2); err != nil {
		t.Errorf("GetSurfaceLevel(2): %v", err)
	}
	if _, err := tex.GetSurfaceLevel(3); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("GetSurfaceLevel(3) = %v, want ErrInvalidCall", err)
	}
	if _, err := tex.LevelDesc(3); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("LevelDesc(3) = %v, want ErrInvalidCall", err)
	}
}

func TestTextureSurfaceLevelsAreDistinct(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	tex, err := dev.CreateTexture(32, 32, 2, 0, d3d9types.FormatA8R8G8B8, d3d9types.PoolManaged, 0)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	a, err := tex.GetSurfaceLevel(0)
	if err != nil {
		t.Fatalf("GetSurfaceLevel: %v", err)
	}
	b, err := tex.GetSurfaceLevel(0)
	if err != nil {
		t.Fatalf("GetSurfaceLevel: %v", err)
	}
	if a == b {
		t.Error("GetSurfaceLevel returned the same surface twice")
	}
	if a.RefCount() != 1 || b.RefCount() != 1 {
		t.Error("mip surfaces do not start with a single reference")
	}
}

func TestTextureLockLevel(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	tex, err := dev.CreateTexture(32, 32, 2, 0, d3d9types.FormatA8R8G8B8, d3d9types.PoolSystemMem, 0)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	lr, err := tex.LockRect(1, nil, 0)
	if err != nil {
		t.Fatalf("LockRect(1): %v", err)
	}
	if want := 16 * 4; int(lr.Pitch) != want {
		t.Errorf("level 1 pitch = %d, want %d", lr.Pitch, want)
	}
	if err := tex.UnlockRect(1); err != nil {
		t.Fatalf("UnlockRect(1): %v", err)
	}

	if _, err := tex.LockRect(2, nil, 0); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("LockRect(2) = %v, want ErrInvalidCall", err)
	}
	if err := tex.UnlockRect(2); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("UnlockRect(2) = %v, want ErrInvalidCall", err)
	}
}

func TestTextureManagedReadDiagnostic(t *testing.T) {
	logs := captureLogs(t)
	dev, _ := newTestDevice(t, nil)

	tex, err := dev.CreateTexture(16, 16, 1, 0, d3d9types.FormatA8R8G8B8, d3d9types.PoolManaged, 0)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	tex.LockRect(0, nil, d3d9types.LockReadOnly)
	if !logs.contains("might not return its contents") {
		t.Error("managed read lock was not diagnosed")
	}
}
