package d3d9to11

import (
	"errors"
	"testing"

	"github.com/Fraxinus001/d3d9-to-11/d3d9types"
)

func TestGetBackBuffer(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	bb, err := dev.GetBackBuffer(0, 0, d3d9types.BackBufferMono)
	if err != nil {
		t.Fatalf("GetBackBuffer: %v", err)
	}
	desc := bb.Desc()
	if desc.Width != 64 || desc.Height != 64 {
		t.Errorf("back buffer extent = %dx%d, want 64x64", desc.Width, desc.Height)
	}
	if _, ok := bb.RenderTargetView(); !ok {
		t.Error("back buffer is not a render target")
	}

	if _, err := dev.GetBackBuffer(0, 5, d3d9types.BackBufferMono); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("bad index = %v, want ErrInvalidCall", err)
	}
	if _, err := dev.GetBackBuffer(0, 0, d3d9types.BackBufferLeft); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("stereo buffer = %v, want ErrInvalidCall", err)
	}
	if _, err := dev.GetBackBuffer(2, 0, d3d9types.BackBufferMono); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("bad chain = %v, want ErrInvalidCall", err)
	}
}

func TestPresentAndFrontBuffer(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	// Render by uploading from system memory into the back buffer.
	src := newLevelSurface(t, dev, d3d9types.PoolSystemMem)
	lr, err := src.LockRect(nil, 0)
	if err != nil {
		t.Fatalf("LockRect: %v", err)
	}
	for i := range lr.Bits {
		lr.Bits[i] = 0x7F
	}
	src.UnlockRect()

	bb, err := dev.GetBackBuffer(0, 0, d3d9types.BackBufferMono)
	if err != nil {
		t.Fatalf("GetBackBuffer: %v", err)
	}
	if err := dev.UpdateSurface(src, nil, bb, &d3d9types.Point{}); err != nil {
		t.Fatalf("UpdateSurface: %v", err)
	}

	if err := dev.Present(nil, nil, 0, 0); err != nil {
		t.Fatalf("Present: %v", err)
	}

	dst := newLevelSurface(t, dev, d3d9types.PoolSystemMem)
	if err := dev.GetFrontBufferData(0, dst); err != nil {
		t.Fatalf("GetFrontBufferData: %v", err)
	}

	lr, err = dst.LockRect(nil, d3d9types.LockReadOnly)
	if err != nil {
		t.Fatalf("read lock: %v", err)
	}
	defer dst.UnlockRect()
	if lr.Bits[0] != 0x7F {
		t.Errorf("front buffer byte = %#x, want 0x7F", lr.Bits[0])
	}
}

func TestGetFrontBufferDataRejects(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	if err := dev.GetFrontBufferData(0, nil); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("nil destination = %v, want ErrInvalidCall", err)
	}

	managed := newLevelSurface(t, dev, d3d9types.PoolManaged)
	if err := dev.GetFrontBufferData(0, managed); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("managed destination = %v, want ErrInvalidCall", err)
	}
}

func TestSwapChainQueries(t *testing.T) {
	pp := testParams()
	pp.FullScreenRefreshRateInHz = 60
	dev, _ := newTestDevice(t, pp)

	mode, err := dev.GetDisplayMode(0)
	if err != nil {
		t.Fatalf("GetDisplayMode: %v", err)
	}
	if mode.Width != 64 || mode.Height != 64 {
		t.Errorf("mode extent = %dx%d, want 64x64", mode.Width, mode.Height)
	}
	if mode.RefreshRate != 60 {
		t.Errorf("refresh rate = %d, want 60", mode.RefreshRate)
	}
	if mode.Format != d3d9types.FormatA8R8G8B8 {
		t.Errorf("mode format = %v, want A8R8G8B8", mode.Format)
	}

	rs, err := dev.GetRasterStatus(0)
	if err != nil {
		t.Fatalf("GetRasterStatus: %v", err)
	}
	if !rs.InVBlank || rs.ScanLine != 0 {
		t.Errorf("raster status = %+v, want vblank at line 0", rs)
	}

	if _, err := dev.GetDisplayMode(1); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("GetDisplayMode(1) = %v, want ErrInvalidCall", err)
	}
	if _, err := dev.GetRasterStatus(1); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("GetRasterStatus(1) = %v, want ErrInvalidCall", err)
	}
}

func TestSwapChainPresentParameters(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	sc, err := dev.GetSwapChain(0)
	if err != nil {
		t.Fatalf("GetSwapChain: %v", err)
	}
	got := sc.PresentParameters()
	if got.BackBufferCount != 1 {
		t.Errorf("BackBufferCount = %d, want 1 (default filled in)", got.BackBufferCount)
	}
	if got.BackBufferFormat != d3d9types.FormatA8R8G8B8 {
		t.Errorf("BackBufferFormat = %v, want A8R8G8B8", got.BackBufferFormat)
	}
}

func TestNewSwapChainRejectsUnsupportedFormat(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	pp := testParams()
	pp.BackBufferFormat = d3d9types.FormatR8G8B8
	if _, err := dev.CreateAdditionalSwapChain(pp); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("unsupported format = %v, want ErrInvalidCall", err)
	}
}
