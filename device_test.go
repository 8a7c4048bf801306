package d3d9to11

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/Fraxinus001/d3d9-to-11/backend"
	"github.com/Fraxinus001/d3d9-to-11/backend/software"
	"github.com/Fraxinus001/d3d9-to-11/d3d9types"
)

func testParams() *d3d9types.PresentParameters {
	return &d3d9types.PresentParameters{
		BackBufferWidth:  64,
		BackBufferHeight: 64,
		Windowed:         true,
	}
}

func newTestDevice(t *testing.T, pp *d3d9types.PresentParameters) (*Device, *software.Device) {
	t.Helper()
	sw := software.New()
	if pp == nil {
		pp = testParams()
	}
	dev, err := NewDevice(sw, d3d9types.CreationParameters{FocusWindow: 1}, pp)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	t.Cleanup(dev.Close)
	return dev, sw
}

// recordHandler captures log messages for diagnostic assertions.
type recordHandler struct {
	mu       sync.Mutex
	messages []string
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, r.Message)
	return nil
}

func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordHandler) contains(substr string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, m := range h.messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func captureLogs(t *testing.T) *recordHandler {
	t.Helper()
	h := &recordHandler{}
	SetLogger(slog.New(h))
	t.Cleanup(func() { SetLogger(nil) })
	return h
}

func TestNewDeviceDefaults(t *testing.T) {
	pp := testParams()
	dev, _ := newTestDevice(t, pp)

	if pp.BackBufferCount != 1 {
		t.Errorf("BackBufferCount = %d, want 1", pp.BackBufferCount)
	}
	if pp.BackBufferFormat != d3d9types.FormatA8R8G8B8 {
		t.Errorf("BackBufferFormat = %v, want A8R8G8B8", pp.BackBufferFormat)
	}

	rt, err := dev.GetRenderTarget(0)
	if err != nil {
		t.Fatalf("GetRenderTarget(0): %v", err)
	}
	desc := rt.Desc()
	if desc.Width != 64 || desc.Height != 64 {
		t.Errorf("render target extent = %dx%d, want 64x64", desc.Width, desc.Height)
	}
	if desc.Format != d3d9types.FormatA8R8G8B8 {
		t.Errorf("render target format = %v, want A8R8G8B8", desc.Format)
	}
	if desc.Usage != d3d9types.UsageRenderTarget {
		t.Errorf("render target usage = %v", desc.Usage)
	}

	ds, err := dev.GetDepthStencilSurface()
	if err != nil || ds != nil {
		t.Errorf("GetDepthStencilSurface = %v, %v; want nil, nil", ds, err)
	}
}

func TestNewDeviceWindowFallback(t *testing.T) {
	pp := testParams()
	pp.DeviceWindow = 0

	_, err := NewDevice(software.New(), d3d9types.CreationParameters{}, pp)
	if !errors.Is(err, ErrInvalidCall) {
		t.Errorf("NewDevice without window = %v, want ErrInvalidCall", err)
	}

	dev, err := NewDevice(software.New(), d3d9types.CreationParameters{FocusWindow: 7}, pp)
	if err != nil {
		t.Fatalf("NewDevice with focus window: %v", err)
	}
	dev.Close()
}

func TestNewDeviceAutoDepthStencil(t *testing.T) {
	pp := testParams()
	pp.EnableAutoDepthStencil = true
	pp.AutoDepthStencilFormat = d3d9types.FormatD24S8
	dev, sw := newTestDevice(t, pp)

	ds, err := dev.GetDepthStencilSurface()
	if err != nil || ds == nil {
		t.Fatalf("GetDepthStencilSurface = %v, %v; want surface", ds, err)
	}
	desc := ds.Desc()
	if desc.Format != d3d9types.FormatD24S8 {
		t.Errorf("depth format = %v, want D24S8", desc.Format)
	}
	if desc.Width != 64 || desc.Height != 64 {
		t.Errorf("depth extent = %dx%d, want 64x64", desc.Width, desc.Height)
	}

	ctx := sw.ImmediateContext().(*software.Context)
	if ctx.BoundDepthStencil() == nil {
		t.Error("depth/stencil view not bound on the native context")
	}
}

// releaseTrackingDevice wraps a backend device and records whether the
// swap chains and render-target views it hands out have been destroyed.
type releaseTrackingDevice struct {
	backend.Device
	chains []*trackedSwapChain
	views  []*trackedRenderTargetView
}

type trackedSwapChain struct {
	backend.SwapChain
	destroyed bool
}

func (sc *trackedSwapChain) Destroy() {
	sc.destroyed = true
	sc.SwapChain.Destroy()
}

type trackedRenderTargetView struct {
	backend.RenderTargetView
	destroyed bool
}

func (v *trackedRenderTargetView) Destroy() {
	v.destroyed = true
	v.RenderTargetView.Destroy()
}

func (d *releaseTrackingDevice) CreateSwapChain(desc *backend.SwapChainDescriptor) (backend.SwapChain, error) {
	sc, err := d.Device.CreateSwapChain(desc)
	if err != nil {
		return nil, err
	}
	tracked := &trackedSwapChain{SwapChain: sc}
	d.chains = append(d.chains, tracked)
	return tracked, nil
}

func (d *releaseTrackingDevice) CreateRenderTargetView(tex backend.Texture2D) (backend.RenderTargetView, error) {
	v, err := d.Device.CreateRenderTargetView(tex)
	if err != nil {
		return nil, err
	}
	tracked := &trackedRenderTargetView{RenderTargetView: v}
	d.views = append(d.views, tracked)
	return tracked, nil
}

func TestNewDeviceFailureReleasesResources(t *testing.T) {
	pp := testParams()
	pp.EnableAutoDepthStencil = true
	pp.AutoDepthStencilFormat = d3d9types.FormatA8R8G8B8 // not a depth format

	tracker := &releaseTrackingDevice{Device: software.New()}
	dev, err := NewDevice(tracker, d3d9types.CreationParameters{FocusWindow: 1}, pp)
	if !errors.Is(err, ErrInvalidCall) {
		t.Fatalf("NewDevice = %v, %v; want ErrInvalidCall", dev, err)
	}

	if len(tracker.chains) != 1 {
		t.Fatalf("created %d swap chains, want 1", len(tracker.chains))
	}
	if !tracker.chains[0].destroyed {
		t.Error("implicit swap chain not destroyed on failed construction")
	}
	if len(tracker.views) != 1 {
		t.Fatalf("created %d render target views, want 1", len(tracker.views))
	}
	if !tracker.views[0].destroyed {
		t.Error("back buffer view not destroyed on failed construction")
	}
}

func TestSetRenderTarget(t *testing.T) {
	dev, sw := newTestDevice(t, nil)

	rt, err := dev.CreateRenderTarget(32, 32, d3d9types.FormatA8R8G8B8,
		d3d9types.MultisampleNone, 0, false, 0)
	if err != nil {
		t.Fatalf("CreateRenderTarget: %v", err)
	}

	if err := dev.SetRenderTarget(3, rt); err != nil {
		t.Fatalf("SetRenderTarget(3): %v", err)
	}
	got, err := dev.GetRenderTarget(3)
	if err != nil || got != rt {
		t.Errorf("GetRenderTarget(3) = %v, %v; want the bound surface", got, err)
	}

	// Intermediate slots exist but are empty.
	if _, err := dev.GetRenderTarget(2); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRenderTarget(2) = %v, want ErrNotFound", err)
	}
	if _, err := dev.GetRenderTarget(5); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRenderTarget(5) = %v, want ErrNotFound", err)
	}

	ctx := sw.ImmediateContext().(*software.Context)
	views, count := ctx.BoundRenderTargets()
	if count != 4 {
		t.Errorf("bound target count = %d, want 4", count)
	}
	if views[0] == nil || views[3] == nil || views[1] != nil {
		t.Errorf("bound views = %v", views)
	}

	// Unbinding slot 3 keeps slot 0 intact.
	if err := dev.SetRenderTarget(3, nil); err != nil {
		t.Fatalf("SetRenderTarget(3, nil): %v", err)
	}
	if _, err := dev.GetRenderTarget(3); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRenderTarget(3) after unbind = %v, want ErrNotFound", err)
	}
}

func TestSetRenderTargetRejects(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	if err := dev.SetRenderTarget(backend.MaxRenderTargets, nil); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("out-of-bounds index = %v, want ErrInvalidCall", err)
	}
	if err := dev.SetRenderTarget(0, nil); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("unbinding target 0 = %v, want ErrInvalidCall", err)
	}

	// A texture mip surface is not a render target.
	tex, err := dev.CreateTexture(16, 16, 1, 0, d3d9types.FormatA8R8G8B8, d3d9types.PoolManaged, 0)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	level, err := tex.GetSurfaceLevel(0)
	if err != nil {
		t.Fatalf("GetSurfaceLevel: %v", err)
	}
	if err := dev.SetRenderTarget(1, level); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("binding a plain surface = %v, want ErrInvalidCall", err)
	}
}

func TestSetDepthStencilSurface(t *testing.T) {
	dev, sw := newTestDevice(t, nil)

	ds, err := dev.CreateDepthStencilSurface(64, 64, d3d9types.FormatD24S8,
		d3d9types.MultisampleNone, 0, false, 0)
	if err != nil {
		t.Fatalf("CreateDepthStencilSurface: %v", err)
	}
	if err := dev.SetDepthStencilSurface(ds); err != nil {
		t.Fatalf("SetDepthStencilSurface: %v", err)
	}
	got, err := dev.GetDepthStencilSurface()
	if err != nil || got != ds {
		t.Errorf("GetDepthStencilSurface = %v, %v", got, err)
	}

	ctx := sw.ImmediateContext().(*software.Context)
	if ctx.BoundDepthStencil() == nil {
		t.Error("depth view not bound after set")
	}

	if err := dev.SetDepthStencilSurface(nil); err != nil {
		t.Fatalf("SetDepthStencilSurface(nil): %v", err)
	}
	got, err = dev.GetDepthStencilSurface()
	if err != nil || got != nil {
		t.Errorf("after unbind = %v, %v; want nil, nil", got, err)
	}
	if ctx.BoundDepthStencil() != nil {
		t.Error("depth view still bound after unbind")
	}

	// A render target cannot be bound as depth.
	rt, err := dev.GetRenderTarget(0)
	if err != nil {
		t.Fatalf("GetRenderTarget: %v", err)
	}
	if err := dev.SetDepthStencilSurface(rt); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("binding a color target as depth = %v, want ErrInvalidCall", err)
	}
}

func TestCreateDepthStencilForcesSingleSample(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	ds, err := dev.CreateDepthStencilSurface(64, 64, d3d9types.FormatD24S8,
		d3d9types.MultisampleType(4), 0, false, 0)
	if err != nil {
		t.Fatalf("CreateDepthStencilSurface: %v", err)
	}
	if got := ds.Desc().MultiSampleType; got != d3d9types.MultisampleNone {
		t.Errorf("multisample type = %v, want none", got)
	}
}

func TestCreateDepthStencilRejectsColorFormat(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	_, err := dev.CreateDepthStencilSurface(64, 64, d3d9types.FormatA8R8G8B8,
		d3d9types.MultisampleNone, 0, false, 0)
	if !errors.Is(err, ErrInvalidCall) {
		t.Errorf("color format = %v, want ErrInvalidCall", err)
	}
}

func TestCreateRenderTargetDiagnostics(t *testing.T) {
	logs := captureLogs(t)
	dev, _ := newTestDevice(t, nil)

	if _, err := dev.CreateRenderTarget(32, 32, d3d9types.FormatA8R8G8B8,
		d3d9types.MultisampleNone, 0, false, 1); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("shared handle = %v, want ErrInvalidCall", err)
	}

	// The lockable flag is diagnosed but does not fail the call.
	rt, err := dev.CreateRenderTarget(32, 32, d3d9types.FormatA8R8G8B8,
		d3d9types.MultisampleNone, 0, true, 0)
	if err != nil || rt == nil {
		t.Fatalf("lockable render target = %v, %v; want surface", rt, err)
	}
	if !logs.contains("lockable render targets are not supported") {
		t.Error("lockable flag was not diagnosed")
	}
}

func TestCreateTexture(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	tex, err := dev.CreateTexture(64, 32, 0, 0, d3d9types.FormatA8R8G8B8, d3d9types.PoolManaged, 0)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	if got := tex.LevelCount(); got != 7 {
		t.Errorf("LevelCount = %d, want 7", got)
	}
	if tex.Pool() != d3d9types.PoolManaged || tex.Type() != d3d9types.ResourceTexture {
		t.Errorf("pool/type = %v/%v", tex.Pool(), tex.Type())
	}

	if _, err := dev.CreateTexture(64, 64, 1, 0, d3d9types.FormatA8R8G8B8, d3d9types.PoolManaged, 1); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("shared handle = %v, want ErrInvalidCall", err)
	}
	if _, err := dev.CreateTexture(64, 64, 1, 0, d3d9types.FormatR8G8B8, d3d9types.PoolManaged, 0); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("unsupported format = %v, want ErrInvalidCall", err)
	}
}

func TestCreateTextureUsagePanics(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	defer func() {
		var ue *UnimplementedError
		if r := recover(); r == nil {
			t.Fatal("CreateTexture with usage flags did not panic")
		} else if err, ok := r.(error); !ok || !errors.As(err, &ue) {
			t.Fatalf("panic value = %v, want UnimplementedError", r)
		}
	}()
	dev.CreateTexture(64, 64, 1, d3d9types.UsageDynamic, d3d9types.FormatA8R8G8B8, d3d9types.PoolDefault, 0)
}

func TestUpdateSurface(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	mkLevel := func(pool d3d9types.Pool) *Surface {
		t.Helper()
		tex, err := dev.CreateTexture(16, 16, 1, 0, d3d9types.FormatA8R8G8B8, pool, 0)
		if err != nil {
			t.Fatalf("CreateTexture(%v): %v", pool, err)
		}
		s, err := tex.GetSurfaceLevel(0)
		if err != nil {
			t.Fatalf("GetSurfaceLevel: %v", err)
		}
		return s
	}

	src := mkLevel(d3d9types.PoolSystemMem)
	dst := mkLevel(d3d9types.PoolDefault)

	pt := &d3d9types.Point{X: 4, Y: 4}
	rect := &d3d9types.Rect{Left: 0, Top: 0, Right: 8, Bottom: 8}
	if err := dev.UpdateSurface(src, rect, dst, pt); err != nil {
		t.Errorf("UpdateSurface: %v", err)
	}

	// Pool constraints are enforced in both directions.
	if err := dev.UpdateSurface(dst, nil, src, pt); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("default -> sysmem = %v, want ErrInvalidCall", err)
	}
	if err := dev.UpdateSurface(src, nil, src, pt); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("sysmem -> sysmem = %v, want ErrInvalidCall", err)
	}
	if err := dev.UpdateSurface(src, nil, dst, nil); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("nil point = %v, want ErrInvalidCall", err)
	}

	// An out-of-range source rectangle surfaces as a driver error.
	bad := &d3d9types.Rect{Left: 0, Top: 0, Right: 32, Bottom: 32}
	var de *DriverError
	if err := dev.UpdateSurface(src, bad, dst, &d3d9types.Point{}); !errors.As(err, &de) {
		t.Errorf("oversized rect = %v, want DriverError", err)
	}
}

func TestDeviceQueries(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	if err := dev.TestCooperativeLevel(); err != nil {
		t.Errorf("TestCooperativeLevel = %v", err)
	}
	if err := dev.EvictManagedResources(); err != nil {
		t.Errorf("EvictManagedResources = %v", err)
	}
	if dev.AvailableTextureMem() == 0 {
		t.Error("AvailableTextureMem = 0")
	}
	if got := dev.SwapChainCount(); got != 1 {
		t.Errorf("SwapChainCount = %d, want 1", got)
	}
	cp := dev.CreationParameters()
	if cp.FocusWindow != 1 {
		t.Errorf("CreationParameters.FocusWindow = %d, want 1", cp.FocusWindow)
	}
}

func TestAdditionalSwapChainIsNotImplicit(t *testing.T) {
	dev, _ := newTestDevice(t, nil)

	extra, err := dev.CreateAdditionalSwapChain(testParams())
	if err != nil {
		t.Fatalf("CreateAdditionalSwapChain: %v", err)
	}
	defer extra.destroy()

	if got := dev.SwapChainCount(); got != 1 {
		t.Errorf("SwapChainCount = %d, want 1", got)
	}
	if _, err := dev.GetSwapChain(1); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("GetSwapChain(1) = %v, want ErrInvalidCall", err)
	}
}
