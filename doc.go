// Package d3d9to11 implements the Direct3D 9 object model on top of a
// modern explicit GPU backend.
//
// The package mirrors the legacy API surface: a Device owns swap chains,
// render targets and textures; Surfaces are 2D pixel arrays that can be
// locked for CPU access; Textures are mip chains of surfaces. Behind those
// objects every operation is translated to the backend interfaces in the
// backend package, which are implemented by a CPU rasterizer-free software
// device and a wgpu device.
//
// Objects are created through a Device:
//
//	b, err := backend.Default()
//	dev, err := d3d9to11.NewDevice(b, cp, &pp)
//	tex, err := dev.CreateTexture(256, 256, 0, 0, d3d9types.FormatA8R8G8B8, d3d9types.PoolManaged, 0)
//
// Errors follow the legacy taxonomy: ErrInvalidCall for caller mistakes,
// ErrNotFound for absent bindings, ErrWasStillDrawing for non-blocking
// locks that would have waited. Failures inside the native backend are
// wrapped in DriverError. Entry points of the legacy API that this layer
// intentionally does not carry panic with UnimplementedError, matching the
// fail-fast behavior of the translation layer rather than silently
// corrupting rendering state.
package d3d9to11
