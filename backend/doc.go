// Package backend defines the native graphics API consumed by the
// translation core: an explicit, descriptor-driven device with 2D image
// creation, render-target and depth/stencil views, CPU map/unmap of
// subresources, subresource-region copies, output-merger binding, and swap
// chains.
//
// The interfaces are deliberately shaped like a modern explicit API so the
// legacy object model above them translates mechanically. Implementations
// register themselves by name via Register, typically from an init function,
// and are selected with Get or Default.
//
// Two implementations ship with this module:
//   - software: a pure-CPU implementation, always available, used by the
//     test suite.
//   - wgpu: a GPU implementation over github.com/gogpu/wgpu.
package backend
