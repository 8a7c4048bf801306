// Package wgpu implements the native device interfaces on top of
// gogpu/wgpu's hardware abstraction layer.
//
// The HAL has no persistently mappable textures, so CPU access is emulated
// with shadow memory: each texture keeps a CPU copy per mip level. Write
// maps mutate the shadow copy and upload it on unmap; read maps refresh the
// shadow copy from the GPU through a staging buffer first.
//
// A device is either standalone, owning its Vulkan instance, or wraps a
// device shared by an external provider such as a gogpu application.
package wgpu
