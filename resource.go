package d3d9to11

import (
	"github.com/Fraxinus001/d3d9-to-11/backend"
	"github.com/Fraxinus001/d3d9-to-11/d3d9types"
)

// Resource is the state shared by every object allocated through a Device:
// the owning device, the usage and pool fixed at creation, and the concrete
// resource kind.
type Resource struct {
	refCount
	device *Device
	usage  d3d9types.Usage
	pool   d3d9types.Pool
	kind   d3d9types.ResourceType
}

func newResource(dev *Device, usage d3d9types.Usage, pool d3d9types.Pool, kind d3d9types.ResourceType) Resource {
	r := Resource{device: dev, usage: usage, pool: pool, kind: kind}
	r.AddRef()
	return r
}

// Device returns the device that created this resource.
func (r *Resource) Device() *Device { return r.device }

// Usage returns the usage flags the resource was created with.
func (r *Resource) Usage() d3d9types.Usage { return r.usage }

// Pool returns the memory pool the resource lives in.
func (r *Resource) Pool() d3d9types.Pool { return r.pool }

// Type returns the concrete resource kind.
func (r *Resource) Type() d3d9types.ResourceType { return r.kind }

// context returns the immediate context of the owning device.
func (r *Resource) context() backend.Context { return r.device.ctx }
