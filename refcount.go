package d3d9to11

import "sync/atomic"

// refCount is the acquire/release surface every legacy object exposes.
// Lifetime of the backing Go object is managed by the garbage collector;
// the count only reproduces the legacy API contract of returning the
// updated value from each call.
type refCount struct {
	n atomic.Int32
}

// AddRef increments the reference count and returns the new value.
func (r *refCount) AddRef() int32 {
	return r.n.Add(1)
}

// Release decrements the reference count and returns the new value.
// The count is not allowed to go below zero.
func (r *refCount) Release() int32 {
	for {
		cur := r.n.Load()
		if cur == 0 {
			return 0
		}
		if r.n.CompareAndSwap(cur, cur-1) {
			return cur - 1
		}
	}
}

// RefCount returns the current reference count.
func (r *refCount) RefCount() int32 {
	return r.n.Load()
}
