package wgpu

import (
	"fmt"

	"github.com/Fraxinus001/d3d9-to-11/backend"
)

// swapChain is an offscreen presentation chain. Present snapshots the
// first back buffer into CPU memory; the embedding application decides
// how the snapshot reaches the screen.
type swapChain struct {
	device    *Device
	desc      backend.SwapChainDescriptor
	buffers   []*texture
	front     []byte
	destroyed bool
}

// Desc returns the descriptor the chain was created with.
func (sc *swapChain) Desc() backend.SwapChainDescriptor { return sc.desc }

// BackBuffer returns the i-th back buffer texture.
func (sc *swapChain) BackBuffer(i uint32) (backend.Texture2D, error) {
	if sc.destroyed {
		return nil, fmt.Errorf("%w: swap chain has been destroyed", backend.ErrUnsupported)
	}
	if i >= uint32(len(sc.buffers)) {
		return nil, fmt.Errorf("%w: back buffer %d of %d", backend.ErrOutOfRange, i, len(sc.buffers))
	}
	return sc.buffers[i], nil
}

// Present reads the first back buffer back from the GPU and keeps it as
// the front-buffer snapshot.
func (sc *swapChain) Present() error {
	if sc.destroyed {
		return fmt.Errorf("%w: swap chain has been destroyed", backend.ErrUnsupported)
	}
	bb := sc.buffers[0]
	if err := bb.refresh(0); err != nil {
		return fmt.Errorf("present readback: %w", err)
	}
	if sc.front == nil {
		sc.front = make([]byte, len(bb.shadow[0]))
	}
	copy(sc.front, bb.shadow[0])
	return nil
}

// FrontBuffer returns the most recently presented pixels.
// Before the first Present the buffer is defined and zeroed.
func (sc *swapChain) FrontBuffer() ([]byte, int, error) {
	if sc.destroyed {
		return nil, 0, fmt.Errorf("%w: swap chain has been destroyed", backend.ErrUnsupported)
	}
	if sc.front == nil {
		sc.front = make([]byte, len(sc.buffers[0].shadow[0]))
	}
	return sc.front, sc.buffers[0].pitches[0], nil
}

// Destroy releases the chain and its buffers.
func (sc *swapChain) Destroy() {
	if sc.destroyed {
		return
	}
	for _, b := range sc.buffers {
		b.Destroy()
	}
	sc.buffers = nil
	sc.front = nil
	sc.destroyed = true
}
