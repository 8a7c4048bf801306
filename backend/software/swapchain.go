package software

import (
	"fmt"

	"github.com/Fraxinus001/d3d9-to-11/backend"
)

// swapChain is a CPU presentation chain. Present copies the first back
// buffer into a front-buffer snapshot; there is no display to scan out to.
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

// Present snapshots the first back buffer as the new front buffer.
func (sc *swapChain) Present() error {
	if sc.destroyed {
		return fmt.Errorf("%w: swap chain has been destroyed", backend.ErrUnsupported)
	}
	bb := sc.buffers[0]
	if sc.front == nil {
		sc.front = make([]byte, len(bb.levels[0]))
	}
	copy(sc.front, bb.levels[0])
	return nil
}

// FrontBuffer returns the most recently presented pixels.
// Before the first Present the buffer is defined and zeroed.
func (sc *swapChain) FrontBuffer() ([]byte, int, error) {
	if sc.destroyed {
		return nil, 0, fmt.Errorf("%w: swap chain has been destroyed", backend.ErrUnsupported)
	}
	if sc.front == nil {
		sc.front = make([]byte, len(sc.buffers[0].levels[0]))
	}
	return sc.front, sc.buffers[0].pitches[0], nil
}

// Destroy releases the chain and its buffers.
func (sc *swapChain) Destroy() {
	for _, b := range sc.buffers {
		b.Destroy()
	}
	sc.buffers = nil
	sc.front = nil
	sc.destroyed = true
}
