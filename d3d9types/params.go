package d3d9types

// PresentParameters configures a swap chain and the implicit device targets.
// It mirrors the legacy presentation-parameter structure field for field.
type PresentParameters struct {
	BackBufferWidth  uint32
	BackBufferHeight uint32
	BackBufferFormat Format
	BackBufferCount  uint32

	MultiSampleType    MultisampleType
	MultiSampleQuality uint32

	SwapEffect   SwapEffect
	DeviceWindow uintptr
	Windowed     bool

	EnableAutoDepthStencil bool
	AutoDepthStencilFormat Format
	Flags                  uint32

	FullScreenRefreshRateInHz uint32
	PresentationInterval      uint32
}

// CreationParameters records how a device was created.
// The device keeps a copy and returns it to callers on request.
type CreationParameters struct {
	AdapterOrdinal uint32
	DeviceType     DeviceType
	FocusWindow    uintptr
	BehaviorFlags  uint32
}
