package d3d9to11

// Entry points of the legacy device this layer does not carry. Each one
// aborts with UnimplementedError: reaching them means the application
// depends on the fixed-function pipeline or on features outside the
// resource and presentation model.

// Reset reinitializes the device with new presentation parameters.
func (d *Device) Reset() { unimplemented("Device.Reset") }

// GetRenderTargetData copies a render target into a system-memory surface.
func (d *Device) GetRenderTargetData() { unimplemented("Device.GetRenderTargetData") }

// UpdateTexture copies a system-memory texture into a default-pool texture.
func (d *Device) UpdateTexture() { unimplemented("Device.UpdateTexture") }

// StretchRect copies between render targets with scaling and filtering.
func (d *Device) StretchRect() { unimplemented("Device.StretchRect") }

// ColorFill fills a surface region with a color.
func (d *Device) ColorFill() { unimplemented("Device.ColorFill") }

// CreateVolumeTexture creates a 3D texture.
func (d *Device) CreateVolumeTexture() { unimplemented("Device.CreateVolumeTexture") }

// CreateCubeTexture creates a cube map.
func (d *Device) CreateCubeTexture() { unimplemented("Device.CreateCubeTexture") }

// CreateOffscreenPlainSurface creates a standalone surface.
func (d *Device) CreateOffscreenPlainSurface() { unimplemented("Device.CreateOffscreenPlainSurface") }

// CreateVertexBuffer creates a vertex buffer.
func (d *Device) CreateVertexBuffer() { unimplemented("Device.CreateVertexBuffer") }

// CreateIndexBuffer creates an index buffer.
func (d *Device) CreateIndexBuffer() { unimplemented("Device.CreateIndexBuffer") }

// Drawing and scene management.

func (d *Device) Clear()                  { unimplemented("Device.Clear") }
func (d *Device) BeginScene()             { unimplemented("Device.BeginScene") }
func (d *Device) EndScene()               { unimplemented("Device.EndScene") }
func (d *Device) DrawPrimitive()          { unimplemented("Device.DrawPrimitive") }
func (d *Device) DrawIndexedPrimitive()   { unimplemented("Device.DrawIndexedPrimitive") }
func (d *Device) DrawPrimitiveUP()        { unimplemented("Device.DrawPrimitiveUP") }
func (d *Device) DrawIndexedPrimitiveUP() { unimplemented("Device.DrawIndexedPrimitiveUP") }
func (d *Device) ProcessVertices()        { unimplemented("Device.ProcessVertices") }
func (d *Device) ValidateDevice()         { unimplemented("Device.ValidateDevice") }

// Pipeline state.

func (d *Device) SetRenderState()          { unimplemented("Device.SetRenderState") }
func (d *Device) GetRenderState()          { unimplemented("Device.GetRenderState") }
func (d *Device) SetSamplerState()         { unimplemented("Device.SetSamplerState") }
func (d *Device) GetSamplerState()         { unimplemented("Device.GetSamplerState") }
func (d *Device) SetTexture()              { unimplemented("Device.SetTexture") }
func (d *Device) GetTexture()              { unimplemented("Device.GetTexture") }
func (d *Device) SetTextureStageState()    { unimplemented("Device.SetTextureStageState") }
func (d *Device) GetTextureStageState()    { unimplemented("Device.GetTextureStageState") }
func (d *Device) SetViewport()             { unimplemented("Device.SetViewport") }
func (d *Device) GetViewport()             { unimplemented("Device.GetViewport") }
func (d *Device) SetScissorRect()          { unimplemented("Device.SetScissorRect") }
func (d *Device) GetScissorRect()          { unimplemented("Device.GetScissorRect") }
func (d *Device) SetClipPlane()            { unimplemented("Device.SetClipPlane") }
func (d *Device) GetClipPlane()            { unimplemented("Device.GetClipPlane") }
func (d *Device) SetClipStatus()           { unimplemented("Device.SetClipStatus") }
func (d *Device) GetClipStatus()           { unimplemented("Device.GetClipStatus") }
func (d *Device) CreateStateBlock()        { unimplemented("Device.CreateStateBlock") }
func (d *Device) BeginStateBlock()         { unimplemented("Device.BeginStateBlock") }
func (d *Device) EndStateBlock()           { unimplemented("Device.EndStateBlock") }
func (d *Device) CreateQuery()             { unimplemented("Device.CreateQuery") }

// Fixed-function transform and lighting.

func (d *Device) SetTransform()      { unimplemented("Device.SetTransform") }
func (d *Device) GetTransform()      { unimplemented("Device.GetTransform") }
func (d *Device) MultiplyTransform() { unimplemented("Device.MultiplyTransform") }
func (d *Device) SetLight()          { unimplemented("Device.SetLight") }
func (d *Device) GetLight()          { unimplemented("Device.GetLight") }
func (d *Device) LightEnable()       { unimplemented("Device.LightEnable") }
func (d *Device) SetMaterial()       { unimplemented("Device.SetMaterial") }
func (d *Device) GetMaterial()       { unimplemented("Device.GetMaterial") }
func (d *Device) SetNPatchMode()     { unimplemented("Device.SetNPatchMode") }
func (d *Device) GetNPatchMode()     { unimplemented("Device.GetNPatchMode") }

// Programmable pipeline.

func (d *Device) CreateVertexShader()      { unimplemented("Device.CreateVertexShader") }
func (d *Device) SetVertexShader()         { unimplemented("Device.SetVertexShader") }
func (d *Device) GetVertexShader()         { unimplemented("Device.GetVertexShader") }
func (d *Device) CreatePixelShader()       { unimplemented("Device.CreatePixelShader") }
func (d *Device) SetPixelShader()          { unimplemented("Device.SetPixelShader") }
func (d *Device) GetPixelShader()          { unimplemented("Device.GetPixelShader") }
func (d *Device) CreateVertexDeclaration() { unimplemented("Device.CreateVertexDeclaration") }
func (d *Device) SetVertexDeclaration()    { unimplemented("Device.SetVertexDeclaration") }
func (d *Device) GetVertexDeclaration()    { unimplemented("Device.GetVertexDeclaration") }
func (d *Device) SetFVF()                  { unimplemented("Device.SetFVF") }
func (d *Device) GetFVF()                  { unimplemented("Device.GetFVF") }
func (d *Device) SetStreamSource()         { unimplemented("Device.SetStreamSource") }
func (d *Device) GetStreamSource()         { unimplemented("Device.GetStreamSource") }
func (d *Device) SetIndices()              { unimplemented("Device.SetIndices") }
func (d *Device) GetIndices()              { unimplemented("Device.GetIndices") }

// Cursor, gamma and palettes.

func (d *Device) SetCursorPosition()        { unimplemented("Device.SetCursorPosition") }
func (d *Device) SetCursorProperties()      { unimplemented("Device.SetCursorProperties") }
func (d *Device) ShowCursor()               { unimplemented("Device.ShowCursor") }
func (d *Device) SetGammaRamp()             { unimplemented("Device.SetGammaRamp") }
func (d *Device) GetGammaRamp()             { unimplemented("Device.GetGammaRamp") }
func (d *Device) SetPaletteEntries()        { unimplemented("Device.SetPaletteEntries") }
func (d *Device) GetPaletteEntries()        { unimplemented("Device.GetPaletteEntries") }
func (d *Device) SetCurrentTexturePalette() { unimplemented("Device.SetCurrentTexturePalette") }
func (d *Device) GetCurrentTexturePalette() { unimplemented("Device.GetCurrentTexturePalette") }
func (d *Device) SetDialogBoxMode()         { unimplemented("Device.SetDialogBoxMode") }

// Higher-order surfaces.

func (d *Device) DrawRectPatch() { unimplemented("Device.DrawRectPatch") }
func (d *Device) DrawTriPatch()  { unimplemented("Device.DrawTriPatch") }
func (d *Device) DeletePatch()   { unimplemented("Device.DeletePatch") }

func (d *Device) SetSoftwareVertexProcessing() { unimplemented("Device.SetSoftwareVertexProcessing") }
func (d *Device) GetSoftwareVertexProcessing() { unimplemented("Device.GetSoftwareVertexProcessing") }
