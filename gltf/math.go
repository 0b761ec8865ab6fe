package gltf

// Color3 is an RGB color value with float32 components.
type Color3 struct {
	R, G, B float32
}

// Slice returns the components in JSON array order.
func (c Color3) Slice() []float32 {
	return []float32{c.R, c.G, c.B}
}

// Color4 is an RGBA color value with float32 components.
type Color4 struct {
	R, G, B, A float32
}

// Slice returns the components in JSON array order.
func (c Color4) Slice() []float32 {
	return []float32{c.R, c.G, c.B, c.A}
}

// Vector2 is a two-component vector with float32 components.
type Vector2 struct {
	X, Y float32
}

// Slice returns the components in JSON array order.
func (v Vector2) Slice() []float32 {
	return []float32{v.X, v.Y}
}
