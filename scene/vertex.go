package scene

// Vertex is the packed per-vertex record uploaded for the cube and plane:
// 12 bytes of position, 3 bytes of color, one byte of padding, 12 bytes of
// normal.
type Vertex struct {
	X, Y, Z    float32 // position
	R, G, B    uint8   // color, normalized to [0,1] by the vertex fetch
	NX, NY, NZ float32 // normal
}

// Byte offsets and stride of Vertex as seen by glVertexAttribPointer.
const (
	VertexPositionOffset = 0
	VertexColorOffset    = 12
	VertexNormalOffset   = 16
	VertexStride         = 28
)

// Color is a linear RGB triple used for light parameters and clear colors.
type Color struct {
	R, G, B float32
}

var (
	ColorWhite = Color{1, 1, 1}
	ColorBlack = Color{0, 0, 0}
)

// Gray returns a color with all three channels set to v.
func Gray(v float32) Color {
	return Color{v, v, v}
}
