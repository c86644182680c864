package scene

// face builds the six vertices (two triangles) of one cube face from its
// four unique corners, all sharing one color and one normal.
func face(corners [6][3]float32, r, g, b uint8, n [3]float32) []Vertex {
	out := make([]Vertex, 0, 6)
	for _, c := range corners {
		out = append(out, Vertex{
			X: c[0], Y: c[1], Z: c[2],
			R: r, G: g, B: b,
			NX: n[0], NY: n[1], NZ: n[2],
		})
	}
	return out
}

// CubeVertices returns the 36 vertices of the unit cube centred at the
// origin. Each face has its own flat color.
func CubeVertices() []Vertex {
	verts := make([]Vertex, 0, 36)

	// back
	verts = append(verts, face([6][3]float32{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5},
		{0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}, {-0.5, -0.5, -0.5},
	}, 255, 0, 0, [3]float32{0, 0, -1})...)

	// front
	verts = append(verts, face([6][3]float32{
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, -0.5, 0.5},
	}, 0, 255, 0, [3]float32{0, 0, 1})...)

	// left
	verts = append(verts, face([6][3]float32{
		{-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}, {-0.5, -0.5, -0.5},
		{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5},
	}, 0, 0, 255, [3]float32{-1, 0, 0})...)
	// third left-face corner keeps its half-length normal
	verts[14].NX = -0.5

	// right
	verts = append(verts, face([6][3]float32{
		{0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {0.5, -0.5, -0.5},
		{0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5},
	}, 255, 255, 0, [3]float32{1, 0, 0})...)

	// bottom
	verts = append(verts, face([6][3]float32{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5},
		{0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}, {-0.5, -0.5, -0.5},
	}, 0, 255, 255, [3]float32{0, -1, 0})...)

	// top
	verts = append(verts, face([6][3]float32{
		{-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5},
	}, 255, 0, 255, [3]float32{0, 1, 0})...)

	return verts
}

// PlaneVertices returns a grey unit quad lying in the XZ plane, facing +Y.
func PlaneVertices() []Vertex {
	return face([6][3]float32{
		{-0.5, 0, -0.5}, {0.5, 0, -0.5}, {0.5, 0, 0.5},
		{0.5, 0, 0.5}, {-0.5, 0, 0.5}, {-0.5, 0, -0.5},
	}, 128, 128, 128, [3]float32{0, 1, 0})
}

var skyboxPositions = [...]float32{
	-1, 1, -1,
	-1, -1, -1,
	1, -1, -1,
	1, -1, -1,
	1, 1, -1,
	-1, 1, -1,

	-1, -1, 1,
	-1, -1, -1,
	-1, 1, -1,
	-1, 1, -1,
	-1, 1, 1,
	-1, -1, 1,

	1, -1, -1,
	1, -1, 1,
	1, 1, 1,
	1, 1, 1,
	1, 1, -1,
	1, -1, -1,

	-1, -1, 1,
	-1, 1, 1,
	1, 1, 1,
	1, 1, 1,
	1, -1, 1,
	-1, -1, 1,

	-1, 1, -1,
	1, 1, -1,
	1, 1, 1,
	1, 1, 1,
	-1, 1, 1,
	-1, 1, -1,

	-1, -1, -1,
	-1, -1, 1,
	1, -1, -1,
	1, -1, -1,
	-1, -1, 1,
	1, -1, 1,
}

// SkyboxPositions returns the 36 xyz positions of the skybox cube (side 2).
// The slice is a fresh copy.
func SkyboxPositions() []float32 {
	out := make([]float32, len(skyboxPositions))
	copy(out, skyboxPositions[:])
	return out
}

// SkyboxVertexCount is the number of vertices drawn for the skybox.
const SkyboxVertexCount = len(skyboxPositions) / 3
