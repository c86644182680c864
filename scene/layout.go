package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MeshKind selects which static vertex buffer an object is drawn from.
type MeshKind int

const (
	MeshPlane MeshKind = iota
	MeshCube
)

func (k MeshKind) String() string {
	switch k {
	case MeshPlane:
		return "plane"
	case MeshCube:
		return "cube"
	}
	return "unknown"
}

// VertexCount is the number of vertices drawn for the mesh kind.
func (k MeshKind) VertexCount() int32 {
	if k == MeshPlane {
		return 6
	}
	return 36
}

// Object is one draw of a static mesh with its model matrix.
type Object struct {
	Name  string
	Mesh  MeshKind
	Model mgl32.Mat4
}

// NormalMatrix returns the cofactor matrix of the model's upper 3x3,
// det(M) * transpose(inverse(M)). It stays defined when M is singular,
// as the ground's flattening scale is. The shader renormalizes.
func (o Object) NormalMatrix() mgl32.Mat3 {
	m := o.Model.Mat3()
	c0, c1, c2 := m.Col(0), m.Col(1), m.Col(2)
	return mgl32.Mat3FromCols(c1.Cross(c2), c2.Cross(c0), c0.Cross(c1))
}

// Layout returns the fixed scene in draw order: the ground plane, then
// three cubes.
func Layout() []Object {
	ground := mgl32.Scale3D(20, 0, 20)

	cube1 := mgl32.Translate3D(0, 2, -2).
		Mul4(mgl32.Scale3D(1.5, 1.5, 1.5))

	cube2 := mgl32.Translate3D(-0.25, 0.25, -0.5).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(50))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(180))).
		Mul4(mgl32.Scale3D(0.5, 0.5, 0.5))

	cube3 := mgl32.Translate3D(-4.5, 0.5, -4.5).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(-90)))

	return []Object{
		{Name: "ground", Mesh: MeshPlane, Model: ground},
		{Name: "cube1", Mesh: MeshCube, Model: cube1},
		{Name: "cube2", Mesh: MeshCube, Model: cube2},
		{Name: "cube3", Mesh: MeshCube, Model: cube3},
	}
}

// DirectionalLight holds the lighting uniforms uploaded once at startup.
type DirectionalLight struct {
	Color    Color
	Position mgl32.Vec3
	Ambient  Color
	Diffuse  Color
	Specular Color
}

func DefaultLight() DirectionalLight {
	return DirectionalLight{
		Color:    ColorWhite,
		Position: mgl32.Vec3{5, 8, 2},
		Ambient:  Gray(0.2),
		Diffuse:  Gray(1),
		Specular: Gray(1),
	}
}

// LightSpace is the projection and view used to render the shadow map.
type LightSpace struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
}

// Matrix returns Projection*View.
func (ls LightSpace) Matrix() mgl32.Mat4 {
	return ls.Projection.Mul4(ls.View)
}

// NewLightSpace builds an orthographic light frustum covering a 40x40
// area around the origin, looking from the light toward the origin.
func NewLightSpace(light DirectionalLight) LightSpace {
	return LightSpace{
		Projection: mgl32.Ortho(-20, 20, -20, 20, 1, 30),
		View:       mgl32.LookAtV(light.Position, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0.1, 0}),
	}
}
