package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func transform(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

func TestLayoutOrder(t *testing.T) {
	objs := Layout()
	want := []struct {
		name string
		mesh MeshKind
	}{
		{"ground", MeshPlane},
		{"cube1", MeshCube},
		{"cube2", MeshCube},
		{"cube3", MeshCube},
	}
	if len(objs) != len(want) {
		t.Fatalf("expected %d objects, got %d", len(want), len(objs))
	}
	for i, w := range want {
		if objs[i].Name != w.name || objs[i].Mesh != w.mesh {
			t.Errorf("object %d: expected %s/%s, got %s/%s", i, w.name, w.mesh, objs[i].Name, objs[i].Mesh)
		}
	}
}

func TestLayoutTransforms(t *testing.T) {
	objs := Layout()

	tests := []struct {
		name  string
		model mgl32.Mat4
		in    mgl32.Vec3
		want  mgl32.Vec3
	}{
		{"ground flattens", objs[0].Model, mgl32.Vec3{0.5, 3, -0.5}, mgl32.Vec3{10, 0, -10}},
		{"cube1 centre", objs[1].Model, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 2, -2}},
		{"cube1 corner", objs[1].Model, mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{0.75, 2.75, -1.25}},
		{"cube2 flipped", objs[2].Model, mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{-0.25, 0, -0.5}},
		{"cube3 turned", objs[3].Model, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{-4.5, 0.5, -3.5}},
	}
	for _, tt := range tests {
		got := transform(tt.model, tt.in)
		if !got.ApproxEqualThreshold(tt.want, epsilon) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestMeshKindVertexCount(t *testing.T) {
	if n := MeshPlane.VertexCount(); n != int32(len(PlaneVertices())) {
		t.Errorf("plane: expected %d, got %d", len(PlaneVertices()), n)
	}
	if n := MeshCube.VertexCount(); n != int32(len(CubeVertices())) {
		t.Errorf("cube: expected %d, got %d", len(CubeVertices()), n)
	}
}

func TestDefaultLight(t *testing.T) {
	l := DefaultLight()
	if l.Position != (mgl32.Vec3{5, 8, 2}) {
		t.Errorf("Position: expected (5,8,2), got %v", l.Position)
	}
	if l.Ambient != Gray(0.2) || l.Diffuse != ColorWhite || l.Specular != ColorWhite || l.Color != ColorWhite {
		t.Errorf("unexpected intensities: %+v", l)
	}
}

func TestLightSpace(t *testing.T) {
	light := DefaultLight()
	ls := NewLightSpace(light)

	if eye := transform(ls.View, light.Position); !eye.ApproxEqualThreshold(mgl32.Vec3{}, epsilon) {
		t.Errorf("light position in light view: expected origin, got %v", eye)
	}

	// every scene object centre must land inside the light's clip volume
	for _, obj := range Layout() {
		p := ls.Matrix().Mul4x1(obj.Model.Col(3))
		ndc := p.Vec3().Mul(1 / p.W())
		for i, c := range ndc {
			if c < -1 || c > 1 {
				t.Errorf("%s: axis %d outside light frustum: %v", obj.Name, i, ndc)
			}
		}
	}
}

func TestNormalMatrixKeepsFaceNormals(t *testing.T) {
	normals := []mgl32.Vec3{
		{0, 0, -1}, {0, 0, 1}, {-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0},
	}
	for _, obj := range Layout() {
		nm := obj.NormalMatrix()
		faces := normals
		if obj.Mesh == MeshPlane {
			faces = []mgl32.Vec3{{0, 1, 0}}
		}
		for _, n := range faces {
			got := nm.Mul3x1(n)
			if got.Len() < epsilon {
				t.Errorf("%s: normal %v mapped to zero vector %v", obj.Name, n, got)
				continue
			}
			if obj.Model.Det() == 0 {
				continue
			}
			want := obj.Model.Inv().Transpose().Mat3().Mul3x1(n).Normalize()
			if !got.Normalize().ApproxEqualThreshold(want, epsilon) {
				t.Errorf("%s: normal %v: expected direction %v, got %v", obj.Name, n, want, got.Normalize())
			}
		}
	}
}

func TestNormalMatrixFlattenedGround(t *testing.T) {
	ground := Layout()[0]
	if det := ground.Model.Det(); det != 0 {
		t.Fatalf("ground model: expected singular matrix, got det %v", det)
	}
	up := ground.NormalMatrix().Mul3x1(mgl32.Vec3{0, 1, 0})
	if !up.Normalize().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, epsilon) {
		t.Errorf("ground normal: expected +Y, got %v", up)
	}
}
