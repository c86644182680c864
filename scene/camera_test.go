package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func vecNear(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, epsilon)
}

func TestNewFlyCamera(t *testing.T) {
	c := NewFlyCamera()
	if c.Position != (mgl32.Vec3{0, 1, 3}) {
		t.Errorf("Position: expected (0,1,3), got %v", c.Position)
	}
	if c.Front != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Front: expected (0,0,-1), got %v", c.Front)
	}
	if c.Yaw != -90 || c.Pitch != 0 {
		t.Errorf("angles: expected (-90,0), got (%v,%v)", c.Yaw, c.Pitch)
	}
	if c.Speed != DefaultCameraSpeed || c.Sensitivity != DefaultMouseSensitivity {
		t.Errorf("tuning: expected (%v,%v), got (%v,%v)", DefaultCameraSpeed, DefaultMouseSensitivity, c.Speed, c.Sensitivity)
	}
}

func TestLookFirstEventOnlyRecords(t *testing.T) {
	c := NewFlyCamera()
	c.Look(1000, -200)
	if c.Yaw != -90 || c.Pitch != 0 {
		t.Errorf("first event moved the camera: yaw=%v pitch=%v", c.Yaw, c.Pitch)
	}
	if !vecNear(c.Front, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Front: expected (0,0,-1), got %v", c.Front)
	}
}

func TestLookAppliesScaledDeltas(t *testing.T) {
	c := NewFlyCamera()
	c.Look(400, 300)
	c.Look(410, 290)

	if math.Abs(float64(c.Yaw+89)) > epsilon {
		t.Errorf("Yaw: expected -89, got %v", c.Yaw)
	}
	if math.Abs(float64(c.Pitch-1)) > epsilon {
		t.Errorf("Pitch: expected 1, got %v", c.Pitch)
	}
	if l := c.Front.Len(); math.Abs(float64(l-1)) > epsilon {
		t.Errorf("Front: expected unit length, got %v", l)
	}
	if !vecNear(c.Front, FrontFromAngles(-89, 1)) {
		t.Errorf("Front: expected %v, got %v", FrontFromAngles(-89, 1), c.Front)
	}
}

func TestLookClampsPitch(t *testing.T) {
	tests := []struct {
		name  string
		y     float64
		pitch float32
	}{
		{"up", -10000, 89},
		{"down", 10000, -89},
	}
	for _, tt := range tests {
		c := NewFlyCamera()
		c.Look(0, 0)
		c.Look(0, tt.y)
		if c.Pitch != tt.pitch {
			t.Errorf("%s: expected pitch %v, got %v", tt.name, tt.pitch, c.Pitch)
		}
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		dir  Direction
		dt   float32
		want mgl32.Vec3
	}{
		{Forward, 1, mgl32.Vec3{0, 1, 0}},
		{Backward, 1, mgl32.Vec3{0, 1, 6}},
		{Right, 0.5, mgl32.Vec3{1.5, 1, 3}},
		{Left, 0.5, mgl32.Vec3{-1.5, 1, 3}},
		{Forward, 0, mgl32.Vec3{0, 1, 3}},
	}
	for _, tt := range tests {
		c := NewFlyCamera()
		c.Move(tt.dir, tt.dt)
		if !vecNear(c.Position, tt.want) {
			t.Errorf("Move(%d, %v): expected %v, got %v", tt.dir, tt.dt, tt.want, c.Position)
		}
	}
}

func TestViewMatrixCentresEye(t *testing.T) {
	c := NewFlyCamera()
	c.Look(400, 300)
	c.Look(450, 280)
	c.Move(Forward, 0.3)

	eye := c.ViewMatrix().Mul4x1(c.Position.Vec4(1))
	if !eye.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, epsilon) {
		t.Errorf("eye in view space: expected origin, got %v", eye)
	}

	ahead := c.ViewMatrix().Mul4x1(c.Position.Add(c.Front).Vec4(1))
	if !ahead.Vec3().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, epsilon) {
		t.Errorf("front in view space: expected (0,0,-1), got %v", ahead)
	}
}

func TestSkyboxViewHasNoTranslation(t *testing.T) {
	c := NewFlyCamera()
	c.Position = mgl32.Vec3{7, -3, 12}
	m := c.SkyboxView()

	if m[12] != 0 || m[13] != 0 || m[14] != 0 || m[15] != 1 {
		t.Errorf("translation column: expected (0,0,0,1), got (%v,%v,%v,%v)", m[12], m[13], m[14], m[15])
	}

	view := c.ViewMatrix()
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			if m.At(row, col) != view.At(row, col) {
				t.Errorf("rotation [%d][%d]: expected %v, got %v", row, col, view.At(row, col), m.At(row, col))
			}
		}
	}
}

func TestProjectionAspect(t *testing.T) {
	p := Projection(90, 800.0/600.0)
	// with a 90 degree fov the y scale is 1
	if math.Abs(float64(p.At(1, 1)-1)) > epsilon {
		t.Errorf("y scale: expected 1, got %v", p.At(1, 1))
	}
	if math.Abs(float64(p.At(0, 0)-0.75)) > epsilon {
		t.Errorf("x scale: expected 0.75, got %v", p.At(0, 0))
	}
}

func TestFrameClock(t *testing.T) {
	var fc FrameClock
	if dt := fc.Tick(0.5); dt != 0.5 {
		t.Errorf("first tick: expected 0.5, got %v", dt)
	}
	if dt := fc.Tick(0.75); dt != 0.25 {
		t.Errorf("second tick: expected 0.25, got %v", dt)
	}
	if dt := fc.Tick(0.75); dt != 0 {
		t.Errorf("repeat tick: expected 0, got %v", dt)
	}
}
