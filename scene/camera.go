package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultCameraSpeed      = float32(3.0)
	DefaultMouseSensitivity = float32(0.1)
	DefaultNearPlane        = float32(0.1)
	DefaultFarPlane         = float32(500.0)
	maxPitch                = float32(89.0)
)

// Direction is a camera movement request from the keyboard.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// FlyCamera is a free-look camera driven by WASD and mouse deltas.
// Angles are kept in degrees.
type FlyCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Yaw      float32
	Pitch    float32

	Speed       float32
	Sensitivity float32

	lastX, lastY float32
	firstMouse   bool
}

// NewFlyCamera returns a camera at (0,1,3) looking down -Z, with the
// cursor assumed to start at the centre of an 800x600 window.
func NewFlyCamera() *FlyCamera {
	return &FlyCamera{
		Position:    mgl32.Vec3{0, 1, 3},
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		Yaw:         -90,
		Pitch:       0,
		Speed:       DefaultCameraSpeed,
		Sensitivity: DefaultMouseSensitivity,
		lastX:       400,
		lastY:       300,
		firstMouse:  true,
	}
}

// Look applies a cursor position. The first call only records it.
func (c *FlyCamera) Look(xpos, ypos float64) {
	x, y := float32(xpos), float32(ypos)
	if c.firstMouse {
		c.lastX = x
		c.lastY = y
		c.firstMouse = false
	}

	xOffset := (x - c.lastX) * c.Sensitivity
	yOffset := (c.lastY - y) * c.Sensitivity // screen y grows downward
	c.lastX = x
	c.lastY = y

	c.Yaw += xOffset
	c.Pitch += yOffset
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}

	c.Front = FrontFromAngles(c.Yaw, c.Pitch)
}

// FrontFromAngles returns the unit view direction for yaw/pitch in degrees.
func FrontFromAngles(yaw, pitch float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	return mgl32.Vec3{
		float32(math.Cos(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Sin(y) * math.Cos(p)),
	}.Normalize()
}

// Move translates the camera by Speed*dt in the requested direction.
func (c *FlyCamera) Move(dir Direction, dt float32) {
	step := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(step))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(step))
	case Left:
		c.Position = c.Position.Sub(c.right().Mul(step))
	case Right:
		c.Position = c.Position.Add(c.right().Mul(step))
	}
}

func (c *FlyCamera) right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// SkyboxView is the view matrix with its translation removed, so the
// skybox stays centred on the eye.
func (c *FlyCamera) SkyboxView() mgl32.Mat4 {
	return c.ViewMatrix().Mat3().Mat4()
}

// Projection returns a perspective matrix for a vertical field of view in degrees.
func Projection(fovDeg, aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, DefaultNearPlane, DefaultFarPlane)
}

// FrameClock turns absolute timestamps into per-frame deltas.
type FrameClock struct {
	last float32
}

// Tick returns the seconds elapsed since the previous Tick (or since 0 on
// the first call).
func (fc *FrameClock) Tick(now float64) float32 {
	current := float32(now)
	dt := current - fc.last
	fc.last = current
	return dt
}
