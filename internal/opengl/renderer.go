package opengl

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"skyview/scene"
)

// shadowTextureUnit keeps the depth map off unit 0, which the skybox
// cube map uses.
const shadowTextureUnit = 1

var clearColor = scene.Color{R: 0.098, G: 0.098, B: 0.4392}

type Options struct {
	Width          int
	Height         int
	FOV            float32 // scene projection, degrees
	SkyboxFOV      float32 // skybox projection, degrees
	ShadowsEnabled bool
	ShadowSize     int
	Faces          scene.CubemapFaces
	Light          scene.DirectionalLight
}

// FrameInput is the per-frame camera state.
type FrameInput struct {
	View       mgl32.Mat4
	SkyboxView mgl32.Mat4
	EyePos     mgl32.Vec3
}

// Renderer owns every GPU resource of the exercise: the colored scene
// program, the depth-only program, the skybox and the static meshes.
type Renderer struct {
	logger *slog.Logger

	program    uint32
	shadowProg uint32

	modelLoc           int32
	normalMatrixLoc    int32
	viewLoc            int32
	projectionLoc      int32
	lightProjectionLoc int32
	lightViewLoc       int32
	eyePosLoc          int32
	hasShadowsLoc      int32

	shadowLightProjectionLoc int32
	shadowLightViewLoc       int32
	shadowLightModelLoc      int32

	cube   *Mesh
	plane  *Mesh
	skybox *Skybox
	shadow *ShadowMap

	objects    []scene.Object
	lightSpace scene.LightSpace

	fov       float32
	skyboxFOV float32
	viewportW int32
	viewportH int32
}

// NewRenderer loads the GL function pointers and builds all resources.
// It must run after the window's context is made current.
func NewRenderer(logger *slog.Logger, opts Options) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	prog, err := newProgram(sceneVertSrc, sceneFragSrc)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}
	shadowProg, err := newProgram(shadowVertSrc, shadowFragSrc)
	if err != nil {
		gl.DeleteProgram(prog)
		return nil, fmt.Errorf("shadow shader: %w", err)
	}
	skybox, err := NewSkybox(opts.Faces)
	if err != nil {
		gl.DeleteProgram(prog)
		gl.DeleteProgram(shadowProg)
		return nil, err
	}

	r := &Renderer{
		logger:     logger,
		program:    prog,
		shadowProg: shadowProg,

		modelLoc:           uniform(prog, "model"),
		normalMatrixLoc:    uniform(prog, "normalMatrix"),
		viewLoc:            uniform(prog, "view"),
		projectionLoc:      uniform(prog, "projection"),
		lightProjectionLoc: uniform(prog, "lightProjection"),
		lightViewLoc:       uniform(prog, "lightView"),
		eyePosLoc:          uniform(prog, "eyePos"),
		hasShadowsLoc:      uniform(prog, "hasShadows"),

		shadowLightProjectionLoc: uniform(shadowProg, "lightProjection"),
		shadowLightViewLoc:       uniform(shadowProg, "lightView"),
		shadowLightModelLoc:      uniform(shadowProg, "lightModel"),

		cube:   UploadVertices(scene.CubeVertices()),
		plane:  UploadVertices(scene.PlaneVertices()),
		skybox: skybox,

		objects:    scene.Layout(),
		lightSpace: scene.NewLightSpace(opts.Light),

		fov:       opts.FOV,
		skyboxFOV: opts.SkyboxFOV,
	}

	if opts.ShadowsEnabled {
		sm, err := NewShadowMap(opts.ShadowSize)
		if err != nil {
			// The exercise keeps running without shadows.
			logger.Warn("shadow map disabled", "error", err)
		} else {
			r.shadow = sm
			logger.Debug("shadow map enabled", "size", opts.ShadowSize)
		}
	}

	r.setLight(opts.Light)
	r.SetViewport(opts.Width, opts.Height)
	return r, nil
}

// setLight uploads the lighting uniforms. They never change afterwards.
func (r *Renderer) setLight(light scene.DirectionalLight) {
	gl.UseProgram(r.program)
	setColor(uniform(r.program, "lightColor"), light.Color)
	gl.Uniform3f(uniform(r.program, "directionalLightPos"), light.Position.X(), light.Position.Y(), light.Position.Z())
	setColor(uniform(r.program, "directionalLightAmbientIntensity"), light.Ambient)
	setColor(uniform(r.program, "directionalLightDiffuseIntensity"), light.Diffuse)
	setColor(uniform(r.program, "directionalLightSpecularIntensity"), light.Specular)
	gl.Uniform1i(uniform(r.program, "shadowMapTexture"), shadowTextureUnit)
	gl.Uniform1i(r.hasShadowsLoc, boolToInt32(r.shadow != nil))
}

func setColor(loc int32, c scene.Color) {
	gl.Uniform3f(loc, c.R, c.G, c.B)
}

// SetViewport resizes the GL viewport; the projections follow its aspect.
func (r *Renderer) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, r.viewportW, r.viewportH)
}

func (r *Renderer) aspect() float32 {
	return float32(r.viewportW) / float32(r.viewportH)
}

// ShadowsEnabled reports whether the depth pass runs each frame.
func (r *Renderer) ShadowsEnabled() bool {
	return r.shadow != nil
}

// DrawFrame renders one frame. Without shadows only the skybox is drawn;
// with shadows the depth pass runs first, then the skybox and the lit
// scene.
func (r *Renderer) DrawFrame(in FrameInput) {
	gl.UseProgram(r.program)
	gl.Uniform3f(r.eyePosLoc, in.EyePos.X(), in.EyePos.Y(), in.EyePos.Z())

	if r.shadow == nil {
		gl.Clear(gl.DEPTH_BUFFER_BIT)
		r.skybox.Draw(in.SkyboxView, scene.Projection(r.skyboxFOV, r.aspect()))
		return
	}

	r.drawShadowPass()

	gl.ClearColor(clearColor.R, clearColor.G, clearColor.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.skybox.Draw(in.SkyboxView, scene.Projection(r.skyboxFOV, r.aspect()))
	r.drawScene(in.View, scene.Projection(r.fov, r.aspect()))
}

func (r *Renderer) drawShadowPass() {
	gl.UseProgram(r.shadowProg)
	gl.UniformMatrix4fv(r.shadowLightProjectionLoc, 1, false, &r.lightSpace.Projection[0])
	gl.UniformMatrix4fv(r.shadowLightViewLoc, 1, false, &r.lightSpace.View[0])

	r.shadow.Begin()
	for i := range r.objects {
		obj := &r.objects[i]
		gl.UniformMatrix4fv(r.shadowLightModelLoc, 1, false, &obj.Model[0])
		r.meshFor(obj.Mesh).Draw()
	}
	r.shadow.End(r.viewportW, r.viewportH)
}

func (r *Renderer) drawScene(view, proj mgl32.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.projectionLoc, 1, false, &proj[0])
	gl.UniformMatrix4fv(r.viewLoc, 1, false, &view[0])
	gl.UniformMatrix4fv(r.lightProjectionLoc, 1, false, &r.lightSpace.Projection[0])
	gl.UniformMatrix4fv(r.lightViewLoc, 1, false, &r.lightSpace.View[0])

	r.shadow.BindTexture(shadowTextureUnit)

	for i := range r.objects {
		obj := &r.objects[i]
		gl.UniformMatrix4fv(r.modelLoc, 1, false, &obj.Model[0])
		normal := obj.NormalMatrix()
		gl.UniformMatrix3fv(r.normalMatrixLoc, 1, false, &normal[0])
		r.meshFor(obj.Mesh).Draw()
	}
}

func (r *Renderer) meshFor(kind scene.MeshKind) *Mesh {
	if kind == scene.MeshPlane {
		return r.plane
	}
	return r.cube
}

// Destroy frees every GPU resource owned by the renderer.
func (r *Renderer) Destroy() {
	r.cube.Destroy()
	r.plane.Destroy()
	r.skybox.Destroy()
	if r.shadow != nil {
		r.shadow.Destroy()
	}
	gl.DeleteProgram(r.program)
	gl.DeleteProgram(r.shadowProg)
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
