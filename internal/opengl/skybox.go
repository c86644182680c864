package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"skyview/scene"
)

// Skybox draws a cube-mapped background around the eye.
type Skybox struct {
	mesh    *Mesh
	prog    uint32
	texture uint32

	projLoc int32
	viewLoc int32
}

// NewSkybox compiles the skybox shader, uploads the cube positions and the
// cube map faces.
func NewSkybox(faces scene.CubemapFaces) (*Skybox, error) {
	prog, err := newProgram(skyVertSrc, skyFragSrc)
	if err != nil {
		return nil, fmt.Errorf("skybox shader: %w", err)
	}

	sb := &Skybox{
		mesh:    UploadPositions(scene.SkyboxPositions()),
		prog:    prog,
		texture: UploadCubemap(faces),
		projLoc: uniform(prog, "skyboxProjection"),
		viewLoc: uniform(prog, "skyboxView"),
	}

	gl.UseProgram(prog)
	gl.Uniform1i(uniform(prog, "skyboxTex"), 0)
	return sb, nil
}

// Draw renders the skybox without writing depth. view must already have
// its translation stripped.
func (sb *Skybox) Draw(view, proj mgl32.Mat4) {
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	gl.UseProgram(sb.prog)
	gl.UniformMatrix4fv(sb.projLoc, 1, false, &proj[0])
	gl.UniformMatrix4fv(sb.viewLoc, 1, false, &view[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sb.texture)
	sb.mesh.Draw()

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

func (sb *Skybox) Destroy() {
	sb.mesh.Destroy()
	if sb.texture != 0 {
		gl.DeleteTextures(1, &sb.texture)
		sb.texture = 0
	}
	gl.DeleteProgram(sb.prog)
}
