// Package scenes holds helpers shared by the lab scenes.
package scenes

import (
	"fmt"
	"path"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/bonobo-labs/internal/engine/renderer"
	"github.com/Faultbox/bonobo-labs/internal/engine/shader"
	"github.com/Faultbox/bonobo-labs/internal/engine/texture"
	"github.com/Faultbox/bonobo-labs/internal/framework"
	"github.com/Faultbox/bonobo-labs/internal/logger"
	"github.com/Faultbox/bonobo-labs/pkg/math"
)

// SkyboxPrefix is the name prefix shared by the selectable skybox programs.
const SkyboxPrefix = "skybox"

var skyboxFragments = []string{"cubemap", "normal", "texcoord"}

// RegisterSkyboxPrograms registers one skybox program per fragment variant,
// named skybox_<variant>.
func RegisterSkyboxPrograms(m *shader.Manager) error {
	for _, v := range skyboxFragments {
		name := SkyboxPrefix + "_" + v
		files := shader.Files{Vertex: "skybox.vert", Fragment: name + ".frag"}
		if _, err := m.CreateAndRegister(name, files); err != nil {
			return err
		}
	}
	return nil
}

// Named cube map sets shipped with the labs, in +X, -X, +Y, -Y, +Z, -Z order.
var cubeMapSets = map[string][6]string{
	"NissiBeach2": {"posx.jpg", "negx.jpg", "posy.jpg", "negy.jpg", "posz.jpg", "negz.jpg"},
	"Space":       {"right.png", "left.png", "top.png", "bottom.png", "front.png", "back.png"},
}

// CubeMapFaces returns the face paths of a named set under cubemaps/.
func CubeMapFaces(set string) (texture.CubeFaces, error) {
	names, ok := cubeMapSets[set]
	if !ok {
		return texture.CubeFaces{}, fmt.Errorf("unknown cube map set %q", set)
	}
	var faces texture.CubeFaces
	for i, n := range names {
		faces[i] = path.Join("cubemaps", set, n)
	}
	return faces, nil
}

// LoadCubeMap loads a named set. Missing assets are logged and yield 0, and
// the scene renders without that texture.
func LoadCubeMap(app *framework.App, set string) uint32 {
	faces, err := CubeMapFaces(set)
	if err == nil {
		var tex uint32
		if tex, err = texture.LoadCubeMap(app.Assets, faces); err == nil {
			return tex
		}
	}
	logger.Warn("cube map unavailable", zap.String("set", set), zap.Error(err))
	return 0
}

// LoadTexture loads a 2D texture, logging and returning 0 when it is missing.
func LoadTexture(app *framework.App, p string) uint32 {
	tex, err := texture.Load2D(app.Assets, p)
	if err != nil {
		logger.Warn("texture unavailable", zap.String("path", p), zap.Error(err))
		return 0
	}
	return tex
}

// SetVec3 sets a vec3 uniform.
func SetVec3(program uint32, name string, v math.Vec3) {
	gl.Uniform3f(shader.GetUniform(program, name), v.X, v.Y, v.Z)
}

// SetFloat sets a float uniform.
func SetFloat(program uint32, name string, f float32) {
	gl.Uniform1f(shader.GetUniform(program, name), f)
}

// SetBool sets an int uniform to 0 or 1.
func SetBool(program uint32, name string, b bool) {
	var v int32
	if b {
		v = 1
	}
	gl.Uniform1i(shader.GetUniform(program, name), v)
}

// Material holds the Phong coefficients.
type Material struct {
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Shininess float32
	Tint      math.Vec3
}

// DefaultMaterial is a neutral grey surface.
var DefaultMaterial = Material{
	Ambient:   math.Vec3{X: 0.1, Y: 0.1, Z: 0.1},
	Diffuse:   math.Vec3{X: 0.7, Y: 0.7, Z: 0.7},
	Specular:  math.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
	Shininess: 10,
	Tint:      math.Vec3{X: 1, Y: 1, Z: 1},
}

// Apply uploads the material to program.
func (m Material) Apply(program uint32) {
	SetVec3(program, "ambient", m.Ambient)
	SetVec3(program, "diffuse", m.Diffuse)
	SetVec3(program, "specular", m.Specular)
	SetFloat(program, "shininess", m.Shininess)
	SetVec3(program, "tint", m.Tint)
}

// RenderModes groups the cull and polygon modes picked in the GUI.
type RenderModes struct {
	Cull    renderer.CullMode
	Polygon renderer.PolygonMode
}

// Apply sets both modes on the GL state.
func (r RenderModes) Apply() {
	r.Cull.Apply()
	r.Polygon.Apply()
}

// Controls draws combos for both modes.
func (r *RenderModes) Controls() {
	cull := int32(r.Cull)
	if imgui.ComboStrarr("Cull mode", &cull, []string{
		renderer.CullDisabled.String(), renderer.CullBack.String(), renderer.CullFront.String(),
	}, 3) {
		r.Cull = renderer.CullMode(cull)
	}
	poly := int32(r.Polygon)
	if imgui.ComboStrarr("Polygon mode", &poly, []string{
		renderer.PolygonFill.String(), renderer.PolygonLine.String(), renderer.PolygonPoint.String(),
	}, 3) {
		r.Polygon = renderer.PolygonMode(poly)
	}
}

// SkyboxSelector cycles the skybox programs.
type SkyboxSelector struct {
	Index int32
}

// Controls draws the selector and returns the chosen program when it changed.
func (s *SkyboxSelector) Controls(m *shader.Manager) (*shader.Program, bool) {
	names := m.Names(SkyboxPrefix)
	if len(names) == 0 {
		return nil, false
	}
	if imgui.ComboStrarr("Skybox shader", &s.Index, names, int32(len(names))) {
		return m.Select(SkyboxPrefix, int(s.Index)), true
	}
	return nil, false
}
