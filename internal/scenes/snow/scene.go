// Package snow is the snow project scene: an animated water surface under a
// beach skybox with snow falling through a transform feedback particle system.
package snow

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/bonobo-labs/internal/config"
	"github.com/Faultbox/bonobo-labs/internal/engine/camera"
	"github.com/Faultbox/bonobo-labs/internal/engine/input"
	"github.com/Faultbox/bonobo-labs/internal/engine/mesh"
	"github.com/Faultbox/bonobo-labs/internal/engine/node"
	"github.com/Faultbox/bonobo-labs/internal/engine/particles"
	"github.com/Faultbox/bonobo-labs/internal/engine/renderer"
	"github.com/Faultbox/bonobo-labs/internal/engine/shader"
	"github.com/Faultbox/bonobo-labs/internal/engine/texture"
	"github.com/Faultbox/bonobo-labs/internal/engine/ui"
	"github.com/Faultbox/bonobo-labs/internal/engine/water"
	"github.com/Faultbox/bonobo-labs/internal/framework"
	"github.com/Faultbox/bonobo-labs/internal/logger"
	"github.com/Faultbox/bonobo-labs/internal/scenes"
	"github.com/Faultbox/bonobo-labs/pkg/math"
	"github.com/Faultbox/bonobo-labs/pkg/shapes"
)

// eyeClearance is the minimum camera height above the water surface.
const eyeClearance = 0.5

var (
	startPosition = math.Vec3{X: -40, Y: 14, Z: 6}
	lightPosition = math.Vec3{X: -2, Y: 4, Z: 2}
)

// Scene implements framework.Scene.
type Scene struct {
	cfg config.SnowConfig

	meshes   []*mesh.Mesh
	textures []uint32

	skybox  *node.Node
	water   *node.Node
	surface *water.Surface
	snow    *particles.System
	rng     *rand.Rand

	orbit    *camera.OrbitCamera
	useOrbit bool
	spin     bool

	waveSpeed     float32
	waveAmplitude float32
	paused        bool
	t             float32
	dt            float32

	skyboxSelect scenes.SkyboxSelector
	modes        scenes.RenderModes
}

// New creates the scene; GPU resources are created in Init.
func New() *Scene {
	return &Scene{}
}

// Emitter derives the snow emitter from the scene settings. Snow spawns in
// a slab above the water.
func Emitter(c config.SnowConfig) particles.Emitter {
	return particles.Emitter{
		Origin:   math.Vec3{Y: 30},
		Extent:   math.Vec3{X: c.QuadSize / 2, Y: 5, Z: c.QuadSize / 2},
		Gravity:  math.Vec3{Y: c.Gravity},
		Wind:     math.Vec3{X: c.Wind, Z: c.Wind / 2},
		Lifetime: c.Lifetime,
		Count:    c.Particles,
	}
}

// Init implements framework.Scene.
func (s *Scene) Init(app *framework.App) error {
	s.cfg = app.Config.Snow
	s.waveSpeed = s.cfg.WaveSpeed
	s.waveAmplitude = s.cfg.WaveAmplitude
	s.surface = water.NewSurface(0, s.waveSpeed, s.waveAmplitude)

	if err := scenes.RegisterSkyboxPrograms(app.Shaders); err != nil {
		return err
	}
	waterProgram, err := app.Shaders.CreateAndRegister("water", shader.Files{Vertex: "water.vert", Fragment: "water.frag"})
	if err != nil {
		return err
	}
	update, err := app.Shaders.CreateAndRegister("particle_update", shader.Files{
		Vertex:   "particle_update.vert",
		Fragment: "particle_update.frag",
		Varyings: particles.Varyings,
	})
	if err != nil {
		return err
	}
	render, err := app.Shaders.CreateAndRegister("particle_render", shader.Files{
		Vertex:   "particle_render.vert",
		Fragment: "particle_render.frag",
	})
	if err != nil {
		return err
	}

	skyMD, err := shapes.Sphere(s.cfg.SkyboxRadius, 100, 100)
	if err != nil {
		return fmt.Errorf("skybox: %w", err)
	}
	quadMD, err := shapes.Quad(s.cfg.QuadSize, s.cfg.QuadSize, s.cfg.QuadSplits, s.cfg.QuadSplits)
	if err != nil {
		return fmt.Errorf("water: %w", err)
	}
	skyMesh, err := s.upload("skybox", skyMD)
	if err != nil {
		return err
	}
	quadMesh, err := s.upload("water", quadMD)
	if err != nil {
		return err
	}

	cubemap := scenes.LoadCubeMap(app, s.cfg.Skybox)
	if cubemap != 0 {
		s.textures = append(s.textures, cubemap)
	}

	s.skybox = node.New("skybox")
	s.skybox.SetGeometry(skyMesh)
	s.skybox.SetProgram(app.Shaders.Select(scenes.SkyboxPrefix, 0), s.lightUniforms)

	s.water = node.New("water")
	s.water.SetGeometry(quadMesh)
	s.water.SetProgram(waterProgram, s.waterUniforms(app))
	s.water.Transform.Translate(math.Vec3{X: -s.cfg.QuadSize / 2, Z: -s.cfg.QuadSize / 2})
	if cubemap != 0 {
		s.skybox.AddTexture("skybox_texture", cubemap, gl.TEXTURE_CUBE_MAP)
		s.water.AddTexture("skybox_texture", cubemap, gl.TEXTURE_CUBE_MAP)
	}

	s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	emitter := Emitter(s.cfg)
	if s.snow, err = particles.NewSystem(update, render, emitter, particles.Seed(s.rng, emitter)); err != nil {
		return err
	}

	app.Camera.SetPosition(startPosition)
	app.Camera.LookAt(math.Vec3{})
	app.Camera.MoveSpeed = 5
	app.ClearColor = [3]float32{0.1, 0.1, 0.1}
	s.orbit = camera.NewOrbitCamera(app.Camera.Projection, startPosition, math.Vec3{})

	logger.Info("snow scene ready", zap.Int("particles", emitter.Count), zap.Int("water_splits", s.cfg.QuadSplits))
	return nil
}

func (s *Scene) upload(name string, md *shapes.MeshData) (*mesh.Mesh, error) {
	m, err := mesh.Upload(name, md)
	if err != nil {
		return nil, err
	}
	s.meshes = append(s.meshes, m)
	return m, nil
}

func (s *Scene) lightUniforms(program uint32) {
	scenes.SetVec3(program, "light_position", lightPosition)
}

func (s *Scene) waterUniforms(app *framework.App) node.UniformFunc {
	return func(program uint32) {
		scenes.SetVec3(program, "light_position", lightPosition)
		scenes.SetVec3(program, "camera_position", s.cameraPosition(app))
		scenes.SetFloat(program, "t", s.t)
		scenes.SetFloat(program, "wave_speed", s.waveSpeed)
		scenes.SetFloat(program, "wave_amplitude", s.waveAmplitude)
	}
}

func (s *Scene) cameraPosition(app *framework.App) math.Vec3 {
	if s.useOrbit {
		return s.orbit.Position()
	}
	return app.Camera.Position()
}

func (s *Scene) view(app *framework.App) (view, worldToClip math.Mat4) {
	if s.useOrbit {
		return s.orbit.ViewMatrix(), s.orbit.WorldToClip()
	}
	return app.Camera.ViewMatrix(), app.Camera.WorldToClip()
}

// BillboardAxes returns the world space right and up vectors of a view
// matrix, used to face particles towards the camera.
func BillboardAxes(view math.Mat4) (right, up math.Vec3) {
	right = math.Vec3{X: view[0], Y: view[4], Z: view[8]}
	up = math.Vec3{X: view[1], Y: view[5], Z: view[9]}
	return right, up
}

// Update implements framework.Scene.
func (s *Scene) Update(app *framework.App, dt float32) {
	in := app.Input
	if s.useOrbit {
		s.orbit.Aspect = app.Camera.Aspect
		if in.SceneMouseDown(input.MouseLeft) {
			s.orbit.HandleDrag(in.MouseDeltaX, in.MouseDeltaY)
		}
		if !in.MouseCaptured && in.Wheel != 0 {
			s.orbit.HandleZoom(in.Wheel)
		}
		if s.spin {
			s.orbit.Advance(dt)
		}
	} else {
		app.Camera.Update(dt, in)
		s.keepAboveWater(app)
	}

	if !in.KeyboardCaptured && in.JustPressed(input.KeyP) {
		s.paused = !s.paused
	}
	s.dt = 0
	if !s.paused {
		s.dt = dt
		s.t += dt
	}
}

// keepAboveWater lifts the free camera out of the waves while it is over
// the water quad.
func (s *Scene) keepAboveWater(app *framework.App) {
	s.surface.Speed = s.waveSpeed
	s.surface.Amplitude = s.waveAmplitude
	p := app.Camera.Position()
	half := s.cfg.QuadSize / 2
	if math.Abs(p.X) > half || math.Abs(p.Z) > half {
		return
	}
	if floor := s.surface.Height(p.X, p.Z, s.t) + eyeClearance; p.Y < floor {
		p.Y = floor
		app.Camera.SetPosition(p)
	}
}

// Render implements framework.Scene.
func (s *Scene) Render(app *framework.App) {
	view, worldToClip := s.view(app)
	identity := math.Identity()

	s.modes.Apply()
	s.skybox.Render(worldToClip, identity)
	s.water.Render(worldToClip, identity)

	// Billboards are drawn double sided and filled.
	renderer.Reset()
	s.snow.Update(s.dt)
	right, up := BillboardAxes(view)
	s.snow.Render(worldToClip, right, up)

	app.RenderBasis(worldToClip)
}

// Controls implements framework.Scene.
func (s *Scene) Controls(app *framework.App) {
	if !ui.BeginPanel("Scene Controls", 1, nil) {
		imgui.End()
		return
	}
	imgui.SliderFloatV("Wave speed", &s.waveSpeed, 0.1, 5, "%.2f", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Wave amplitude", &s.waveAmplitude, 0.1, 5, "%.2f", imgui.SliderFlagsNone)
	imgui.Checkbox("Pause animation (P)", &s.paused)
	imgui.Separator()

	imgui.SliderFloatV("Flake size", &s.snow.Size, 0.02, 1, "%.2f", imgui.SliderFlagsLogarithmic)
	imgui.SliderFloatV("Gravity", &s.snow.Emitter.Gravity.Y, -10, 0, "%.2f", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Wind", &s.snow.Emitter.Wind.X, 0, 5, "%.2f", imgui.SliderFlagsNone)
	if imgui.Button("Reset snow") {
		s.snow.Reset(particles.Seed(s.rng, s.snow.Emitter))
	}
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("%d flakes", s.snow.Count()))
	imgui.Separator()

	if imgui.Checkbox("Use orbit camera", &s.useOrbit) && s.useOrbit {
		s.orbit = camera.NewOrbitCamera(app.Camera.Projection, app.Camera.Position(), math.Vec3{})
	}
	if s.useOrbit {
		imgui.SameLine()
		imgui.Checkbox("Spin", &s.spin)
	}
	if p, changed := s.skyboxSelect.Controls(app.Shaders); changed && p != nil {
		s.skybox.SetProgram(p, s.lightUniforms)
	}
	s.modes.Controls()
	imgui.End()
}

// Close implements framework.Scene.
func (s *Scene) Close() {
	if s.snow != nil {
		s.snow.Destroy()
	}
	texture.Delete(s.textures...)
	for _, m := range s.meshes {
		m.Destroy()
	}
}
