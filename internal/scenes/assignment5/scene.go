// Package assignment5 is the asteroid avoidance scene: a ship following the
// camera through a field of normal mapped asteroids inside a space skybox.
package assignment5

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/bonobo-labs/internal/engine/audio"
	"github.com/Faultbox/bonobo-labs/internal/engine/input"
	"github.com/Faultbox/bonobo-labs/internal/engine/mesh"
	"github.com/Faultbox/bonobo-labs/internal/engine/node"
	"github.com/Faultbox/bonobo-labs/internal/engine/shader"
	"github.com/Faultbox/bonobo-labs/internal/engine/texture"
	"github.com/Faultbox/bonobo-labs/internal/engine/ui"
	"github.com/Faultbox/bonobo-labs/internal/framework"
	"github.com/Faultbox/bonobo-labs/internal/game/asteroids"
	"github.com/Faultbox/bonobo-labs/internal/logger"
	"github.com/Faultbox/bonobo-labs/internal/scenes"
	"github.com/Faultbox/bonobo-labs/pkg/interp"
	"github.com/Faultbox/bonobo-labs/pkg/math"
	"github.com/Faultbox/bonobo-labs/pkg/shapes"
)

const skyboxRadius = 500

// Texture paths under the asset directory.
const (
	asteroidDiffuse = "asteroids/ground_0010_color_1k.jpg"
	asteroidNormal  = "asteroids/ground_0010_normal_opengl_1k.png"
	shipDiffuse     = "spaceship/metal_00139_diffuse.jpg"
	shipNormal      = "spaceship/metal_00139_normal.jpg"
)

// Scene implements framework.Scene.
type Scene struct {
	game     *asteroids.Game
	sound    *audio.Manager
	hitSound string

	meshes   []*mesh.Mesh
	textures []uint32

	skybox   *node.Node
	asteroid *node.Node
	ship     *node.Node

	lightPath     *interp.Path
	light         math.Vec3
	animateLight  bool
	linearLight   bool
	lightTime     float32
	normalMapping bool
	skyboxSelect  scenes.SkyboxSelector
	modes         scenes.RenderModes

	hitFlash float32
}

// New creates the scene; GPU resources are created in Init.
func New() *Scene {
	return &Scene{
		light:         math.Vec3{X: 250, Y: 250, Z: -250},
		normalMapping: true,
		lightPath: interp.NewPath(
			math.Vec3{X: 250, Y: 250, Z: -250},
			math.Vec3{X: -250, Y: 200, Z: -250},
			math.Vec3{X: -250, Y: 250, Z: 250},
			math.Vec3{X: 250, Y: 200, Z: 250},
		),
	}
}

// Init implements framework.Scene.
func (s *Scene) Init(app *framework.App) error {
	cfg := app.Config

	fallback, err := app.Shaders.CreateAndRegister("fallback", shader.Files{Vertex: "fallback.vert", Fragment: "fallback.frag"})
	if err != nil {
		return err
	}
	phong, err := app.Shaders.CreateAndRegister("phong", shader.Files{Vertex: "phong.vert", Fragment: "phong.frag"})
	if err != nil {
		logger.Error("phong program unavailable, using fallback", zap.Error(err))
		phong = fallback
	}
	if err := scenes.RegisterSkyboxPrograms(app.Shaders); err != nil {
		return err
	}

	skyMesh, err := s.upload("skybox", func() (*shapes.MeshData, error) { return shapes.Sphere(skyboxRadius, 200, 200) })
	if err != nil {
		return err
	}
	rockMesh, err := s.upload("asteroid", func() (*shapes.MeshData, error) {
		return shapes.Sphere(cfg.Game.AsteroidRadius, 40, 40)
	})
	if err != nil {
		return err
	}
	coreMesh, err := s.upload("ship core", func() (*shapes.MeshData, error) { return shapes.Sphere(0.5, 50, 50) })
	if err != nil {
		return err
	}
	ringMesh, err := s.upload("ship ring", func() (*shapes.MeshData, error) { return shapes.Torus(0.5, 0.2, 60, 30) })
	if err != nil {
		return err
	}

	s.skybox = node.New("skybox")
	s.skybox.SetGeometry(skyMesh)
	s.skybox.SetProgram(app.Shaders.Select(scenes.SkyboxPrefix, 0), s.lightUniforms)
	if tex := s.keep(scenes.LoadCubeMap(app, "Space")); tex != 0 {
		s.skybox.AddTexture("skybox_texture", tex, gl.TEXTURE_CUBE_MAP)
	}

	rock := scenes.DefaultMaterial
	rock.Specular = math.Vec3{X: 0.1, Y: 0.1, Z: 0.1}
	s.asteroid = node.New("asteroid")
	s.asteroid.SetGeometry(rockMesh)
	s.asteroid.SetProgram(phong, s.phongUniforms(rock, app))
	s.addTextures(app, s.asteroid, asteroidDiffuse, asteroidNormal)

	s.ship = node.New("ship")
	s.ship.SetGeometry(coreMesh)
	s.ship.SetProgram(fallback, nil)

	metal := scenes.DefaultMaterial
	metal.Shininess = 40
	ring := node.New("ship ring")
	ring.SetGeometry(ringMesh)
	ring.SetProgram(phong, s.phongUniforms(metal, app))
	s.addTextures(app, ring, shipDiffuse, shipNormal)
	s.ship.AddChild(ring)

	app.Camera.SetPosition(math.Vec3{Z: 6})
	app.ClearColor = [3]float32{0.1, 0.1, 0.1}

	s.game = asteroids.New(asteroids.FromGameConfig(cfg.Game))
	s.game.OnHit = s.onHit
	s.game.OnGameOver = func(survived float32) {
		logger.Info("game over", zap.Float32("survived", survived), zap.Int("hits", s.game.World().Hits))
	}

	s.initAudio(app)
	return nil
}

func (s *Scene) upload(name string, build func() (*shapes.MeshData, error)) (*mesh.Mesh, error) {
	md, err := build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	m, err := mesh.Upload(name, md)
	if err != nil {
		return nil, err
	}
	s.meshes = append(s.meshes, m)
	return m, nil
}

func (s *Scene) keep(tex uint32) uint32 {
	if tex != 0 {
		s.textures = append(s.textures, tex)
	}
	return tex
}

func (s *Scene) addTextures(app *framework.App, n *node.Node, diffuse, normal string) {
	if tex := s.keep(scenes.LoadTexture(app, diffuse)); tex != 0 {
		n.AddTexture("diffuse_texture", tex, gl.TEXTURE_2D)
	}
	if tex := s.keep(scenes.LoadTexture(app, normal)); tex != 0 {
		n.AddTexture("normal_texture", tex, gl.TEXTURE_2D)
	}
}

func (s *Scene) lightUniforms(program uint32) {
	scenes.SetVec3(program, "light_position", s.light)
}

func (s *Scene) phongUniforms(m scenes.Material, app *framework.App) node.UniformFunc {
	return func(program uint32) {
		m := m
		if s.hitFlash > 0 {
			m.Tint = math.Vec3{X: 1, Y: 1 - s.hitFlash, Z: 1 - s.hitFlash}
		}
		m.Apply(program)
		scenes.SetBool(program, "use_normal_mapping", s.normalMapping)
		scenes.SetVec3(program, "light_position", s.light)
		scenes.SetVec3(program, "camera_position", app.Camera.Position())
	}
}

func (s *Scene) initAudio(app *framework.App) {
	a := app.Config.Audio
	s.sound = audio.New(a)
	s.hitSound = a.HitSound
	if err := s.sound.Init(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
		return
	}
	for _, p := range []string{a.HitSound, a.Music} {
		if p == "" || !app.Assets.Exists(p) {
			continue
		}
		f, err := app.Assets.Open(p)
		if err != nil {
			logger.Warn("sound unavailable", zap.String("path", p), zap.Error(err))
			continue
		}
		if err := s.sound.LoadSound(p, f); err != nil {
			logger.Warn("sound unavailable", zap.String("path", p), zap.Error(err))
		}
		f.Close()
	}
	if s.sound.Has(a.Music) {
		if err := s.sound.PlayMusic(a.Music); err != nil {
			logger.Warn("music failed", zap.Error(err))
		}
	}
}

func (s *Scene) onHit(index int, health float32) {
	logger.Info("asteroid hit", zap.Int("asteroid", index), zap.Float32("health", health))
	s.hitFlash = 1
	if s.sound.Has(s.hitSound) {
		if err := s.sound.PlaySound(s.hitSound); err != nil {
			logger.Debug("hit sound failed", zap.Error(err))
		}
	}
}

// Update implements framework.Scene.
func (s *Scene) Update(app *framework.App, dt float32) {
	cam := app.Camera
	if s.game.Phase() == asteroids.PlayGame {
		cam.Update(dt, app.Input)
		cam.SetPosition(asteroids.ClampToBounds(cam.Position(), s.game.Config().Boundary))
	} else if s.game.Phase() == asteroids.EndGame && !app.Input.KeyboardCaptured &&
		app.Input.JustPressed(input.KeyEnter) {
		s.restart(app)
	}

	ship := asteroids.ShipWorld(cam.World()).Translation()
	s.game.Step(dt, ship)

	s.hitFlash = max(s.hitFlash-dt*2, 0)
	if s.animateLight {
		seconds := max(app.Config.Game.LightPathSeconds, 0.1)
		s.lightTime += dt / seconds
		s.light = s.lightPath.At(s.lightTime, s.linearLight)
	}
}

func (s *Scene) restart(app *framework.App) {
	app.Camera.SetPosition(math.Vec3{Z: 6})
	app.Camera.SetAngles(0, 0)
	s.game.Restart()
}

// Render implements framework.Scene.
func (s *Scene) Render(app *framework.App) {
	worldToClip := app.Camera.WorldToClip()
	identity := math.Identity()

	s.modes.Apply()
	s.skybox.Render(worldToClip, identity)

	w := s.game.World()
	for _, p := range w.Positions {
		s.asteroid.Render(worldToClip, math.TranslateVec(p))
	}
	s.ship.Render(worldToClip, asteroids.ShipWorld(app.Camera.World()))

	app.RenderBasis(worldToClip)
}

// Overlay implements framework.Overlayer; the HUD stays visible with the
// GUI hidden.
func (s *Scene) Overlay(app *framework.App) {
	s.hud()
	if s.game.Phase() == asteroids.EndGame {
		s.gameOver(app)
	}
}

// Controls implements framework.Scene.
func (s *Scene) Controls(app *framework.App) {
	if !ui.BeginPanel("Scene Controls", 1, nil) {
		imgui.End()
		return
	}
	if p, changed := s.skyboxSelect.Controls(app.Shaders); changed && p != nil {
		s.skybox.SetProgram(p, s.lightUniforms)
	}
	imgui.Checkbox("Use normal mapping", &s.normalMapping)
	imgui.Separator()
	imgui.Checkbox("Animate light", &s.animateLight)
	imgui.SameLine()
	imgui.Checkbox("Linear path", &s.linearLight)
	imgui.Text(fmt.Sprintf("Light: %.0f %.0f %.0f", s.light.X, s.light.Y, s.light.Z))
	imgui.Separator()
	s.modes.Controls()
	imgui.Separator()
	muted := s.sound.Muted()
	if imgui.Checkbox("Mute", &muted) {
		s.sound.SetMuted(muted)
	}
	master, music, sfx := s.sound.Volumes()
	m, mu, fx := float32(master), float32(music), float32(sfx)
	if imgui.SliderFloatV("Master volume", &m, 0, 1, "%.2f", imgui.SliderFlagsNone) {
		s.sound.SetMasterVolume(float64(m))
	}
	if imgui.SliderFloatV("Music volume", &mu, 0, 1, "%.2f", imgui.SliderFlagsNone) {
		s.sound.SetMusicVolume(float64(mu))
	}
	if imgui.SliderFloatV("Effects volume", &fx, 0, 1, "%.2f", imgui.SliderFlagsNone) {
		s.sound.SetSFXVolume(float64(fx))
	}
	imgui.Separator()
	if imgui.Button("New game") {
		s.restart(app)
	}
	imgui.End()
}

func (s *Scene) hud() {
	w := s.game.World()
	cfg := s.game.Config()
	ui.Overlay("##hud", imgui.NewVec2(10, imgui.MainViewport().WorkSize().Y-10), imgui.NewVec2(0, 1), func() {
		imgui.Text("State: " + s.game.Phase().String())
		frac := float32(0)
		if cfg.StartHealth > 0 {
			frac = w.Health / cfg.StartHealth
		}
		imgui.ProgressBarV(frac, imgui.NewVec2(200, 0), fmt.Sprintf("Health %.0f", w.Health))
		imgui.Text(fmt.Sprintf("Survived: %.1f s   Best: %.1f s", w.Elapsed, s.game.Best()))
		imgui.Text(fmt.Sprintf("Hits: %d", w.Hits))
	})
}

func (s *Scene) gameOver(app *framework.App) {
	work := imgui.MainViewport().WorkSize()
	imgui.SetNextWindowPosV(imgui.NewVec2(work.X/2, work.Y/2), imgui.CondAlways, imgui.NewVec2(0.5, 0.5))
	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove | imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoCollapse
	if imgui.BeginV("Game Over", nil, flags) {
		imgui.TextColored(imgui.NewVec4(1, 0.35, 0.35, 1), "Your ship was destroyed.")
		imgui.Text(fmt.Sprintf("You survived %.1f seconds.", s.game.World().Elapsed))
		imgui.Spacing()
		if imgui.ButtonV("Restart", imgui.NewVec2(120, 0)) {
			s.restart(app)
		}
		imgui.SameLine()
		imgui.TextDisabled("or press Enter")
	}
	imgui.End()
}

// Close implements framework.Scene.
func (s *Scene) Close() {
	if s.sound != nil {
		s.sound.Close()
	}
	texture.Delete(s.textures...)
	for _, m := range s.meshes {
		m.Destroy()
	}
}
