// Package framework is the harness shared by the lab executables: window,
// camera, input, shader programs and the global key bindings.
package framework

import (
	"errors"
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/bonobo-labs/internal/assets"
	"github.com/Faultbox/bonobo-labs/internal/config"
	"github.com/Faultbox/bonobo-labs/internal/engine/camera"
	"github.com/Faultbox/bonobo-labs/internal/engine/debug"
	"github.com/Faultbox/bonobo-labs/internal/engine/framebuffer"
	"github.com/Faultbox/bonobo-labs/internal/engine/input"
	"github.com/Faultbox/bonobo-labs/internal/engine/renderer"
	"github.com/Faultbox/bonobo-labs/internal/engine/shader"
	"github.com/Faultbox/bonobo-labs/internal/engine/ui"
	"github.com/Faultbox/bonobo-labs/internal/logger"
	"github.com/Faultbox/bonobo-labs/pkg/math"
)

// ErrNoScene is returned by Run when given a nil scene.
var ErrNoScene = errors.New("framework: no scene")

// maxFrameTime caps dt after stalls such as window drags.
const maxFrameTime = 0.1

// Scene is one assignment running inside the App.
type Scene interface {
	Init(app *App) error
	Update(app *App, dt float32)
	Render(app *App)
	// Controls draws the scene's GUI panels; only called while the GUI is shown.
	Controls(app *App)
	Close()
}

// Overlayer is implemented by scenes drawing UI that stays visible while
// the GUI is hidden, such as a HUD.
type Overlayer interface {
	Overlay(app *App)
}

// App owns the resources shared by every scene.
type App struct {
	Config *config.Config
	Title  string

	Backend *ui.Backend
	Input   *input.State
	Camera  *camera.FPSCamera
	Assets  *assets.Manager
	Shaders *shader.Manager
	Basis   *renderer.Basis

	ShowGUI   bool
	ShowLogs  bool
	ShowBasis bool

	BasisThickness float32
	BasisLength    float32
	ClearColor     [3]float32

	// Elapsed is the time since Run started, in seconds.
	Elapsed float32

	target      *framebuffer.Framebuffer
	shaderFS    *assets.Manager
	watcher     *shader.Watcher
	logView     *ui.LogView
	screenshots *debug.ScreenshotCapture

	scene        Scene
	lastFrame    time.Time
	reloadFailed bool
}

// New creates an App from cfg. Nothing touches the GPU until Run.
func New(cfg *config.Config, title string) *App {
	c := cfg.Camera
	cam := camera.NewFPSCamera(math.Radians(c.FOV), float32(cfg.Graphics.Width)/float32(cfg.Graphics.Height), c.Near, c.Far)
	cam.MouseSensitivity = c.MouseSensitivity
	cam.MoveSpeed = c.MoveSpeed

	return &App{
		Config:         cfg,
		Title:          title,
		Input:          &input.State{},
		Camera:         cam,
		ShowGUI:        cfg.Graphics.ShowGUI,
		ShowLogs:       cfg.Graphics.ShowLogs,
		ShowBasis:      cfg.Graphics.ShowBasis,
		BasisThickness: 0.05,
		BasisLength:    2,
		logView:        ui.NewLogView(logger.History),
		screenshots:    debug.NewScreenshotCapture(cfg.Resources.ScreenshotDir, title),
	}
}

// Run opens the window, initializes scene and drives the frame loop until
// the window closes. Start-up failures are returned.
func (a *App) Run(scene Scene) (err error) {
	if scene == nil {
		return ErrNoScene
	}
	g := a.Config.Graphics
	a.Backend, err = ui.NewBackend(ui.WindowOptions{
		Title:      a.Title,
		Width:      g.Width,
		Height:     g.Height,
		Fullscreen: g.Fullscreen,
		FPSLimit:   g.FPSLimit,
	})
	if err != nil {
		return err
	}

	defer a.Backend.Close()

	// OpenGL context exists once the window does.
	if err := renderer.Init(); err != nil {
		return err
	}

	defer a.teardown()
	if err := a.setup(); err != nil {
		return err
	}

	closeScene, err := startScene(a, scene)
	if err != nil {
		return err
	}
	defer closeScene()
	a.scene = scene

	logger.Info("entering main loop", zap.String("title", a.Title))
	a.lastFrame = time.Now()
	a.Backend.Run(a.frame)
	return nil
}

// startScene runs scene.Init and returns the matching Close. Scenes are
// closed even when Init fails part way, so they release whatever they
// uploaded before the error.
func startScene(a *App, scene Scene) (func(), error) {
	if err := scene.Init(a); err != nil {
		scene.Close()
		return nil, fmt.Errorf("init scene: %w", err)
	}
	return scene.Close, nil
}

func (a *App) setup() error {
	res := a.Config.Resources

	a.shaderFS = assets.NewManager()
	a.shaderFS.AddFS("embedded", assets.Shaders())
	if res.ShaderDir != "" {
		if err := a.shaderFS.AddDir(res.ShaderDir); err != nil {
			return err
		}
		if res.WatchShaders {
			w, err := shader.NewWatcher(res.ShaderDir)
			if err != nil {
				logger.Warn("shader hot reload disabled", zap.Error(err))
			} else {
				a.watcher = w
			}
		}
	}
	a.Shaders = shader.NewManager(a.shaderFS, nil)

	a.Assets = assets.NewManager()
	if err := a.Assets.AddDir(res.AssetDir); err != nil {
		logger.Warn("asset directory unavailable, scenes run untextured", zap.Error(err))
	}

	var err error
	if a.Basis, err = renderer.NewBasis(a.Shaders); err != nil {
		return err
	}

	w, h := a.Backend.DisplaySize()
	if a.target, err = framebuffer.New(w, h); err != nil {
		return err
	}
	return nil
}

func (a *App) teardown() {
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.target != nil {
		a.target.Destroy()
	}
	if a.Basis != nil {
		a.Basis.Destroy()
	}
	if a.Shaders != nil {
		a.Shaders.Close()
	}
	if a.Assets != nil {
		a.Assets.Close()
	}
	if a.shaderFS != nil {
		a.shaderFS.Close()
	}
}

func (a *App) frame() {
	now := time.Now()
	dt := float32(min(now.Sub(a.lastFrame).Seconds(), maxFrameTime))
	a.lastFrame = now
	a.Elapsed += dt

	a.Input.Update(ui.Source{})

	screenshot := false
	pending := a.watcher != nil && a.watcher.Pending()
	for _, act := range Actions(a.Input, pending) {
		switch act {
		case ActionReloadShaders:
			a.ReloadShaders()
		case ActionToggleGUI:
			a.ShowGUI = !a.ShowGUI
		case ActionToggleLogs:
			a.ShowLogs = !a.ShowLogs
		case ActionToggleFullscreen:
			a.Backend.ToggleFullscreen()
		case ActionScreenshot:
			screenshot = true
		case ActionQuit:
			a.Backend.Close()
		}
	}

	if a.target.Resize(ui.FramebufferSize()) {
		w, h := a.target.Size()
		logger.Debug("scene target resized", zap.Int32("width", w), zap.Int32("height", h))
	}
	a.Camera.Aspect = a.target.Aspect()

	a.scene.Update(a, dt)

	if !a.reloadFailed {
		a.target.Bind()
		w, h := a.target.Size()
		renderer.Begin(w, h, a.ClearColor[0], a.ClearColor[1], a.ClearColor[2])
		a.scene.Render(a)
		renderer.Reset()
		a.target.Unbind()

		if screenshot {
			a.saveScreenshot()
		}
	}

	ui.DrawSceneTexture(a.target.ColorTexture())
	if a.reloadFailed {
		a.drawReloadError()
	}
	if o, ok := a.scene.(Overlayer); ok {
		o.Overlay(a)
	}
	if a.ShowGUI {
		a.controls()
		a.scene.Controls(a)
	}
	if a.ShowLogs {
		a.logView.Draw(&a.ShowLogs)
	}
	if a.Config.Game.ShowFPS {
		ui.FPS()
	}
}

// ReloadShaders recompiles every program. While the last reload failed the
// scene is not rendered.
func (a *App) ReloadShaders() {
	err := a.Shaders.ReloadAll()
	a.reloadFailed = err != nil
	if err != nil {
		ui.NotifyError("Shader reload failed", "%v", err)
	}
}

// RenderingSuspended reports whether the last shader reload failed.
func (a *App) RenderingSuspended() bool {
	return a.reloadFailed
}

// RenderBasis draws the world axes when enabled.
func (a *App) RenderBasis(worldToClip math.Mat4) {
	if a.ShowBasis {
		a.Basis.Render(worldToClip, math.Identity(), a.BasisThickness, a.BasisLength)
	}
}

// TargetSize returns the size of the scene render target.
func (a *App) TargetSize() (int32, int32) {
	return a.target.Size()
}

func (a *App) saveScreenshot() {
	path, err := a.screenshots.Capture(a.target.ReadImage())
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (a *App) drawReloadError() {
	work := imgui.MainViewport().WorkSize()
	ui.Overlay("##reload_error", imgui.NewVec2(work.X/2, work.Y/2), imgui.NewVec2(0.5, 0.5), func() {
		imgui.TextColored(imgui.NewVec4(1, 0.35, 0.35, 1), "Shader reload failed, rendering suspended.")
		imgui.Text("Fix the shader and press R to try again.")
		if err := a.Shaders.LastError(); err != nil {
			for _, line := range splitErrors(err) {
				imgui.TextWrapped(line)
			}
		}
	})
}

func splitErrors(err error) []string {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var lines []string
		for _, e := range j.Unwrap() {
			lines = append(lines, splitErrors(e)...)
		}
		return lines
	}
	return []string{err.Error()}
}

func (a *App) controls() {
	if !ui.BeginPanel("Framework", 0, nil) {
		imgui.End()
		return
	}
	if imgui.Button("Reload shaders (R)") {
		a.ReloadShaders()
	}
	fullscreen := a.Backend.Fullscreen()
	if imgui.Checkbox("Fullscreen (F11)", &fullscreen) {
		a.Backend.SetFullscreen(fullscreen)
	}
	imgui.Checkbox("Show logs (F3)", &a.ShowLogs)
	imgui.Separator()
	imgui.Checkbox("Show basis", &a.ShowBasis)
	imgui.SliderFloatV("Basis thickness", &a.BasisThickness, 0.001, 10, "%.1f", imgui.SliderFlagsLogarithmic)
	imgui.SliderFloatV("Basis length", &a.BasisLength, 0.1, 500, "%.1f", imgui.SliderFlagsLogarithmic)
	imgui.Separator()
	p := a.Camera.Position()
	imgui.Text(fmt.Sprintf("Camera: %.1f %.1f %.1f", p.X, p.Y, p.Z))
	if imgui.Button("Save settings") {
		a.saveSettings()
	}
	imgui.End()
}

// saveSettings persists the display toggles to the user config file.
func (a *App) saveSettings() {
	g := &a.Config.Graphics
	g.Fullscreen = a.Backend.Fullscreen()
	g.ShowGUI = a.ShowGUI
	g.ShowLogs = a.ShowLogs
	g.ShowBasis = a.ShowBasis
	path, err := a.Config.Save()
	if err != nil {
		logger.Error("saving settings failed", zap.Error(err))
		return
	}
	logger.Info("settings saved", zap.String("path", path))
}
