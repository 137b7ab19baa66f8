// Package ui wraps the cimgui-go SDL backend: it owns the window and GL
// context, composites the scene texture and draws the overlay windows.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/bonobo-labs/internal/logger"
)

// WindowOptions configures the window created by NewBackend.
type WindowOptions struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	FPSLimit   int
}

// Backend owns the platform window.
type Backend struct {
	backend    backend.Backend[sdlbackend.SDLWindowFlags]
	title      string
	fullscreen bool
}

// NewBackend creates the window and its GL context.
func NewBackend(opts WindowOptions) (*Backend, error) {
	b := &Backend{title: opts.Title}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		imgui.StyleColorsDark()
		io := imgui.CurrentIO()
		io.SetIniFilename("")
	})

	b.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.backend.CreateWindow(opts.Title, opts.Width, opts.Height)
	if opts.FPSLimit > 0 {
		b.backend.SetTargetFPS(uint(opts.FPSLimit))
	}
	if opts.Fullscreen {
		b.SetFullscreen(true)
	}

	logger.Info("window created", zap.String("title", opts.Title),
		zap.Int("width", opts.Width), zap.Int("height", opts.Height))
	return b, nil
}

// Run starts the main loop; frame is called once per frame inside an
// ImGui frame.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// Close asks the main loop to exit after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.title = title
	b.backend.SetWindowTitle(title)
}

// Title returns the window title.
func (b *Backend) Title() string {
	return b.title
}

// Fullscreen reports whether the window covers the display.
func (b *Backend) Fullscreen() bool {
	return b.fullscreen
}

// SetFullscreen switches between fullscreen and windowed mode.
func (b *Backend) SetFullscreen(on bool) {
	v := 0
	if on {
		v = 1
	}
	b.backend.SetWindowFlags(sdlbackend.SDLWindowFlagsFullScreen, v)
	b.fullscreen = on
	logger.Debug("fullscreen", zap.Bool("enabled", on))
}

// ToggleFullscreen flips the fullscreen state.
func (b *Backend) ToggleFullscreen() {
	b.SetFullscreen(!b.fullscreen)
}

// DisplaySize returns the window size in logical pixels.
func (b *Backend) DisplaySize() (int32, int32) {
	return b.backend.DisplaySize()
}

// FramebufferSize returns the drawable size in physical pixels.
func FramebufferSize() (int32, int32) {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	return framebufferSize(size.X, size.Y, scale.X, scale.Y)
}

func framebufferSize(w, h, sx, sy float32) (int32, int32) {
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	return int32(w*sx + 0.5), int32(h*sy + 0.5)
}
