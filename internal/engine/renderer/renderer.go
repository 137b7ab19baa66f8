// Package renderer provides OpenGL state helpers shared by the scenes.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/bonobo-labs/internal/logger"
)

// Init loads the GL function pointers and sets the default state.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("vendor", gl.GoStr(gl.GetString(gl.VENDOR))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)
	return nil
}

// Begin clears the bound target.
func Begin(width, height int32, r, g, b float32) {
	gl.Viewport(0, 0, width, height)
	gl.ClearDepthf(1)
	gl.ClearColor(r, g, b, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// CullMode selects which faces are discarded.
type CullMode int

// Cull modes in cycling order.
const (
	CullDisabled CullMode = iota
	CullBack
	CullFront
	cullModeCount
)

var cullNames = [...]string{"disabled", "back faces", "front faces"}

func (m CullMode) String() string {
	if m < 0 || m >= cullModeCount {
		return fmt.Sprintf("CullMode(%d)", int(m))
	}
	return cullNames[m]
}

// Next returns the following mode, wrapping around.
func (m CullMode) Next() CullMode { return (m + 1) % cullModeCount }

// Apply sets the GL state for m.
func (m CullMode) Apply() {
	switch m {
	case CullBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Disable(gl.CULL_FACE)
	}
}

// PolygonMode selects how polygons are rasterized.
type PolygonMode int

// Polygon modes in cycling order.
const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint
	polygonModeCount
)

var polygonNames = [...]string{"fill", "line", "point"}

func (m PolygonMode) String() string {
	if m < 0 || m >= polygonModeCount {
		return fmt.Sprintf("PolygonMode(%d)", int(m))
	}
	return polygonNames[m]
}

// Next returns the following mode, wrapping around.
func (m PolygonMode) Next() PolygonMode { return (m + 1) % polygonModeCount }

// Apply sets the GL state for m.
func (m PolygonMode) Apply() {
	switch m {
	case PolygonLine:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	case PolygonPoint:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.POINT)
		gl.PointSize(3)
	default:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Reset restores fill mode and disables culling, the state the UI expects.
func Reset() {
	PolygonFill.Apply()
	CullDisabled.Apply()
}
