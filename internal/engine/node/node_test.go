package node

import (
	"testing"

	"github.com/Faultbox/bonobo-labs/pkg/math"
)

func TestTransformMatrix(t *testing.T) {
	tr := Identity()
	tr.Translate(math.Vec3{X: 1, Y: 2, Z: 3})
	tr.SetScale(2)
	tr.Rotate(math.Vec3{Y: math.HalfPi})

	got := tr.Matrix().TransformPoint(math.Vec3{X: 1})
	// Scaled to (2,0,0), rotated to (0,0,-2), then translated.
	want := math.Vec3{X: 1, Y: 2, Z: 1}
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("TransformPoint() = %v, want %v", got, want)
	}
}

func TestHierarchy(t *testing.T) {
	ship := New("ship")
	ship.Transform.Translate(math.Vec3{Z: -5})

	ring := New("ring")
	ring.Transform.Translate(math.Vec3{Y: 1})
	ship.AddChild(ring)

	if len(ship.Children()) != 1 {
		t.Fatalf("children = %d", len(ship.Children()))
	}
	parent := ship.World(math.Translate(10, 0, 0))
	world := ring.World(parent)
	if got := world.Translation(); !got.ApproxEqual(math.Vec3{X: 10, Y: 1, Z: -5}, 1e-6) {
		t.Errorf("child translation = %v", got)
	}
}

func TestAddTextureReplaces(t *testing.T) {
	n := New("asteroid")
	n.AddTexture("diffuse_texture", 1, 0x0DE1)
	n.AddTexture("normal_texture", 2, 0x0DE1)
	n.AddTexture("diffuse_texture", 3, 0x0DE1)

	tex := n.Textures()
	if len(tex) != 2 {
		t.Fatalf("textures = %d, want 2", len(tex))
	}
	if tex[0].ID != 3 || tex[1].Name != "normal_texture" {
		t.Errorf("textures = %+v", tex)
	}
}

func TestRenderWithoutGeometryIsNoop(t *testing.T) {
	// No mesh and no program: nothing reaches GL.
	n := New("empty")
	n.AddChild(New("child"))
	n.Render(math.Identity(), math.Identity())
}
