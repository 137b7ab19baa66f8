// Package particles runs a snow particle system on the GPU through
// transform feedback, with a CPU model of the same update rule.
package particles

import (
	"math/rand/v2"
	"unsafe"

	"github.com/Faultbox/bonobo-labs/pkg/math"
)

// Particle is one interleaved vertex of the particle buffers.
// The field order matches the feedback varyings.
type Particle struct {
	Position [3]float32
	Velocity [3]float32
	Color    [4]float32
	Lifetime float32
}

// Stride is the size of one Particle in bytes.
const Stride = int32(unsafe.Sizeof(Particle{}))

// Varyings are the captured outputs of the update shader, in buffer order.
var Varyings = []string{"positionOut", "velocityOut", "colorOut", "lifetimeOut"}

// Byte offsets of the attributes inside a Particle.
const (
	offPosition = 0
	offVelocity = 12
	offColor    = 24
	offLifetime = 40
)

// Emitter describes where particles spawn and the forces acting on them.
type Emitter struct {
	Origin   math.Vec3
	Extent   math.Vec3 // half size of the spawn box
	Gravity  math.Vec3
	Wind     math.Vec3
	Lifetime float32 // maximum lifetime in seconds
	Count    int
}

// Spawn returns a fresh particle somewhere inside the emitter box.
func Spawn(rng *rand.Rand, e Emitter) Particle {
	rx, ry, rz := rng.Float32(), rng.Float32(), rng.Float32()
	pos := math.Vec3{
		X: e.Origin.X + (rx*2-1)*e.Extent.X,
		Y: e.Origin.Y + (ry*2-1)*e.Extent.Y,
		Z: e.Origin.Z + (rz*2-1)*e.Extent.Z,
	}
	return Particle{
		Position: pos.Array(),
		Velocity: [3]float32{0, -0.5 * rng.Float32(), 0},
		Color:    [4]float32{1, 1, 1, 0.6 + 0.4*rx},
		Lifetime: e.Lifetime * (0.5 + 0.5*ry),
	}
}

// Seed fills a fresh particle set. Lifetimes are staggered so the first
// respawns do not happen all at once.
func Seed(rng *rand.Rand, e Emitter) []Particle {
	ps := make([]Particle, e.Count)
	for i := range ps {
		ps[i] = Spawn(rng, e)
		ps[i].Lifetime *= rng.Float32()
	}
	return ps
}

// Simulate advances p by dt at time t, the same way the update shader does.
func Simulate(p *Particle, dt, t float32, e Emitter, rng *rand.Rand) {
	remaining := p.Lifetime - dt
	if remaining <= 0 {
		*p = Spawn(rng, e)
		return
	}

	pos := vec(p.Position)
	sway := e.Wind.Scale(math.Sin(t + pos.Y*0.3))
	v := vec(p.Velocity).Add(e.Gravity.Add(sway).Scale(dt))
	p.Position = pos.Add(v.Scale(dt)).Array()
	p.Velocity = v.Array()
	p.Lifetime = remaining
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
