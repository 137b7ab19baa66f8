package asteroids

import (
	"math/rand/v2"

	"github.com/Faultbox/bonobo-labs/pkg/math"
)

// spawnClearance keeps new asteroids away from the ship at the start of a
// round.
const spawnClearance = 20

// ShipOffset places the ship relative to the camera frame.
var ShipOffset = math.Vec3{X: 0, Y: -1, Z: -5}

// ShipWorld returns the ship transform for a camera world matrix.
func ShipWorld(cameraWorld math.Mat4) math.Mat4 {
	return cameraWorld.Mul(math.TranslateVec(ShipOffset))
}

// World is the simulated state of one round.
type World struct {
	ShipPosition math.Vec3
	ShipRadius   float32
	Health       float32

	Positions  []math.Vec3
	Velocities []math.Vec3
	Radii      []float32

	Boundary     float32 // half extent of the play cube
	Elapsed      float32 // survival time in seconds
	Invulnerable float32 // remaining seconds without damage
	Hits         int
}

// Count returns the number of asteroids.
func (w *World) Count() int { return len(w.Positions) }

// reset fills the world for a new round.
func (w *World) reset(cfg Config, rng *rand.Rand, ship math.Vec3) {
	n := cfg.AsteroidCount
	w.ShipPosition = ship
	w.ShipRadius = cfg.ShipRadius
	w.Health = cfg.StartHealth
	w.Boundary = cfg.Boundary
	w.Elapsed = 0
	w.Invulnerable = 0
	w.Hits = 0
	w.Positions = make([]math.Vec3, n)
	w.Velocities = make([]math.Vec3, n)
	w.Radii = make([]float32, n)

	for i := range n {
		w.Positions[i] = spawnPosition(rng, cfg.Boundary, ship)
		w.Velocities[i] = randomDirection(rng).Scale(cfg.AsteroidSpeed * (0.5 + 0.5*rng.Float32()))
		w.Radii[i] = cfg.AsteroidRadius
	}
}

func spawnPosition(rng *rand.Rand, b float32, ship math.Vec3) math.Vec3 {
	clearance := min(spawnClearance, b/2)
	for {
		p := math.Vec3{
			X: (rng.Float32()*2 - 1) * b,
			Y: (rng.Float32()*2 - 1) * b,
			Z: (rng.Float32()*2 - 1) * b,
		}
		if p.Distance(ship) >= clearance {
			return p
		}
	}
}

func randomDirection(rng *rand.Rand) math.Vec3 {
	for {
		d := math.Vec3{X: rng.Float32()*2 - 1, Y: rng.Float32()*2 - 1, Z: rng.Float32()*2 - 1}
		if l := d.Length(); l > 1e-3 && l <= 1 {
			return d.Scale(1 / l)
		}
	}
}

// integrate moves every asteroid and bounces it off the play cube.
func (w *World) integrate(dt float32) {
	for i := range w.Positions {
		p := w.Positions[i].Add(w.Velocities[i].Scale(dt))
		v := w.Velocities[i]
		p.X, v.X = bounce(p.X, v.X, w.Boundary)
		p.Y, v.Y = bounce(p.Y, v.Y, w.Boundary)
		p.Z, v.Z = bounce(p.Z, v.Z, w.Boundary)
		w.Positions[i], w.Velocities[i] = p, v
	}
}

// bounce clamps p to [-b, b] and points v back inside when p left it.
func bounce(p, v, b float32) (float32, float32) {
	switch {
	case p > b:
		return b, -math.Abs(v)
	case p < -b:
		return -b, math.Abs(v)
	}
	return p, v
}

// deflect reflects the velocity of asteroid i away from the ship.
func (w *World) deflect(i int) {
	n := w.Positions[i].Sub(w.ShipPosition)
	if n.Length() < 1e-6 {
		w.Velocities[i] = w.Velocities[i].Negate()
		return
	}
	n = n.Normalize()
	v := w.Velocities[i]
	if d := v.Dot(n); d < 0 {
		w.Velocities[i] = v.Sub(n.Scale(2 * d))
	}
}
