// Package asteroids implements the asteroid avoidance game: a field of
// bouncing asteroids the ship must dodge until its health runs out.
package asteroids

import (
	"math/rand/v2"
	"time"

	"github.com/Faultbox/bonobo-labs/internal/config"
	"github.com/Faultbox/bonobo-labs/pkg/math"
)

// Phase is the state of the game loop.
type Phase int

// Phases in play order.
const (
	NewGame Phase = iota
	PlayGame
	EndGame
)

func (p Phase) String() string {
	switch p {
	case NewGame:
		return "NEW_GAME"
	case PlayGame:
		return "PLAY_GAME"
	case EndGame:
		return "END_GAME"
	default:
		return "UNKNOWN"
	}
}

// Config holds the tunables of a round.
type Config struct {
	AsteroidCount   int
	AsteroidRadius  float32
	AsteroidSpeed   float32
	ShipRadius      float32
	Boundary        float32
	StartHealth     float32
	HitDamage       float32
	Invulnerability float32 // seconds
	Seed            uint64
}

// FromGameConfig converts the file configuration.
func FromGameConfig(c config.GameConfig) Config {
	return Config{
		AsteroidCount:   c.AsteroidCount,
		AsteroidRadius:  c.AsteroidRadius,
		AsteroidSpeed:   c.AsteroidSpeed,
		ShipRadius:      c.ShipRadius,
		Boundary:        c.Boundary,
		StartHealth:     c.StartHealth,
		HitDamage:       c.HitDamage,
		Invulnerability: float32(c.Invulnerability.Seconds()),
		Seed:            c.Seed,
	}
}

// Overlaps reports whether two spheres' bounding boxes intersect: every
// axis distance is below the sum of the radii.
func Overlaps(p1, p2 math.Vec3, r1, r2 float32) bool {
	r := r1 + r2
	return math.Abs(p1.X-p2.X) < r &&
		math.Abs(p1.Y-p2.Y) < r &&
		math.Abs(p1.Z-p2.Z) < r
}

// ClampToBounds keeps p inside the cube of half extent b.
func ClampToBounds(p math.Vec3, b float32) math.Vec3 {
	return p.Clamp(-b, b)
}

// Game drives the NEW_GAME, PLAY_GAME and END_GAME phases.
type Game struct {
	cfg   Config
	seed  uint64
	round uint64
	phase Phase
	world World
	best  float32

	// OnHit is called when asteroid index hits the ship.
	OnHit func(index int, health float32)
	// OnGameOver is called once when health is depleted.
	OnGameOver func(survived float32)
}

// New creates a game waiting in NEW_GAME. A zero seed picks one from the clock.
func New(cfg Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Game{cfg: cfg, seed: seed, phase: NewGame}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// World returns the simulated state. It stays valid until the next round starts.
func (g *Game) World() *World { return &g.world }

// Config returns the round settings.
func (g *Game) Config() Config { return g.cfg }

// Best returns the longest survival time so far.
func (g *Game) Best() float32 { return g.best }

// Round returns how many rounds were started.
func (g *Game) Round() uint64 { return g.round }

// Step advances the game by dt with the ship at ship.
func (g *Game) Step(dt float32, ship math.Vec3) {
	switch g.phase {
	case NewGame:
		g.round++
		rng := rand.New(rand.NewPCG(g.seed, g.round))
		g.world.reset(g.cfg, rng, ship)
		g.phase = PlayGame

	case PlayGame:
		g.play(dt, ship)

	case EndGame:
		// frozen until Restart
	}
}

func (g *Game) play(dt float32, ship math.Vec3) {
	w := &g.world
	w.ShipPosition = ship
	w.Elapsed += dt
	w.Invulnerable = max(w.Invulnerable-dt, 0)
	w.integrate(dt)

	if w.Invulnerable > 0 {
		return
	}
	for i := range w.Positions {
		if !Overlaps(ship, w.Positions[i], w.ShipRadius, w.Radii[i]) {
			continue
		}
		w.Health -= g.cfg.HitDamage
		w.Hits++
		w.Invulnerable = g.cfg.Invulnerability
		w.deflect(i)
		if g.OnHit != nil {
			g.OnHit(i, w.Health)
		}
		if w.Health <= 0 {
			w.Health = 0
			g.phase = EndGame
			g.best = max(g.best, w.Elapsed)
			if g.OnGameOver != nil {
				g.OnGameOver(w.Elapsed)
			}
		}
		return
	}
}

// Restart leaves END_GAME; the next Step starts a new round.
func (g *Game) Restart() {
	g.phase = NewGame
}
