package physics

import (
	"image/color"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"
)

// InitialSpeedRange is the width of the uniform range each velocity axis starts in, centered on 0.
const InitialSpeedRange = 8.0

// DefaultArena is the reference 800×600 arena.
var DefaultArena = Arena{Width: 800, Height: 600}

type placement struct {
	x, y  float64
	color string
}

// defaultLayout is the built-in scene. Positions assume DefaultArena.
var defaultLayout = []placement{
	{100, 100, "red"},
	{700, 100, "blue"},
	{300, 500, "green"},
	{500, 300, "orange"},
	{200, 400, "white"},
	{600, 200, "green"},
	{400, 100, "green"},
	{150, 300, "green"},
	{650, 450, "green"},
}

// DefaultBodies builds the built-in scene with velocities drawn from rng.
func DefaultBodies(rng *rand.Rand) []*Body {
	bodies := make([]*Body, 0, len(defaultLayout))
	for _, p := range defaultLayout {
		b := NewBody(mgl64.Vec2{p.x, p.y}, DefaultRadius, ColorByName(p.color), DefaultRestitution)
		b.Vel = mgl64.Vec2{
			(rng.Float64() - 0.5) * InitialSpeedRange,
			(rng.Float64() - 0.5) * InitialSpeedRange,
		}
		b.ClampVelocity()
		bodies = append(bodies, b)
	}
	return bodies
}

// ColorByName resolves an SVG color name. Unknown names come back as white.
func ColorByName(name string) color.RGBA {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.White
}
