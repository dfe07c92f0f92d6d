package scene

import (
	"arena-sim/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// ringGap is how far the selection ring sits outside the disc edge; ringWidth is its stroke.
	ringGap      = 2
	ringWidth    = 2
	ringSegments = 48
)

var (
	// Reused every frame to avoid per-frame color allocations.
	arenaColor = rl.NewColor(24, 24, 28, 255)
	ringColor  = rl.Yellow
)

// Scene draws the arena and its bodies. It implements physics.Renderer so World.Tick can hand
// over each body right after updating it.
type Scene struct {
	arena physics.Arena
}

// New returns a scene for the given arena.
func New(arena physics.Arena) *Scene {
	return &Scene{arena: arena}
}

// DrawArena fills the arena rectangle. Call inside the arena camera before the tick.
func (s *Scene) DrawArena() {
	rl.DrawRectangle(0, 0, int32(s.arena.Width), int32(s.arena.Height), arenaColor)
}

// DrawBody draws b as a filled disc and, when selected, a yellow ring just outside it.
func (s *Scene) DrawBody(b *physics.Body, selected bool) {
	center := rl.NewVector2(float32(b.Pos[0]), float32(b.Pos[1]))
	r := float32(b.Radius)
	rl.DrawCircleV(center, r, b.Color)
	if selected {
		mid := r + ringGap
		rl.DrawRing(center, mid-ringWidth/2, mid+ringWidth/2, 0, 360, ringSegments, ringColor)
	}
}
