package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jinzhu/copier"
)

const (
	// DragVelocityScale converts one pointer displacement sample into the held body's velocity.
	DragVelocityScale = 2.0
	// ThrowBoost multiplies the held body's velocity when the pointer is released.
	ThrowBoost = 1.5
)

// Arena is the fixed rectangle [0,Width]×[0,Height] the bodies bounce inside.
type Arena struct {
	Width  float64
	Height float64
}

// Renderer draws one body. Tick calls it once per body, right after that body's update.
type Renderer interface {
	DrawBody(b *Body, selected bool)
}

// World owns the bodies and the pointer interaction state and runs one frame per Tick.
// It is not safe for concurrent use; input and ticks are expected on the same goroutine.
type World struct {
	arena       Arena
	bodies      []*Body
	hold        Hold
	lastPointer mgl64.Vec2
	frame       uint64
}

// NewWorld returns a world over the given bodies. Body order is kept for iteration and hit-testing.
func NewWorld(arena Arena, bodies []*Body) *World {
	return &World{
		arena:  arena,
		bodies: bodies,
	}
}

// Arena returns the world bounds.
func (w *World) Arena() Arena {
	return w.arena
}

// Bodies returns the live body slice. Callers must not add or remove entries.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Hold returns the current interaction state.
func (w *World) Hold() Hold {
	return w.hold
}

// Held returns the index of the held body and true while dragging.
func (w *World) Held() (int, bool) {
	return w.hold.Index()
}

// Frame returns the number of ticks run so far.
func (w *World) Frame() uint64 {
	return w.frame
}

// Tick runs one frame: every body updates in order and is drawn right after its update.
// r may be nil when nothing is displayed.
func (w *World) Tick(r Renderer) {
	for i, b := range w.bodies {
		b.Update(i, w.bodies, w.hold, w.arena)
		if r != nil {
			r.DrawBody(b, w.hold.Holds(i))
		}
	}
	w.frame++
}

// PointerDown grabs the first body, in order, that contains (x, y). Misses are ignored.
func (w *World) PointerDown(x, y float64) {
	p := mgl64.Vec2{x, y}
	for i, b := range w.bodies {
		if b.ContainsPoint(p) {
			w.hold = Dragging(i)
			w.lastPointer = p
			return
		}
	}
}

// PointerMove pins the held body to (x, y) and sets its velocity from the displacement since
// the previous pointer sample. Does nothing while idle.
func (w *World) PointerMove(x, y float64) {
	i, ok := w.hold.Index()
	if !ok {
		return
	}
	p := mgl64.Vec2{x, y}
	b := w.bodies[i]
	b.Pos = p
	b.Vel = p.Sub(w.lastPointer).Mul(DragVelocityScale)
	b.ClampVelocity()
	w.lastPointer = p
}

// PointerUp throws the held body, if any, and returns to idle.
func (w *World) PointerUp() {
	if i, ok := w.hold.Index(); ok {
		b := w.bodies[i]
		b.Vel = b.Vel.Mul(ThrowBoost)
		b.ClampVelocity()
	}
	w.hold = Idle()
}

// KineticEnergy returns the total kinetic energy of all bodies.
func (w *World) KineticEnergy() float64 {
	var sum float64
	for _, b := range w.bodies {
		sum += b.KineticEnergy()
	}
	return sum
}

// Snapshot returns a copy of every body's state that later ticks do not affect.
func (w *World) Snapshot() ([]Body, error) {
	out := make([]Body, len(w.bodies))
	for i, b := range w.bodies {
		if err := copier.Copy(&out[i], b); err != nil {
			return nil, fmt.Errorf("snapshot body %d: %w", i, err)
		}
	}
	return out, nil
}

// CheckFinite returns an error naming the first body with a NaN or infinite field.
func (w *World) CheckFinite() error {
	for i, b := range w.bodies {
		if !b.finite() {
			return fmt.Errorf("body %d: non-finite state pos=%v vel=%v", i, b.Pos, b.Vel)
		}
	}
	return nil
}
