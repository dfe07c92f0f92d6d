package physics

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MaxVelocity is the speed limit enforced by ClampVelocity.
	MaxVelocity = 15.0
	// MinVelocity is the per-axis magnitude below which a velocity component snaps to zero.
	MinVelocity = 0.01
	// Damping is the multiplicative velocity drag applied once per frame.
	Damping = 0.99

	DefaultRadius      = 20.0
	DefaultRestitution = 0.8
)

// Body is a simulated disc. Radius doubles as mass; Color is only used for drawing.
// Velocity is in arena units per frame.
type Body struct {
	Pos         mgl64.Vec2
	Vel         mgl64.Vec2
	Radius      float64
	Color       color.RGBA
	Restitution float64
}

// NewBody returns a body at pos with zero velocity.
// A non-positive radius is replaced by DefaultRadius; restitution is clamped into [0,1].
func NewBody(pos mgl64.Vec2, radius float64, c color.RGBA, restitution float64) *Body {
	if radius <= 0 || math.IsNaN(radius) {
		radius = DefaultRadius
	}
	return &Body{
		Pos:         pos,
		Radius:      radius,
		Color:       c,
		Restitution: mgl64.Clamp(restitution, 0, 1),
	}
}

// Mass returns the body's inertia, which is its radius.
func (b *Body) Mass() float64 {
	return b.Radius
}

// ClampVelocity rescales the velocity so its length is at most MaxVelocity, keeping direction,
// then zeroes any axis whose magnitude is below MinVelocity.
// It is not applied automatically; call it after every direct write to Vel.
func (b *Body) ClampVelocity() {
	speed := b.Vel.Len()
	if speed > MaxVelocity {
		b.Vel = b.Vel.Mul(MaxVelocity / speed)
	}
	for i := range b.Vel {
		if math.Abs(b.Vel[i]) < MinVelocity {
			b.Vel[i] = 0
		}
	}
}

// ContainsPoint reports whether p lies inside or on the disc.
func (b *Body) ContainsPoint(p mgl64.Vec2) bool {
	d := b.Pos.Sub(p)
	return d.Dot(d) <= b.Radius*b.Radius
}

// Update advances the body by one frame. self is the body's index in bodies; the body that
// hold names is left untouched. Otherwise: damping, explicit Euler step, wall bounce per
// axis, clamp, and collision resolution against every other body in order.
func (b *Body) Update(self int, bodies []*Body, hold Hold, arena Arena) {
	if hold.Holds(self) {
		return
	}

	b.Vel = b.Vel.Mul(Damping)
	b.Pos = b.Pos.Add(b.Vel)

	b.bounce(0, arena.Width)
	b.bounce(1, arena.Height)
	b.ClampVelocity()

	for j, other := range bodies {
		if j == self {
			continue
		}
		b.ResolveCollision(other, false, hold.Holds(j))
	}
}

// bounce keeps axis i of the body inside [0,limit]. Only one side can be crossed per call.
func (b *Body) bounce(i int, limit float64) {
	switch {
	case b.Pos[i]-b.Radius < 0:
		b.Pos[i] = b.Radius
		b.Vel[i] = -b.Vel[i] * b.Restitution
	case b.Pos[i]+b.Radius > limit:
		b.Pos[i] = limit - b.Radius
		b.Vel[i] = -b.Vel[i] * b.Restitution
	}
}

// KineticEnergy returns ½·m·|v|².
func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.Mass() * b.Vel.Dot(b.Vel)
}

// finite reports whether every numeric field is a real number.
func (b *Body) finite() bool {
	for _, v := range [...]float64{b.Pos[0], b.Pos[1], b.Vel[0], b.Vel[1], b.Radius, b.Restitution} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
