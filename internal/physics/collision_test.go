package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func relNormal(a, b *Body) float64 {
	n := b.Pos.Sub(a.Pos).Normalize()
	return a.Vel.Sub(b.Vel).Dot(n)
}

func TestResolveCollision_HeadOn(t *testing.T) {
	const v = 3.0
	a := disc(100, 100, v, 0)
	b := disc(140, 100, -v, 0)
	before := relNormal(a, b)

	a.ResolveCollision(b, false, false)

	e := DefaultRestitution
	if !vecApprox(a.Vel, mgl64.Vec2{-e * v, 0}) {
		t.Errorf("a.Vel = %v, want %v", a.Vel, mgl64.Vec2{-e * v, 0})
	}
	if !vecApprox(b.Vel, mgl64.Vec2{e * v, 0}) {
		t.Errorf("b.Vel = %v, want %v", b.Vel, mgl64.Vec2{e * v, 0})
	}
	after := relNormal(a, b)
	if after > 0 {
		t.Errorf("relative normal velocity after = %v, want <= 0", after)
	}
	if abs(after) > abs(before) {
		t.Errorf("|after| = %v > |before| = %v", abs(after), abs(before))
	}
	// Touching exactly: nothing to correct.
	if a.Pos != (mgl64.Vec2{100, 100}) || b.Pos != (mgl64.Vec2{140, 100}) {
		t.Errorf("positions moved: %v %v", a.Pos, b.Pos)
	}
}

func TestResolveCollision_OverlapCorrection(t *testing.T) {
	a := disc(100, 100, 4, 0)
	b := disc(139, 100, -4, 0)
	overlap := a.Radius + b.Radius - b.Pos.Sub(a.Pos).Len()

	a.ResolveCollision(b, false, false)

	if relNormal(a, b) >= 0 {
		t.Errorf("bodies still closing: a=%v b=%v", a.Vel, b.Vel)
	}
	remaining := a.Radius + b.Radius - b.Pos.Sub(a.Pos).Len()
	if remaining > 0.4*overlap+eps {
		t.Errorf("penetration after = %v, want <= %v", remaining, 0.4*overlap)
	}
	if !vecApprox(a.Pos, mgl64.Vec2{99.7, 100}) || !vecApprox(b.Pos, mgl64.Vec2{139.3, 100}) {
		t.Errorf("positions = %v %v, want split evenly", a.Pos, b.Pos)
	}
}

func TestResolveCollision_SecondVisitIsNoop(t *testing.T) {
	a := disc(100, 100, 4, 0)
	b := disc(139, 100, -4, 0)
	a.ResolveCollision(b, false, false)
	va, vb, pa, pb := a.Vel, b.Vel, a.Pos, b.Pos

	b.ResolveCollision(a, false, false)
	if a.Vel != va || b.Vel != vb || a.Pos != pa || b.Pos != pb {
		t.Errorf("reverse visit changed separating pair")
	}
}

func TestResolveCollision_Skips(t *testing.T) {
	tests := []struct {
		name string
		a, b *Body
	}{
		{"coincident centers", disc(100, 100, 3, 0), disc(100, 100, -3, 0)},
		{"not touching", disc(100, 100, 3, 0), disc(141, 100, -3, 0)},
		{"separating", disc(100, 100, -3, 0), disc(139, 100, 3, 0)},
		{"parallel", disc(100, 100, 0, 3), disc(139, 100, 0, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a0, b0 := *tt.a, *tt.b
			tt.a.ResolveCollision(tt.b, false, false)
			if *tt.a != a0 || *tt.b != b0 {
				t.Errorf("state changed: a=%+v b=%+v", *tt.a, *tt.b)
			}
		})
	}
}

func TestResolveCollision_ImpulseClamp(t *testing.T) {
	a := NewBody(mgl64.Vec2{100, 100}, 10, disc(0, 0, 0, 0).Color, 1)
	b := NewBody(mgl64.Vec2{120, 100}, 10, a.Color, 1)
	a.Vel = mgl64.Vec2{MaxVelocity, 0}
	b.Vel = mgl64.Vec2{-MaxVelocity, 0}

	a.ResolveCollision(b, false, false)

	// Unclamped impulse would be 300; the cap of 150 stops both bodies dead.
	if a.Vel != (mgl64.Vec2{}) || b.Vel != (mgl64.Vec2{}) {
		t.Errorf("velocities = %v %v, want zero", a.Vel, b.Vel)
	}
}

func TestResolveCollision_MinRestitution(t *testing.T) {
	a := disc(100, 100, 3, 0)
	b := disc(140, 100, -3, 0)
	b.Restitution = 0.5
	a.ResolveCollision(b, false, false)
	if !vecApprox(a.Vel, mgl64.Vec2{-1.5, 0}) || !vecApprox(b.Vel, mgl64.Vec2{1.5, 0}) {
		t.Errorf("velocities = %v %v, want ±1.5", a.Vel, b.Vel)
	}
}

func TestResolveCollision_HeldSideIsAnchor(t *testing.T) {
	a := disc(100, 100, 3, 0)
	held := disc(139, 100, 0, 0)

	a.ResolveCollision(held, false, true)

	if held.Vel != (mgl64.Vec2{}) || held.Pos != (mgl64.Vec2{139, 100}) {
		t.Errorf("held body moved: pos=%v vel=%v", held.Pos, held.Vel)
	}
	if a.Vel[0] >= 3 {
		t.Errorf("a.Vel = %v, want slowed by held body", a.Vel)
	}
	if a.Pos[0] >= 100 {
		t.Errorf("a.Pos = %v, want pushed back", a.Pos)
	}

	// Same pair resolved from the held side.
	a = disc(100, 100, 3, 0)
	held = disc(139, 100, 0, 0)
	held.ResolveCollision(a, true, false)
	if held.Vel != (mgl64.Vec2{}) || held.Pos != (mgl64.Vec2{139, 100}) {
		t.Errorf("held body moved as self: pos=%v vel=%v", held.Pos, held.Vel)
	}
	if a.Vel[0] >= 3 {
		t.Errorf("a.Vel = %v, want slowed by held body", a.Vel)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
