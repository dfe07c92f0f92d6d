package physics

import "math"

const (
	// CorrectionPercent is the share of penetration removed per resolution.
	CorrectionPercent = 0.6
	// CorrectionSlop is the penetration depth tolerated without positional correction.
	CorrectionSlop = 0.01
)

// ResolveCollision applies an impulse between b and other if the two discs touch and are
// closing along the contact normal. selfHeld and otherHeld mark a side that is under
// pointer control: that side receives neither impulse nor positional correction, yet still
// pushes the other side as if it had infinite mass.
// Coincident centers and non-touching pairs are skipped.
func (b *Body) ResolveCollision(other *Body, selfHeld, otherHeld bool) {
	delta := other.Pos.Sub(b.Pos)
	dist := delta.Len()
	if dist == 0 || dist > b.Radius+other.Radius {
		return
	}

	// n points from b to other.
	n := delta.Mul(1 / dist)
	closing := b.Vel.Sub(other.Vel).Dot(n)
	if closing <= 0 {
		return
	}

	e := math.Min(b.Restitution, other.Restitution)
	invA, invB := 1/b.Mass(), 1/other.Mass()

	j := (1 + e) * closing / (invA + invB)
	maxImpulse := MaxVelocity * math.Max(b.Mass(), other.Mass())
	j = math.Copysign(math.Min(math.Abs(j), maxImpulse), j)

	impulse := n.Mul(j)
	if !selfHeld {
		b.Vel = b.Vel.Sub(impulse.Mul(invA))
		b.ClampVelocity()
	}
	if !otherHeld {
		other.Vel = other.Vel.Add(impulse.Mul(invB))
		other.ClampVelocity()
	}

	penetration := b.Radius + other.Radius - dist
	if penetration <= CorrectionSlop {
		return
	}
	correction := n.Mul(penetration * CorrectionPercent / (invA + invB))
	if !selfHeld {
		b.Pos = b.Pos.Sub(correction.Mul(invA))
	}
	if !otherHeld {
		other.Pos = other.Pos.Add(correction.Mul(invB))
	}
}
