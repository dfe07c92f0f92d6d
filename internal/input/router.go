package input

import "arena-sim/internal/logger"

// Device is a sampled pointer: window-space position and primary button state.
type Device interface {
	Position() (x, y float32)
	Pressed() bool
}

// Target receives pointer events in arena coordinates.
type Target interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp()
	Held() (int, bool)
}

// Router turns one device sample per frame into pointer events. Call Poll before the frame's
// tick so events never interleave with body updates.
type Router struct {
	target Target
	log    *logger.Logger
	down   bool
}

// NewRouter returns a router that drives target. log may be nil.
func NewRouter(target Target, log *logger.Logger) *Router {
	return &Router{target: target, log: log}
}

// Poll samples d once. A press edge sends PointerDown, every pressed sample sends PointerMove
// (so a pointer held still yields zero drag velocity) and a release edge sends PointerUp.
func (r *Router) Poll(d Device, vp Viewport) {
	sx, sy := d.Position()
	ax, ay := vp.ToArena(sx, sy)
	x, y := float64(ax), float64(ay)

	pressed := d.Pressed()
	switch {
	case pressed && !r.down:
		r.target.PointerDown(x, y)
		if i, ok := r.target.Held(); ok {
			r.logf("grab body %d at (%.1f, %.1f)", i, x, y)
		}
		r.target.PointerMove(x, y)
	case pressed:
		r.target.PointerMove(x, y)
	case r.down:
		if i, ok := r.target.Held(); ok {
			r.logf("release body %d at (%.1f, %.1f)", i, x, y)
		}
		r.target.PointerUp()
	}
	r.down = pressed
}

func (r *Router) logf(format string, args ...any) {
	if r.log != nil {
		r.log.Logf(format, args...)
	}
}
