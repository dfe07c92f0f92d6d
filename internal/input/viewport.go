package input

import "github.com/chewxy/math32"

// Viewport maps the arena into a window of a different size. The arena is scaled uniformly
// to fit and centered, leaving bars on the sides or top/bottom (letterbox).
type Viewport struct {
	Scale   float32
	OffsetX float32
	OffsetY float32
}

// Fit returns the letterbox viewport for an arena of arenaW×arenaH in a screenW×screenH window.
// Degenerate sizes return the identity viewport.
func Fit(screenW, screenH, arenaW, arenaH float32) Viewport {
	if screenW <= 0 || screenH <= 0 || arenaW <= 0 || arenaH <= 0 {
		return Viewport{Scale: 1}
	}
	scale := math32.Min(screenW/arenaW, screenH/arenaH)
	return Viewport{
		Scale:   scale,
		OffsetX: math32.Floor((screenW - arenaW*scale) / 2),
		OffsetY: math32.Floor((screenH - arenaH*scale) / 2),
	}
}

// ToArena converts window coordinates to arena coordinates.
func (v Viewport) ToArena(x, y float32) (float32, float32) {
	s := v.Scale
	if s == 0 {
		s = 1
	}
	return (x - v.OffsetX) / s, (y - v.OffsetY) / s
}
