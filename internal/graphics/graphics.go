package graphics

import (
	"arena-sim/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configures the window. Width and Height are the arena size in world units and the
// initial window size in pixels; the window may be resized afterwards and the arena is letterboxed.
type Options struct {
	Title     string
	Width     int
	Height    int
	TargetFPS int
}

var letterboxColor = rl.NewColor(12, 12, 12, 255)

// Run opens the window and drives the frame loop until the window is closed. Each frame:
// update runs with the current viewport (input), then the screen is cleared, drawArena runs
// inside a 2D camera mapping arena units to pixels, and drawOverlay runs in screen space.
// A frame's work always completes before the next is scheduled.
func Run(opts Options, update func(vp input.Viewport), drawArena, drawOverlay func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // close via window button
	rl.SetTargetFPS(int32(opts.TargetFPS))

	arenaW, arenaH := float32(opts.Width), float32(opts.Height)
	for !rl.WindowShouldClose() {
		vp := input.Fit(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()), arenaW, arenaH)
		update(vp)

		rl.BeginDrawing()
		rl.ClearBackground(letterboxColor)
		rl.BeginMode2D(Camera(vp))
		drawArena()
		rl.EndMode2D()
		drawOverlay()
		rl.EndDrawing()
	}
}

// Camera returns the 2D camera that renders arena coordinates through vp.
func Camera(vp input.Viewport) rl.Camera2D {
	return rl.Camera2D{
		Offset: rl.NewVector2(vp.OffsetX, vp.OffsetY),
		Zoom:   vp.Scale,
	}
}

// Mouse is the raylib pointer as an input.Device.
type Mouse struct{}

// Position returns the cursor position in window pixels.
func (Mouse) Position() (float32, float32) {
	p := rl.GetMousePosition()
	return p.X, p.Y
}

// Pressed reports whether the left button is held.
func (Mouse) Pressed() bool {
	return rl.IsMouseButtonDown(rl.MouseButtonLeft)
}
