package debug

import (
	"fmt"
	"runtime"

	"arena-sim/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays in the top-right corner. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool
	frameCount   uint32
	fpsText      string
	memText      string
	statsText    string
	memStats     runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders the enabled overlays for w. Call in screen space after the arena is drawn.
func (d *Debug) Draw(w *physics.World) {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0 || d.frameCount == 1

	y := int32(padding)
	if d.ShowFPS {
		if refresh {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.fpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if refresh {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		drawRight(d.memText, y)
		y += lineHeight
	}
	if d.ShowStats {
		if refresh {
			d.statsText = StatsLine(w)
		}
		drawRight(d.statsText, y)
	}
}

// StatsLine summarizes w as "Bodies n  KE x  Held i" (Held - when idle).
func StatsLine(w *physics.World) string {
	held := "-"
	if i, ok := w.Held(); ok {
		held = fmt.Sprint(i)
	}
	return fmt.Sprintf("Bodies %d  KE %.1f  Held %s", len(w.Bodies()), w.KineticEnergy(), held)
}

func drawRight(text string, y int32) {
	if text == "" {
		return
	}
	x := int32(rl.GetScreenWidth()) - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, rl.Green)
}
