package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"arena-sim/internal/commands"
	"arena-sim/internal/debug"
	"arena-sim/internal/engineconfig"
	"arena-sim/internal/env"
	"arena-sim/internal/graphics"
	"arena-sim/internal/input"
	"arena-sim/internal/logger"
	"arena-sim/internal/physics"
	"arena-sim/internal/scene"
)

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "env:", err)
	}

	reg := commands.NewRegistry("run")
	registerRun(reg)
	registerHeadless(reg)
	registerInitConfig(reg)

	if err := reg.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "usage: arena [command] [flags]")
		reg.PrintUsage(os.Stderr)
		os.Exit(1)
	}
}

func registerRun(reg *commands.Registry) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", engineconfig.DefaultPath, "preferences file")
	reg.Register("run", "open the arena window (default)", fs, func() error {
		prefs, err := loadPrefs(*configPath)
		if err != nil {
			return err
		}
		log := logger.New(prefs.LogPath)
		world, seed := newWorld(prefs)
		log.Logf("start %dx%d, %d bodies, seed %d", prefs.Width, prefs.Height, len(world.Bodies()), seed)

		scn := scene.New(world.Arena())
		router := input.NewRouter(world, log)
		dbg := debug.New()
		dbg.ShowFPS = prefs.ShowFPS
		dbg.ShowMemAlloc = prefs.ShowMemAlloc
		dbg.ShowStats = prefs.ShowStats

		opts := graphics.Options{
			Title:     prefs.Title,
			Width:     prefs.Width,
			Height:    prefs.Height,
			TargetFPS: prefs.TargetFPS,
		}
		update := func(vp input.Viewport) {
			router.Poll(graphics.Mouse{}, vp)
		}
		drawArena := func() {
			scn.DrawArena()
			world.Tick(scn)
		}
		graphics.Run(opts, update, drawArena, func() { dbg.Draw(world) })

		log.Logf("stop after %d frames", world.Frame())
		return nil
	})
}

func registerHeadless(reg *commands.Registry) {
	fs := flag.NewFlagSet("headless", flag.ContinueOnError)
	configPath := fs.String("config", engineconfig.DefaultPath, "preferences file")
	frames := fs.Int("frames", 600, "number of ticks to run")
	every := fs.Int("every", 60, "log stats every N ticks (0 = never)")
	seed := fs.Int64("seed", 0, "random seed (overrides preferences when non-zero)")
	reg.Register("headless", "step the simulation without a window and print the final state", fs, func() error {
		prefs, err := loadPrefs(*configPath)
		if err != nil {
			return err
		}
		if *seed != 0 {
			prefs.Seed = *seed
		}
		log := logger.New(prefs.LogPath)
		world, used := newWorld(prefs)
		log.Logf("headless %d frames, seed %d", *frames, used)

		for i := 0; i < *frames; i++ {
			world.Tick(nil)
			if err := world.CheckFinite(); err != nil {
				return fmt.Errorf("frame %d: %w", world.Frame(), err)
			}
			if *every > 0 && world.Frame()%uint64(*every) == 0 {
				log.Logf("frame %d: %s", world.Frame(), debug.StatsLine(world))
			}
		}

		snap, err := world.Snapshot()
		if err != nil {
			return err
		}
		for i, b := range snap {
			fmt.Printf("%d\tpos=(%.2f, %.2f)\tvel=(%.3f, %.3f)\n", i, b.Pos[0], b.Pos[1], b.Vel[0], b.Vel[1])
		}
		fmt.Println(debug.StatsLine(world))
		return nil
	})
}

func registerInitConfig(reg *commands.Registry) {
	fs := flag.NewFlagSet("init-config", flag.ContinueOnError)
	out := fs.String("o", engineconfig.DefaultPath, "file to write")
	reg.Register("init-config", "write the default preferences file", fs, func() error {
		if err := engineconfig.Save(*out, engineconfig.Default()); err != nil {
			return fmt.Errorf("write %s: %w", *out, err)
		}
		fmt.Println("wrote", *out)
		return nil
	})
}

// loadPrefs reads the preferences file, applies ARENA_* overrides and validates the result.
func loadPrefs(path string) (engineconfig.Prefs, error) {
	prefs, err := engineconfig.Load(path)
	if err != nil {
		return prefs, err
	}
	prefs = engineconfig.ApplyEnv(prefs)
	if err := prefs.Validate(); err != nil {
		return prefs, fmt.Errorf("%s: %w", path, err)
	}
	return prefs, nil
}

// newWorld builds the default scene in an arena sized from prefs and returns the seed used.
func newWorld(prefs engineconfig.Prefs) (*physics.World, int64) {
	seed := prefs.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	arena := physics.Arena{Width: float64(prefs.Width), Height: float64(prefs.Height)}
	bodies := physics.DefaultBodies(rand.New(rand.NewSource(seed)))
	return physics.NewWorld(arena, bodies), seed
}
