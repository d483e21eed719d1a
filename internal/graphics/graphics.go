package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configures the window opened by Run.
type Options struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
	MSAA       bool
	TargetFPS  int32
	Background color.RGBA

	// OnClose, if set, runs after the loop ends and before the window closes, while GPU resources can still be released.
	OnClose func()
}

// DefaultOptions opens a 1280×720 antialiased window at 60 FPS on a near-black background.
func DefaultOptions() Options {
	return Options{
		Title:      "Christmas Tree",
		Width:      1280,
		Height:     720,
		MSAA:       true,
		TargetFPS:  60,
		Background: color.RGBA{R: 5, G: 5, B: 5, A: 255},
	}
}

// Run opens the window and runs the main loop. Each frame it calls update with the frame time
// in seconds, then clears the screen and calls draw. ESC is left to the terminal; close via the window button.
func Run(opts Options, update func(dt float32), draw func()) {
	var flags uint32 = rl.FlagWindowResizable
	if opts.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)

	w, h := opts.Width, opts.Height
	if opts.Fullscreen {
		w, h = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(w, h, opts.Title)
	defer rl.CloseWindow()
	if opts.OnClose != nil {
		defer opts.OnClose()
	}

	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(opts.Background)
		draw()
		rl.EndDrawing()
	}
}
