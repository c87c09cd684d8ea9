// Command starfield previews the site's background and cursor effects in a
// terminal. Move the mouse to draw a trail, click for a burst, Esc to quit.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/meilin-lab/portfolio/internal/effects"
)

func main() {
	fps := flag.Int("fps", 60, "frames per second")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *fps, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, fps int, seed int64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return mount(ctx, screen, fps, seed)
}

// mount attaches a scene to screen and runs it until ctx ends or the user
// quits. The event reader and the driver are both stopped before it returns.
func mount(ctx context.Context, screen tcell.Screen, fps int, seed int64) error {
	screen.EnableMouse(tcell.MouseMotionEvents)
	defer screen.DisableMouse()
	screen.EnableFocus()
	defer screen.DisableFocus()
	screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, h := screen.Size()
	scene := effects.NewScene(float64(w*cellW), float64(h*cellH), effects.NewRand(seed))
	driver := effects.NewDriver(scene, fps)
	log.Printf("Starfield %dx%d cells, %d stars, seed %d", w, h, len(scene.Field.Stars), seed)

	input := make(chan effects.Input, 100)
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		var tr translator
		for {
			ev := screen.PollEvent()
			if ev == nil || ctx.Err() != nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			inputs, quit := tr.translate(ev)
			if quit {
				cancel()
				return
			}
			for _, in := range inputs {
				select {
				case input <- in:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	err := driver.Run(ctx, input, &screenSurface{screen: screen})

	// Wake PollEvent so the reader can observe the cancelled context.
	cancel()
	_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	select {
	case <-readerDone:
	case <-time.After(100 * time.Millisecond):
		log.Printf("Event reader still blocked at shutdown")
	}
	return err
}
