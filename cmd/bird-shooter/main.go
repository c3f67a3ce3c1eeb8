package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/bird-shooter/app"
	"github.com/lixenwraith/bird-shooter/camera"
	"github.com/lixenwraith/bird-shooter/core"
	"github.com/lixenwraith/bird-shooter/input"
	"github.com/lixenwraith/bird-shooter/parameter"
	"github.com/lixenwraith/bird-shooter/render"
	"github.com/lixenwraith/bird-shooter/terminal"
)

func main() {
	flags := app.RegisterFlags(flag.CommandLine)
	flag.Parse()
	os.Exit(run(flags))
}

func run(flags *app.Flags) int {
	// Camera is sized once the terminal reports its dimensions
	cam := camera.New(0, 0, parameter.CellWorldWidth, parameter.CellWorldHeight)

	session, err := app.New(flags, cam)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bird-shooter: %v\n", err)
		return 1
	}
	defer session.Close()
	// A crash exits from HandleCrash, so the session log is flushed through the crash cleanups
	defer core.PushCrashCleanup(session.Close)()

	svc := terminal.NewService(nil, session.Logger)
	if err := svc.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer svc.Stop()

	// Panic Recovery: restore the terminal before printing so the trace is readable
	defer func() {
		core.HandleCrash(recover())
	}()

	screen := svc.Screen()
	cam.Resize(render.PlayfieldSize(screen.Size()))

	handler := terminal.NewInputHandler(session.KeyTable, session.Config.Input.KeyHoldWindow, cam, session.Logger)
	renderer := render.NewTerminalRenderer(screen, session.World, session.Assets)

	svc.Start()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	var (
		fps         int
		framesSince int
		fpsWindow   = time.Now()
	)

	for {
		select {
		case ev := <-svc.Events():
			action := handler.HandleEvent(ev, time.Now())
			if action == input.ActionReset {
				handler.ReleaseAll()
			}
			if session.HandleAction(action) {
				return 0
			}

		case now := <-frameTicker.C:
			session.Game.SetInput(handler.Snapshot(now))
			session.Game.Tick()

			framesSince++
			if elapsed := now.Sub(fpsWindow); elapsed >= time.Second {
				fps = int(float64(framesSince) / elapsed.Seconds())
				framesSince = 0
				fpsWindow = now
			}

			renderer.RenderFrame(render.Status{
				Paused: session.Game.IsPaused(),
				Muted:  session.Muted(),
				FPS:    fps,
			})
		}
	}
}
