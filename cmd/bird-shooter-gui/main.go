package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/bird-shooter/app"
	"github.com/lixenwraith/bird-shooter/camera"
	"github.com/lixenwraith/bird-shooter/gui"
	"github.com/lixenwraith/bird-shooter/parameter"
)

func main() {
	flags := app.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cam := camera.New(parameter.WindowWidth, parameter.WindowHeight, parameter.PixelWorldSize, parameter.PixelWorldSize)

	session, err := app.New(flags, cam)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bird-shooter-gui: %v\n", err)
		os.Exit(1)
	}

	err = gui.Run(gui.NewGame(session, cam))
	session.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bird-shooter-gui: %v\n", err)
		os.Exit(1)
	}
}
