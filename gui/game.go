// Package gui is the windowed frontend built on ebiten
package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/lixenwraith/bird-shooter/app"
	"github.com/lixenwraith/bird-shooter/camera"
	"github.com/lixenwraith/bird-shooter/core"
	"github.com/lixenwraith/bird-shooter/input"
	"github.com/lixenwraith/bird-shooter/parameter"
)

// Fallback shape radii in pixels when a sprite image is unavailable
const (
	playerRadius = 16
	bulletRadius = 4
)

var movementKeys = map[ebiten.Key]input.Key{
	ebiten.KeyW: input.KeyW,
	ebiten.KeyA: input.KeyA,
	ebiten.KeyS: input.KeyS,
	ebiten.KeyD: input.KeyD,
}

var actionKeys = map[ebiten.Key]input.Action{
	ebiten.KeyEscape: input.ActionQuit,
	ebiten.KeyQ:      input.ActionQuit,
	ebiten.KeyP:      input.ActionPause,
	ebiten.KeyR:      input.ActionReset,
	ebiten.KeyM:      input.ActionMute,
}

// Game implements ebiten.Game over an app session
// The camera maps one world unit to one pixel
type Game struct {
	app    *app.App
	camera *camera.Camera2D
	logger *zap.Logger

	images  map[string]*ebiten.Image
	missing map[string]bool

	width, height int
}

// NewGame creates the windowed frontend; cam must be the session's camera
func NewGame(a *app.App, cam *camera.Camera2D) *Game {
	return &Game{
		app:     a,
		camera:  cam,
		logger:  a.Logger,
		images:  make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
		width:   cam.ViewportWidth,
		height:  cam.ViewportHeight,
	}
}

// Update reads input and advances the simulation one frame
func (g *Game) Update() error {
	for key, action := range actionKeys {
		if inpututil.IsKeyJustPressed(key) && g.app.HandleAction(action) {
			return ebiten.Termination
		}
	}

	g.app.Game.SetInput(g.snapshot())
	g.app.Game.Tick()
	return nil
}

func (g *Game) snapshot() input.Snapshot {
	x, y := ebiten.CursorPosition()
	s := pointerSnapshot(pointer{
		X:       x,
		Y:       y,
		Focused: ebiten.IsFocused(),
		Primary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}, g.width, g.height)

	for key, k := range movementKeys {
		if ebiten.IsKeyPressed(key) {
			s.Keys = s.Keys.With(k)
		}
	}
	return s
}

// pointer is the mouse state sampled from ebiten for one frame
type pointer struct {
	X, Y    int
	Focused bool
	Primary bool
}

// pointerSnapshot maps the mouse onto a snapshot for a width x height layout
// Firing follows the button alone; the cursor position only affects aiming
func pointerSnapshot(p pointer, width, height int) input.Snapshot {
	return input.Snapshot{
		Cursor:         input.ScreenPoint{X: float64(p.X), Y: float64(p.Y)},
		CursorInWindow: p.Focused && p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height,
		Fire:           p.Primary,
	}
}

// Draw fills the clear color and draws bullets then the player
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(parameter.ClearColor)

	world := g.app.World
	player := world.Resources.Player.Entity
	for _, e := range world.Components.Sprite.GetAllEntities() {
		if e != player {
			g.drawEntity(screen, e, bulletRadius, parameter.BulletTint)
		}
	}
	if player != 0 {
		g.drawEntity(screen, player, playerRadius, parameter.PlayerTint)
	}

	status := fmt.Sprintf("bullets %d  fps %.0f", world.Components.Bullet.CountEntities(), ebiten.ActualFPS())
	if g.app.Game.IsPaused() {
		status += "  PAUSED"
	}
	if g.app.Muted() {
		status += "  MUTED"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) drawEntity(screen *ebiten.Image, e core.Entity, radius float32, tint color.RGBA) {
	world := g.app.World
	sprite, ok := world.Components.Sprite.GetComponent(e)
	if !ok {
		return
	}
	tr, ok := world.Components.Transform.GetComponent(e)
	if !ok {
		return
	}
	p := g.camera.WorldToViewportF(tr.Position)

	img := g.image(sprite.Asset)
	if img == nil {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), radius*float32(tr.Scale), tint, true)
		return
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(tr.Scale, tr.Scale)
	// Screen Y points down, so counter-clockwise world rotation is negated
	op.GeoM.Rotate(-tr.Rotation)
	op.GeoM.Translate(p.X, p.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// image returns the GPU image for an asset, nil when it cannot be loaded
func (g *Game) image(path string) *ebiten.Image {
	if img, ok := g.images[path]; ok {
		return img
	}
	if g.missing[path] || path == "" {
		return nil
	}

	sprite, err := g.app.Assets.Load(path)
	if err != nil {
		g.logger.Warn("sprite asset unavailable, drawing fallback shape",
			zap.String("asset", path),
			zap.Error(err),
		)
		g.missing[path] = true
		return nil
	}

	img := ebiten.NewImageFromImage(sprite.Image)
	g.images[path] = img
	return img
}

// Layout keeps the logical screen equal to the window and follows resizes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.camera.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it closes
func Run(g *Game) error {
	ebiten.SetWindowTitle(parameter.WindowTitle)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.DefaultTPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
