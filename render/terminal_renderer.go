package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/bird-shooter/asset"
	"github.com/lixenwraith/bird-shooter/camera"
	"github.com/lixenwraith/bird-shooter/core"
	"github.com/lixenwraith/bird-shooter/engine"
	"github.com/lixenwraith/bird-shooter/parameter"
	"github.com/lixenwraith/bird-shooter/vmath"
)

// StatusHeight is the number of rows reserved below the playfield
const StatusHeight = 1

// Status carries frontend state shown in the status bar
type Status struct {
	Paused bool
	Muted  bool
	FPS    int
}

// TerminalRenderer draws the world onto a tcell screen
// The playfield fills every row except the bottom status bar
type TerminalRenderer struct {
	screen tcell.Screen
	world  *engine.World
	assets *asset.Loader
	logger *zap.Logger

	background tcell.Style
	warned     map[string]bool
}

// NewTerminalRenderer creates a renderer; assets may be nil to draw untinted glyphs
func NewTerminalRenderer(screen tcell.Screen, world *engine.World, assets *asset.Loader) *TerminalRenderer {
	return &TerminalRenderer{
		screen:     screen,
		world:      world,
		assets:     assets,
		logger:     world.Resources.Logger,
		background: tcell.StyleDefault.Background(tcellColor(core.RGBFromColor(parameter.ClearColor))),
		warned:     make(map[string]bool),
	}
}

// PlayfieldSize returns the viewport a camera should use for a screen of width x height
func PlayfieldSize(width, height int) (int, int) {
	return width, max(height-StatusHeight, 0)
}

// RenderFrame renders the entire frame and shows it
func (r *TerminalRenderer) RenderFrame(status Status) {
	r.screen.Fill(' ', r.background)

	if r.world.Resources.Camera.Camera != nil {
		r.drawSprites()
	}
	r.drawStatus(status)

	r.screen.Show()
}

// drawSprites draws bullets first so the player stays on top when they overlap
func (r *TerminalRenderer) drawSprites() {
	cam := r.world.Resources.Camera.Camera
	player := r.world.Resources.Player.Entity

	for _, e := range r.world.Components.Sprite.GetAllEntities() {
		if e == player {
			continue
		}
		r.drawEntity(cam, e, false)
	}
	if player != 0 && r.world.Components.Sprite.HasEntity(player) {
		r.drawEntity(cam, player, true)
	}
}

func (r *TerminalRenderer) drawEntity(cam *camera.Camera2D, e core.Entity, isPlayer bool) {
	sprite, ok := r.world.Components.Sprite.GetComponent(e)
	if !ok {
		return
	}
	tr, ok := r.world.Components.Transform.GetComponent(e)
	if !ok {
		return
	}
	x, y, ok := cam.WorldToViewport(tr.Position)
	if !ok {
		return
	}

	glyph := sprite.Glyph
	fallback := parameter.BulletTint
	if isPlayer {
		glyph = PlayerGlyph(tr.Rotation)
		fallback = parameter.PlayerTint
	}
	if glyph == 0 {
		glyph = '?'
	}

	tint := r.tint(sprite.Asset, fallback)
	if !isPlayer {
		tint = r.fade(e, tint)
	}
	style := r.background.Foreground(tcellColor(tint))
	r.screen.SetContent(x, y, glyph, nil, style)
}

// tint returns the asset's mean color, or fallback when the asset is unavailable
func (r *TerminalRenderer) tint(path string, fallback color.RGBA) core.RGB {
	if r.assets == nil || path == "" {
		return core.RGBFromColor(fallback)
	}
	s, err := r.assets.Load(path)
	if err != nil {
		if !r.warned[path] {
			r.logger.Warn("sprite asset unavailable, using glyph color",
				zap.String("asset", path),
				zap.Error(err),
			)
			r.warned[path] = true
		}
		return core.RGBFromColor(fallback)
	}
	return s.Tint
}

// fade blends an ageing bullet toward the background over the last part of its lifetime
func (r *TerminalRenderer) fade(e core.Entity, c core.RGB) core.RGB {
	b, ok := r.world.Components.Bullet.GetComponent(e)
	if !ok || b.MaxLifetime <= 0 {
		return c
	}
	age := float64(b.Lifetime) / float64(b.MaxLifetime)
	if age <= parameter.BulletFadeStart {
		return c
	}
	alpha := (age - parameter.BulletFadeStart) / (1 - parameter.BulletFadeStart)
	return c.Blend(core.RGBFromColor(parameter.ClearColor), alpha)
}

func (r *TerminalRenderer) drawStatus(status Status) {
	width, height := r.screen.Size()
	if height < StatusHeight {
		return
	}
	row := height - StatusHeight

	style := tcell.StyleDefault.
		Background(tcellColor(core.RGBFromColor(parameter.ClearColor).Scale(0.5))).
		Foreground(tcellColor(core.RGBFromColor(parameter.StatusTint)))

	for x := 0; x < width; x++ {
		r.screen.SetContent(x, row, ' ', nil, style)
	}

	text := fmt.Sprintf(" bullets %d  frame %d", r.world.Components.Bullet.CountEntities(), r.world.Resources.Time.FrameNumber)
	if status.FPS > 0 {
		text += fmt.Sprintf("  fps %d", status.FPS)
	}
	if status.Paused {
		text += "  PAUSED"
	}
	if status.Muted {
		text += "  MUTED"
	}
	text += "  | wasd move  mouse aim  click fire  p pause  r reset  m mute  q quit"

	drawText(r.screen, 0, row, width, text, style)
}

func drawText(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= width {
			return
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// PlayerGlyph picks the arrow closest to rotation
func PlayerGlyph(rotation float64) rune {
	glyphs := []rune(parameter.PlayerGlyphs)
	octant := int(math.Round(vmath.NormalizeAngle(rotation) / (math.Pi / 4)))
	octant = ((octant % len(glyphs)) + len(glyphs)) % len(glyphs)
	return glyphs[octant]
}

func tcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
