package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/fonts"
	"github.com/automoto/tilefall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // HUD faces are freetype font.Face values
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
	// pixel is scaled up to draw flat-colored characters.
	pixel *ebiten.Image
)

// view maps world pixels to screen pixels for the current camera.
type view struct {
	camX, camY float64
	zoom       float64
	w, h       float64
}

func getView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1.0
	}
	return view{
		camX: camera.Position.X,
		camY: camera.Position.Y,
		zoom: zoom,
		w:    float64(screen.Bounds().Dx()),
		h:    float64(screen.Bounds().Dy()),
	}, true
}

func (v view) toScreen(x, y float64) (float64, float64) {
	return (x-v.camX)*v.zoom + v.w/2, (y-v.camY)*v.zoom + v.h/2
}

func (v view) visible(x, y, w, h float64) bool {
	halfW, halfH := v.w/2/v.zoom, v.h/2/v.zoom
	return x+w >= v.camX-halfW && x <= v.camX+halfW && y+h >= v.camY-halfH && y <= v.camY+halfH
}

// DrawCharacters renders the player and enemies as tinted boxes.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := getView(ecs, screen)
	if !ok {
		return
	}
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Running characters bob on every other frame.
		bob := 0.0
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil && anim.CurrentState == cfg.Running && anim.CurrentAnimation.Frame()%2 == 1 {
			bob = -1
		}

		switch {
		case e.HasComponent(components.Player):
			player := components.Player.Get(e)
			if player.InvulnFrames > 0 && (player.InvulnFrames/4)%2 == 0 {
				return
			}
			drawOp.ColorScale.ScaleWithColor(cfg.Blue)
		case e.HasComponent(components.Enemy):
			enemy := components.Enemy.Get(e)
			drawOp.ColorScale.ScaleWithColorScale(enemy.TintColor)
			if enemy.InvulnFrames > 0 {
				drawOp.ColorScale.Scale(2, 2, 2, 1)
			}
		}

		x, y := v.toScreen(o.X, o.Y+bob)
		drawOp.GeoM.Scale(o.W*v.zoom, o.H*v.zoom)
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(pixel, drawOp)
	})
}

// DrawLighting darkens the scene while the light is switched off.
func DrawLighting(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Lighting.First(ecs.World)
	if !ok || components.Lighting.Get(entry).On {
		return
	}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()),
		color.RGBA{A: cfg.UI.DarkenAlpha}, false)
}

// DrawHUD renders the player's health and stamina bars in the top-left
// corner, with a labelled marker for each running debuff.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	stamina := components.Stamina.Get(playerEntry)

	margin := float32(cfg.UI.BarMargin)
	barW, barH := float32(cfg.UI.BarWidth), float32(cfg.UI.BarHeight)
	labelW := float32(fonts.Width(fonts.HUD, "HP")) + 4
	barX := margin + labelW

	face := fonts.HUD.Get()
	text.Draw(screen, "HP", face, int(margin), int(margin+barH), cfg.White)
	drawBar(screen, barX, margin, barW, barH, float32(hp.Current)/float32(hp.Max), cfg.Green)

	staminaY := margin + barH + 2
	text.Draw(screen, "ST", face, int(margin), int(staminaY+barH), cfg.White)
	drawBar(screen, barX, staminaY, barW, barH, float32(stamina.Current/stamina.Max), cfg.Yellow)

	small := fonts.HUDSmall.Get()
	y := staminaY + barH + 4
	for _, d := range components.Debuffs.Get(playerEntry).Active {
		c := cfg.Green
		if d.Kind == components.DebuffFire {
			c = cfg.Orange
		}
		vector.FillRect(screen, margin, y, barH, barH, c, false)
		text.Draw(screen, fmt.Sprintf("%s %d", d.Kind, d.TicksLeft), small, int(margin+barH+4), int(y+barH), c)
		y += barH + 2
	}
}

func drawBar(screen *ebiten.Image, x, y, w, h, ratio float32, fill color.Color) {
	if ratio < 0 {
		ratio = 0
	}
	// Background (dark gray)
	vector.FillRect(screen, x, y, w, h, cfg.DarkGrey, false)
	vector.FillRect(screen, x, y, w*ratio, h, fill, false)
}

// DrawDebug outlines every resolv object when collider debugging is on and
// prints the level's mesh numbers.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	debugEntry, ok := components.Debug.First(ecs.World)
	if !ok || !components.Debug.Get(debugEntry).ShowColliders {
		return
	}
	v, ok := getView(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
				continue
			}
			x, y := v.toScreen(obj.X, obj.Y)
			w, h := float32(obj.W*v.zoom), float32(obj.H*v.zoom)

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = cfg.Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = cfg.Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = cfg.Red
			} else if obj.HasTags(tags.ResolvHitbox) {
				c = cfg.Green
			}

			vector.StrokeRect(screen, float32(x), float32(y), w, h, 1, c, false)
		}
	}

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  walls %d  colliders %d  tps %.0f",
			level.Name, level.WallTiles, level.Colliders, ebiten.ActualTPS()), 4, screen.Bounds().Dy()-16)
	}
}
