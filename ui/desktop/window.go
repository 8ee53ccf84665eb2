package desktop

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/they4kman/minesweep/ui"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	countScale   = 2
	messageScale = 4
)

var (
	backgroundColor = colornames.Black
	countColor      = colornames.Red
	messageColor    = colornames.White
	buttonColor     = colornames.Darkcyan
)

// pixelSurface draws onto a canvas that is never cleared once the game is
// over, so the last board stays under the result message.
type pixelSurface struct {
	config ui.Config
	canvas *pixelgl.Canvas
	imd    *imdraw.IMDraw
	atlas  *text.Atlas
	flag   *pixel.Sprite
}

func newPixelSurface(config ui.Config, flagIcon pixel.Picture) *pixelSurface {
	return &pixelSurface{
		config: config,
		canvas: pixelgl.NewCanvas(pixel.R(0, 0, float64(config.Width), float64(config.Height))),
		imd:    imdraw.New(nil),
		atlas:  text.NewAtlas(basicfont.Face7x13, text.ASCII),
		flag:   pixel.NewSprite(flagIcon, flagIcon.Bounds()),
	}
}

// toPixel converts top-left window coordinates to pixel's bottom-left ones
func (surface *pixelSurface) toPixel(x, y float64) pixel.Vec {
	return pixel.V(x, float64(surface.config.Height)-y)
}

func (surface *pixelSurface) tileRect(row, col int) pixel.Rect {
	size := float64(surface.config.TileSize)
	x, y := float64(col)*size, float64(row)*size
	return pixel.Rect{
		Min: surface.toPixel(x, y+size),
		Max: surface.toPixel(x+size, y),
	}
}

func (surface *pixelSurface) rect(rect image.Rectangle) pixel.Rect {
	return pixel.Rect{
		Min: surface.toPixel(float64(rect.Min.X), float64(rect.Max.Y)),
		Max: surface.toPixel(float64(rect.Max.X), float64(rect.Min.Y)),
	}
}

func (surface *pixelSurface) clear() {
	surface.canvas.Clear(backgroundColor)
}

func (surface *pixelSurface) fillRect(rect pixel.Rect, fill color.Color, thickness float64) {
	surface.imd.Clear()
	surface.imd.Color = fill
	surface.imd.Push(rect.Min, rect.Max)
	surface.imd.Rectangle(thickness)
	surface.imd.Draw(surface.canvas)
}

func (surface *pixelSurface) drawText(message string, fill color.Color, center pixel.Vec, scale float64) {
	txt := text.New(pixel.ZV, surface.atlas)
	txt.Color = fill
	fmt.Fprint(txt, message)

	offset := center.Sub(txt.Bounds().Center().Scaled(scale))
	txt.Draw(surface.canvas, pixel.IM.Scaled(pixel.ZV, scale).Moved(offset))
}

func (surface *pixelSurface) FillTile(row, col int, fill color.Color) {
	surface.fillRect(surface.tileRect(row, col), fill, 0)
}

func (surface *pixelSurface) DrawCount(row, col, count int) {
	surface.drawText(fmt.Sprint(count), countColor, surface.tileRect(row, col).Center(), countScale)
}

func (surface *pixelSurface) DrawFlag(row, col int) {
	surface.flag.Draw(surface.canvas, pixel.IM.Moved(surface.tileRect(row, col).Center()))
}

func (surface *pixelSurface) DrawFlagButton(active bool) {
	button := surface.rect(surface.config.FlagButton)
	surface.flag.Draw(surface.canvas, pixel.IM.Moved(button.Center()))
	if active {
		surface.fillRect(button, buttonColor, 2)
	}
}

func (surface *pixelSurface) DrawMessage(message string) {
	center := surface.toPixel(float64(surface.config.Width)/2, float64(surface.config.Height)/2)
	surface.drawText(message, messageColor, center, messageScale)
}

func (surface *pixelSurface) Draw(target pixel.Target) {
	surface.canvas.Draw(target, pixel.IM.Moved(surface.canvas.Bounds().Center()))
}

// pollEvents collects this frame's input, in the order the adapter should
// handle it
func pollEvents(win *pixelgl.Window, config ui.Config) []ui.Event {
	var events []ui.Event

	if win.Closed() || win.JustPressed(pixelgl.KeyEscape) {
		return append(events, ui.Quit{})
	}

	if win.JustPressed(pixelgl.KeyEnter) {
		events = append(events, ui.Restart{})
	}

	if win.JustPressed(pixelgl.MouseButtonLeft) {
		pos := win.MousePosition()
		events = append(events, ui.Click{
			X: int(pos.X),
			Y: config.Height - int(pos.Y) - 1,
		})
	}

	return events
}

// Run opens the game window and processes input until the player quits.
// It must be called from within pixelgl.Run.
func Run(config ui.Config) error {
	flagIcon, err := ui.LoadIcon(config.FlagIconPath)
	if err != nil {
		return err
	}
	config.FlagButton = ui.FlagButtonFor(config.FlagButton, flagIcon)

	win, err := pixelgl.NewWindow(pixelgl.WindowConfig{
		Title:  config.Title,
		Bounds: pixel.R(0, 0, float64(config.Width), float64(config.Height)),
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	adapter := ui.NewAdapter(config, rand.New(rand.NewSource(config.Seed)))
	surface := newPixelSurface(config, flagIcon)

	for {
		for _, event := range pollEvents(win, config) {
			if adapter.Handle(event) {
				return nil
			}
		}

		if !adapter.Board().GameOver() {
			surface.clear()
		}
		ui.Render(adapter.Board(), adapter.FlagMode(), surface)

		win.Clear(backgroundColor)
		surface.Draw(win)
		win.Update()
	}
}
