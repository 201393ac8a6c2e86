// This file is part of vm6502.
//
// vm6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vm6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vm6502.  If not, see <https://www.gnu.org/licenses/>.

package display

import (
	"context"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/hardware"
	"github.com/vm6502/vm6502/hardware/cpu/instructions"
	"github.com/vm6502/vm6502/hardware/devices"
	"github.com/vm6502/vm6502/host/scrollback"
	"github.com/vm6502/vm6502/logger"
	"github.com/vm6502/vm6502/paths"
	"github.com/vm6502/vm6502/setup"
	"golang.org/x/image/font/basicfont"
)

// size of each PixelScreen pixel in the window
const pixelScale = 8

// logical dimensions of the window
const (
	windowWidth  = devices.ScreenWidth * pixelScale
	windowHeight = devices.ScreenHeight*pixelScale + 128
)

// text area below the screen
const (
	textLeft   = 4
	textTop    = devices.ScreenHeight*pixelScale + 16
	lineHeight = 14
	textLines  = 7
)

// number of ticks per frame when the rate is not limited
const unlimitedTicks = 20000

var (
	background = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	textColour = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
)

// Options for the Run() function.
type Options struct {
	// title of the window
	Title string

	// ticks per second. zero or less is unlimited
	Rate int

	// included in the filename of screenshots
	ShortName string
}

// Game implements the ebiten.Game interface.
type Game struct {
	ctx  context.Context
	sys  *hardware.System
	opts Options

	scr *devices.Screen
	asc *devices.ASCII

	output *scrollback.Buffer
	ticks  int

	pixels *ebiten.Image
}

// NewGame is the preferred method of initialisation for the Game type.
func NewGame(ctx context.Context, sys *hardware.System, opts Options) *Game {
	g := &Game{
		ctx:    ctx,
		sys:    sys,
		opts:   opts,
		output: scrollback.NewBuffer(textLines * 4),
		ticks:  TicksPerFrame(opts.Rate, ebiten.DefaultTPS),
	}

	g.scr, _ = setup.FindDevice[*devices.Screen](sys)
	g.asc, _ = setup.FindDevice[*devices.ASCII](sys)
	if g.asc != nil {
		g.asc.AttachOutput(g.output)
	}

	return g
}

// TicksPerFrame returns the number of ticks to run in each frame to achieve
// the rate, for the number of frames per second.
func TicksPerFrame(rate int, fps int) int {
	if rate <= 0 || fps <= 0 {
		return unlimitedTicks
	}
	return max(1, rate/fps)
}

// Update implements the ebiten.Game interface.
func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	if g.asc != nil {
		for _, r := range ebiten.AppendInputChars(nil) {
			if r < 0x80 {
				g.asc.Feed([]byte{uint8(r)})
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.asc.Feed([]byte{'\n'})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			g.asc.Feed([]byte{0x08})
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		if err := g.screenshot(); err != nil {
			logger.Log(logger.Allow, "display", err)
		}
	}

	if err := g.sys.TickX(g.ticks); err != nil {
		if !curated.Is(err, instructions.DecodeError) {
			return err
		}
		logger.Log(logger.Allow, "display", err)
	}

	return nil
}

// Draw implements the ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	if g.scr != nil {
		if g.pixels == nil {
			g.pixels = ebiten.NewImage(devices.ScreenWidth, devices.ScreenHeight)
		}
		g.pixels.WritePixels(g.scr.Image().Pix)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(pixelScale, pixelScale)
		screen.DrawImage(g.pixels, op)
	}

	for i, l := range g.output.Tail(textLines) {
		text.Draw(screen, l, basicfont.Face7x13, textLeft, textTop+i*lineHeight, textColour)
	}

	ebitenutil.DebugPrintAt(screen, g.sys.CPU().String(), 0, windowHeight-16)
}

// Layout implements the ebiten.Game interface.
func (g *Game) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func (g *Game) screenshot() error {
	if g.scr == nil {
		return curated.Errorf("display: no screen to capture")
	}

	fn, err := paths.ResourcePath("screenshots", paths.UniqueFilename("screenshot", g.opts.ShortName)+".png")
	if err != nil {
		return curated.Errorf("display: %v", err)
	}

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("display: %v", err)
	}

	if err := WriteScreenshot(f, g.scr, pixelScale); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return curated.Errorf("display: %v", err)
	}

	logger.Logf(logger.Allow, "display", "screenshot saved to %s", fn)
	return nil
}

// Run the system in a window until the window is closed or the context is
// cancelled.
func Run(ctx context.Context, sys *hardware.System, opts Options) error {
	g := NewGame(ctx, sys, opts)
	if g.asc != nil {
		defer g.asc.AttachOutput(nil)
	}

	title := opts.Title
	if title == "" {
		title = "vm6502"
	}

	ebiten.SetWindowSize(windowWidth*2, windowHeight*2)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return curated.Errorf("display: %v", err)
	}

	return nil
}
