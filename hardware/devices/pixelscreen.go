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

package devices

import (
	"fmt"
	"image"
	"image/color"
)

// Dimensions of the PixelScreen device.
const (
	ScreenWidth  = 32
	ScreenHeight = 32
)

// Palette is the colour of each of the sixteen pixel values. Only the low
// nibble of a pixel is used when rendering.
var Palette = [16]color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	{R: 0x88, G: 0x00, B: 0x00, A: 0xff},
	{R: 0xaa, G: 0xff, B: 0xee, A: 0xff},
	{R: 0xcc, G: 0x44, B: 0xcc, A: 0xff},
	{R: 0x00, G: 0xcc, B: 0x55, A: 0xff},
	{R: 0x00, G: 0x00, B: 0xaa, A: 0xff},
	{R: 0xee, G: 0xee, B: 0x77, A: 0xff},
	{R: 0xdd, G: 0x88, B: 0x55, A: 0xff},
	{R: 0x66, G: 0x44, B: 0x00, A: 0xff},
	{R: 0xff, G: 0x77, B: 0x77, A: 0xff},
	{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
	{R: 0x77, G: 0x77, B: 0x77, A: 0xff},
	{R: 0xaa, G: 0xff, B: 0x66, A: 0xff},
	{R: 0x00, G: 0x88, B: 0xff, A: 0xff},
	{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff},
}

// Pixel is a single changed pixel in a ScreenUpdate.
type Pixel struct {
	X, Y  int
	Value uint8
}

// ScreenUpdate is the Update returned by the PixelScreen device. It lists
// the pixels that have been written to since the previous update.
type ScreenUpdate struct {
	Pixels []Pixel
}

func (u ScreenUpdate) String() string {
	return fmt.Sprintf("%d pixels changed", len(u.Pixels))
}

// Screen is a 32x32 pixel display. Each address holds the palette index of
// one pixel, in rows from the top left.
type Screen struct {
	NoTick
	pixels [ScreenWidth * ScreenHeight]uint8

	// pixels written to since the last call to Widget()
	dirty    [ScreenWidth * ScreenHeight]bool
	dirtyIdx []uint16
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen() *Screen {
	return &Screen{
		dirtyIdx: make([]uint16, 0, ScreenWidth*ScreenHeight),
	}
}

// Label implements the Device interface.
func (scr *Screen) Label() string {
	return PixelScreen.String()
}

// Size implements the Device interface.
func (scr *Screen) Size() int {
	return len(scr.pixels)
}

func (scr *Screen) clear() {
	for i := range scr.pixels {
		if scr.pixels[i] != 0 {
			scr.pixels[i] = 0
			scr.markDirty(uint16(i))
		}
	}
}

func (scr *Screen) markDirty(offset uint16) {
	if !scr.dirty[offset] {
		scr.dirty[offset] = true
		scr.dirtyIdx = append(scr.dirtyIdx, offset)
	}
}

// ResetSystem implements the Device interface. Clears the screen.
func (scr *Screen) ResetSystem() {
	scr.clear()
}

// ResetHard implements the Device interface. Clears the screen.
func (scr *Screen) ResetHard() {
	scr.clear()
}

// Read implements the Device interface.
func (scr *Screen) Read(offset uint16) uint8 {
	return scr.pixels[offset]
}

// Write implements the Device interface.
func (scr *Screen) Write(offset uint16, value uint8) error {
	scr.pixels[offset] = value
	scr.markDirty(offset)
	return nil
}

// Snapshot implements the Snapshotter interface.
func (scr *Screen) Snapshot() []uint8 {
	c := make([]uint8, len(scr.pixels))
	copy(c, scr.pixels[:])
	return c
}

// Widget implements the Widget interface. Returns a ScreenUpdate.
func (scr *Screen) Widget() Update {
	u := ScreenUpdate{
		Pixels: make([]Pixel, 0, len(scr.dirtyIdx)),
	}
	for _, i := range scr.dirtyIdx {
		u.Pixels = append(u.Pixels, Pixel{
			X:     int(i) % ScreenWidth,
			Y:     int(i) / ScreenWidth,
			Value: scr.pixels[i],
		})
		scr.dirty[i] = false
	}
	scr.dirtyIdx = scr.dirtyIdx[:0]
	return u
}

// Image renders the screen into an image, one image pixel per screen pixel.
func (scr *Screen) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	for i, p := range scr.pixels {
		img.SetRGBA(i%ScreenWidth, i/ScreenWidth, Palette[p&0x0f])
	}
	return img
}
