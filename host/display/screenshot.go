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
	"image"
	"image/png"
	"io"

	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/hardware/devices"
	"golang.org/x/image/draw"
)

// Scaled returns a copy of the PixelScreen image, scaled by the factor with
// nearest neighbour sampling. A factor of less than one is treated as one.
func Scaled(scr *devices.Screen, factor int) *image.RGBA {
	factor = max(1, factor)

	src := scr.Image()
	dst := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx()*factor, src.Bounds().Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst
}

// WriteScreenshot encodes the scaled PixelScreen image as a PNG.
func WriteScreenshot(w io.Writer, scr *devices.Screen, factor int) error {
	if err := png.Encode(w, Scaled(scr, factor)); err != nil {
		return curated.Errorf("display: %v", err)
	}
	return nil
}
