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

package display_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/vm6502/vm6502/hardware/devices"
	"github.com/vm6502/vm6502/host/display"
	"github.com/vm6502/vm6502/test"
)

func TestTicksPerFrame(t *testing.T) {
	test.ExpectEquality(t, display.TicksPerFrame(60000, 60), 1000)
	test.ExpectEquality(t, display.TicksPerFrame(10, 60), 1)
	test.ExpectEquality(t, display.TicksPerFrame(0, 60), display.TicksPerFrame(-1, 60))
	test.ExpectEquality(t, display.TicksPerFrame(1000, 0) > 1, true)
}

func TestScaled(t *testing.T) {
	scr := devices.NewScreen()
	test.DemandSuccess(t, scr.Write(0, 0x01))
	test.DemandSuccess(t, scr.Write(devices.ScreenWidth+1, 0x02))

	img := display.Scaled(scr, 4)
	test.ExpectEquality(t, img.Bounds().Dx(), devices.ScreenWidth*4)
	test.ExpectEquality(t, img.Bounds().Dy(), devices.ScreenHeight*4)

	test.ExpectEquality(t, img.RGBAAt(0, 0), devices.Palette[1])
	test.ExpectEquality(t, img.RGBAAt(3, 3), devices.Palette[1])
	test.ExpectEquality(t, img.RGBAAt(4, 4), devices.Palette[2])
	test.ExpectEquality(t, img.RGBAAt(7, 7), devices.Palette[2])
	test.ExpectEquality(t, img.RGBAAt(8, 8), devices.Palette[0])

	img = display.Scaled(scr, 0)
	test.ExpectEquality(t, img.Bounds().Dx(), devices.ScreenWidth)
}

func TestWriteScreenshot(t *testing.T) {
	scr := devices.NewScreen()
	test.DemandSuccess(t, scr.Write(0, 0x05))

	var b bytes.Buffer
	test.DemandSuccess(t, display.WriteScreenshot(&b, scr, 2))

	img, err := png.Decode(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), devices.ScreenWidth*2)

	r, g, bl, a := img.At(1, 1).RGBA()
	pr, pg, pb, pa := devices.Palette[5].RGBA()
	test.ExpectEquality(t, [4]uint32{r, g, bl, a}, [4]uint32{pr, pg, pb, pa})
}
