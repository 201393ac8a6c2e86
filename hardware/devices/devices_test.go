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

package devices_test

import (
	"strings"
	"testing"

	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/hardware/devices"
	"github.com/vm6502/vm6502/logger"
	"github.com/vm6502/vm6502/test"
)

func TestFactory(t *testing.T) {
	type tc struct {
		kind devices.Kind
		size int
		ok   bool
		want int
	}

	for _, c := range []tc{
		{kind: devices.RAM, size: 0x1000, ok: true, want: 0x1000},
		{kind: devices.ROM, size: 0x0100, ok: true, want: 0x0100},
		{kind: devices.PixelScreen, size: 0, ok: true, want: 1024},
		{kind: devices.ASCIIIO, size: 0, ok: true, want: 4},
		{kind: devices.RAM, size: 0},
		{kind: devices.ROM, size: -1},
		{kind: devices.PixelScreen, size: 1024},
		{kind: devices.ASCIIIO, size: 4},
		{kind: devices.CPU, size: 0},
		{kind: devices.CPU, size: 10},
		{kind: devices.Kind(99), size: 10},
	} {
		dev, err := devices.NewDevice(c.kind, c.size)
		if c.ok {
			test.DemandSuccess(t, err, c.kind, c.size)
			test.ExpectEquality(t, dev.Size(), c.want, c.kind)
			test.ExpectEquality(t, dev.Label(), c.kind.String(), c.kind)
		} else {
			test.ExpectEquality(t, curated.Is(err, devices.ConfigurationError), true, c.kind, c.size)
		}
	}
}

func TestParseKind(t *testing.T) {
	k, ok := devices.ParseKind("screen")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, k, devices.PixelScreen)

	k, ok = devices.ParseKind("ASCII")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, k, devices.ASCIIIO)

	_, ok = devices.ParseKind("disk")
	test.ExpectEquality(t, ok, false)
}

func TestRAM(t *testing.T) {
	ram := devices.NewRAMDevice(16)
	test.ExpectSuccess(t, ram.Write(15, 0xaa))
	test.ExpectEquality(t, ram.Read(15), uint8(0xaa))

	snap := ram.Snapshot()
	snap[15] = 0x00
	test.ExpectEquality(t, ram.Read(15), uint8(0xaa))

	ram.ResetSystem()
	test.ExpectEquality(t, ram.Read(15), uint8(0x00))

	test.ExpectSuccess(t, ram.Write(0, 0x01))
	ram.ResetHard()
	test.ExpectEquality(t, ram.Read(0), uint8(0x00))
}

func TestROM(t *testing.T) {
	rom := devices.NewROMDevice(16)
	copy(rom.Contents(), []uint8{0xa9, 0x05})
	test.ExpectEquality(t, rom.Read(0), uint8(0xa9))

	err := rom.Write(0, 0xff)
	test.ExpectEquality(t, curated.Is(err, devices.UnwritableDevice), true)
	test.ExpectEquality(t, rom.Read(0), uint8(0xa9))

	// system reset keeps the program
	rom.ResetSystem()
	test.ExpectEquality(t, rom.Read(1), uint8(0x05))

	rom.ResetHard()
	test.ExpectEquality(t, rom.Read(1), uint8(0x00))
}

func TestScreen(t *testing.T) {
	scr := devices.NewScreen()
	test.ExpectSuccess(t, scr.Write(0, 0x01))
	test.ExpectSuccess(t, scr.Write(33, 0x1f))
	test.ExpectSuccess(t, scr.Write(33, 0x02))

	u, ok := scr.Widget().(devices.ScreenUpdate)
	test.DemandEquality(t, ok, true)
	test.DemandEquality(t, len(u.Pixels), 2)
	test.ExpectEquality(t, u.Pixels[0], devices.Pixel{X: 0, Y: 0, Value: 0x01})
	test.ExpectEquality(t, u.Pixels[1], devices.Pixel{X: 1, Y: 1, Value: 0x02})

	// no changes since previous update
	u = scr.Widget().(devices.ScreenUpdate)
	test.ExpectEquality(t, len(u.Pixels), 0)

	img := scr.Image()
	test.ExpectEquality(t, img.RGBAAt(0, 0), devices.Palette[1])
	test.ExpectEquality(t, img.RGBAAt(1, 1), devices.Palette[2])
	test.ExpectEquality(t, img.RGBAAt(2, 2), devices.Palette[0])

	// upper nibble is ignored when rendering
	test.ExpectSuccess(t, scr.Write(2, 0xf3))
	test.ExpectEquality(t, scr.Image().RGBAAt(2, 0), devices.Palette[3])

	scr.ResetSystem()
	test.ExpectEquality(t, scr.Read(0), uint8(0))
	u = scr.Widget().(devices.ScreenUpdate)
	test.ExpectEquality(t, len(u.Pixels), 3)
}

func TestASCII(t *testing.T) {
	asc := devices.NewASCII()
	w := &strings.Builder{}
	asc.AttachOutput(w)

	// no input
	test.ExpectEquality(t, asc.Read(devices.ASCIIData), uint8(0))
	test.ExpectEquality(t, asc.Read(devices.ASCIIStatus), uint8(0))

	asc.Feed([]byte("hi"))
	test.ExpectEquality(t, asc.Read(devices.ASCIIStatus), uint8(devices.ASCIIInputAvailable))
	test.ExpectEquality(t, asc.Read(devices.ASCIICount), uint8(2))
	test.ExpectEquality(t, asc.Peek(devices.ASCIIData), uint8('h'))
	test.ExpectEquality(t, asc.Read(devices.ASCIIData), uint8('h'))
	test.ExpectEquality(t, asc.Read(devices.ASCIIData), uint8('i'))
	test.ExpectEquality(t, asc.Read(devices.ASCIIData), uint8(0))

	test.ExpectSuccess(t, asc.Write(devices.ASCIIData, 'o'))
	test.ExpectSuccess(t, asc.Write(devices.ASCIIData, 'k'))
	test.ExpectEquality(t, asc.Read(devices.ASCIIStatus), uint8(devices.ASCIIOutputPending))
	test.ExpectEquality(t, w.String(), "")

	asc.Tick()
	test.ExpectEquality(t, w.String(), "ok")
	test.ExpectEquality(t, asc.Read(devices.ASCIIStatus), uint8(0))

	u, ok := asc.Widget().(devices.TextUpdate)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, u.Text, "ok")
	test.ExpectEquality(t, asc.Widget().String(), "")

	// control register
	asc.Feed([]byte("abc"))
	test.ExpectSuccess(t, asc.Write(devices.ASCIIData, 'x'))
	snap := asc.Snapshot()
	test.DemandEquality(t, len(snap), 4)
	test.ExpectEquality(t, snap[devices.ASCIIData], uint8('a'))
	test.ExpectEquality(t, snap[devices.ASCIIStatus], uint8(devices.ASCIIInputAvailable|devices.ASCIIOutputPending))
	test.ExpectEquality(t, snap[devices.ASCIICount], uint8(3))
	test.ExpectEquality(t, asc.Read(devices.ASCIICount), uint8(3))
	test.ExpectSuccess(t, asc.Write(devices.ASCIIControl, devices.ASCIIClearInput|devices.ASCIIClearOutput))
	test.ExpectEquality(t, asc.Read(devices.ASCIIStatus), uint8(0))
	asc.Tick()
	test.ExpectEquality(t, w.String(), "ok")
}

func TestASCIIWidgetLimit(t *testing.T) {
	asc := devices.NewASCII()
	w := &strings.Builder{}
	asc.AttachOutput(w)

	// output flushed to the writer is complete
	n := devices.MaxWidgetText*4 + 3
	for i := range n {
		test.ExpectSuccess(t, asc.Write(devices.ASCIIData, 'a'+uint8(i%26)))
		asc.Tick()
	}
	test.ExpectEquality(t, w.Len(), n)

	// but only the most recent characters wait for the widget
	u := asc.Widget().(devices.TextUpdate)
	test.ExpectEquality(t, len(u.Text) <= devices.MaxWidgetText, true)
	test.ExpectEquality(t, len(u.Text) > 0, true)
	test.ExpectEquality(t, strings.HasSuffix(w.String(), u.Text), true)
}

type failWriter struct {
	n int
}

func (fw *failWriter) Write(p []byte) (int, error) {
	fw.n++
	return 0, curated.Errorf("write refused")
}

func TestASCIIFailedWrite(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	asc := devices.NewASCII()
	fw := &failWriter{}
	asc.AttachOutput(fw)

	test.ExpectSuccess(t, asc.Write(devices.ASCIIData, 'x'))
	asc.Tick()
	test.ExpectEquality(t, fw.n, 1)

	// the failed output is discarded and the error logged
	test.ExpectEquality(t, asc.Read(devices.ASCIIStatus), uint8(0))
	asc.Tick()
	test.ExpectEquality(t, fw.n, 1)

	l := &strings.Builder{}
	logger.Tail(l, 1)
	test.ExpectEquality(t, strings.Contains(l.String(), "asciiio: write refused"), true)
}
