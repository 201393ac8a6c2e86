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

package monitor

import (
	"fmt"

	"github.com/jroimartin/gocui"
)

// view names
const (
	viewRegisters   = "registers"
	viewDisassembly = "disassembly"
	viewDevices     = "devices"
	viewOutput      = "output"
	viewLog         = "log"
)

// width of the left hand column
const leftWidth = 46

// the boundaries of every view for a terminal of the given size
type placement struct {
	name           string
	title          string
	x0, y0, x1, y1 int
}

func place(maxX, maxY int) []placement {
	return []placement{
		{name: viewRegisters, title: "Registers", x0: 0, y0: 0, x1: leftWidth - 1, y1: 3},
		{name: viewDisassembly, title: "Disassembly", x0: 0, y0: 4, x1: leftWidth - 1, y1: maxY - 1},
		{name: viewDevices, title: "Devices", x0: leftWidth, y0: 0, x1: maxX - 1, y1: 7},
		{name: viewOutput, title: "Output", x0: leftWidth, y0: 8, x1: maxX - 1, y1: maxY - logEntries - 3},
		{name: viewLog, title: "Log", x0: leftWidth, y0: maxY - logEntries - 2, x1: maxX - 1, y1: maxY - 1},
	}
}

func (mon *monitor) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	for _, p := range place(maxX, maxY) {
		v, err := g.SetView(p.name, p.x0, p.y0, p.x1, p.y1)
		if err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
			v.Title = p.title

			switch p.name {
			case viewOutput:
				v.Editable = true
				v.Wrap = true
				v.Autoscroll = true
				v.Editor = gocui.EditorFunc(mon.edit)
				if _, err := g.SetCurrentView(viewOutput); err != nil {
					return err
				}
			case viewLog:
				v.Wrap = true
				v.Autoscroll = true
			}
		}
	}

	return nil
}

// draw the frame. frames older than the most recently drawn frame are
// ignored. views that have not been created by layout() yet are skipped.
func (mon *monitor) draw(g *gocui.Gui, f frame) error {
	if f.seq <= mon.drawn {
		return nil
	}
	mon.drawn = f.seq

	for name, text := range map[string]string{
		viewRegisters:   f.registers,
		viewDisassembly: f.disasm,
		viewDevices:     f.devices,
		viewOutput:      f.output,
		viewLog:         f.log,
	} {
		v, err := g.View(name)
		if err != nil {
			continue
		}
		v.Clear()
		fmt.Fprint(v, text)

		if name == viewRegisters {
			if f.running {
				v.Title = "Registers [running]"
			} else {
				v.Title = "Registers [stopped]"
			}
		}
	}

	return nil
}
