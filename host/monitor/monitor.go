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
	"context"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/hardware"
	"github.com/vm6502/vm6502/hardware/devices"
	"github.com/vm6502/vm6502/host/report"
	"github.com/vm6502/vm6502/host/scrollback"
	"github.com/vm6502/vm6502/logger"
	"github.com/vm6502/vm6502/performance/limiter"
)

// how often the views are redrawn
const refreshInterval = time.Second / 15

// number of ticks between checks for commands when the system is running
const batchSize = 1000

// number of entries in the disassembly view
const disasmEntries = 40

// number of lines kept of the ASCIIIO output
const outputLines = 200

// number of log entries shown
const logEntries = 10

// Options for the Run() function.
type Options struct {
	// ticks per second when running. zero or less is unlimited
	Rate int
}

type command int

const (
	cmdStep command = iota
	cmdRunStop
	cmdReset
	cmdHardReset
)

// frame is the text of every view, prepared by the emulation goroutine and
// drawn by the gui goroutine.
type frame struct {
	seq       int
	running   bool
	registers string
	disasm    string
	devices   string
	output    string
	log       string
}

type monitor struct {
	sys    *hardware.System
	asc    *devices.ASCII
	output *scrollback.Buffer

	commands chan command

	// owned by the emulation goroutine
	running bool
	seq     int

	// owned by the gui goroutine
	drawn int
}

func newMonitor(sys *hardware.System, asc *devices.ASCII) *monitor {
	return &monitor{
		sys:      sys,
		asc:      asc,
		output:   scrollback.NewBuffer(outputLines),
		commands: make(chan command, 16),
	}
}

// Run the monitor until the user quits or the context is cancelled. The asc
// argument can be nil.
func Run(ctx context.Context, sys *hardware.System, asc *devices.ASCII, opts Options) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer g.Close()

	mon := newMonitor(sys, asc)
	g.SetManagerFunc(mon.layout)
	if err := mon.keybindings(g); err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	if asc != nil {
		asc.AttachOutput(mon.output)
		defer asc.AttachOutput(nil)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- mon.emulate(ctx, g, opts)
	}()

	err = g.MainLoop()
	cancel()
	emuErr := <-done

	if err != nil && err != gocui.ErrQuit {
		return curated.Errorf("monitor: %v", err)
	}
	return emuErr
}

func (mon *monitor) keybindings(g *gocui.Gui) error {
	quit := func(_ *gocui.Gui, _ *gocui.View) error {
		return gocui.ErrQuit
	}
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		return err
	}

	for key, cmd := range map[gocui.Key]command{
		gocui.KeyF5: cmdRunStop,
		gocui.KeyF6: cmdStep,
		gocui.KeyF8: cmdReset,
		gocui.KeyF9: cmdHardReset,
	} {
		if err := g.SetKeybinding("", key, gocui.ModNone, func(_ *gocui.Gui, _ *gocui.View) error {
			mon.send(cmd)
			return nil
		}); err != nil {
			return err
		}
	}

	return nil
}

// send a command to the emulation goroutine. the command is dropped if the
// queue is full.
func (mon *monitor) send(cmd command) {
	select {
	case mon.commands <- cmd:
	default:
	}
}

// edit feeds keypresses in the output view to the ASCIIIO device.
func (mon *monitor) edit(_ *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	if mon.asc == nil {
		return
	}

	switch {
	case ch != 0 && ch < 0x80 && mod == gocui.ModNone:
		mon.asc.Feed([]byte{uint8(ch)})
	case key == gocui.KeySpace:
		mon.asc.Feed([]byte{' '})
	case key == gocui.KeyEnter:
		mon.asc.Feed([]byte{'\n'})
	case key == gocui.KeyBackspace || key == gocui.KeyBackspace2:
		mon.asc.Feed([]byte{0x08})
	}
}

// emulate runs on its own goroutine and is the only goroutine that touches
// the system.
func (mon *monitor) emulate(ctx context.Context, g *gocui.Gui, opts Options) error {
	refresh := time.NewTicker(refreshInterval)
	defer refresh.Stop()

	batch := batchSize
	var lim *limiter.Limiter
	if opts.Rate > 0 {
		var err error
		lim, err = limiter.NewLimiter(max(1, opts.Rate/batchSize))
		if err != nil {
			return err
		}
		defer lim.Stop()
		batch = min(batchSize, opts.Rate)
	}

	mon.publish(g)

	for {
		if mon.running {
			select {
			case <-ctx.Done():
				return nil
			case cmd := <-mon.commands:
				mon.command(cmd)
			case <-refresh.C:
				mon.publish(g)
			default:
				if lim != nil {
					lim.Wait()
				}
				if err := mon.sys.TickX(batch); err != nil {
					logger.Log(logger.Allow, "monitor", err)
					mon.running = false
					mon.publish(g)
				}
			}
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case cmd := <-mon.commands:
			mon.command(cmd)
			mon.publish(g)
		case <-refresh.C:
			mon.publish(g)
		}
	}
}

func (mon *monitor) command(cmd command) {
	switch cmd {
	case cmdStep:
		if mon.running {
			return
		}
		if err := mon.sys.Step(); err != nil {
			logger.Log(logger.Allow, "monitor", err)
		}
	case cmdRunStop:
		mon.running = !mon.running
	case cmdReset:
		mon.sys.ResetSystem()
	case cmdHardReset:
		mon.sys.ResetHard()
		mon.output.Clear()
	}
}

// snapshot prepares a frame from the current state of the system.
func (mon *monitor) snapshot() frame {
	mon.seq++

	lg := strings.Builder{}
	logger.Tail(&lg, logEntries)

	return frame{
		seq:       mon.seq,
		running:   mon.running,
		registers: report.Registers(mon.sys),
		disasm:    report.Disassembly(mon.sys, disasmEntries),
		devices:   report.Devices(mon.sys),
		output:    mon.output.String(),
		log:       strings.TrimSuffix(lg.String(), "\n"),
	}
}

// publish a frame to the gui goroutine. calls to Update() are not guaranteed
// to run in order so older frames are discarded by draw().
func (mon *monitor) publish(g *gocui.Gui) {
	f := mon.snapshot()
	g.Update(func(g *gocui.Gui) error {
		return mon.draw(g, f)
	})
}
