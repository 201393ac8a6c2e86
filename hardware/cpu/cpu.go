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

package cpu

import (
	"fmt"

	"github.com/vm6502/vm6502/hardware/cpu/instructions"
	"github.com/vm6502/vm6502/hardware/cpu/registers"
	"github.com/vm6502/vm6502/hardware/memory/bus"
	"github.com/vm6502/vm6502/hardware/preferences"
	"github.com/vm6502/vm6502/logger"
	"github.com/vm6502/vm6502/notifications"
)

// Memory is the CPU's view of the address space. The CPU places the address
// on the bus and asks for a read or a write. The result of a read is the
// data on the bus.
type Memory interface {
	Bus() *bus.Bus
	DispatchRead()
	DispatchWrite()
}

// progress of the instruction in flight. created when the opcode is fetched
// and discarded when the instruction completes.
type progress struct {
	defn *instructions.Definition

	// index of the next micro-step in the sequence for the addressing mode
	step int

	// the operation acts on memory rather than the accumulator
	targetIsMem bool

	// the Experimental preference as it was when the opcode was fetched
	experimental bool
}

// CPU implements the 6502 found in the virtual machine. Register fields are
// exported for the benefit of the host. They should not be changed while an
// instruction is in flight.
type CPU struct {
	prefs  *preferences.Preferences
	notify notifications.Notify

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// operand bytes of the current instruction
	itr uint16

	// effective address of the current instruction
	address uint16

	// zero page pointer of the indirect modes
	ptr uint8

	// data for read-modify-write instructions
	alu registers.Register

	progress *progress

	// result of the most recent instruction. valid once the first opcode has
	// been fetched
	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU type. Both
// arguments can be nil. Without preferences the CPU resets to address zero
// and the Experimental preference is false. Without a notify argument
// notifications are logged.
func NewCPU(prefs *preferences.Preferences, notify notifications.Notify) *CPU {
	mc := &CPU{
		prefs:  prefs,
		notify: notify,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and aborts any instruction in flight. The
// PC is loaded with the Origin preference. There is no reset vector.
func (mc *CPU) Reset() {
	var origin uint16
	if mc.prefs != nil {
		origin = mc.prefs.ResetOrigin()
	}

	mc.PC = registers.NewProgramCounter(origin)
	mc.A = registers.NewRegister(0, "A")
	mc.X = registers.NewRegister(0, "X")
	mc.Y = registers.NewRegister(0, "Y")
	mc.SP = registers.NewRegister(0, "SP")
	mc.Status.Reset()
	mc.alu = registers.NewRegister(0, "alu")
	mc.itr = 0
	mc.address = 0
	mc.ptr = 0
	mc.progress = nil
	mc.LastResult = Result{}
}

// InFlight returns true if an instruction has been fetched and has not yet
// completed. The next call to Tick() will not fetch a new opcode.
func (mc *CPU) InFlight() bool {
	return mc.progress != nil
}

// Tick advances the CPU by one micro-step.
//
// An opcode that cannot be decoded causes a DecodeError to be returned. The
// PC will have moved past the opcode and the next call to Tick() will fetch
// the following byte.
func (mc *CPU) Tick(mem Memory) error {
	if mc.progress == nil {
		return mc.fetch(mem)
	}

	seq := sequences[mc.progress.defn.AddressingMode]
	step := seq[mc.progress.step]
	mc.progress.step++
	mc.LastResult.Cycles++

	err := step(mc, mem)

	if mc.progress.step >= len(seq) {
		mc.LastResult.Final = true
		mc.progress = nil
	}

	return err
}

func (mc *CPU) fetch(mem Memory) error {
	mc.LastResult = Result{
		Address: mc.PC.Address(),
		Cycles:  1,
	}

	opcode := mc.read(mem, mc.PC.Address())
	mc.PC.Increment()

	defn, err := instructions.Decode(opcode)
	if err != nil {
		mc.LastResult.Final = true
		return err
	}

	mc.LastResult.Defn = defn
	mc.progress = &progress{
		defn:        defn,
		targetIsMem: defn.AddressingMode != instructions.Accumulator,
	}
	if mc.prefs != nil {
		mc.progress.experimental = mc.prefs.IsExperimental()
	}

	return nil
}

func (mc *CPU) read(mem Memory, address uint16) uint8 {
	b := mem.Bus()
	b.SetAddr(address)
	mem.DispatchRead()
	return b.Data()
}

func (mc *CPU) write(mem Memory, address uint16, data uint8) {
	b := mem.Bus()
	b.SetAddr(address)
	b.SetData(data)
	mem.DispatchWrite()
}

// raise a notification. the detail is logged if there is nothing to notify.
func (mc *CPU) raise(notice notifications.Notice, detail string) error {
	if mc.notify == nil {
		logger.Logf(logger.Allow, "cpu", "%s: %s", notice, detail)
		return nil
	}
	return mc.notify.Notify(notice, detail)
}
