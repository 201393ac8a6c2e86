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

package notifications

// Notice describes an event that the host might want to know about.
type Notice string

// List of defined notifications.
const (
	// a feature of the hardware that the emulation does not support and
	// never will. for example, interrupts
	NotifyUnsupportedFeature Notice = "NotifyUnsupportedFeature"

	// a feature of the hardware that the emulation does not implement but may
	// do in the future. for example, decimal mode arithmetic
	NotifyUnimplementedFeature Notice = "NotifyUnimplementedFeature"

	// an instruction has been decoded but the operation is a stub
	NotifyNotYetImplemented Notice = "NotifyNotYetImplemented"

	// a write to a device was refused. for example, a write to ROM
	NotifyUnwritable Notice = "NotifyUnwritable"
)

// Notify is used for communication between the hardware and the host. The
// detail string is a human readable description of the specific event.
type Notify interface {
	Notify(notice Notice, detail string) error
}
