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

// Package notifications allow the emulated hardware to communicate events to
// the host without returning an error. The CPU raises a notification when it
// meets an instruction it cannot execute fully and the memory manager raises
// one when a device refuses a write. In both cases emulation continues.
//
// A host can present the notification to the user. Notifications that are not
// consumed by a host should be logged.
package notifications
