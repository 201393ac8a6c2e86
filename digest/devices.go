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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/vm6502/vm6502/hardware"
)

// Devices is a digest of the CPU registers and the storage of every device
// that supports snapshots. Each call to Update() chains the new state onto
// the previous hash.
type Devices struct {
	sys    *hardware.System
	digest [sha1.Size]byte
	buffer []byte
}

// NewDevices is the preferred method of initialisation for the Devices type.
func NewDevices(sys *hardware.System) *Devices {
	return &Devices{sys: sys}
}

// Hash implements the Digest interface.
func (dig *Devices) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Devices) ResetDigest() {
	clear(dig.digest[:])
}

// Update the digest with the current state of the system.
func (dig *Devices) Update() {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the data
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	dig.buffer = append(dig.buffer, dig.sys.CPU().String()...)

	for _, s := range dig.sys.Devices() {
		snap, ok := dig.sys.Snapshot(s.Index)
		if !ok {
			continue
		}
		dig.buffer = append(dig.buffer, s.String()...)
		dig.buffer = append(dig.buffer, snap...)
	}

	dig.digest = sha1.Sum(dig.buffer)
}
