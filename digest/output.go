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
	"hash"
	"sync"
)

// Output is a digest of all data written to it. It is intended to be
// attached to the output of the ASCIIIO device.
type Output struct {
	crit sync.Mutex
	h    hash.Hash
	n    int
}

// NewOutput is the preferred method of initialisation for the Output type.
func NewOutput() *Output {
	return &Output{h: sha1.New()}
}

// Write implements the io.Writer interface.
func (dig *Output) Write(p []byte) (int, error) {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	dig.n += len(p)
	return dig.h.Write(p)
}

// Len returns the number of bytes written since the last reset.
func (dig *Output) Len() int {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return dig.n
}

// Hash implements the Digest interface.
func (dig *Output) Hash() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return fmt.Sprintf("%x", dig.h.Sum(nil))
}

// ResetDigest implements the Digest interface.
func (dig *Output) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	dig.h.Reset()
	dig.n = 0
}
