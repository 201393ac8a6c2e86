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

package setup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/hardware"
	"github.com/vm6502/vm6502/hardware/devices"
)

// LayoutError is the pattern for errors returned by ParseLayout().
const LayoutError = "layout: %v"

// DefaultLayout has RAM at the bottom of memory followed by a ROM for the
// program.
const DefaultLayout = "ram:0x0000:0x1000;rom:0x1000:0x1000"

// DefaultProgramUID is the uid of the ROM in the DefaultLayout.
const DefaultProgramUID = "rom"

// Entry is a single device in a layout.
type Entry struct {
	Kind   devices.Kind
	Origin uint16
	Size   int
	UID    string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s at %04x size %#x (%s)", e.Kind, e.Origin, e.Size, e.UID)
}

// ParseLayout parses the layout string. Nothing about the layout is checked
// beyond the syntax and the uniqueness of the uids. Overlapping entries are
// found when the layout is applied to a System.
func ParseLayout(layout string) ([]Entry, error) {
	var entries []Entry
	uids := make(map[string]bool)

	for i, s := range strings.Split(layout, ";") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		f := strings.Split(s, ":")
		if len(f) < 2 || len(f) > 4 {
			return nil, curated.Errorf(LayoutError, fmt.Sprintf("malformed entry (%s)", s))
		}

		kind, ok := devices.ParseKind(f[0])
		if !ok || kind == devices.CPU {
			return nil, curated.Errorf(LayoutError, fmt.Sprintf("unrecognised device kind (%s)", f[0]))
		}

		origin, err := strconv.ParseUint(strings.TrimSpace(f[1]), 0, 16)
		if err != nil {
			return nil, curated.Errorf(LayoutError, fmt.Sprintf("origin: %v", err))
		}

		e := Entry{
			Kind:   kind,
			Origin: uint16(origin),
		}

		if len(f) > 2 {
			size, err := strconv.ParseUint(strings.TrimSpace(f[2]), 0, 32)
			if err != nil {
				return nil, curated.Errorf(LayoutError, fmt.Sprintf("size: %v", err))
			}
			e.Size = int(size)
		}

		if len(f) > 3 {
			e.UID = strings.TrimSpace(f[3])
		}

		if e.UID == "" {
			e.UID = strings.ToLower(strings.TrimSpace(f[0]))
			if uids[e.UID] {
				e.UID = fmt.Sprintf("%s%d", e.UID, i)
			}
		}

		if uids[e.UID] {
			return nil, curated.Errorf(LayoutError, fmt.Sprintf("duplicate uid (%s)", e.UID))
		}
		uids[e.UID] = true

		entries = append(entries, e)
	}

	if len(entries) == 0 {
		return nil, curated.Errorf(LayoutError, "no devices")
	}

	return entries, nil
}

// Apply adds the devices in the layout to the System, in order.
func Apply(sys *hardware.System, entries []Entry) error {
	for _, e := range entries {
		if err := sys.AddDevice(e.Kind, e.Origin, e.Size, e.UID); err != nil {
			return curated.Errorf(LayoutError, err)
		}
	}
	return nil
}
