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

// Package preferences contains the preference values for the emulated
// hardware. The values can be persisted to a preferences file with the prefs
// package.
package preferences

import (
	"fmt"

	"github.com/vm6502/vm6502/prefs"
)

// Preferences for the emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the value loaded into the program counter on reset. there is no reset
	// vector
	Origin prefs.Int

	// give the stack, flow and INC/DEC instructions their full behaviour. when
	// false the instructions raise a not yet implemented notification and
	// have no effect
	Experimental prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is not empty the values are loaded from the
// preferences file at that path.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.Origin.SetHookPre(func(v prefs.Value) error {
		if o := v.(int); o < 0 || o > 0xffff {
			return fmt.Errorf("preferences: origin out of range (%#x)", o)
		}
		return nil
	})

	p.SetDefaults()

	if path == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.origin", &p.Origin)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.experimental", &p.Experimental)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Preferences) String() string {
	return fmt.Sprintf("origin=%04x experimental=%v", p.Origin.Get().(int), p.Experimental.Get().(bool))
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Origin.Set(0)
	_ = p.Experimental.Set(false)
}

// Load hardware preferences from disk. Does nothing if there is no
// preferences file.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current hardware preferences to disk. Does nothing if there is no
// preferences file.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// ResetOrigin returns the current value of the Origin preference.
func (p *Preferences) ResetOrigin() uint16 {
	return uint16(p.Origin.Get().(int))
}

// IsExperimental returns the current value of the Experimental preference.
func (p *Preferences) IsExperimental() bool {
	return p.Experimental.Get().(bool)
}
