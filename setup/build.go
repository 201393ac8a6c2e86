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

	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/hardware"
	"github.com/vm6502/vm6502/hardware/devices"
	"github.com/vm6502/vm6502/hardware/preferences"
	"github.com/vm6502/vm6502/logger"
	"github.com/vm6502/vm6502/programloader"
)

// Config describes a System and the program to run on it.
type Config struct {
	// device layout. see ParseLayout()
	Layout string

	// filename of the program image and the uid of the ROM to load it into
	Program string
	UID     string

	// reset address. a negative value means the Origin preference is used,
	// unless it is zero, in which case the origin of the program device is
	// used
	Origin int

	// sets the Experimental preference when true. a false value leaves the
	// preference unchanged
	Experimental bool
}

// DefaultConfig returns a Config with the default layout and program uid, and
// the program origin chosen by the preferences or the layout.
func DefaultConfig(program string) Config {
	return Config{
		Layout:  DefaultLayout,
		Program: program,
		UID:     DefaultProgramUID,
		Origin:  -1,
	}
}

// Build a System from the Config. The preferences are altered by the Origin
// and Experimental fields. If prefs is nil then the default preferences are
// used.
//
// The System is reset and ready to run.
func Build(prefs *preferences.Preferences, cfg Config) (*hardware.System, *programloader.Loader, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, nil, curated.Errorf("setup: %v", err)
		}
	}

	if cfg.Experimental {
		if err := prefs.Experimental.Set(true); err != nil {
			return nil, nil, curated.Errorf("setup: %v", err)
		}
	}

	sys, err := hardware.NewSystem(prefs, nil)
	if err != nil {
		return nil, nil, curated.Errorf("setup: %v", err)
	}

	entries, err := ParseLayout(cfg.Layout)
	if err != nil {
		return nil, nil, err
	}
	if err := Apply(sys, entries); err != nil {
		return nil, nil, err
	}

	ld := programloader.NewLoader(cfg.Program)
	if err := AttachProgram(sys, &ld, cfg.UID); err != nil {
		return nil, nil, err
	}

	origin := cfg.Origin
	if origin < 0 && prefs.ResetOrigin() == 0 {
		o, err := ProgramOrigin(sys, cfg.UID)
		if err != nil {
			return nil, nil, err
		}
		origin = int(o)
	}
	if origin >= 0 {
		if err := prefs.Origin.Set(origin); err != nil {
			return nil, nil, curated.Errorf("setup: %v", err)
		}
	}

	// the reset picks up the origin
	sys.ResetSystem()
	logger.Logf(logger.Allow, "setup", "%s", prefs)

	return sys, &ld, nil
}

// ProgramOrigin returns the origin of the device with the uid.
func ProgramOrigin(sys *hardware.System, uid string) (uint16, error) {
	_, idx, ok := sys.Memory().DeviceByUID(uid)
	if !ok {
		return 0, curated.Errorf(devices.ConfigurationError, fmt.Sprintf("no device with uid %q", uid))
	}
	return sys.Devices()[idx].Origin, nil
}
