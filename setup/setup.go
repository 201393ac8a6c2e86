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
	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/hardware"
	"github.com/vm6502/vm6502/logger"
	"github.com/vm6502/vm6502/programloader"
)

// AttachProgram loads the program with the loader and copies it into the
// device with the uid.
func AttachProgram(sys *hardware.System, ld *programloader.Loader, uid string) error {
	if !ld.HasLoaded() {
		if err := ld.Load(); err != nil {
			return curated.Errorf("setup: %v", err)
		}
	}

	if err := sys.LoadProgram(uid, ld.Data); err != nil {
		return curated.Errorf("setup: %v", err)
	}

	logger.Logf(logger.Allow, "setup", "attached %s (%s) to %s", ld.ShortName(), ld.Hash, uid)

	return nil
}
