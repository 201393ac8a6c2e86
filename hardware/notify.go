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

package hardware

import (
	"github.com/vm6502/vm6502/logger"
	"github.com/vm6502/vm6502/notifications"
)

// notifications that are not consumed by the host are logged.
type logNotify struct{}

func (logNotify) Notify(notice notifications.Notice, detail string) error {
	logger.Logf(logger.Allow, "system", "%s: %s", notice, detail)
	return nil
}
