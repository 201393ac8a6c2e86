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

// Package prefs facilitates the persistence of preference values. Preference
// values are typed (Bool, Int, String) and are registered with a Disk
// instance under a key. The Disk type stores every registered value in a text
// file, one "key :: value" entry per line.
//
// Values can be overridden from the command line with a prefs string of the
// form "key::value; key::value". See PushCommandLineStack().
package prefs
