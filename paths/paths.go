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

package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources in the current directory.
const localResourcePath = ".vm6502"

// the name of the resource directory in the user's config directory.
const configResourcePath = "vm6502"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. The directory is
// created if it does not exist. The file is not.
//
// Both arguments can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, file), nil
}

// getBasePath returns the local resource path if it exists in the current
// directory. Otherwise the resource path in the user's config directory is
// used. The subPth is created in the base path if required.
func getBasePath(subPth string) (string, error) {
	base := localResourcePath

	if _, err := os.Stat(localResourcePath); err != nil {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(cnf, configResourcePath)
	}

	pth := filepath.Join(base, subPth)
	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
