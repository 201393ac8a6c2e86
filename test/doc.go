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

// Package test contains helper functions to remove common boilerplate from
// the package tests.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions stop the test immediately, which is useful when the value
// is needed by the rest of the test. For example, the length of a slice
// should be demanded before iterating over it.
//
// The success and failure functions interpret their argument according to
// type:
//
//	bool -> true is success
//	error -> nil is success
//
// An untyped nil is always considered a success because that is how a nil
// error arrives through an interface{} argument.
package test
