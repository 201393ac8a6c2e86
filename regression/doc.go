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

// Package regression facilitates the regression testing of emulation code.
// By adding test results to a database, the tests can be rerun automatically
// and checked for consistency.
//
// Currently there is one regression type. The ProgramRegression runs a
// program image on a device layout for a fixed number of ticks. The state of
// the system is fingerprinted at regular intervals with the digest package,
// as is all output written by the first ASCIIIO device. The regression
// passes if both fingerprints match the values recorded when the regression
// was added.
//
// There is no retention of explicit emulation state (except the
// fingerprints) so a program that changes will fail its regression.
package regression
