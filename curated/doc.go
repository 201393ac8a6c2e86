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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example, the memory package defines:
//
//	const OverlappingRange = "memory: overlapping range: %s conflicts with %s"
//
// and a caller can test for that condition with:
//
//	if curated.Is(err, memory.OverlappingRange) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. For example, the System type wraps errors from the memory
// package:
//
//	err := curated.Errorf("system: %v", memErr)
//	curated.Has(err, memory.OverlappingRange) // true
//	curated.Is(err, memory.OverlappingRange)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is
// 'expected' and false if the error is 'unexpected'.
//
// The Error() implementation normalises the error chain by removing
// duplicate adjacent parts. Chains are thought of as parts separated by the
// sub-string ': ', so that
//
//	curated.Errorf("cpu: %v", curated.Errorf("cpu: decode error"))
//
// prints as "cpu: decode error" and not "cpu: cpu: decode error".
package curated
