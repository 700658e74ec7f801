// This file is part of armalu.
//
// armalu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// armalu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with armalu.  If not, see <https://www.gnu.org/licenses/>.

// Package alu implements the arithmetic helper functions an ARM emulator
// core needs between decoding an instruction and writing back the result.
// The functions follow the pseudo-code in the ARM architecture reference
// manuals as closely as is practical. Where a function mirrors a named
// pseudo-function, the pseudo-code is quoted in a comment alongside the
// implementation.
//
// The centre of the package is the saturating arithmetic group: the SatQ
// family of saturation primitives and the AddSat functions that implement
// the QADD group of instructions. Saturating instructions never wrap. A
// result that cannot be represented in the target width is clamped to the
// nearest boundary and the function reports that clamping took place.
//
// For example, the QADD instruction with both operands at the largest
// positive 32bit value:
//
//	r, sat := alu.AddSat(0x7fffffff, 0x7fffffff)
//	// r == 0x7fffffff, sat == true
//
// The caller decides what to do with the saturation indicator. An emulator
// implementing the APSR will want to latch it into the sticky Q flag, which
// is what the Status type is for:
//
//	var sr alu.Status
//	sr.LatchQ(sat)
//
// The SaturatingOp type selects between the saturating operations when the
// instruction has already been decoded to a mnemonic. It exists so that
// adding further saturating operations (subtract, doubling add, etc.) means
// extending one switch rather than growing a family of call sites.
//
// All functions in the package are pure and total. They keep no state,
// return no errors and are safe to call from any goroutine.
//
// Operands are passed as uint32 bit patterns. Whether a value is treated
// as signed is a property of the operation, not of the value, which is how
// the ARM references describe it (the SInt() and UInt() interpretation
// functions).
package alu
