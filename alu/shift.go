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

package alu

// The _C suffix convention is taken from the ARM references: the _C form
// of a shift function returns the carry-out alongside the shifted value.
// The plain form discards the carry.
//
// The reference pseudo-code declares the shift amount of the _C forms to
// be non-zero (a zero amount is resolved during decoding). The functions
// here accept a zero amount and return the value unshifted with a false
// carry, which saves callers a branch when the amount comes straight from
// a register.

// LSL_C is logical shift left with carry-out. The carry is the last bit
// shifted out of the top of the value.
//
// "A2.2.2 Standard integer arithmetic" of "ARMv7-M":
//
//	(bits(N), bit) LSL_C(bits(N) x, integer shift)
//		assert shift > 0;
//		extended_x = x : Zeros(shift);
//		result = extended_x<N-1:0>;
//		carry_out = extended_x<N>;
//		return (result, carry_out);
func LSL_C(value uint32, shift uint32) (uint32, bool) {
	if shift == 0 {
		return value, false
	}
	return value << shift, (value<<(shift-1))>>31&1 == 1
}

// LSL is LSL_C without the carry-out.
func LSL(value uint32, shift uint32) uint32 {
	result, _ := LSL_C(value, shift)
	return result
}

// LSR_C is logical shift right with carry-out. The carry is the last bit
// shifted out of the bottom of the value.
//
// "A2.2.2 Standard integer arithmetic" of "ARMv7-M":
//
//	(bits(N), bit) LSR_C(bits(N) x, integer shift)
//		assert shift > 0;
//		extended_x = ZeroExtend(x, shift+N);
//		result = extended_x<shift+N-1:shift>;
//		carry_out = extended_x<shift-1>;
//		return (result, carry_out);
func LSR_C(value uint32, shift uint32) (uint32, bool) {
	if shift == 0 {
		return value, false
	}
	return value >> shift, value>>(shift-1)&1 == 1
}

// LSR is LSR_C without the carry-out.
func LSR(value uint32, shift uint32) uint32 {
	result, _ := LSR_C(value, shift)
	return result
}

// ASR_C is arithmetic shift right with carry-out. The sign bit is
// replicated into the vacated positions.
//
// "A2.2.2 Standard integer arithmetic" of "ARMv7-M":
//
//	(bits(N), bit) ASR_C(bits(N) x, integer shift)
//		assert shift > 0;
//		extended_x = SignExtend(x, shift+N);
//		result = extended_x<shift+N-1:shift>;
//		carry_out = extended_x<shift-1>;
//		return (result, carry_out);
func ASR_C(value uint32, shift uint32) (uint32, bool) {
	if shift == 0 {
		return value, false
	}
	return uint32(int32(value) >> shift), value>>(shift-1)&1 == 1
}

// ASR is ASR_C without the carry-out.
func ASR(value uint32, shift uint32) uint32 {
	result, _ := ASR_C(value, shift)
	return result
}

// ROR_C is rotate right with carry-out. The carry is the top bit of the
// rotated result. The amount is reduced modulo 32.
//
// Page A2-27 of "ARMv7-M":
//
//	(bits(N), bit) ROR_C(bits(N) x, integer shift)
//		assert shift != 0;
//		m = shift MOD N;
//		result = LSR(x,m) OR LSL(x,N-m);
//		carry_out = result<N-1>;
//		return (result, carry_out);
func ROR_C(value uint32, shift uint32) (uint32, bool) {
	if shift == 0 {
		return value, false
	}
	m := shift % 32
	result := (value >> m) | (value << (32 - m))
	return result, result&0x80000000 == 0x80000000
}

// ROR is ROR_C without the carry-out.
func ROR(value uint32, shift uint32) uint32 {
	result, _ := ROR_C(value, shift)
	return result
}

// RRX_C is rotate right with extend: a one bit rotation through the carry
// flag. The carry-in becomes the new top bit and the old bottom bit becomes
// the carry-out.
//
// Page A2-27 of "ARMv7-M":
//
//	(bits(N), bit) RRX_C(bits(N) x, bit carry_in)
//		result = carry_in : x<N-1:1>;
//		carry_out = x<0>;
//		return (result, carry_out);
func RRX_C(value uint32, carryIn bool) (uint32, bool) {
	result := value >> 1
	if carryIn {
		result |= 0x80000000
	}
	return result, value&0x01 == 0x01
}

// RRX is RRX_C without the carry-out.
func RRX(value uint32, carryIn bool) uint32 {
	result, _ := RRX_C(value, carryIn)
	return result
}

// ShiftStyle selects a barrel shifter operation for the Shift_C and Shift
// functions. There is no RRX style: an ROR with a zero amount means RRX,
// which is how the instruction encodings distinguish the two.
type ShiftStyle int

// List of valid ShiftStyle values.
const (
	ShiftLSL ShiftStyle = iota
	ShiftLSR
	ShiftASR
	ShiftROR
)

func (style ShiftStyle) String() string {
	switch style {
	case ShiftLSL:
		return "LSL"
	case ShiftLSR:
		return "LSR"
	case ShiftASR:
		return "ASR"
	case ShiftROR:
		return "ROR"
	}
	panic("unpredictable shift style")
}

// Shift_C performs the selected shift with carry-out. The carry-in is only
// consulted for the ROR style with a zero amount, which is performed as an
// RRX.
//
// "Shift_C()" of "ARMv7-M" (the decode of SRType to RRX happens earlier in
// the reference but is folded in here, following the encodings):
//
//	(bits(N), bit) Shift_C(bits(N) value, SRType type, integer amount, bit carry_in)
func Shift_C(value uint32, style ShiftStyle, amount uint32, carryIn bool) (uint32, bool) {
	switch style {
	case ShiftLSL:
		return LSL_C(value, amount)
	case ShiftLSR:
		return LSR_C(value, amount)
	case ShiftASR:
		return ASR_C(value, amount)
	case ShiftROR:
		if amount != 0 {
			return ROR_C(value, amount)
		}
		return RRX_C(value, carryIn)
	}
	panic("unpredictable shift style")
}

// Shift is Shift_C without the carry-out.
func Shift(value uint32, style ShiftStyle, amount uint32, carryIn bool) uint32 {
	result, _ := Shift_C(value, style, amount, carryIn)
	return result
}
