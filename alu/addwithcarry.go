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

import "math/bits"

// AddWithCarry returns the sum of a, b and the carry-in c (which must be
// 0 or 1), along with the carry and overflow indicators.
//
// "A2.2.1 Integer arithmetic" of "ARMv7-M":
//
//	(bits(N), bit, bit) AddWithCarry(bits(N) x, bits(N) y, bit carry_in)
//		unsigned_sum = UInt(x) + UInt(y) + UInt(carry_in);
//		signed_sum = SInt(x) + SInt(y) + UInt(carry_in);
//		result = unsigned_sum<N-1:0>;
//		carry_out = if UInt(result) == unsigned_sum then '0' else '1';
//		overflow = if SInt(result) == signed_sum then '0' else '1';
//		return (result, carry_out, overflow);
//
// the implementation works on the bit-31 partial sums rather than widening
// to 64 bits as the pseudo-code suggests. the outcome is the same
func AddWithCarry(a uint32, b uint32, c uint32) (uint32, bool, bool) {
	d := (a & 0x7fffffff) + (b & 0x7fffffff) + c
	d = (d >> 31) + (a >> 31) + (b >> 31)
	carry := d&0x02 == 0x02

	d = (a & 0x7fffffff) + (b & 0x7fffffff) + c
	d >>= 31
	e := (d & 0x01) + ((a >> 31) & 0x01) + ((b >> 31) & 0x01)
	e >>= 1
	overflow := (d^e)&0x01 == 0x01

	return a + b + c, carry, overflow
}

// BitCount returns the number of set bits in x. Equivalent to the
// BitCount() pseudo-function used by the load/store multiple and multiply
// instruction descriptions.
func BitCount(x uint32) uint32 {
	return uint32(bits.OnesCount32(x))
}
