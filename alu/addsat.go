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

// AddSat adds two 32bit values treating both as signed, clamping the result
// to the signed 32bit range. This is the operation of the QADD instruction.
//
// "QADD" of "ARMv7-M":
//
//	(R[d], sat) = SignedSatQ(SInt(R[n]) + SInt(R[m]), 32);
//	if sat then
//		APSR.Q = '1';
//
// the Q flag update is the caller's responsibility. see the Status type
func AddSat(a uint32, b uint32) (uint32, bool) {
	return SignedSatQ(int64(int32(a))+int64(int32(b)), 32)
}

// AddSat16 adds the two signed 16bit halfwords of a to the corresponding
// halfwords of b. Each halfword sum is clamped to the signed 16bit range
// independently of the other. No carry propagates between the halfwords.
// This is the operation of the QADD16 instruction.
//
// "QADD16" of "ARMv7-M":
//
//	sum1 = SInt(R[n]<15:0>) + SInt(R[m]<15:0>);
//	sum2 = SInt(R[n]<31:16>) + SInt(R[m]<31:16>);
//	R[d]<15:0> = SignedSat(sum1, 16);
//	R[d]<31:16> = SignedSat(sum2, 16);
//
// the reference pseudo-code discards the per-halfword saturation
// indicators (QADD16 never updates the Q flag). they are OR'd together and
// returned here for callers that want the information
func AddSat16(a uint32, b uint32) (uint32, bool) {
	sum1 := int64(int16(a)) + int64(int16(b))
	sum2 := int64(int16(a>>16)) + int64(int16(b>>16))
	lo, satLo := SignedSatQ(sum1, 16)
	hi, satHi := SignedSatQ(sum2, 16)
	return hi<<16 | lo, satLo || satHi
}

// AddSat16Unsigned is the unsigned counterpart of AddSat16, clamping each
// halfword sum to the unsigned 16bit range. This is the operation of the
// UQADD16 instruction.
//
// "UQADD16" of "ARMv7-M":
//
//	sum1 = UInt(R[n]<15:0>) + UInt(R[m]<15:0>);
//	sum2 = UInt(R[n]<31:16>) + UInt(R[m]<31:16>);
//	R[d]<15:0> = UnsignedSat(sum1, 16);
//	R[d]<31:16> = UnsignedSat(sum2, 16);
func AddSat16Unsigned(a uint32, b uint32) (uint32, bool) {
	sum1 := int64(a&0xffff) + int64(b&0xffff)
	sum2 := int64(a>>16) + int64(b>>16)
	lo, satLo := UnsignedSatQ(sum1, 16)
	hi, satHi := UnsignedSatQ(sum2, 16)
	return hi<<16 | lo, satLo || satHi
}
