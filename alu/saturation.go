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

// SignedSatQ clamps i to the range of a signed integer of the given width.
// The returned value is the low 'width' bits of the clamped result. The
// boolean indicates whether clamping took place.
//
// i must be the exact sum (or other intermediate result) computed in the
// full range of the int64, never a value that has already wrapped.
//
// "A2.2.1 Integer arithmetic" of "ARMv7-M":
//
//	(bits(N), boolean) SignedSatQ(integer i, integer N)
//		if i > 2^(N-1) - 1 then
//			result = 2^(N-1) - 1; saturated = TRUE;
//		elsif i < -(2^(N-1)) then
//			result = -(2^(N-1)); saturated = TRUE;
//		else
//			result = i; saturated = FALSE;
//		return (result<N-1:0>, saturated);
func SignedSatQ(i int64, width uint32) (uint32, bool) {
	max := int64(1)<<(width-1) - 1
	min := -(int64(1) << (width - 1))

	var result int64
	var saturated bool

	if i > max {
		result = max
		saturated = true
	} else if i < min {
		result = min
		saturated = true
	} else {
		result = i
	}

	return uint32(uint64(result) & (uint64(1)<<width - 1)), saturated
}

// UnsignedSatQ clamps i to the range of an unsigned integer of the given
// width. The same conditions apply as for SignedSatQ.
//
// "A2.2.1 Integer arithmetic" of "ARMv7-M":
//
//	(bits(N), boolean) UnsignedSatQ(integer i, integer N)
//		if i > 2^N - 1 then
//			result = 2^N - 1; saturated = TRUE;
//		elsif i < 0 then
//			result = 0; saturated = TRUE;
//		else
//			result = i; saturated = FALSE;
//		return (result<N-1:0>, saturated);
func UnsignedSatQ(i int64, width uint32) (uint32, bool) {
	max := int64(1)<<width - 1

	var result int64
	var saturated bool

	if i > max {
		result = max
		saturated = true
	} else if i < 0 {
		result = 0
		saturated = true
	} else {
		result = i
	}

	return uint32(uint64(result) & (uint64(1)<<width - 1)), saturated
}

// SatQ selects between SignedSatQ and UnsignedSatQ. It corresponds to the
// SatQ() pseudo-function used throughout the instruction descriptions.
func SatQ(i int64, width uint32, unsigned bool) (uint32, bool) {
	if unsigned {
		return UnsignedSatQ(i, width)
	}
	return SignedSatQ(i, width)
}

// SignedSat is SignedSatQ without the saturation indicator.
func SignedSat(i int64, width uint32) uint32 {
	result, _ := SignedSatQ(i, width)
	return result
}

// UnsignedSat is UnsignedSatQ without the saturation indicator.
func UnsignedSat(i int64, width uint32) uint32 {
	result, _ := UnsignedSatQ(i, width)
	return result
}
