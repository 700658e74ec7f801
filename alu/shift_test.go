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

package alu_test

import (
	"testing"

	"github.com/jetsetilly/armalu/alu"
	"github.com/jetsetilly/armalu/test"
)

type shiftTest struct {
	value  uint32
	shift  uint32
	result uint32
	carry  bool
}

func TestLSL(t *testing.T) {
	tests := []shiftTest{
		{0x00000001, 0, 0x00000001, false},
		{0x00000001, 1, 0x00000002, false},
		{0x80000000, 1, 0x00000000, true},
		{0xc0000000, 1, 0x80000000, true},
		{0x00000001, 31, 0x80000000, false},
		{0x00000003, 31, 0x80000000, true},
	}

	for _, tt := range tests {
		result, carry := alu.LSL_C(tt.value, tt.shift)
		test.ExpectEquality(t, result, tt.result, tt.value, tt.shift)
		test.ExpectEquality(t, carry, tt.carry, tt.value, tt.shift)
		test.ExpectEquality(t, alu.LSL(tt.value, tt.shift), tt.result, tt.value, tt.shift)
	}
}

func TestLSR(t *testing.T) {
	tests := []shiftTest{
		{0x00000001, 0, 0x00000001, false},
		{0x00000001, 1, 0x00000000, true},
		{0x00000002, 1, 0x00000001, false},
		{0x80000000, 31, 0x00000001, false},
		{0x80000000, 32, 0x00000000, true},
	}

	for _, tt := range tests {
		result, carry := alu.LSR_C(tt.value, tt.shift)
		test.ExpectEquality(t, result, tt.result, tt.value, tt.shift)
		test.ExpectEquality(t, carry, tt.carry, tt.value, tt.shift)
		test.ExpectEquality(t, alu.LSR(tt.value, tt.shift), tt.result, tt.value, tt.shift)
	}
}

func TestASR(t *testing.T) {
	tests := []shiftTest{
		{0x80000000, 0, 0x80000000, false},

		// the sign bit is replicated
		{0x80000000, 1, 0xc0000000, false},
		{0x80000001, 1, 0xc0000000, true},
		{0xffffffff, 4, 0xffffffff, true},

		// positive values behave as LSR
		{0x00000004, 1, 0x00000002, false},
		{0x00000004, 2, 0x00000001, false},
		{0x00000004, 3, 0x00000000, true},
	}

	for _, tt := range tests {
		result, carry := alu.ASR_C(tt.value, tt.shift)
		test.ExpectEquality(t, result, tt.result, tt.value, tt.shift)
		test.ExpectEquality(t, carry, tt.carry, tt.value, tt.shift)
		test.ExpectEquality(t, alu.ASR(tt.value, tt.shift), tt.result, tt.value, tt.shift)
	}
}

func TestROR(t *testing.T) {
	tests := []shiftTest{
		{0x00000001, 0, 0x00000001, false},

		// carry is the top bit of the result
		{0x00000001, 1, 0x80000000, true},
		{0x80000000, 31, 0x00000001, false},
		{0x0000000f, 4, 0xf0000000, true},

		// amount is reduced mod 32. a full rotation returns the value with
		// the carry taken from the (unmoved) top bit
		{0x80000000, 32, 0x80000000, true},
		{0x00000001, 33, 0x80000000, true},
	}

	for _, tt := range tests {
		result, carry := alu.ROR_C(tt.value, tt.shift)
		test.ExpectEquality(t, result, tt.result, tt.value, tt.shift)
		test.ExpectEquality(t, carry, tt.carry, tt.value, tt.shift)
		test.ExpectEquality(t, alu.ROR(tt.value, tt.shift), tt.result, tt.value, tt.shift)
	}
}

func TestRRX(t *testing.T) {
	tests := []struct {
		value   uint32
		carryIn bool
		result  uint32
		carry   bool
	}{
		{0x00000001, false, 0x00000000, true},
		{0x00000001, true, 0x80000000, true},
		{0x00000002, false, 0x00000001, false},
		{0x00000002, true, 0x80000001, false},
	}

	for _, tt := range tests {
		result, carry := alu.RRX_C(tt.value, tt.carryIn)
		test.ExpectEquality(t, result, tt.result, tt.value, tt.carryIn)
		test.ExpectEquality(t, carry, tt.carry, tt.value, tt.carryIn)
		test.ExpectEquality(t, alu.RRX(tt.value, tt.carryIn), tt.result, tt.value, tt.carryIn)
	}
}

func TestShift(t *testing.T) {
	// dispatch to each of the shift styles
	result, carry := alu.Shift_C(0x00000003, alu.ShiftLSL, 31, false)
	test.ExpectEquality(t, result, uint32(0x80000000))
	test.ExpectSuccess(t, carry)

	result, carry = alu.Shift_C(0x00000001, alu.ShiftLSR, 1, false)
	test.ExpectEquality(t, result, uint32(0x00000000))
	test.ExpectSuccess(t, carry)

	result, carry = alu.Shift_C(0x80000000, alu.ShiftASR, 1, false)
	test.ExpectEquality(t, result, uint32(0xc0000000))
	test.ExpectFailure(t, carry)

	result, carry = alu.Shift_C(0x00000001, alu.ShiftROR, 1, false)
	test.ExpectEquality(t, result, uint32(0x80000000))
	test.ExpectSuccess(t, carry)

	// an ROR with a zero amount is performed as RRX. the carry-in is
	// rotated into the top bit
	result, carry = alu.Shift_C(0x00000002, alu.ShiftROR, 0, true)
	test.ExpectEquality(t, result, uint32(0x80000001))
	test.ExpectFailure(t, carry)

	// the carry-in is ignored by every other style
	result, _ = alu.Shift_C(0x00000001, alu.ShiftLSL, 1, true)
	test.ExpectEquality(t, result, uint32(0x00000002))

	// the plain form drops the carry
	test.ExpectEquality(t, alu.Shift(0x0000000f, alu.ShiftROR, 4, false), uint32(0xf0000000))
}

func TestShiftStyleString(t *testing.T) {
	test.ExpectEquality(t, alu.ShiftLSL.String(), "LSL")
	test.ExpectEquality(t, alu.ShiftLSR.String(), "LSR")
	test.ExpectEquality(t, alu.ShiftASR.String(), "ASR")
	test.ExpectEquality(t, alu.ShiftROR.String(), "ROR")
}
