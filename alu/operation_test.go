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

func TestSaturatingOpExecute(t *testing.T) {
	// Execute must reach the same implementation as the direct call
	a := uint32(0x7fffffff)
	b := uint32(0x7fffffff)

	result, saturated := alu.QADD.Execute(a, b)
	test.ExpectEquality(t, result, uint32(0x7fffffff))
	test.ExpectSuccess(t, saturated)

	result, saturated = alu.QADD16.Execute(a, b)
	test.ExpectEquality(t, result, uint32(0x7fff7fff))
	test.ExpectSuccess(t, saturated)

	result, saturated = alu.UQADD16.Execute(a, b)
	test.ExpectEquality(t, result, uint32(0xfffeffff))
	test.ExpectSuccess(t, saturated)
}

func TestSaturatingOpString(t *testing.T) {
	test.ExpectEquality(t, alu.QADD.String(), "QADD")
	test.ExpectEquality(t, alu.QADD16.String(), "QADD16")
	test.ExpectEquality(t, alu.UQADD16.String(), "UQADD16")
}

func TestSaturatingOpUnknown(t *testing.T) {
	defer test.ExpectPanic(t)
	alu.SaturatingOp(100).Execute(0, 0)
}
