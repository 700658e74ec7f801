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

// SaturatingOp selects between the saturating operations in the package.
// Decoders produce a SaturatingOp and the execution stage calls Execute()
// with the two source register values.
type SaturatingOp int

// List of valid SaturatingOp values. Named after the instruction mnemonics.
const (
	QADD SaturatingOp = iota
	QADD16
	UQADD16
)

func (op SaturatingOp) String() string {
	switch op {
	case QADD:
		return "QADD"
	case QADD16:
		return "QADD16"
	case UQADD16:
		return "UQADD16"
	}
	panic("unpredictable saturating operation")
}

// Execute performs the selected operation on the two operands. The boolean
// indicates whether any part of the result was clamped.
//
// A SaturatingOp value outside the declared constants is a decoder bug and
// causes a panic, there is no meaningful result to return.
func (op SaturatingOp) Execute(a uint32, b uint32) (uint32, bool) {
	switch op {
	case QADD:
		return AddSat(a, b)
	case QADD16:
		return AddSat16(a, b)
	case UQADD16:
		return AddSat16Unsigned(a, b)
	}
	panic("unpredictable saturating operation")
}
