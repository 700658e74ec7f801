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

import "strings"

// Status is the condition flag portion of the APSR. The functions in this
// package never touch a Status themselves. They return their indicators
// explicitly and the execution component latches them into a Status as the
// instruction being emulated requires.
//
// Status is a plain value type. Copy it freely.
type Status struct {
	// basic condition flags, updated by the flag-setting instructions
	Negative bool
	Zero     bool
	Carry    bool
	Overflow bool

	// the sticky saturation flag. set by the saturating and some other DSP
	// instructions and only ever cleared explicitly
	Saturation bool
}

// String renders the flags in the conventional NZCVQ order. An upper-case
// letter means the flag is set.
func (sr Status) String() string {
	s := strings.Builder{}
	s.WriteString("Status: ")

	if sr.Negative {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}
	if sr.Saturation {
		s.WriteRune('Q')
	} else {
		s.WriteRune('q')
	}

	return s.String()
}

// Reset clears the condition flags. The saturation flag is left alone, it
// has its own clearing function.
func (sr *Status) Reset() {
	sr.Negative = false
	sr.Zero = false
	sr.Carry = false
	sr.Overflow = false
}

// SetNZ sets the negative and zero flags from a result value.
func (sr *Status) SetNZ(result uint32) {
	sr.Negative = result&0x80000000 == 0x80000000
	sr.Zero = result == 0x00
}

// SetCarry sets the carry flag.
func (sr *Status) SetCarry(carry bool) {
	sr.Carry = carry
}

// SetOverflow sets the overflow flag.
func (sr *Status) SetOverflow(overflow bool) {
	sr.Overflow = overflow
}

// LatchQ ORs the saturated indicator into the sticky saturation flag. A
// false argument never clears the flag.
//
//	r, sat := alu.AddSat(a, b)
//	sr.LatchQ(sat)
func (sr *Status) LatchQ(saturated bool) {
	sr.Saturation = sr.Saturation || saturated
}

// ClearQ clears the sticky saturation flag. In the emulated architecture
// this corresponds to an explicit MSR write to the APSR.
func (sr *Status) ClearQ() {
	sr.Saturation = false
}
