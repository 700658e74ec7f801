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

// Package test contains helper functions to remove common boilerplate and
// make testing easier.
//
// The ExpectEquality() function compares like-typed values for equality and
// fails the test if they differ. Optional tags are prefixed to the failure
// message, which keeps table-driven tests legible when an entry fails.
//
// The ExpectSuccess() and ExpectFailure() functions test a value for
// success and failure conditions appropriate to its type. For bool values
// success means true; for error values success means nil.
//
// It is worth describing how the Expect functions handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to
// succeed. Because of how errors usually work (nil to indicate no error) we
// *need* to interpret nil in this way.
package test
