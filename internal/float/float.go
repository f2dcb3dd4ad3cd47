// seehuhn.de/go/lab - convert between sRGB and CIE L*a*b* colors
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package float

import (
	"strconv"
	"strings"
)

// Repr returns the shortest decimal representation of x which parses
// back to x.  Fixed notation is used for decimal exponents in the range
// -4 to 15, scientific notation otherwise.  The result always contains a
// decimal point or an exponent, so that it reads as a floating point
// number.
func Repr(x float64) string {
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		// NaN and ±Inf
		return s
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		panic(err)
	}
	if e < -4 || e >= 16 {
		return mant + "e" + exp
	}

	out := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(out, '.') {
		out += ".0"
	}
	return out
}

// Round rounds x to the given number of decimal places.
func Round(x float64, digits int) float64 {
	s := strconv.FormatFloat(x, 'f', digits, 64)
	y, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err)
	}
	return y
}
