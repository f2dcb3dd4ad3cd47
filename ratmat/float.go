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

package ratmat

import (
	"golang.org/x/image/math/f64"
)

// Float64 returns the entries of m, each rounded to the nearest float64.
func (m *Matrix) Float64() f64.Mat3 {
	var res f64.Mat3
	for r := range 3 {
		for c := range 3 {
			res[3*r+c], _ = m[r][c].Float64()
		}
	}
	return res
}

// Float64 returns the entries of v, each rounded to the nearest float64.
func (v *Vector) Float64() f64.Vec3 {
	var res f64.Vec3
	for i := range 3 {
		res[i], _ = v[i].Float64()
	}
	return res
}
