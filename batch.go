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

package lab

// RGBsToLabs converts a slice of 8-bit sRGB colors to L*a*b*.
func RGBsToLabs(rgbs [][3]uint8) []Lab {
	res := make([]Lab, len(rgbs))
	for i, rgb := range rgbs {
		res[i] = FromRGB(rgb)
	}
	return res
}

// RGBBytesToLabs converts consecutive RGB triples to L*a*b*.
// Trailing bytes which do not form a complete triple are ignored.
func RGBBytesToLabs(data []byte) []Lab {
	n := len(data) / 3
	res := make([]Lab, n)
	for i := range n {
		res[i] = fromRGB(float32(data[3*i]), float32(data[3*i+1]), float32(data[3*i+2]))
	}
	return res
}

// LabsToRGBs converts a slice of L*a*b* colors to 8-bit sRGB.
func LabsToRGBs(labs []Lab) [][3]uint8 {
	res := make([][3]uint8, len(labs))
	for i, c := range labs {
		res[i] = c.ToRGB()
	}
	return res
}

// LabsToRGBBytes converts a slice of L*a*b* colors to 8-bit sRGB,
// returning the RGB triples as one flat byte slice.
func LabsToRGBBytes(labs []Lab) []byte {
	res := make([]byte, 0, 3*len(labs))
	for _, c := range labs {
		rgb := c.ToRGB()
		res = append(res, rgb[:]...)
	}
	return res
}
