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

// Package lab converts 8-bit sRGB colors to CIE 1976 L*a*b* coordinates
// and back.
//
// The conversion between linear sRGB and CIE XYZ uses the matrices from
// package [seehuhn.de/go/lab/srgb], which are derived exactly from the
// sRGB primaries and the D65 white point.
//
// Single colors are converted using [FromRGB] and [Lab.ToRGB].  For slices
// of colors, see [RGBsToLabs], [LabsToRGBs], [RGBBytesToLabs] and
// [LabsToRGBBytes].
package lab

import (
	"seehuhn.de/go/lab/internal/colconv"
)

// Lab represents a color in the CIE 1976 L*a*b* color space,
// relative to the D65 white point.
type Lab struct {
	L, A, B float32
}

// FromRGB converts an 8-bit sRGB color to L*a*b*.
func FromRGB(rgb [3]uint8) Lab {
	return fromRGB(float32(rgb[0]), float32(rgb[1]), float32(rgb[2]))
}

// FromRGBA converts an 8-bit sRGB color to L*a*b*.
// The alpha value rgba[3] is ignored.
func FromRGBA(rgba [4]uint8) Lab {
	return fromRGB(float32(rgba[0]), float32(rgba[1]), float32(rgba[2]))
}

// FromRGBNormalized converts an sRGB color with components in the range
// 0-1 to L*a*b*.
func FromRGBNormalized(rgb [3]float32) Lab {
	return fromRGB(rgb[0]*255, rgb[1]*255, rgb[2]*255)
}

func fromRGB(r, g, b float32) Lab {
	x, y, z := colconv.LinearToXYZ(
		colconv.DecodeSRGB8(r),
		colconv.DecodeSRGB8(g),
		colconv.DecodeSRGB8(b))
	L, A, B := colconv.XYZToLab(x, y, z)
	return Lab{L: L, A: A, B: B}
}

// ToRGB converts the color to 8-bit sRGB.
// Colors outside the sRGB gamut are clipped.
func (c Lab) ToRGB() [3]uint8 {
	rgb := c.ToRGBNormalized()
	return [3]uint8{to8(rgb[0]), to8(rgb[1]), to8(rgb[2])}
}

// ToRGBNormalized converts the color to sRGB, with components in the
// range 0-1.  Colors outside the sRGB gamut are clipped.
func (c Lab) ToRGBNormalized() [3]float32 {
	x, y, z := colconv.LabToXYZ(c.L, c.A, c.B)
	r, g, b := colconv.XYZToLinear(x, y, z)
	return [3]float32{
		colconv.EncodeSRGB(r),
		colconv.EncodeSRGB(g),
		colconv.EncodeSRGB(b),
	}
}

// SquaredDistance returns the square of the Euclidean distance between
// c and other in L*a*b* space.
func (c Lab) SquaredDistance(other Lab) float32 {
	dL := c.L - other.L
	dA := c.A - other.A
	dB := c.B - other.B
	return dL*dL + dA*dA + dB*dB
}

// to8 maps x in the range 0-1 to the nearest integer in 0-255.
func to8(x float32) uint8 {
	return uint8(x*255 + 0.5)
}
