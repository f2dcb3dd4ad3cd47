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

// Package colconv implements the scalar steps of the conversion between
// 8-bit sRGB values and CIE 1976 L*a*b* coordinates.
package colconv

import (
	"github.com/chewxy/math32"

	"seehuhn.de/go/lab/srgb"
)

// κ and ε as recommended in http://www.brucelindbloom.com/LContinuity.html,
// in place of the rounded values from the CIE standard.
const (
	kappa       = 24389.0 / 27.0
	epsilon     = 216.0 / 24389.0
	cbrtEpsilon = 6.0 / 29.0
)

var (
	rgbToXYZ [9]float32
	xyzToRGB [9]float32
	white    [3]float32
)

func init() {
	for i := range 9 {
		rgbToXYZ[i] = float32(srgb.RGBToXYZMatrix[i])
		xyzToRGB[i] = float32(srgb.XYZToRGBMatrix[i])
	}
	for i := range 3 {
		white[i] = float32(srgb.WhiteD65[i])
	}
}

// DecodeSRGB8 maps an sRGB component value in the range 0-255 to linear
// light in the range 0-1.  Fractional inputs are allowed.
func DecodeSRGB8(c float32) float32 {
	if c > 10 {
		const a = 0.055 * 255
		const d = 1.055 * 255
		return math32.Pow((c+a)/d, 2.4)
	}
	const d = 12.92 * 255
	return c / d
}

// EncodeSRGB maps linear light to an sRGB component value in the range
// 0-1.  The result is clamped; NaN maps to 1.
func EncodeSRGB(c float32) float32 {
	if c > 0.0031308 {
		c = 1.055*math32.Pow(c, 1/2.4) - 0.055
	} else {
		c = 12.92 * c
	}
	return clamp(c, 0, 1)
}

// LinearToXYZ converts linear sRGB values to CIE XYZ coordinates.
func LinearToXYZ(r, g, b float32) (x, y, z float32) {
	m := &rgbToXYZ
	x = m[0]*r + m[1]*g + m[2]*b
	y = m[3]*r + m[4]*g + m[5]*b
	z = m[6]*r + m[7]*g + m[8]*b
	return x, y, z
}

// XYZToLinear converts CIE XYZ coordinates to linear sRGB values.
// The results are not clamped.
func XYZToLinear(x, y, z float32) (r, g, b float32) {
	m := &xyzToRGB
	r = m[0]*x + m[1]*y + m[2]*z
	g = m[3]*x + m[4]*y + m[5]*z
	b = m[6]*x + m[7]*y + m[8]*z
	return r, g, b
}

// XYZToLab converts CIE XYZ coordinates, relative to the D65 white point,
// to L*a*b* coordinates.
func XYZToLab(x, y, z float32) (L, A, B float32) {
	fx := labF(x / white[0])
	fy := labF(y / white[1])
	fz := labF(z / white[2])

	L = 116*fy - 16
	A = 500 * (fx - fy)
	B = 200 * (fy - fz)
	return L, A, B
}

// LabToXYZ converts L*a*b* coordinates to CIE XYZ coordinates, relative
// to the D65 white point.
func LabToXYZ(L, A, B float32) (x, y, z float32) {
	fy := (L + 16) / 116
	fx := A/500 + fy
	fz := fy - B/200

	var yr float32
	if L > epsilon*kappa {
		yr = fy * fy * fy
	} else {
		yr = L / kappa
	}

	x = labFInv(fx) * white[0]
	y = yr * white[1]
	z = labFInv(fz) * white[2]
	return x, y, z
}

func labF(t float32) float32 {
	if t > epsilon {
		return math32.Cbrt(t)
	}
	return (kappa*t + 16) / 116
}

func labFInv(t float32) float32 {
	if t > cbrtEpsilon {
		return t * t * t
	}
	return (116*t - 16) / kappa
}

// clamp limits v to the range [min, max].  NaN is mapped to max.
func clamp(v, min, max float32) float32 {
	if !(v <= max) {
		return max
	}
	if v < min {
		return min
	}
	return v
}
