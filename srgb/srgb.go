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

// Package srgb derives the matrices which convert between linear sRGB and
// CIE 1931 XYZ coordinates.
//
// The matrices are computed from the chromaticities of the sRGB primaries
// and the D65 white point, using exact rational arithmetic throughout.
// See http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
// for a description of the method.
package srgb

import (
	"fmt"
	"math/big"

	"golang.org/x/image/math/f64"

	"seehuhn.de/go/lab/ratmat"
)

// Chromaticity is a point in the CIE 1931 xy chromaticity diagram.
type Chromaticity struct {
	X, Y *big.Rat
}

// Primaries lists the chromaticities of the three primaries of an RGB
// color space.
type Primaries struct {
	Red, Green, Blue Chromaticity
}

var (
	// SRGBPrimaries are the primaries of the sRGB color space.
	// The values must not be modified.
	//
	// https://en.wikipedia.org/wiki/SRGB#The_sRGB_gamut
	SRGBPrimaries = sRGBPrimaries()

	// WhitePointD65 represents the D65 whitepoint, normalised to Y = 1.
	// The given values are CIE 1931 XYZ coordinates.
	// The values must not be modified.
	//
	// https://en.wikipedia.org/wiki/Illuminant_D65#Definition
	WhitePointD65 = whitePointD65()
)

func sRGBPrimaries() Primaries {
	return Primaries{
		Red:   Chromaticity{X: big.NewRat(64, 100), Y: big.NewRat(33, 100)},
		Green: Chromaticity{X: big.NewRat(30, 100), Y: big.NewRat(60, 100)},
		Blue:  Chromaticity{X: big.NewRat(15, 100), Y: big.NewRat(6, 100)},
	}
}

func whitePointD65() *ratmat.Vector {
	return ratmat.NewVector(
		big.NewRat(95047, 100000),
		big.NewRat(1, 1),
		big.NewRat(108883, 100000),
	)
}

// XYZ returns the XYZ coordinates of the color with chromaticity c and
// luminance Y = 1.
func (c Chromaticity) XYZ() (*ratmat.Vector, error) {
	if c.Y.Sign() == 0 {
		return nil, fmt.Errorf("chromaticity %s,%s: %w",
			c.X.RatString(), c.Y.RatString(), ratmat.ErrDivisionByZero)
	}

	x := new(big.Rat).Quo(c.X, c.Y)
	z := big.NewRat(1, 1)
	z.Sub(z, c.X)
	z.Sub(z, c.Y)
	z.Quo(z, c.Y)
	return &ratmat.Vector{x, big.NewRat(1, 1), z}, nil
}

// rawMatrix returns the matrix whose columns are the XYZ coordinates of the
// three primaries, each with luminance 1.
func (p Primaries) rawMatrix() (*ratmat.Matrix, error) {
	res := &ratmat.Matrix{}
	for c, prim := range []Chromaticity{p.Red, p.Green, p.Blue} {
		col, err := prim.XYZ()
		if err != nil {
			return nil, err
		}
		for r := range 3 {
			res[r][c] = col[r]
		}
	}
	return res, nil
}

// RGBToXYZ returns the matrix which maps linear RGB values in the color
// space with primaries p and white point w to CIE XYZ coordinates.
//
// The columns of the result are the XYZ coordinates of the three
// primaries, scaled so that RGB (1, 1, 1) maps to w.
func RGBToXYZ(p Primaries, w *ratmat.Vector) (*ratmat.Matrix, error) {
	raw, err := p.rawMatrix()
	if err != nil {
		return nil, err
	}
	inv, err := raw.Inverse()
	if err != nil {
		return nil, fmt.Errorf("primaries are collinear: %w", err)
	}
	S := inv.MulVec(w)
	return raw.ScaleColumns(S), nil
}

// XYZToRGB returns the matrix which maps CIE XYZ coordinates to linear RGB
// values in the color space with primaries p and white point w.
// This is the inverse of the matrix returned by [RGBToXYZ].
func XYZToRGB(p Primaries, w *ratmat.Vector) (*ratmat.Matrix, error) {
	M, err := RGBToXYZ(p, w)
	if err != nil {
		return nil, err
	}
	return M.Inverse()
}

// Matrices returns the exact sRGB to XYZ matrix M and its inverse.
// The result does not depend on the values of [SRGBPrimaries] and
// [WhitePointD65].
func Matrices() (M, MInv *ratmat.Matrix, err error) {
	M, err = RGBToXYZ(sRGBPrimaries(), whitePointD65())
	if err != nil {
		return nil, nil, err
	}
	MInv, err = M.Inverse()
	if err != nil {
		return nil, nil, err
	}
	return M, MInv, nil
}

var (
	// RGBToXYZMatrix maps linear sRGB values to CIE XYZ coordinates.
	RGBToXYZMatrix f64.Mat3

	// XYZToRGBMatrix maps CIE XYZ coordinates to linear sRGB values.
	XYZToRGBMatrix f64.Mat3

	// WhiteD65 is [WhitePointD65], converted to floating point.
	WhiteD65 f64.Vec3
)

func init() {
	M, MInv, err := Matrices()
	if err != nil {
		panic(err)
	}
	RGBToXYZMatrix = M.Float64()
	XYZToRGBMatrix = MInv.Float64()
	WhiteD65 = whitePointD65().Float64()
}
