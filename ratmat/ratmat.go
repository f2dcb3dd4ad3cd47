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

// Package ratmat implements 3×3 matrices of exact rational numbers.
//
// All operations allocate new values and never modify their arguments.
// Conversion to floating point is only done on request, see
// [Matrix.Float64] and [Vector.Float64].
package ratmat

import (
	"math/big"
	"strings"
)

// Matrix is a 3×3 matrix of rational numbers, stored in row-major order.
// All entries must be non-nil.
type Matrix [3][3]*big.Rat

// Vector is a column vector with three rational entries.
type Vector [3]*big.Rat

// R returns the fraction a/b.  It panics if b is zero.
func R(a, b int64) *big.Rat {
	return big.NewRat(a, b)
}

// NewMatrix returns the matrix with the given rows.
// The entries are copied.
func NewMatrix(rows [3][3]*big.Rat) *Matrix {
	res := &Matrix{}
	for r := range 3 {
		for c := range 3 {
			res[r][c] = new(big.Rat).Set(rows[r][c])
		}
	}
	return res
}

// NewVector returns the vector (x, y, z).
// The entries are copied.
func NewVector(x, y, z *big.Rat) *Vector {
	return &Vector{
		new(big.Rat).Set(x),
		new(big.Rat).Set(y),
		new(big.Rat).Set(z),
	}
}

// Identity returns the 3×3 identity matrix.
func Identity() *Matrix {
	res := &Matrix{}
	for r := range 3 {
		for c := range 3 {
			if r == c {
				res[r][c] = big.NewRat(1, 1)
			} else {
				res[r][c] = new(big.Rat)
			}
		}
	}
	return res
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	return NewMatrix(*m)
}

// Mul returns the matrix product a·b.
func Mul(a, b *Matrix) *Matrix {
	res := &Matrix{}
	tmp := new(big.Rat)
	for r := range 3 {
		for c := range 3 {
			sum := new(big.Rat)
			for k := range 3 {
				sum.Add(sum, tmp.Mul(a[r][k], b[k][c]))
			}
			res[r][c] = sum
		}
	}
	return res
}

// MulVec returns the matrix-vector product m·v.
func (m *Matrix) MulVec(v *Vector) *Vector {
	res := &Vector{}
	tmp := new(big.Rat)
	for r := range 3 {
		sum := new(big.Rat)
		for c := range 3 {
			sum.Add(sum, tmp.Mul(m[r][c], v[c]))
		}
		res[r] = sum
	}
	return res
}

// Transpose returns the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	res := &Matrix{}
	for r := range 3 {
		for c := range 3 {
			res[r][c] = new(big.Rat).Set(m[c][r])
		}
	}
	return res
}

// ScaleColumns returns the matrix obtained by multiplying column c
// of m by s[c], for c = 0, 1, 2.
func (m *Matrix) ScaleColumns(s *Vector) *Matrix {
	res := &Matrix{}
	for r := range 3 {
		for c := range 3 {
			res[r][c] = new(big.Rat).Mul(m[r][c], s[c])
		}
	}
	return res
}

// Equal reports whether m and other have identical entries.
func (m *Matrix) Equal(other *Matrix) bool {
	for r := range 3 {
		for c := range 3 {
			if m[r][c].Cmp(other[r][c]) != 0 {
				return false
			}
		}
	}
	return true
}

// String formats the matrix as three rows of exact fractions.
func (m *Matrix) String() string {
	b := &strings.Builder{}
	for r := range 3 {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for c := range 3 {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m[r][c].RatString())
		}
		b.WriteByte(']')
	}
	return b.String()
}

// Equal reports whether v and other have identical entries.
func (v *Vector) Equal(other *Vector) bool {
	for i := range 3 {
		if v[i].Cmp(other[i]) != 0 {
			return false
		}
	}
	return true
}

// String formats the vector as a row of exact fractions.
func (v *Vector) String() string {
	return "[" + v[0].RatString() + " " + v[1].RatString() + " " + v[2].RatString() + "]"
}
