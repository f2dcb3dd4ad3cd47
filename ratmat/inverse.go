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
	"errors"
	"math/big"
)

// ErrDivisionByZero is returned when an exact computation would need to
// divide by zero, for example when inverting a singular matrix.
var ErrDivisionByZero = errors.New("ratmat: division by zero")

// minorDet returns the determinant of the 2×2 matrix obtained by deleting
// the given row and column from m.
func (m *Matrix) minorDet(row, col int) *big.Rat {
	var e [4]*big.Rat
	k := 0
	for r := range 3 {
		if r == row {
			continue
		}
		for c := range 3 {
			if c == col {
				continue
			}
			e[k] = m[r][c]
			k++
		}
	}

	res := new(big.Rat).Mul(e[0], e[3])
	return res.Sub(res, new(big.Rat).Mul(e[1], e[2]))
}

// Cofactors returns the matrix of signed minors of m.
func (m *Matrix) Cofactors() *Matrix {
	res := &Matrix{}
	for r := range 3 {
		for c := range 3 {
			x := m.minorDet(r, c)
			if (r+c)%2 == 1 {
				x.Neg(x)
			}
			res[r][c] = x
		}
	}
	return res
}

// Det returns the determinant of m.
func (m *Matrix) Det() *big.Rat {
	return det(m, m.Cofactors())
}

func det(m, cof *Matrix) *big.Rat {
	res := new(big.Rat)
	tmp := new(big.Rat)
	for c := range 3 {
		res.Add(res, tmp.Mul(m[0][c], cof[0][c]))
	}
	return res
}

// Inverse returns the inverse of m, computed as the transposed cofactor
// matrix divided by the determinant.
//
// If m is singular, [ErrDivisionByZero] is returned.
func (m *Matrix) Inverse() (*Matrix, error) {
	cof := m.Cofactors()
	d := det(m, cof)
	if d.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	res := &Matrix{}
	for r := range 3 {
		for c := range 3 {
			res[r][c] = new(big.Rat).Quo(cof[c][r], d)
		}
	}
	return res, nil
}
