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
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f64"
)

func ints(a ...int64) *Matrix {
	m := &Matrix{}
	for i, x := range a {
		m[i/3][i%3] = big.NewRat(x, 1)
	}
	return m
}

func TestIdentityInverse(t *testing.T) {
	id := Identity()
	inv, err := id.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if !inv.Equal(id) {
		t.Errorf("inverse of identity:\n%s", inv)
	}
}

func TestInverseKnown(t *testing.T) {
	m := ints(
		2, 0, 0,
		0, 4, 0,
		1, 0, 1,
	)
	expected := NewMatrix([3][3]*big.Rat{
		{R(1, 2), R(0, 1), R(0, 1)},
		{R(0, 1), R(1, 4), R(0, 1)},
		{R(-1, 2), R(0, 1), R(1, 1)},
	})

	inv, err := m.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if !inv.Equal(expected) {
		t.Errorf("wrong inverse:\n%s\nexpected:\n%s", inv, expected)
	}
}

func TestInverseNotSymmetric(t *testing.T) {
	// This catches a missing transpose in the adjugate.
	m := ints(
		1, 2, 3,
		0, 1, 4,
		5, 6, 0,
	)
	inv, err := m.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	expected := ints(
		-24, 18, 5,
		20, -15, -4,
		-5, 4, 1,
	)
	if !inv.Equal(expected) {
		t.Errorf("wrong inverse:\n%s\nexpected:\n%s", inv, expected)
	}
	if d := m.Det(); d.Cmp(R(1, 1)) != 0 {
		t.Errorf("det = %s, expected 1", d.RatString())
	}
}

func TestSingular(t *testing.T) {
	for _, m := range []*Matrix{
		ints(0, 0, 0, 0, 0, 0, 0, 0, 0),
		ints(1, 2, 3, 2, 4, 6, 0, 1, 1),
		ints(1, 2, 3, 4, 5, 6, 7, 8, 9),
	} {
		inv, err := m.Inverse()
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("expected ErrDivisionByZero, got %v", err)
		}
		if inv != nil {
			t.Errorf("unexpected result for singular matrix:\n%s", inv)
		}
	}
}

func TestArgumentsUnchanged(t *testing.T) {
	m := ints(1, 2, 3, 0, 1, 4, 5, 6, 0)
	orig := m.Clone()

	_, err := m.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	_ = Mul(m, m)
	_ = m.Transpose()
	_ = m.ScaleColumns(NewVector(R(1, 2), R(3, 1), R(-1, 1)))
	_ = m.MulVec(NewVector(R(1, 1), R(1, 1), R(1, 1)))

	if !m.Equal(orig) {
		t.Errorf("matrix was modified:\n%s", m)
	}
}

func TestMulVec(t *testing.T) {
	m := ints(1, 2, 3, 0, 1, 4, 5, 6, 0)
	v := NewVector(R(1, 2), R(1, 3), R(-1, 1))
	got := m.MulVec(v)
	expected := NewVector(R(-11, 6), R(-11, 3), R(9, 2))
	if !got.Equal(expected) {
		t.Errorf("got %s, expected %s", got, expected)
	}
}

func TestScaleColumns(t *testing.T) {
	m := ints(1, 1, 1, 2, 2, 2, 3, 3, 3)
	s := NewVector(R(1, 1), R(1, 2), R(1, 3))
	got := m.ScaleColumns(s)
	expected := NewMatrix([3][3]*big.Rat{
		{R(1, 1), R(1, 2), R(1, 3)},
		{R(2, 1), R(1, 1), R(2, 3)},
		{R(3, 1), R(3, 2), R(1, 1)},
	})
	if !got.Equal(expected) {
		t.Errorf("got\n%s\nexpected\n%s", got, expected)
	}
}

func TestTranspose(t *testing.T) {
	m := ints(1, 2, 3, 4, 5, 6, 7, 8, 9)
	if got := m.Transpose(); !got.Equal(ints(1, 4, 7, 2, 5, 8, 3, 6, 9)) {
		t.Errorf("wrong transpose:\n%s", got)
	}
	if got := m.Transpose().Transpose(); !got.Equal(m) {
		t.Errorf("double transpose:\n%s", got)
	}
}

func TestFloat64(t *testing.T) {
	m := NewMatrix([3][3]*big.Rat{
		{R(1, 2), R(1, 4), R(-3, 8)},
		{R(1, 1), R(0, 1), R(5, 1)},
		{R(1, 3), R(2, 3), R(-1, 3)},
	})
	expected := f64.Mat3{
		0.5, 0.25, -0.375,
		1, 0, 5,
		1.0 / 3.0, 2.0 / 3.0, -1.0 / 3.0,
	}
	if d := cmp.Diff(expected, m.Float64()); d != "" {
		t.Errorf("unexpected conversion (-want +got):\n%s", d)
	}

	v := NewVector(R(95047, 100000), R(1, 1), R(108883, 100000))
	if d := cmp.Diff(f64.Vec3{0.95047, 1, 1.08883}, v.Float64()); d != "" {
		t.Errorf("unexpected conversion (-want +got):\n%s", d)
	}
}

func TestString(t *testing.T) {
	m := NewMatrix([3][3]*big.Rat{
		{R(1, 2), R(0, 1), R(-3, 1)},
		{R(1, 1), R(2, 1), R(3, 1)},
		{R(4, 1), R(5, 1), R(6, 7)},
	})
	expected := "[1/2 0 -3]\n[1 2 3]\n[4 5 6/7]"
	if got := m.String(); got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
}

func FuzzInverse(f *testing.F) {
	f.Add(int64(1), int64(0), int64(0), int64(0), int64(1), int64(0), int64(0), int64(0), int64(1))
	f.Add(int64(1), int64(2), int64(3), int64(0), int64(1), int64(4), int64(5), int64(6), int64(0))
	f.Add(int64(1), int64(2), int64(3), int64(4), int64(5), int64(6), int64(7), int64(8), int64(9))
	f.Fuzz(func(t *testing.T, a, b, c, d, e, g, h, i, j int64) {
		m := ints(a, b, c, d, e, g, h, i, j)
		inv, err := m.Inverse()
		if m.Det().Sign() == 0 {
			if !errors.Is(err, ErrDivisionByZero) {
				t.Fatalf("singular matrix, got err=%v", err)
			}
			return
		}
		if err != nil {
			t.Fatal(err)
		}

		id := Identity()
		if p := Mul(m, inv); !p.Equal(id) {
			t.Errorf("m·m⁻¹ != I:\n%s", p)
		}
		if p := Mul(inv, m); !p.Equal(id) {
			t.Errorf("m⁻¹·m != I:\n%s", p)
		}

		inv2, err := inv.Inverse()
		if err != nil {
			t.Fatal(err)
		}
		if !inv2.Equal(m) {
			t.Errorf("(m⁻¹)⁻¹ != m:\n%s", inv2)
		}
	})
}
