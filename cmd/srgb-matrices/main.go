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

// Srgb-matrices prints the matrices for converting between linear sRGB and
// CIE XYZ coordinates.
//
// The matrices are derived from the chromaticities of the sRGB primaries
// and the D65 white point using exact rational arithmetic.  Coefficients
// are converted to floating point only for printing.
package main

import (
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/lab/internal/float"
	"seehuhn.de/go/lab/ratmat"
	"seehuhn.de/go/lab/srgb"
)

func main() {
	err := run(os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	M, MInv, err := srgb.Matrices()
	if err != nil {
		return err
	}

	err = writeMatrix(w, "[M]", M)
	if err != nil {
		return err
	}
	return writeMatrix(w, "[M]^-1", MInv)
}

func writeMatrix(w io.Writer, label string, m *ratmat.Matrix) error {
	_, err := fmt.Fprintln(w, label+" =")
	if err != nil {
		return err
	}
	v := m.Float64()
	for r := range 3 {
		_, err = fmt.Fprintf(w, "  %20s %20s %20s\n",
			float.Repr(v[3*r]), float.Repr(v[3*r+1]), float.Repr(v[3*r+2]))
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}
