/*
 * ratmat.go, part of gostoich.
 *
 * Copyright 2024 The gostoich developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ratmat

import (
	"fmt"
	"math/big"
	"strings"
)

//Matrix is a dense rows x cols matrix of exact rationals, stored row-major.
//Constructors return errors on bad shapes; indexing out of range panics, as
//that is a programmer error, not a data condition.
type Matrix struct {
	rows, cols int
	data       []*big.Rat
}

//New returns a zero-filled rows x cols Matrix. Non-positive dimensions are an
//error.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("ratmat: invalid shape %dx%d", rows, cols)
	}
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

//FromInts returns a rows x cols Matrix filled with the given integers in
//row-major order.
func FromInts(rows, cols int, values []int) (*Matrix, error) {
	if len(values) != rows*cols {
		return nil, fmt.Errorf("ratmat: %d values do not fill a %dx%d matrix", len(values), rows, cols)
	}
	M, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		M.data[i].SetInt64(int64(v))
	}
	return M, nil
}

//Dims returns the number of rows and columns.
func (M *Matrix) Dims() (int, int) { return M.rows, M.cols }

func (M *Matrix) index(i, j int) int {
	if i < 0 || i >= M.rows || j < 0 || j >= M.cols {
		panic(fmt.Sprintf("ratmat: index (%d,%d) out of range for %dx%d matrix", i, j, M.rows, M.cols))
	}
	return i*M.cols + j
}

//At returns a copy of the entry at row i, column j. Mutating the returned
//rational does not touch the matrix.
func (M *Matrix) At(i, j int) *big.Rat {
	return new(big.Rat).Set(M.data[M.index(i, j)])
}

//Set assigns a copy of v to the entry at row i, column j.
func (M *Matrix) Set(i, j int, v *big.Rat) {
	M.data[M.index(i, j)].Set(v)
}

//Clone returns a deep copy of M.
func (M *Matrix) Clone() *Matrix {
	N, _ := New(M.rows, M.cols) //M's shape is valid by construction
	for i, v := range M.data {
		N.data[i].Set(v)
	}
	return N
}

//RREF reduces M, in place, to reduced row-echelon form with exact arithmetic,
//and returns the pivot columns in row order (pivots[r] is the column of the
//leading 1 in row r; rows past len(pivots) are zero).
//
//Pivot selection is deterministic: for each column, the first not-yet-pivoted
//row with a nonzero entry is used. No magnitude-based pivoting is done or
//needed; with exact rationals any nonzero pivot is as good as any other.
func (M *Matrix) RREF() []int {
	pivots := make([]int, 0, min(M.rows, M.cols))
	row := 0
	for col := 0; col < M.cols && row < M.rows; col++ {
		pivot := -1
		for i := row; i < M.rows; i++ {
			if M.data[M.index(i, col)].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		M.swapRows(row, pivot)
		M.scaleRow(row, new(big.Rat).Inv(M.data[M.index(row, col)]))
		for i := 0; i < M.rows; i++ {
			if i == row {
				continue
			}
			factor := M.At(i, col)
			if factor.Sign() == 0 {
				continue
			}
			M.addScaledRow(i, row, factor.Neg(factor))
		}
		pivots = append(pivots, col)
		row++
	}
	return pivots
}

func (M *Matrix) swapRows(a, b int) {
	if a == b {
		return
	}
	for j := 0; j < M.cols; j++ {
		M.data[M.index(a, j)], M.data[M.index(b, j)] = M.data[M.index(b, j)], M.data[M.index(a, j)]
	}
}

func (M *Matrix) scaleRow(i int, factor *big.Rat) {
	for j := 0; j < M.cols; j++ {
		v := M.data[M.index(i, j)]
		v.Mul(v, factor)
	}
}

//addScaledRow adds factor times row src to row dst.
func (M *Matrix) addScaledRow(dst, src int, factor *big.Rat) {
	tmp := new(big.Rat)
	for j := 0; j < M.cols; j++ {
		tmp.Mul(M.data[M.index(src, j)], factor)
		v := M.data[M.index(dst, j)]
		v.Add(v, tmp)
	}
}

//String renders the matrix row by row, entries in lowest terms. Meant for
//debugging and test failure output.
func (M *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < M.rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for j := 0; j < M.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(M.data[M.index(i, j)].RatString())
		}
		b.WriteByte(']')
	}
	return b.String()
}
