/*
 * matrix_test.go, part of gostoich.
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

package stoich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCompositionMatrix(Te *testing.T) {
	reactants, products, err := ParseEquation("Ca(OH)2 + HCl = CaCl2 + H2O")
	require.NoError(Te, err)
	M := NewCompositionMatrix(reactants, products)

	rows, cols := M.Dims()
	assert.Equal(Te, 4, rows)
	assert.Equal(Te, 4, cols)
	//row order is first-seen across the sides, column order is as written
	assert.Equal(Te, []string{"Ca", "O", "H", "Cl"}, M.Elements())

	expected := [][]int{
		{1, 0, -1, 0},  //Ca
		{2, 0, 0, -1},  //O
		{2, 1, 0, -2},  //H
		{0, 1, -2, 0},  //Cl
	}
	for i := range expected {
		for j := range expected[i] {
			assert.Equal(Te, expected[i][j], M.At(i, j), "entry (%d,%d)", i, j)
		}
	}
}

//The float export must agree entry-for-entry with the exact matrix, and its
//numeric rank must match what the exact solver sees (a 4-species system with a
//1-dimensional null space has rank 3).
func TestCompositionMatrixDense(Te *testing.T) {
	reactants, products, err := ParseEquation("Ca(OH)2 + HCl = CaCl2 + H2O")
	require.NoError(Te, err)
	M := NewCompositionMatrix(reactants, products)
	D := M.Dense()

	rows, cols := M.Dims()
	dr, dc := D.Dims()
	require.Equal(Te, rows, dr)
	require.Equal(Te, cols, dc)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.Equal(Te, float64(M.At(i, j)), D.At(i, j))
		}
	}

	var svd mat.SVD
	require.True(Te, svd.Factorize(D, mat.SVDNone))
	rank := 0
	for _, sigma := range svd.Values(nil) {
		if sigma > 1e-10 {
			rank++
		}
	}
	assert.Equal(Te, 3, rank)

	//the export is a copy: writing to it must not reach the exact matrix
	D.Set(0, 0, 42)
	assert.Equal(Te, 1, M.At(0, 0))
}

func TestCompositionMatrixHydrate(Te *testing.T) {
	reactants, products, err := ParseEquation("CuSO4·5H2O = CuSO4 + H2O")
	require.NoError(Te, err)
	M := NewCompositionMatrix(reactants, products)
	assert.Equal(Te, []string{"Cu", "S", "O", "H"}, M.Elements())
	//O row: 9 in the hydrate, -4 in CuSO4, -1 in water
	assert.Equal(Te, 9, M.At(2, 0))
	assert.Equal(Te, -4, M.At(2, 1))
	assert.Equal(Te, -1, M.At(2, 2))
}
