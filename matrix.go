/*
 * matrix.go, part of gostoich.
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
	"gonum.org/v1/gonum/mat"
)

//CompositionMatrix holds the element counts of every species of an equation as
//one rectangular integer matrix. Rows are the distinct elements across both
//sides, in first-seen order; columns are the species, reactants then products,
//in input order. Reactant entries are the plain counts, product entries are
//negated, so a coefficient vector x balances the equation exactly when A·x = 0.
type CompositionMatrix struct {
	elements []string
	species  EquationSide
	nreact   int
	counts   [][]int //rows x cols, signed
}

//NewCompositionMatrix builds the composition matrix of the given sides.
func NewCompositionMatrix(reactants, products EquationSide) *CompositionMatrix {
	M := &CompositionMatrix{nreact: len(reactants)}
	M.species = append(M.species, reactants...)
	M.species = append(M.species, products...)
	rowOf := make(map[string]int)
	for _, species := range M.species {
		for _, symbol := range species.elementsInOrder() {
			if _, seen := rowOf[symbol]; !seen {
				rowOf[symbol] = len(M.elements)
				M.elements = append(M.elements, symbol)
			}
		}
	}
	M.counts = make([][]int, len(M.elements))
	for i := range M.counts {
		M.counts[i] = make([]int, len(M.species))
	}
	for j, species := range M.species {
		sign := 1
		if j >= M.nreact {
			sign = -1
		}
		for symbol, count := range species.counts {
			M.counts[rowOf[symbol]][j] = sign * count
		}
	}
	return M
}

//Dims returns the number of rows (distinct elements) and columns (species).
func (M *CompositionMatrix) Dims() (int, int) {
	return len(M.elements), len(M.species)
}

//Elements returns the row labels in row order. The slice is a copy.
func (M *CompositionMatrix) Elements() []string {
	return append([]string{}, M.elements...)
}

//At returns the signed count of element row i in species column j.
func (M *CompositionMatrix) At(i, j int) int {
	return M.counts[i][j]
}

//Dense exports the matrix as a float64 gonum Dense, for downstream numeric
//consumers (rank estimates, least-squares fits and the like, where exactness is
//not required). The returned matrix is a fresh copy.
func (M *CompositionMatrix) Dense() *mat.Dense {
	rows, cols := M.Dims()
	D := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			D.Set(i, j, float64(M.counts[i][j]))
		}
	}
	return D
}

//elementsInOrder returns the element symbols of a formula in first-appearance
//order within its text. ElementCount is a map, so the parse keeps no order; this
//recovers it by rescanning the (already validated) text, which keeps
//CompositionMatrix row order independent of map iteration order and therefore
//deterministic.
func (F *ParsedFormula) elementsInOrder() []string {
	var order []string
	seen := make(map[string]bool, len(F.counts))
	text := F.text
	for i := 0; i < len(text); i++ {
		if text[i] < 'A' || text[i] > 'Z' {
			continue
		}
		j := i + 1
		for j < len(text) && j-i < 3 && isLower(text[j]) {
			j++
		}
		symbol := text[i:j]
		//the greedy token is valid by construction, since parsing succeeded
		if _, ok := F.counts[symbol]; ok && !seen[symbol] {
			seen[symbol] = true
			order = append(order, symbol)
		}
		i = j - 1
	}
	return order
}
