/*
 * solve.go, part of gostoich.
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
	"fmt"
	"math/big"

	"github.com/gostoich/gostoich/ratmat"
)

//Solve finds the smallest positive integer coefficient vector x with A·x = 0,
//where A is the composition matrix. It returns the coefficients in column order
//(reactants then products), a flag marking a degenerate system (null space of
//dimension > 1, meaning several independent balanced forms exist; the returned
//answer is still valid, minimal and deterministic), or an UnbalanceableError if
//no strictly positive solution is found.
//
//The reduction is done with exact rationals: conservation matrices are
//frequently near-singular or carry large entries, and float64 elimination
//produces coefficients that round or scale incorrectly.
//
//After the reduced row-echelon form is known, one free column is set to 1 and
//the remaining free columns to 0, and the pivot columns follow by
//back-substitution. Free columns are tried left to right until an all-positive
//solution appears; for degenerate systems, an assignment of 1 to every free
//column is tried last. The first hit wins, which keeps the answer
//deterministic. The rational solution is then scaled by the LCM of its
//denominators and divided by the GCD of the resulting integers, giving the
//minimal representation.
func (M *CompositionMatrix) Solve() ([]int, bool, error) {
	rows, cols := M.Dims()
	flat := make([]int, 0, rows*cols)
	for i := 0; i < rows; i++ {
		flat = append(flat, M.counts[i]...)
	}
	A, err := ratmat.FromInts(rows, cols, flat)
	if err != nil {
		return nil, false, err
	}
	pivots := A.RREF()
	free := freeColumns(pivots, cols)
	degenerate := len(free) > 1
	if len(free) == 0 {
		//a homogeneous system with full column rank only has the zero solution
		return nil, degenerate, unbalanceableError(M.equationText())
	}
	assignments := make([][]int, 0, len(free)+1)
	for _, f := range free {
		assignments = append(assignments, []int{f})
	}
	if degenerate {
		assignments = append(assignments, free)
	}
	for _, ones := range assignments {
		x := particularSolution(A, pivots, cols, ones)
		if !allPositive(x) {
			continue
		}
		coefficients := toMinimalIntegers(x)
		M.assertBalanced(coefficients)
		return coefficients, degenerate, nil
	}
	return nil, degenerate, unbalanceableError(M.equationText())
}

//freeColumns returns the columns without a pivot, in ascending order.
func freeColumns(pivots []int, cols int) []int {
	isPivot := make([]bool, cols)
	for _, p := range pivots {
		isPivot[p] = true
	}
	var free []int
	for j := 0; j < cols; j++ {
		if !isPivot[j] {
			free = append(free, j)
		}
	}
	return free
}

//particularSolution back-substitutes one solution of the reduced system: the
//columns listed in ones get 1, every other free column gets 0, and each pivot
//column p (with pivot in row r) gets -Σ R[r][j]·x[j] over the free columns j.
func particularSolution(R *ratmat.Matrix, pivots []int, cols int, ones []int) []*big.Rat {
	x := make([]*big.Rat, cols)
	for j := range x {
		x[j] = new(big.Rat)
	}
	for _, j := range ones {
		x[j].SetInt64(1)
	}
	for r, p := range pivots {
		sum := new(big.Rat)
		for _, j := range ones {
			sum.Add(sum, R.At(r, j))
		}
		x[p].Neg(sum)
	}
	return x
}

func allPositive(x []*big.Rat) bool {
	for _, v := range x {
		if v.Sign() <= 0 {
			return false
		}
	}
	return true
}

//toMinimalIntegers clears the denominators of x by their least common multiple
//and divides the resulting integers by their greatest common divisor, producing
//the minimal positive integer vector proportional to x.
func toMinimalIntegers(x []*big.Rat) []int {
	lcm := big.NewInt(1)
	tmp := new(big.Int)
	for _, v := range x {
		d := v.Denom()
		tmp.GCD(nil, nil, lcm, d)
		lcm.Div(lcm, tmp).Mul(lcm, d)
	}
	ints := make([]*big.Int, len(x))
	for i, v := range x {
		n := new(big.Int).Mul(v.Num(), lcm)
		ints[i] = n.Div(n, v.Denom())
	}
	gcd := new(big.Int).Set(ints[0])
	for _, n := range ints[1:] {
		gcd.GCD(nil, nil, gcd, n)
	}
	out := make([]int, len(ints))
	for i, n := range ints {
		n.Div(n, gcd)
		if !n.IsInt64() {
			//coefficients beyond int64 cannot come from a realistic equation
			panic(fmt.Sprintf("stoich: balanced coefficient overflows int64: %s", n.String()))
		}
		out[i] = int(n.Int64())
	}
	return out
}

//assertBalanced panics unless the coefficients conserve every element exactly.
//A violation here is a solver bug, never a data condition, so it must fail
//loudly instead of surfacing as a user error.
func (M *CompositionMatrix) assertBalanced(coefficients []int) {
	rows, cols := M.Dims()
	if len(coefficients) != cols {
		panic("stoich: solver returned a coefficient vector of the wrong length")
	}
	for i := 0; i < rows; i++ {
		sum := 0
		for j := 0; j < cols; j++ {
			sum += M.counts[i][j] * coefficients[j]
		}
		if sum != 0 {
			panic(fmt.Sprintf("stoich: element %s not conserved by solver output", M.elements[i]))
		}
	}
}

//equationText reconstructs an unbalanced rendering of the equation held by the
//matrix, for error messages.
func (M *CompositionMatrix) equationText() string {
	text := ""
	for j, species := range M.species {
		switch {
		case j == 0:
		case j == M.nreact:
			text += " = "
		default:
			text += " + "
		}
		text += species.Formula()
	}
	return text
}
