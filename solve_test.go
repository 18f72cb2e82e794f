/*
 * solve_test.go, part of gostoich.
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
)

func solveEquation(Te *testing.T, equation string) ([]int, bool, error) {
	reactants, products, err := ParseEquation(equation)
	require.NoError(Te, err)
	return NewCompositionMatrix(reactants, products).Solve()
}

func TestSolveFixtures(Te *testing.T) {
	cases := []struct {
		equation     string
		coefficients []int
	}{
		{"H2 + O2 = H2O", []int{2, 1, 2}},
		{"Fe + O2 = Fe2O3", []int{4, 3, 2}},
		{"Ca(OH)2 + HCl = CaCl2 + H2O", []int{1, 2, 1, 2}},
		{"KMnO4 + HCl = KCl + MnCl2 + H2O + Cl2", []int{2, 16, 2, 2, 8, 5}},
		{"C6H12O6 + O2 = CO2 + H2O", []int{1, 6, 6, 6}},
		{"Al + Fe2O3 = Al2O3 + Fe", []int{2, 1, 1, 2}},
		{"NH3 + O2 = NO + H2O", []int{4, 5, 4, 6}},
	}
	for _, c := range cases {
		coefficients, degenerate, err := solveEquation(Te, c.equation)
		require.NoError(Te, err, c.equation)
		assert.False(Te, degenerate, c.equation)
		assert.Equal(Te, c.coefficients, coefficients, c.equation)
	}
}

func TestSolveMinimality(Te *testing.T) {
	equations := []string{
		"H2 + O2 = H2O",
		"Fe + O2 = Fe2O3",
		"KMnO4 + HCl = KCl + MnCl2 + H2O + Cl2",
		"C2H6 + O2 = CO2 + H2O",
	}
	for _, equation := range equations {
		coefficients, _, err := solveEquation(Te, equation)
		require.NoError(Te, err, equation)
		g := coefficients[0]
		for _, c := range coefficients[1:] {
			g = gcdInt(g, c)
			assert.Greater(Te, c, 0, equation)
		}
		assert.Equal(Te, 1, g, equation)
	}
}

func TestSolveUnbalanceable(Te *testing.T) {
	//full column rank: the only solution of A·x = 0 is the zero vector
	_, _, err := solveEquation(Te, "H2 = O2")
	var unbalanceable *UnbalanceableError
	require.ErrorAs(Te, err, &unbalanceable)

	//oxygen appears on one side only, so O2 is forced to coefficient 0 and no
	//strictly positive solution exists even though the null space is nontrivial
	_, _, err = solveEquation(Te, "Na + Cl2 = NaCl + O2")
	require.ErrorAs(Te, err, &unbalanceable)
}

//A system holding two independent reactions at once (H2 burning and C burning)
//has a 2-dimensional null space. The solver must still return one valid minimal
//answer, flagged as degenerate: here the all-free-columns assignment is the
//first to come out strictly positive.
func TestSolveDegenerate(Te *testing.T) {
	coefficients, degenerate, err := solveEquation(Te, "H2 + O2 + C = H2O + CO2")
	require.NoError(Te, err)
	assert.True(Te, degenerate)
	assert.Equal(Te, []int{2, 3, 2, 2, 2}, coefficients)
}
