/*
 * validate_test.go, part of gostoich.
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

func TestValidateBalanced(Te *testing.T) {
	eq := MustBalance("H2 + O2 = H2O")
	report := Validate(eq)
	assert.True(Te, report.OK)
	assert.Empty(Te, report.Problems)
	assert.Empty(Te, report.Warnings)
}

func TestValidateReportsAllProblems(Te *testing.T) {
	//hand-build a wrong equation: H2 = H2O misses oxygen and loses hydrogen too
	eq := &BalancedEquation{
		Reactants:    mustSide(Te, "H2"),
		Products:     mustSide(Te, "H2O"),
		Coefficients: []int{2, 1},
	}
	report := Validate(eq)
	assert.False(Te, report.OK)
	//both elements must be reported together, no short-circuit on the first
	assert.Len(Te, report.Problems, 2)
}

func TestValidateChargeImbalanceIsWarning(Te *testing.T) {
	//elementally fine, but the reactant side carries a net +1 nothing cancels
	eq, report, err := Balance("Na+ + Cl = NaCl")
	require.NoError(Te, err)
	assert.True(Te, report.OK)
	require.Len(Te, report.Warnings, 1)
	assert.Equal(Te, WarnChargeImbalance, report.Warnings[0].Kind)
	assert.Equal(Te, []int{1, 1, 1}, eq.Coefficients)

	//with matching charges on both sides there is nothing to warn about
	_, report, err = Balance("Ag+ + Cl- = AgCl")
	require.NoError(Te, err)
	assert.Empty(Te, report.Warnings)
}

func TestValidateDegenerateWarning(Te *testing.T) {
	_, report, err := Balance("H2 + O2 + C = H2O + CO2")
	require.NoError(Te, err)
	assert.True(Te, report.OK)
	require.Len(Te, report.Warnings, 1)
	assert.Equal(Te, WarnDegenerate, report.Warnings[0].Kind)
}

func TestValidateNonMinimalPanics(Te *testing.T) {
	//a non-1 gcd can only come from a broken solver, and must not pass silently
	eq := &BalancedEquation{
		Reactants:    mustSide(Te, "H2", "O2"),
		Products:     mustSide(Te, "H2O"),
		Coefficients: []int{4, 2, 4},
	}
	assert.Panics(Te, func() { Validate(eq) })
}
