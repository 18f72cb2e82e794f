/*
 * stoichiometry_test.go, part of gostoich.
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

func TestMolarMass(Te *testing.T) {
	cases := []struct {
		formula string
		mass    float64
	}{
		{"H2O", 18.015},
		{"C6H12O6", 180.156},
		{"NaCl", 58.44},
		{"CuSO4·5H2O", 249.681},
		{"(NH4)2SO4", 132.134},
	}
	for _, c := range cases {
		mass, err := MolarMassOf(c.formula)
		require.NoError(Te, err, c.formula)
		assert.InDelta(Te, c.mass, mass, 0.01, c.formula)
	}

	_, err := MolarMassOf("Xx4")
	var unknown *UnknownElementError
	assert.ErrorAs(Te, err, &unknown)
}

func TestFromMoles(Te *testing.T) {
	eq := MustBalance("H2 + O2 = H2O") //2H2 + O2 = 2H2O
	result, err := FromMoles(eq, "H2", 4)
	require.NoError(Te, err)

	h2, ok := result.Amount("H2")
	require.True(Te, ok)
	o2, ok := result.Amount("O2")
	require.True(Te, ok)
	h2o, ok := result.Amount("H2O")
	require.True(Te, ok)

	assert.Equal(Te, 4.0, h2.Moles)
	assert.Equal(Te, 2.0, o2.Moles)
	assert.Equal(Te, 4.0, h2o.Moles)

	//grams are always moles times the species' own molar mass
	for _, a := range result.Amounts {
		mass, err := MolarMassOf(a.Species)
		require.NoError(Te, err)
		assert.InDelta(Te, a.Moles*mass, a.Grams, 1e-12, a.Species)
	}
	assert.InDelta(Te, 63.996, o2.Grams, 0.01)
	assert.InDelta(Te, 72.06, h2o.Grams, 0.01)
}

//Mole ratios must equal coefficient ratios exactly, for every species pair.
func TestFromMolesRatios(Te *testing.T) {
	eq := MustBalance("KMnO4 + HCl = KCl + MnCl2 + H2O + Cl2")
	result, err := FromMoles(eq, "HCl", 3.2)
	require.NoError(Te, err)
	for i, a := range result.Amounts {
		for j, b := range result.Amounts {
			assert.InDelta(Te,
				float64(eq.Coefficients[i])/float64(eq.Coefficients[j]),
				a.Moles/b.Moles, 1e-12)
		}
	}
}

//fromMoles is linear: scaling the input by k scales every output by exactly k.
func TestFromMolesScalingLaw(Te *testing.T) {
	eq := MustBalance("Fe + O2 = Fe2O3")
	base, err := FromMoles(eq, "Fe", 1.5)
	require.NoError(Te, err)
	const k = 8 //a power of two, so the scaling is exact in float64 too
	scaled, err := FromMoles(eq, "Fe", 1.5*k)
	require.NoError(Te, err)
	for i := range base.Amounts {
		assert.Equal(Te, base.Amounts[i].Moles*k, scaled.Amounts[i].Moles)
		assert.Equal(Te, base.Amounts[i].Grams*k, scaled.Amounts[i].Grams)
	}
}

func TestFromGrams(Te *testing.T) {
	eq := MustBalance("H2 + O2 = H2O")
	//63.996 g of O2 is 2 mol, the same reference point as TestFromMoles
	result, err := FromGrams(eq, "O2", 63.996)
	require.NoError(Te, err)
	o2, _ := result.Amount("O2")
	h2, _ := result.Amount("H2")
	assert.InDelta(Te, 2.0, o2.Moles, 1e-9)
	assert.InDelta(Te, 4.0, h2.Moles, 1e-9)
}

func TestFromMolesSpeciesMatching(Te *testing.T) {
	eq := MustBalance("H2 + O2 = H2O")

	//exact text match, as written in the equation, always works
	_, err := FromMoles(eq, "H2O", 1)
	assert.NoError(Te, err)

	//a different spelling of the same composition matches semantically
	result, err := FromMoles(eq, "OH2", 2)
	require.NoError(Te, err)
	h2o, ok := result.Amount("H2O")
	require.True(Te, ok)
	assert.Equal(Te, 2.0, h2o.Moles)

	//absent species fail with the dedicated error type
	_, err = FromMoles(eq, "CO2", 1)
	var unknownSpecies *UnknownSpeciesError
	require.ErrorAs(Te, err, &unknownSpecies)
	assert.Equal(Te, "CO2", unknownSpecies.Species)

	//unparseable queries fail the same way, not with a parse error
	_, err = FromMoles(eq, "not a formula", 1)
	assert.ErrorAs(Te, err, &unknownSpecies)

	_, err = FromMoles(eq, "H2", -1)
	assert.Error(Te, err)
	_, err = FromGrams(eq, "H2", -0.5)
	assert.Error(Te, err)
}

func TestStoichiometryResultString(Te *testing.T) {
	eq := MustBalance("H2 + O2 = H2O")
	result, err := FromMoles(eq, "H2", 2)
	require.NoError(Te, err)
	text := result.String()
	assert.Contains(Te, text, "H2: 2 mol")
	assert.Contains(Te, text, "O2: 1 mol")
}
