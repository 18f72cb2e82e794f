/*
 * stoichiometry.go, part of gostoich.
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
	"strings"

	"gonum.org/v1/gonum/floats"
)

//MolarMass returns the molar mass (g/mol) of a parsed formula, the sum of
//count times standard atomic weight over its elements. An UnknownElementError
//can only escape here if a formula was built bypassing ParseFormula, which
//validates every symbol; the check stays anyway rather than silently summing a
//zero weight.
func MolarMass(f *ParsedFormula) (float64, error) {
	total := 0.0
	for symbol, count := range f.counts {
		weight, ok := symbolWeight[symbol]
		if !ok {
			return 0, unknownElementError(symbol, 0)
		}
		total += float64(count) * weight
	}
	return total, nil
}

//MolarMassOf parses formula and returns its molar mass (g/mol).
func MolarMassOf(formula string) (float64, error) {
	f, err := ParseFormula(formula)
	if err != nil {
		return 0, errDecorate(err, "MolarMassOf")
	}
	return MolarMass(f)
}

//Amount is the derived quantity of one species.
type Amount struct {
	Species     string
	Coefficient int
	Moles       float64
	Grams       float64
}

//StoichiometryResult holds the derived quantity of every species of a balanced
//equation, reactants then products, in equation order. Mole ratios between any
//two species equal the ratio of their coefficients exactly.
type StoichiometryResult struct {
	Amounts []Amount
}

//Amount returns the entry for the named species, matched the same way the
//reference species of FromMoles is.
func (R *StoichiometryResult) Amount(species string) (Amount, bool) {
	for _, a := range R.Amounts {
		if a.Species == species {
			return a, true
		}
	}
	query, err := ParseFormula(species)
	if err != nil {
		return Amount{}, false
	}
	for _, a := range R.Amounts {
		f, err := ParseFormula(a.Species)
		if err == nil && f.counts.Equal(query.counts) && f.charge == query.charge {
			return a, true
		}
	}
	return Amount{}, false
}

//String renders one line per species: formula, moles and grams.
func (R *StoichiometryResult) String() string {
	var b strings.Builder
	for i, a := range R.Amounts {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %g mol, %g g", a.Species, a.Moles, a.Grams)
	}
	return b.String()
}

//FromMoles derives the moles and grams of every species in eq from a known
//number of moles of one reference species. The reference is matched first by
//its text exactly as written in the equation, then semantically (same element
//counts and charge, so "OH2" finds "H2O"); an UnknownSpeciesError is returned
//if neither matches. Moles must not be negative.
//
//The computation is a pure scaling by moles/referenceCoefficient, so it is
//linear: scaling the input by k scales every output by exactly k. Floating
//point is fine at this stage (physical quantities are approximate anyway); only
//the coefficient search itself needs exact arithmetic.
func FromMoles(eq *BalancedEquation, species string, moles float64) (*StoichiometryResult, error) {
	if moles < 0 {
		return nil, fmt.Errorf("stoich: negative amount %g mol of %s", moles, species)
	}
	ref, err := findSpecies(eq, species)
	if err != nil {
		return nil, errDecorate(err, "FromMoles")
	}
	all := eq.Species()
	perSpecies := make([]float64, len(all))
	for i, c := range eq.Coefficients {
		perSpecies[i] = float64(c)
	}
	floats.Scale(moles/float64(eq.Coefficients[ref]), perSpecies)
	result := &StoichiometryResult{Amounts: make([]Amount, len(all))}
	for i, f := range all {
		mass, err := MolarMass(f)
		if err != nil {
			return nil, errDecorate(err, "FromMoles")
		}
		result.Amounts[i] = Amount{
			Species:     f.Formula(),
			Coefficient: eq.Coefficients[i],
			Moles:       perSpecies[i],
			Grams:       perSpecies[i] * mass,
		}
	}
	return result, nil
}

//FromGrams derives the moles and grams of every species in eq from a known mass
//in grams of one reference species: the mass is converted to moles via the
//reference's molar mass and the call proceeds as FromMoles.
func FromGrams(eq *BalancedEquation, species string, grams float64) (*StoichiometryResult, error) {
	if grams < 0 {
		return nil, fmt.Errorf("stoich: negative amount %g g of %s", grams, species)
	}
	ref, err := findSpecies(eq, species)
	if err != nil {
		return nil, errDecorate(err, "FromGrams")
	}
	mass, err := MolarMass(eq.Species()[ref])
	if err != nil {
		return nil, errDecorate(err, "FromGrams")
	}
	result, err := FromMoles(eq, eq.Species()[ref].Formula(), grams/mass)
	return result, errDecorate(err, "FromGrams")
}

//findSpecies locates the reference species among reactants and products, by
//exact text first and then by semantic equality.
func findSpecies(eq *BalancedEquation, species string) (int, error) {
	all := eq.Species()
	for i, f := range all {
		if f.Formula() == species {
			return i, nil
		}
	}
	query, err := ParseFormula(species)
	if err != nil {
		//not parseable, so it cannot match any species semantically either
		return 0, unknownSpeciesError(species, eq.String())
	}
	for i, f := range all {
		if f.counts.Equal(query.counts) && f.charge == query.charge {
			return i, nil
		}
	}
	return 0, unknownSpeciesError(species, eq.String())
}
