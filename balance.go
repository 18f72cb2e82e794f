/*
 * balance.go, part of gostoich.
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

//Balance parses an equation string, finds its minimal positive integer
//coefficients and validates the result. It is the one call outer layers (UIs,
//worker pools, database front ends) need: everything it returns is a plain
//value, every error message is displayable to a user, and the call is pure and
//synchronous, so wrapping it in whatever concurrency the caller uses needs no
//coordination with this library.
//
//The Report carries the non-fatal warnings (degenerate solution space, charge
//imbalance); it is never nil when the error is nil, and by construction its OK
//field is true.
func Balance(equation string) (*BalancedEquation, *Report, error) {
	reactants, products, err := ParseEquation(equation)
	if err != nil {
		return nil, nil, errDecorate(err, "Balance")
	}
	matrix := NewCompositionMatrix(reactants, products)
	coefficients, degenerate, err := matrix.Solve()
	if err != nil {
		return nil, nil, errDecorate(err, "Balance")
	}
	eq := &BalancedEquation{
		Reactants:    reactants,
		Products:     products,
		Coefficients: coefficients,
		Degenerate:   degenerate,
	}
	return eq, Validate(eq), nil
}

//MustBalance is Balance for inputs known to be valid, panicking on error and
//dropping the report. Meant for fixtures, examples and tests.
func MustBalance(equation string) *BalancedEquation {
	eq, _, err := Balance(equation)
	if err != nil {
		panic(err.Error())
	}
	return eq
}
