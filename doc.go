/*
 * doc.go, part of gostoich.
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

/*Package stoich is the main package of the gostoich library. It parses chemical formulas
and reaction equations, balances equations with exact rational arithmetic, and derives
stoichiometric quantities (moles, grams) from a balanced equation and a known amount of
one species.


	**gostoich Capabilities**


    Parses chemical formulas with nested groups, hydrates and net-charge suffixes
	(e.g. (NH4)2SO4, CuSO4·5H2O, SO4^2-), producing exact per-element counts.

    Parses reaction equations written with =, -> or → as the reaction arrow,
	preserving the species order as written.

    Balances equations by solving the elemental-conservation system with exact
	rational Gaussian elimination (no floating point), returning the minimal
	positive integer coefficients.

    Validates balanced equations: elemental balance, charge balance and
	coefficient minimality, reporting all findings together.

    Computes molar masses from an embedded standard atomic-weight table covering
	the full periodic table.

    Propagates a known quantity (moles or grams) of one species to every other
	species in a balanced equation via the coefficient ratios.

Every function in the library is a pure, synchronous computation over its inputs.
There is no I/O and no shared mutable state, so any function may be called
concurrently from any number of goroutines without synchronization.

The library uses gonum (gonum.org/v1/gonum) for the floating-point side of the
work; the coefficient search itself is done over math/big rationals in the
subpackage ratmat, as the conservation systems are frequently near-singular and
float elimination rounds them incorrectly.
*/
package stoich
