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

/*Package ratmat implements a small dense matrix of exact rationals (math/big.Rat)
with Gauss-Jordan reduction to reduced row-echelon form. It exists because the
elemental-conservation systems gostoich solves are frequently near-singular or
carry large integer entries, and float64 elimination (gonum's territory) rounds
their solutions incorrectly; the balancer needs the reduction to be exact so the
integrality and minimality of the final coefficients are guaranteed, not
approximated.

The package is deliberately tiny: it provides only what the balancer consumes.
All operations are deterministic, with fixed pivot-selection and loop orders.
*/
package ratmat
