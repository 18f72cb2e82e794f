/*
 * validate.go, part of gostoich.
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

import "fmt"

//Warning is a non-fatal finding about a successfully balanced equation. Warnings
//are returned alongside results, never as errors: callers should surface them
//but still use the result.
type Warning struct {
	Kind    WarningKind
	Message string
}

type WarningKind int

const (
	//WarnDegenerate marks an equation whose conservation system has more than
	//one independent solution; the returned coefficients are one valid minimal
	//answer among several.
	WarnDegenerate WarningKind = iota
	//WarnChargeImbalance marks an equation whose net charges, where given, do
	//not cancel between the sides. Charge tracking is best-effort (input often
	//omits charges), so this is not a hard failure.
	WarnChargeImbalance
)

//Report is the outcome of validating a balanced equation. All checks always
//run; nothing short-circuits, so every problem and warning is reported
//together.
type Report struct {
	OK       bool
	Problems []string
	Warnings []Warning
}

//Validate re-checks a balanced equation from scratch.
//
//Elemental balance is recomputed per element with plain integer arithmetic and
//must hold exactly; a mismatch makes the report not OK. Charge imbalance and
//solver degeneracy are warnings. A coefficient vector whose gcd is not 1 is not
//a reportable condition at all: the solver guarantees minimality, so a
//violation is a solver bug and panics.
func Validate(eq *BalancedEquation) *Report {
	report := &Report{OK: true}
	checkElementBalance(eq, report)
	checkChargeBalance(eq, report)
	if eq.Degenerate {
		report.Warnings = append(report.Warnings, Warning{
			Kind:    WarnDegenerate,
			Message: "the equation admits more than one independent balanced form",
		})
	}
	assertMinimal(eq.Coefficients)
	return report
}

func checkElementBalance(eq *BalancedEquation, report *Report) {
	totals := make(map[string]int)
	for i, species := range eq.Reactants {
		for symbol, count := range species.counts {
			totals[symbol] += eq.Coefficients[i] * count
		}
	}
	offset := len(eq.Reactants)
	for i, species := range eq.Products {
		for symbol, count := range species.counts {
			totals[symbol] -= eq.Coefficients[offset+i] * count
		}
	}
	for symbol, total := range totals {
		if total != 0 {
			report.OK = false
			report.Problems = append(report.Problems,
				fmt.Sprintf("element %s is not conserved (reactant excess %d)", symbol, total))
		}
	}
}

func checkChargeBalance(eq *BalancedEquation, report *Report) {
	charged := false
	total := 0
	for i, species := range eq.Species() {
		if species.charge != 0 {
			charged = true
		}
		sign := 1
		if i >= len(eq.Reactants) {
			sign = -1
		}
		total += sign * eq.Coefficients[i] * species.charge
	}
	if charged && total != 0 {
		report.Warnings = append(report.Warnings, Warning{
			Kind:    WarnChargeImbalance,
			Message: fmt.Sprintf("net charge differs between sides by %d", total),
		})
	}
}

//assertMinimal panics unless gcd(coefficients) == 1. The solver divides by the
//gcd before returning, so this is unreachable in a correct build.
func assertMinimal(coefficients []int) {
	if len(coefficients) == 0 {
		panic("stoich: balanced equation without coefficients")
	}
	g := coefficients[0]
	for _, c := range coefficients[1:] {
		g = gcdInt(g, c)
	}
	if g != 1 {
		panic(fmt.Sprintf("stoich: coefficients %v are not minimal (gcd %d)", coefficients, g))
	}
}

func gcdInt(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
