/*
 * equation.go, part of gostoich.
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
	"strconv"
	"strings"
)

//EquationSide is an ordered sequence of species. The order is exactly the order
//the user wrote them in, and it is the column order of the composition matrix
//and of the coefficient vector, so it is never rearranged.
type EquationSide []*ParsedFormula

//unicodeArrow is the single-rune reaction arrow. "=" and "->" are the other two
//accepted spellings.
const unicodeArrow = "→"

//ParseEquation splits an equation string into its reactant and product sides and
//parses every species with ParseFormula.
//
//Exactly one top-level reaction arrow ("=", "->" or "→") is required. Each side
//is split on "+" at parenthesis depth 0; a "+" that is a trailing charge (that
//is, one not followed by the start of another term) is left alone. A leading
//integer on a term is a user-supplied coefficient hint and is discarded: the
//balancer always recomputes coefficients from scratch, so a wrong hint can never
//corrupt the result. Whitespace around "+" and the arrow is ignored; whitespace
//inside a term is an EquationSyntaxError.
func ParseEquation(text string) (EquationSide, EquationSide, error) {
	left, right, err := splitArrow(text)
	if err != nil {
		return nil, nil, err
	}
	reactants, err := parseSide(text, left)
	if err != nil {
		return nil, nil, errDecorate(err, "ParseEquation: reactants")
	}
	products, err := parseSide(text, right)
	if err != nil {
		return nil, nil, errDecorate(err, "ParseEquation: products")
	}
	return reactants, products, nil
}

//splitArrow finds the single reaction arrow. Zero or several arrows are both
//reported with the same message, as either way the equation has no unambiguous
//two sides.
func splitArrow(text string) (string, string, error) {
	var left, right string
	arrows := 0
	for i := 0; i < len(text); {
		var width int
		switch {
		case text[i] == '=':
			width = 1
		case strings.HasPrefix(text[i:], "->"):
			width = 2
		case strings.HasPrefix(text[i:], unicodeArrow):
			width = len(unicodeArrow)
		default:
			i++
			continue
		}
		arrows++
		if arrows == 1 {
			left, right = text[:i], text[i+width:]
		}
		i += width
	}
	if arrows != 1 {
		return "", "", equationSyntaxError(text, "missing or duplicate reaction arrow")
	}
	return left, right, nil
}

//parseSide splits one side on top-level "+" and parses each term. equation is
//the full input, kept only for error messages.
func parseSide(equation, side string) (EquationSide, error) {
	terms, err := splitTerms(equation, side)
	if err != nil {
		return nil, err
	}
	parsed := make(EquationSide, 0, len(terms))
	for _, term := range terms {
		formula, err := ParseFormula(term)
		if err != nil {
			if _, ok := err.(*UnknownElementError); ok {
				return nil, err
			}
			if _, ok := err.(*FormulaSyntaxError); ok {
				//inside an equation, internal whitespace means a missing "+",
				//which is an equation-level mistake
				if strings.ContainsAny(term, " \t") {
					return nil, equationSyntaxError(equation, "term %q: missing + between species?", term)
				}
			}
			return nil, err
		}
		parsed = append(parsed, formula)
	}
	return parsed, nil
}

//splitTerms splits side on every "+" that acts as a term separator: at
//parenthesis depth 0 and followed, after optional spaces, by something that can
//start a term (a digit, an uppercase letter or an opening parenthesis). Any
//other "+" is a charge suffix and stays attached to its term. Leading
//coefficient hints are stripped here.
func splitTerms(equation, side string) ([]string, error) {
	var terms []string
	depth := 0
	start := 0
	for i := 0; i < len(side); i++ {
		switch side[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '+':
			if depth == 0 && startsTerm(side[i+1:]) {
				terms = append(terms, side[start:i])
				start = i + 1
			}
		}
	}
	terms = append(terms, side[start:])
	cleaned := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			return nil, equationSyntaxError(equation, "empty term")
		}
		term = stripCoefficientHint(term)
		if term == "" {
			return nil, equationSyntaxError(equation, "term with a coefficient but no formula")
		}
		cleaned = append(cleaned, term)
	}
	return cleaned, nil
}

//startsTerm reports whether rest, after optional spaces, begins like a term.
func startsTerm(rest string) bool {
	rest = strings.TrimLeft(rest, " \t")
	if rest == "" {
		return false
	}
	c := rest[0]
	return isDigit(c) || (c >= 'A' && c <= 'Z') || c == '('
}

//stripCoefficientHint removes a leading integer from a term. Formulas cannot
//begin with a digit, so any leading digits are a user-supplied coefficient.
func stripCoefficientHint(term string) string {
	i := 0
	for i < len(term) && isDigit(term[i]) {
		i++
	}
	return strings.TrimLeft(term[i:], " \t")
}

//BalancedEquation is a chemically valid equation: both sides plus one positive
//integer coefficient per species, reactants first then products, in input
//order. The coefficients conserve every element exactly and their gcd is 1.
//Degenerate marks equations whose conservation system had more than one
//independent solution; the returned coefficients are still one valid, minimal,
//deterministic answer.
type BalancedEquation struct {
	Reactants    EquationSide
	Products     EquationSide
	Coefficients []int
	Degenerate   bool
}

//Species returns all species of the equation, reactants then products, in the
//same order as Coefficients. The slice is fresh; the sides are shared.
func (B *BalancedEquation) Species() EquationSide {
	all := make(EquationSide, 0, len(B.Reactants)+len(B.Products))
	all = append(all, B.Reactants...)
	all = append(all, B.Products...)
	return all
}

//String reconstructs the balanced equation text, omitting coefficients equal
//to 1, e.g. "2H2 + O2 = 2H2O".
func (B *BalancedEquation) String() string {
	var b strings.Builder
	writeSide(&b, B.Reactants, B.Coefficients[:len(B.Reactants)])
	b.WriteString(" = ")
	writeSide(&b, B.Products, B.Coefficients[len(B.Reactants):])
	return b.String()
}

func writeSide(b *strings.Builder, side EquationSide, coefficients []int) {
	for i, species := range side {
		if i > 0 {
			b.WriteString(" + ")
		}
		if coefficients[i] != 1 {
			b.WriteString(strconv.Itoa(coefficients[i]))
		}
		b.WriteString(species.Formula())
	}
}
