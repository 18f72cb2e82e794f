/*
 * formula.go, part of gostoich.
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

//ElementCount maps element symbols to the number of atoms of that element in a
//formula. Every stored count is strictly positive: elements that do not appear
//are simply absent, never stored with a zero.
type ElementCount map[string]int

//Equal returns whether E and other contain exactly the same elements with the
//same counts.
func (E ElementCount) Equal(other ElementCount) bool {
	if len(E) != len(other) {
		return false
	}
	for symbol, count := range E {
		if other[symbol] != count {
			return false
		}
	}
	return true
}

//ParsedFormula is the result of parsing one chemical-formula string: the
//per-element atom counts, the original text (kept for error messages and
//round-tripping) and the net ionic charge, if one was written (0 otherwise).
//A ParsedFormula is immutable after creation.
type ParsedFormula struct {
	text   string
	counts ElementCount
	charge int
}

//Formula returns the original formula text, as written by the user.
func (F *ParsedFormula) Formula() string { return F.text }

//String re-serializes the formula. The original text is already the canonical
//serialization of the parse (re-parsing it yields the same counts), so that is
//what is returned.
func (F *ParsedFormula) String() string { return F.text }

//Charge returns the net ionic charge of the formula (0 for neutral species).
func (F *ParsedFormula) Charge() int { return F.charge }

//Count returns the number of atoms of the element with the given symbol, or 0 if
//the element does not appear in the formula.
func (F *ParsedFormula) Count(symbol string) int { return F.counts[symbol] }

//Atoms returns a copy of the element->count map. The copy is the caller's to
//mutate; the ParsedFormula itself stays immutable.
func (F *ParsedFormula) Atoms() ElementCount {
	counts := make(ElementCount, len(F.counts))
	for symbol, count := range F.counts {
		counts[symbol] = count
	}
	return counts
}

//The parse tree is a tagged union: each node is an element leaf, a parenthesized
//group or a hydrate/adduct section. The accumulate step switches exhaustively on
//the tag, so adding a node kind without handling it there panics rather than
//producing silently wrong counts.
type nodeKind int

const (
	nodeElement nodeKind = iota //one element symbol with a count suffix
	nodeGroup                   //(...)n
	nodeHydrate                 //one dot-separated section with a leading multiplier
)

type formulaNode struct {
	kind   nodeKind
	symbol string         //nodeElement only
	count  int            //count suffix, group multiplier or hydrate leading integer
	parts  []*formulaNode //nodeGroup and nodeHydrate children
}

//accumulate adds the atoms of node, multiplied by mult, into counts.
func accumulate(node *formulaNode, mult int, counts ElementCount) {
	switch node.kind {
	case nodeElement:
		counts[node.symbol] += mult * node.count
	case nodeGroup, nodeHydrate:
		for _, part := range node.parts {
			accumulate(part, mult*node.count, counts)
		}
	default:
		panic("stoich: unhandled formula node kind") //programmer error, fail loudly
	}
}

//hydrateDot is the unicode multiplication dot of hydrate notation (CuSO4·5H2O).
const hydrateDot = "·"

//ParseFormula parses one chemical-formula string into a ParsedFormula.
//
//The grammar, by precedence: an element token is one uppercase letter followed by
//up to two lowercase letters, checked against the element table; an optional
//unsigned integer right after an element or closing parenthesis is its count
//(absent means 1); parenthesized groups multiply the counts of their content;
//the hydrate separators "·", "*" and "." join independent sub-formulas whose
//counts are summed, the trailing part scaled by its optional leading integer;
//a trailing charge suffix ("^2-", "2+", "+", ...) sets the net charge and never
//touches the counts.
//
//Counts for the same element coming from different parts of the formula are
//summed, so (NH4)2SO4 yields N:2 H:8 S:1 O:4. Whitespace anywhere in the text,
//an empty string, unbalanced parentheses and dangling separators are
//FormulaSyntaxErrors; a token that is not in the element table is an
//UnknownElementError.
func ParseFormula(text string) (*ParsedFormula, error) {
	if text == "" {
		return nil, formulaSyntaxError(text, 0, "empty formula")
	}
	if i := strings.IndexAny(text, " \t\n\r"); i >= 0 {
		return nil, formulaSyntaxError(text, i, "whitespace inside a formula")
	}
	body, charge, err := splitCharge(text)
	if err != nil {
		return nil, errDecorate(err, "ParseFormula")
	}
	p := &formulaParser{text: text, body: body}
	sections, err := p.parseHydrateSections()
	if err != nil {
		return nil, errDecorate(err, "ParseFormula")
	}
	counts := make(ElementCount)
	for _, section := range sections {
		accumulate(section, 1, counts)
	}
	if len(counts) == 0 {
		return nil, formulaSyntaxError(text, 0, "formula contains no elements")
	}
	return &ParsedFormula{text: text, counts: counts, charge: charge}, nil
}

//splitCharge strips a trailing charge suffix from text, returning the remaining
//body and the signed charge. Accepted forms, all at the very end: "+", "-",
//"n+", "n-", "^+", "^-", "^n+", "^n-". Absent suffix means charge 0.
func splitCharge(text string) (string, int, error) {
	last := text[len(text)-1]
	if last != '+' && last != '-' {
		return text, 0, nil
	}
	sign := 1
	if last == '-' {
		sign = -1
	}
	j := len(text) - 1
	for j > 0 && isDigit(text[j-1]) {
		j--
	}
	magnitude := 1
	if j < len(text)-1 {
		var err error
		magnitude, err = strconv.Atoi(text[j : len(text)-1])
		if err != nil || magnitude == 0 {
			return "", 0, formulaSyntaxError(text, j, "bad charge magnitude %q", text[j:len(text)-1])
		}
	}
	if j > 0 && text[j-1] == '^' {
		j--
	}
	if j == 0 {
		return "", 0, formulaSyntaxError(text, 0, "charge suffix without a formula")
	}
	return text[:j], sign * magnitude, nil
}

//formulaParser is a cursor over the charge-stripped body of a formula. text is
//the full original input and is only used in error messages, so reported byte
//positions always refer to what the user typed.
type formulaParser struct {
	text string
	body string
	pos  int
}

func (p *formulaParser) eof() bool { return p.pos >= len(p.body) }

//parseHydrateSections parses the whole body as one or more dot-separated
//sections and returns one nodeHydrate per section.
func (p *formulaParser) parseHydrateSections() ([]*formulaNode, error) {
	units, err := p.parseUnits(0)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, formulaSyntaxError(p.text, p.pos, "formula part contains no elements")
	}
	sections := []*formulaNode{{kind: nodeHydrate, count: 1, parts: units}}
	for !p.eof() {
		//parseUnits only stops mid-body on a top-level separator
		p.consumeSeparator()
		mult, err := p.parseCount()
		if err != nil {
			return nil, err
		}
		units, err = p.parseUnits(0)
		if err != nil {
			return nil, err
		}
		if len(units) == 0 {
			return nil, formulaSyntaxError(p.text, p.pos, "dangling hydrate separator")
		}
		sections = append(sections, &formulaNode{kind: nodeHydrate, count: mult, parts: units})
	}
	return sections, nil
}

//consumeSeparator advances over one hydrate separator. The caller guarantees the
//cursor is on one.
func (p *formulaParser) consumeSeparator() {
	if strings.HasPrefix(p.body[p.pos:], hydrateDot) {
		p.pos += len(hydrateDot)
		return
	}
	p.pos++ //'.' or '*'
}

//parseUnits parses a run of elements and groups. It returns on end of input, on
//a top-level hydrate separator, or on ')' when inside a group.
func (p *formulaParser) parseUnits(depth int) ([]*formulaNode, error) {
	var units []*formulaNode
	for !p.eof() {
		c := p.body[p.pos]
		switch {
		case c == '(':
			group, err := p.parseGroup(depth)
			if err != nil {
				return nil, err
			}
			units = append(units, group)
		case c == ')':
			if depth == 0 {
				return nil, formulaSyntaxError(p.text, p.pos, "unmatched closing parenthesis")
			}
			return units, nil
		case c >= 'A' && c <= 'Z':
			element, err := p.parseElement()
			if err != nil {
				return nil, err
			}
			units = append(units, element)
		case c == '.' || c == '*' || strings.HasPrefix(p.body[p.pos:], hydrateDot):
			if depth > 0 {
				return nil, formulaSyntaxError(p.text, p.pos, "hydrate separator inside a group")
			}
			return units, nil
		default:
			return nil, formulaSyntaxError(p.text, p.pos, "unexpected character %q", string(rune(c)))
		}
	}
	return units, nil
}

//parseElement consumes one element token plus its count suffix. The token is
//matched greedily (one uppercase plus up to two following lowercase letters) and
//then checked against the element table; there is no backtracking, so "Hx" is an
//unknown element, not H followed by garbage.
func (p *formulaParser) parseElement() (*formulaNode, error) {
	start := p.pos
	p.pos++
	for !p.eof() && p.pos-start < 3 && isLower(p.body[p.pos]) {
		p.pos++
	}
	symbol := p.body[start:p.pos]
	if !IsElement(symbol) {
		return nil, unknownElementError(symbol, start)
	}
	count, err := p.parseCount()
	if err != nil {
		return nil, err
	}
	return &formulaNode{kind: nodeElement, symbol: symbol, count: count}, nil
}

//parseGroup consumes "(", a sub-formula, ")" and the count suffix.
func (p *formulaParser) parseGroup(depth int) (*formulaNode, error) {
	open := p.pos
	p.pos++
	units, err := p.parseUnits(depth + 1)
	if err != nil {
		return nil, err
	}
	if p.eof() || p.body[p.pos] != ')' {
		return nil, formulaSyntaxError(p.text, open, "unclosed parenthesis")
	}
	p.pos++
	if len(units) == 0 {
		return nil, formulaSyntaxError(p.text, open, "empty group")
	}
	count, err := p.parseCount()
	if err != nil {
		return nil, err
	}
	return &formulaNode{kind: nodeGroup, count: count, parts: units}, nil
}

//parseCount consumes an optional unsigned integer; absence means 1. An explicit
//zero is rejected, as a zero-count element or group cannot be stored
//(ElementCount keeps strictly positive counts only).
func (p *formulaParser) parseCount() (int, error) {
	start := p.pos
	for !p.eof() && isDigit(p.body[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return 1, nil
	}
	count, err := strconv.Atoi(p.body[start:p.pos])
	if err != nil {
		return 0, formulaSyntaxError(p.text, start, "bad count %q", p.body[start:p.pos])
	}
	if count == 0 {
		return 0, formulaSyntaxError(p.text, start, "zero count")
	}
	return count, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
