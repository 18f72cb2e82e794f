/*
 * errors.go, part of gostoich.
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

// Error is the interface implemented by all errors this library returns. The Decorate
// method allows adding and retrieving info from the error as it is passed up, without
// changing its type or wrapping it into something else. The decoration slice contains
// the functions in the calling stack, plus, for each function, any relevant extra
// information in the format "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// errBase carries the message and decoration slice shared by all concrete error types.
type errBase struct {
	msg  string
	deco []string
}

func (err *errBase) Error() string { return err.msg }

// Decorate adds dec to the decoration slice, unless dec is empty, and returns the
// resulting slice.
func (err *errBase) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate decorates err with the caller's name if err implements Error,
// and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// FormulaSyntaxError reports malformed formula text: bad grouping, trailing
// operators, forbidden whitespace or an empty string. Position is the byte offset
// into Formula where the problem was found.
type FormulaSyntaxError struct {
	errBase
	Formula  string
	Position int
}

func formulaSyntaxError(formula string, position int, format string, a ...interface{}) *FormulaSyntaxError {
	return &FormulaSyntaxError{
		errBase:  errBase{msg: fmt.Sprintf("stoich: formula %q: %s (at byte %d)", formula, fmt.Sprintf(format, a...), position)},
		Formula:  formula,
		Position: position,
	}
}

// UnknownElementError reports a token that looks like an element symbol but is not
// in the element table.
type UnknownElementError struct {
	errBase
	Symbol   string
	Position int
}

func unknownElementError(symbol string, position int) *UnknownElementError {
	return &UnknownElementError{
		errBase:  errBase{msg: fmt.Sprintf("stoich: unknown element %q (at byte %d)", symbol, position)},
		Symbol:   symbol,
		Position: position,
	}
}

// EquationSyntaxError reports a malformed equation: a missing or duplicate reaction
// arrow, an empty side or a malformed term.
type EquationSyntaxError struct {
	errBase
	Equation string
}

func equationSyntaxError(equation, format string, a ...interface{}) *EquationSyntaxError {
	return &EquationSyntaxError{
		errBase:  errBase{msg: fmt.Sprintf("stoich: equation %q: %s", equation, fmt.Sprintf(format, a...))},
		Equation: equation,
	}
}

// UnbalanceableError reports that the elemental-conservation system of an equation
// admits no strictly positive integer solution.
type UnbalanceableError struct {
	errBase
	Equation string
}

func unbalanceableError(equation string) *UnbalanceableError {
	return &UnbalanceableError{
		errBase:  errBase{msg: fmt.Sprintf("stoich: equation %q has no strictly positive integer solution", equation)},
		Equation: equation,
	}
}

// UnknownSpeciesError reports a stoichiometry query that names a species absent from
// the balanced equation.
type UnknownSpeciesError struct {
	errBase
	Species  string
	Equation string
}

func unknownSpeciesError(species, equation string) *UnknownSpeciesError {
	return &UnknownSpeciesError{
		errBase:  errBase{msg: fmt.Sprintf("stoich: species %q does not appear in equation %q", species, equation)},
		Species:  species,
		Equation: equation,
	}
}
