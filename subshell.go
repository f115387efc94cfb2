/*
 * subshell.go, part of goterms.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * Goterms is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */

package terms

import "fmt"

//SubshellType is the orbital angular momentum quantum number (L) of a subshell:
//0 for s, 1 for p, 2 for d, and so on. It must be nonnegative. Nothing here
//actually limits how large it can be, but anything beyond i (L=6, whose
//half-filled shell already has over ten million microstates) is not going to
//be much fun.
type SubshellType int

var subshellLetters = []string{"s", "p", "d", "f", "g", "h", "i"}

//String returns the spectroscopic letter for the subshell type (s, p, d, f, g,
//h, i) or, past i, the explicit form "(L=n)".
func (T SubshellType) String() string {
	if T >= 0 && int(T) < len(subshellLetters) {
		return subshellLetters[T]
	}
	return fmt.Sprintf("(L=%d)", int(T))
}

//MaxElectrons returns the capacity of the subshell type, 2(2L+1).
//It panics on a negative type. This is a fundamental function: a negative L
//means the program, not the user input, is wrong.
func (T SubshellType) MaxElectrons() int {
	if T < 0 {
		panic(fmt.Sprintf("goTerms/SubshellType.MaxElectrons: negative subshell type %d", int(T)))
	}
	return 2 * (2*int(T) + 1)
}

//Mls returns the possible ml values of the subshell type, -L..L, ascending.
func (T SubshellType) Mls() []int {
	l := int(T)
	mls := make([]int, 0, 2*l+1)
	for ml := -l; ml <= l; ml++ {
		mls = append(mls, ml)
	}
	return mls
}

//Subshell is a subshell type together with the number of equivalent electrons
//placed on it. It is immutable after construction, and the electron count is
//guaranteed not to exceed the capacity of the type.
type Subshell struct {
	tp        SubshellType
	electrons int
}

//NewSubshell validates the electron count against the capacity of the subshell
//type and returns the subshell, or a *CapacityError if the count doesn't fit.
//This is the only recoverable error in the library: everything downstream of a
//valid Subshell is total.
func NewSubshell(t SubshellType, electrons int) (*Subshell, error) {
	if electrons < 0 || electrons > t.MaxElectrons() {
		return nil, &CapacityError{tp: t, electrons: electrons}
	}
	S := new(Subshell)
	S.tp = t
	S.electrons = electrons
	return S, nil
}

//Type returns the type (the L quantum number) of the subshell.
func (S *Subshell) Type() SubshellType {
	return S.tp
}

//Electrons returns the number of electrons on the subshell.
func (S *Subshell) Electrons() int {
	return S.electrons
}

//String renders the usual notation with the electron count as a superscript,
//e.g. "p^{3}".
func (S *Subshell) String() string {
	return fmt.Sprintf("%s^{%d}", S.tp, S.electrons)
}

//Hole returns the complementary subshell, with capacity-n electrons. By
//particle-hole symmetry it produces exactly the same terms, so it is the cheap
//way to handle nearly-full subshells by hand (p^5 via p^1, d^8 via d^2).
func (S *Subshell) Hole() *Subshell {
	return &Subshell{tp: S.tp, electrons: S.tp.MaxElectrons() - S.electrons}
}

//Errors

//Error is the interface for errors that all packages in this library implement.
//The Decorate method allows to add and retrieve info from the error, without
//changing its type or wrapping it around something else. Each Decorate call
//appends the caller's name (plus any relevant extra info) and returns the
//resulting slice; called with an empty string it just returns the current value.
type Error interface {
	Error() string
	Decorate(string) []string
}

//CapacityError signals an attempt to put more electrons on a subshell than it
//can hold. It implements Error.
type CapacityError struct {
	tp        SubshellType
	electrons int
	deco      []string
}

func (err *CapacityError) Error() string {
	return fmt.Sprintf("goTerms: there can be at most %d electrons on the %s sublevel, %d given", err.tp.MaxElectrons(), err.tp, err.electrons)
}

//Decorate adds the dec string to the decoration slice of the error, and returns
//the resulting slice.
func (err *CapacityError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Type returns the subshell type whose capacity was exceeded.
func (err *CapacityError) Type() SubshellType {
	return err.tp
}

//Electrons returns the offending electron count.
func (err *CapacityError) Electrons() int {
	return err.electrons
}
