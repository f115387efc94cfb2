/*
 * states.go, part of goterms.
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

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/combin"
)

//The two possible ms values, doubled. Order matters: it fixes the identity
//(the index) of every single-electron state, and with it the labels in the
//derivation log.
var spins = [2]int{-1, 1}

//State is a single-electron quantum state of a subshell: an (ml, ms) pair,
//with ms doubled.
type State struct {
	Ml int
	Ms int //doubled, -1 or 1
}

//String renders the state as "(ml, ms/2)", with the doubled ms shown over 2,
//e.g. "(0, -1/2)".
func (S State) String() string {
	return fmt.Sprintf("(%d, %d/2)", S.Ml, S.Ms)
}

//States returns the single-electron states of a subshell of the given type,
//2(2L+1) of them, ordered by ml ascending with spin down before spin up for
//each ml. The order is stable so derivations are reproducible; the position of
//a state in this slice is its identity.
func States(t SubshellType) []State {
	sts := make([]State, 0, t.MaxElectrons())
	for _, ml := range t.Mls() {
		for _, ms := range spins {
			sts = append(sts, State{Ml: ml, Ms: ms})
		}
	}
	return sts
}

//Microstate is one Pauli-valid placement of indistinguishable electrons on
//distinct single-electron states, reduced to what the method needs: the totals
//ML and MS (the latter doubled) and a label, the 1-based indices of the
//occupied states, space-separated, which makes the microstate traceable
//through the derivation.
type Microstate struct {
	Label string
	ML    int
	MS    int //doubled
}

//String renders the microstate as "label: (ML, MS)", with MS shown as a plain
//integer when the doubled total is even and as "d/2" when it is odd, e.g.
//"1 4: (-1, 0)" or "1 2 3: (-2, -1/2)".
func (M Microstate) String() string {
	return fmt.Sprintf("%s: (%d, %s)", M.Label, M.ML, halfint(M.MS))
}

//halfint formats a doubled angular momentum projection.
func halfint(doubled int) string {
	if doubled%2 == 0 {
		return strconv.Itoa(doubled / 2)
	}
	return fmt.Sprintf("%d/2", doubled)
}

//Microstates enumerates every placement of n electrons on the given
//single-electron states, i.e. every n-combination of state indices, exactly
//C(len(states), n) of them, in lexicographic index order. n=0 gives the single
//empty microstate. The function is pure; calling it twice gives the same
//slice twice.
//It panics if n is negative or larger than the number of states: callers are
//expected to come through NewSubshell, which already checked.
func Microstates(states []State, n int) []Microstate {
	if n < 0 || n > len(states) {
		panic(fmt.Sprintf("goTerms/Microstates: can't place %d electrons on %d single-electron states", n, len(states)))
	}
	mss := make([]Microstate, 0, combin.Binomial(len(states), n))
	gen := combin.NewCombinationGenerator(len(states), n)
	comb := make([]int, n)
	label := make([]string, n)
	for gen.Next() {
		gen.Combination(comb)
		m := Microstate{}
		for i, idx := range comb {
			label[i] = strconv.Itoa(idx + 1)
			m.ML += states[idx].Ml
			m.MS += states[idx].Ms
		}
		m.Label = strings.Join(label, " ")
		mss = append(mss, m)
	}
	return mss
}
