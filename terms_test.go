/*
 * terms_test.go, part of goterms.
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
 */

package terms

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat/combin"
)

func termStrings(ts []TermType) []string {
	ret := make([]string, len(ts))
	for i, t := range ts {
		ret[i] = t.String()
	}
	return ret
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

//TestTermsFixtures checks the classic term tables: p^1, p^2, p^3 and d^2.
func TestTermsFixtures(Te *testing.T) {
	cases := []struct {
		tp   SubshellType
		n    int
		want []string
	}{
		{1, 1, []string{"^{2}P"}},
		{1, 2, []string{"^{1}S", "^{1}D", "^{3}P"}},
		{1, 3, []string{"^{2}P", "^{2}D", "^{4}S"}},
		{2, 2, []string{"^{1}S", "^{1}D", "^{1}G", "^{3}P", "^{3}F"}},
	}
	for _, c := range cases {
		sub, err := NewSubshell(c.tp, c.n)
		if err != nil {
			Te.Fatal(err)
		}
		got := termStrings(sub.Terms())
		if !sameStrings(got, c.want) {
			Te.Errorf("%s: got %v, want %v", sub, got, c.want)
		}
		fmt.Println(sub, "->", got)
	}
}

//TestBoundary: an empty and a full subshell both have the single term ^{1}S.
func TestBoundary(Te *testing.T) {
	for l := SubshellType(0); l <= 3; l++ {
		for _, n := range []int{0, l.MaxElectrons()} {
			sub, err := NewSubshell(l, n)
			if err != nil {
				Te.Fatal(err)
			}
			got := termStrings(sub.Terms())
			if !sameStrings(got, []string{"^{1}S"}) {
				Te.Errorf("%s: got %v, want [^{1}S]", sub, got)
			}
		}
	}
}

//TestConservation checks the correctness invariant of the method on every
//electron count of the s, p, d and f subshells: the degeneracies of the
//extracted terms, and the microstates actually consumed, must add up to
//C(capacity, n) exactly.
func TestConservation(Te *testing.T) {
	for l := SubshellType(0); l <= 3; l++ {
		for n := 0; n <= l.MaxElectrons(); n++ {
			sub, err := NewSubshell(l, n)
			if err != nil {
				Te.Fatal(err)
			}
			records, err := sub.TermRecords(io.Discard)
			if err != nil {
				Te.Fatal(err)
			}
			degeneracy := 0
			consumed := 0
			for _, r := range records {
				degeneracy += r.Degeneracy()
				consumed += len(r.States)
			}
			want := combin.Binomial(l.MaxElectrons(), n)
			if degeneracy != want || consumed != want {
				Te.Errorf("%s: degeneracies add to %d, consumed %d microstates, want %d", sub, degeneracy, consumed, want)
			}
		}
	}
}

//TestOrderIndependence: shuffling the single-electron state list changes the
//labels but not the extracted terms.
func TestOrderIndependence(Te *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	cases := []struct {
		tp SubshellType
		n  int
	}{{1, 3}, {2, 2}, {2, 4}}
	for _, c := range cases {
		sub, err := NewSubshell(c.tp, c.n)
		if err != nil {
			Te.Fatal(err)
		}
		want := termStrings(sub.Terms())
		states := States(c.tp)
		rnd.Shuffle(len(states), func(i, j int) {
			states[i], states[j] = states[j], states[i]
		})
		records, err := NewTable(Microstates(states, c.n)).Extract(io.Discard)
		if err != nil {
			Te.Fatal(err)
		}
		got := termStrings(Collapse(records))
		if !sameStrings(got, want) {
			Te.Errorf("%s with shuffled states: got %v, want %v", sub, got, want)
		}
	}
}

//TestHoleEquivalence: a subshell and its hole-complement have the same terms.
func TestHoleEquivalence(Te *testing.T) {
	cases := []struct {
		tp SubshellType
		n  int
	}{{1, 1}, {1, 2}, {2, 2}, {2, 3}}
	for _, c := range cases {
		sub, err := NewSubshell(c.tp, c.n)
		if err != nil {
			Te.Fatal(err)
		}
		want := termStrings(sub.Terms())
		got := termStrings(sub.Hole().Terms())
		if !sameStrings(got, want) {
			Te.Errorf("%s vs %s: %v vs %v", sub, sub.Hole(), want, got)
		}
	}
}

//TestDuplicateTerms: d^3 extracts two separate ^{2}D terms, which the record
//list keeps apart and Collapse merges.
func TestDuplicateTerms(Te *testing.T) {
	sub, err := NewSubshell(2, 3)
	if err != nil {
		Te.Fatal(err)
	}
	records, err := sub.TermRecords(io.Discard)
	if err != nil {
		Te.Fatal(err)
	}
	if len(records) != 8 {
		Te.Errorf("d^3 extracted %d terms, want 8", len(records))
	}
	twoD := 0
	for _, r := range records {
		if r.Type == (TermType{Momentum: 2, Multiplet: 2}) {
			twoD++
		}
	}
	if twoD != 2 {
		Te.Errorf("d^3 extracted %d ^{2}D terms, want 2", twoD)
	}
	if collapsed := Collapse(records); len(collapsed) != 7 {
		Te.Errorf("d^3 collapses to %d distinct terms, want 7", len(collapsed))
	}
}

func TestGroundTerm(Te *testing.T) {
	cases := []struct {
		tp   SubshellType
		n    int
		want string
	}{
		{1, 1, "^{2}P"},
		{1, 3, "^{4}S"},
		{2, 2, "^{3}F"},
		{2, 3, "^{4}F"},
	}
	for _, c := range cases {
		sub, err := NewSubshell(c.tp, c.n)
		if err != nil {
			Te.Fatal(err)
		}
		records, err := sub.TermRecords(io.Discard)
		if err != nil {
			Te.Fatal(err)
		}
		if got := GroundTerm(records).String(); got != c.want {
			Te.Errorf("ground term of %s: got %s, want %s", sub, got, c.want)
		}
	}
}

//TestDerivationLog compares the p^1 derivation, which is small enough to be
//fully determined, line by line.
func TestDerivationLog(Te *testing.T) {
	sub, err := NewSubshell(1, 1)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	got, err := sub.TermsLog(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if !sameStrings(termStrings(got), []string{"^{2}P"}) {
		Te.Errorf("p^1 terms: got %v", got)
	}
	//the separator lines carry a trailing space, so the expectation is
	//assembled instead of spelled out
	sep := separator + "\n"
	want := "Sublevel: p^{1}\n" + sep +
		"Single electron states (6 total)\n" +
		"0: (-1, -1/2)\n1: (-1, 1/2)\n2: (0, -1/2)\n3: (0, 1/2)\n4: (1, -1/2)\n5: (1, 1/2)\n" + sep +
		"Level states\n(6 total)\n" +
		"1: (-1, -1/2)\n2: (-1, 1/2)\n3: (0, -1/2)\n4: (0, 1/2)\n5: (1, -1/2)\n6: (1, 1/2)\n" + sep +
		"Terms:\n^{2}P\n- 1\n- 2\n- 3\n- 4\n- 5\n- 6\n"
	if buf.String() != want {
		Te.Errorf("p^1 derivation log:\n%q\nwant:\n%q", buf.String(), want)
	}
}

//failWriter always fails, to stand in for a broken sink.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, fmt.Errorf("sink is broken")
}

//TestFailingSink: sink errors abort the derivation and propagate.
func TestFailingSink(Te *testing.T) {
	sub, err := NewSubshell(1, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := sub.TermsLog(failWriter{}); err == nil {
		Te.Error("TermsLog on a failing sink should return its error")
	}
}
