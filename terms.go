/*
 * terms.go, part of goterms.
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
	"io"
	"sort"
)

//Separator between the sections of a derivation log.
const separator = " ----- "

//TermMomentum is the total orbital angular momentum (L) of a term.
type TermMomentum int

var termLetters = []string{"S", "P", "D", "F", "G", "H", "I"}

//String returns the term letter (S, P, D, F, G, H, I) or, past I, the explicit
//form "(L=n)".
func (T TermMomentum) String() string {
	if T >= 0 && int(T) < len(termLetters) {
		return termLetters[T]
	}
	return fmt.Sprintf("(L=%d)", int(T))
}

//TermType identifies one Russell-Saunders term: total orbital momentum and
//multiplicity (2S+1, not doubled). It is a comparable value, usable as a map key.
type TermType struct {
	Momentum  TermMomentum
	Multiplet int
}

//String renders the term symbol with the multiplicity as a superscript,
//e.g. "^{2}P".
func (T TermType) String() string {
	return fmt.Sprintf("^{%d}%s", T.Multiplet, T.Momentum)
}

//TermRecord is one term as it came out of the extraction: its type and the
//labels of the microstates consumed to produce it, in consumption order.
//Unlike a collapsed TermType list, a record slice keeps repeated (L, S) pairs
//apart, so it is the thing to use when the exact number of terms matters.
type TermRecord struct {
	Type   TermType
	States []string
}

//Degeneracy returns the number of microstates of the term, (2L+1)(2S+1).
//After extraction it always equals len(States); the conservation of the total
//C(2(2L+1), n) across all records is the correctness invariant of the method.
func (R *TermRecord) Degeneracy() int {
	return (2*int(R.Type.Momentum) + 1) * R.Type.Multiplet
}

//Extract peels term symbols off the table until it is exhausted and returns
//them in emission order, repeats included. Each iteration takes the largest
//remaining ML, the largest MS within it, emits the (ML, MS) term, and removes
//one microstate from every cell of the (2L+1)x(2S+1) rectangle centered at the
//origin. The combinatorial structure of a well-formed table guarantees every
//one of those cells is populated; if one isn't, Remove panics, since that can
//only mean the table is corrupted (it is never a user-input problem).
//The derivation ("Terms:" followed by each symbol and the microstates it
//consumed) is written to log as it happens; a write error aborts the
//extraction, leaving the table partially consumed.
func (T *Table) Extract(log io.Writer) ([]*TermRecord, error) {
	if _, err := fmt.Fprintln(log, "Terms:"); err != nil {
		return nil, err
	}
	var records []*TermRecord
	for !T.Empty() {
		l := T.MaxML()
		s := T.MaxMS(l)
		if l < 0 || s < 0 {
			panic(fmt.Sprintf("goTerms/Table.Extract: largest remaining ML (%d) and MS (%s) must be nonnegative", l, halfint(s)))
		}
		//s is doubled, so the multiplicity 2S+1 is just s+1.
		rec := &TermRecord{Type: TermType{Momentum: TermMomentum(l), Multiplet: s + 1}}
		if _, err := fmt.Fprintln(log, rec.Type); err != nil {
			return nil, err
		}
		for ml := -l; ml <= l; ml++ {
			for ms := -s; ms <= s; ms += 2 {
				label := T.Remove(ml, ms)
				rec.States = append(rec.States, label)
				if _, err := fmt.Fprintf(log, "- %s\n", label); err != nil {
					return nil, err
				}
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

//TermRecords enumerates the microstates of the subshell, aggregates them and
//extracts the terms, writing the full derivation to log: the sublevel header,
//the numbered single-electron states, every microstate with its (ML, MS)
//totals, and finally each term with the microstates it consumed, the sections
//separated by " ----- " lines. Pass io.Discard for the silent path; the
//computation is exactly the same either way. The only possible errors are
//write errors from log, which abort the derivation and propagate.
func (S *Subshell) TermRecords(log io.Writer) ([]*TermRecord, error) {
	if _, err := fmt.Fprintf(log, "Sublevel: %s\n", S); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(log, separator); err != nil {
		return nil, err
	}
	states := States(S.tp)
	if _, err := fmt.Fprintf(log, "Single electron states (%d total)\n", len(states)); err != nil {
		return nil, err
	}
	for i, st := range states {
		if _, err := fmt.Fprintf(log, "%d: %s\n", i, st); err != nil {
			return nil, err
		}
	}
	if _, err := fmt.Fprintln(log, separator); err != nil {
		return nil, err
	}
	micro := Microstates(states, S.electrons)
	if _, err := fmt.Fprintln(log, "Level states"); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintf(log, "(%d total)\n", len(micro)); err != nil {
		return nil, err
	}
	for _, m := range micro {
		if _, err := fmt.Fprintln(log, m); err != nil {
			return nil, err
		}
	}
	if _, err := fmt.Fprintln(log, separator); err != nil {
		return nil, err
	}
	return NewTable(micro).Extract(log)
}

//Terms returns the distinct term symbols of the subshell, silently. The result
//is collapsed to unique (momentum, multiplicity) pairs, sorted by multiplicity
//and then momentum; use TermRecords when repeated terms must be kept apart.
func (S *Subshell) Terms() []TermType {
	records, err := S.TermRecords(io.Discard)
	if err != nil { //io.Discard can't fail
		panic("goTerms/Subshell.Terms: " + err.Error())
	}
	return Collapse(records)
}

//TermsLog is Terms with the full derivation written to log.
func (S *Subshell) TermsLog(log io.Writer) ([]TermType, error) {
	records, err := S.TermRecords(log)
	if err != nil {
		return nil, err
	}
	return Collapse(records), nil
}

//Collapse reduces a record list to its distinct term types, sorted by
//multiplicity and then momentum. Terms extracted more than once (which does
//happen, d^3 gives two separate ^{2}D) appear a single time in the result.
func Collapse(records []*TermRecord) []TermType {
	seen := make(map[TermType]bool, len(records))
	ts := make([]TermType, 0, len(records))
	for _, r := range records {
		if !seen[r.Type] {
			seen[r.Type] = true
			ts = append(ts, r.Type)
		}
	}
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Multiplet != ts[j].Multiplet {
			return ts[i].Multiplet < ts[j].Multiplet
		}
		return ts[i].Momentum < ts[j].Momentum
	})
	return ts
}

//GroundTerm picks the ground state term from the extracted records with the
//first two of Hund's rules: largest multiplicity wins, largest momentum breaks
//ties. Panics on an empty record list.
func GroundTerm(records []*TermRecord) TermType {
	if len(records) == 0 {
		panic("goTerms/GroundTerm: no terms given")
	}
	best := records[0].Type
	for _, r := range records[1:] {
		t := r.Type
		if t.Multiplet > best.Multiplet || (t.Multiplet == best.Multiplet && t.Momentum > best.Momentum) {
			best = t
		}
	}
	return best
}
