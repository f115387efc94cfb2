/*
 * doc.go, part of goterms.
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

/*Package terms computes the Russell-Saunders (LS coupling) term symbols arising from
a subshell holding a given number of equivalent electrons, by the classical method of
microstates: every Pauli-valid placement of the electrons into the single-electron
states of the subshell is enumerated, the placements are tabulated by their total
orbital (ML) and spin (MS) projections, and term symbols are peeled off the table,
largest ML and MS first, until it is exhausted (so, for instance, p^3 gives
^{2}P, ^{2}D and ^{4}S).


	**goTerms capabilities**

    Validates a subshell (type, electron count) against its capacity 2(2L+1).

    Enumerates all C(2(2L+1), n) microstates of a subshell, with a traceable
	label for each (the 1-based indices of the occupied single-electron states).

    Aggregates microstates into the (ML, MS) table of the method, and can
	render that table as a dense count matrix (using github.com/skelterjohn/go.matrix,
	see also the goterms/termplot package, which draws it).

    Extracts the term symbols from the table, keeping, for each term, the
	microstates that were consumed to produce it, so the whole derivation can
	be followed by hand.

    Writes the full derivation, as it happens, to any io.Writer (io.Discard
	for the silent path; the LogFile sink writes it to a plain or compressed
	file). The derivation output is identical on every run.

    Picks the ground state term with the first two of Hund's rules.

Spins are doubled throughout the package to keep all the arithmetic in integers:
an ms of -1 means "spin -1/2", and the MS total of a microstate is twice the
physical value. Multiplicities (2S+1) are not doubled.

The enumeration is plain combinatorics and the extraction is a small greedy loop;
everything is deterministic and single-threaded. A half-filled i subshell, the worst
case this package is meant for, has C(26,13), a bit over ten million, microstates,
which is perfectly tractable as long as you don't write the derivation to a terminal.*/
package terms
