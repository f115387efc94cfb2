/*
 * table.go, part of goterms.
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
	"sort"
	"strings"

	"github.com/skelterjohn/go.matrix"
)

//Table is the aggregation table of the method of microstates: the labels of
//the enumerated microstates, bucketed by their (ML, MS) totals. A table is
//built once from an enumeration and then consumed in place, bucket by bucket,
//by Extract. No other code should mutate it in between.
type Table struct {
	buckets map[int]map[int][]string //ML -> MS -> labels, MS doubled
}

//NewTable groups the given microstates by (ML, MS). The order of labels within
//a bucket follows the order of the input slice.
func NewTable(microstates []Microstate) *Table {
	T := new(Table)
	T.buckets = make(map[int]map[int][]string)
	for _, m := range microstates {
		row, ok := T.buckets[m.ML]
		if !ok {
			row = make(map[int][]string)
			T.buckets[m.ML] = row
		}
		row[m.MS] = append(row[m.MS], m.Label)
	}
	return T
}

//Empty returns true when no microstates remain in the table.
func (T *Table) Empty() bool {
	return len(T.buckets) == 0
}

//Len returns the number of microstate labels remaining in the table.
func (T *Table) Len() int {
	total := 0
	for _, row := range T.buckets {
		for _, bucket := range row {
			total += len(bucket)
		}
	}
	return total
}

//Count returns the number of microstates remaining in the (ml, ms) bucket
//(ms doubled). A missing bucket counts as zero.
func (T *Table) Count(ml, ms int) int {
	return len(T.buckets[ml][ms])
}

//MaxML returns the largest ML with microstates remaining.
//Panics on an empty table: callers must check Empty first.
func (T *Table) MaxML() int {
	if len(T.buckets) == 0 {
		panic("goTerms/Table.MaxML: empty table")
	}
	first := true
	var max int
	for ml := range T.buckets {
		if first || ml > max {
			max = ml
			first = false
		}
	}
	return max
}

//MaxMS returns the largest MS (doubled) remaining in the given ML row.
//Panics if the row is missing or empty; rows are pruned as soon as they empty,
//so that can only mean the table was corrupted from outside.
func (T *Table) MaxMS(ml int) int {
	row := T.buckets[ml]
	if len(row) == 0 {
		panic(fmt.Sprintf("goTerms/Table.MaxMS: no microstates left with ML=%d", ml))
	}
	first := true
	var max int
	for ms := range row {
		if first || ms > max {
			max = ms
			first = false
		}
	}
	return max
}

//MLs returns the ML values with microstates remaining, largest first.
func (T *Table) MLs() []int {
	mls := make([]int, 0, len(T.buckets))
	for ml := range T.buckets {
		mls = append(mls, ml)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(mls)))
	return mls
}

//MSs returns the MS values (doubled) with microstates remaining in the given
//ML row, largest first.
func (T *Table) MSs(ml int) []int {
	row := T.buckets[ml]
	mss := make([]int, 0, len(row))
	for ms := range row {
		mss = append(mss, ms)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(mss)))
	return mss
}

//Remove takes one label out of the (ml, ms) bucket and returns it, deleting
//the bucket, and then the row, if they become empty. Which label is removed is
//unspecified: the microstates in a bucket are degenerate and interchangeable.
//An empty or missing bucket here is an internal-invariant violation (the
//combinatorial structure of a well-formed table guarantees every targeted cell
//is populated) so Remove panics rather than ever skipping it silently.
func (T *Table) Remove(ml, ms int) string {
	row, ok := T.buckets[ml]
	if !ok {
		panic(fmt.Sprintf("goTerms/Table.Remove: no microstates left with ML=%d", ml))
	}
	bucket, ok := row[ms]
	if !ok || len(bucket) == 0 {
		panic(fmt.Sprintf("goTerms/Table.Remove: no microstates left with ML=%d, MS=%s", ml, halfint(ms)))
	}
	label := bucket[len(bucket)-1]
	if len(bucket) == 1 {
		delete(row, ms)
	} else {
		row[ms] = bucket[:len(bucket)-1]
	}
	if len(row) == 0 {
		delete(T.buckets, ml)
	}
	return label
}

//CountsMatrix renders the table as a dense matrix of bucket sizes, one row per
//remaining ML (descending) and one column per MS (doubled, descending, the
//union over all rows). It returns the matrix together with the ML and MS
//values labeling its rows and columns. The matrix is a snapshot; it does not
//track later removals.
func (T *Table) CountsMatrix() (*matrix.DenseMatrix, []int, []int) {
	mls := T.MLs()
	msset := make(map[int]bool)
	for _, row := range T.buckets {
		for ms := range row {
			msset[ms] = true
		}
	}
	mss := make([]int, 0, len(msset))
	for ms := range msset {
		mss = append(mss, ms)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(mss)))
	M := matrix.Zeros(len(mls), len(mss))
	for i, ml := range mls {
		for j, ms := range mss {
			M.Set(i, j, float64(T.Count(ml, ms)))
		}
	}
	return M, mls, mss
}

//String prints the remaining bucket sizes, one ML row per line, largest ML
//and MS first.
func (T *Table) String() string {
	lines := make([]string, 0, len(T.buckets))
	for _, ml := range T.MLs() {
		cells := make([]string, 0, len(T.buckets[ml]))
		for _, ms := range T.MSs(ml) {
			cells = append(cells, fmt.Sprintf("MS=%s:%d", halfint(ms), T.Count(ml, ms)))
		}
		lines = append(lines, fmt.Sprintf("ML=%d | %s", ml, strings.Join(cells, " ")))
	}
	return strings.Join(lines, "\n")
}
