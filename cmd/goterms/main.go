/*
 * main.go, part of goterms.
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

//goterms prints the Russell-Saunders term symbols of a subshell with a given
//number of equivalent electrons.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	terms "github.com/rmera/goterms"
	"github.com/rmera/goterms/termplot"
)

var (
	sublevel  int
	electrons int
	verbose   bool
	logfile   string
	plotfile  string
	ground    bool
)

var rootCmd = &cobra.Command{
	Use:   "goterms",
	Short: "Russell-Saunders term symbols for equivalent electrons",
	Long: `goterms enumerates every Pauli-valid microstate of a subshell holding a
given number of equivalent electrons, tabulates them by their (ML, MS) totals
and peels the term symbols off the table, e.g.:

  goterms -l 1 -n 3       p^3: ^{2}P, ^{2}D and ^{4}S
  goterms -l 2 -n 2 -v    d^2, printing the whole derivation

Spins are doubled in the derivation output: a single-electron ms is printed as
-1/2 or 1/2, and microstate MS totals as integers or halves as appropriate.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVarP(&sublevel, "sublevel", "l", 0, "Type of the sublevel (0 for s, 1 for p, etc)")
	rootCmd.Flags().IntVarP(&electrons, "electrons", "n", 0, "Number of electrons")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the full derivation")
	rootCmd.Flags().StringVar(&logfile, "log", "", "Write the derivation to this file (.gz, .zst and .flate extensions compress it)")
	rootCmd.Flags().StringVar(&plotfile, "plot", "", "Plot the microstate count table (png, extension appended)")
	rootCmd.Flags().BoolVar(&ground, "ground", false, "Also print the ground state term (Hund's rules)")
}

func run(cmd *cobra.Command, args []string) error {
	if sublevel < 0 {
		return fmt.Errorf("the sublevel type can't be negative, %d given", sublevel)
	}
	sub, err := terms.NewSubshell(terms.SubshellType(sublevel), electrons)
	if err != nil {
		return err
	}
	var sink io.Writer = io.Discard
	if verbose {
		sink = cmd.OutOrStdout()
	}
	if logfile != "" {
		lf, err := terms.NewLogFile(logfile)
		if err != nil {
			return err
		}
		defer lf.Close()
		if verbose {
			sink = io.MultiWriter(sink, lf)
		} else {
			sink = lf
		}
	}
	records, err := sub.TermRecords(sink)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nFound terms:")
	for _, t := range terms.Collapse(records) {
		fmt.Fprintln(out, t)
	}
	if ground {
		fmt.Fprintf(out, "Ground state term: %s\n", terms.GroundTerm(records))
	}
	if plotfile != "" {
		if err := termplot.SubshellPlot(sub, plotfile); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
