/*
 * sink.go, part of goterms.
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
	"compress/flate"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//LogFile is a derivation-log sink backed by a file, optionally compressed.
//Derivations grow quickly with the subshell (a half-filled f subshell has
//C(14,7)=3432 microstates, a half-filled i subshell over ten million), and the
//text is extremely repetitive, so it compresses very well.
type LogFile struct {
	f *os.File
	h io.WriteCloser
}

//NewLogFile creates the named file and returns a sink writing the derivation
//to it. The compressor is picked from the extension: .gz for gzip, .zst for
//zstd and .flate for DEFLATE; anything else is written as plain text.
func NewLogFile(name string) (*LogFile, error) {
	L := new(LogFile)
	var err error
	L.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(a), nil }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(a) }
	flatewriter := func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, flate.DefaultCompression) }
	plainwriter := func(a io.Writer) (io.WriteCloser, error) { return nopCloseWriter{a}, nil }
	var anyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch {
	case strings.HasSuffix(name, ".gz"):
		anyNewWriter = gzipwriter
	case strings.HasSuffix(name, ".zst"):
		anyNewWriter = zstdwriter
	case strings.HasSuffix(name, ".flate"):
		anyNewWriter = flatewriter
	default:
		anyNewWriter = plainwriter
	}
	L.h, err = anyNewWriter(L.f)
	if err != nil {
		L.f.Close()
		return nil, err
	}
	return L, nil
}

//Write implements io.Writer.
func (L *LogFile) Write(p []byte) (int, error) {
	return L.h.Write(p)
}

//Close flushes the compressor, if any, and closes the file. The sink can not
//be used after this call. Skipping Close on a compressed sink leaves the file
//truncated.
func (L *LogFile) Close() error {
	if err := L.h.Close(); err != nil {
		L.f.Close()
		return err
	}
	return L.f.Close()
}

type nopCloseWriter struct {
	io.Writer
}

func (nopCloseWriter) Close() error { return nil }
