// Copyright 2024 Fantom Foundation
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package graph

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat is the sentinel matched by every FormatError.
var ErrFormat = errors.New("bad graph encoding")

// FormatError reports a malformed encoded graph. Line is the 1-based line
// of an edge-list input, or 0 for the binary matrix form.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v; line %d: %s", ErrFormat, e.Line, e.Reason)
	}
	return fmt.Sprintf("%v; %s", ErrFormat, e.Reason)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func formatErrorf(line int, format string, args ...any) error {
	return &FormatError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// IngestMode selects how edges referencing invalid vertices are treated
// when decoding an edge list.
type IngestMode int

const (
	// Strict rejects out-of-range vertices and self loops with a FormatError.
	Strict IngestMode = iota
	// Lenient silently drops such edges. Upstream query and dataset files are
	// noisy, but a dropped edge changes the expected count, so this mode has to
	// be requested explicitly.
	Lenient
)

func (m IngestMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	}
	return fmt.Sprintf("IngestMode(%d)", int(m))
}

// ParseIngestMode converts the textual flag value into an IngestMode.
func ParseIngestMode(s string) (IngestMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	}
	return Strict, fmt.Errorf("unknown ingest mode %q; use strict or lenient", s)
}

// DecodeEdgeList parses the textual edge-list encoding. The first significant
// line is the header holding the order, either as "<order>" or in the legacy
// query form "t <order> <edges>". Every following line is an edge "u v", an
// edge with a trailing label "u v <label>" or a legacy "e u v <label>" line.
// Blank lines, "#" comments and legacy "v <id> <label>" lines are skipped.
func DecodeEdgeList(text string, mode IngestMode) (*Graph, error) {
	var g *Graph

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		if g == nil {
			order, err := parseHeader(lineNo, fields)
			if err != nil {
				return nil, err
			}
			g = NewGraph(order)
			continue
		}

		switch fields[0] {
		case "v":
			continue
		case "t":
			return nil, formatErrorf(lineNo, "repeated header")
		case "e":
			fields = fields[1:]
		}
		if len(fields) < 2 {
			return nil, formatErrorf(lineNo, "edge line needs two vertices, got %q", strings.Join(fields, " "))
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, formatErrorf(lineNo, "bad source vertex %q", fields[0])
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, formatErrorf(lineNo, "bad destination vertex %q", fields[1])
		}

		if _, err := g.AddEdge(u, v); err != nil {
			if mode == Lenient {
				continue
			}
			return nil, formatErrorf(lineNo, "%v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read edge list; %w", err)
	}
	if g == nil {
		return nil, formatErrorf(0, "missing header")
	}
	return g, nil
}

func parseHeader(lineNo int, fields []string) (int, error) {
	token := fields[0]
	if token == "t" {
		if len(fields) < 2 {
			return 0, formatErrorf(lineNo, "legacy header without order")
		}
		token = fields[1]
	} else if len(fields) != 1 {
		return 0, formatErrorf(lineNo, "missing header, found %q", strings.Join(fields, " "))
	}
	order, err := strconv.Atoi(token)
	if err != nil || order < 0 {
		return 0, formatErrorf(lineNo, "non-numeric header %q", token)
	}
	return order, nil
}

// EncodeEdgeList writes the order on the first line followed by one "u v"
// line per edge.
func EncodeEdgeList(g *Graph) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(g.Order()))
	b.WriteByte('\n')
	writeEdges(&b, g)
	return b.String()
}

func writeEdges(b *strings.Builder, g *Graph) {
	for _, e := range g.Edges() {
		b.WriteString(strconv.Itoa(e.U))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(e.V))
		b.WriteByte('\n')
	}
}

// EncodeBinaryMatrix renders the row-major adjacency matrix as a string of
// order² '0'/'1' characters. The empty graph encodes to "".
func EncodeBinaryMatrix(g *Graph) string {
	n := g.Order()
	buf := make([]byte, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if g.HasEdge(i, j) {
				buf[i*n+j] = '1'
			} else {
				buf[i*n+j] = '0'
			}
		}
	}
	return string(buf)
}

// DecodeBinaryMatrix is the inverse of EncodeBinaryMatrix. The matrix must
// have exactly order² characters, a zero diagonal and be symmetric;
// directed input is rejected rather than symmetrized.
func DecodeBinaryMatrix(s string, order int) (*Graph, error) {
	if order < 0 {
		return nil, formatErrorf(0, "negative order %d", order)
	}
	if len(s) != order*order {
		return nil, formatErrorf(0, "matrix has %d characters, order %d needs %d", len(s), order, order*order)
	}
	g := NewGraph(order)
	for i := 0; i < order; i++ {
		for j := 0; j < order; j++ {
			c := s[i*order+j]
			if c != '0' && c != '1' {
				return nil, formatErrorf(0, "invalid character %q at position %d", c, i*order+j)
			}
			if c != s[j*order+i] {
				return nil, formatErrorf(0, "asymmetric matrix at (%d,%d)", i, j)
			}
			if c == '0' {
				continue
			}
			if i == j {
				return nil, formatErrorf(0, "self loop on diagonal at vertex %d", i)
			}
			if i < j {
				g.AddEdge(i, j)
			}
		}
	}
	return g, nil
}
