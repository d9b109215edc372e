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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// File names of the dataset directory layout consumed by the engine.
const (
	SnapFileName = "snap.txt"
	MetaFileName = "meta.txt"
)

// Meta keys written into the dataset metadata file.
const (
	MetaNumVertex   = "NUM_VERTEX"
	MetaNumEdge     = "NUM_EDGE"
	MetaNumTriangle = "NUM_TRIANGLE"
	MetaMaxDegree   = "MAX_DEGREE"
	MetaMaxOffset   = "MAX_OFFSET"
	MetaMaxTriangle = "MAX_TRIANGLE"
)

// Meta summarizes the metadata file of a dataset directory.
type Meta struct {
	NumVertex   int
	NumEdge     int
	NumTriangle int64
	MaxDegree   int
	MaxOffset   int
	MaxTriangle int
}

// MakeMeta derives the dataset metadata of g. MAX_OFFSET and MAX_TRIANGLE
// are upper bounds used by the engine's preprocessor for buffer sizing.
func MakeMeta(g *Graph) Meta {
	return Meta{
		NumVertex:   g.Order(),
		NumEdge:     g.NumEdges(),
		NumTriangle: g.Triangles(),
		MaxDegree:   g.MaxDegree(),
		MaxOffset:   g.NumEdges(),
		MaxTriangle: g.MaxDegree(),
	}
}

// WriteDataset creates dir (if needed) and stores g as a headerless edge
// list in snap.txt plus the KEY\tVALUE metadata in meta.txt.
func WriteDataset(dir string, g *Graph) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create dataset directory %v; %w", dir, err)
	}

	var b strings.Builder
	writeEdges(&b, g)
	if err := os.WriteFile(filepath.Join(dir, SnapFileName), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("cannot write edge list; %w", err)
	}

	meta := MakeMeta(g)
	b.Reset()
	fmt.Fprintf(&b, "%s\t%d\n", MetaNumVertex, meta.NumVertex)
	fmt.Fprintf(&b, "%s\t%d\n", MetaNumEdge, meta.NumEdge)
	fmt.Fprintf(&b, "%s\t%d\n", MetaNumTriangle, meta.NumTriangle)
	fmt.Fprintf(&b, "%s\t%d\n", MetaMaxDegree, meta.MaxDegree)
	fmt.Fprintf(&b, "%s\t%d\n", MetaMaxOffset, meta.MaxOffset)
	fmt.Fprintf(&b, "%s\t%d\n", MetaMaxTriangle, meta.MaxTriangle)
	if err := os.WriteFile(filepath.Join(dir, MetaFileName), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("cannot write metadata; %w", err)
	}
	return nil
}

// ReadMeta parses the metadata file of a dataset directory. Unknown keys
// are ignored; NUM_VERTEX is mandatory.
func ReadMeta(dir string) (Meta, error) {
	var meta Meta
	f, err := os.Open(filepath.Join(dir, MetaFileName))
	if err != nil {
		return meta, fmt.Errorf("cannot open metadata; %w", err)
	}
	defer f.Close()

	seen := false
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, "\t")
		if !found {
			return meta, formatErrorf(lineNo, "metadata line %q is not KEY\\tVALUE", line)
		}
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return meta, formatErrorf(lineNo, "bad value for %v: %q", key, value)
		}
		switch key {
		case MetaNumVertex:
			meta.NumVertex = int(n)
			seen = true
		case MetaNumEdge:
			meta.NumEdge = int(n)
		case MetaNumTriangle:
			meta.NumTriangle = n
		case MetaMaxDegree:
			meta.MaxDegree = int(n)
		case MetaMaxOffset:
			meta.MaxOffset = int(n)
		case MetaMaxTriangle:
			meta.MaxTriangle = int(n)
		}
	}
	if err := scanner.Err(); err != nil {
		return meta, fmt.Errorf("cannot read metadata; %w", err)
	}
	if !seen {
		return meta, formatErrorf(0, "metadata lacks %v", MetaNumVertex)
	}
	return meta, nil
}

// ReadDataset rebuilds the graph of a dataset directory, taking the order
// from the metadata file.
func ReadDataset(dir string, mode IngestMode) (*Graph, error) {
	meta, err := ReadMeta(dir)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, SnapFileName))
	if err != nil {
		return nil, fmt.Errorf("cannot read edge list; %w", err)
	}
	return DecodeEdgeList(strconv.Itoa(meta.NumVertex)+"\n"+string(data), mode)
}
