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

package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Fantom-foundation/graph-oracle/graph"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// Names of the files stored for a failing trial.
const (
	HostDotFile     = "host.dot"
	PatternDotFile  = "pattern.dot"
	HostEdgesFile   = "host.txt"
	PatternEdgeFile = "pattern.txt"
	SummaryFile     = "summary.txt"
)

// WriteArtifacts stores the host and pattern of a failing trial in dir, both
// as edge lists accepted by the codec and as DOT renderings.
func WriteArtifacts(dir string, failure *Failure, host, pattern *graph.Graph) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create artifact directory %v; %w", dir, err)
	}

	hostDot, err := RenderDot(host)
	if err != nil {
		return fmt.Errorf("cannot render host; %w", err)
	}
	patternDot, err := RenderDot(pattern)
	if err != nil {
		return fmt.Errorf("cannot render pattern; %w", err)
	}

	files := map[string]string{
		HostDotFile:     hostDot,
		PatternDotFile:  patternDot,
		HostEdgesFile:   graph.EncodeEdgeList(host),
		PatternEdgeFile: graph.EncodeEdgeList(pattern),
		SummaryFile:     failure.String() + "\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("cannot write %v; %w", name, err)
		}
	}
	return nil
}

// RenderDot renders g in the DOT language. Vertices are labelled with their
// id and degree; vertices of maximum degree are highlighted.
func RenderDot(g *graph.Graph) (string, error) {
	gv := graphviz.New()
	dot, err := gv.Graph()
	if err != nil {
		return "", err
	}
	defer func() {
		dot.Close()
		gv.Close()
	}()

	maxDegree := g.MaxDegree()
	nodes := make([]*cgraph.Node, g.Order())
	for v := range nodes {
		nodes[v], err = dot.CreateNode(strconv.Itoa(v))
		if err != nil {
			return "", err
		}
		nodes[v].SetLabel(fmt.Sprintf("%d (deg %d)", v, g.Degree(v)))
		if maxDegree > 0 && g.Degree(v) == maxDegree {
			nodes[v].SetColor("indianred")
		}
	}
	for _, e := range g.Edges() {
		edge, err := dot.CreateEdge("", nodes[e.U], nodes[e.V])
		if err != nil {
			return "", err
		}
		edge.SetArrowHead(cgraph.NoneArrow)
	}

	var buf bytes.Buffer
	if err := gv.Render(dot, "dot", &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
