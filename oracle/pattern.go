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

package oracle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Fantom-foundation/graph-oracle/graph"
	"gopkg.in/yaml.v3"
)

// TrianglePatternName is the name of the default pattern.
const TrianglePatternName = "triangle"

// Pattern is a named query graph handed to the engine.
type Pattern struct {
	Name  string
	Graph *graph.Graph
	// Timeout overrides the configured phase timeout if positive.
	Timeout time.Duration
}

// Binary returns the adjacency matrix encoding passed to the engine.
func (p Pattern) Binary() string {
	return graph.EncodeBinaryMatrix(p.Graph)
}

// Order returns the number of pattern vertices.
func (p Pattern) Order() int {
	return p.Graph.Order()
}

func (p Pattern) String() string {
	return fmt.Sprintf("%v (%d vertices, %d edges)", p.Name, p.Graph.Order(), p.Graph.NumEdges())
}

// IsTriangle reports whether the pattern is the complete graph on three vertices.
func (p Pattern) IsTriangle() bool {
	return isTriangle(p.Graph)
}

func isTriangle(g *graph.Graph) bool {
	return g.Order() == 3 && g.NumEdges() == 3
}

// LadderTimeout is the per-pattern timeout of the built-in ladder; larger
// patterns need considerably longer code generation.
func LadderTimeout(order int) time.Duration {
	switch {
	case order <= 5:
		return 60 * time.Second
	case order <= 7:
		return 120 * time.Second
	default:
		return 1200 * time.Second
	}
}

type ladderEntry struct {
	name  string
	order int
	edges [][2]int
}

var builtinLadder = []ladderEntry{
	{"triangle", 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}},
	{"4-path", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
	{"4-cycle", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}},
	{"4-star", 4, [][2]int{{0, 1}, {0, 2}, {0, 3}}},
	{"5-cycle", 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}},
	{"5-clique", 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}},
	{"6-complex", 6, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}, {3, 5}, {4, 5}, {1, 4}, {2, 3}}},
	{"7-complex", 7, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}, {3, 5}, {4, 6}, {5, 6}, {1, 4}, {2, 3}, {0, 5}}},
	{"8-complex", 8, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}, {3, 5}, {4, 6}, {5, 7}, {6, 7}, {1, 4}, {2, 3}, {0, 5}, {1, 6}}},
}

// Ladder returns the built-in pattern ladder in ascending complexity.
func Ladder() []Pattern {
	res := make([]Pattern, 0, len(builtinLadder))
	for _, e := range builtinLadder {
		edges := make([]graph.Edge, 0, len(e.edges))
		for _, uv := range e.edges {
			edges = append(edges, graph.MakeEdge(uv[0], uv[1]))
		}
		res = append(res, Pattern{
			Name:    e.name,
			Graph:   graph.MustFromEdges(e.order, edges...),
			Timeout: LadderTimeout(e.order),
		})
	}
	return res
}

// Triangle returns the default pattern. It carries no timeout override.
func Triangle() Pattern {
	p, _ := PatternByName(TrianglePatternName)
	p.Timeout = 0
	return p
}

// PatternByName looks up a pattern of the built-in ladder.
func PatternByName(name string) (Pattern, error) {
	var names []string
	for _, p := range Ladder() {
		if p.Name == name {
			return p, nil
		}
		names = append(names, p.Name)
	}
	return Pattern{}, fmt.Errorf("unknown pattern %q; known patterns: %v", name, strings.Join(names, ", "))
}

// LoadPatternFile reads a pattern from an edge-list file. The pattern is
// named after the file without its extension.
func LoadPatternFile(path string, mode graph.IngestMode) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("cannot read pattern file %v; %w", path, err)
	}
	g, err := graph.DecodeEdgeList(string(data), mode)
	if err != nil {
		return Pattern{}, fmt.Errorf("cannot decode pattern file %v; %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Pattern{Name: name, Graph: g}, nil
}

// ladderFile is the YAML layout of a custom pattern ladder:
//
//	patterns:
//	  - name: 4-cycle
//	    order: 4
//	    edges: [[0, 1], [1, 2], [2, 3], [3, 0]]
//	    timeout: 90s
type ladderFile struct {
	Patterns []struct {
		Name    string        `yaml:"name"`
		Order   int           `yaml:"order"`
		Edges   [][2]int      `yaml:"edges"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"patterns"`
}

// LoadLadder reads a custom pattern ladder from a YAML file. Patterns are
// sorted by order, then by edge count; entries without a timeout get the
// built-in ladder timeout for their order.
func LoadLadder(path string) ([]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read ladder %v; %w", path, err)
	}
	return parseLadder(data)
}

func parseLadder(data []byte) ([]Pattern, error) {
	var file ladderFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("cannot parse ladder; %w", err)
	}
	if len(file.Patterns) == 0 {
		return nil, fmt.Errorf("ladder defines no patterns")
	}

	seen := make(map[string]bool)
	res := make([]Pattern, 0, len(file.Patterns))
	for i, entry := range file.Patterns {
		if entry.Name == "" {
			return nil, fmt.Errorf("pattern %d has no name", i)
		}
		if seen[entry.Name] {
			return nil, fmt.Errorf("duplicate pattern %q", entry.Name)
		}
		seen[entry.Name] = true

		edges := make([]graph.Edge, 0, len(entry.Edges))
		for _, e := range entry.Edges {
			edges = append(edges, graph.Edge{U: e[0], V: e[1]})
		}
		g, err := graph.FromEdges(entry.Order, edges...)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q; %w", entry.Name, err)
		}
		timeout := entry.Timeout
		if timeout <= 0 {
			timeout = LadderTimeout(entry.Order)
		}
		res = append(res, Pattern{Name: entry.Name, Graph: g, Timeout: timeout})
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Order() != res[j].Order() {
			return res[i].Order() < res[j].Order()
		}
		return res[i].Graph.NumEdges() < res[j].Graph.NumEdges()
	})
	return res, nil
}
