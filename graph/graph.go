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

// Package graph implements simple undirected graphs together with the
// encodings exchanged with the engine under test and a seeded generator.
package graph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidEdge is returned when an edge would violate the simple graph
// invariant (self loop or vertex out of range).
var ErrInvalidEdge = errors.New("invalid edge")

// Edge is an unordered vertex pair, normalized such that U < V.
type Edge struct {
	U, V int
}

// MakeEdge normalizes the pair (u, v).
func MakeEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.U, e.V)
}

// Graph is a simple undirected graph over the vertices 0..order-1.
// The zero value is the empty graph of order 0.
type Graph struct {
	order    int
	adj      []bool // order*order, symmetric, zero diagonal
	numEdges int
}

// NewGraph creates an edgeless graph with the given number of vertices.
func NewGraph(order int) *Graph {
	if order < 0 {
		order = 0
	}
	return &Graph{
		order: order,
		adj:   make([]bool, order*order),
	}
}

// FromEdges builds a graph of the given order from a list of vertex pairs.
func FromEdges(order int, edges ...Edge) (*Graph, error) {
	g := NewGraph(order)
	for _, e := range edges {
		if _, err := g.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// MustFromEdges is like FromEdges but panics on invalid input. It is meant
// for literal graphs such as the built-in patterns.
func MustFromEdges(order int, edges ...Edge) *Graph {
	g, err := FromEdges(order, edges...)
	if err != nil {
		panic(err)
	}
	return g
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return g.order
}

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int {
	return g.numEdges
}

// AddEdge inserts the undirected edge (u, v). It reports whether the edge
// was new; duplicates are ignored.
func (g *Graph) AddEdge(u, v int) (bool, error) {
	if u == v {
		return false, fmt.Errorf("%w; self loop at vertex %d", ErrInvalidEdge, u)
	}
	if !g.contains(u) || !g.contains(v) {
		return false, fmt.Errorf("%w; edge (%d,%d) out of range for order %d", ErrInvalidEdge, u, v, g.order)
	}
	if g.adj[u*g.order+v] {
		return false, nil
	}
	g.adj[u*g.order+v] = true
	g.adj[v*g.order+u] = true
	g.numEdges++
	return true, nil
}

// HasEdge reports whether (u, v) is an edge. Out of range vertices are
// never adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.contains(u) || !g.contains(v) {
		return false
	}
	return g.adj[u*g.order+v]
}

// Edges lists all edges in lexicographic order.
func (g *Graph) Edges() []Edge {
	res := make([]Edge, 0, g.numEdges)
	for u := 0; u < g.order; u++ {
		for v := u + 1; v < g.order; v++ {
			if g.adj[u*g.order+v] {
				res = append(res, Edge{U: u, V: v})
			}
		}
	}
	return res
}

// Neighbors lists the vertices adjacent to v in ascending order.
func (g *Graph) Neighbors(v int) []int {
	if !g.contains(v) {
		return nil
	}
	var res []int
	for u := 0; u < g.order; u++ {
		if g.adj[v*g.order+u] {
			res = append(res, u)
		}
	}
	return res
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int {
	if !g.contains(v) {
		return 0
	}
	d := 0
	for u := 0; u < g.order; u++ {
		if g.adj[v*g.order+u] {
			d++
		}
	}
	return d
}

// MaxDegree returns the largest vertex degree, 0 for the empty graph.
func (g *Graph) MaxDegree() int {
	max := 0
	for v := 0; v < g.order; v++ {
		if d := g.Degree(v); d > max {
			max = d
		}
	}
	return max
}

// Triangles counts the unordered vertex triples which are pairwise adjacent.
func (g *Graph) Triangles() int64 {
	var count int64
	for a := 0; a < g.order; a++ {
		for b := a + 1; b < g.order; b++ {
			if !g.adj[a*g.order+b] {
				continue
			}
			for c := b + 1; c < g.order; c++ {
				if g.adj[a*g.order+c] && g.adj[b*g.order+c] {
					count++
				}
			}
		}
	}
	return count
}

// IsComplete reports whether every vertex pair is adjacent.
func (g *Graph) IsComplete() bool {
	return g.numEdges == g.order*(g.order-1)/2
}

// Equal reports whether both graphs have the same order and edge set.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.order != other.order || g.numEdges != other.numEdges {
		return false
	}
	for i := range g.adj {
		if g.adj[i] != other.adj[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	res := &Graph{
		order:    g.order,
		adj:      make([]bool, len(g.adj)),
		numEdges: g.numEdges,
	}
	copy(res.adj, g.adj)
	return res
}

// DegreeOrder lists the vertices by descending degree, ties broken by index.
func (g *Graph) DegreeOrder() []int {
	res := make([]int, g.order)
	for i := range res {
		res[i] = i
	}
	sort.SliceStable(res, func(i, j int) bool {
		return g.Degree(res[i]) > g.Degree(res[j])
	})
	return res
}

func (g *Graph) String() string {
	return fmt.Sprintf("Graph{order: %d, edges: %v}", g.order, g.Edges())
}

func (g *Graph) contains(v int) bool {
	return v >= 0 && v < g.order
}
