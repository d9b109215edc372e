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
	"github.com/Fantom-foundation/graph-oracle/graph"
)

// CountEmbeddings counts the injective mappings of the pattern vertices into
// the host vertices which map every pattern edge onto a host edge. If induced
// is set, pattern non-edges must map onto host non-edges as well.
func CountEmbeddings(host, pattern *graph.Graph, induced bool) int64 {
	if pattern.Order() > host.Order() || pattern.NumEdges() > host.NumEdges() {
		return 0
	}
	m := newMatcher(host, pattern, induced)
	m.extend(0)
	return m.count
}

// CountAutomorphisms returns |Aut(P)|, the number of embeddings of the
// pattern into itself. It is at least 1.
func CountAutomorphisms(pattern *graph.Graph) int64 {
	return CountEmbeddings(pattern, pattern, false)
}

type matcher struct {
	host, pattern *graph.Graph
	induced       bool

	order       []int // pattern vertices in matching order
	anchor      []int // per position, an earlier pattern neighbor or -1
	hostDegree  []int
	patternDeg  []int
	hostNeighbs [][]int

	mapping []int // pattern vertex -> host vertex
	used    []bool
	count   int64
}

func newMatcher(host, pattern *graph.Graph, induced bool) *matcher {
	m := &matcher{
		host:        host,
		pattern:     pattern,
		induced:     induced,
		hostDegree:  make([]int, host.Order()),
		patternDeg:  make([]int, pattern.Order()),
		hostNeighbs: make([][]int, host.Order()),
		mapping:     make([]int, pattern.Order()),
		used:        make([]bool, host.Order()),
	}
	for v := 0; v < host.Order(); v++ {
		m.hostNeighbs[v] = host.Neighbors(v)
		m.hostDegree[v] = len(m.hostNeighbs[v])
	}
	for v := 0; v < pattern.Order(); v++ {
		m.patternDeg[v] = pattern.Degree(v)
		m.mapping[v] = -1
	}
	m.order, m.anchor = matchingOrder(pattern, m.patternDeg)
	return m
}

// matchingOrder starts with a vertex of maximal degree and then keeps picking
// the vertex with the most already ordered neighbors, so candidates can be
// drawn from the host neighborhood of a mapped vertex.
func matchingOrder(pattern *graph.Graph, degree []int) ([]int, []int) {
	n := pattern.Order()
	order := make([]int, 0, n)
	anchor := make([]int, 0, n)
	placed := make([]bool, n)
	links := make([]int, n)

	for len(order) < n {
		best := -1
		for v := 0; v < n; v++ {
			if placed[v] {
				continue
			}
			if best < 0 || links[v] > links[best] || (links[v] == links[best] && degree[v] > degree[best]) {
				best = v
			}
		}
		a := -1
		for _, u := range order {
			if pattern.HasEdge(best, u) {
				a = u
				break
			}
		}
		placed[best] = true
		order = append(order, best)
		anchor = append(anchor, a)
		for _, u := range pattern.Neighbors(best) {
			links[u]++
		}
	}
	return order, anchor
}

func (m *matcher) extend(pos int) {
	if pos == len(m.order) {
		m.count++
		return
	}
	p := m.order[pos]

	if a := m.anchor[pos]; a >= 0 {
		for _, h := range m.hostNeighbs[m.mapping[a]] {
			m.try(pos, p, h)
		}
		return
	}
	for h := 0; h < m.host.Order(); h++ {
		m.try(pos, p, h)
	}
}

func (m *matcher) try(pos, p, h int) {
	if m.used[h] || m.hostDegree[h] < m.patternDeg[p] {
		return
	}
	for _, q := range m.order[:pos] {
		patternEdge := m.pattern.HasEdge(p, q)
		hostEdge := m.host.HasEdge(h, m.mapping[q])
		if patternEdge && !hostEdge {
			return
		}
		if m.induced && !patternEdge && hostEdge {
			return
		}
	}
	m.mapping[p] = h
	m.used[h] = true
	m.extend(pos + 1)
	m.used[h] = false
	m.mapping[p] = -1
}
