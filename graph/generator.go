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
	"math/rand"
)

// attemptsPerEdge bounds rejection sampling on near-complete requests.
const attemptsPerEdge = 10

// MaxEdges returns the number of edges of the complete graph of the given order.
func MaxEdges(order int) int {
	if order < 2 {
		return 0
	}
	return order * (order - 1) / 2
}

// Generate builds a random simple graph by uniform rejection sampling of
// vertex pairs. The target is clamped to MaxEdges(order) and sampling stops
// after targetEdges*10 attempts, so the result may hold fewer edges than
// requested; callers must read back NumEdges. The same (order, targetEdges,
// seed) triple always yields the same graph.
func Generate(order, targetEdges int, seed int64) *Graph {
	g := NewGraph(order)
	if targetEdges > MaxEdges(order) {
		targetEdges = MaxEdges(order)
	}
	if targetEdges <= 0 {
		return g
	}

	rg := rand.New(rand.NewSource(seed))
	for attempts := 0; g.NumEdges() < targetEdges && attempts < targetEdges*attemptsPerEdge; attempts++ {
		u := rg.Intn(order)
		v := rg.Intn(order)
		if u != v {
			g.AddEdge(u, v)
		}
	}
	return g
}

// SparseEdges is the edge target of the sparse density variant.
func SparseEdges(order int) int {
	return min(order+5, order*(order-1)/4)
}

// DenseEdges is the edge target of the dense density variant.
func DenseEdges(order, factor int) int {
	return min(factor*order, MaxEdges(order))
}
