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
	"math"

	"github.com/Fantom-foundation/graph-oracle/graph"
	"gonum.org/v1/gonum/mat"
)

// triangleAutomorphisms is |Aut(K3)|.
const triangleAutomorphisms = 6

// spectralTriangles computes trace(A³)/6 of the adjacency matrix A. Every
// triangle contributes six closed walks of length three.
func spectralTriangles(g *graph.Graph) int64 {
	n := g.Order()
	if n < 3 {
		return 0
	}
	a := mat.NewDense(n, n, nil)
	for _, e := range g.Edges() {
		a.Set(e.U, e.V, 1)
		a.Set(e.V, e.U, 1)
	}
	var a2, a3 mat.Dense
	a2.Mul(a, a)
	a3.Mul(&a2, a)
	return int64(math.Round(mat.Trace(&a3))) / triangleAutomorphisms
}
