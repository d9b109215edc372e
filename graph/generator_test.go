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
	"fmt"
	"testing"
)

func TestGenerator_SameArgumentsYieldIdenticalEncoding(t *testing.T) {
	for order := 0; order <= 20; order++ {
		for _, edges := range []int{SparseEdges(order), DenseEdges(order, 2), MaxEdges(order)} {
			t.Run(fmt.Sprintf("n=%d/m=%d", order, edges), func(t *testing.T) {
				a := Generate(order, edges, 42)
				b := Generate(order, edges, 42)
				if got, want := EncodeEdgeList(a), EncodeEdgeList(b); got != want {
					t.Errorf("generator is not deterministic:\n%v\nvs\n%v", want, got)
				}
				if got, want := EncodeBinaryMatrix(a), EncodeBinaryMatrix(b); got != want {
					t.Errorf("generator is not deterministic:\n%v\nvs\n%v", want, got)
				}
			})
		}
	}
}

func TestGenerator_DifferentSeedsProduceDifferentGraphs(t *testing.T) {
	distinct := map[string]bool{}
	for seed := int64(0); seed < 10; seed++ {
		distinct[EncodeBinaryMatrix(Generate(12, 20, seed))] = true
	}
	if len(distinct) < 2 {
		t.Errorf("seeds do not influence the generated graph")
	}
}

func TestGenerator_NeverExceedsTargetOrMaximum(t *testing.T) {
	for order := 0; order <= 15; order++ {
		for target := 0; target <= MaxEdges(order)+5; target++ {
			g := Generate(order, target, int64(order*1000+target))
			if g.Order() != order {
				t.Fatalf("wrong order, wanted %d, got %d", order, g.Order())
			}
			if g.NumEdges() > target || g.NumEdges() > MaxEdges(order) {
				t.Fatalf("too many edges for n=%d target=%d: %d", order, target, g.NumEdges())
			}
		}
	}
}

func TestGenerator_SparseTargetsAreUsuallyMet(t *testing.T) {
	g := Generate(12, SparseEdges(12), 7)
	if got, want := g.NumEdges(), SparseEdges(12); got != want {
		t.Errorf("sparse target should be reachable with 10x attempts, wanted %d, got %d", want, got)
	}
}

func TestGenerator_DensityVariants(t *testing.T) {
	tests := []struct {
		order, sparse, dense int
	}{
		{3, 1, 3},
		{4, 3, 6},
		{5, 5, 10},
		{8, 13, 16},
		{12, 17, 24},
	}
	for _, test := range tests {
		if got := SparseEdges(test.order); got != test.sparse {
			t.Errorf("sparse edges for %d: wanted %d, got %d", test.order, test.sparse, got)
		}
		if got := DenseEdges(test.order, 2); got != test.dense {
			t.Errorf("dense edges for %d: wanted %d, got %d", test.order, test.dense, got)
		}
	}
}
