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
	"testing"

	"github.com/Fantom-foundation/graph-oracle/graph"
	"github.com/Fantom-foundation/graph-oracle/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func k3() *graph.Graph {
	return graph.MustFromEdges(3, graph.Edge{U: 0, V: 1}, graph.Edge{U: 1, V: 2}, graph.Edge{U: 2, V: 0})
}

func c4() *graph.Graph {
	return graph.MustFromEdges(4, graph.Edge{U: 0, V: 1}, graph.Edge{U: 1, V: 2}, graph.Edge{U: 2, V: 3}, graph.Edge{U: 3, V: 0})
}

func k4() *graph.Graph {
	g := graph.NewGraph(4)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			g.AddEdge(u, v)
		}
	}
	return g
}

func mustPattern(t *testing.T, name string) *graph.Graph {
	t.Helper()
	p, err := PatternByName(name)
	require.NoError(t, err)
	return p.Graph
}

func TestOracle_TriangleInTriangleCountsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	o := New(Convention{}, DefaultCeiling, logger.NewMockLogger(ctrl))

	got, err := o.Count(k3(), k3())
	require.NoError(t, err)
	if want := int64(1); got != want {
		t.Errorf("unexpected count, wanted %d, got %d", want, got)
	}
}

func TestOracle_CycleHasNoTriangle(t *testing.T) {
	ctrl := gomock.NewController(t)
	o := New(Convention{}, DefaultCeiling, logger.NewMockLogger(ctrl))

	got, err := o.Count(c4(), k3())
	require.NoError(t, err)
	if want := int64(0); got != want {
		t.Errorf("unexpected count, wanted %d, got %d", want, got)
	}
}

func TestOracle_KnownCounts(t *testing.T) {
	tests := []struct {
		host       *graph.Graph
		pattern    string
		convention Convention
		want       int64
	}{
		{k3(), "triangle", Convention{Automorphisms: Distinct}, 6},
		{k4(), "triangle", Convention{}, 4},
		{k4(), "4-cycle", Convention{}, 3},
		{k4(), "4-cycle", Convention{Automorphisms: Distinct}, 24},
		{k4(), "4-cycle", Convention{Induced: true}, 0},
		{k4(), "4-star", Convention{}, 4},
		{k4(), "4-star", Convention{Induced: true}, 0},
		{c4(), "4-path", Convention{}, 4},
		{c4(), "4-path", Convention{Induced: true}, 0},
		{c4(), "4-cycle", Convention{Induced: true}, 1},
		{k3(), "4-path", Convention{}, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d/%v/%v", i, test.pattern, test.convention), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			o := New(test.convention, DefaultCeiling, logger.NewMockLogger(ctrl))
			got, err := o.Count(test.host, mustPattern(t, test.pattern))
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestOracle_AutomorphismsOfLadder(t *testing.T) {
	want := map[string]int64{
		"triangle": 6,
		"4-path":   2,
		"4-cycle":  8,
		"4-star":   6,
		"5-cycle":  10,
		"5-clique": 120,
	}
	for name, aut := range want {
		if got := CountAutomorphisms(mustPattern(t, name)); got != aut {
			t.Errorf("wrong |Aut| of %v, wanted %d, got %d", name, aut, got)
		}
	}
}

func TestOracle_DistinctIsCollapsedTimesAutomorphisms(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	collapsed := New(Convention{Automorphisms: Collapsed}, DefaultCeiling, log)
	distinct := New(Convention{Automorphisms: Distinct}, DefaultCeiling, log)

	for seed := int64(0); seed < 4; seed++ {
		host := graph.Generate(8, graph.DenseEdges(8, 2), seed)
		for _, p := range Ladder() {
			c, err := collapsed.Count(host, p.Graph)
			require.NoError(t, err)
			d, err := distinct.Count(host, p.Graph)
			require.NoError(t, err)
			if got, want := d, c*CountAutomorphisms(p.Graph); got != want {
				t.Errorf("seed %d, pattern %v: wanted %d distinct matches, got %d", seed, p.Name, want, got)
			}
		}
	}
}

func TestOracle_TriangleFastPathAgreesWithMatcher(t *testing.T) {
	for order := 0; order <= 8; order++ {
		for seed := int64(0); seed < 5; seed++ {
			host := graph.Generate(order, graph.DenseEdges(order, 2), seed)
			direct := host.Triangles()
			if got := spectralTriangles(host); got != direct {
				t.Errorf("n=%d seed=%d: trace(A^3)/6 is %d, enumeration %d", order, seed, got, direct)
			}
			if got := CountEmbeddings(host, k3(), false) / triangleAutomorphisms; got != direct {
				t.Errorf("n=%d seed=%d: matcher found %d, enumeration %d", order, seed, got, direct)
			}
		}
	}
}

func TestOracle_ExpectedIsUnknownAboveCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	o := New(Convention{}, 6, log)

	small := graph.Generate(6, 10, 1)
	got, err := o.Expected(small, k3())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, small.Triangles(), *got)

	log.EXPECT().Debugf(gomock.Any(), 7, 6)
	got, err = o.Expected(graph.Generate(7, 10, 1), k3())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOracle_RepeatedQueriesHitTheCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	o := New(Convention{}, DefaultCeiling, logger.NewMockLogger(ctrl))

	host := graph.Generate(8, 16, 3)
	first, err := o.Count(host, mustPattern(t, "5-cycle"))
	require.NoError(t, err)
	second, err := o.Count(host.Clone(), mustPattern(t, "5-cycle"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	hits, misses := o.CacheStats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)

	_, err = o.Count(host, mustPattern(t, "4-cycle"))
	require.NoError(t, err)
	hits, misses = o.CacheStats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 2, misses)
}

func TestOracle_InducedDistinctCountsEveryInducedMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	o := New(Convention{Automorphisms: Distinct, Induced: true}, DefaultCeiling, logger.NewMockLogger(ctrl))

	// a 4-cycle has one induced 4-cycle and eight mappings onto it
	got, err := o.Count(c4(), mustPattern(t, "4-cycle"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), got)

	// K4 has four induced triangles, six mappings each
	got, err = o.Count(k4(), k3())
	require.NoError(t, err)
	assert.Equal(t, int64(24), got)
}
