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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddEdgeEnforcesSimpleGraphInvariant(t *testing.T) {
	g := NewGraph(4)

	added, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = g.AddEdge(1, 0)
	require.NoError(t, err)
	assert.False(t, added, "reversed edge is a duplicate")

	_, err = g.AddEdge(2, 2)
	assert.True(t, errors.Is(err, ErrInvalidEdge))

	_, err = g.AddEdge(0, 4)
	assert.True(t, errors.Is(err, ErrInvalidEdge))

	_, err = g.AddEdge(-1, 0)
	assert.True(t, errors.Is(err, ErrInvalidEdge))

	assert.Equal(t, 1, g.NumEdges())
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(0, 7))
}

func TestGraph_DegreesAndNeighbors(t *testing.T) {
	// star centred in 0
	g := MustFromEdges(4, Edge{0, 1}, Edge{0, 2}, Edge{0, 3})
	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(0))
	assert.Equal(t, []int{0}, g.Neighbors(3))
	assert.Equal(t, 3, g.Degree(0))
	assert.Equal(t, 3, g.MaxDegree())
	assert.Equal(t, 0, g.DegreeOrder()[0])
	assert.Nil(t, g.Neighbors(9))
}

func TestGraph_Triangles(t *testing.T) {
	assert.Equal(t, int64(1), triangle().Triangles())

	cycle := MustFromEdges(4, Edge{0, 1}, Edge{1, 2}, Edge{2, 3}, Edge{3, 0})
	assert.Equal(t, int64(0), cycle.Triangles())

	k4 := MustFromEdges(4, Edge{0, 1}, Edge{0, 2}, Edge{0, 3}, Edge{1, 2}, Edge{1, 3}, Edge{2, 3})
	assert.Equal(t, int64(4), k4.Triangles())
	assert.True(t, k4.IsComplete())
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := triangle()
	c := g.Clone()
	require.True(t, g.Equal(c))

	c4 := MustFromEdges(4, Edge{0, 1})
	c4c := c4.Clone()
	c4c.AddEdge(2, 3)
	assert.Equal(t, 1, c4.NumEdges())
	assert.False(t, c4.HasEdge(2, 3))

	other := NewGraph(3)
	other.AddEdge(0, 1)
	assert.False(t, g.Equal(other))
	assert.False(t, g.Equal(nil))
}

func TestDataset_WriteAndReadBack(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "5v_sparse_0")
	g := MustFromEdges(5, Edge{0, 1}, Edge{1, 2}, Edge{2, 0}, Edge{3, 4})

	require.NoError(t, WriteDataset(dir, g))

	snap, err := os.ReadFile(filepath.Join(dir, SnapFileName))
	require.NoError(t, err)
	assert.Equal(t, "0 1\n0 2\n1 2\n3 4\n", string(snap))

	meta, err := ReadMeta(dir)
	require.NoError(t, err)
	assert.Equal(t, Meta{
		NumVertex:   5,
		NumEdge:     4,
		NumTriangle: 1,
		MaxDegree:   2,
		MaxOffset:   4,
		MaxTriangle: 2,
	}, meta)

	back, err := ReadDataset(dir, Strict)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestDataset_ReadMetaRejectsBrokenFiles(t *testing.T) {
	tests := map[string]string{
		"no separator":  "NUM_VERTEX 5\n",
		"bad value":     "NUM_VERTEX\tfive\n",
		"missing order": "NUM_EDGE\t3\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, MetaFileName), []byte(content), 0o644))
			_, err := ReadMeta(dir)
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestDataset_ReadMetaFailsOnMissingDirectory(t *testing.T) {
	_, err := ReadMeta(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestFingerprint_IsStableAndSensitive(t *testing.T) {
	g := Generate(10, 20, 5)
	assert.Equal(t, Fingerprint(g), Fingerprint(Generate(10, 20, 5)))

	distinct := map[uint8]bool{}
	for seed := int64(0); seed < 8; seed++ {
		distinct[Fingerprint(Generate(10, 20, seed))] = true
	}
	assert.Greater(t, len(distinct), 1, "fingerprint ignores the host")
}
