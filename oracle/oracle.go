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

// Package oracle computes the ground-truth number of pattern occurrences in
// small host graphs.
package oracle

//go:generate mockgen -source oracle.go -destination oracle_mocks.go -package oracle

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/graph-oracle/graph"
	"github.com/Fantom-foundation/graph-oracle/logger"
	lru "github.com/hashicorp/golang-lru"
)

// DefaultCeiling is the largest host order for which counts are computed.
const DefaultCeiling = 8

const cacheSize = 1024

// ErrInconsistent is returned if two independent counting methods disagree.
var ErrInconsistent = errors.New("oracle is inconsistent")

// Counter provides expected occurrence counts to the escalation controller.
type Counter interface {
	// Expected returns the ground-truth count of pattern in host, or nil if
	// the host exceeds the feasibility ceiling.
	Expected(host, pattern *graph.Graph) (*int64, error)
	// Feasible reports whether Expected computes a count for host.
	Feasible(host *graph.Graph) bool
}

// Oracle counts pattern occurrences under a fixed counting convention.
// It is not safe for concurrent use.
type Oracle struct {
	convention Convention
	ceiling    int
	cache      *lru.Cache
	log        logger.Logger

	hits, misses int
}

type cacheKey struct {
	host, pattern string
	convention    Convention
}

// New creates an oracle for the given convention. Hosts above ceiling
// vertices are considered infeasible.
func New(convention Convention, ceiling int, log logger.Logger) *Oracle {
	cache, err := lru.New(cacheSize)
	if err != nil {
		// only fails for non-positive sizes
		panic(err)
	}
	return &Oracle{
		convention: convention,
		ceiling:    ceiling,
		cache:      cache,
		log:        log,
	}
}

// Convention returns the counting convention of the oracle.
func (o *Oracle) Convention() Convention {
	return o.convention
}

// Ceiling returns the largest feasible host order.
func (o *Oracle) Ceiling() int {
	return o.ceiling
}

// Feasible reports whether host is small enough for exact counting.
func (o *Oracle) Feasible(host *graph.Graph) bool {
	return host.Order() <= o.ceiling
}

// Expected returns the count of pattern in host, or nil above the ceiling.
func (o *Oracle) Expected(host, pattern *graph.Graph) (*int64, error) {
	if !o.Feasible(host) {
		o.log.Debugf("host order %d exceeds oracle ceiling %d", host.Order(), o.ceiling)
		return nil, nil
	}
	count, err := o.Count(host, pattern)
	if err != nil {
		return nil, err
	}
	return &count, nil
}

// Count returns the number of occurrences of pattern in host regardless of
// the ceiling. Triangles are enumerated directly and cross-checked against
// trace(A³)/6; all other patterns go through the backtracking matcher.
func (o *Oracle) Count(host, pattern *graph.Graph) (int64, error) {
	key := cacheKey{
		host:       graph.EncodeBinaryMatrix(host),
		pattern:    graph.EncodeBinaryMatrix(pattern),
		convention: o.convention,
	}
	if value, found := o.cache.Get(key); found {
		o.hits++
		return value.(int64), nil
	}
	o.misses++

	var (
		count int64
		err   error
	)
	if isTriangle(pattern) {
		count, err = o.countTriangles(host)
	} else {
		count, err = o.countGeneral(host, pattern)
	}
	if err != nil {
		return 0, err
	}
	o.cache.Add(key, count)
	return count, nil
}

// CacheStats returns the number of cache hits and misses of Count.
func (o *Oracle) CacheStats() (hits int, misses int) {
	return o.hits, o.misses
}

func (o *Oracle) countTriangles(host *graph.Graph) (int64, error) {
	direct := host.Triangles()
	if spectral := spectralTriangles(host); spectral != direct {
		o.log.Criticalf("triangle enumeration found %d, trace(A^3)/6 is %d for %v", direct, spectral, host)
		return 0, fmt.Errorf("%w; triangle enumeration %d vs trace(A^3)/6 %d", ErrInconsistent, direct, spectral)
	}
	if o.convention.Automorphisms == Distinct {
		return direct * triangleAutomorphisms, nil
	}
	return direct, nil
}

func (o *Oracle) countGeneral(host, pattern *graph.Graph) (int64, error) {
	embeddings := CountEmbeddings(host, pattern, o.convention.Induced)
	if o.convention.Automorphisms == Distinct {
		return embeddings, nil
	}
	aut := CountAutomorphisms(pattern)
	if embeddings%aut != 0 {
		o.log.Criticalf("%d embeddings are not a multiple of %d automorphisms", embeddings, aut)
		return 0, fmt.Errorf("%w; %d embeddings not divisible by |Aut| %d", ErrInconsistent, embeddings, aut)
	}
	return embeddings / aut, nil
}
