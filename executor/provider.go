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

package executor

import (
	"github.com/Fantom-foundation/graph-oracle/graph"
	"github.com/Fantom-foundation/graph-oracle/oracle"
	"github.com/Fantom-foundation/graph-oracle/utils"
)

//go:generate mockgen -source provider.go -destination provider_mocks.go -package executor

// Provider is an entity enumerating the trials of a sweep. Trials of the
// same point are delivered consecutively, points in ascending order.
type Provider interface {
	// Run feeds every trial to the consumer until it reports an error.
	Run(Consumer) error
}

// Consumer is a type alias for the type of function to which trials can be
// forwarded by a Provider.
type Consumer func(TrialInfo) error

// TrialInfo summarizes the per-trial information provided by a Provider.
type TrialInfo struct {
	Point Point
	Trial int
	Seed  int64
}

// MakeScaleProvider enumerates host orders from cfg.MinOrder to cfg.MaxOrder,
// each with a sparse and a dense variant and cfg.Trials trials per variant.
// Every trial gets its own seed, counting up from cfg.RandomSeed.
func MakeScaleProvider(cfg *utils.Config, pattern oracle.Pattern) Provider {
	var points []Point
	for order := cfg.MinOrder; order <= cfg.MaxOrder; order++ {
		points = append(points,
			Point{Order: order, Density: Sparse, TargetEdges: graph.SparseEdges(order), Pattern: pattern},
			Point{Order: order, Density: Dense, TargetEdges: graph.DenseEdges(order, cfg.DenseFactor), Pattern: pattern},
		)
	}
	return newSweepProvider(points, cfg.Trials, cfg.RandomSeed, false)
}

// MakePatternProvider holds the host fixed at cfg.HostOrder vertices and
// cfg.HostEdges edges and escalates through the given ladder. Trial i uses
// the same host for every pattern.
func MakePatternProvider(cfg *utils.Config, ladder []oracle.Pattern) Provider {
	points := make([]Point, 0, len(ladder))
	for _, pattern := range ladder {
		points = append(points, Point{Order: cfg.HostOrder, Density: Fixed, TargetEdges: cfg.HostEdges, Pattern: pattern})
	}
	return newSweepProvider(points, cfg.Trials, cfg.RandomSeed, true)
}

// MakeReplayProvider provides the single trial of cfg.Order, cfg.Edges and
// cfg.Seed, reproducing a previously reported case.
func MakeReplayProvider(cfg *utils.Config, pattern oracle.Pattern) Provider {
	density := Sparse
	if cfg.Edges > graph.SparseEdges(cfg.Order) {
		density = Dense
	}
	point := Point{Order: cfg.Order, Density: density, TargetEdges: cfg.Edges, Pattern: pattern}
	return newSweepProvider([]Point{point}, 1, cfg.Seed, false)
}

func newSweepProvider(points []Point, trials int, baseSeed int64, fixedHost bool) *sweepProvider {
	for i := range points {
		points[i].Index = i
	}
	return &sweepProvider{
		points:    points,
		trials:    trials,
		baseSeed:  baseSeed,
		fixedHost: fixedHost,
	}
}

type sweepProvider struct {
	points    []Point
	trials    int
	baseSeed  int64
	fixedHost bool
}

func (p *sweepProvider) Run(consumer Consumer) error {
	counter := int64(0)
	for _, point := range p.points {
		for trial := 0; trial < p.trials; trial++ {
			seed := p.baseSeed + counter
			if p.fixedHost {
				seed = p.baseSeed + int64(trial)
			}
			counter++
			if err := consumer(TrialInfo{Point: point, Trial: trial, Seed: seed}); err != nil {
				return err
			}
		}
	}
	return nil
}
