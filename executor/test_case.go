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
	"fmt"

	"github.com/Fantom-foundation/graph-oracle/graph"
	"github.com/Fantom-foundation/graph-oracle/oracle"
)

// Density names the density variant of a sweep point.
type Density string

const (
	Sparse Density = "sparse"
	Dense  Density = "dense"
	// Fixed marks the host of a pattern-complexity sweep.
	Fixed Density = "fixed"
)

// Point is one configuration of a sweep: a host size and density plus the
// pattern searched for.
type Point struct {
	// Index is the position of the point within its sweep.
	Index       int
	Order       int
	Density     Density
	TargetEdges int
	Pattern     oracle.Pattern
}

// Name identifies the point. Scale points are named "<n>v_<density>",
// pattern points after their pattern.
func (p Point) Name() string {
	if p.Density == Fixed {
		return fmt.Sprintf("%dv_%de_%s", p.Order, p.TargetEdges, p.Pattern.Name)
	}
	return fmt.Sprintf("%dv_%s", p.Order, p.Density)
}

func (p Point) String() string {
	return fmt.Sprintf("order=%d density=%v edges=%d pattern=%v", p.Order, p.Density, p.TargetEdges, p.Pattern.Name)
}

// TestCase is the fully built input of one trial. It is immutable once built.
type TestCase struct {
	Name    string
	Point   Point
	Trial   int
	Seed    int64
	Host    *graph.Graph
	Pattern oracle.Pattern
	// Expected is the ground truth, nil above the oracle ceiling.
	Expected    *int64
	DatasetPath string
	Fingerprint uint8
}

// TrialName composes the name of a trial, e.g. "5v_dense_2".
func TrialName(point Point, trial int) string {
	return fmt.Sprintf("%s_%d", point.Name(), trial)
}

// Describe renders the configuration needed to replay the case.
func (tc *TestCase) Describe() string {
	return fmt.Sprintf("%v: order=%d density=%v edges=%d/%d seed=%d pattern=%v fingerprint=0x%02x",
		tc.Name, tc.Point.Order, tc.Point.Density, tc.Host.NumEdges(), tc.Point.TargetEdges, tc.Seed, tc.Pattern.Name, tc.Fingerprint)
}
