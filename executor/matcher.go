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

	"github.com/Fantom-foundation/graph-oracle/driver"
	gomock "go.uber.org/mock/gomock"
)

// ----------------------------------------------------------------------------
//                                   Matcher
// ----------------------------------------------------------------------------

// AtPoint matches executor.State instances at the sweep point with the given
// index.
func AtPoint(index int) gomock.Matcher {
	return atPoint{index}
}

// AtTrial matches executor.State instances with the given point index and
// trial number.
func AtTrial(index int, trial int) gomock.Matcher {
	return atTrial{index, trial}
}

// WithOutcome matches executor.Context instances holding an outcome of the
// given kind.
func WithOutcome(kind driver.Kind) gomock.Matcher {
	return withOutcome{kind}
}

// ----------------------------------------------------------------------------

type atPoint struct {
	expectedIndex int
}

func (m atPoint) Matches(value any) bool {
	state, ok := value.(State)
	return ok && state.Point.Index == m.expectedIndex
}

func (m atPoint) String() string {
	return fmt.Sprintf("at point %d", m.expectedIndex)
}

type atTrial struct {
	expectedIndex int
	expectedTrial int
}

func (m atTrial) Matches(value any) bool {
	state, ok := value.(State)
	return ok &&
		state.Point.Index == m.expectedIndex &&
		state.Trial == m.expectedTrial
}

func (m atTrial) String() string {
	return fmt.Sprintf("at trial %d/%d", m.expectedIndex, m.expectedTrial)
}

type withOutcome struct {
	expected driver.Kind
}

func (m withOutcome) Matches(value any) bool {
	context, ok := value.(*Context)
	return ok && context.Outcome.Kind == m.expected
}

func (m withOutcome) String() string {
	return fmt.Sprintf("with outcome %v", m.expected)
}
