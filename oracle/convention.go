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

import "fmt"

// AutomorphismMode decides how matches differing only by a symmetry of the
// pattern are counted.
type AutomorphismMode int

const (
	// Collapsed counts every matched vertex and edge set once.
	Collapsed AutomorphismMode = iota
	// Distinct counts every injective mapping, i.e. Collapsed times |Aut(P)|.
	Distinct
)

func (m AutomorphismMode) String() string {
	switch m {
	case Collapsed:
		return "collapsed"
	case Distinct:
		return "distinct"
	}
	return fmt.Sprintf("AutomorphismMode(%d)", int(m))
}

// Convention is the counting convention of the engine under test. It must
// match the engine's documented semantics, otherwise every trial looks like
// a wrong answer.
type Convention struct {
	Automorphisms AutomorphismMode
	// Induced requires non-edges of the pattern to be non-edges in the host.
	Induced bool
}

func (c Convention) String() string {
	if c.Induced {
		return c.Automorphisms.String() + "/induced"
	}
	return c.Automorphisms.String() + "/non-induced"
}
