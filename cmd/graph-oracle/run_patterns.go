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

package main

import (
	"github.com/Fantom-foundation/graph-oracle/executor"
	"github.com/Fantom-foundation/graph-oracle/oracle"
	"github.com/Fantom-foundation/graph-oracle/utils"
	"github.com/urfave/cli/v2"
)

var PatternsCmd = cli.Command{
	Action: RunPatterns,
	Name:   "patterns",
	Usage:  "Escalates the pattern complexity on a fixed host until the engine fails",
	Flags: append([]cli.Flag{
		&utils.HostOrderFlag,
		&utils.HostEdgesFlag,
		&utils.LadderFlag,
	}, sweepFlags...),
	Description: `
The patterns command keeps the host fixed at --host-order vertices and
--host-edges edges and walks up the pattern ladder, by default from the
triangle to an 8-vertex pattern. A custom ladder is read from --ladder.`,
}

// RunPatterns performs the pattern-complexity sweep.
func RunPatterns(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}

	ladder := oracle.Ladder()
	if cfg.Ladder != "" {
		ladder, err = oracle.LoadLadder(cfg.Ladder)
		if err != nil {
			return err
		}
	}

	return runSweep(ctx.Context, cfg, executor.MakePatternProvider(cfg, ladder), makeProcessor(cfg), nil)
}
