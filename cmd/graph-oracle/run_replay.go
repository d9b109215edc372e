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
	"github.com/Fantom-foundation/graph-oracle/utils"
	"github.com/urfave/cli/v2"
)

var ReplayCmd = cli.Command{
	Action: RunReplay,
	Name:   "replay",
	Usage:  "Re-runs a single reported trial",
	Flags: append([]cli.Flag{
		&utils.OrderFlag,
		&utils.EdgesFlag,
		&utils.SeedFlag,
	}, sweepFlags...),
	Description: `
The replay command regenerates the host of --order vertices and --edges
target edges from --seed and evaluates the engine on it once.`,
}

// RunReplay evaluates one trial.
func RunReplay(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}

	pattern, err := loadPattern(cfg)
	if err != nil {
		return err
	}

	return runSweep(ctx.Context, cfg, executor.MakeReplayProvider(cfg, pattern), makeProcessor(cfg), nil)
}
