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

var EscalateCmd = cli.Command{
	Action: RunEscalate,
	Name:   "escalate",
	Usage:  "Escalates the vertex count of random hosts until the engine fails",
	Flags: append([]cli.Flag{
		&utils.MinOrderFlag,
		&utils.MaxOrderFlag,
	}, sweepFlags...),
	Description: `
The escalate command evaluates the engine on random hosts of --min-order up
to --max-order vertices, each with a sparse and a dense variant and --trials
independent seeds. It halts at the first trial not passed.`,
}

// RunEscalate performs the scale sweep.
func RunEscalate(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}

	pattern, err := loadPattern(cfg)
	if err != nil {
		return err
	}

	return runSweep(ctx.Context, cfg, executor.MakeScaleProvider(cfg, pattern), makeProcessor(cfg), nil)
}
