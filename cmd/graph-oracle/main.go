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
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Fantom-foundation/graph-oracle/logger"
	"github.com/Fantom-foundation/graph-oracle/utils"
	"github.com/urfave/cli/v2"
)

// sweepFlags are shared by all commands evaluating the engine.
var sweepFlags = []cli.Flag{
	// Sweep
	&utils.TrialsFlag,
	&utils.TimeoutFlag,
	&utils.RunnerTimeoutFlag,
	&utils.RandomSeedFlag,
	&utils.DenseFactorFlag,

	// Oracle
	&utils.OracleCeilingFlag,
	&utils.PatternFlag,
	&utils.PatternFileFlag,
	&utils.CountAutomorphismsFlag,
	&utils.InducedFlag,
	&utils.IngestFlag,

	// Engine
	&utils.EngineDirFlag,
	&utils.EngineRunFlag,
	&utils.EngineRunnerFlag,
	&utils.EnginePrepFlag,
	&utils.EngineModeFlag,
	&utils.StartIndexFlag,
	&utils.MaxSizeFlag,
	&utils.MinSizeFlag,
	&utils.ThreadsFlag,

	// Utils
	&utils.WorkDirFlag,
	&utils.ArtifactsFlag,
	&utils.ContinueOnEngineErrorFlag,
	&logger.LogLevelFlag,
	&utils.NoHeartbeatLoggingFlag,
}

// OracleApp data structure
var OracleApp = cli.App{
	Name:      "Graph Oracle",
	Usage:     "differential testing of a subgraph pattern matching engine",
	Copyright: "(c) 2024 Fantom Foundation",
	Commands: []*cli.Command{
		&EscalateCmd,
		&PatternsCmd,
		&ReplayCmd,
		&EncodeCmd,
	},
	Description: `
The graph-oracle escalates the size of random host graphs or the complexity
of the searched pattern until the engine under test reports a wrong count,
crashes, times out or fails otherwise. The first failing trial is reported
together with everything needed to replay it.

Exit codes: 0 completed, 3 wrong answer, 124 timeout, 139 crash,
4 engine error, 1 usage or internal error.`,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := OracleApp.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
