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

package utils

import (
	"github.com/urfave/cli/v2"
)

// Command line options of the sweep commands.
var (
	MinOrderFlag = cli.IntFlag{
		Name:  "min-order",
		Usage: "smallest host vertex count of the scale sweep",
		Value: 3,
	}
	MaxOrderFlag = cli.IntFlag{
		Name:  "max-order",
		Usage: "largest host vertex count of the scale sweep",
		Value: 12,
	}
	TrialsFlag = cli.IntFlag{
		Name:  "trials",
		Usage: "number of trials with independent seeds per sweep point",
		Value: 3,
	}
	TimeoutFlag = cli.IntFlag{
		Name:  "timeout",
		Usage: "wall-clock timeout in seconds of each engine phase",
		Value: 300,
	}
	RunnerTimeoutFlag = cli.IntFlag{
		Name:  "runner-timeout",
		Usage: "timeout in seconds of the execution phase, 0 uses --timeout",
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "base seed of the graph generator, a negative value picks a random seed",
		Value: 42,
	}
	DenseFactorFlag = cli.IntFlag{
		Name:  "dense-factor",
		Usage: "edges per vertex of the dense density variant",
		Value: 2,
	}
	OracleCeilingFlag = cli.IntFlag{
		Name:  "oracle-ceiling",
		Usage: "largest host order for which the expected count is computed",
		Value: 8,
	}
	PatternFlag = cli.StringFlag{
		Name:  "pattern",
		Usage: "name of a built-in pattern (triangle, 4-path, 4-cycle, 4-star, 5-cycle, 5-clique, 6-complex, 7-complex, 8-complex)",
		Value: "triangle",
	}
	PatternFileFlag = cli.PathFlag{
		Name:  "pattern-file",
		Usage: "edge-list file of a custom pattern, overrides --pattern",
	}
	CountAutomorphismsFlag = cli.BoolFlag{
		Name:  "count-automorphisms",
		Usage: "count every automorphic mapping of the pattern as a separate match",
	}
	InducedFlag = cli.BoolFlag{
		Name:  "induced",
		Usage: "count induced matches only",
	}
	IngestFlag = cli.StringFlag{
		Name:  "ingest",
		Usage: "treatment of out-of-range edges in input files (strict, lenient)",
		Value: "strict",
	}
	ContinueOnEngineErrorFlag = cli.BoolFlag{
		Name:  "continue-on-engine-error",
		Usage: "advance past engine errors instead of halting",
	}
	NoHeartbeatLoggingFlag = cli.BoolFlag{
		Name:  "no-heartbeat-logging",
		Usage: "disables heartbeat logging",
	}
)

// Command line options describing the engine under test.
var (
	EngineDirFlag = cli.PathFlag{
		Name:  "engine-dir",
		Usage: "working directory of the engine invocations",
	}
	EngineRunFlag = cli.PathFlag{
		Name:  "engine-run",
		Usage: "code generation binary of the engine",
		Value: "./build/bin/run",
	}
	EngineRunnerFlag = cli.PathFlag{
		Name:  "engine-runner",
		Usage: "compiled runner binary of the engine",
		Value: "./build/bin/runner",
	}
	EnginePrepFlag = cli.PathFlag{
		Name:  "engine-prep",
		Usage: "optional dataset preprocessing binary, skipped if empty",
	}
	EngineModeFlag = cli.StringFlag{
		Name:  "engine-mode",
		Usage: "mode argument of the code generation phase",
		Value: "test",
	}
	StartIndexFlag = cli.IntFlag{
		Name:  "start-index",
		Usage: "start index argument of the code generation phase",
	}
	MaxSizeFlag = cli.IntFlag{
		Name:  "max-size",
		Usage: "max size argument of the code generation phase",
		Value: 4,
	}
	MinSizeFlag = cli.IntFlag{
		Name:  "min-size",
		Usage: "min size argument of the code generation phase",
		Value: 3,
	}
	ThreadsFlag = cli.IntFlag{
		Name:  "threads",
		Usage: "thread count passed to the runner",
		Value: 1,
	}
	WorkDirFlag = cli.PathFlag{
		Name:  "workdir",
		Usage: "directory receiving the generated datasets, a temporary directory if empty",
	}
	ArtifactsFlag = cli.PathFlag{
		Name:  "artifacts",
		Usage: "directory receiving the report and renderings of a failing case",
	}
)

// Command line options of the pattern-complexity sweep.
var (
	HostOrderFlag = cli.IntFlag{
		Name:  "host-order",
		Usage: "vertex count of the fixed host graph",
		Value: 8,
	}
	HostEdgesFlag = cli.IntFlag{
		Name:  "host-edges",
		Usage: "target edge count of the fixed host graph",
		Value: 24,
	}
	LadderFlag = cli.PathFlag{
		Name:  "ladder",
		Usage: "YAML file with a custom pattern ladder",
	}
)

// Command line options of the replay command.
var (
	OrderFlag = cli.IntFlag{
		Name:     "order",
		Usage:    "vertex count of the replayed host",
		Required: true,
	}
	EdgesFlag = cli.IntFlag{
		Name:     "edges",
		Usage:    "target edge count of the replayed host",
		Required: true,
	}
	SeedFlag = cli.Int64Flag{
		Name:     "seed",
		Usage:    "generator seed of the replayed host",
		Required: true,
	}
)
