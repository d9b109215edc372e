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
	"errors"

	"github.com/Fantom-foundation/graph-oracle/driver"
	"github.com/Fantom-foundation/graph-oracle/executor"
	"github.com/Fantom-foundation/graph-oracle/executor/extension/tracker"
	"github.com/Fantom-foundation/graph-oracle/executor/extension/validator"
	"github.com/Fantom-foundation/graph-oracle/logger"
	"github.com/Fantom-foundation/graph-oracle/oracle"
	"github.com/Fantom-foundation/graph-oracle/utils"
	"github.com/urfave/cli/v2"
)

// makeProcessor wires the oracle and the engine driver of the configured
// engine into a trial processor.
func makeProcessor(cfg *utils.Config) *executor.TrialProcessor {
	return executor.MakeTrialProcessor(
		cfg,
		driver.NewEngineDriver(cfg, logger.NewLogger(cfg.LogLevel, "Driver")),
		makeOracle(cfg),
	)
}

func makeOracle(cfg *utils.Config) *oracle.Oracle {
	convention := oracle.Convention{Induced: cfg.Induced}
	if cfg.CountAutomorphisms {
		convention.Automorphisms = oracle.Distinct
	}
	return oracle.New(convention, cfg.OracleCeiling, logger.NewLogger(cfg.LogLevel, "Oracle"))
}

// loadPattern returns the pattern of --pattern-file if set, otherwise the
// built-in pattern named by --pattern.
func loadPattern(cfg *utils.Config) (oracle.Pattern, error) {
	if cfg.PatternFile != "" {
		return oracle.LoadPatternFile(cfg.PatternFile, cfg.IngestMode())
	}
	return oracle.PatternByName(cfg.Pattern)
}

func runSweep(
	ctx context.Context,
	cfg *utils.Config,
	provider executor.Provider,
	processor executor.Processor,
	extra []executor.Extension,
) error {
	// order of extensionList has to be maintained
	var extensionList = []executor.Extension{
		// RunReporter should be the first on the list = last to receive PostRun,
		// so it reports the final state of the run.
		tracker.MakeRunReporter(cfg),
		tracker.MakeProgressLogger(cfg, 0),
		tracker.MakeStatusPrinter(),
	}

	extensionList = append(extensionList, extra...)

	// the validator is the first to see the outcome of a trial
	extensionList = append(extensionList, validator.MakeHaltValidator(cfg))

	err := executor.NewExecutor(provider).Run(
		ctx,
		executor.Params{Sweep: cfg.CommandName},
		processor,
		extensionList,
	)
	return exitError(err)
}

// exitError converts a halted sweep into the exit code of the halting
// outcome.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	var halt *validator.HaltError
	if errors.As(err, &halt) {
		return cli.Exit(halt.Error(), halt.ExitCode())
	}
	return cli.Exit(err.Error(), 1)
}
