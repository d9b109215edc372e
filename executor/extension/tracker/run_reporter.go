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

package tracker

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/Fantom-foundation/graph-oracle/executor"
	"github.com/Fantom-foundation/graph-oracle/executor/extension"
	"github.com/Fantom-foundation/graph-oracle/executor/extension/validator"
	"github.com/Fantom-foundation/graph-oracle/logger"
	"github.com/Fantom-foundation/graph-oracle/report"
	"github.com/Fantom-foundation/graph-oracle/utils"
)

// MakeRunReporter creates an extension collecting the outcomes of all trials
// and printing the run report once the sweep ends. If the sweep halts and an
// artifact directory is configured, the failing inputs are stored there.
func MakeRunReporter(cfg *utils.Config) executor.Extension {
	return makeRunReporter(cfg, os.Stdout, logger.NewLogger(cfg.LogLevel, "Run-Reporter"))
}

func makeRunReporter(cfg *utils.Config, w io.Writer, log logger.Logger) *runReporter {
	return &runReporter{
		cfg: cfg,
		out: w,
		log: log,
	}
}

type runReporter struct {
	extension.NilExtension
	cfg *utils.Config
	out io.Writer
	log logger.Logger
	run *report.Run
}

func (r *runReporter) PreRun(executor.State, *executor.Context) error {
	r.run = report.NewRun(r.cfg.CommandName)
	r.log.Infof("Run id %v", r.run.ID)
	return nil
}

func (r *runReporter) PostTrial(_ executor.State, ctx *executor.Context) error {
	if ctx.Case == nil {
		return nil
	}
	point := ctx.Case.Point
	r.run.Record(point.Name(), point.Pattern.Name, point.Order, point.TargetEdges, ctx.Outcome)
	return nil
}

// PostRun prints the report. An abort of the sweep is recorded, it is not
// reported again.
func (r *runReporter) PostRun(_ executor.State, _ *executor.Context, err error) error {
	var halt *validator.HaltError
	switch {
	case errors.As(err, &halt):
		failure := makeFailure(halt)
		r.run.Halt(failure)
		if err := r.storeArtifacts(halt, &failure); err != nil {
			r.log.Errorf("Cannot store artifacts; %v", err)
		}
	case err != nil:
		r.run.Abort(err)
	}
	return r.run.Write(r.out)
}

func (r *runReporter) storeArtifacts(halt *validator.HaltError, failure *report.Failure) error {
	if r.cfg.Artifacts == "" || halt.Case == nil || halt.Case.Host == nil || halt.Case.Pattern.Graph == nil {
		return nil
	}
	dir := filepath.Join(r.cfg.Artifacts, r.run.ID.String(), halt.Case.Name)
	if err := report.WriteArtifacts(dir, failure, halt.Case.Host, halt.Case.Pattern.Graph); err != nil {
		return err
	}
	r.log.Noticef("Inputs of %v stored in %v", halt.Case.Name, dir)
	return nil
}

func makeFailure(halt *validator.HaltError) report.Failure {
	failure := report.Failure{Outcome: halt.Outcome}
	if tc := halt.Case; tc != nil {
		failure.Trial = tc.Name
		failure.Order = tc.Point.Order
		failure.Density = string(tc.Point.Density)
		failure.Seed = tc.Seed
		failure.Pattern = tc.Pattern.Name
		failure.Fingerprint = tc.Fingerprint
		if tc.Host != nil {
			failure.Edges = tc.Host.NumEdges()
		}
	}
	return failure
}
