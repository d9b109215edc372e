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

// Package driver invokes the engine under test as external processes and
// classifies what it reports.
package driver

//go:generate mockgen -source driver.go -destination driver_mocks.go -package driver

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Fantom-foundation/graph-oracle/logger"
	"github.com/Fantom-foundation/graph-oracle/utils"
)

// ResultMarker prefixes the count printed by the engine runner.
const ResultMarker = "RESULT="

// Invocation describes one evaluation of the engine.
type Invocation struct {
	DatasetPath   string
	PatternName   string
	PatternBinary string
	// Expected is the ground truth, nil if unknown.
	Expected *int64
	// CodegenTimeout limits preparation and code generation, RunnerTimeout
	// the execution. Zero values fall back to the configured timeouts.
	CodegenTimeout time.Duration
	RunnerTimeout  time.Duration
}

// Driver runs the engine phases. Failures of the engine are never returned
// as errors; they are reported through the PhaseResult or Outcome.
type Driver interface {
	// Prepare runs the optional dataset preprocessing binary.
	Prepare(ctx context.Context, inv Invocation) PhaseResult
	// Generate runs the code generation phase.
	Generate(ctx context.Context, inv Invocation) PhaseResult
	// Execute runs the compiled runner against the dataset.
	Execute(ctx context.Context, inv Invocation) PhaseResult
	// Evaluate runs all phases and classifies the reported count.
	Evaluate(ctx context.Context, inv Invocation) Outcome
}

// NewEngineDriver creates a driver for the engine binaries named in cfg.
func NewEngineDriver(cfg *utils.Config, log logger.Logger) *EngineDriver {
	return &EngineDriver{cfg: cfg, log: log}
}

// EngineDriver is the Driver of the two-phase code generating engine. It
// never retries a phase.
type EngineDriver struct {
	cfg *utils.Config
	log logger.Logger
}

func (d *EngineDriver) codegenTimeout(inv Invocation) time.Duration {
	if inv.CodegenTimeout > 0 {
		return inv.CodegenTimeout
	}
	return d.cfg.PhaseTimeout()
}

func (d *EngineDriver) runnerTimeout(inv Invocation) time.Duration {
	if inv.RunnerTimeout > 0 {
		return inv.RunnerTimeout
	}
	return d.cfg.ExecutionTimeout()
}

func (d *EngineDriver) Prepare(ctx context.Context, inv Invocation) PhaseResult {
	return d.run(ctx, StagePrep, d.codegenTimeout(inv), d.cfg.EnginePrep, inv.DatasetPath)
}

func (d *EngineDriver) Generate(ctx context.Context, inv Invocation) PhaseResult {
	return d.run(ctx, StageCodegen, d.codegenTimeout(inv), d.cfg.EngineRun,
		d.cfg.EngineMode,
		inv.DatasetPath,
		inv.PatternName,
		inv.PatternBinary,
		strconv.Itoa(d.cfg.StartIndex),
		strconv.Itoa(d.cfg.MaxSize),
		strconv.Itoa(d.cfg.MinSize),
	)
}

func (d *EngineDriver) Execute(ctx context.Context, inv Invocation) PhaseResult {
	return d.run(ctx, StageRunner, d.runnerTimeout(inv), d.cfg.EngineRunner, strconv.Itoa(d.cfg.Threads), inv.DatasetPath)
}

func (d *EngineDriver) Evaluate(ctx context.Context, inv Invocation) Outcome {
	var elapsed time.Duration

	if d.cfg.EnginePrep != "" {
		res := d.Prepare(ctx, inv)
		elapsed += res.Elapsed
		if out, failed := phaseFailure(StagePrep, res); failed {
			out.Expected = inv.Expected
			out.Elapsed = elapsed
			return out
		}
	}

	gen := d.Generate(ctx, inv)
	elapsed += gen.Elapsed
	if out, failed := phaseFailure(StageCodegen, gen); failed {
		out.Expected = inv.Expected
		out.Elapsed = elapsed
		return out
	}

	run := d.Execute(ctx, inv)
	elapsed += run.Elapsed
	if out, failed := phaseFailure(StageRunner, run); failed {
		out.Expected = inv.Expected
		out.Elapsed = elapsed
		return out
	}

	got, err := ParseResult(run.Stdout)
	if err != nil {
		out := EngineFailure(StageParse, run.Stdout)
		out.Expected = inv.Expected
		out.Elapsed = elapsed
		return out
	}
	out := Classify(inv.Expected, got)
	out.Elapsed = elapsed
	return out
}

func (d *EngineDriver) run(ctx context.Context, stage string, timeout time.Duration, name string, args ...string) PhaseResult {
	d.log.Debugf("%v: %v %v (timeout %v)", stage, name, strings.Join(args, " "), timeout)
	res := runProcess(ctx, timeout, d.cfg.EngineDir, name, args...)
	logLines(d.log, stage+" stdout", res.Stdout)
	logLines(d.log, stage+" stderr", res.Stderr)

	switch {
	case res.TimedOut:
		d.log.Warningf("%v timed out after %v", stage, timeout)
	case res.Cancelled:
		d.log.Warningf("%v interrupted", stage)
	case res.Err != nil:
		d.log.Errorf("%v failed; %v", stage, res.Err)
	case res.ExitCode != 0:
		d.log.Errorf("%v exited with code %d", stage, res.ExitCode)
	default:
		d.log.Debugf("%v finished in %v", stage, res.Elapsed.Round(time.Millisecond))
	}
	return res
}

func logLines(log logger.Logger, prefix string, text string) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		log.Debugf("%v: %v", prefix, scanner.Text())
	}
}

// phaseFailure converts a failed phase into its outcome. A timeout takes
// precedence over everything read before the kill. An interrupted phase is
// reported as failed so no later phase is started; callers must check their
// context before trusting the outcome.
func phaseFailure(stage string, res PhaseResult) (Outcome, bool) {
	switch {
	case res.TimedOut:
		return Outcome{Kind: Timeout, Stage: stage, Message: fmt.Sprintf("killed after %v", res.Elapsed)}, true
	case res.Cancelled:
		return EngineFailure(stage, "interrupted; "+res.Err.Error()), true
	case res.Err != nil:
		return EngineFailure(stage, res.Err.Error()), true
	case res.ExitCode == 0:
		return Outcome{}, false
	case res.Crashed():
		return Outcome{Kind: Crash, Stage: stage, Message: crashMessage(res)}, true
	case stage == StageCodegen && strings.Contains(res.Stderr, "mkdir"):
		// the engine could not lay out its build directory
		return EngineFailure(StageCodegenEnv, res.Stderr), true
	}
	return EngineFailure(stage, res.Stderr), true
}

func crashMessage(res PhaseResult) string {
	if res.Signal != 0 {
		return fmt.Sprintf("killed by %v; %v", res.Signal, res.Stderr)
	}
	return res.Stderr
}

// ParseResult extracts the count of the first line carrying RESULT=<integer>.
// Later markers are ignored.
func ParseResult(stdout string) (int64, error) {
	scanner := bufio.NewScanner(strings.NewReader(stdout))
	for scanner.Scan() {
		line := scanner.Text()
		idx := strings.Index(line, ResultMarker)
		if idx < 0 {
			continue
		}
		value := strings.TrimSpace(line[idx+len(ResultMarker):])
		if fields := strings.Fields(value); len(fields) > 0 {
			value = fields[0]
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed result %q; %w", line, err)
		}
		return n, nil
	}
	return 0, fmt.Errorf("no %v line in engine output", ResultMarker)
}
