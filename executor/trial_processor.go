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
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Fantom-foundation/graph-oracle/driver"
	"github.com/Fantom-foundation/graph-oracle/graph"
	"github.com/Fantom-foundation/graph-oracle/logger"
	"github.com/Fantom-foundation/graph-oracle/oracle"
	"github.com/Fantom-foundation/graph-oracle/utils"
)

// MakeTrialProcessor creates an executor.Processor which builds the test case
// of a trial and lets the driver evaluate the engine on it.
func MakeTrialProcessor(cfg *utils.Config, drv driver.Driver, counter oracle.Counter) *TrialProcessor {
	return makeTrialProcessor(cfg, drv, counter, logger.NewLogger(cfg.LogLevel, "TrialProcessor"))
}

func makeTrialProcessor(cfg *utils.Config, drv driver.Driver, counter oracle.Counter, log logger.Logger) *TrialProcessor {
	return &TrialProcessor{
		cfg:     cfg,
		driver:  drv,
		counter: counter,
		log:     log,
	}
}

type TrialProcessor struct {
	cfg     *utils.Config
	driver  driver.Driver
	counter oracle.Counter
	log     logger.Logger
}

// Process generates the host of the trial, writes it as dataset and stores
// the classified engine outcome in the context. Failures while building the
// test case are reported as engine errors of the setup stage; only an
// inconsistent oracle or a cancelled context aborts the sweep.
func (p *TrialProcessor) Process(ctx context.Context, state State, c *Context) error {
	tc, err := p.buildCase(state)
	c.Case = tc
	if err != nil {
		if errors.Is(err, oracle.ErrInconsistent) {
			return err
		}
		p.log.Errorf("Cannot set up %v; %v", tc.Name, err)
		c.Outcome = driver.EngineFailure(driver.StageSetup, err.Error())
		c.Outcome.Expected = tc.Expected
		return nil
	}

	out := p.driver.Evaluate(ctx, driver.Invocation{
		DatasetPath:    tc.DatasetPath,
		PatternName:    tc.Pattern.Name,
		PatternBinary:  tc.Pattern.Binary(),
		Expected:       tc.Expected,
		CodegenTimeout: tc.Pattern.Timeout,
	})
	// an interrupted engine says nothing about the trial
	if err = ctx.Err(); err != nil {
		return fmt.Errorf("trial %v interrupted; %w", tc.Name, err)
	}
	c.Outcome = out
	return nil
}

// buildCase always returns a test case carrying at least the generated
// host, also if an error is reported.
func (p *TrialProcessor) buildCase(state State) (*TestCase, error) {
	point := state.Point
	name := TrialName(point, state.Trial)
	host := graph.Generate(point.Order, point.TargetEdges, state.Seed)

	tc := &TestCase{
		Name:        name,
		Point:       point,
		Trial:       state.Trial,
		Seed:        state.Seed,
		Host:        host,
		Pattern:     point.Pattern,
		Fingerprint: graph.Fingerprint(host),
	}
	if got, want := host.NumEdges(), point.TargetEdges; got < want {
		p.log.Debugf("%v: generator placed %d of %d edges", name, got, want)
	}

	dir, err := filepath.Abs(filepath.Join(p.cfg.WorkDir, name))
	if err != nil {
		return tc, fmt.Errorf("cannot resolve dataset path; %w", err)
	}
	tc.DatasetPath = dir

	if err = graph.WriteDataset(dir, host); err != nil {
		return tc, err
	}
	// the engine sees the dataset, so the expected count is computed for what was written
	written, err := graph.ReadDataset(dir, p.cfg.IngestMode())
	if err != nil {
		return tc, fmt.Errorf("cannot read back dataset; %w", err)
	}
	if !written.Equal(host) {
		return tc, fmt.Errorf("dataset %v does not reproduce the generated host", dir)
	}

	tc.Expected, err = p.counter.Expected(host, point.Pattern.Graph)
	if err != nil {
		return tc, fmt.Errorf("cannot compute expected count of %v; %w", name, err)
	}
	p.log.Debugf("Built %v", tc.Describe())
	return tc, nil
}
