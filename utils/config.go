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
	"errors"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/Fantom-foundation/graph-oracle/graph"
	"github.com/Fantom-foundation/graph-oracle/logger"
	"github.com/urfave/cli/v2"
)

// Config summarizes the command line options of a run.
type Config struct {
	AppName     string
	CommandName string

	MinOrder              int    // smallest host order of the scale sweep
	MaxOrder              int    // largest host order of the scale sweep
	Trials                int    // trials per sweep point
	Timeout               int    // timeout of an engine phase in seconds
	RunnerTimeout         int    // timeout of the execution phase in seconds, 0 = Timeout
	RandomSeed            int64  // base seed of the generator
	DenseFactor           int    // edges per vertex of the dense variant
	OracleCeiling         int    // largest host order with a known expected count
	Pattern               string // name of a built-in pattern
	PatternFile           string // edge-list file of a custom pattern
	CountAutomorphisms    bool   // count automorphic mappings separately
	Induced               bool   // count induced matches only
	Ingest                string // strict or lenient ingestion of input files
	ContinueOnEngineError bool   // advance past engine errors
	LogLevel              string // level of the logging
	NoHeartbeatLogging    bool   // disables the periodic progress logging

	EngineDir    string // working directory of engine invocations
	EngineRun    string // code generation binary
	EngineRunner string // runner binary
	EnginePrep   string // optional preprocessing binary
	EngineMode   string // mode argument of the code generation phase
	StartIndex   int    // start index argument of the code generation phase
	MaxSize      int    // max size argument of the code generation phase
	MinSize      int    // min size argument of the code generation phase
	Threads      int    // thread count passed to the runner
	WorkDir      string // directory receiving the generated datasets
	Artifacts    string // directory receiving the report of a failing case

	HostOrder int    // order of the fixed host of the pattern sweep
	HostEdges int    // target edges of the fixed host of the pattern sweep
	Ladder    string // YAML file with a custom pattern ladder

	Order int   // order of the replayed host
	Edges int   // target edges of the replayed host
	Seed  int64 // seed of the replayed host
}

// PhaseTimeout returns the timeout of the preparation and code generation phases.
func (cfg *Config) PhaseTimeout() time.Duration {
	return time.Duration(cfg.Timeout) * time.Second
}

// ExecutionTimeout returns the timeout of the execution phase.
func (cfg *Config) ExecutionTimeout() time.Duration {
	if cfg.RunnerTimeout > 0 {
		return time.Duration(cfg.RunnerTimeout) * time.Second
	}
	return cfg.PhaseTimeout()
}

// IngestMode returns the parsed --ingest option. NewConfig rejects invalid
// values, so an unknown value falls back to strict.
func (cfg *Config) IngestMode() graph.IngestMode {
	mode, _ := graph.ParseIngestMode(cfg.Ingest)
	return mode
}

type configContext struct {
	cfg *Config       // run configuration
	log logger.Logger // logger for printing logs in config functions
	ctx *cli.Context  // command line context for accessing flags and command line arguments
}

func NewConfigContext(cfg *Config, ctx *cli.Context) *configContext {
	return &configContext{
		log: logger.NewLogger(cfg.LogLevel, "Config"),
		cfg: cfg,
		ctx: ctx,
	}
}

// NewTestConfig creates a new config for test purpose
func NewTestConfig(t *testing.T, minOrder, maxOrder, trials int) *Config {
	return &Config{
		MinOrder:           minOrder,
		MaxOrder:           maxOrder,
		Trials:             trials,
		Timeout:            10,
		RandomSeed:         42,
		DenseFactor:        2,
		OracleCeiling:      8,
		Pattern:            "triangle",
		Ingest:             "strict",
		LogLevel:           "Critical",
		NoHeartbeatLogging: true,
		EngineRun:          "./build/bin/run",
		EngineRunner:       "./build/bin/runner",
		EngineMode:         "test",
		MaxSize:            4,
		MinSize:            3,
		Threads:            1,
		WorkDir:            t.TempDir(),
		HostOrder:          8,
		HostEdges:          24,
	}
}

// NewConfig creates and initializes Config with commandline arguments.
func NewConfig(ctx *cli.Context) (*Config, error) {
	// create config with user flag values, if not set default values are used
	cfg, _, err := createConfigFromFlags(ctx)
	if err != nil {
		return nil, err
	}

	cc := NewConfigContext(cfg, ctx)

	if err = cc.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration; %w", err)
	}

	if err = cc.adjustMissingConfigValues(); err != nil {
		return nil, fmt.Errorf("cannot adjust missing config values; %w", err)
	}

	cc.reportNewConfig()

	return cfg, nil
}

// validate rejects option combinations which cannot describe a sweep.
func (cc *configContext) validate() error {
	cfg := cc.cfg
	var errs []error

	if cfg.MinOrder < 0 {
		errs = append(errs, fmt.Errorf("--%v must not be negative", MinOrderFlag.Name))
	}
	if cfg.MinOrder > cfg.MaxOrder {
		errs = append(errs, fmt.Errorf("--%v (%d) must not exceed --%v (%d)", MinOrderFlag.Name, cfg.MinOrder, MaxOrderFlag.Name, cfg.MaxOrder))
	}
	if cfg.Trials < 1 {
		errs = append(errs, fmt.Errorf("--%v must be at least 1", TrialsFlag.Name))
	}
	if cfg.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("--%v must be positive", TimeoutFlag.Name))
	}
	if cfg.RunnerTimeout < 0 {
		errs = append(errs, fmt.Errorf("--%v must not be negative", RunnerTimeoutFlag.Name))
	}
	if cfg.DenseFactor < 1 {
		errs = append(errs, fmt.Errorf("--%v must be at least 1", DenseFactorFlag.Name))
	}
	if cfg.Threads < 1 {
		errs = append(errs, fmt.Errorf("--%v must be at least 1", ThreadsFlag.Name))
	}
	if cfg.HostOrder < 0 || cfg.HostEdges < 0 {
		errs = append(errs, fmt.Errorf("--%v and --%v must not be negative", HostOrderFlag.Name, HostEdgesFlag.Name))
	}
	if cfg.EngineRun == "" || cfg.EngineRunner == "" {
		errs = append(errs, fmt.Errorf("--%v and --%v are required", EngineRunFlag.Name, EngineRunnerFlag.Name))
	}
	if _, err := graph.ParseIngestMode(cfg.Ingest); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// adjustMissingConfigValues fill the missing values in the config
func (cc *configContext) adjustMissingConfigValues() error {
	cfg := cc.cfg
	log := cc.log

	if cfg.RandomSeed < 0 {
		cfg.RandomSeed = int64(rand.Uint32())
		log.Noticef("Picked random seed %d", cfg.RandomSeed)
	}

	if cfg.OracleCeiling < 0 {
		cfg.OracleCeiling = 0
		log.Warning("Oracle is disabled, only crashes and timeouts are detected.")
	}

	// without a work directory, datasets are kept in a fresh temporary directory
	if cfg.WorkDir == "" {
		dir, err := os.MkdirTemp("", "graph-oracle-")
		if err != nil {
			return fmt.Errorf("cannot create work directory; %w", err)
		}
		cfg.WorkDir = dir
		log.Infof("Datasets are written to %v", dir)
	} else if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work directory %v; %w", cfg.WorkDir, err)
	}

	if cfg.Artifacts != "" {
		if err := os.MkdirAll(cfg.Artifacts, 0o755); err != nil {
			return fmt.Errorf("cannot create artifact directory %v; %w", cfg.Artifacts, err)
		}
	}
	return nil
}

// reportNewConfig logs out the state of config in current run
func (cc *configContext) reportNewConfig() {
	cfg := cc.cfg
	log := cc.log

	log.Noticef("Run config:")
	log.Infof("Command: %v", cfg.CommandName)
	log.Infof("Orders: %d to %d, %d trial(s) per point", cfg.MinOrder, cfg.MaxOrder, cfg.Trials)
	log.Infof("Random seed: %d", cfg.RandomSeed)
	log.Infof("Phase timeout: %v, execution timeout: %v", cfg.PhaseTimeout(), cfg.ExecutionTimeout())
	log.Infof("Oracle ceiling: %d vertices", cfg.OracleCeiling)
	if cfg.PatternFile != "" {
		log.Infof("Pattern file: %v", cfg.PatternFile)
	} else {
		log.Infof("Pattern: %v", cfg.Pattern)
	}
	log.Noticef("Counting convention: automorphisms counted=%v, induced=%v", cfg.CountAutomorphisms, cfg.Induced)
	log.Infof("Ingestion: %v", cfg.IngestMode())
	log.Infof("Engine: %v / %v in %v", cfg.EngineRun, cfg.EngineRunner, cfg.EngineDir)
	if cfg.EnginePrep != "" {
		log.Infof("Engine preprocessing: %v", cfg.EnginePrep)
	}
	log.Infof("Work directory: %v", cfg.WorkDir)

	if cfg.ContinueOnEngineError {
		log.Warning("Engine errors do not halt the run.")
	}
	if cfg.Artifacts != "" {
		log.Infof("Artifacts directory: %v", cfg.Artifacts)
	}
}
