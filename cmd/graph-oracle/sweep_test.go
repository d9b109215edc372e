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
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Fantom-foundation/graph-oracle/driver"
	"github.com/Fantom-foundation/graph-oracle/executor"
	"github.com/Fantom-foundation/graph-oracle/executor/extension/validator"
	"github.com/Fantom-foundation/graph-oracle/oracle"
	"github.com/Fantom-foundation/graph-oracle/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// writeScript stores an executable shell script in dir.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func makeEngineConfig(t *testing.T, minOrder, maxOrder int, codegen, runner string) *utils.Config {
	dir := t.TempDir()
	cfg := utils.NewTestConfig(t, minOrder, maxOrder, 2)
	cfg.CommandName = "escalate"
	cfg.EngineDir = dir
	cfg.EngineRun = writeScript(t, dir, "run", codegen)
	cfg.EngineRunner = writeScript(t, dir, "runner", runner)
	return cfg
}

func runScaleSweep(t *testing.T, cfg *utils.Config, patternName string) error {
	t.Helper()
	pattern, err := oracle.PatternByName(patternName)
	require.NoError(t, err)
	return runSweep(context.Background(), cfg, executor.MakeScaleProvider(cfg, pattern), makeProcessor(cfg), nil)
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var coder cli.ExitCoder
	require.True(t, errors.As(err, &coder), "error %v carries no exit code", err)
	return coder.ExitCode()
}

func TestSweep_CorrectEngineCompletes(t *testing.T) {
	// no host of at most 4 vertices contains a 5-clique
	cfg := makeEngineConfig(t, 3, 4, "exit 0", `echo "RESULT=0"`)
	assert.NoError(t, runScaleSweep(t, cfg, "5-clique"))
}

func TestSweep_WrongAnswerHaltsWithExitCode(t *testing.T) {
	// every dense host of 6 vertices has a triangle
	cfg := makeEngineConfig(t, 3, 6, "exit 0", `echo "RESULT=0"`)
	err := runScaleSweep(t, cfg, "triangle")
	require.Error(t, err)
	assert.Equal(t, driver.WrongAnswer.ExitCode(), exitCode(t, err))
	assert.Contains(t, err.Error(), "WRONG_ANSWER")
}

func TestSweep_CrashHaltsWithExitCode(t *testing.T) {
	cfg := makeEngineConfig(t, 3, 4, "exit 0", `kill -SEGV $$`)
	err := runScaleSweep(t, cfg, "triangle")
	assert.Equal(t, driver.Crash.ExitCode(), exitCode(t, err))
	assert.Contains(t, err.Error(), "3v_sparse_0")
}

func TestSweep_EngineErrorHaltsUnlessSkipped(t *testing.T) {
	cfg := makeEngineConfig(t, 3, 4, `echo "no such pattern" >&2; exit 1`, `echo "RESULT=0"`)
	err := runScaleSweep(t, cfg, "triangle")
	assert.Equal(t, driver.EngineError.ExitCode(), exitCode(t, err))

	cfg.ContinueOnEngineError = true
	assert.NoError(t, runScaleSweep(t, cfg, "triangle"))
}

func TestSweep_UnknownExpectedAboveCeilingPasses(t *testing.T) {
	cfg := makeEngineConfig(t, 5, 6, "exit 0", `echo "RESULT=12345"`)
	cfg.OracleCeiling = 4
	assert.NoError(t, runScaleSweep(t, cfg, "triangle"))
}

func TestSweep_PatternSweepHaltsAtFirstPatternMiscounted(t *testing.T) {
	// the engine only knows about triangles
	cfg := makeEngineConfig(t, 3, 3, `test "$3" = triangle || exit 1`, `echo "RESULT=0"`)
	cfg.HostOrder = 4
	cfg.HostEdges = 0
	cfg.Trials = 1

	ladder := oracle.Ladder()[:2]
	err := runSweep(context.Background(), cfg, executor.MakePatternProvider(cfg, ladder), makeProcessor(cfg), nil)
	assert.Equal(t, driver.EngineError.ExitCode(), exitCode(t, err))
	assert.Contains(t, err.Error(), "4v_0e_4-path_0")
}

func TestSweep_CancelledRunIsAnInternalError(t *testing.T) {
	cfg := makeEngineConfig(t, 3, 4, "exit 0", `echo "RESULT=0"`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := runSweep(ctx, cfg, executor.MakeScaleProvider(cfg, oracle.Triangle()), makeProcessor(cfg), nil)
	assert.Equal(t, 1, exitCode(t, err))
}

func TestSweep_InterruptDuringEngineRunAborts(t *testing.T) {
	cfg := makeEngineConfig(t, 3, 4, "sleep 5", `echo "RESULT=0"`)
	cfg.Artifacts = t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(300*time.Millisecond, cancel)
	defer timer.Stop()

	err := runSweep(ctx, cfg, executor.MakeScaleProvider(cfg, oracle.Triangle()), makeProcessor(cfg), nil)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.NotContains(t, err.Error(), "HALTED")
	assert.NotContains(t, err.Error(), "ENGINE_ERROR")

	entries, err := os.ReadDir(cfg.Artifacts)
	require.NoError(t, err)
	assert.Empty(t, entries, "an interrupted trial is no failing configuration")
}

func TestExitError_MapsHaltingOutcomes(t *testing.T) {
	assert.NoError(t, exitError(nil))

	for _, kind := range []driver.Kind{driver.WrongAnswer, driver.Timeout, driver.Crash, driver.EngineError} {
		err := exitError(errors.Join(errors.New("other"), &validator.HaltError{Outcome: driver.Outcome{Kind: kind}}))
		assert.Equal(t, kind.ExitCode(), exitCode(t, err))
	}
}

func TestLoadPattern_PrefersPatternFile(t *testing.T) {
	cfg := utils.NewTestConfig(t, 3, 3, 1)
	cfg.Pattern = "4-cycle"
	p, err := loadPattern(cfg)
	require.NoError(t, err)
	assert.Equal(t, "4-cycle", p.Name)

	cfg.PatternFile = filepath.Join(t.TempDir(), "wedge.txt")
	require.NoError(t, os.WriteFile(cfg.PatternFile, []byte("3\n0 1\n1 2\n"), 0o644))
	p, err = loadPattern(cfg)
	require.NoError(t, err)
	assert.Equal(t, "wedge", p.Name)
	assert.Equal(t, "010101010", p.Binary())

	cfg.PatternFile = ""
	cfg.Pattern = "hexagon"
	_, err = loadPattern(cfg)
	assert.Error(t, err)
}

func TestMakeOracle_UsesConfiguredConvention(t *testing.T) {
	cfg := utils.NewTestConfig(t, 3, 3, 1)
	cfg.CountAutomorphisms = true
	cfg.Induced = true
	cfg.OracleCeiling = 5

	o := makeOracle(cfg)
	assert.Equal(t, oracle.Convention{Automorphisms: oracle.Distinct, Induced: true}, o.Convention())
	assert.Equal(t, 5, o.Ceiling())
}

func TestEncode_PrintsBinaryMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.txt")
	require.NoError(t, os.WriteFile(path, []byte("3\n0 1\n1 2\n2 0\n"), 0o644))

	var buf bytes.Buffer
	app := &cli.App{Writer: &buf, Commands: []*cli.Command{&EncodeCmd}}
	require.NoError(t, app.Run([]string{"graph-oracle", "encode", path}))
	assert.Equal(t, "011101110\n", buf.String())
}

func TestEncode_RequiresSingleArgument(t *testing.T) {
	app := &cli.App{Writer: &bytes.Buffer{}, Commands: []*cli.Command{&EncodeCmd}}
	assert.Error(t, app.Run([]string{"graph-oracle", "encode"}))
}

func TestReplay_RunsThroughCommandLine(t *testing.T) {
	dir := t.TempDir()
	run := writeScript(t, dir, "run", "exit 0")
	runner := writeScript(t, dir, "runner", `echo "RESULT=0"`)

	app := &cli.App{Writer: &bytes.Buffer{}, Commands: []*cli.Command{&ReplayCmd}}
	err := app.Run([]string{"graph-oracle", "replay",
		"--order", "3", "--edges", "3", "--seed", "1",
		"--pattern", "4-cycle",
		"--engine-run", run, "--engine-runner", runner,
		"--workdir", filepath.Join(dir, "work"),
		"--log", "critical", "--no-heartbeat-logging",
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "work", "3v_dense_0", "snap.txt"))
	assert.NoError(t, err)
}
