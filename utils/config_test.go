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
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Fantom-foundation/graph-oracle/graph"
	"github.com/Fantom-foundation/graph-oracle/logger"
	"github.com/urfave/cli/v2"
)

var testCommandFlags = []cli.Flag{
	&MinOrderFlag,
	&MaxOrderFlag,
	&TrialsFlag,
	&TimeoutFlag,
	&RunnerTimeoutFlag,
	&RandomSeedFlag,
	&IngestFlag,
	&WorkDirFlag,
	&EngineRunFlag,
	&logger.LogLevelFlag,
}

// prepareMockCliContext creates a context of a command declaring
// testCommandFlags with the given values set by the user.
func prepareMockCliContext(t *testing.T, values map[string]string) *cli.Context {
	flagSet := flag.NewFlagSet("utils_config_test", 0)
	for _, f := range testCommandFlags {
		if err := f.Apply(flagSet); err != nil {
			t.Fatalf("cannot apply flag %v: %v", f.Names()[0], err)
		}
	}
	if err := flagSet.Set(logger.LogLevelFlag.Name, "critical"); err != nil {
		t.Fatalf("cannot set log level: %v", err)
	}
	for name, value := range values {
		if err := flagSet.Set(name, value); err != nil {
			t.Fatalf("cannot set flag %v: %v", name, err)
		}
	}

	ctx := cli.NewContext(cli.NewApp(), flagSet, nil)
	ctx.Command = &cli.Command{Name: "escalate", Flags: testCommandFlags}
	return ctx
}

func TestUtilsConfig_NewConfigUsesDefaults(t *testing.T) {
	ctx := prepareMockCliContext(t, map[string]string{
		WorkDirFlag.Name: t.TempDir(),
	})

	cfg, err := NewConfig(ctx)
	if err != nil {
		t.Fatalf("cannot create config: %v", err)
	}

	if got, want := cfg.CommandName, "escalate"; got != want {
		t.Errorf("unexpected command name, wanted %v, got %v", want, got)
	}
	if got, want := cfg.MinOrder, 3; got != want {
		t.Errorf("unexpected min order, wanted %v, got %v", want, got)
	}
	if got, want := cfg.MaxOrder, 12; got != want {
		t.Errorf("unexpected max order, wanted %v, got %v", want, got)
	}
	if got, want := cfg.RandomSeed, int64(42); got != want {
		t.Errorf("unexpected seed, wanted %v, got %v", want, got)
	}
	// flags not declared by the command fall back to their defaults
	if got, want := cfg.OracleCeiling, 8; got != want {
		t.Errorf("unexpected oracle ceiling, wanted %v, got %v", want, got)
	}
	if got, want := cfg.EngineRunner, "./build/bin/runner"; got != want {
		t.Errorf("unexpected runner, wanted %v, got %v", want, got)
	}
	if got, want := cfg.ExecutionTimeout(), 300*time.Second; got != want {
		t.Errorf("unexpected execution timeout, wanted %v, got %v", want, got)
	}
	if got, want := cfg.IngestMode(), graph.Strict; got != want {
		t.Errorf("unexpected ingest mode, wanted %v, got %v", want, got)
	}
}

func TestUtilsConfig_NewConfigTakesUserValues(t *testing.T) {
	ctx := prepareMockCliContext(t, map[string]string{
		MinOrderFlag.Name:      "5",
		MaxOrderFlag.Name:      "7",
		TrialsFlag.Name:        "1",
		TimeoutFlag.Name:       "20",
		RunnerTimeoutFlag.Name: "5",
		IngestFlag.Name:        "lenient",
		WorkDirFlag.Name:       t.TempDir(),
	})

	cfg, err := NewConfig(ctx)
	if err != nil {
		t.Fatalf("cannot create config: %v", err)
	}
	if cfg.MinOrder != 5 || cfg.MaxOrder != 7 || cfg.Trials != 1 {
		t.Errorf("unexpected sweep bounds %d..%d x %d", cfg.MinOrder, cfg.MaxOrder, cfg.Trials)
	}
	if got, want := cfg.PhaseTimeout(), 20*time.Second; got != want {
		t.Errorf("unexpected phase timeout, wanted %v, got %v", want, got)
	}
	if got, want := cfg.ExecutionTimeout(), 5*time.Second; got != want {
		t.Errorf("unexpected execution timeout, wanted %v, got %v", want, got)
	}
	if got, want := cfg.IngestMode(), graph.Lenient; got != want {
		t.Errorf("unexpected ingest mode, wanted %v, got %v", want, got)
	}
}

func TestUtilsConfig_NewConfigRejectsInvalidValues(t *testing.T) {
	tests := map[string]map[string]string{
		"inverted orders": {MinOrderFlag.Name: "9", MaxOrderFlag.Name: "4"},
		"no trials":       {TrialsFlag.Name: "0"},
		"no timeout":      {TimeoutFlag.Name: "0"},
		"unknown ingest":  {IngestFlag.Name: "sloppy"},
		"missing engine":  {EngineRunFlag.Name: ""},
	}
	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			values[WorkDirFlag.Name] = t.TempDir()
			if _, err := NewConfig(prepareMockCliContext(t, values)); err == nil {
				t.Errorf("config should be rejected")
			}
		})
	}
}

func TestUtilsConfig_NegativeSeedIsRandomized(t *testing.T) {
	ctx := prepareMockCliContext(t, map[string]string{
		RandomSeedFlag.Name: "-1",
		WorkDirFlag.Name:    t.TempDir(),
	})
	cfg, err := NewConfig(ctx)
	if err != nil {
		t.Fatalf("cannot create config: %v", err)
	}
	if cfg.RandomSeed < 0 {
		t.Errorf("seed was not randomized: %d", cfg.RandomSeed)
	}
}

func TestUtilsConfig_MissingWorkDirIsCreated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	cfg, err := NewConfig(prepareMockCliContext(t, map[string]string{WorkDirFlag.Name: dir}))
	if err != nil {
		t.Fatalf("cannot create config: %v", err)
	}
	if _, err := os.Stat(cfg.WorkDir); err != nil {
		t.Errorf("work directory was not created: %v", err)
	}
}

func TestUtilsConfig_CreateConfigFromFlagsReportsDeclaredFlags(t *testing.T) {
	ctx := prepareMockCliContext(t, nil)
	cfg, specified, err := createConfigFromFlags(ctx)
	if err != nil {
		t.Fatalf("cannot create config: %v", err)
	}
	if !specified[MinOrderFlag.Name] {
		t.Errorf("--%v is declared by the command", MinOrderFlag.Name)
	}
	if specified[HostOrderFlag.Name] {
		t.Errorf("--%v is not declared by the command", HostOrderFlag.Name)
	}
	if got, want := cfg.HostOrder, HostOrderFlag.Value; got != want {
		t.Errorf("unexpected host order, wanted %v, got %v", want, got)
	}
}
