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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Fantom-foundation/graph-oracle/driver"
	"github.com/Fantom-foundation/graph-oracle/executor"
	"github.com/Fantom-foundation/graph-oracle/executor/extension/validator"
	"github.com/Fantom-foundation/graph-oracle/logger"
	"github.com/Fantom-foundation/graph-oracle/oracle"
	"github.com/Fantom-foundation/graph-oracle/report"
	"github.com/Fantom-foundation/graph-oracle/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunReporter_ReportsCompletedRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Infof(gomock.Any(), gomock.Any())

	var buf bytes.Buffer
	cfg := &utils.Config{CommandName: "escalate"}
	ext := makeRunReporter(cfg, &buf, log)

	point := executor.Point{Order: 3, Density: executor.Sparse, TargetEdges: 1, Pattern: oracle.Triangle()}
	count := int64(0)

	require.NoError(t, ext.PreRun(executor.State{}, &executor.Context{}))
	for trial := 0; trial < 3; trial++ {
		ctx := &executor.Context{Case: testCase(point, trial, int64(trial)), Outcome: driver.Classify(&count, 0)}
		require.NoError(t, ext.PostTrial(executor.State{Point: point, Trial: trial}, ctx))
	}
	require.NoError(t, ext.PostRun(executor.State{}, &executor.Context{}, nil))

	assert.Equal(t, report.Completed, ext.run.Status())
	assert.Equal(t, 3, ext.run.Trials())
	assert.Contains(t, buf.String(), "escalate")
	assert.True(t, strings.HasSuffix(buf.String(), "COMPLETED: 3 trials in 1 points passed\n"))
}

func TestRunReporter_HaltStoresArtifacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Infof(gomock.Any(), gomock.Any())
	log.EXPECT().Noticef(gomock.Any(), "5v_dense_1", gomock.Any())

	var buf bytes.Buffer
	cfg := &utils.Config{CommandName: "escalate", Artifacts: t.TempDir()}
	ext := makeRunReporter(cfg, &buf, log)

	point := executor.Point{Order: 5, Density: executor.Dense, TargetEdges: 10, Pattern: oracle.Triangle()}
	tc := testCase(point, 1, 43)
	expected := tc.Host.Triangles()
	out := driver.Classify(&expected, expected+1)

	require.NoError(t, ext.PreRun(executor.State{}, &executor.Context{}))
	require.NoError(t, ext.PostTrial(executor.State{Point: point, Trial: 1}, &executor.Context{Case: tc, Outcome: out}))
	halt := &validator.HaltError{Case: tc, Outcome: out}
	require.NoError(t, ext.PostRun(executor.State{}, &executor.Context{}, halt))

	require.NotNil(t, ext.run.Failure)
	assert.Equal(t, int64(43), ext.run.Failure.Seed)
	assert.Equal(t, "dense", ext.run.Failure.Density)
	assert.Contains(t, buf.String(), "HALTED at 5v_dense_1")

	dir := filepath.Join(cfg.Artifacts, ext.run.ID.String(), "5v_dense_1")
	for _, name := range []string{report.HostDotFile, report.PatternDotFile, report.HostEdgesFile, report.PatternEdgeFile, report.SummaryFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "missing %v", name)
	}
}

func TestRunReporter_AbortIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Infof(gomock.Any(), gomock.Any())

	var buf bytes.Buffer
	ext := makeRunReporter(&utils.Config{CommandName: "patterns"}, &buf, log)

	require.NoError(t, ext.PreRun(executor.State{}, &executor.Context{}))
	require.NoError(t, ext.PostRun(executor.State{}, &executor.Context{}, errors.New("interrupted")))
	assert.Contains(t, buf.String(), "ABORTED after 0 trials; interrupted")
}
