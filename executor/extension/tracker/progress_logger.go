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
	"sync"
	"time"

	"github.com/Fantom-foundation/graph-oracle/executor"
	"github.com/Fantom-foundation/graph-oracle/executor/extension"
	"github.com/Fantom-foundation/graph-oracle/logger"
	"github.com/Fantom-foundation/graph-oracle/utils"
)

const (
	ProgressLoggerDefaultReportFrequency = 15 * time.Second // how often will ticker trigger
	progressLoggerReportFormat           = "Elapsed time: %v; at %v trial %d; %d trials done, ~%.2f trials/min"
	finalSummaryProgressReportFormat     = "Total elapsed time: %v; last point %v; %d trials, ~%.2f trials/min"
	timeResolution                       = time.Millisecond
)

// MakeProgressLogger creates progress logger. It logs a heartbeat with the
// current trial every reportFrequency, so long engine phases stay visible.
// If reportFrequency is 0, it is set to ProgressLoggerDefaultReportFrequency.
func MakeProgressLogger(cfg *utils.Config, reportFrequency time.Duration) executor.Extension {
	if cfg.NoHeartbeatLogging {
		return extension.NilExtension{}
	}

	if reportFrequency <= 0 {
		reportFrequency = ProgressLoggerDefaultReportFrequency
	}

	return makeProgressLogger(cfg, reportFrequency, logger.NewLogger(cfg.LogLevel, "Progress-Logger"))
}

func makeProgressLogger(cfg *utils.Config, reportFrequency time.Duration, logger logger.Logger) *progressLogger {
	return &progressLogger{
		cfg:             cfg,
		log:             logger,
		inputCh:         make(chan progressEvent, 10),
		wg:              new(sync.WaitGroup),
		reportFrequency: reportFrequency,
	}
}

// progressLogger logs human-readable information about progress
// in "heartbeat" depending on reportFrequency.
type progressLogger struct {
	extension.NilExtension
	cfg             *utils.Config
	log             logger.Logger
	inputCh         chan progressEvent
	wg              *sync.WaitGroup
	reportFrequency time.Duration
}

type progressEvent struct {
	state    executor.State
	finished bool
}

// PreRun starts the report goroutine
func (l *progressLogger) PreRun(executor.State, *executor.Context) error {
	l.wg.Add(1)

	// pass the value for thread safety
	go l.startReport(l.reportFrequency)
	return nil
}

// PostRun gracefully closes the Extension and awaits the report goroutine correct closure.
func (l *progressLogger) PostRun(executor.State, *executor.Context, error) error {
	close(l.inputCh)
	l.wg.Wait()

	return nil
}

func (l *progressLogger) PreTrial(state executor.State, _ *executor.Context) error {
	l.inputCh <- progressEvent{state: state}
	return nil
}

func (l *progressLogger) PostTrial(state executor.State, _ *executor.Context) error {
	l.inputCh <- progressEvent{state: state, finished: true}
	return nil
}

// startReport runs in own goroutine. It accepts trial events from the
// executor and reports the current trial every time the ticker fires.
func (l *progressLogger) startReport(reportFrequency time.Duration) {
	defer l.wg.Done()

	var (
		current executor.State
		started bool
		total   int
	)

	start := time.Now()
	ticker := time.NewTicker(reportFrequency)
	defer ticker.Stop()

	defer func() {
		elapsed := time.Since(start)
		l.log.Noticef(finalSummaryProgressReportFormat, elapsed.Round(time.Second), current.Point.Name(), total, perMinute(total, elapsed))
	}()

	for {
		select {
		case in, ok := <-l.inputCh:
			if !ok {
				return
			}
			current = in.state
			started = true
			if in.finished {
				total++
			}

		case now := <-ticker.C:
			// nothing to report before the first trial
			if !started {
				continue
			}
			elapsed := now.Sub(start)
			l.log.Infof(progressLoggerReportFormat, elapsed.Round(time.Second), current.Point.Name(), current.Trial, total, perMinute(total, elapsed))
		}
	}
}

func perMinute(count int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(count) / elapsed.Minutes()
}
