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

// Package report summarizes a sweep for the user and stores the inputs of
// a failing trial for later inspection.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Fantom-foundation/graph-oracle/driver"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Final states of a run.
const (
	Completed = "COMPLETED"
	Halted    = "HALTED"
	Aborted   = "ABORTED"
)

// Run collects the results of all trials of one sweep.
type Run struct {
	ID      uuid.UUID
	Sweep   string
	Started time.Time
	Points  []*PointSummary
	// Failure is the trial the sweep halted at, nil otherwise.
	Failure *Failure
	// Err is the reason of an abort unrelated to the engine.
	Err error
}

// PointSummary aggregates the trials of one sweep point.
type PointSummary struct {
	Name     string
	Pattern  string
	Order    int
	Edges    int
	Trials   int
	Passed   int
	Verified int
	Elapsed  []time.Duration
}

// Failure describes the trial which halted the sweep, including everything
// needed to replay it.
type Failure struct {
	Trial       string
	Order       int
	Density     string
	Edges       int
	Seed        int64
	Pattern     string
	Fingerprint uint8
	Outcome     driver.Outcome
}

func (f *Failure) String() string {
	return fmt.Sprintf("%v: order=%d density=%v edges=%d seed=%d pattern=%v fingerprint=0x%02x %v",
		f.Trial, f.Order, f.Density, f.Edges, f.Seed, f.Pattern, f.Fingerprint, f.Outcome)
}

// NewRun starts the report of a sweep of the given kind.
func NewRun(sweep string) *Run {
	return &Run{
		ID:      uuid.New(),
		Sweep:   sweep,
		Started: time.Now(),
	}
}

// Record adds the outcome of a trial to its point. Trials of a point are
// expected to be recorded consecutively.
func (r *Run) Record(point, pattern string, order, edges int, outcome driver.Outcome) {
	var summary *PointSummary
	if n := len(r.Points); n > 0 && r.Points[n-1].Name == point {
		summary = r.Points[n-1]
	} else {
		summary = &PointSummary{Name: point, Pattern: pattern, Order: order, Edges: edges}
		r.Points = append(r.Points, summary)
	}
	summary.Trials++
	if outcome.Passed() {
		summary.Passed++
	}
	if outcome.Verified() {
		summary.Verified++
	}
	summary.Elapsed = append(summary.Elapsed, outcome.Elapsed)
}

// Halt marks the run as halted at the given trial.
func (r *Run) Halt(failure Failure) {
	r.Failure = &failure
}

// Abort marks the run as ended by an error outside of the engine.
func (r *Run) Abort(err error) {
	r.Err = err
}

// Trials returns the number of recorded trials.
func (r *Run) Trials() int {
	total := 0
	for _, p := range r.Points {
		total += p.Trials
	}
	return total
}

// Status returns the final state of the run.
func (r *Run) Status() string {
	switch {
	case r.Failure != nil:
		return Halted
	case r.Err != nil:
		return Aborted
	default:
		return Completed
	}
}

// Summary is the single line describing how the run ended.
func (r *Run) Summary() string {
	m := message.NewPrinter(language.English)
	switch r.Status() {
	case Halted:
		return fmt.Sprintf("%v at %v", Halted, r.Failure)
	case Aborted:
		return m.Sprintf("%v after %d trials; %v", Aborted, r.Trials(), r.Err)
	default:
		return m.Sprintf("%v: %d trials in %d points passed", Completed, r.Trials(), len(r.Points))
	}
}

// Write sends the table of all points and the summary to w.
func (r *Run) Write(w io.Writer) error {
	m := message.NewPrinter(language.English)

	if _, err := fmt.Fprintf(w, "Run %v (%v), started %v, took %v\n",
		r.ID, r.Sweep, r.Started.Format(time.RFC3339), time.Since(r.Started).Round(time.Millisecond)); err != nil {
		return fmt.Errorf("cannot write report; %w", err)
	}

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Point", "Pattern", "Vertices", "Edges", "Trials", "Passed", "Verified", "Mean", "StdDev", "Max"})
	tbl.SetBorder(true)
	tbl.SetAutoFormatHeaders(false)
	for _, p := range r.Points {
		timing := MakeTiming(p.Elapsed)
		tbl.Append([]string{
			p.Name,
			p.Pattern,
			strconv.Itoa(p.Order),
			m.Sprintf("%d", p.Edges),
			m.Sprintf("%d", p.Trials),
			m.Sprintf("%d", p.Passed),
			m.Sprintf("%d", p.Verified),
			formatDuration(timing.Mean),
			formatDuration(timing.StdDev),
			formatDuration(timing.Max),
		})
	}
	tbl.Render()

	if _, err := fmt.Fprintln(w, r.Summary()); err != nil {
		return fmt.Errorf("cannot write report; %w", err)
	}
	return nil
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
