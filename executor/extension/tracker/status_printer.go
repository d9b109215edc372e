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
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Fantom-foundation/graph-oracle/driver"
	"github.com/Fantom-foundation/graph-oracle/executor"
	"github.com/Fantom-foundation/graph-oracle/executor/extension"
	"github.com/fatih/color"
)

// MakeStatusPrinter creates an extension printing one status line per trial
// and an ADVANCE line for every point all trials of which passed.
func MakeStatusPrinter() executor.Extension {
	return makeStatusPrinter(os.Stdout)
}

func makeStatusPrinter(w io.Writer) *statusPrinter {
	return &statusPrinter{
		out:     w,
		bold:    color.New(color.Bold).SprintfFunc(),
		passed:  color.New(color.FgGreen).SprintFunc(),
		unknown: color.New(color.FgYellow).SprintFunc(),
		failed:  color.New(color.FgRed, color.Bold).SprintFunc(),
	}
}

type statusPrinter struct {
	extension.NilExtension
	out                     io.Writer
	bold                    func(format string, a ...interface{}) string
	passed, unknown, failed func(a ...interface{}) string
	trials, passedTrials    int
}

func (p *statusPrinter) PrePoint(state executor.State, _ *executor.Context) error {
	point := state.Point
	p.trials = 0
	p.passedTrials = 0
	output(p.out, "%s\n", p.bold("=== %v: %d vertices, %d edges, pattern %v ===", point.Name(), point.Order, point.TargetEdges, point.Pattern.Name))
	return nil
}

func (p *statusPrinter) PostTrial(state executor.State, ctx *executor.Context) error {
	p.trials++
	out := ctx.Outcome

	var status string
	switch {
	case out.Passed() && out.Verified():
		p.passedTrials++
		status = p.passed(out)
	case out.Passed():
		p.passedTrials++
		status = p.unknown(out)
	default:
		status = p.failed(out)
	}

	if ctx.Case == nil {
		output(p.out, "  trial %d: %s\n", state.Trial, status)
		return nil
	}
	tc := ctx.Case
	edges := 0
	if tc.Host != nil {
		edges = tc.Host.NumEdges()
	}
	output(p.out, "  %v: seed=%d edges=%d fingerprint=0x%02x %s in %v\n",
		tc.Name, tc.Seed, edges, tc.Fingerprint, status, out.Elapsed.Round(timeResolution))
	if out.Kind != driver.Correct && out.Kind != driver.WrongAnswer && out.Message != "" {
		output(p.out, "    %v\n", out.Message)
	}
	return nil
}

func (p *statusPrinter) PostPoint(state executor.State, _ *executor.Context) error {
	output(p.out, "%s %v: %d/%d trials passed\n", p.passed("ADVANCE"), state.Point.Name(), p.passedTrials, p.trials)
	return nil
}

// output the given message with formatting.
func output(w io.Writer, format string, a ...any) {
	_, err := fmt.Fprintf(w, format, a...)
	if err != nil {
		log.Println("output error", err.Error())
	}
}
