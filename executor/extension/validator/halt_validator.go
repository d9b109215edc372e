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

package validator

import (
	"fmt"

	"github.com/Fantom-foundation/graph-oracle/driver"
	"github.com/Fantom-foundation/graph-oracle/executor"
	"github.com/Fantom-foundation/graph-oracle/executor/extension"
	"github.com/Fantom-foundation/graph-oracle/logger"
	"github.com/Fantom-foundation/graph-oracle/utils"
)

// HaltError stops a sweep at the first trial the engine did not pass.
type HaltError struct {
	Case    *executor.TestCase
	Outcome driver.Outcome
}

func (e *HaltError) Error() string {
	if e.Case == nil {
		return fmt.Sprintf("halted; %v", e.Outcome)
	}
	return fmt.Sprintf("halted at %v; %v", e.Case.Name, e.Outcome)
}

// ExitCode is the process exit code reporting the halting outcome.
func (e *HaltError) ExitCode() int {
	return e.Outcome.Kind.ExitCode()
}

// MakeHaltValidator creates an extension halting the sweep on wrong answers,
// crashes, timeouts and, unless configured otherwise, engine errors.
func MakeHaltValidator(cfg *utils.Config) executor.Extension {
	return makeHaltValidator(cfg, logger.NewLogger(cfg.LogLevel, "Halt-Validator"))
}

func makeHaltValidator(cfg *utils.Config, log logger.Logger) *haltValidator {
	return &haltValidator{cfg: cfg, log: log}
}

type haltValidator struct {
	extension.NilExtension
	cfg     *utils.Config
	log     logger.Logger
	skipped int
}

func (v *haltValidator) PostTrial(_ executor.State, ctx *executor.Context) error {
	out := ctx.Outcome
	if out.Passed() {
		return nil
	}

	name := "unknown trial"
	if ctx.Case != nil {
		name = ctx.Case.Name
	}

	if out.Kind == driver.EngineError && v.cfg.ContinueOnEngineError {
		v.skipped++
		v.log.Warningf("Skipping %v; %v", name, out)
		return nil
	}

	v.log.Errorf("Trial %v failed; %v", name, out)
	return &HaltError{Case: ctx.Case, Outcome: out}
}

func (v *haltValidator) PostRun(executor.State, *executor.Context, error) error {
	if v.skipped > 0 {
		v.log.Warningf("%d trial(s) ended with an engine error and were skipped", v.skipped)
	}
	return nil
}
