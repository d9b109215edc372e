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

package driver

import (
	"fmt"
	"time"
)

// Kind classifies the result of a single engine evaluation.
type Kind int

const (
	Correct Kind = iota
	WrongAnswer
	Timeout
	Crash
	EngineError
)

func (k Kind) String() string {
	switch k {
	case Correct:
		return "CORRECT"
	case WrongAnswer:
		return "WRONG_ANSWER"
	case Timeout:
		return "TIMEOUT"
	case Crash:
		return "CRASH"
	case EngineError:
		return "ENGINE_ERROR"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ExitCode is the process exit code of a run halted with this kind.
func (k Kind) ExitCode() int {
	switch k {
	case Correct:
		return 0
	case WrongAnswer:
		return 3
	case Timeout:
		return 124
	case Crash:
		return 139
	case EngineError:
		return 4
	}
	return 1
}

// Stages reported by engine errors.
const (
	StageSetup   = "setup"
	StagePrep    = "prep"
	StageCodegen = "codegen"
	StageRunner  = "runner"
	StageParse   = "parse"

	// StageCodegenEnv marks code generation failing on its own file system
	// layout rather than on the pattern.
	StageCodegenEnv = "codegen-env"
)

// Outcome is the classified result of one engine evaluation.
type Outcome struct {
	Kind Kind
	// Expected is the ground truth, nil if the oracle could not provide one.
	Expected *int64
	// Got is the count reported by the engine; valid for Correct and WrongAnswer.
	Got int64
	// Stage names the failing phase of timeouts, crashes and engine errors.
	Stage   string
	Message string
	Elapsed time.Duration
}

// Classify compares the engine result with the expected count. An unknown
// expected count only checks that the engine produced a result.
func Classify(expected *int64, got int64) Outcome {
	if expected != nil && *expected != got {
		return Outcome{Kind: WrongAnswer, Expected: expected, Got: got}
	}
	return Outcome{Kind: Correct, Expected: expected, Got: got}
}

// EngineFailure creates an ENGINE_ERROR outcome for the given stage.
func EngineFailure(stage, message string) Outcome {
	return Outcome{Kind: EngineError, Stage: stage, Message: message}
}

// Passed reports whether the outcome allows the sweep to advance.
func (o Outcome) Passed() bool {
	return o.Kind == Correct
}

// Verified reports whether the result was checked against a ground truth.
func (o Outcome) Verified() bool {
	return o.Expected != nil && (o.Kind == Correct || o.Kind == WrongAnswer)
}

func (o Outcome) String() string {
	switch o.Kind {
	case Correct:
		if o.Expected == nil {
			return fmt.Sprintf("CORRECT(got=%d, unverified)", o.Got)
		}
		return fmt.Sprintf("CORRECT(%d)", o.Got)
	case WrongAnswer:
		return fmt.Sprintf("WRONG_ANSWER(expected=%d, got=%d)", *o.Expected, o.Got)
	case Timeout:
		return fmt.Sprintf("TIMEOUT(%v after %v)", o.Stage, o.Elapsed)
	case Crash, EngineError:
		return fmt.Sprintf("%v(%v, %v)", o.Kind, o.Stage, abbreviate(o.Message, 200))
	}
	return o.Kind.String()
}

// abbreviate shortens s to its last n bytes, where crash reports usually end.
func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
