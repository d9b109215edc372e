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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome_Classify(t *testing.T) {
	three := int64(3)

	out := Classify(&three, 3)
	assert.Equal(t, Correct, out.Kind)
	assert.True(t, out.Passed())

	out = Classify(&three, 0)
	assert.Equal(t, WrongAnswer, out.Kind)
	assert.False(t, out.Passed())

	out = Classify(nil, 12)
	assert.Equal(t, Correct, out.Kind)
	assert.False(t, out.Verified())
}

func TestOutcome_ExitCodesAreDistinct(t *testing.T) {
	codes := map[Kind]int{
		Correct:     0,
		WrongAnswer: 3,
		Timeout:     124,
		Crash:       139,
		EngineError: 4,
	}
	for kind, code := range codes {
		if got := kind.ExitCode(); got != code {
			t.Errorf("wrong exit code for %v, wanted %d, got %d", kind, code, got)
		}
	}
}

func TestOutcome_String(t *testing.T) {
	two := int64(2)
	tests := map[string]Outcome{
		"CORRECT(2)":                     {Kind: Correct, Expected: &two, Got: 2},
		"CORRECT(got=2, unverified)":     {Kind: Correct, Got: 2},
		"TIMEOUT(runner after 1m0s)":     {Kind: Timeout, Stage: StageRunner, Elapsed: time.Minute},
		"ENGINE_ERROR(setup, disk full)": EngineFailure(StageSetup, "disk full"),
		"CRASH(codegen, SIGSEGV)":        {Kind: Crash, Stage: StageCodegen, Message: "SIGSEGV"},
	}
	for want, out := range tests {
		assert.Equal(t, want, out.String())
	}
}

func TestParseResult(t *testing.T) {
	got, err := ParseResult("reading graph\nRESULT=42\n")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	got, err = ParseResult("RESULT=1\n[info] RESULT= 7 matches\n")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got, "the first marker wins")

	got, err = ParseResult("RESULT=1\nRESULT=5\n")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	_, err = ParseResult("0\n")
	assert.Error(t, err)

	_, err = ParseResult("RESULT=many\n")
	assert.Error(t, err)
}

func TestPhaseResult_Crashed(t *testing.T) {
	tests := []struct {
		res  PhaseResult
		want bool
	}{
		{PhaseResult{ExitCode: 1, Stderr: "Bus error"}, true},
		{PhaseResult{ExitCode: 1, Stderr: "*** stack smashing detected ***"}, true},
		{PhaseResult{ExitCode: 134}, true},
		{PhaseResult{ExitCode: 139}, true},
		{PhaseResult{ExitCode: 1, Stderr: "file not found"}, false},
		{PhaseResult{ExitCode: 2}, false},
		{PhaseResult{ExitCode: 1, Stderr: "pattern has 9 vertices, code generation aborted"}, false},
		{PhaseResult{ExitCode: 1, Stderr: "Aborted (core dumped)"}, true},
	}
	for _, test := range tests {
		if got := test.res.Crashed(); got != test.want {
			t.Errorf("crash detection of %+v, wanted %v, got %v", test.res, test.want, got)
		}
	}
}
