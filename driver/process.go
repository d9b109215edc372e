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
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// waitDelay bounds how long output pipes held open by killed descendants
// may delay the return of a phase.
const waitDelay = 2 * time.Second

var crashSignatures = []string{
	"segmentation fault",
	"sigsegv",
	"core dumped",
	"bus error",
	"stack smashing",
	"aborted (core dumped)",
}

var crashSignals = []syscall.Signal{
	unix.SIGSEGV,
	unix.SIGBUS,
	unix.SIGABRT,
	unix.SIGILL,
	unix.SIGFPE,
}

// PhaseResult captures a single child process invocation.
type PhaseResult struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	// Signal terminating the child, 0 if it exited normally.
	Signal   syscall.Signal
	Elapsed  time.Duration
	TimedOut bool
	// Cancelled is set if the caller's context ended the phase.
	Cancelled bool
	// Err is set if the child could not be started or was cancelled.
	Err error
}

// Crashed reports whether the child died from a fault signal, its exit code
// encodes one (128+signal, as reported by shells) or stderr carries a
// crash signature.
func (r PhaseResult) Crashed() bool {
	for _, sig := range crashSignals {
		if r.Signal == sig || r.ExitCode == 128+int(sig) {
			return true
		}
	}
	stderr := strings.ToLower(r.Stderr)
	for _, signature := range crashSignatures {
		if strings.Contains(stderr, signature) {
			return true
		}
	}
	return false
}

// runProcess runs name with args in dir under the given timeout. The child
// is started in its own process group which is killed as a whole on expiry,
// so no descendant survives the phase. A non-positive timeout disables the
// limit.
func runProcess(ctx context.Context, timeout time.Duration, dir string, name string, args ...string) PhaseResult {
	res := PhaseResult{Args: append([]string{name}, args...)}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return killGroup(cmd.Process.Pid)
	}
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err := cmd.Run()
	res.Elapsed = time.Since(start)
	if cmd.Process != nil {
		// reap descendants left behind by a child which exited on its own
		_ = killGroup(cmd.Process.Pid)
	}
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		res.TimedOut = true
		res.Elapsed = timeout
		res.ExitCode = -1
		return res
	}
	if ctx.Err() != nil {
		res.Cancelled = true
		res.Err = ctx.Err()
		res.ExitCode = -1
		return res
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = 0
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			res.Signal = status.Signal()
		}
	default:
		res.Err = err
		res.ExitCode = -1
	}
	return res
}

func killGroup(pid int) error {
	err := unix.Kill(-pid, unix.SIGKILL)
	if errors.Is(err, unix.ESRCH) {
		return nil
	}
	return err
}
