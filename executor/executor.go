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

// Package executor drives a sweep of engine evaluations and notifies
// extensions about its progress.
package executor

//go:generate mockgen -source executor.go -destination executor_mocks.go -package executor

import (
	"context"
	"errors"

	"github.com/Fantom-foundation/graph-oracle/driver"
)

// ----------------------------------------------------------------------------
//                             Interfaces
// ----------------------------------------------------------------------------

// Executor is an entity coordinating the evaluation of the trials of a
// sweep. It implements the decorator pattern, allowing extensions to monitor
// and annotate the execution at various hook-in points.
//
// The execution is strictly sequential and structured as follows:
//
//	PreRun()
//	for each point {
//	   PrePoint()
//	   for each trial {
//	       PreTrial()
//	       Processor.Process(trial)
//	       PostTrial()
//	   }
//	   PostPoint()
//	}
//	PostRun()
//
// Each PreXXX() and PostXXX() is a hook-in point at which extensions may
// track information and/or interfere with the execution. An extension
// halts the sweep by returning an error.
type Executor interface {
	// Run feeds all trials of the provider to the processor and performs the
	// needed call-backs on the provided extensions. If a processor or an
	// extension returns an error, execution stops with the reported error.
	// PreXXX events are delivered to the extensions in the given order, while
	// PostXXX events are delivered in reverse order. If any of the extensions
	// reports an error during processing of an event, the same event is still
	// delivered to the remaining extensions before processing is aborted.
	Run(ctx context.Context, params Params, processor Processor, extensions []Extension) error
}

// NewExecutor creates a new executor based on the given trial provider.
func NewExecutor(provider Provider) Executor {
	return &executor{provider}
}

// Params summarizes input parameters for a run of the executor.
type Params struct {
	// Sweep names the kind of sweep, used in reports.
	Sweep string
}

// Processor is an interface for the entity to which an executor is feeding
// trials to.
type Processor interface {
	// Process builds the test case of the current trial, evaluates it and
	// stores the outcome in the context. Engine failures are outcomes, an
	// error aborts the whole sweep.
	Process(context.Context, State, *Context) error
}

// Extension is an interface for modular annotations to the execution of
// a sweep. During various stages, methods of extensions are called,
// enabling them to monitor and/or interfere with the execution.
type Extension interface {
	// PreRun is called before the first trial, even if there are none. For
	// every run, PreRun is only called once, before any other call-back. If
	// an error is reported, execution will abort after PreRun has been called
	// on all registered Extensions.
	PreRun(State, *Context) error

	// PostRun is guaranteed to be called at the end of each execution. An
	// execution may end successfully, if all trials passed, or in a failure
	// state, in which case the state references the last trial attempted and
	// the third parameter contains the error causing the abort.
	PostRun(State, *Context, error) error

	// PrePoint is called once before the first trial of a sweep point.
	PrePoint(State, *Context) error

	// PostPoint is called once after all trials of a sweep point passed.
	// It is not called for a point at which the sweep halts.
	PostPoint(State, *Context) error

	// PreTrial is called before each trial; the test case is not yet built.
	PreTrial(State, *Context) error

	// PostTrial is called after each trial with the test case and the
	// outcome available in the context.
	PostTrial(State, *Context) error
}

// State summarizes the current state of an execution and is passed to
// Processors and Extensions as an input for their actions.
type State struct {
	// Point is the current sweep point, valid for all call-backs but PreRun.
	Point Point

	// Trial is the index of the current trial within its point. It is only
	// valid for PreTrial, PostTrial, PostPoint and for PostRun in case of an
	// abort.
	Trial int

	// Seed is the generator seed of the current trial.
	Seed int64
}

// Context summarizes context data for the current execution and is passed
// as a mutable object to Processors and Extensions. Either may decide to
// modify its content to implement their respective features.
type Context struct {
	// Case is the test case of the current trial, set by the processor.
	Case *TestCase

	// Outcome is the classified result of the current trial.
	Outcome driver.Outcome

	// Trials counts the trials processed so far.
	Trials int
}

// ----------------------------------------------------------------------------
//                               Implementations
// ----------------------------------------------------------------------------

type executor struct {
	provider Provider
}

func (e *executor) Run(ctx context.Context, params Params, processor Processor, extensions []Extension) (err error) {
	state := State{}
	context := Context{}

	defer func() {
		// Skip PostRun actions if a panic occurred. In such a case there is no guarantee
		// on the state of anything, and PostRun operations may deadlock or cause damage.
		if r := recover(); r != nil {
			panic(r) // just forward
		}
		err = errors.Join(
			err,
			signalPostRun(state, &context, err, extensions),
		)
	}()

	if err := signalPreRun(state, &context, extensions); err != nil {
		return err
	}

	return e.runSequential(ctx, processor, extensions, &state, &context)
}

func (e *executor) runSequential(ctx context.Context, processor Processor, extensions []Extension, state *State, context *Context) error {
	first := true
	err := e.provider.Run(func(info TrialInfo) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if first {
			state.Point = info.Point
			if err := signalPrePoint(*state, context, extensions); err != nil {
				return err
			}
			first = false
		} else if state.Point.Index != info.Point.Index {
			if err := signalPostPoint(*state, context, extensions); err != nil {
				return err
			}
			state.Point = info.Point
			if err := signalPrePoint(*state, context, extensions); err != nil {
				return err
			}
		}
		state.Trial = info.Trial
		state.Seed = info.Seed
		return runTrial(ctx, *state, context, processor, extensions)
	})
	if err != nil {
		return err
	}

	// Finish final point.
	if !first {
		if err := signalPostPoint(*state, context, extensions); err != nil {
			return err
		}
	}

	return nil
}

func runTrial(ctx context.Context, state State, context *Context, processor Processor, extensions []Extension) error {
	context.Case = nil
	context.Outcome = driver.Outcome{}
	if err := signalPreTrial(state, context, extensions); err != nil {
		return err
	}
	if err := processor.Process(ctx, state, context); err != nil {
		return err
	}
	context.Trials++
	if err := signalPostTrial(state, context, extensions); err != nil {
		return err
	}
	return nil
}

func signalPreRun(state State, context *Context, extensions []Extension) error {
	return forEachForward(extensions, func(extension Extension) error {
		return extension.PreRun(state, context)
	})
}

func signalPostRun(state State, context *Context, err error, extensions []Extension) error {
	return forEachBackward(extensions, func(extension Extension) error {
		return extension.PostRun(state, context, err)
	})
}

func signalPrePoint(state State, context *Context, extensions []Extension) error {
	return forEachForward(extensions, func(extension Extension) error {
		return extension.PrePoint(state, context)
	})
}

func signalPostPoint(state State, context *Context, extensions []Extension) error {
	return forEachBackward(extensions, func(extension Extension) error {
		return extension.PostPoint(state, context)
	})
}

func signalPreTrial(state State, context *Context, extensions []Extension) error {
	return forEachForward(extensions, func(extension Extension) error {
		return extension.PreTrial(state, context)
	})
}

func signalPostTrial(state State, context *Context, extensions []Extension) error {
	return forEachBackward(extensions, func(extension Extension) error {
		return extension.PostTrial(state, context)
	})
}

func forEachForward(extensions []Extension, op func(extension Extension) error) error {
	errs := []error{}
	for _, extension := range extensions {
		if err := op(extension); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func forEachBackward(extensions []Extension, op func(extension Extension) error) error {
	errs := []error{}
	for i := len(extensions) - 1; i >= 0; i-- {
		if err := op(extensions[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
