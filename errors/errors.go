// Package errors provides error handling for japanesereflect.
//
// This package re-exports github.com/cockroachdb/errors, providing stack
// traces, wrapping, hints and details. The domain sentinels live next to the
// code that returns them (detect, feature, reflection); this package only
// carries the shared vocabulary.
//
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// ErrPanic marks errors recovered from a panicking callback.
var ErrPanic = New("recovered panic")

// PCall runs f and turns a panic into an error marked with ErrPanic,
// whatever the panic value.
func PCall(f func() error) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		switch v := rec.(type) {
		case error:
			err = Mark(Wrap(v, "panic"), ErrPanic)
		case string:
			err = Mark(New(v), ErrPanic)
		default:
			err = Mark(Newf("panic: %v", rec), ErrPanic)
		}
	}()
	return f()
}
