// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

import "github.com/pkg/errors"

// ErrorCode is a wire-stable error code returned by every public RAPI
// entry point. Callers may persist these values, so they must never be
// renumbered.
type ErrorCode int

// Error code constants. These mirror the RAPI_* constants of the
// reference C implementation and must remain numerically stable.
const (
	NoError         ErrorCode = 0
	GenericError    ErrorCode = -1
	OpNotSupported  ErrorCode = -20
	MemoryError     ErrorCode = -30
	ParamError      ErrorCode = -40
	TypeError       ErrorCode = -50
)

// String returns the symbolic name of the error code, e.g. "GENERIC_ERROR".
func (e ErrorCode) String() string {
	switch e {
	case NoError:
		return "NO_ERROR"
	case GenericError:
		return "GENERIC_ERROR"
	case OpNotSupported:
		return "OP_NOT_SUPPORTED_ERROR"
	case MemoryError:
		return "MEMORY_ERROR"
	case ParamError:
		return "PARAM_ERROR"
	case TypeError:
		return "TYPE_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Error implements the error interface so an ErrorCode can be returned
// and compared directly, e.g. `if err == rapi.ParamError`.
func (e ErrorCode) Error() string { return e.String() }

// Err wraps an ErrorCode with a causal chain, preserving the stable code
// a caller sees via errors.Is(err, code) while keeping a human-readable
// trail for logs. The core never lets the cause escape as the sole
// error value: Code is always checked first.
type Err struct {
	Code  ErrorCode
	cause error
}

// Wrap builds an *Err from a lower-level cause, attaching a stack trace
// via github.com/pkg/errors so the cause can be inspected in logs without
// changing the code a caller observes.
func Wrap(code ErrorCode, cause error, msg string) *Err {
	if cause == nil {
		return &Err{Code: code, cause: errors.New(msg)}
	}
	return &Err{Code: code, cause: errors.Wrap(cause, msg)}
}

// Errorf builds an *Err with a formatted message and no prior cause.
func Errorf(code ErrorCode, format string, args ...interface{}) *Err {
	return &Err{Code: code, cause: errors.Errorf(format, args...)}
}

func (e *Err) Error() string {
	if e.cause == nil {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.cause.Error()
}

// Unwrap exposes the causal chain for errors.Is/errors.As.
func (e *Err) Unwrap() error { return e.cause }

// Is reports whether target is the same ErrorCode, so that
// errors.Is(err, rapi.ParamError) works regardless of wrapping.
func (e *Err) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.Code
}
