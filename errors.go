package puflib

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ainfosec/PUFlib/internal/diag"
)

// ErrorKind categorizes the fallible-operation outcomes spec'd for this
// library. Callers that need to distinguish, say, user cancellation from a
// system I/O fault should use errors.As against *Error and switch on Kind.
type ErrorKind string

const (
	// KindNotFound covers an unknown module name or a missing artifact
	// where one was expected.
	KindNotFound ErrorKind = "not_found"
	// KindAlreadyExists covers creating an artifact that is already
	// present, outside of the documented lifecycle no-op cases.
	KindAlreadyExists ErrorKind = "already_exists"
	// KindInconsistentState covers both an enabled and a disabled artifact
	// existing for the same module at once.
	KindInconsistentState ErrorKind = "inconsistent_state"
	// KindIoFailure covers filesystem and allocation failures.
	KindIoFailure ErrorKind = "io_failure"
	// KindMalformedBlob covers a sealed blob whose header is missing,
	// short, or unterminated.
	KindMalformedBlob ErrorKind = "malformed_blob"
	// KindUserCanceled covers a query handler that returned the
	// cancellation marker (errno-analog: no underlying system error).
	KindUserCanceled ErrorKind = "user_canceled"
	// KindUnsupportedHardware covers a module whose IsHWSupported refused
	// to provision.
	KindUnsupportedHardware ErrorKind = "unsupported_hardware"
)

// Error is the tagged error value returned by every fallible operation in
// this package. It plays the role the C implementation gave to a bool
// return plus errno: the Kind carries the category, and Err (when present)
// carries the underlying cause.
type Error struct {
	Kind   ErrorKind
	Op     string
	Module string
	Err    error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Module != "" {
		msg = msg + " (" + e.Module + ")"
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds the tagged error and, for kinds that represent an
// unexpected fault rather than a documented outcome (I/O failure,
// inconsistent on-disk state), mirrors it to the diagnostic logger. This is
// deliberately narrower than every *Error constructed: KindNotFound,
// KindAlreadyExists, KindUserCanceled, KindMalformedBlob, and
// KindUnsupportedHardware are routine, spec'd outcomes that the caller
// already receives as the returned error, and logging them here too would
// just be noise in the diagnostic sink.
func newError(kind ErrorKind, op, module string, err error) *Error {
	e := &Error{Kind: kind, Op: op, Module: module, Err: err}
	switch kind {
	case KindIoFailure, KindInconsistentState:
		diag.L().Debug("puflib fault",
			zap.String("kind", string(kind)),
			zap.String("op", op),
			zap.String("module", module),
			zap.Error(err))
	}
	return e
}

// IsUserCanceled reports whether err represents a query handler
// cancellation, as opposed to a system error. This distinction must survive
// error wrapping (spec.md §7/§8 property 7).
func IsUserCanceled(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindUserCanceled
}

// KindOf extracts the ErrorKind from err, if any *Error is present in its
// chain. The second return is false for errors not produced by this
// package.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
