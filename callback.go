package puflib

import "sync/atomic"

// StatusLevel is the severity of a status message reported through
// StatusHandler.
type StatusLevel int

const (
	StatusDebug StatusLevel = iota
	StatusInfo
	StatusWarn
	StatusError
)

func (l StatusLevel) String() string {
	switch l {
	case StatusDebug:
		return "debug"
	case StatusInfo:
		return "info"
	case StatusWarn:
		return "warn"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// StatusHandler receives formatted status messages from the reporting
// plane (see report.go). module is nil when the message originates from
// the core rather than a specific module.
type StatusHandler func(module Module, level StatusLevel, formatted string)

// QueryHandler is asked to supply operator-provided data during
// provisioning, keyed by a module-chosen identifier. It returns the value
// and ok=true on success. ok=false with err==nil means the user canceled;
// ok=false with err!=nil means a genuine failure occurred while collecting
// input. Implementations must not block forever and must not re-enter the
// library.
type QueryHandler func(module Module, key, prompt string) (value string, ok bool, err error)

// The callback plane is the only process-wide mutable state besides the
// registry (spec.md §5). Both references are stored behind atomic.Pointer
// so that concurrent SetXHandler calls cannot produce a torn read for a
// reader observing mid-write - matching the "single aligned pointer store"
// requirement in spec.md §4.4, expressed in Go without unsafe.
var (
	statusHandlerPtr atomic.Pointer[StatusHandler]
	queryHandlerPtr  atomic.Pointer[QueryHandler]
)

// SetStatusHandler installs the process-wide status handler, replacing any
// previous one. Pass nil to drop status messages (the default).
func SetStatusHandler(h StatusHandler) {
	if h == nil {
		statusHandlerPtr.Store(nil)
		return
	}
	statusHandlerPtr.Store(&h)
}

// SetQueryHandler installs the process-wide query handler, replacing any
// previous one. Pass nil to fail every query with "unavailable" (the
// default) rather than a system error.
func SetQueryHandler(h QueryHandler) {
	if h == nil {
		queryHandlerPtr.Store(nil)
		return
	}
	queryHandlerPtr.Store(&h)
}

func currentStatusHandler() StatusHandler {
	p := statusHandlerPtr.Load()
	if p == nil {
		return nil
	}
	return *p
}

func currentQueryHandler() QueryHandler {
	p := queryHandlerPtr.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Query asks the installed query handler for a value. It is exposed for
// modules to call during Provision. If no handler is installed, Query
// returns a *Error with KindUserCanceled-adjacent semantics: unavailable is
// reported as cancellation, since there is no operator to ask.
func Query(module Module, key, prompt string) (string, error) {
	h := currentQueryHandler()
	if h == nil {
		// No handler installed: spec'd to fail the same way a user
		// cancellation does, not as a system error, since there is no
		// operator to ask.
		return "", newError(KindUserCanceled, "Query", moduleName(module), nil)
	}

	value, ok, err := h(module, key, prompt)
	if ok {
		return value, nil
	}
	if err != nil {
		return "", newError(KindIoFailure, "Query", moduleName(module), err)
	}
	return "", newError(KindUserCanceled, "Query", moduleName(module), nil)
}

func moduleName(m Module) string {
	if m == nil {
		return ""
	}
	return m.Name()
}
