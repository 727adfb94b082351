// Package transport owns the USB device handle, the four bulk endpoints,
// message framing, and the single-in-flight request/response session. It
// also declares the driver-wide error Kind taxonomy (spec.md §7): the
// control package reuses this same Error type rather than declaring its
// own, so errors.Is/errors.As compose across package boundaries the way
// the teacher's asdu package's sentinel Err* variables compose within a
// single package.
package transport

import "fmt"

// Kind partitions the closed set of error causes the driver as a whole
// distinguishes with errors.Is. Parsing/Xfs/DateTime originate in the xfs
// package and are carried through unchanged; UsbTransport is assigned
// here; Bnr/State/NotSupported are assigned by the control package.
type Kind int

// Defined error kinds.
const (
	KindParsing Kind = iota
	KindXfs
	KindBnr
	KindUsbTransport
	KindDateTime
	KindState
	KindNotSupported
)

func (k Kind) String() string {
	switch k {
	case KindParsing:
		return "parsing"
	case KindXfs:
		return "xfs"
	case KindBnr:
		return "bnr"
	case KindUsbTransport:
		return "usb_transport"
	case KindDateTime:
		return "datetime"
	case KindState:
		return "state"
	case KindNotSupported:
		return "not_supported"
	default:
		return "unknown"
	}
}

// Error wraps a Kind and an underlying cause, the single error type used
// across transport and control. Callers compare kinds with errors.Is and
// unwrap to the underlying cause with errors.As/Unwrap, never by matching
// on Error() text.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// NewError builds an Error. Exported so the control package can raise
// Bnr/State/NotSupported errors without transport needing to know about
// control's concerns.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("bnr: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("bnr: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind, ignoring Op
// and the wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf builds a Kind-only sentinel for errors.Is comparisons, e.g.
// errors.Is(err, transport.KindOf(transport.KindUsbTransport)).
func KindOf(kind Kind) *Error { return &Error{Kind: kind} }
