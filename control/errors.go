// Package control implements the Transaction Controller (spec.md §4.5):
// session commands, introspection, the cash-in and dispense state
// machines, maintenance, and history, all built on top of transport.
package control

import (
	"fmt"

	"github.com/go-bnr/bnr/fault"
	"github.com/go-bnr/bnr/transport"
	"github.com/go-bnr/bnr/xfs"
)

// Error is an alias for transport.Error: the control package raises the
// same single error type transport does (Kind Bnr, State, NotSupported
// here; Xfs/UsbTransport/Parsing/DateTime originate lower down), so every
// caller compares kinds with one errors.Is pattern regardless of which
// layer raised the error.
type Error = transport.Error

const (
	KindParsing      = transport.KindParsing
	KindXfs          = transport.KindXfs
	KindBnr          = transport.KindBnr
	KindUsbTransport = transport.KindUsbTransport
	KindDateTime     = transport.KindDateTime
	KindState        = transport.KindState
	KindNotSupported = transport.KindNotSupported
)

func newError(kind transport.Kind, op string, err error) *Error {
	return transport.NewError(kind, op, err)
}

// stateError reports a protocol violation caught locally, before any wire
// traffic (spec.md §4.5: "a protocol violation ... fails locally with a
// state error before any wire traffic").
func stateError(op string, format string, args ...any) error {
	return newError(KindState, op, fmt.Errorf(format, args...))
}

// faultError classifies a device fault response per spec.md §7
// "Propagation": a fault whose code is in the generated BnrFault table
// becomes Kind Bnr wrapping the typed fault; an unrecognised code remains
// Kind Xfs with the raw code/string preserved.
func faultError(op string, f xfs.Fault) error {
	bf := fault.FromCode(f.Code)
	if bf.Known() {
		return newError(KindBnr, op, bnrFaultError{fault: bf})
	}
	return newError(KindXfs, op, xfsFaultError{code: f.Code, string: f.String})
}

type bnrFaultError struct{ fault fault.BnrFault }

func (e bnrFaultError) Error() string { return e.fault.String() }

// Fault returns the underlying BnrFault, for callers that want the
// subsystem/severity/corrective-action detail beyond Error().
func (e bnrFaultError) Fault() fault.BnrFault { return e.fault }

type xfsFaultError struct {
	code   int32
	string string
}

func (e xfsFaultError) Error() string {
	return fmt.Sprintf("fault %d: %s", e.code, e.string)
}
