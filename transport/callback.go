package transport

import (
	"context"
	"strings"

	"github.com/go-bnr/bnr/clog"
	"github.com/go-bnr/bnr/domain"
	"github.com/go-bnr/bnr/xfs"
)

// OperationCompleteFunc handles a BnrListener.operationCompleteOccured
// callback call: which operation/invocation it answers, and its
// status/result (spec.md §3: "Callback calls carry an OperationId plus
// an IdentificationId ... CallbackStatusResponse carries a status code
// and a result code").
type OperationCompleteFunc func(op domain.CallbackOperationResponse, status domain.CallbackStatusResponse)

// StatusOccurredFunc handles a BnrListener.statusOccured callback call: an
// unsolicited device status change. The device multiplexes both
// "ordinary" status changes and intermediate transaction events (spec.md
// §4.4 names both as distinct dispatch operations) onto this one wire
// method; status carries whichever status or intermediate-event code
// applies, plus the result code spec.md §8 scenario 6 shows being
// delivered alongside it; the control package, which knows the code
// tables, is where that distinction is drawn.
type StatusOccurredFunc func(op domain.CallbackOperationResponse, status domain.CallbackStatusResponse)

// Handlers is the registered callback dispatch table (spec.md §4.4
// "Callback lifecycle"). The zero value has no handlers registered;
// unhandled callbacks are still acknowledged, just not dispatched
// anywhere.
type Handlers struct {
	OnOperationComplete OperationCompleteFunc
	OnStatus            StatusOccurredFunc
}

// monitor is the background task blocking on IN#3 (spec.md §4.4
// "Callback lifecycle"; the original this is grounded on, bnr-xfs/src/
// device_handle/inner.rs, left this as a "FIXME: start a background
// thread to monitor device-sent events" -- this is that background task,
// actually implemented).
type monitor struct {
	ep       Endpoints
	log      clog.Clog
	handlers *Handlers
	cancel   context.CancelFunc
	done     chan struct{}
}

func newMonitor(ep Endpoints, log clog.Clog) *monitor {
	return &monitor{ep: ep, log: log, handlers: &Handlers{}, done: make(chan struct{})}
}

func (m *monitor) start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	go m.run(ctx)
}

func (m *monitor) stop() {
	if m.cancel != nil {
		m.cancel()
		<-m.done
	}
}

func (m *monitor) run(ctx context.Context) {
	defer close(m.done)
	for {
		raw, err := m.ep.ReadCallback(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			m.log.Warn("bnr: callback monitor: read IN#3: %v", err)
			continue
		}
		call, err := xfs.DecodeCall(raw)
		if err != nil {
			m.log.Warn("bnr: callback monitor: decode callback call: %v", err)
			continue
		}
		if !strings.HasPrefix(call.Name.String(), "BnrListener.") {
			m.log.Warn("bnr: callback monitor: unexpected callback method %q", call.Name)
			continue
		}
		m.dispatch(call)
		if err := m.acknowledge(ctx, call); err != nil {
			m.log.Warn("bnr: callback monitor: write OUT#4 ack for %s: %v", call.Name, err)
		}
	}
}

// dispatch runs the registered handler for call's method on the monitor
// goroutine itself (spec.md §4.4: "Handlers run on the monitor task; they
// must not block on further calls to the same transport"). Both callback
// methods carry two struct params: a domain.CallbackOperationResponse
// (which operation/invocation this is) followed by a
// domain.CallbackStatusResponse (its status and result code); a
// malformed or missing param is logged and the callback dropped rather
// than dispatched with zero values.
func (m *monitor) dispatch(call xfs.MethodCall) {
	if call.Name != xfs.MethodOperationCompleteOccurred && call.Name != xfs.MethodStatusOccurred {
		return
	}
	params := call.Params.Params
	if len(params) < 2 {
		m.log.Warn("bnr: callback monitor: %s: want 2 params, got %d", call.Name, len(params))
		return
	}
	op, err := domain.CallbackOperationResponseFromValue(params[0].Value)
	if err != nil {
		m.log.Warn("bnr: callback monitor: %s: decode operation: %v", call.Name, err)
		return
	}
	status, err := domain.CallbackStatusResponseFromValue(params[1].Value)
	if err != nil {
		m.log.Warn("bnr: callback monitor: %s: decode status: %v", call.Name, err)
		return
	}
	switch call.Name {
	case xfs.MethodOperationCompleteOccurred:
		if m.handlers.OnOperationComplete != nil {
			m.handlers.OnOperationComplete(op, status)
		}
	case xfs.MethodStatusOccurred:
		if m.handlers.OnStatus != nil {
			m.handlers.OnStatus(op, status)
		}
	}
}

// acknowledge writes an empty-params MethodResponse to OUT#4, per
// spec.md §4.4.
func (m *monitor) acknowledge(ctx context.Context, call xfs.MethodCall) error {
	resp := xfs.ResponseParams(xfs.Params{})
	data, err := xfs.EncodeResponse(resp)
	if err != nil {
		return err
	}
	return m.ep.WriteCallbackResponse(ctx, data)
}
