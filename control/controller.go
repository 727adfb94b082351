package control

import (
	"context"
	"sync"
	"time"

	"github.com/go-bnr/bnr/clog"
	"github.com/go-bnr/bnr/domain"
	"github.com/go-bnr/bnr/tracestore"
	"github.com/go-bnr/bnr/transport"
	"github.com/go-bnr/bnr/xfs"
)

// Controller is the Transaction Controller (spec.md §4.5): a typed,
// stateful wrapper around a transport.Transport that builds requests,
// interprets responses, and enforces the cash-in and dispense/present
// state machines locally before any wire traffic is sent.
//
// A Controller is not safe for concurrent use by multiple goroutines
// beyond what transport.Session.Call itself serialises; callers issue one
// controller operation at a time, matching spec.md §5's single-track
// session model.
type Controller struct {
	tp  *transport.Transport
	log clog.Clog

	// Deadline is the read deadline applied to every call this Controller
	// issues. Zero means transport.DefaultDeadline; set from
	// config.Config.RequestDeadline before Open to override it.
	Deadline time.Duration

	mu            sync.Mutex
	cashInState   CashInState
	dispenseState DispenseState

	tracer    *tracestore.Store
	sessionID string
}

// WithTrace attaches an optional tracestore.Store: every call this
// Controller issues from this point on is recorded under sessionID,
// alongside its response or fault, for offline support diagnostics. A nil
// store (the default) disables tracing entirely with no extra cost beyond
// the one nil check doCall already makes.
func (c *Controller) WithTrace(store *tracestore.Store, sessionID string) {
	c.tracer = store
	c.sessionID = sessionID
}

// MainModuleClass is the module-class argument passed to
// module.getidentification on Open, grounded in bnr-xfs's
// MAIN_MODULE_CLASS constant (0xE0000).
const MainModuleClass = 0xE0000

// New wraps an already-open transport.Transport in a Controller. Wire the
// transport's Handlers (WithHandlers or the caller's own dispatch), then
// start its callback monitor (transport.Start), before Open is called, so
// no callback is missed.
func New(tp *transport.Transport, log clog.Clog) *Controller {
	return &Controller{tp: tp, log: log}
}

// WithHandlers registers c as the target of the transport's callback
// dispatch: operation-complete callbacks are logged, and status/
// intermediate callbacks are logged and handed to onStatus if non-nil.
// Call before transport.Start.
func (c *Controller) WithHandlers(onStatus func(op domain.CallbackOperationResponse, status domain.CallbackStatusResponse)) {
	h := c.tp.Handlers()
	h.OnOperationComplete = func(op domain.CallbackOperationResponse, status domain.CallbackStatusResponse) {
		c.log.Debug("bnr: control: operation complete op=%d id=%d status=%d result=%d", op.OpID, op.ID, status.Status, status.Result)
	}
	h.OnStatus = func(op domain.CallbackOperationResponse, status domain.CallbackStatusResponse) {
		c.log.Debug("bnr: control: status op=%d id=%d status=%d result=%d", op.OpID, op.ID, status.Status, status.Result)
		if onStatus != nil {
			onStatus(op, status)
		}
	}
}

func (c *Controller) call() *transport.Session { return c.tp.Session }

func (c *Controller) cashIn() CashInState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cashInState
}

func (c *Controller) setCashIn(s CashInState) {
	c.mu.Lock()
	c.cashInState = s
	c.mu.Unlock()
}

func (c *Controller) dispense() DispenseState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispenseState
}

func (c *Controller) setDispense(s DispenseState) {
	c.mu.Lock()
	c.dispenseState = s
	c.mu.Unlock()
}

// deadline returns c.Deadline, falling back to transport.DefaultDeadline
// when unset.
func (c *Controller) deadline() time.Duration {
	if c.Deadline == 0 {
		return transport.DefaultDeadline
	}
	return c.Deadline
}

// doCall is the single funnel every control operation's wire call goes
// through: it issues call, and when a tracestore.Store is attached via
// WithTrace, records the call and its outcome (response or fault) before
// returning. A tracing failure never masks the underlying call's own
// result -- transcript recording is diagnostic, not load-bearing.
func (c *Controller) doCall(ctx context.Context, call xfs.MethodCall) (xfs.MethodResponse, error) {
	if c.tracer != nil {
		if e, err := tracestore.CallEntry(call); err == nil {
			_, _ = c.tracer.Append(c.sessionID, e)
		}
	}
	resp, err := c.call().Call(ctx, call, c.deadline())
	if err != nil {
		return resp, err
	}
	if c.tracer != nil {
		if e, err := tracestore.ResponseEntry(call.Name, resp); err == nil {
			_, _ = c.tracer.Append(c.sessionID, e)
		}
	}
	return resp, err
}
