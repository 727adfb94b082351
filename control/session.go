package control

import (
	"context"
	"time"

	"github.com/go-bnr/bnr/clog"
	"github.com/go-bnr/bnr/domain"
	"github.com/go-bnr/bnr/transport"
	"github.com/go-bnr/bnr/xfs"
)

// Open discovers and claims the BNR over USB, starts the callback monitor,
// and issues module.getidentification (spec.md §4.5 "open": "opens
// transport, reads identification, registers callback handlers, returns
// an opaque device handle"). Unlike the original driver, which discards
// the identification call's result unconditionally, a fault or transport
// error here fails Open: the spec's own wording treats the identification
// read as part of opening, not a best-effort extra. deadline overrides the
// per-call read deadline (config.Config.RequestDeadline); zero keeps
// transport.DefaultDeadline.
func Open(ctx context.Context, cfg transport.Config, sharedSecret []byte, log clog.Clog, deadline time.Duration, onStatus func(op domain.CallbackOperationResponse, status domain.CallbackStatusResponse)) (*Controller, error) {
	tp, err := transport.Open(cfg, sharedSecret, log)
	if err != nil {
		return nil, err
	}
	return openController(ctx, tp, log, deadline, onStatus)
}

// OpenWithEndpoints builds a Controller over an already-constructed
// transport.Endpoints, bypassing USB discovery entirely -- the entry
// point tests use to drive the Controller without real hardware, mirroring
// transport.OpenWithEndpoints.
func OpenWithEndpoints(ctx context.Context, ep transport.Endpoints, log clog.Clog, deadline time.Duration, onStatus func(op domain.CallbackOperationResponse, status domain.CallbackStatusResponse)) (*Controller, error) {
	tp := transport.OpenWithEndpoints(ep, log)
	return openController(ctx, tp, log, deadline, onStatus)
}

func openController(ctx context.Context, tp *transport.Transport, log clog.Clog, deadline time.Duration, onStatus func(op domain.CallbackOperationResponse, status domain.CallbackStatusResponse)) (*Controller, error) {
	c := New(tp, log)
	c.Deadline = deadline
	c.WithHandlers(onStatus)
	tp.Start(ctx)

	call := xfs.MethodCall{Name: xfs.MethodGetIdentification, Params: xfs.Params{
		Params: []xfs.Param{{Value: xfs.Int(MainModuleClass)}},
	}}
	resp, err := c.doCall(ctx, call)
	if err != nil {
		tp.Close()
		return nil, err
	}
	if resp.IsFault() {
		tp.Close()
		return nil, faultError("Open", resp.Fault())
	}
	return c, nil
}

// Reset sends bnr.reset. On success the device renumbers logical cash
// units and clears any in-flight transaction; Reset clears the
// controller's own cash-in/dispense state to match.
func (c *Controller) Reset(ctx context.Context) error {
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodReset))
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("Reset", resp.Fault())
	}
	c.setCashIn(CashInIdle)
	c.setDispense(DispenseIdle)
	return nil
}

// Reboot sends bnr.reboot. The connection is expected to drop; the
// caller must re-open (spec.md §4.5).
func (c *Controller) Reboot(ctx context.Context) error {
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodReboot))
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("Reboot", resp.Fault())
	}
	return nil
}

// Cancel sends bnr.cancel. Per spec.md §7 "Recovery", a fault response
// here (there was nothing to cancel) is tolerated and reported as
// success, matching the original driver's cancel_inner. If a cash-in
// transaction is Accepting, it moves to Cancelling (spec.md §4.5: "From
// Accepting, cancel moves to Cancelling"); CashInRollback or CashInEnd
// resolves it from there.
func (c *Controller) Cancel(ctx context.Context) error {
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodCancel))
	if err != nil {
		return err
	}
	if resp.IsFault() {
		c.log.Warn("bnr: control: cancel faulted, tolerating: %d %s", resp.Fault().Code, resp.Fault().String)
	}
	if c.cashIn() == CashInAccepting {
		c.setCashIn(CashInCancelling)
	}
	return nil
}

// Close sends bnr.stopsession, tolerating a fault the same way Cancel
// does, then releases the transport (spec.md §4.4 "Shutdown").
func (c *Controller) Close(ctx context.Context) error {
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodStopSession))
	if err != nil {
		c.log.Warn("bnr: control: stopsession transport error, closing anyway: %v", err)
	} else if resp.IsFault() {
		c.log.Warn("bnr: control: stopsession faulted, tolerating: %d %s", resp.Fault().Code, resp.Fault().String)
	}
	return c.tp.Close()
}

// GetDateTime sends bnr.getdatetime and returns the device's raw
// dateTime.iso8601 string (spec.md §4.5: "string exchange; device time is
// volatile across power loss").
func (c *Controller) GetDateTime(ctx context.Context) (string, error) {
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodGetDateTime))
	if err != nil {
		return "", err
	}
	if resp.IsFault() {
		return "", faultError("GetDateTime", resp.Fault())
	}
	params := resp.Params().Params
	if len(params) < 1 || params[0].Value.Kind() != xfs.KindDateTime {
		return "", newError(KindParsing, "GetDateTime", errMissingDateTime)
	}
	return params[0].Value.DateTimeString(), nil
}

// SetDateTime sends bnr.setdatetime with the given raw dateTime.iso8601
// string, unparsed: the device owns the format, this driver only carries
// it (spec.md §4.5).
func (c *Controller) SetDateTime(ctx context.Context, value string) error {
	call := xfs.MethodCall{Name: xfs.MethodSetDateTime, Params: xfs.Params{
		Params: []xfs.Param{{Value: xfs.DateTime(value)}},
	}}
	resp, err := c.doCall(ctx, call)
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("SetDateTime", resp.Fault())
	}
	return nil
}

type missingDateTimeError struct{}

func (missingDateTimeError) Error() string { return "response missing a dateTime parameter" }

var errMissingDateTime = missingDateTimeError{}
