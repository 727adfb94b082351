package control

import (
	"context"

	"github.com/go-bnr/bnr/xfs"
)

// CashInStart sends bnr.cashinstart, moving the cash-in state machine
// from Idle to Starting then, on success, to Accepting (spec.md §4.5).
func (c *Controller) CashInStart(ctx context.Context) error {
	if err := requireCashInState("CashInStart", c.cashIn(), CashInIdle); err != nil {
		return err
	}
	c.setCashIn(CashInStarting)
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodCashInStart))
	if err != nil {
		c.setCashIn(CashInIdle)
		return err
	}
	if resp.IsFault() {
		c.setCashIn(CashInIdle)
		return faultError("CashInStart", resp.Fault())
	}
	c.setCashIn(CashInAccepting)
	return nil
}

// CashIn sends bnr.cashin from the Accepting state. limit optionally
// bounds the accepted amount: nil omits the parameter, meaning "accept
// exactly one note" (a null pointer on the wire); a non-nil zero means
// accept until escrow full or cancelled. currency, if non-empty,
// restricts the accepted currency (spec.md §4.5).
func (c *Controller) CashIn(ctx context.Context, limit *int64, currency string) error {
	if err := requireCashInState("CashIn", c.cashIn(), CashInAccepting); err != nil {
		return err
	}
	var params []xfs.Param
	if limit != nil {
		params = append(params, xfs.Param{Value: xfs.Int(*limit)})
	}
	if currency != "" {
		params = append(params, xfs.Param{Value: xfs.Str(currency)})
	}
	call := xfs.MethodCall{Name: xfs.MethodCashIn, Params: xfs.Params{Params: params}}
	resp, err := c.doCall(ctx, call)
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("CashIn", resp.Fault())
	}
	return nil
}

// CashInEnd sends bnr.cashinend, committing the in-flight
// denomination-accumulator and returning the state machine to Idle. Valid
// from Accepting or Cancelling (spec.md §4.5).
func (c *Controller) CashInEnd(ctx context.Context) error {
	if err := requireCashInState("CashInEnd", c.cashIn(), CashInAccepting, CashInCancelling); err != nil {
		return err
	}
	c.setCashIn(CashInEnding)
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodCashInEnd))
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("CashInEnd", resp.Fault())
	}
	c.setCashIn(CashInIdle)
	return nil
}

// CashInRollback sends bnr.cashinrollback, returning Accepting's
// accumulated notes to the customer and resetting the state machine to
// Idle. Valid from Accepting or Cancelling (spec.md §4.5).
func (c *Controller) CashInRollback(ctx context.Context) error {
	if err := requireCashInState("CashInRollback", c.cashIn(), CashInAccepting, CashInCancelling); err != nil {
		return err
	}
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodCashInRollback))
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("CashInRollback", resp.Fault())
	}
	c.setCashIn(CashInIdle)
	return nil
}
