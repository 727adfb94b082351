package control

import (
	"context"

	"github.com/go-bnr/bnr/domain"
	"github.com/go-bnr/bnr/xfs"
)

// Denominate sends bnr.denominate, asking the device to plan how to
// satisfy req without moving any notes. A later Dispense with the same
// request executes the plan (spec.md §4.5 "Dispense/present state
// machine").
func (c *Controller) Denominate(ctx context.Context, req domain.DispenseRequest) error {
	if err := requireDispenseState("Denominate", c.dispense(), DispenseIdle); err != nil {
		return err
	}
	call := xfs.MethodCall{Name: xfs.MethodDenominate, Params: xfs.Params{
		Params: []xfs.Param{{Value: req.Value()}},
	}}
	resp, err := c.doCall(ctx, call)
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("Denominate", resp.Fault())
	}
	c.setDispense(DispenseDenominated)
	return nil
}

// Dispense sends bnr.dispense, executing a plan already built by
// Denominate. If the device's capabilities report AutoPresent false, the
// dispensed notes rest in the bundler and the caller must call Present to
// move them to the outlet; otherwise the device presents them itself and
// the caller should still call Present to observe the transition, since
// this driver does not itself inspect Capabilities here.
func (c *Controller) Dispense(ctx context.Context, req domain.DispenseRequest) error {
	if err := requireDispenseState("Dispense", c.dispense(), DispenseDenominated); err != nil {
		return err
	}
	call := xfs.MethodCall{Name: xfs.MethodDispense, Params: xfs.Params{
		Params: []xfs.Param{{Value: req.Value()}},
	}}
	resp, err := c.doCall(ctx, call)
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("Dispense", resp.Fault())
	}
	c.setDispense(DispenseDispensed)
	return nil
}

// Present sends bnr.present, moving dispensed notes from the bundler to
// the outlet for the customer to take.
func (c *Controller) Present(ctx context.Context) error {
	if err := requireDispenseState("Present", c.dispense(), DispenseDispensed); err != nil {
		return err
	}
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodPresent))
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("Present", resp.Fault())
	}
	c.setDispense(DispensePresented)
	return nil
}

// CancelWaitingCashTaken sends bnr.cancelwaitingcashtaken, ending early the
// device's wait for the customer to take presented notes, and resets the
// dispense state machine to Idle.
func (c *Controller) CancelWaitingCashTaken(ctx context.Context) error {
	if err := requireDispenseState("CancelWaitingCashTaken", c.dispense(), DispensePresented); err != nil {
		return err
	}
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodCancelWaitingCashTaken))
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("CancelWaitingCashTaken", resp.Fault())
	}
	c.setDispense(DispenseIdle)
	return nil
}

// Retract sends bnr.retract, pulling notes the customer did not take back
// into storage. Valid in Dispensed (notes still in the bundler) or
// Presented.
func (c *Controller) Retract(ctx context.Context) error {
	if err := requireDispenseState("Retract", c.dispense(), DispenseDispensed, DispensePresented); err != nil {
		return err
	}
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodRetract))
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("Retract", resp.Fault())
	}
	c.setDispense(DispenseIdle)
	return nil
}

// Eject sends bnr.eject, forcing any in-flight notes out of the bezel
// regardless of which dispense state they were in (spec.md §4.5: "forces
// any in-flight notes out of the bezel").
func (c *Controller) Eject(ctx context.Context) error {
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodEject))
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("Eject", resp.Fault())
	}
	c.setDispense(DispenseIdle)
	return nil
}
