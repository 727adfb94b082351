package control

import (
	"context"

	"github.com/go-bnr/bnr/xfs"
)

// Empty sends bnr.empty, emptying the named physical cash unit into the
// Cashbox. toFloat only matters for a Recycler: true empties down to the
// unit's low threshold, false to zero; the firmware ignores toFloat for a
// Loader and always empties it fully, so this driver forwards the flag
// unconditionally rather than inspecting the unit's kind itself (spec.md
// §4.5 "empty(pcu_name, to_float)").
func (c *Controller) Empty(ctx context.Context, pcuName string, toFloat bool) error {
	call := xfs.MethodCall{Name: xfs.MethodEmpty, Params: xfs.Params{
		Params: []xfs.Param{
			{Value: xfs.Str(pcuName)},
			{Value: xfs.Bool(toFloat)},
		},
	}}
	resp, err := c.doCall(ctx, call)
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("Empty", resp.Fault())
	}
	return nil
}

// Park sends bnr.park, disabling all modules for service.
func (c *Controller) Park(ctx context.Context) error {
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodPark))
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("Park", resp.Fault())
	}
	return nil
}
