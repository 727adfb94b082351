package control

import (
	"context"

	"github.com/go-bnr/bnr/domain"
	"github.com/go-bnr/bnr/xfs"
)

// GetStatus sends bnr.getstatus and decodes a CdrStatus.
func (c *Controller) GetStatus(ctx context.Context) (domain.CdrStatus, error) {
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodGetStatus))
	if err != nil {
		return domain.CdrStatus{}, err
	}
	if resp.IsFault() {
		return domain.CdrStatus{}, faultError("GetStatus", resp.Fault())
	}
	return decodeFirstParam("GetStatus", resp, domain.CdrStatusFromValue)
}

// GetCapabilities reads the device's capabilities. The wire protocol
// allocates only one method name to capabilities, bnr.setcapabilities
// (spec.md §6's closed method-name set); this driver follows the
// ConfigureCashUnit/UpdateCashUnit precedent of pairing one "set" name
// with an implicit query form and sends bnr.setcapabilities with an
// empty params list to request the full Capabilities back, never writing
// anything in that call.
func (c *Controller) GetCapabilities(ctx context.Context) (domain.Capabilities, error) {
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodSetCapabilities))
	if err != nil {
		return domain.Capabilities{}, err
	}
	if resp.IsFault() {
		return domain.Capabilities{}, faultError("GetCapabilities", resp.Fault())
	}
	return decodeFirstParam("GetCapabilities", resp, domain.CapabilitiesFromValue)
}

// SetCapabilities sends bnr.setcapabilities, writing only the eight
// writable fields of caps (spec.md §4.5: "writes only the eight writable
// fields").
func (c *Controller) SetCapabilities(ctx context.Context, caps domain.Capabilities) error {
	call := xfs.MethodCall{Name: xfs.MethodSetCapabilities, Params: xfs.Params{
		Params: []xfs.Param{{Value: caps.WritableValue()}},
	}}
	resp, err := c.doCall(ctx, call)
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("SetCapabilities", resp.Fault())
	}
	return nil
}

// QueryCashUnit sends bnr.querycashunit and decodes a CashUnit. On
// return, each LogicalCashUnit's backing PhysicalCashUnit can be looked
// up with CashUnit.PhysicalUnit (spec.md §4.5: "rebuild each Logical
// unit's physical-unit reference by matching unit-ids"). A Logical unit
// whose PhysicalCuIndex matches no Physical unit does not fail the
// decode (spec.md §8 scenario 4: "decode succeeds, the reference field
// is marked absent"); CashUnit.Validate surfaces it, logged here so a
// dangling reference is visible without every caller remembering to
// call Validate itself.
func (c *Controller) QueryCashUnit(ctx context.Context) (domain.CashUnit, error) {
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodQueryCashUnit))
	if err != nil {
		return domain.CashUnit{}, err
	}
	if resp.IsFault() {
		return domain.CashUnit{}, faultError("QueryCashUnit", resp.Fault())
	}
	cu, err := decodeFirstParam("QueryCashUnit", resp, domain.CashUnitFromValue)
	if err != nil {
		return cu, err
	}
	for _, problem := range cu.Validate() {
		c.log.Warn("bnr: control: querycashunit: %v", problem)
	}
	return cu, nil
}

// QueryDenominations sends bnr.configurecashunit with no parameters,
// the query form of the ConfigureCashUnit/UpdateCashUnit pair (see
// UpdateDenominations), and decodes the device's current denomination
// assignment.
func (c *Controller) QueryDenominations(ctx context.Context) (domain.Denomination, error) {
	resp, err := c.doCall(ctx, xfs.NewMethodCall(xfs.MethodConfigureCashUnit))
	if err != nil {
		return domain.Denomination{}, err
	}
	if resp.IsFault() {
		return domain.Denomination{}, faultError("QueryDenominations", resp.Fault())
	}
	return decodeFirstParam("QueryDenominations", resp, domain.DenominationFromValue)
}

// UpdateDenominations sends bnr.updatecashunit with the given
// denomination list, writing which cash types each cash unit accepts.
func (c *Controller) UpdateDenominations(ctx context.Context, d domain.Denomination) error {
	call := xfs.MethodCall{Name: xfs.MethodUpdateCashUnit, Params: xfs.Params{
		Params: []xfs.Param{{Value: d.Value()}},
	}}
	resp, err := c.doCall(ctx, call)
	if err != nil {
		return err
	}
	if resp.IsFault() {
		return faultError("UpdateDenominations", resp.Fault())
	}
	return nil
}

// decodeFirstParam decodes resp's first return parameter with decode,
// wrapping a missing parameter or a decode failure as a Kind Parsing
// control error.
func decodeFirstParam[T any](op string, resp xfs.MethodResponse, decode func(xfs.Value) (T, error)) (T, error) {
	var zero T
	params := resp.Params().Params
	if len(params) < 1 {
		return zero, newError(KindParsing, op, errMissingReturnValue)
	}
	v, err := decode(params[0].Value)
	if err != nil {
		return zero, newError(KindParsing, op, err)
	}
	return v, nil
}

type missingReturnValueError struct{}

func (missingReturnValueError) Error() string { return "response carries no return value" }

var errMissingReturnValue = missingReturnValueError{}
