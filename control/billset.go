package control

import (
	"context"

	"github.com/go-bnr/bnr/domain"
	"github.com/go-bnr/bnr/xfs"
)

// billsetModuleClass is the module-class argument used to request billset
// identification from module.getidentification, distinct from
// MainModuleClass. The closed method-name set (spec.md §6) allocates no
// dedicated wire name to query_billset_ids; module.getidentification is
// the one call in the set already parameterised by a module class, so
// this driver reuses it rather than inventing an unrecognised wire
// method.
const billsetModuleClass = MainModuleClass + 1

// QueryBillsetIDs requests the installed billset list via
// module.getidentification(billsetModuleClass). Firmware older than
// 1.12.0 doesn't support this query and responds with a fault; since no
// single fault code in the registry is documented as meaning
// specifically "not supported" for this call, any fault response here is
// surfaced as KindNotSupported rather than classified through the usual
// Xfs/Bnr fault-code mapping (spec.md §4.5: "older firmware responds
// with a fault meaning 'not supported', which is surfaced to the caller
// as NotSupported, not a generic failure").
func (c *Controller) QueryBillsetIDs(ctx context.Context) (domain.BillsetIDList, error) {
	call := xfs.MethodCall{Name: xfs.MethodGetIdentification, Params: xfs.Params{
		Params: []xfs.Param{{Value: xfs.Int(billsetModuleClass)}},
	}}
	resp, err := c.doCall(ctx, call)
	if err != nil {
		return domain.BillsetIDList{}, err
	}
	if resp.IsFault() {
		return domain.BillsetIDList{}, newError(KindNotSupported, "QueryBillsetIDs", notSupportedError{fault: resp.Fault()})
	}
	return decodeFirstParam("QueryBillsetIDs", resp, domain.BillsetIDListFromValue)
}

type notSupportedError struct{ fault xfs.Fault }

func (e notSupportedError) Error() string {
	return "query_billset_ids not supported by this firmware: " + e.fault.String
}
