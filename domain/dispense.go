package domain

import "github.com/go-bnr/bnr/xfs"

// MixNumber selects the mixing algorithm a dispense or denominate request
// uses to choose which notes satisfy a requested amount (bnr-xfs
// currency/mix.rs MixNumber), encoded on the wire as a plain int4 like
// CuKind.
type MixNumber int32

// Defined MixNumber values, matching the device's own wire encoding.
const (
	MixAlgorithm     MixNumber = 6041
	MixTable         MixNumber = 6042
	MixDenom         MixNumber = 6043
	MixMinBills      MixNumber = 6044
	MixAlgorithmBase MixNumber = 6063
	MixOptimumChange MixNumber = 6064
)

// MixNumberFromInt4 decodes an unknown value to MixAlgorithm, the device's
// own default.
func MixNumberFromInt4(v int32) MixNumber {
	switch MixNumber(v) {
	case MixAlgorithm, MixTable, MixDenom, MixMinBills, MixAlgorithmBase, MixOptimumChange:
		return MixNumber(v)
	default:
		return MixAlgorithm
	}
}

func (m MixNumber) String() string {
	switch m {
	case MixTable:
		return "table"
	case MixDenom:
		return "denomination"
	case MixMinBills:
		return "minimum bills"
	case MixAlgorithmBase:
		return "algorithm base"
	case MixOptimumChange:
		return "optimum change"
	default:
		return "algorithm"
	}
}

// DispenseRequest parameterises bnr.denominate and bnr.dispense: it names
// either an amount to break down (Denomination, with MixNumber choosing the
// algorithm) or an explicit note list, plus the Currency the amount is
// denominated in (bnr-xfs dispense.rs DispenseRequest).
type DispenseRequest struct {
	MixNumber    MixNumber
	Denomination Denomination
	Currency     Currency
}

// NewDispenseRequest returns a DispenseRequest with MixAlgorithm and an
// empty Denomination, ready for the caller to fill in.
func NewDispenseRequest() DispenseRequest {
	return DispenseRequest{MixNumber: MixAlgorithm, Denomination: NewDenomination()}
}

const recordDispenseRequest = "dispenseRequest"

func (r DispenseRequest) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("mixNumber", int4Value(int32(r.MixNumber))),
		member("denomination", r.Denomination.Value()),
		member("currency", r.Currency.Value()),
	}})
}

func DispenseRequestFromValue(v xfs.Value) (DispenseRequest, error) {
	r := NewDispenseRequest()
	s := v.Struct()
	if s == nil {
		return r, missing(recordDispenseRequest, "<struct>")
	}
	mix, err := requireInt4(s, recordDispenseRequest, "mixNumber")
	if err != nil {
		return r, err
	}
	r.MixNumber = MixNumberFromInt4(mix)
	denom, err := requireStruct(s, recordDispenseRequest, "denomination")
	if err != nil {
		return r, err
	}
	if r.Denomination, err = DenominationFromValue(xfs.StructValue(*denom)); err != nil {
		return r, err
	}
	cur, err := requireStruct(s, recordDispenseRequest, "currency")
	if err != nil {
		return r, err
	}
	if r.Currency, err = CurrencyFromValue(xfs.StructValue(*cur)); err != nil {
		return r, err
	}
	return r, nil
}
