package domain

import "github.com/go-bnr/bnr/xfs"

// MaxSecondaryCashTypes bounds a logical cash unit's secondary cash type
// list (bnr-xfs currency/cash_type.rs CASH_TYPE_LIST_LEN).
const MaxSecondaryCashTypes = 14

// Currency pairs an ISO 4217 currency code with the decimal exponent used
// to convert between display units and MDU (minor denomination unit).
type Currency struct {
	CurrencyCode string
	Exponent     int32
}

// mduExponents gives the decimal exponent for the currencies the BNR
// documents explicitly; ISO 4217 currencies not listed here default to 2
// (the common case: cents as the minor unit).
var mduExponents = map[string]int32{
	"JPY": 0,
	"KRW": 0,
	"CLP": 0,
	"BHD": 3,
	"KWD": 3,
	"OMR": 3,
}

// CurrencyFromCode builds a Currency from its ISO 4217 alphabetic code,
// looking up its exponent in the documented MDU table.
func CurrencyFromCode(code string) Currency {
	exp, ok := mduExponents[code]
	if !ok {
		exp = 2
	}
	return Currency{CurrencyCode: code, Exponent: exp}
}

// ToMDU converts a display-unit amount to its MDU representation.
func (c Currency) ToMDU(value uint32) uint32 {
	return value * pow10(c.Exponent)
}

// FromMDU converts an MDU amount back to its display-unit representation.
func (c Currency) FromMDU(value uint32) uint32 {
	p := pow10(c.Exponent)
	if p == 0 {
		return value
	}
	return value / p
}

func pow10(exp int32) uint32 {
	if exp < 0 {
		exp = -exp
	}
	result := uint32(1)
	for i := int32(0); i < exp; i++ {
		result *= 10
	}
	return result
}

const recordCurrency = "currency"

func (c Currency) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("currencyCode", xfs.Str(c.CurrencyCode)),
		member("exponent", int4Value(c.Exponent)),
	}})
}

func CurrencyFromValue(v xfs.Value) (Currency, error) {
	var c Currency
	s := v.Struct()
	if s == nil {
		return c, missing(recordCurrency, "<struct>")
	}
	var err error
	if c.CurrencyCode, err = requireString(s, recordCurrency, "currencyCode"); err != nil {
		return c, err
	}
	if c.Exponent, err = requireInt4(s, recordCurrency, "exponent"); err != nil {
		return c, err
	}
	return c, nil
}

// CuKind says whether a logical cash unit can dispense, deposit, both, or
// neither.
type CuKind int32

// Defined CuKind values, matching the device's own wire encoding.
const (
	CuKindNotAvailable CuKind = 6019
	CuKindDeposit      CuKind = 6017
	CuKindDispense     CuKind = 6016
	CuKindRecycle      CuKind = 6018
)

// CuKindFromInt4 decodes an unknown value to CuKindNotAvailable.
func CuKindFromInt4(v int32) CuKind {
	switch CuKind(v) {
	case CuKindNotAvailable, CuKindDeposit, CuKindDispense, CuKindRecycle:
		return CuKind(v)
	default:
		return CuKindNotAvailable
	}
}

func (k CuKind) String() string {
	switch k {
	case CuKindDeposit:
		return "deposit"
	case CuKindDispense:
		return "dispense"
	case CuKindRecycle:
		return "recycle"
	default:
		return "n/a"
	}
}

// CuType names the physical kind of a logical cash unit, e.g. cashbox,
// recycler, loader. The BNR reports this alongside CuKind.
type CuType int32

// CashType names an ISO currency code together with a face value and a
// variant discriminator (for currencies with multiple note designs sharing
// a denomination).
type CashType struct {
	CurrencyCode string
	Value        uint32
	Variant      uint32
}

const recordCashType = "cashType"

func (t CashType) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("currencyCode", xfs.Str(t.CurrencyCode)),
		member("value", int4Value(int32(t.Value))),
		member("variant", int4Value(int32(t.Variant))),
	}})
}

func CashTypeFromValue(v xfs.Value) (CashType, error) {
	var t CashType
	s := v.Struct()
	if s == nil {
		return t, missing(recordCashType, "<struct>")
	}
	var err error
	if t.CurrencyCode, err = requireString(s, recordCashType, "currencyCode"); err != nil {
		return t, err
	}
	value, err := requireInt4(s, recordCashType, "value")
	if err != nil {
		return t, err
	}
	t.Value = uint32(value)
	variant, err := requireInt4(s, recordCashType, "variant")
	if err != nil {
		return t, err
	}
	t.Variant = uint32(variant)
	return t, nil
}

// CashTypeList is the fixed-capacity list of secondary cash types a
// logical cash unit accepts in addition to its primary CashType.
type CashTypeList struct {
	list FixedList[CashType]
}

func NewCashTypeList() CashTypeList {
	return CashTypeList{list: NewFixedList[CashType](MaxSecondaryCashTypes)}
}

func (l CashTypeList) Items() []CashType                { return l.list.Items() }
func (l *CashTypeList) SetItems(items []CashType)       { l.list.SetItems(items) }
func (l CashTypeList) Value() xfs.Value {
	values := make([]xfs.Value, 0, len(l.Items()))
	for _, item := range l.Items() {
		values = append(values, item.Value())
	}
	return xfs.ArrayValue(xfs.Array{Values: values})
}

func CashTypeListFromValue(v xfs.Value) (CashTypeList, error) {
	l := NewCashTypeList()
	arr := v.Array()
	if arr == nil {
		return l, nil
	}
	items := make([]CashType, 0, len(arr.Values))
	for _, ev := range arr.Values {
		item, err := CashTypeFromValue(ev)
		if err != nil {
			return l, err
		}
		items = append(items, item)
	}
	l.SetItems(items)
	return l, nil
}
