package domain

import "github.com/go-bnr/bnr/xfs"

// MaxDenominationItems bounds a Denomination's item list (bnr-xfs
// currency/denomination.rs DENOM_ITEM_LEN).
const MaxDenominationItems = 20

// DenominationItem records a bill count against one logical cash unit,
// identified by its logical unit Number (domain.LogicalCashUnit.Number).
type DenominationItem struct {
	Unit  int32
	Count int32
}

const recordDenominationItem = "denominationItem"

func (d DenominationItem) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("unit", int4Value(d.Unit)),
		member("count", int4Value(d.Count)),
	}})
}

func DenominationItemFromValue(v xfs.Value) (DenominationItem, error) {
	var d DenominationItem
	s := v.Struct()
	if s == nil {
		return d, missing(recordDenominationItem, "<struct>")
	}
	var err error
	if d.Unit, err = requireInt4(s, recordDenominationItem, "unit"); err != nil {
		return d, err
	}
	if d.Count, err = requireInt4(s, recordDenominationItem, "count"); err != nil {
		return d, err
	}
	return d, nil
}

// Denomination describes how a requested/returned amount is broken down
// across logical cash units, used by both bnr.cashin and bnr.dispense.
// The wire struct carries no explicit size member: the item count is
// implicit in the items array's own length, per spec.md §4.2 "Arrays".
type Denomination struct {
	Amount  int32
	Cashbox int32
	items   FixedList[DenominationItem]
}

// NewDenomination returns an empty Denomination ready to accumulate items.
func NewDenomination() Denomination {
	return Denomination{items: NewFixedList[DenominationItem](MaxDenominationItems)}
}

// Items returns the denomination items.
func (d Denomination) Items() []DenominationItem { return d.items.Items() }

// SetItems stores items, truncating to MaxDenominationItems.
func (d *Denomination) SetItems(items []DenominationItem) { d.items.SetItems(items) }

const recordDenomination = "denomination"

func (d Denomination) Value() xfs.Value {
	values := make([]xfs.Value, 0, len(d.Items()))
	for _, item := range d.Items() {
		values = append(values, item.Value())
	}
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("amount", int4Value(d.Amount)),
		member("cashbox", int4Value(d.Cashbox)),
		member("items", xfs.ArrayValue(xfs.Array{Values: values})),
	}})
}

func DenominationFromValue(v xfs.Value) (Denomination, error) {
	d := NewDenomination()
	s := v.Struct()
	if s == nil {
		return d, missing(recordDenomination, "<struct>")
	}
	var err error
	if d.Amount, err = requireInt4(s, recordDenomination, "amount"); err != nil {
		return d, err
	}
	if d.Cashbox, err = requireInt4(s, recordDenomination, "cashbox"); err != nil {
		return d, err
	}
	arr, err := requireArray(s, recordDenomination, "items")
	if err != nil {
		return d, err
	}
	items := make([]DenominationItem, 0, len(arr.Values))
	for _, ev := range arr.Values {
		item, err := DenominationItemFromValue(ev)
		if err != nil {
			return d, err
		}
		items = append(items, item)
	}
	d.SetItems(items)
	return d, nil
}
