package domain

import "github.com/go-bnr/bnr/xfs"

// MaxPositionCapabilities is the compile-time maximum number of position
// capability entries (one per CdrPosition: Top, Bottom).
const MaxPositionCapabilities = 2

// PositionCapabilities describes one input/output position (Top or
// Bottom) the device exposes.
type PositionCapabilities struct {
	Position                CdrPosition
	ContentStatusSupported  bool
	ShutterStatusSupported  bool
	ShutterCmd              bool
	MaxItems                int32
	Input                   bool
	Output                  bool
	Rollback                bool
	Refusal                 bool
}

const recordPositionCapabilities = "positionCapabilities"

// Value projects p to its xfs.Value (a struct).
func (p PositionCapabilities) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("position", int4Value(int32(p.Position))),
		member("contentStatusSupported", boolValue(p.ContentStatusSupported)),
		member("shutterStatusSupported", boolValue(p.ShutterStatusSupported)),
		member("shutterCmd", boolValue(p.ShutterCmd)),
		member("maxItems", int4Value(p.MaxItems)),
		member("input", boolValue(p.Input)),
		member("output", boolValue(p.Output)),
		member("rollback", boolValue(p.Rollback)),
		member("refusal", boolValue(p.Refusal)),
	}})
}

// PositionCapabilitiesFromValue decodes a PositionCapabilities from its
// struct-valued wire encoding.
func PositionCapabilitiesFromValue(v xfs.Value) (PositionCapabilities, error) {
	var p PositionCapabilities
	s := v.Struct()
	if s == nil {
		return p, missing(recordPositionCapabilities, "<struct>")
	}
	position := optionalInt4(s, "position", int32(CdrPositionBottom))
	p.Position = CdrPositionFromInt4(position)
	p.ContentStatusSupported, _ = requireBool(s, recordPositionCapabilities, "contentStatusSupported")
	p.ShutterStatusSupported, _ = requireBool(s, recordPositionCapabilities, "shutterStatusSupported")
	p.ShutterCmd, _ = requireBool(s, recordPositionCapabilities, "shutterCmd")
	p.MaxItems = optionalInt4(s, "maxItems", 0)
	p.Input, _ = requireBool(s, recordPositionCapabilities, "input")
	p.Output, _ = requireBool(s, recordPositionCapabilities, "output")
	p.Rollback, _ = requireBool(s, recordPositionCapabilities, "rollback")
	p.Refusal, _ = requireBool(s, recordPositionCapabilities, "refusal")
	return p, nil
}

// PositionCapabilitiesList is the fixed-capacity (2-entry) list of
// per-position capability records carried by Capabilities.
type PositionCapabilitiesList struct {
	list FixedList[PositionCapabilities]
}

// NewPositionCapabilitiesList creates an empty list.
func NewPositionCapabilitiesList() PositionCapabilitiesList {
	return PositionCapabilitiesList{list: NewFixedList[PositionCapabilities](MaxPositionCapabilities)}
}

// Items returns the stored entries.
func (l PositionCapabilitiesList) Items() []PositionCapabilities { return l.list.Items() }

// SetItems stores entries, truncating to MaxPositionCapabilities.
func (l *PositionCapabilitiesList) SetItems(items []PositionCapabilities) { l.list.SetItems(items) }

const recordPositionCapabilitiesList = "positionCapabilitiesList"

// Value projects l to an xfs.Value (an array).
func (l PositionCapabilitiesList) Value() xfs.Value {
	values := make([]xfs.Value, 0, len(l.Items()))
	for _, item := range l.Items() {
		values = append(values, item.Value())
	}
	return xfs.ArrayValue(xfs.Array{Values: values})
}

// PositionCapabilitiesListFromValue decodes l from its array-valued wire
// encoding, truncating to MaxPositionCapabilities.
func PositionCapabilitiesListFromValue(v xfs.Value) (PositionCapabilitiesList, error) {
	l := NewPositionCapabilitiesList()
	arr := v.Array()
	if arr == nil {
		return l, missing(recordPositionCapabilitiesList, "<array>")
	}
	items := make([]PositionCapabilities, 0, len(arr.Values))
	for _, ev := range arr.Values {
		item, err := PositionCapabilitiesFromValue(ev)
		if err != nil {
			return l, err
		}
		items = append(items, item)
	}
	l.SetItems(items)
	return l, nil
}
