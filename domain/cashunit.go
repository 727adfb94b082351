package domain

import (
	"fmt"

	"github.com/go-bnr/bnr/xfs"
)

// MaxLogicalCashUnits and MaxPhysicalCashUnits bound a CashUnit's two
// inventory lists (spec.md §4.2).
const (
	MaxLogicalCashUnits  = 83
	MaxPhysicalCashUnits = 10
)

// ThresholdStatus is the filling status of a physical cash unit.
type ThresholdStatus int32

// Defined ThresholdStatus values (bnr-xfs cash_unit/threshold/status.rs).
const (
	ThresholdOk           ThresholdStatus = 0
	ThresholdFull         ThresholdStatus = 1
	ThresholdHigh         ThresholdStatus = 2
	ThresholdLow          ThresholdStatus = 4
	ThresholdEmpty        ThresholdStatus = 8
	ThresholdUnknown      ThresholdStatus = 16
	ThresholdNotSupported ThresholdStatus = 32
)

// ThresholdStatusFromInt4 decodes an unknown value to ThresholdUnknown.
func ThresholdStatusFromInt4(v int32) ThresholdStatus {
	switch ThresholdStatus(v) {
	case ThresholdOk, ThresholdFull, ThresholdHigh, ThresholdLow, ThresholdEmpty, ThresholdUnknown, ThresholdNotSupported:
		return ThresholdStatus(v)
	default:
		return ThresholdUnknown
	}
}

func (s ThresholdStatus) String() string {
	switch s {
	case ThresholdFull:
		return "full"
	case ThresholdHigh:
		return "high"
	case ThresholdLow:
		return "low"
	case ThresholdEmpty:
		return "empty"
	case ThresholdNotSupported:
		return "not supported"
	case ThresholdUnknown:
		return "unknown"
	default:
		return "ok"
	}
}

// ThresholdMode selects how ThresholdStatus is determined: from the
// device's own fill sensors, or purely by comparing Count against
// Threshold's level fields.
type ThresholdMode int32

const (
	ThresholdModeSensor ThresholdMode = 0
	ThresholdModeCount  ThresholdMode = 1
)

func ThresholdModeFromInt4(v int32) ThresholdMode {
	if v == int32(ThresholdModeCount) {
		return ThresholdModeCount
	}
	return ThresholdModeSensor
}

// Threshold holds the count boundaries that ThresholdModeCount compares
// against: the cash unit is High above High, Full at or above Full, Low
// below Low, and Empty at or below Empty.
type Threshold struct {
	Full  int32
	High  int32
	Low   int32
	Empty int32
}

const recordThreshold = "threshold"

func (t Threshold) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("full", int4Value(t.Full)),
		member("high", int4Value(t.High)),
		member("low", int4Value(t.Low)),
		member("empty", int4Value(t.Empty)),
	}})
}

func ThresholdFromValue(v xfs.Value) (Threshold, error) {
	var t Threshold
	s := v.Struct()
	if s == nil {
		return t, missing(recordThreshold, "<struct>")
	}
	var err error
	if t.Full, err = requireInt4(s, recordThreshold, "full"); err != nil {
		return t, err
	}
	if t.High, err = requireInt4(s, recordThreshold, "high"); err != nil {
		return t, err
	}
	if t.Low, err = requireInt4(s, recordThreshold, "low"); err != nil {
		return t, err
	}
	if t.Empty, err = requireInt4(s, recordThreshold, "empty"); err != nil {
		return t, err
	}
	return t, nil
}

// Resolve computes the ThresholdStatus for count under ThresholdModeCount.
func (t Threshold) Resolve(count int32) ThresholdStatus {
	switch {
	case count >= t.Full:
		return ThresholdFull
	case count > t.High:
		return ThresholdHigh
	case count <= t.Empty:
		return ThresholdEmpty
	case count < t.Low:
		return ThresholdLow
	default:
		return ThresholdOk
	}
}

// LogicalCashUnit is one logical accounting unit: a denomination slot
// tracked independently of which physical module backs it. PhysicalCuIndex
// names the backing PhysicalCashUnit by its UnitId, not by pointer or
// array index, since the wire protocol has no stable pointer concept and
// physical cash units can be reassigned on bnr.reset.
type LogicalCashUnit struct {
	CashType           CashType
	SecondaryCashTypes CashTypeList
	Number             int32
	CuKind             CuKind
	CuType             int32
	UnitID             uint64
	InitialCount       int32
	Count              int32
	Status             int32
	PhysicalCuIndex    uint64
}

const recordLogicalCashUnit = "logicalCashUnit"

func (l LogicalCashUnit) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("cashType", l.CashType.Value()),
		member("secondaryCashTypes", l.SecondaryCashTypes.Value()),
		member("number", int4Value(l.Number)),
		member("cuKind", int4Value(int32(l.CuKind))),
		member("cuType", int4Value(l.CuType)),
		member("unitId", xfs.Str(formatUnitID(l.UnitID))),
		member("initialCount", int4Value(l.InitialCount)),
		member("count", int4Value(l.Count)),
		member("status", int4Value(l.Status)),
		member("physicalCuIndex", xfs.Str(formatUnitID(l.PhysicalCuIndex))),
	}})
}

func LogicalCashUnitFromValue(v xfs.Value) (LogicalCashUnit, error) {
	var l LogicalCashUnit
	s := v.Struct()
	if s == nil {
		return l, missing(recordLogicalCashUnit, "<struct>")
	}
	cashTypeValue, ok := s.Get("cashType")
	if !ok {
		return l, missing(recordLogicalCashUnit, "cashType")
	}
	cashType, err := CashTypeFromValue(cashTypeValue)
	if err != nil {
		return l, err
	}
	l.CashType = cashType

	if secondaryValue, ok := s.Get("secondaryCashTypes"); ok {
		secondary, err := CashTypeListFromValue(secondaryValue)
		if err != nil {
			return l, err
		}
		l.SecondaryCashTypes = secondary
	} else {
		l.SecondaryCashTypes = NewCashTypeList()
	}

	if l.Number, err = requireInt4(s, recordLogicalCashUnit, "number"); err != nil {
		return l, err
	}
	l.CuKind = CuKindFromInt4(optionalInt4(s, "cuKind", int32(CuKindNotAvailable)))
	if l.CuType, err = requireInt4(s, recordLogicalCashUnit, "cuType"); err != nil {
		return l, err
	}
	unitID, err := requireString(s, recordLogicalCashUnit, "unitId")
	if err != nil {
		return l, err
	}
	l.UnitID = parseUnitID(unitID)
	if l.InitialCount, err = requireInt4(s, recordLogicalCashUnit, "initialCount"); err != nil {
		return l, err
	}
	if l.Count, err = requireInt4(s, recordLogicalCashUnit, "count"); err != nil {
		return l, err
	}
	if l.Status, err = requireInt4(s, recordLogicalCashUnit, "status"); err != nil {
		return l, err
	}
	physicalCuIndex, err := requireString(s, recordLogicalCashUnit, "physicalCuIndex")
	if err != nil {
		return l, err
	}
	l.PhysicalCuIndex = parseUnitID(physicalCuIndex)
	return l, nil
}

// PhysicalCashUnit is a physical module (cashbox, recycler, loader,
// bundler, reject cassette) identified by its UnitId, which corresponds
// to the module's own serial number and so survives bnr.reset.
type PhysicalCashUnit struct {
	Name            string
	UnitID          uint64
	Count           int32
	Threshold       Threshold
	Status          int32
	ThresholdStatus ThresholdStatus
	ThresholdMode   ThresholdMode
	Locked          bool
}

const recordPhysicalCashUnit = "physicalCashUnit"

func (p PhysicalCashUnit) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("name", xfs.Str(p.Name)),
		member("unitId", xfs.Str(formatUnitID(p.UnitID))),
		member("count", int4Value(p.Count)),
		member("threshold", p.Threshold.Value()),
		member("status", int4Value(p.Status)),
		member("thresholdStatus", int4Value(int32(p.ThresholdStatus))),
		member("thresholdMode", int4Value(int32(p.ThresholdMode))),
		member("lock", boolValue(p.Locked)),
	}})
}

func PhysicalCashUnitFromValue(v xfs.Value) (PhysicalCashUnit, error) {
	var p PhysicalCashUnit
	s := v.Struct()
	if s == nil {
		return p, missing(recordPhysicalCashUnit, "<struct>")
	}
	var err error
	if p.Name, err = requireString(s, recordPhysicalCashUnit, "name"); err != nil {
		return p, err
	}
	unitID, err := requireString(s, recordPhysicalCashUnit, "unitId")
	if err != nil {
		return p, err
	}
	p.UnitID = parseUnitID(unitID)
	if p.Count, err = requireInt4(s, recordPhysicalCashUnit, "count"); err != nil {
		return p, err
	}
	thresholdValue, ok := s.Get("threshold")
	if !ok {
		return p, missing(recordPhysicalCashUnit, "threshold")
	}
	threshold, err := ThresholdFromValue(thresholdValue)
	if err != nil {
		return p, err
	}
	p.Threshold = threshold
	if p.Status, err = requireInt4(s, recordPhysicalCashUnit, "status"); err != nil {
		return p, err
	}
	p.ThresholdStatus = ThresholdStatusFromInt4(optionalInt4(s, "thresholdStatus", int32(ThresholdUnknown)))
	p.ThresholdMode = ThresholdModeFromInt4(optionalInt4(s, "thresholdMode", int32(ThresholdModeSensor)))
	p.Locked, err = requireBool(s, recordPhysicalCashUnit, "lock")
	if err != nil {
		return p, err
	}
	return p, nil
}

// LogicalCashUnitList is the fixed-capacity list of a CashUnit's logical
// units (spec.md §4.2: up to MaxLogicalCashUnits).
type LogicalCashUnitList struct {
	list FixedList[LogicalCashUnit]
}

func NewLogicalCashUnitList() LogicalCashUnitList {
	return LogicalCashUnitList{list: NewFixedList[LogicalCashUnit](MaxLogicalCashUnits)}
}

func (l LogicalCashUnitList) Items() []LogicalCashUnit          { return l.list.Items() }
func (l *LogicalCashUnitList) SetItems(items []LogicalCashUnit) { l.list.SetItems(items) }
func (l LogicalCashUnitList) Len() int                          { return l.list.Len() }

func (l LogicalCashUnitList) Value() xfs.Value {
	values := make([]xfs.Value, 0, len(l.Items()))
	for _, item := range l.Items() {
		values = append(values, item.Value())
	}
	return xfs.ArrayValue(xfs.Array{Values: values})
}

func LogicalCashUnitListFromValue(v xfs.Value) (LogicalCashUnitList, error) {
	l := NewLogicalCashUnitList()
	arr := v.Array()
	if arr == nil {
		return l, nil
	}
	items := make([]LogicalCashUnit, 0, len(arr.Values))
	for _, ev := range arr.Values {
		item, err := LogicalCashUnitFromValue(ev)
		if err != nil {
			return l, err
		}
		items = append(items, item)
	}
	l.SetItems(items)
	return l, nil
}

// PhysicalCashUnitList is the fixed-capacity list of a CashUnit's
// physical units (spec.md §4.2: up to MaxPhysicalCashUnits).
type PhysicalCashUnitList struct {
	list FixedList[PhysicalCashUnit]
}

func NewPhysicalCashUnitList() PhysicalCashUnitList {
	return PhysicalCashUnitList{list: NewFixedList[PhysicalCashUnit](MaxPhysicalCashUnits)}
}

func (l PhysicalCashUnitList) Items() []PhysicalCashUnit          { return l.list.Items() }
func (l *PhysicalCashUnitList) SetItems(items []PhysicalCashUnit) { l.list.SetItems(items) }
func (l PhysicalCashUnitList) Len() int                           { return l.list.Len() }

func (l PhysicalCashUnitList) Value() xfs.Value {
	values := make([]xfs.Value, 0, len(l.Items()))
	for _, item := range l.Items() {
		values = append(values, item.Value())
	}
	return xfs.ArrayValue(xfs.Array{Values: values})
}

func PhysicalCashUnitListFromValue(v xfs.Value) (PhysicalCashUnitList, error) {
	l := NewPhysicalCashUnitList()
	arr := v.Array()
	if arr == nil {
		return l, nil
	}
	items := make([]PhysicalCashUnit, 0, len(arr.Values))
	for _, ev := range arr.Values {
		item, err := PhysicalCashUnitFromValue(ev)
		if err != nil {
			return l, err
		}
		items = append(items, item)
	}
	l.SetItems(items)
	return l, nil
}

// CashUnit is the complete cash unit inventory returned by
// bnr.querycashunit: every logical and physical unit the device
// currently manages, plus a transport bill counter.
//
// Each LogicalCashUnit names its backing physical unit by UnitId
// (PhysicalCuIndex). Decoding never resolves this into a pointer or slice
// index: the caller looks the physical unit up by UnitId in
// PhysicalCashUnits whenever it needs the pairing, keeping the two lists
// independently decodable and avoiding a dangling reference if the device
// reports a physical unit list that doesn't (yet) contain every index a
// logical unit points at. Validate surfaces such a reference explicitly
// rather than leaving it to be discovered by a failed PhysicalUnit lookup.
type CashUnit struct {
	TransportCount    int32
	LogicalCashUnits  LogicalCashUnitList
	PhysicalCashUnits PhysicalCashUnitList
}

// PhysicalUnit looks up the physical cash unit backing l by UnitId.
func (c CashUnit) PhysicalUnit(l LogicalCashUnit) (PhysicalCashUnit, bool) {
	for _, p := range c.PhysicalCashUnits.Items() {
		if p.UnitID == l.PhysicalCuIndex {
			return p, true
		}
	}
	return PhysicalCashUnit{}, false
}

// Validate reports every LogicalCashUnit whose PhysicalCuIndex does not
// resolve to any entry in PhysicalCashUnits (spec.md §8 scenario 4: "a
// validator surfaces the inconsistency"). A nil result means every
// reference resolved.
func (c CashUnit) Validate() []DanglingPhysicalReference {
	var problems []DanglingPhysicalReference
	for i, l := range c.LogicalCashUnits.Items() {
		if _, ok := c.PhysicalUnit(l); !ok {
			problems = append(problems, DanglingPhysicalReference{
				LogicalIndex:    i,
				LogicalUnitID:   l.UnitID,
				PhysicalCuIndex: l.PhysicalCuIndex,
			})
		}
	}
	return problems
}

// DanglingPhysicalReference names a LogicalCashUnit whose PhysicalCuIndex
// does not match any UnitId in the CashUnit's PhysicalCashUnits.
type DanglingPhysicalReference struct {
	LogicalIndex    int
	LogicalUnitID   uint64
	PhysicalCuIndex uint64
}

func (d DanglingPhysicalReference) Error() string {
	return fmt.Sprintf("logical cash unit %s (index %d) references missing physical unit %s",
		formatUnitID(d.LogicalUnitID), d.LogicalIndex, formatUnitID(d.PhysicalCuIndex))
}

const recordCashUnit = "cashUnit"

func (c CashUnit) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("transportCount", int4Value(c.TransportCount)),
		member("logicalCashUnitList", c.LogicalCashUnits.Value()),
		member("physicalCashUnitList", c.PhysicalCashUnits.Value()),
	}})
}

func CashUnitFromValue(v xfs.Value) (CashUnit, error) {
	var c CashUnit
	s := v.Struct()
	if s == nil {
		return c, missing(recordCashUnit, "<struct>")
	}
	var err error
	if c.TransportCount, err = requireInt4(s, recordCashUnit, "transportCount"); err != nil {
		return c, err
	}
	logicalValue, ok := s.Get("logicalCashUnitList")
	if !ok {
		return c, missing(recordCashUnit, "logicalCashUnitList")
	}
	if c.LogicalCashUnits, err = LogicalCashUnitListFromValue(logicalValue); err != nil {
		return c, err
	}
	physicalValue, ok := s.Get("physicalCashUnitList")
	if !ok {
		return c, missing(recordCashUnit, "physicalCashUnitList")
	}
	if c.PhysicalCashUnits, err = PhysicalCashUnitListFromValue(physicalValue); err != nil {
		return c, err
	}
	return c, nil
}
