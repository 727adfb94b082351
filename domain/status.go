package domain

import "github.com/go-bnr/bnr/xfs"

// HardwareStatus is the overall severity derived by folding a device's
// component statuses together. Ok is the zero value.
type HardwareStatus int32

// Defined HardwareStatus values. FoldHardwareStatus ranks them Ok <
// Notification < Missing < Warning < Error, which is not declaration
// order.
const (
	HardwareOk HardwareStatus = iota
	HardwareMissing
	HardwareNotification
	HardwareWarning
	HardwareError
)

func (h HardwareStatus) String() string {
	switch h {
	case HardwareMissing:
		return "missing"
	case HardwareNotification:
		return "notification"
	case HardwareWarning:
		return "warning"
	case HardwareError:
		return "error"
	default:
		return "ok"
	}
}

// FoldHardwareStatus reduces a set of component statuses to the single
// most severe one: Error beats Warning beats Missing beats Notification
// beats Ok.
func FoldHardwareStatus(statuses ...HardwareStatus) HardwareStatus {
	has := func(target HardwareStatus) bool {
		for _, s := range statuses {
			if s == target {
				return true
			}
		}
		return false
	}
	switch {
	case has(HardwareError):
		return HardwareError
	case has(HardwareWarning):
		return HardwareWarning
	case has(HardwareMissing):
		return HardwareMissing
	case has(HardwareNotification):
		return HardwareNotification
	default:
		return HardwareOk
	}
}

// DeviceStatus reports the CDR device's own online/offline/error state.
type DeviceStatus int32

// Defined DeviceStatus values (bnr-xfs status/device.rs wire codes).
const (
	DeviceChanged       DeviceStatus = 6162
	DeviceHardwareError DeviceStatus = 6174
	DeviceUserError     DeviceStatus = 6175
	DeviceOffline       DeviceStatus = 6179
	DeviceOnline        DeviceStatus = 6180
)

// DeviceStatusFromInt4 decodes an unknown value to DeviceHardwareError,
// treating an unrecognized wire code as the worst case rather than
// silently reporting healthy.
func DeviceStatusFromInt4(v int32) DeviceStatus {
	switch DeviceStatus(v) {
	case DeviceChanged, DeviceHardwareError, DeviceUserError, DeviceOffline, DeviceOnline:
		return DeviceStatus(v)
	default:
		return DeviceHardwareError
	}
}

// Hardware folds a DeviceStatus into its HardwareStatus severity.
func (s DeviceStatus) Hardware() HardwareStatus {
	switch s {
	case DeviceOnline:
		return HardwareOk
	case DeviceChanged:
		return HardwareNotification
	case DeviceOffline:
		return HardwareMissing
	default:
		return HardwareError
	}
}

// DispenserStatus reports cash-unit-level dispenser events.
type DispenserStatus int32

// Defined DispenserStatus values (bnr-xfs status/dispenser.rs wire codes).
const (
	DispenserChanged      DispenserStatus = 6153
	DispenserConfigChange DispenserStatus = 6154
	DispenserThreshold    DispenserStatus = 6155
	DispenserOk           DispenserStatus = 6181
	DispenserState        DispenserStatus = 6182
	DispenserStop         DispenserStatus = 6183
	DispenserUnknown      DispenserStatus = 6184
	DispenserCashTaken    DispenserStatus = 6192
	DispenserCashAvail    DispenserStatus = 6223
)

// DispenserStatusFromInt4 decodes an unknown value to DispenserUnknown.
func DispenserStatusFromInt4(v int32) DispenserStatus {
	switch DispenserStatus(v) {
	case DispenserChanged, DispenserConfigChange, DispenserThreshold, DispenserOk,
		DispenserState, DispenserStop, DispenserUnknown, DispenserCashTaken, DispenserCashAvail:
		return DispenserStatus(v)
	default:
		return DispenserUnknown
	}
}

func (s DispenserStatus) Hardware() HardwareStatus {
	switch s {
	case DispenserOk, DispenserCashTaken, DispenserCashAvail:
		return HardwareOk
	case DispenserChanged, DispenserConfigChange, DispenserThreshold, DispenserState:
		return HardwareNotification
	case DispenserStop:
		return HardwareError
	default:
		return HardwareMissing
	}
}

// IntermediateStackerStatus reports the intermediate stacker's fill state.
type IntermediateStackerStatus int32

const (
	IntermediateStackerEmpty    IntermediateStackerStatus = 6185
	IntermediateStackerNotEmpty IntermediateStackerStatus = 6186
	IntermediateStackerUnknown  IntermediateStackerStatus = 6187
)

func IntermediateStackerStatusFromInt4(v int32) IntermediateStackerStatus {
	switch IntermediateStackerStatus(v) {
	case IntermediateStackerEmpty, IntermediateStackerNotEmpty, IntermediateStackerUnknown:
		return IntermediateStackerStatus(v)
	default:
		return IntermediateStackerUnknown
	}
}

func (s IntermediateStackerStatus) Hardware() HardwareStatus {
	switch s {
	case IntermediateStackerEmpty, IntermediateStackerNotEmpty:
		return HardwareOk
	default:
		return HardwareMissing
	}
}

// SafeDoorStatus reports the safe door's open/locked state.
type SafeDoorStatus int32

const (
	SafeDoorOpen    SafeDoorStatus = 6194
	SafeDoorLocked  SafeDoorStatus = 6196
	SafeDoorUnknown SafeDoorStatus = 6197
)

func SafeDoorStatusFromInt4(v int32) SafeDoorStatus {
	switch SafeDoorStatus(v) {
	case SafeDoorOpen, SafeDoorLocked, SafeDoorUnknown:
		return SafeDoorStatus(v)
	default:
		return SafeDoorUnknown
	}
}

func (s SafeDoorStatus) Hardware() HardwareStatus {
	switch s {
	case SafeDoorLocked:
		return HardwareOk
	case SafeDoorOpen:
		return HardwareWarning
	default:
		return HardwareMissing
	}
}

// ShutterStatus reports an input/output position's shutter state.
type ShutterStatus int32

const (
	ShutterClosed       ShutterStatus = 6198
	ShutterOpen         ShutterStatus = 6199
	ShutterNotSupported ShutterStatus = 6201
	ShutterUnknown      ShutterStatus = 6202
)

func ShutterStatusFromInt4(v int32) ShutterStatus {
	switch ShutterStatus(v) {
	case ShutterClosed, ShutterOpen, ShutterNotSupported, ShutterUnknown:
		return ShutterStatus(v)
	default:
		return ShutterUnknown
	}
}

func (s ShutterStatus) Hardware() HardwareStatus {
	switch s {
	case ShutterClosed, ShutterNotSupported:
		return HardwareOk
	case ShutterOpen:
		return HardwareNotification
	default:
		return HardwareMissing
	}
}

// TransportStatus reports the bill transport's operability.
type TransportStatus int32

const (
	TransportChanged TransportStatus = 6167
	TransportOk      TransportStatus = 6203
	TransportInop    TransportStatus = 6204
	TransportUnknown TransportStatus = 6206
)

func TransportStatusFromInt4(v int32) TransportStatus {
	switch TransportStatus(v) {
	case TransportChanged, TransportOk, TransportInop, TransportUnknown:
		return TransportStatus(v)
	default:
		return TransportUnknown
	}
}

func (s TransportStatus) Hardware() HardwareStatus {
	switch s {
	case TransportOk:
		return HardwareOk
	case TransportChanged:
		return HardwareNotification
	case TransportInop:
		return HardwareError
	default:
		return HardwareMissing
	}
}

// ContentStatus reports whether a position (Top/Bottom) currently holds
// bills. Not directly documented in the retrieval pack's filtered source;
// modeled after its sibling position-level enumerations (empty/not-empty/
// unknown), per DESIGN.md.
type ContentStatus int32

const (
	ContentEmpty    ContentStatus = 0
	ContentNotEmpty ContentStatus = 1
	ContentUnknown  ContentStatus = 2
)

func ContentStatusFromInt4(v int32) ContentStatus {
	switch ContentStatus(v) {
	case ContentEmpty, ContentNotEmpty, ContentUnknown:
		return ContentStatus(v)
	default:
		return ContentUnknown
	}
}

func (s ContentStatus) Hardware() HardwareStatus {
	if s == ContentUnknown {
		return HardwareMissing
	}
	return HardwareOk
}

// PositionStatus is the per-position (Top/Bottom) status triple.
type PositionStatus struct {
	Position      CdrPosition
	ContentStatus ContentStatus
	ShutterStatus ShutterStatus
}

const recordPositionStatus = "positionStatus"

func (p PositionStatus) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("position", int4Value(int32(p.Position))),
		member("contentStatus", int4Value(int32(p.ContentStatus))),
		member("shutterStatus", int4Value(int32(p.ShutterStatus))),
	}})
}

func PositionStatusFromValue(v xfs.Value) (PositionStatus, error) {
	var p PositionStatus
	s := v.Struct()
	if s == nil {
		return p, missing(recordPositionStatus, "<struct>")
	}
	p.Position = CdrPositionFromInt4(optionalInt4(s, "position", int32(CdrPositionBottom)))
	p.ContentStatus = ContentStatusFromInt4(optionalInt4(s, "contentStatus", int32(ContentUnknown)))
	p.ShutterStatus = ShutterStatusFromInt4(optionalInt4(s, "shutterStatus", int32(ShutterUnknown)))
	return p, nil
}

func (p PositionStatus) Hardware() HardwareStatus {
	return FoldHardwareStatus(p.ContentStatus.Hardware(), p.ShutterStatus.Hardware())
}

// PositionStatusList is the fixed-capacity (2-entry) list of per-position
// statuses carried by CdrStatus.
type PositionStatusList struct {
	list FixedList[PositionStatus]
}

func NewPositionStatusList() PositionStatusList {
	return PositionStatusList{list: NewFixedList[PositionStatus](MaxPositionCapabilities)}
}

func (l PositionStatusList) Items() []PositionStatus          { return l.list.Items() }
func (l *PositionStatusList) SetItems(items []PositionStatus) { l.list.SetItems(items) }

const recordPositionStatusList = "positionStatusList"

func (l PositionStatusList) Value() xfs.Value {
	values := make([]xfs.Value, 0, len(l.Items()))
	for _, item := range l.Items() {
		values = append(values, item.Value())
	}
	return xfs.ArrayValue(xfs.Array{Values: values})
}

func PositionStatusListFromValue(v xfs.Value) (PositionStatusList, error) {
	l := NewPositionStatusList()
	arr := v.Array()
	if arr == nil {
		return l, missing(recordPositionStatusList, "<array>")
	}
	items := make([]PositionStatus, 0, len(arr.Values))
	for _, ev := range arr.Values {
		item, err := PositionStatusFromValue(ev)
		if err != nil {
			return l, err
		}
		items = append(items, item)
	}
	l.SetItems(items)
	return l, nil
}

// CdrStatus is the full device status returned by bnr.getstatus: one
// status per subsystem, plus per-position status.
type CdrStatus struct {
	DeviceStatus              DeviceStatus
	DispenserStatus           DispenserStatus
	IntermediateStackerStatus IntermediateStackerStatus
	SafeDoorStatus            SafeDoorStatus
	ShutterStatus             ShutterStatus
	TransportStatus           TransportStatus
	PositionStatusList        PositionStatusList
}

// Hardware folds every component status into a single overall severity.
func (c CdrStatus) Hardware() HardwareStatus {
	statuses := []HardwareStatus{
		c.DeviceStatus.Hardware(),
		c.DispenserStatus.Hardware(),
		c.IntermediateStackerStatus.Hardware(),
		c.SafeDoorStatus.Hardware(),
		c.ShutterStatus.Hardware(),
		c.TransportStatus.Hardware(),
	}
	for _, p := range c.PositionStatusList.Items() {
		statuses = append(statuses, p.Hardware())
	}
	return FoldHardwareStatus(statuses...)
}

const recordCdrStatus = "status"

func (c CdrStatus) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("deviceStatus", int4Value(int32(c.DeviceStatus))),
		member("dispenserStatus", int4Value(int32(c.DispenserStatus))),
		member("intermediateStackerStatus", int4Value(int32(c.IntermediateStackerStatus))),
		member("safeDoorStatus", int4Value(int32(c.SafeDoorStatus))),
		member("shutterStatus", int4Value(int32(c.ShutterStatus))),
		member("transportStatus", int4Value(int32(c.TransportStatus))),
		member("positionStatusList", c.PositionStatusList.Value()),
	}})
}

func CdrStatusFromValue(v xfs.Value) (CdrStatus, error) {
	var c CdrStatus
	s := v.Struct()
	if s == nil {
		return c, missing(recordCdrStatus, "<struct>")
	}
	c.DeviceStatus = DeviceStatusFromInt4(optionalInt4(s, "deviceStatus", int32(DeviceHardwareError)))
	c.DispenserStatus = DispenserStatusFromInt4(optionalInt4(s, "dispenserStatus", int32(DispenserUnknown)))
	c.IntermediateStackerStatus = IntermediateStackerStatusFromInt4(optionalInt4(s, "intermediateStackerStatus", int32(IntermediateStackerUnknown)))
	c.SafeDoorStatus = SafeDoorStatusFromInt4(optionalInt4(s, "safeDoorStatus", int32(SafeDoorUnknown)))
	c.ShutterStatus = ShutterStatusFromInt4(optionalInt4(s, "shutterStatus", int32(ShutterUnknown)))
	c.TransportStatus = TransportStatusFromInt4(optionalInt4(s, "transportStatus", int32(TransportUnknown)))

	listValue, ok := s.Get("positionStatusList")
	if !ok {
		return c, missing(recordCdrStatus, "positionStatusList")
	}
	list, err := PositionStatusListFromValue(listValue)
	if err != nil {
		return c, err
	}
	c.PositionStatusList = list
	return c, nil
}
