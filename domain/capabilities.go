package domain

import "github.com/go-bnr/bnr/xfs"

const recordCapabilities = "capabilities"

// Capabilities describes device behavior: mostly read-only booleans and
// bounded integers, with eight fields the host may write back via
// set_capabilities (spec.md §4.5). The writable fields are AutoPresent,
// SelfTestMode, AntiFishingLevel, AllowUsbFrontSwitch, ReportingMode,
// ReportUsbConsumption, AutoRetract, and RejectViaOutlet.
type Capabilities struct {
	AutoPresent             bool
	CdType                  CdrType
	EuroArt6Capability      bool
	TrustedUser             bool
	MaxInBills              int32
	MaxOutBills             int32
	ShutterCmd              bool
	Retract                 bool
	SafeDoorCmd             bool
	CashBox                 bool
	Refill                  bool
	Dispense                bool
	Deposit                 bool
	IntermediateStacker     bool
	BillTakenSensor         bool
	Escrow                  bool
	EscrowSize              int32
	Detector                bool
	DefaultRollbackPosition CdrPosition
	PositionCapabilities    PositionCapabilitiesList
	SelfTestMode            SelfTestMode
	RecognitionSensorType   byte
	AntiFishingLevel        AntiFishingLevel
	AllowUsbFrontSwitch     bool
	ReportingMode           ReportingMode
	ReportUsbConsumption    bool
	AutoRetract             bool
	RejectViaOutlet         bool
	SecuredCommLevel        SecuredCommLevel
}

// NewCapabilities returns the BNR's documented defaults (bnr-xfs
// capabilities.rs Capabilities::new).
func NewCapabilities() Capabilities {
	return Capabilities{
		CdType:                  CdrTypeAtm,
		MaxInBills:              1,
		MaxOutBills:             15,
		Retract:                 true,
		CashBox:                 true,
		Refill:                  true,
		Dispense:                true,
		Deposit:                 true,
		IntermediateStacker:     true,
		BillTakenSensor:         true,
		Escrow:                  true,
		EscrowSize:              15,
		Detector:                true,
		DefaultRollbackPosition: CdrPositionBottom,
		PositionCapabilities:    NewPositionCapabilitiesList(),
		RecognitionSensorType:   'B',
		AllowUsbFrontSwitch:     true,
	}
}

// Value projects c to its canonical "capabilities" struct value.
func (c Capabilities) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("autoPresent", boolValue(c.AutoPresent)),
		member("antiFishingLevel", int4Value(int32(c.AntiFishingLevel))),
		member("allowUsbFrontSwitch", boolValue(c.AllowUsbFrontSwitch)),
		member("cdType", int4Value(int32(c.CdType))),
		member("eurArt6Capabilities", boolValue(c.EuroArt6Capability)),
		member("trustedUser", boolValue(c.TrustedUser)),
		member("maxInBills", int4Value(c.MaxInBills)),
		member("maxOutBills", int4Value(c.MaxOutBills)),
		member("shutterCmd", boolValue(c.ShutterCmd)),
		member("retract", boolValue(c.Retract)),
		member("safeDoorCmd", boolValue(c.SafeDoorCmd)),
		member("cashBox", boolValue(c.CashBox)),
		member("refill", boolValue(c.Refill)),
		member("dispense", boolValue(c.Dispense)),
		member("deposit", boolValue(c.Deposit)),
		member("intermediateStacker", boolValue(c.IntermediateStacker)),
		member("billsTakenSensor", boolValue(c.BillTakenSensor)),
		member("escrow", boolValue(c.Escrow)),
		member("escrowSize", int4Value(c.EscrowSize)),
		member("detector", boolValue(c.Detector)),
		member("defaultRollbackPosition", int4Value(int32(c.DefaultRollbackPosition))),
		member("positionCapabilitiesList", c.PositionCapabilities.Value()),
		member("recognitionSensorType", xfs.Str(string(c.RecognitionSensorType))),
		member("reportingMode", int4Value(int32(c.ReportingMode))),
		member("selfTestMode", int4Value(int32(c.SelfTestMode))),
		member("reportUsbConsumption", boolValue(c.ReportUsbConsumption)),
		member("securedCommLevel", int4Value(int32(c.SecuredCommLevel))),
		member("autoRetractAtInlet", boolValue(c.AutoRetract)),
		member("rejectViaOutlet", boolValue(c.RejectViaOutlet)),
	}})
}

// CapabilitiesFromValue decodes Capabilities from its struct-valued wire
// encoding. Every non-enumerated field must be present with a value of
// the right kind, per spec.md §4.2; the enumerated fields may be absent,
// and fall back to their default/Unknown variant when absent or on an
// out-of-range numeric value rather than failing the whole decode.
func CapabilitiesFromValue(v xfs.Value) (Capabilities, error) {
	var c Capabilities
	s := v.Struct()
	if s == nil {
		return c, missing(recordCapabilities, "<struct>")
	}

	var err error
	if c.AutoPresent, err = requireBool(s, recordCapabilities, "autoPresent"); err != nil {
		return c, err
	}
	if c.AllowUsbFrontSwitch, err = requireBool(s, recordCapabilities, "allowUsbFrontSwitch"); err != nil {
		return c, err
	}
	if c.EuroArt6Capability, err = requireBool(s, recordCapabilities, "eurArt6Capabilities"); err != nil {
		return c, err
	}
	if c.TrustedUser, err = requireBool(s, recordCapabilities, "trustedUser"); err != nil {
		return c, err
	}
	if c.ShutterCmd, err = requireBool(s, recordCapabilities, "shutterCmd"); err != nil {
		return c, err
	}
	if c.Retract, err = requireBool(s, recordCapabilities, "retract"); err != nil {
		return c, err
	}
	if c.SafeDoorCmd, err = requireBool(s, recordCapabilities, "safeDoorCmd"); err != nil {
		return c, err
	}
	if c.CashBox, err = requireBool(s, recordCapabilities, "cashBox"); err != nil {
		return c, err
	}
	if c.Refill, err = requireBool(s, recordCapabilities, "refill"); err != nil {
		return c, err
	}
	if c.Dispense, err = requireBool(s, recordCapabilities, "dispense"); err != nil {
		return c, err
	}
	if c.Deposit, err = requireBool(s, recordCapabilities, "deposit"); err != nil {
		return c, err
	}
	if c.IntermediateStacker, err = requireBool(s, recordCapabilities, "intermediateStacker"); err != nil {
		return c, err
	}
	if c.BillTakenSensor, err = requireBool(s, recordCapabilities, "billsTakenSensor"); err != nil {
		return c, err
	}
	if c.Escrow, err = requireBool(s, recordCapabilities, "escrow"); err != nil {
		return c, err
	}
	if c.Detector, err = requireBool(s, recordCapabilities, "detector"); err != nil {
		return c, err
	}
	if c.ReportUsbConsumption, err = requireBool(s, recordCapabilities, "reportUsbConsumption"); err != nil {
		return c, err
	}
	if c.AutoRetract, err = requireBool(s, recordCapabilities, "autoRetractAtInlet"); err != nil {
		return c, err
	}
	if c.RejectViaOutlet, err = requireBool(s, recordCapabilities, "rejectViaOutlet"); err != nil {
		return c, err
	}

	if c.MaxInBills, err = requireInt4(s, recordCapabilities, "maxInBills"); err != nil {
		return c, err
	}
	if c.MaxOutBills, err = requireInt4(s, recordCapabilities, "maxOutBills"); err != nil {
		return c, err
	}
	if c.EscrowSize, err = requireInt4(s, recordCapabilities, "escrowSize"); err != nil {
		return c, err
	}

	recognitionSensor, err := requireString(s, recordCapabilities, "recognitionSensorType")
	if err != nil {
		return c, err
	}
	if len(recognitionSensor) > 0 {
		c.RecognitionSensorType = recognitionSensor[0]
	}

	c.CdType = CdrTypeFromInt4(optionalInt4(s, "cdType", int32(CdrTypeAtm)))
	c.AntiFishingLevel = AntiFishingLevelFromInt4(optionalInt4(s, "antiFishingLevel", 0))
	c.DefaultRollbackPosition = CdrPositionFromInt4(optionalInt4(s, "defaultRollbackPosition", int32(CdrPositionBottom)))
	c.ReportingMode = ReportingModeFromInt4(optionalInt4(s, "reportingMode", 0))
	c.SelfTestMode = SelfTestModeFromInt4(optionalInt4(s, "selfTestMode", 0))
	c.SecuredCommLevel = SecuredCommLevelFromInt4(optionalInt4(s, "securedCommLevel", 0))

	posCapsValue, ok := s.Get("positionCapabilitiesList")
	if !ok {
		return c, missing(recordCapabilities, "positionCapabilitiesList")
	}
	posCaps, err := PositionCapabilitiesListFromValue(posCapsValue)
	if err != nil {
		return c, err
	}
	c.PositionCapabilities = posCaps

	return c, nil
}

// WritableFields are the eight member names set_capabilities is permitted
// to write (spec.md §3 "Eight fields are writable").
var WritableFields = []string{
	"autoPresent",
	"selfTestMode",
	"antiFishingLevel",
	"allowUsbFrontSwitch",
	"reportingMode",
	"reportUsbConsumption",
	"autoRetractAtInlet",
	"rejectViaOutlet",
}

// WritableValue projects only the eight writable fields of c into a struct
// value, the shape bnr.setcapabilities actually sends on the wire.
func (c Capabilities) WritableValue() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("autoPresent", boolValue(c.AutoPresent)),
		member("selfTestMode", int4Value(int32(c.SelfTestMode))),
		member("antiFishingLevel", int4Value(int32(c.AntiFishingLevel))),
		member("allowUsbFrontSwitch", boolValue(c.AllowUsbFrontSwitch)),
		member("reportingMode", int4Value(int32(c.ReportingMode))),
		member("reportUsbConsumption", boolValue(c.ReportUsbConsumption)),
		member("autoRetractAtInlet", boolValue(c.AutoRetract)),
		member("rejectViaOutlet", boolValue(c.RejectViaOutlet)),
	}})
}
