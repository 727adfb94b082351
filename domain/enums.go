package domain

import "github.com/go-bnr/bnr/xfs"

// AntiFishingLevel is the sensitivity level of string detection at the
// inlet (Capabilities.AntiFishingLevel).
type AntiFishingLevel int32

// Defined AntiFishingLevel values.
const (
	AntiFishingNormal  AntiFishingLevel = 0
	AntiFishingHigh    AntiFishingLevel = 1
	AntiFishingSpecial AntiFishingLevel = 2
)

// AntiFishingLevelFromInt4 decodes an unknown value to AntiFishingNormal,
// the enumeration's default/Unknown-equivalent variant (spec.md §4.2
// "Enumerations").
func AntiFishingLevelFromInt4(v int32) AntiFishingLevel {
	switch AntiFishingLevel(v) {
	case AntiFishingNormal, AntiFishingHigh, AntiFishingSpecial:
		return AntiFishingLevel(v)
	default:
		return AntiFishingNormal
	}
}

func (l AntiFishingLevel) String() string {
	switch l {
	case AntiFishingHigh:
		return "high"
	case AntiFishingSpecial:
		return "special"
	default:
		return "normal"
	}
}

// CdrType identifies the class of CDR unit. The BNR always reports Atm.
type CdrType int32

// Defined CdrType values. The numeric values match the device's own wire
// encoding (6010-6013), not a zero-based enumeration.
const (
	CdrTypeNone      CdrType = 6010
	CdrTypeDispenser CdrType = 6011
	CdrTypeRecycler  CdrType = 6012
	CdrTypeAtm       CdrType = 6013
)

// CdrTypeFromInt4 decodes an unknown value to CdrTypeNone.
func CdrTypeFromInt4(v int32) CdrType {
	switch CdrType(v) {
	case CdrTypeNone, CdrTypeDispenser, CdrTypeRecycler, CdrTypeAtm:
		return CdrType(v)
	default:
		return CdrTypeNone
	}
}

func (t CdrType) String() string {
	switch t {
	case CdrTypeDispenser:
		return "dispenser"
	case CdrTypeRecycler:
		return "recycler"
	case CdrTypeAtm:
		return "atm"
	default:
		return "none"
	}
}

// ReportingMode controls the shape of the failure report saved on a
// no-bill-transported failure.
type ReportingMode int32

// Defined ReportingMode values.
const (
	ReportingNormal ReportingMode = 0
	ReportingFull   ReportingMode = 1
)

// ReportingModeFromInt4 decodes an unknown value to ReportingNormal.
func ReportingModeFromInt4(v int32) ReportingMode {
	if v == int32(ReportingFull) {
		return ReportingFull
	}
	return ReportingNormal
}

func (m ReportingMode) String() string {
	if m == ReportingFull {
		return "full"
	}
	return "normal"
}

// SelfTestMode controls when the device performs self tests.
type SelfTestMode int32

// Defined SelfTestMode values.
const (
	SelfTestAuto   SelfTestMode = 0
	SelfTestDevice SelfTestMode = 1
)

// SelfTestModeFromInt4 decodes an unknown value to SelfTestAuto.
func SelfTestModeFromInt4(v int32) SelfTestMode {
	if v == int32(SelfTestDevice) {
		return SelfTestDevice
	}
	return SelfTestAuto
}

func (m SelfTestMode) String() string {
	if m == SelfTestDevice {
		return "device"
	}
	return "auto"
}

// SecuredCommLevel is the host/device communication security level.
// Level2 is acknowledged as a capability only; the full negotiation
// protocol it would require is out of scope (spec.md §1).
type SecuredCommLevel int32

// Defined SecuredCommLevel values.
const (
	SecuredCommLevel1 SecuredCommLevel = 0
	SecuredCommLevel2 SecuredCommLevel = 1
	SecuredCommError  SecuredCommLevel = 2
)

// SecuredCommLevelFromInt4 decodes an unknown value to SecuredCommLevel1.
func SecuredCommLevelFromInt4(v int32) SecuredCommLevel {
	switch SecuredCommLevel(v) {
	case SecuredCommLevel1, SecuredCommLevel2, SecuredCommError:
		return SecuredCommLevel(v)
	default:
		return SecuredCommLevel1
	}
}

func (l SecuredCommLevel) String() string {
	switch l {
	case SecuredCommLevel2:
		return "level2"
	case SecuredCommError:
		return "error"
	default:
		return "level1"
	}
}

// CdrPosition names an input/output position on the device.
type CdrPosition int32

// Defined CdrPosition values. Non-zero-based to match the device's own
// wire encoding.
const (
	CdrPositionTop    CdrPosition = 1
	CdrPositionBottom CdrPosition = 2
)

// CdrPositionFromInt4 decodes an unknown value to CdrPositionBottom, the
// device's own default.
func CdrPositionFromInt4(v int32) CdrPosition {
	if v == int32(CdrPositionTop) {
		return CdrPositionTop
	}
	return CdrPositionBottom
}

func (p CdrPosition) String() string {
	if p == CdrPositionTop {
		return "top"
	}
	return "bottom"
}

func int4Value(v int32) xfs.Value { return xfs.Int4(v) }
