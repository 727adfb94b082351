// Package fault holds the closed BNR and USB fault-code taxonomies.
//
// The tables in zz_generated_bnrfault.go and zz_generated_usbfault.go are
// produced offline by cmd/bnrfaultgen from the JSON files under fault/data;
// nothing in this package parses JSON at runtime, matching spec.md's
// "generator is not part of the device binary" rule.
package fault

import (
	"fmt"
	"strings"
)

// Subsystem is the module family a BnrFault belongs to, encoded as the two
// letters between the severity prefix and the sequence number in the
// variant identifier (e.g. "SS" in E_SS01).
type Subsystem string

// The defined BNR fault subsystems. See companion spec.md §4.3.
const (
	SubsystemSS Subsystem = "SS" // system/startup
	SubsystemMM Subsystem = "MM" // mechanical/media movement
	SubsystemBU Subsystem = "BU" // bundler
	SubsystemSP Subsystem = "SP" // recognition sensor/sensing path
	SubsystemLO Subsystem = "LO" // loader
	SubsystemRE Subsystem = "RE" // recycler
	SubsystemCB Subsystem = "CB" // cashbox
	SubsystemUnknown Subsystem = ""
)

// Severity is the W_/E_ prefix of a BnrFault identifier.
type Severity byte

// Defined severities.
const (
	SeverityError Severity = iota
	SeverityWarning
)

func (sf Severity) String() string {
	if sf == SeverityWarning {
		return "warning"
	}
	return "error"
}

// FromCode converts a raw wire fault code to a BnrFault. The result is
// always a valid BnrFault -- callers distinguish defined from undefined
// codes with Known, never by a failed conversion.
func FromCode(code int32) BnrFault {
	return BnrFault(uint32(code))
}

// Code returns the raw 32-bit wire value.
func (sf BnrFault) Code() uint32 {
	return uint32(sf)
}

// Known reports whether sf is one of the defined variants.
func (sf BnrFault) Known() bool {
	_, ok := bnrFaultTable[sf]
	return ok
}

// Name returns the variant identifier (e.g. "E_SS01"), or
// "Unrecognized(<code>)" if sf is not a defined variant. The raw numeric
// code is always preserved, per spec.md §4.3.
func (sf BnrFault) Name() string {
	if info, ok := bnrFaultTable[sf]; ok {
		return info.name
	}
	return fmt.Sprintf("Unrecognized(%d)", uint32(sf))
}

// Title returns the short human title of a defined fault, or "" for an
// unrecognized code or for a placeholder entry carried verbatim from the
// source table with no title (see spec.md §9 Open Question on W_RE104/105).
func (sf BnrFault) Title() string {
	return bnrFaultTable[sf].title
}

// CorrectiveActions returns up to three corrective-action lines for a
// defined fault, or nil.
func (sf BnrFault) CorrectiveActions() []string {
	info, ok := bnrFaultTable[sf]
	if !ok {
		return nil
	}
	return info.correctiveActions
}

// Subsystem extracts the module family from the variant name. Returns
// SubsystemUnknown for an unrecognized code.
func (sf BnrFault) Subsystem() Subsystem {
	name := sf.Name()
	if !strings.Contains(name, "_") {
		return SubsystemUnknown
	}
	parts := strings.SplitN(name, "_", 2)
	if len(parts[1]) < 2 {
		return SubsystemUnknown
	}
	switch Subsystem(parts[1][:2]) {
	case SubsystemSS, SubsystemMM, SubsystemBU, SubsystemSP, SubsystemLO, SubsystemRE, SubsystemCB:
		return Subsystem(parts[1][:2])
	default:
		return SubsystemUnknown
	}
}

// Severity reports whether sf's identifier starts with E_ (error) or W_
// (warning). Returns SeverityError for an unrecognized code.
func (sf BnrFault) Severity() Severity {
	if strings.HasPrefix(sf.Name(), "W_") {
		return SeverityWarning
	}
	return SeverityError
}

// String implements fmt.Stringer.
func (sf BnrFault) String() string {
	return sf.Name()
}
