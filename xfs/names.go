package xfs

import (
	"fmt"
	"strings"
)

// MethodName is the closed set of method names the BNR driver and the
// device exchange over the call/callback channels.
type MethodName int

// Defined method names. The two BnrListener.* names are the device-issued
// callbacks (method calls travelling IN#3 -> OUT#4, opposite direction from
// every other name here); the "Occured" spelling is the device's own, kept
// verbatim because it is a protocol wire string, not documentation prose.
//
// There is no third BnrListener.* wire name for an "intermediate occurred"
// callback: the device multiplexes that notification onto
// BnrListener.statusOccured, distinguishing it from an ordinary status
// change by the status code carried in the call's own params. Both kinds
// reach transport.Handlers.OnStatus.
const (
	MethodGetDateTime MethodName = iota
	MethodSetDateTime
	MethodCashInStart
	MethodCashIn
	MethodCashInRollback
	MethodCashInEnd
	MethodGetIdentification
	MethodGetStatus
	MethodStopSession
	MethodReset
	MethodReboot
	MethodCancel
	MethodPark
	MethodEmpty
	MethodEject
	MethodQueryCashUnit
	MethodConfigureCashUnit
	MethodUpdateCashUnit
	MethodDenominate
	MethodDispense
	MethodPresent
	MethodCancelWaitingCashTaken
	MethodRetract
	MethodSetCapabilities
	MethodOperationCompleteOccurred
	MethodStatusOccurred
)

var methodNameStrings = map[MethodName]string{
	MethodGetDateTime:              "bnr.getdatetime",
	MethodSetDateTime:              "bnr.setdatetime",
	MethodCashInStart:               "bnr.cashinstart",
	MethodCashIn:                    "bnr.cashin",
	MethodCashInRollback:            "bnr.cashinrollback",
	MethodCashInEnd:                 "bnr.cashinend",
	MethodGetIdentification:         "module.getidentification",
	MethodGetStatus:                 "bnr.getstatus",
	MethodStopSession:               "bnr.stopsession",
	MethodReset:                     "bnr.reset",
	MethodReboot:                    "bnr.reboot",
	MethodCancel:                    "bnr.cancel",
	MethodPark:                      "bnr.park",
	MethodEmpty:                     "bnr.empty",
	MethodEject:                     "bnr.eject",
	MethodQueryCashUnit:             "bnr.querycashunit",
	MethodConfigureCashUnit:         "bnr.configurecashunit",
	MethodUpdateCashUnit:            "bnr.updatecashunit",
	MethodDenominate:                "bnr.denominate",
	MethodDispense:                  "bnr.dispense",
	MethodPresent:                   "bnr.present",
	MethodCancelWaitingCashTaken:    "bnr.cancelwaitingcashtaken",
	MethodRetract:                   "bnr.retract",
	MethodSetCapabilities:           "bnr.setcapabilities",
	MethodOperationCompleteOccurred: "BnrListener.operationCompleteOccured",
	MethodStatusOccurred:            "BnrListener.statusOccured",
}

var methodNamesByWire map[string]MethodName

func init() {
	methodNamesByWire = make(map[string]MethodName, len(methodNameStrings))
	for name, wire := range methodNameStrings {
		methodNamesByWire[strings.ToLower(wire)] = name
	}
}

// String returns the wire representation of name.
func (name MethodName) String() string {
	if s, ok := methodNameStrings[name]; ok {
		return s
	}
	return fmt.Sprintf("MethodName(%d)", int(name))
}

// ParseMethodName maps a wire methodName string (case-insensitively) to its
// MethodName, or an error of KindEnum if it names no defined method.
func ParseMethodName(s string) (MethodName, error) {
	if name, ok := methodNamesByWire[strings.ToLower(s)]; ok {
		return name, nil
	}
	return 0, newError(KindEnum, "ParseMethodName", fmt.Errorf("unknown method name: %q", s))
}
