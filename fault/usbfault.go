package fault

import "fmt"

// usbFaultOffset is the constant spec.md §3 describes as "offset by 10000
// from the underlying OS transport errors".
const usbFaultOffset = 10000

// FromOSErrorCode maps a raw OS-level USB transport error code to the
// BNR driver's disjoint UsbFault space.
func FromOSErrorCode(osCode uint32) UsbFault {
	return UsbFault(usbFaultOffset + osCode)
}

// Known reports whether sf is one of the defined variants.
func (sf UsbFault) Known() bool {
	_, ok := usbFaultNames[sf]
	return ok
}

// Name returns the variant identifier, or "Unrecognized(<code>)".
func (sf UsbFault) Name() string {
	if name, ok := usbFaultNames[sf]; ok {
		return name
	}
	return fmt.Sprintf("Unrecognized(%d)", uint32(sf))
}

// String implements fmt.Stringer.
func (sf UsbFault) String() string {
	return sf.Name()
}
