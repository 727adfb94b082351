package xfs

// Fault is the error alternative of a method response: a fixed two-member
// struct carrying the device's faultCode/faultString pair (the faultCode
// is the BnrFault/UsbFault wire value; see package fault for decoding it).
type Fault struct {
	Code   int32
	String string
}

// AsValue renders the fault as the <value><struct>...</struct></value>
// wrapper the wire protocol actually carries (see bnr-xfs/src/xfs/fault.rs
// in the retrieved Rust source: a fault is itself encoded as a struct
// value, not a bare pair of elements).
func (f Fault) AsValue() Value {
	return StructValue(Struct{Members: []Member{
		{Name: "faultCode", Value: Int4(f.Code)},
		{Name: "faultString", Value: Str(f.String)},
	}})
}

// FaultFromValue decodes a Fault out of its struct-value wire encoding.
// Lookup is by member name, not position, tolerating reordering per
// spec.md §8.
func FaultFromValue(v Value) Fault {
	var f Fault
	s := v.Struct()
	if s == nil {
		return f
	}
	if code, ok := s.Get("faultCode"); ok {
		f.Code = code.Int32()
	}
	if str, ok := s.Get("faultString"); ok {
		f.String = str.String()
	}
	return f
}
