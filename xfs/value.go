// Package xfs implements the XFS value model and its XML-RPC-derived wire
// codec: the tagged union of parameter types the BNR speaks over its four
// bulk USB endpoints, and the method call/response envelopes that carry it.
package xfs

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strconv"
)

// Kind is the discriminant of a Value: the XML element name nested directly
// inside a <value> element determines which one of the eight alternatives
// is present.
type Kind int

// The defined Value kinds.
const (
	KindInt Kind = iota
	KindInt4
	KindBase64
	KindDateTime
	KindBoolean
	KindString
	KindStruct
	KindArray
)

func (k Kind) tag() string {
	switch k {
	case KindInt:
		return "int"
	case KindInt4:
		return "i4"
	case KindBase64:
		return "base64"
	case KindDateTime:
		return "dateTime.iso8601"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindStruct:
		return "struct"
	case KindArray:
		return "array"
	default:
		return ""
	}
}

func (k Kind) String() string { return k.tag() }

// Value is the BNR wire protocol's tagged union parameter type. The zero
// Value is a KindInt of 0, matching the protocol's own default.
type Value struct {
	kind     Kind
	i64      int64
	i32      int32
	bytes    []byte
	dateTime string
	boolean  bool
	str      string
	strct    *Struct
	array    *Array
}

// Int creates a 64-bit signed integer Value (wire element <int>).
func Int(v int64) Value { return Value{kind: KindInt, i64: v} }

// Int4 creates a 32-bit signed integer Value (wire element <i4>).
func Int4(v int32) Value { return Value{kind: KindInt4, i32: v} }

// Base64 creates a base64-encoded byte string Value.
func Base64(v []byte) Value { return Value{kind: KindBase64, bytes: v} }

// DateTime creates an ISO-8601 date-time Value carried as raw text.
func DateTime(v string) Value { return Value{kind: KindDateTime, dateTime: v} }

// Bool creates a boolean Value (wire element <boolean>0|1</boolean>).
func Bool(v bool) Value { return Value{kind: KindBoolean, boolean: v} }

// Str creates a string Value.
func Str(v string) Value { return Value{kind: KindString, str: v} }

// StructValue creates a struct-typed Value.
func StructValue(s Struct) Value { return Value{kind: KindStruct, strct: &s} }

// ArrayValue creates an array-typed Value.
func ArrayValue(a Array) Value { return Value{kind: KindArray, array: &a} }

// Kind reports which alternative of the union v holds.
func (v Value) Kind() Kind { return v.kind }

// Int64 returns the wrapped value if v.Kind() == KindInt, else 0.
func (v Value) Int64() int64 { return v.i64 }

// Int32 returns the wrapped value if v.Kind() == KindInt4, else 0.
func (v Value) Int32() int32 { return v.i32 }

// Bytes returns the wrapped value if v.Kind() == KindBase64, else nil.
func (v Value) Bytes() []byte { return v.bytes }

// DateTimeString returns the raw ISO-8601 text if v.Kind() == KindDateTime.
func (v Value) DateTimeString() string { return v.dateTime }

// Bool returns the wrapped value if v.Kind() == KindBoolean, else false.
func (v Value) Bool() bool { return v.boolean }

// String returns the wrapped value if v.Kind() == KindString, else "".
func (v Value) String() string { return v.str }

// Struct returns the wrapped Struct if v.Kind() == KindStruct, else nil.
func (v Value) Struct() *Struct { return v.strct }

// Array returns the wrapped Array if v.Kind() == KindArray, else nil.
func (v Value) Array() *Array { return v.array }

// MarshalXML implements xml.Marshaler. The element name in start is used
// verbatim as the wrapping element (every caller in this package passes
// "value").
func (v Value) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	inner := xml.StartElement{Name: xml.Name{Local: v.kind.tag()}}
	var err error
	switch v.kind {
	case KindInt:
		err = e.EncodeElement(strconv.FormatInt(v.i64, 10), inner)
	case KindInt4:
		err = e.EncodeElement(strconv.FormatInt(int64(v.i32), 10), inner)
	case KindBase64:
		err = e.EncodeElement(base64.StdEncoding.EncodeToString(v.bytes), inner)
	case KindDateTime:
		err = e.EncodeElement(v.dateTime, inner)
	case KindBoolean:
		if v.boolean {
			err = e.EncodeElement("1", inner)
		} else {
			err = e.EncodeElement("0", inner)
		}
	case KindString:
		err = e.EncodeElement(v.str, inner)
	case KindStruct:
		if v.strct == nil {
			v.strct = &Struct{}
		}
		err = v.strct.MarshalXML(e, inner)
	case KindArray:
		if v.array == nil {
			v.array = &Array{}
		}
		err = v.array.MarshalXML(e, inner)
	default:
		return newError(KindXfs, "Value.MarshalXML", fmt.Errorf("unknown value kind %d", v.kind))
	}
	if err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML implements xml.Unmarshaler.
func (v *Value) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := v.decodeChild(d, t); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

func (v *Value) decodeChild(d *xml.Decoder, t xml.StartElement) error {
	switch t.Name.Local {
	case "int":
		var s string
		if err := d.DecodeElement(&s, &t); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return newError(KindParsing, "Value.int", err)
		}
		*v = Int(n)
	case "i4":
		var s string
		if err := d.DecodeElement(&s, &t); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return newError(KindParsing, "Value.i4", err)
		}
		*v = Int4(int32(n))
	case "base64":
		var s string
		if err := d.DecodeElement(&s, &t); err != nil {
			return err
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return newError(KindParsing, "Value.base64", err)
		}
		*v = Base64(b)
	case "dateTime.iso8601":
		var s string
		if err := d.DecodeElement(&s, &t); err != nil {
			return err
		}
		*v = DateTime(s)
	case "boolean":
		var s string
		if err := d.DecodeElement(&s, &t); err != nil {
			return err
		}
		*v = Bool(s == "1")
	case "string":
		var s string
		if err := d.DecodeElement(&s, &t); err != nil {
			return err
		}
		*v = Str(s)
	case "struct":
		var s Struct
		if err := s.UnmarshalXML(d, t); err != nil {
			return err
		}
		*v = StructValue(s)
	case "array":
		var a Array
		if err := a.UnmarshalXML(d, t); err != nil {
			return err
		}
		*v = ArrayValue(a)
	default:
		return newError(KindParsing, "Value", fmt.Errorf("unknown value element %q", t.Name.Local))
	}
	return nil
}

// Member is a single name/value pair inside a Struct.
type Member struct {
	Name  string
	Value Value
}

// Struct is the XFS `struct` value: an ordered list of named members.
// Decoders must tolerate any member order (spec.md §8), so Struct exposes
// lookup by name rather than relying on positional access; this includes
// a fault's two fixed members (see FaultFromValue).
type Struct struct {
	Members []Member
}

// Get returns the value of the first member named name, and whether it was
// found.
func (s Struct) Get(name string) (Value, bool) {
	for _, m := range s.Members {
		if m.Name == name {
			return m.Value, true
		}
	}
	return Value{}, false
}

// MarshalXML implements xml.Marshaler. An empty Struct renders as
// <struct></struct> here; encodeDoc collapses it to the self-closing
// <struct/> spec.md §9 requires (see xfs.encodeDoc).
func (s Struct) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, m := range s.Members {
		memberStart := xml.StartElement{Name: xml.Name{Local: "member"}}
		if err := e.EncodeToken(memberStart); err != nil {
			return err
		}
		if err := e.EncodeElement(m.Name, xml.StartElement{Name: xml.Name{Local: "name"}}); err != nil {
			return err
		}
		if err := m.Value.MarshalXML(e, xml.StartElement{Name: xml.Name{Local: "value"}}); err != nil {
			return err
		}
		if err := e.EncodeToken(memberStart.End()); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML implements xml.Unmarshaler.
func (s *Struct) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "member" {
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			m, err := decodeMember(d, t)
			if err != nil {
				return err
			}
			s.Members = append(s.Members, m)
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

func decodeMember(d *xml.Decoder, start xml.StartElement) (Member, error) {
	var m Member
	for {
		tok, err := d.Token()
		if err != nil {
			return Member{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "name":
				if err := d.DecodeElement(&m.Name, &t); err != nil {
					return Member{}, err
				}
			case "value":
				if err := m.Value.UnmarshalXML(d, t); err != nil {
					return Member{}, err
				}
			default:
				if err := d.Skip(); err != nil {
					return Member{}, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return m, nil
			}
		}
	}
}

// Array is the XFS `array` value: an ordered list of Values of possibly
// differing kinds.
type Array struct {
	Values []Value
}

// MarshalXML implements xml.Marshaler.
func (a Array) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if len(a.Values) > 0 {
		dataStart := xml.StartElement{Name: xml.Name{Local: "data"}}
		if err := e.EncodeToken(dataStart); err != nil {
			return err
		}
		for _, v := range a.Values {
			if err := v.MarshalXML(e, xml.StartElement{Name: xml.Name{Local: "value"}}); err != nil {
				return err
			}
		}
		if err := e.EncodeToken(dataStart.End()); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML implements xml.Unmarshaler.
func (a *Array) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "data" {
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			if err := a.decodeData(d, t); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

func (a *Array) decodeData(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "value" {
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			var v Value
			if err := v.UnmarshalXML(d, t); err != nil {
				return err
			}
			a.Values = append(a.Values, v)
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}
