package xfs

import "encoding/xml"

// MethodCall is the envelope sent on the OUT#2 call endpoint and received
// on the IN#3 callback-call endpoint: a method name plus its parameter
// list.
type MethodCall struct {
	Name   MethodName
	Params Params
}

// NewMethodCall creates a MethodCall with no parameters.
func NewMethodCall(name MethodName) MethodCall {
	return MethodCall{Name: name}
}

// MarshalXML implements xml.Marshaler.
func (c MethodCall) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "methodCall"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeElement(c.Name.String(), xml.StartElement{Name: xml.Name{Local: "methodName"}}); err != nil {
		return err
	}
	if err := c.Params.MarshalXML(e, xml.StartElement{Name: xml.Name{Local: "params"}}); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML implements xml.Unmarshaler.
func (c *MethodCall) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "methodName":
				var s string
				if err := d.DecodeElement(&s, &t); err != nil {
					return err
				}
				name, err := ParseMethodName(s)
				if err != nil {
					return err
				}
				c.Name = name
			case "params":
				if err := c.Params.UnmarshalXML(d, t); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}
