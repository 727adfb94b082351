package xfs

import (
	"encoding/xml"
	"fmt"
)

// MethodResponse is the envelope returned on the IN#1 response endpoint and
// sent on the OUT#4 callback-response endpoint: either a successful Params
// list or a Fault, never both.
type MethodResponse struct {
	isFault bool
	params  Params
	fault   Fault
}

// ResponseParams wraps a successful Params result.
func ResponseParams(p Params) MethodResponse {
	return MethodResponse{params: p}
}

// ResponseFault wraps a Fault result.
func ResponseFault(f Fault) MethodResponse {
	return MethodResponse{isFault: true, fault: f}
}

// IsFault reports whether r carries a Fault rather than Params.
func (r MethodResponse) IsFault() bool { return r.isFault }

// Params returns the wrapped Params. Valid only if !r.IsFault().
func (r MethodResponse) Params() Params { return r.params }

// Fault returns the wrapped Fault. Valid only if r.IsFault().
func (r MethodResponse) Fault() Fault { return r.fault }

// MarshalXML implements xml.Marshaler.
func (r MethodResponse) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "methodResponse"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if r.isFault {
		faultStart := xml.StartElement{Name: xml.Name{Local: "fault"}}
		if err := e.EncodeToken(faultStart); err != nil {
			return err
		}
		if err := r.fault.AsValue().MarshalXML(e, xml.StartElement{Name: xml.Name{Local: "value"}}); err != nil {
			return err
		}
		if err := e.EncodeToken(faultStart.End()); err != nil {
			return err
		}
	} else {
		if err := r.params.MarshalXML(e, xml.StartElement{Name: xml.Name{Local: "params"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML implements xml.Unmarshaler.
func (r *MethodResponse) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "params":
				var p Params
				if err := p.UnmarshalXML(d, t); err != nil {
					return err
				}
				*r = ResponseParams(p)
			case "fault":
				fv, err := decodeFaultValue(d, t)
				if err != nil {
					return err
				}
				*r = ResponseFault(fv)
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

func decodeFaultValue(d *xml.Decoder, start xml.StartElement) (Fault, error) {
	for {
		tok, err := d.Token()
		if err != nil {
			return Fault{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "value" {
				if err := d.Skip(); err != nil {
					return Fault{}, err
				}
				continue
			}
			var v Value
			if err := v.UnmarshalXML(d, t); err != nil {
				return Fault{}, err
			}
			return FaultFromValue(v), nil
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return Fault{}, fmt.Errorf("xfs: fault element missing a value child")
			}
		}
	}
}
