package xfs

import "encoding/xml"

// Param is a single positional argument or return value in a Params list.
type Param struct {
	Value Value
}

// Params is the ordered parameter list carried by a method call or a
// successful method response.
type Params struct {
	Params []Param
}

// MarshalXML implements xml.Marshaler. An empty Params renders as
// <params></params> here -- encodeDoc collapses it to the self-closing
// <params/> spec.md §9 requires once the full document is assembled,
// since encoding/xml's Encoder has no token for a self-closing tag.
func (p Params) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, param := range p.Params {
		paramStart := xml.StartElement{Name: xml.Name{Local: "param"}}
		if err := e.EncodeToken(paramStart); err != nil {
			return err
		}
		if err := param.Value.MarshalXML(e, xml.StartElement{Name: xml.Name{Local: "value"}}); err != nil {
			return err
		}
		if err := e.EncodeToken(paramStart.End()); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML implements xml.Unmarshaler.
func (p *Params) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "param" {
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			param, err := decodeParam(d, t)
			if err != nil {
				return err
			}
			p.Params = append(p.Params, param)
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

func decodeParam(d *xml.Decoder, start xml.StartElement) (Param, error) {
	var param Param
	for {
		tok, err := d.Token()
		if err != nil {
			return Param{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "value" {
				if err := d.Skip(); err != nil {
					return Param{}, err
				}
				continue
			}
			if err := param.Value.UnmarshalXML(d, t); err != nil {
				return Param{}, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return param, nil
			}
		}
	}
}
