package domain

import "github.com/go-bnr/bnr/xfs"

// BillsetInfo identifies one recognition billset (the firmware bundle
// that teaches the device to recognize a given currency's notes) and the
// module/component/version triple it targets.
type BillsetInfo struct {
	BillsetID     string
	ModuleType    int32
	ComponentType int32
	Version       Version
}

const recordBillsetInfo = "billsetInfo"

func (b BillsetInfo) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("billsetId", xfs.Str(b.BillsetID)),
		member("moduleType", int4Value(b.ModuleType)),
		member("componentType", int4Value(b.ComponentType)),
		member("version", b.Version.Value()),
	}})
}

func BillsetInfoFromValue(v xfs.Value) (BillsetInfo, error) {
	var b BillsetInfo
	s := v.Struct()
	if s == nil {
		return b, missing(recordBillsetInfo, "<struct>")
	}
	var err error
	if b.BillsetID, err = requireString(s, recordBillsetInfo, "billsetId"); err != nil {
		return b, err
	}
	if b.ModuleType, err = requireInt4(s, recordBillsetInfo, "moduleType"); err != nil {
		return b, err
	}
	if b.ComponentType, err = requireInt4(s, recordBillsetInfo, "componentType"); err != nil {
		return b, err
	}
	versionValue, ok := s.Get("version")
	if !ok {
		return b, missing(recordBillsetInfo, "version")
	}
	if b.Version, err = VersionFromValue(versionValue); err != nil {
		return b, err
	}
	return b, nil
}

// BillsetIDList is the set of billset IDs currently loaded on the device,
// reported by module.getidentification for the billset module class.
type BillsetIDList struct {
	IDs []string
}

const recordBillsetIDList = "billsetIdList"

func (l BillsetIDList) Value() xfs.Value {
	values := make([]xfs.Value, 0, len(l.IDs))
	for _, id := range l.IDs {
		values = append(values, xfs.Str(id))
	}
	return xfs.ArrayValue(xfs.Array{Values: values})
}

func BillsetIDListFromValue(v xfs.Value) (BillsetIDList, error) {
	var l BillsetIDList
	arr := v.Array()
	if arr == nil {
		return l, missing(recordBillsetIDList, "<array>")
	}
	for _, ev := range arr.Values {
		if ev.Kind() != xfs.KindString {
			return l, missing(recordBillsetIDList, "<string>")
		}
		l.IDs = append(l.IDs, ev.String())
	}
	return l, nil
}
