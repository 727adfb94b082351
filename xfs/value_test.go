package xfs

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestValue(v Value) ([]byte, error) {
	var buf bytes.Buffer
	e := xml.NewEncoder(&buf)
	if err := v.MarshalXML(e, xml.StartElement{Name: xml.Name{Local: "value"}}); err != nil {
		return nil, err
	}
	if err := e.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeTestValue(data []byte) (Value, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err != nil {
			return Value{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			var v Value
			if err := v.UnmarshalXML(d, start); err != nil {
				return Value{}, err
			}
			return v, nil
		}
	}
}

func TestValueRoundTripScalars(t *testing.T) {
	cases := []Value{
		Int(12345),
		Int4(-7),
		Bool(true),
		Bool(false),
		Str("hello"),
		DateTime("2024-01-02T03:04:05"),
		Base64([]byte{0x01, 0x02, 0xff}),
	}
	for _, v := range cases {
		data, err := encodeTestValue(v)
		require.NoError(t, err)
		out, err := decodeTestValue(data)
		require.NoError(t, err)
		assert.Equal(t, v, out)
	}
}

func TestValueRoundTripStruct(t *testing.T) {
	s := Struct{Members: []Member{
		{Name: "moduleType", Value: Int4(0)},
		{Name: "label", Value: Str("cash unit 1")},
	}}
	v := StructValue(s)
	data, err := encodeTestValue(v)
	require.NoError(t, err)
	out, err := decodeTestValue(data)
	require.NoError(t, err)
	require.Equal(t, KindStruct, out.Kind())
	got, ok := out.Struct().Get("label")
	require.True(t, ok)
	assert.Equal(t, "cash unit 1", got.String())
}

func TestStructGetToleratesMemberReorder(t *testing.T) {
	a := Struct{Members: []Member{{Name: "a", Value: Int4(1)}, {Name: "b", Value: Int4(2)}}}
	b := Struct{Members: []Member{{Name: "b", Value: Int4(2)}, {Name: "a", Value: Int4(1)}}}
	av, ok := a.Get("a")
	require.True(t, ok)
	bv, ok := b.Get("a")
	require.True(t, ok)
	assert.Equal(t, av, bv)
}

func TestValueRoundTripArray(t *testing.T) {
	arr := Array{Values: []Value{Int4(0), Int4(1), Str("x")}}
	v := ArrayValue(arr)
	data, err := encodeTestValue(v)
	require.NoError(t, err)
	out, err := decodeTestValue(data)
	require.NoError(t, err)
	require.Equal(t, KindArray, out.Kind())
	assert.Len(t, out.Array().Values, 3)
}

func TestValueRoundTripEmptyArray(t *testing.T) {
	v := ArrayValue(Array{})
	data, err := encodeTestValue(v)
	require.NoError(t, err)
	out, err := decodeTestValue(data)
	require.NoError(t, err)
	require.Equal(t, KindArray, out.Kind())
	assert.Empty(t, out.Array().Values)
}

func TestValueRoundTripNestedStructArray(t *testing.T) {
	inner := StructValue(Struct{Members: []Member{{Name: "innerModule", Value: Int4(0)}}})
	outer := StructValue(Struct{Members: []Member{
		{Name: "moduleType", Value: ArrayValue(Array{Values: []Value{inner}})},
	}})
	data, err := encodeTestValue(outer)
	require.NoError(t, err)
	out, err := decodeTestValue(data)
	require.NoError(t, err)
	mt, ok := out.Struct().Get("moduleType")
	require.True(t, ok)
	require.Equal(t, KindArray, mt.Kind())
	require.Len(t, mt.Array().Values, 1)
	inner2, ok := mt.Array().Values[0].Struct().Get("innerModule")
	require.True(t, ok)
	assert.Equal(t, int32(0), inner2.Int32())
}
