package xfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodCallRoundTrip(t *testing.T) {
	call := MethodCall{
		Name: MethodCashInStart,
		Params: Params{Params: []Param{
			{Value: Int4(1)},
		}},
	}
	data, err := EncodeCall(call)
	require.NoError(t, err)
	out, err := DecodeCall(data)
	require.NoError(t, err)
	assert.Equal(t, call, out)
}

func TestMethodCallRoundTripEmptyParams(t *testing.T) {
	call := NewMethodCall(MethodGetIdentification)
	data, err := EncodeCall(call)
	require.NoError(t, err)
	out, err := DecodeCall(data)
	require.NoError(t, err)
	assert.Equal(t, call, out)
}

// TestEncodeCallEmptyParamsIsSelfClosing covers spec.md §9: "Empty
// structs and empty param lists ... must serialise to self-closing
// tags."
func TestEncodeCallEmptyParamsIsSelfClosing(t *testing.T) {
	call := NewMethodCall(MethodGetIdentification)
	data, err := EncodeCall(call)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<params/>")
	assert.NotContains(t, string(data), "<params></params>")
}

// TestEncodeCallEmptyStructIsSelfClosing covers the same requirement for
// an empty struct value.
func TestEncodeCallEmptyStructIsSelfClosing(t *testing.T) {
	call := MethodCall{
		Name: MethodSetCapabilities,
		Params: Params{Params: []Param{
			{Value: StructValue(Struct{})},
		}},
	}
	data, err := EncodeCall(call)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<struct/>")
	assert.NotContains(t, string(data), "<struct></struct>")
}

func TestMethodResponseRoundTripParams(t *testing.T) {
	resp := ResponseParams(Params{Params: []Param{{Value: Int4(32)}}})
	data, err := EncodeResponse(resp)
	require.NoError(t, err)
	out, err := DecodeResponse(data)
	require.NoError(t, err)
	assert.Equal(t, resp, out)
}

func TestMethodResponseRoundTripFault(t *testing.T) {
	resp := ResponseFault(Fault{Code: 6072, String: "device busy"})
	data, err := EncodeResponse(resp)
	require.NoError(t, err)
	out, err := DecodeResponse(data)
	require.NoError(t, err)
	require.True(t, out.IsFault())
	assert.Equal(t, resp.Fault(), out.Fault())
}

func TestParseMethodNameIsCaseInsensitive(t *testing.T) {
	name, err := ParseMethodName("BNR.CASHINSTART")
	require.NoError(t, err)
	assert.Equal(t, MethodCashInStart, name)
}

func TestParseMethodNameRejectsUnknown(t *testing.T) {
	_, err := ParseMethodName("bnr.doesnotexist")
	require.Error(t, err)
	var xerr *Error
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, KindEnum, xerr.Kind)
}

func TestNestedResponseDecodesWithoutError(t *testing.T) {
	const nested = `<?xml version="1.0"?>
        <methodResponse>
          <params>
            <param>
              <value>
                <struct>
                  <member>
                    <name>outerStruct</name>
                    <value>
                      <array>
                        <data>
                          <value>
                            <struct>
                              <member>
                                <name>innerStruct</name>
                                <value>
                                  <array>
                                    <data>
                                      <value><i4>0</i4></value>
                                      <value><i4>1</i4></value>
                                    </data>
                                  </array>
                                </value>
                              </member>
                            </struct>
                          </value>
                        </data>
                      </array>
                    </value>
                  </member>
                </struct>
              </value>
            </param>
          </params>
        </methodResponse>`
	_, err := DecodeResponse([]byte(nested))
	require.NoError(t, err)
}
