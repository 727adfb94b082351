package tracestore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-bnr/bnr/tracestore"
	"github.com/go-bnr/bnr/xfs"
)

func TestCallEntryEncodesWireForm(t *testing.T) {
	call := xfs.NewMethodCall(xfs.MethodReset)
	e, err := tracestore.CallEntry(call)
	require.NoError(t, err)
	assert.Equal(t, tracestore.KindCall, e.Kind)
	assert.Equal(t, "bnr.reset", e.Method)
	assert.NotEmpty(t, e.Payload)
}

func TestResponseEntryOnSuccess(t *testing.T) {
	resp := xfs.ResponseParams(xfs.Params{})
	e, err := tracestore.ResponseEntry(xfs.MethodReset, resp)
	require.NoError(t, err)
	assert.Equal(t, tracestore.KindResponse, e.Kind)
	assert.Equal(t, "bnr.reset", e.Method)
}

func TestResponseEntryOnFault(t *testing.T) {
	resp := xfs.ResponseFault(xfs.Fault{Code: 6001, String: "not ready"})
	e, err := tracestore.ResponseEntry(xfs.MethodCashInStart, resp)
	require.NoError(t, err)
	assert.Equal(t, tracestore.KindFault, e.Kind)
	assert.Equal(t, int32(6001), e.FaultCode)
	assert.Equal(t, "not ready", e.FaultMessage)
}
