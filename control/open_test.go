package control_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-bnr/bnr/clog"
	"github.com/go-bnr/bnr/control"
	"github.com/go-bnr/bnr/transport/fake"
	"github.com/go-bnr/bnr/xfs"
)

func TestOpenReadsIdentificationBeforeReturning(t *testing.T) {
	ep, dev := fake.New()
	defer dev.Close()

	done := make(chan xfs.MethodCall, 1)
	go func() {
		raw, err := dev.ReadCall(context.Background())
		if err != nil {
			close(done)
			return
		}
		call, err := xfs.DecodeCall(raw)
		if err != nil {
			close(done)
			return
		}
		data, _ := xfs.EncodeResponse(okResponse())
		_ = dev.WriteResponse(context.Background(), data)
		done <- call
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c, err := control.OpenWithEndpoints(ctx, ep, clog.NewLogger("test"), 0, nil)
	require.NoError(t, err)
	require.NotNil(t, c)

	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodGetIdentification, call.Name)
	require.Len(t, call.Params.Params, 1)
	assert.Equal(t, int64(control.MainModuleClass), call.Params.Params[0].Value.Int64())
}

func TestOpenFailsOnIdentificationFault(t *testing.T) {
	ep, dev := fake.New()
	defer dev.Close()

	go func() {
		raw, err := dev.ReadCall(context.Background())
		if err != nil {
			return
		}
		if _, err := xfs.DecodeCall(raw); err != nil {
			return
		}
		data, _ := xfs.EncodeResponse(faultResponse(6001, "not ready"))
		_ = dev.WriteResponse(context.Background(), data)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, err := control.OpenWithEndpoints(ctx, ep, clog.NewLogger("test"), 0, nil)
	require.Error(t, err)
}
