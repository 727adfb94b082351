package transport_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-bnr/bnr/clog"
	"github.com/go-bnr/bnr/domain"
	"github.com/go-bnr/bnr/transport"
	"github.com/go-bnr/bnr/transport/fake"
	"github.com/go-bnr/bnr/xfs"
)

func newTestTransport() (*transport.Transport, *fake.Device) {
	ep, dev := fake.New()
	tp := transport.OpenWithEndpoints(ep, clog.NewLogger("test"))
	return tp, dev
}

func TestSessionCallRoundTrip(t *testing.T) {
	tp, dev := newTestTransport()
	defer dev.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tp.Start(ctx)

	done := make(chan error, 1)
	go func() {
		raw, err := dev.ReadCall(context.Background())
		if err != nil {
			done <- err
			return
		}
		call, err := xfs.DecodeCall(raw)
		if err != nil {
			done <- err
			return
		}
		if call.Name != xfs.MethodReset {
			done <- assertionError("unexpected method")
			return
		}
		resp := xfs.ResponseParams(xfs.Params{})
		data, err := xfs.EncodeResponse(resp)
		if err != nil {
			done <- err
			return
		}
		done <- dev.WriteResponse(context.Background(), data)
	}()

	resp, err := tp.Call(context.Background(), xfs.NewMethodCall(xfs.MethodReset), time.Second)
	require.NoError(t, err)
	assert.False(t, resp.IsFault())
	require.NoError(t, <-done)
}

func TestSessionCallReturnsFault(t *testing.T) {
	tp, dev := newTestTransport()
	defer dev.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tp.Start(ctx)

	go func() {
		raw, err := dev.ReadCall(context.Background())
		if err != nil {
			return
		}
		if _, err := xfs.DecodeCall(raw); err != nil {
			return
		}
		resp := xfs.ResponseFault(xfs.Fault{Code: 6001, String: "no operation to cancel"})
		data, _ := xfs.EncodeResponse(resp)
		_ = dev.WriteResponse(context.Background(), data)
	}()

	resp, err := tp.Call(context.Background(), xfs.NewMethodCall(xfs.MethodCancel), time.Second)
	require.NoError(t, err)
	assert.True(t, resp.IsFault())
	assert.Equal(t, int32(6001), resp.Fault().Code)
}

func TestSessionCallDeadlineExceeded(t *testing.T) {
	tp, dev := newTestTransport()
	defer dev.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tp.Start(ctx)

	go func() {
		// Consume the call but never respond, forcing the deadline.
		_, _ = dev.ReadCall(context.Background())
	}()

	_, err := tp.Call(context.Background(), xfs.NewMethodCall(xfs.MethodGetStatus), 20*time.Millisecond)
	require.Error(t, err)
}

func TestCallbackMonitorDispatchesAndAcknowledges(t *testing.T) {
	tp, dev := newTestTransport()
	defer dev.Close()

	received := make(chan [4]int32, 1)
	tp.Handlers().OnOperationComplete = func(op domain.CallbackOperationResponse, status domain.CallbackStatusResponse) {
		received <- [4]int32{int32(op.OpID), int32(op.ID), status.Status, status.Result}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tp.Start(ctx)

	call := xfs.MethodCall{
		Name: xfs.MethodOperationCompleteOccurred,
		Params: xfs.Params{Params: []xfs.Param{
			{Value: domain.CallbackOperationResponse{ID: 2, OpID: 1}.Value()},
			{Value: domain.CallbackStatusResponse{Status: 0, Result: 0}.Value()},
		}},
	}
	data, err := xfs.EncodeCall(call)
	require.NoError(t, err)
	require.NoError(t, dev.WriteCallback(context.Background(), data))

	select {
	case args := <-received:
		assert.Equal(t, [4]int32{1, 2, 0, 0}, args)
	case <-time.After(time.Second):
		t.Fatal("callback handler was not invoked")
	}

	ackRaw, err := dev.ReadCallbackResponse(context.Background())
	require.NoError(t, err)
	ack, err := xfs.DecodeResponse(ackRaw)
	require.NoError(t, err)
	assert.False(t, ack.IsFault())
}

// TestCallbackMonitorDeliversStatusResult covers spec.md §8 scenario 6: a
// BnrListener.statusOccured call carrying CallbackStatusResponse{status:
// 6192, result: -1} is dispatched to the registered handler with result
// intact, and an empty-params ack is written to OUT#4 before the monitor
// reads the next callback.
func TestCallbackMonitorDeliversStatusResult(t *testing.T) {
	tp, dev := newTestTransport()
	defer dev.Close()

	received := make(chan domain.CallbackStatusResponse, 1)
	tp.Handlers().OnStatus = func(op domain.CallbackOperationResponse, status domain.CallbackStatusResponse) {
		received <- status
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tp.Start(ctx)

	call := xfs.MethodCall{
		Name: xfs.MethodStatusOccurred,
		Params: xfs.Params{Params: []xfs.Param{
			{Value: domain.CallbackOperationResponse{ID: 1, OpID: 1}.Value()},
			{Value: domain.CallbackStatusResponse{Status: 6192, Result: -1}.Value()},
		}},
	}
	data, err := xfs.EncodeCall(call)
	require.NoError(t, err)
	require.NoError(t, dev.WriteCallback(context.Background(), data))

	select {
	case status := <-received:
		assert.Equal(t, int32(6192), status.Status)
		assert.Equal(t, int32(-1), status.Result)
	case <-time.After(time.Second):
		t.Fatal("callback handler was not invoked")
	}

	ackRaw, err := dev.ReadCallbackResponse(context.Background())
	require.NoError(t, err)
	ack, err := xfs.DecodeResponse(ackRaw)
	require.NoError(t, err)
	assert.False(t, ack.IsFault())
	assert.Empty(t, ack.Params().Params)
}

type assertionError string

func (e assertionError) Error() string { return string(e) }
