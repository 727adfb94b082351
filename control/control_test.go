package control_test

import (
	"context"
	"testing"

	"github.com/go-bnr/bnr/clog"
	"github.com/go-bnr/bnr/control"
	"github.com/go-bnr/bnr/transport"
	"github.com/go-bnr/bnr/transport/fake"
	"github.com/go-bnr/bnr/xfs"
)

// newTestController builds a Controller directly over a fake transport,
// bypassing control.Open's USB discovery and identification round trip so
// tests can drive the state machines without a real device.
func newTestController(t *testing.T) (*control.Controller, *fake.Device) {
	t.Helper()
	ep, dev := fake.New()
	tp := transport.OpenWithEndpoints(ep, clog.NewLogger("test"))
	c := control.New(tp, clog.NewLogger("test"))
	c.WithHandlers(nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	tp.Start(ctx)
	t.Cleanup(func() { _ = dev.Close() })
	return c, dev
}

// respondOnce reads one call from dev and writes resp back, failing the
// test on any transport error.
func respondOnce(t *testing.T, dev *fake.Device, resp xfs.MethodResponse) <-chan xfs.MethodCall {
	t.Helper()
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
		data, err := xfs.EncodeResponse(resp)
		if err != nil {
			close(done)
			return
		}
		if err := dev.WriteResponse(context.Background(), data); err != nil {
			close(done)
			return
		}
		done <- call
	}()
	return done
}

func okResponse() xfs.MethodResponse { return xfs.ResponseParams(xfs.Params{}) }

func paramsResponse(values ...xfs.Value) xfs.MethodResponse {
	params := make([]xfs.Param, 0, len(values))
	for _, v := range values {
		params = append(params, xfs.Param{Value: v})
	}
	return xfs.ResponseParams(xfs.Params{Params: params})
}

func faultResponse(code int32, msg string) xfs.MethodResponse {
	return xfs.ResponseFault(xfs.Fault{Code: code, String: msg})
}
