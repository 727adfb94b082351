package control_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-bnr/bnr/xfs"
)

func TestResetClearsCashInAndDispenseState(t *testing.T) {
	c, dev := newTestController(t)

	done := respondOnce(t, dev, okResponse())
	require.NoError(t, c.CashInStart(context.Background()))
	<-done

	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.Reset(context.Background()))
	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodReset, call.Name)

	// Cash-in state reverted to Idle: CashInStart is valid again.
	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.CashInStart(context.Background()))
	<-done
}

func TestCancelToleratesFault(t *testing.T) {
	c, dev := newTestController(t)

	done := respondOnce(t, dev, faultResponse(6001, "no operation to cancel"))
	err := c.Cancel(context.Background())
	require.NoError(t, err)
	<-done
}

func TestCloseToleratesFaultAndClosesTransport(t *testing.T) {
	c, dev := newTestController(t)

	done := respondOnce(t, dev, faultResponse(6001, "already stopped"))
	require.NoError(t, c.Close(context.Background()))
	<-done
}

func TestGetSetDateTimeRoundTrip(t *testing.T) {
	c, dev := newTestController(t)

	const raw = "20260730T120000"
	done := respondOnce(t, dev, paramsResponse(xfs.DateTime(raw)))
	got, err := c.GetDateTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, raw, got)
	<-done

	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.SetDateTime(context.Background(), raw))
	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodSetDateTime, call.Name)
	require.Len(t, call.Params.Params, 1)
	assert.Equal(t, raw, call.Params.Params[0].Value.DateTimeString())
}

func TestGetDateTimeMissingParamIsParseError(t *testing.T) {
	c, dev := newTestController(t)

	done := respondOnce(t, dev, okResponse())
	_, err := c.GetDateTime(context.Background())
	require.Error(t, err)
	<-done
}
