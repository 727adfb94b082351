package control_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-bnr/bnr/xfs"
)

func TestCashInStartAcceptingEndRoundTrip(t *testing.T) {
	c, dev := newTestController(t)

	done := respondOnce(t, dev, okResponse())
	require.NoError(t, c.CashInStart(context.Background()))
	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodCashInStart, call.Name)

	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.CashIn(context.Background(), nil, ""))
	call, ok = <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodCashIn, call.Name)

	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.CashInEnd(context.Background()))
	call, ok = <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodCashInEnd, call.Name)
}

func TestCashInFromIdleFailsLocallyWithoutWireTraffic(t *testing.T) {
	c, dev := newTestController(t)

	err := c.CashIn(context.Background(), nil, "")
	require.Error(t, err)

	// No call should ever have been written: confirm the pipe is idle by
	// racing a read against a cancelled context.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dev.ReadCall(ctx)
	assert.Error(t, err)
}

func TestCashInStartFailureRevertsToIdle(t *testing.T) {
	c, dev := newTestController(t)

	done := respondOnce(t, dev, faultResponse(6001, "busy"))
	err := c.CashInStart(context.Background())
	require.Error(t, err)
	<-done

	// State reverted to Idle: CashInStart should be retryable.
	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.CashInStart(context.Background()))
	<-done
}

func TestCancelDuringAcceptingMovesToCancellingThenRollback(t *testing.T) {
	c, dev := newTestController(t)

	done := respondOnce(t, dev, okResponse())
	require.NoError(t, c.CashInStart(context.Background()))
	<-done

	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.CashIn(context.Background(), nil, ""))
	<-done

	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.Cancel(context.Background()))
	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodCancel, call.Name)

	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.CashInRollback(context.Background()))
	call, ok = <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodCashInRollback, call.Name)

	// Back to Idle: CashInStart should succeed again.
	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.CashInStart(context.Background()))
	<-done
}
