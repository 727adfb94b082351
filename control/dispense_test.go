package control_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-bnr/bnr/domain"
	"github.com/go-bnr/bnr/xfs"
)

func TestDenominateDispensePresentRoundTrip(t *testing.T) {
	c, dev := newTestController(t)
	req := domain.NewDispenseRequest()
	req.Currency = domain.CurrencyFromCode("EUR")

	done := respondOnce(t, dev, okResponse())
	require.NoError(t, c.Denominate(context.Background(), req))
	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodDenominate, call.Name)

	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.Dispense(context.Background(), req))
	call, ok = <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodDispense, call.Name)

	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.Present(context.Background()))
	call, ok = <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodPresent, call.Name)

	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.CancelWaitingCashTaken(context.Background()))
	call, ok = <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodCancelWaitingCashTaken, call.Name)
}

func TestDispenseBeforeDenominateFailsLocally(t *testing.T) {
	c, _ := newTestController(t)
	err := c.Dispense(context.Background(), domain.NewDispenseRequest())
	require.Error(t, err)
}

func TestRetractValidFromDispensedOrPresented(t *testing.T) {
	c, dev := newTestController(t)
	req := domain.NewDispenseRequest()

	done := respondOnce(t, dev, okResponse())
	require.NoError(t, c.Denominate(context.Background(), req))
	<-done

	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.Dispense(context.Background(), req))
	<-done

	done = respondOnce(t, dev, okResponse())
	require.NoError(t, c.Retract(context.Background()))
	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodRetract, call.Name)
}
