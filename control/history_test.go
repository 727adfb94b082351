package control_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-bnr/bnr/domain"
	"github.com/go-bnr/bnr/xfs"
)

func TestSystemUseHistoryDecodes(t *testing.T) {
	c, dev := newTestController(t)
	var want domain.SystemUseHistory

	done := respondOnce(t, dev, paramsResponse(want.Value()))
	_, err := c.SystemUseHistory(context.Background())
	require.NoError(t, err)
	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodGetIdentification, call.Name)
}

func TestSystemRestartHistoryDecodes(t *testing.T) {
	c, dev := newTestController(t)
	var want domain.SystemRestartHistory

	done := respondOnce(t, dev, paramsResponse(want.Value()))
	_, err := c.SystemRestartHistory(context.Background())
	require.NoError(t, err)
	<-done
}

func TestSystemFailureHistoryDecodes(t *testing.T) {
	c, dev := newTestController(t)
	var want domain.SystemFailureHistory

	done := respondOnce(t, dev, paramsResponse(want.Value()))
	_, err := c.SystemFailureHistory(context.Background())
	require.NoError(t, err)
	<-done
}
