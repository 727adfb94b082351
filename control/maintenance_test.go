package control_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-bnr/bnr/xfs"
)

func TestEmptySendsPcuNameAndToFloat(t *testing.T) {
	c, dev := newTestController(t)

	done := respondOnce(t, dev, okResponse())
	require.NoError(t, c.Empty(context.Background(), "recycler1", true))
	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodEmpty, call.Name)
	require.Len(t, call.Params.Params, 2)
	assert.Equal(t, "recycler1", call.Params.Params[0].Value.String())
	assert.True(t, call.Params.Params[1].Value.Bool())
}

func TestParkRoundTrip(t *testing.T) {
	c, dev := newTestController(t)

	done := respondOnce(t, dev, okResponse())
	require.NoError(t, c.Park(context.Background()))
	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodPark, call.Name)
}
