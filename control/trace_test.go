package control_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-bnr/bnr/tracestore"
)

func TestWithTraceRecordsCallAndResponse(t *testing.T) {
	c, dev := newTestController(t)
	store, err := tracestore.Open(filepath.Join(t.TempDir(), "trace.db"), 10)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	c.WithTrace(store, "sess-1")

	done := respondOnce(t, dev, okResponse())
	require.NoError(t, c.Reset(context.Background()))
	<-done

	recent, err := store.Recent("sess-1", 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, tracestore.KindCall, recent[0].Kind)
	assert.Equal(t, "bnr.reset", recent[0].Method)
	assert.Equal(t, tracestore.KindResponse, recent[1].Kind)
	assert.Equal(t, "bnr.reset", recent[1].Method)
}

func TestWithTraceRecordsFault(t *testing.T) {
	c, dev := newTestController(t)
	store, err := tracestore.Open(filepath.Join(t.TempDir(), "trace.db"), 10)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	c.WithTrace(store, "sess-1")

	done := respondOnce(t, dev, faultResponse(6001, "not ready"))
	assert.Error(t, c.Reset(context.Background()))
	<-done

	recent, err := store.Recent("sess-1", 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, tracestore.KindFault, recent[1].Kind)
	assert.Equal(t, int32(6001), recent[1].FaultCode)
	assert.Equal(t, "not ready", recent[1].FaultMessage)
}

func TestWithoutTraceRecordsNothing(t *testing.T) {
	c, dev := newTestController(t)
	done := respondOnce(t, dev, okResponse())
	require.NoError(t, c.Reset(context.Background()))
	<-done
	// No store attached: nothing to assert beyond Reset succeeding without
	// panicking on a nil tracer, which the run above already demonstrates.
}
