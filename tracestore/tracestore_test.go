package tracestore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-bnr/bnr/tracestore"
)

func openTestStore(t *testing.T, maxEntries int) *tracestore.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.db")
	s, err := tracestore.Open(path, maxEntries)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRejectsNonPositiveMaxEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.db")
	_, err := tracestore.Open(path, 0)
	assert.Error(t, err)
}

func TestAppendAssignsIncreasingSeq(t *testing.T) {
	s := openTestStore(t, 10)
	e1, err := s.Append("sess-1", tracestore.Entry{Kind: tracestore.KindCall, Method: "bnr.reset"})
	require.NoError(t, err)
	e2, err := s.Append("sess-1", tracestore.Entry{Kind: tracestore.KindResponse, Method: "bnr.reset"})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), e1.Seq)
	assert.Equal(t, uint64(1), e2.Seq)
}

func TestAppendKeepsSequencesIndependentPerSession(t *testing.T) {
	s := openTestStore(t, 10)
	a, err := s.Append("sess-a", tracestore.Entry{Kind: tracestore.KindCall, Method: "bnr.reset"})
	require.NoError(t, err)
	b, err := s.Append("sess-b", tracestore.Entry{Kind: tracestore.KindCall, Method: "bnr.park"})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), a.Seq)
	assert.Equal(t, uint64(0), b.Seq)
}

func TestAppendEvictsOldestBeyondMaxEntries(t *testing.T) {
	s := openTestStore(t, 3)
	for i := 0; i < 5; i++ {
		_, err := s.Append("sess-1", tracestore.Entry{Kind: tracestore.KindCall, Method: "bnr.getstatus"})
		require.NoError(t, err)
	}
	recent, err := s.Recent("sess-1", 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, uint64(2), recent[0].Seq)
	assert.Equal(t, uint64(4), recent[2].Seq)
}

func TestRecentLimitsToN(t *testing.T) {
	s := openTestStore(t, 10)
	for i := 0; i < 5; i++ {
		_, err := s.Append("sess-1", tracestore.Entry{Kind: tracestore.KindCall, Method: "bnr.getstatus"})
		require.NoError(t, err)
	}
	recent, err := s.Recent("sess-1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, uint64(3), recent[0].Seq)
	assert.Equal(t, uint64(4), recent[1].Seq)
}

func TestRecentOnUnknownSessionIsEmpty(t *testing.T) {
	s := openTestStore(t, 10)
	recent, err := s.Recent("nope", 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestEntryRoundTripsFaultFields(t *testing.T) {
	s := openTestStore(t, 10)
	e, err := s.Append("sess-1", tracestore.Entry{
		Kind:         tracestore.KindFault,
		Method:       "bnr.cashinstart",
		Payload:      []byte("<methodResponse/>"),
		FaultCode:    6001,
		FaultMessage: "not ready",
	})
	require.NoError(t, err)

	recent, err := s.Recent("sess-1", 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, e.Seq, recent[0].Seq)
	assert.Equal(t, tracestore.KindFault, recent[0].Kind)
	assert.Equal(t, int32(6001), recent[0].FaultCode)
	assert.Equal(t, "not ready", recent[0].FaultMessage)
	assert.Equal(t, []byte("<methodResponse/>"), recent[0].Payload)
	assert.False(t, recent[0].RecordedAt.IsZero())
}

func TestReopenPreservesEntriesAndCounter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.db")
	s, err := tracestore.Open(path, 10)
	require.NoError(t, err)
	_, err = s.Append("sess-1", tracestore.Entry{Kind: tracestore.KindCall, Method: "bnr.reset"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := tracestore.Open(path, 10)
	require.NoError(t, err)
	defer s2.Close()

	next, err := s2.Append("sess-1", tracestore.Entry{Kind: tracestore.KindResponse, Method: "bnr.reset"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), next.Seq)

	recent, err := s2.Recent("sess-1", 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
}
