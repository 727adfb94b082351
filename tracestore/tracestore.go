// Package tracestore persists a ring of the last N method-call, response,
// and fault transcripts per session to an embedded bbolt database, for
// offline support diagnostics (spec.md's expansion, DOMAIN STACK). It is
// optional: a driver that never opens a Store simply never records
// anything, and every Controller operation works the same either way.
package tracestore

import (
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Kind distinguishes what a transcript entry recorded.
type Kind byte

const (
	KindCall Kind = iota
	KindResponse
	KindFault
)

func (k Kind) String() string {
	switch k {
	case KindCall:
		return "call"
	case KindResponse:
		return "response"
	case KindFault:
		return "fault"
	default:
		return "unknown"
	}
}

// Entry is one recorded transcript line.
type Entry struct {
	Seq          uint64
	Kind         Kind
	Method       string
	Payload      []byte
	FaultCode    int32
	FaultMessage string
	RecordedAt   time.Time
}

var (
	countersBucket = []byte("counters")
	traceBucket    = []byte("trace")
)

// Store is a bbolt-backed ring buffer of Entry, bucketed per session.
type Store struct {
	db         *bolt.DB
	maxEntries int
}

// Open creates or opens the database at path and ensures its top-level
// buckets exist, following the rubin-protocol node store's
// bolt.Open-then-create-buckets shape. maxEntries bounds how many entries Append retains per session;
// the oldest entries are evicted once a session's bucket grows past it. A
// non-positive maxEntries is rejected rather than silently keeping
// everything forever.
func Open(path string, maxEntries int) (*Store, error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("tracestore: maxEntries must be positive, got %d", maxEntries)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("tracestore: open %s: %w", path, err)
	}
	s := &Store{db: db, maxEntries: maxEntries}
	if err := db.Update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{countersBucket, traceBucket} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("create bucket %s: %w", string(b), err)
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append records e under sessionID, assigning it the session's next
// sequence number, and evicts the oldest entries once the session holds
// more than maxEntries. e.Seq and e.RecordedAt are overwritten; callers
// set Kind/Method/Payload/FaultCode/FaultMessage only.
func (s *Store) Append(sessionID string, e Entry) (Entry, error) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		seq, err := nextSeq(tx, sessionID)
		if err != nil {
			return err
		}
		e.Seq = seq
		e.RecordedAt = time.Now()

		sessionBucket, err := tx.Bucket(traceBucket).CreateBucketIfNotExists([]byte(sessionID))
		if err != nil {
			return err
		}
		if err := sessionBucket.Put(seqKey(seq), encodeEntry(e)); err != nil {
			return err
		}
		return evictOldest(sessionBucket, s.maxEntries)
	})
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Recent returns up to n of the most recently appended entries for
// sessionID, oldest first, the way a support transcript reads naturally.
func (s *Store) Recent(sessionID string, n int) ([]Entry, error) {
	var out []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		sessionBucket := tx.Bucket(traceBucket).Bucket([]byte(sessionID))
		if sessionBucket == nil {
			return nil
		}
		c := sessionBucket.Cursor()
		var all []Entry
		for k, v := c.First(); k != nil; k, v = c.Next() {
			e, err := decodeEntry(v)
			if err != nil {
				return err
			}
			all = append(all, e)
		}
		if n > 0 && len(all) > n {
			all = all[len(all)-n:]
		}
		out = all
		return nil
	})
	return out, err
}

func nextSeq(tx *bolt.Tx, sessionID string) (uint64, error) {
	b := tx.Bucket(countersBucket)
	key := []byte(sessionID)
	var next uint64
	if v := b.Get(key); v != nil {
		next = binary.BigEndian.Uint64(v) + 1
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, next)
	if err := b.Put(key, buf); err != nil {
		return 0, err
	}
	return next, nil
}

func seqKey(seq uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	return buf
}

// evictOldest drops the lowest-sequence entries in b until its key count
// is at most max, implementing the ring behavior: the store only ever
// grows forward, never shrinks from the newest end.
func evictOldest(b *bolt.Bucket, max int) error {
	// Count with a cursor: Stats reads committed pages and misses the Put
	// made earlier in this same transaction.
	c := b.Cursor()
	n := 0
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		n++
	}
	if n <= max {
		return nil
	}
	for ; n > max; n-- {
		k, _ := c.First()
		if k == nil {
			break
		}
		if err := c.Delete(); err != nil {
			return err
		}
	}
	return nil
}

// encodeEntry lays out an Entry as:
// kind u8 | faultCode i32 | recordedAt unixnano i64 |
// methodLen u16 | method | faultMsgLen u16 | faultMsg |
// payloadLen u32 | payload
func encodeEntry(e Entry) []byte {
	method := []byte(e.Method)
	faultMsg := []byte(e.FaultMessage)
	out := make([]byte, 0, 1+4+8+2+len(method)+2+len(faultMsg)+4+len(e.Payload))

	out = append(out, byte(e.Kind))
	out = appendInt32(out, e.FaultCode)
	out = appendInt64(out, e.RecordedAt.UnixNano())
	out = appendUint16Prefixed(out, method)
	out = appendUint16Prefixed(out, faultMsg)
	out = appendUint32Prefixed(out, e.Payload)
	return out
}

func decodeEntry(b []byte) (Entry, error) {
	var e Entry
	if len(b) < 1+4+8+2 {
		return e, fmt.Errorf("tracestore: truncated entry header")
	}
	e.Kind = Kind(b[0])
	e.FaultCode = int32(binary.BigEndian.Uint32(b[1:5]))
	e.RecordedAt = time.Unix(0, int64(binary.BigEndian.Uint64(b[5:13])))
	rest := b[13:]

	method, rest, err := readUint16Prefixed(rest)
	if err != nil {
		return e, err
	}
	e.Method = string(method)

	faultMsg, rest, err := readUint16Prefixed(rest)
	if err != nil {
		return e, err
	}
	e.FaultMessage = string(faultMsg)

	payload, _, err := readUint32Prefixed(rest)
	if err != nil {
		return e, err
	}
	e.Payload = payload
	return e, nil
}

func appendInt32(b []byte, v int32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	return append(b, buf[:]...)
}

func appendInt64(b []byte, v int64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	return append(b, buf[:]...)
}

func appendUint16Prefixed(b, v []byte) []byte {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(len(v)))
	b = append(b, buf[:]...)
	return append(b, v...)
}

func appendUint32Prefixed(b, v []byte) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(len(v)))
	b = append(b, buf[:]...)
	return append(b, v...)
}

func readUint16Prefixed(b []byte) (value, rest []byte, err error) {
	if len(b) < 2 {
		return nil, nil, fmt.Errorf("tracestore: truncated length prefix")
	}
	n := int(binary.BigEndian.Uint16(b[:2]))
	b = b[2:]
	if len(b) < n {
		return nil, nil, fmt.Errorf("tracestore: truncated field")
	}
	return b[:n], b[n:], nil
}

func readUint32Prefixed(b []byte) (value, rest []byte, err error) {
	if len(b) < 4 {
		return nil, nil, fmt.Errorf("tracestore: truncated length prefix")
	}
	n := int(binary.BigEndian.Uint32(b[:4]))
	b = b[4:]
	if len(b) < n {
		return nil, nil, fmt.Errorf("tracestore: truncated field")
	}
	return b[:n], b[n:], nil
}
