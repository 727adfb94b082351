// Package domain holds the BNR's named record types: capabilities, cash
// units, currency and denominations, status blocks, fault-adjacent history
// blocks, callback payloads, and version tuples. Each record declares a
// canonical struct-member name and knows how to project to and from an
// xfs.Value, per the single-canonical-projection contract.
package domain

import (
	"fmt"

	"github.com/go-bnr/bnr/xfs"
)

// Error wraps a domain decode failure: a required member absent, or present
// with the wrong value kind. It carries no error Kind of its own; the
// control package wraps it as a parsing error.
type Error struct {
	Record string
	Member string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("domain: %s: member %q: %v", e.Record, e.Member, e.Err)
	}
	return fmt.Sprintf("domain: %s: missing or mistyped member %q", e.Record, e.Member)
}

func (e *Error) Unwrap() error { return e.Err }

func missing(record, member string) error {
	return &Error{Record: record, Member: member}
}

// requireStruct looks up member by name in s and reports a domain.Error
// naming record if absent or not a struct.
func requireStruct(s *xfs.Struct, record, member string) (*xfs.Struct, error) {
	v, ok := s.Get(member)
	if !ok || v.Kind() != xfs.KindStruct {
		return nil, missing(record, member)
	}
	return v.Struct(), nil
}

func requireArray(s *xfs.Struct, record, member string) (*xfs.Array, error) {
	v, ok := s.Get(member)
	if !ok || v.Kind() != xfs.KindArray {
		return nil, missing(record, member)
	}
	return v.Array(), nil
}

func requireBool(s *xfs.Struct, record, member string) (bool, error) {
	v, ok := s.Get(member)
	if !ok || v.Kind() != xfs.KindBoolean {
		return false, missing(record, member)
	}
	return v.Bool(), nil
}

func requireInt4(s *xfs.Struct, record, member string) (int32, error) {
	v, ok := s.Get(member)
	if !ok || v.Kind() != xfs.KindInt4 {
		return 0, missing(record, member)
	}
	return v.Int32(), nil
}

func requireString(s *xfs.Struct, record, member string) (string, error) {
	v, ok := s.Get(member)
	if !ok || v.Kind() != xfs.KindString {
		return "", missing(record, member)
	}
	return v.String(), nil
}

// optionalInt4 decodes member as an int32, defaulting to def if the member
// is absent or the wrong kind -- used for the forward-compatible-decode
// fields where a wire record may omit a value without failing the whole
// decode.
func optionalInt4(s *xfs.Struct, member string, def int32) int32 {
	v, ok := s.Get(member)
	if !ok || v.Kind() != xfs.KindInt4 {
		return def
	}
	return v.Int32()
}

func boolValue(b bool) xfs.Value { return xfs.Bool(b) }

func member(name string, v xfs.Value) xfs.Member { return xfs.Member{Name: name, Value: v} }

// FixedList is a fixed-capacity, allocation-stable collection: the Domain
// Model's arrays all have a compile-time maximum and an inline logical
// size (spec.md §4.2 "Arrays"). Decoding truncates overlong wire inputs
// and records the effective size rather than failing or reallocating
// without bound.
type FixedList[T any] struct {
	max   int
	items []T
}

// NewFixedList creates an empty FixedList with the given maximum capacity.
func NewFixedList[T any](max int) FixedList[T] {
	return FixedList[T]{max: max}
}

// Max returns the compile-time maximum capacity.
func (l FixedList[T]) Max() int { return l.max }

// Len returns the effective logical size.
func (l FixedList[T]) Len() int { return len(l.items) }

// Items returns the stored elements, truncated to Max.
func (l FixedList[T]) Items() []T { return l.items }

// SetItems stores items, truncating silently to Max if items exceeds it.
// The caller that needs to know about truncation should compare
// len(items) against Max itself before calling SetItems.
func (l *FixedList[T]) SetItems(items []T) {
	if len(items) > l.max {
		items = items[:l.max]
	}
	l.items = items
}

// Append adds v if below capacity, reporting whether it was stored.
func (l *FixedList[T]) Append(v T) bool {
	if len(l.items) >= l.max {
		return false
	}
	l.items = append(l.items, v)
	return true
}
