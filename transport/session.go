package transport

import (
	"context"
	"sync"
	"time"

	"github.com/go-bnr/bnr/clog"
	"github.com/go-bnr/bnr/xfs"
)

// DefaultDeadline is the read deadline applied to IN#1 when a caller does
// not supply one of its own.
const DefaultDeadline = 10 * time.Second

// Session owns the call/response exchange over OUT#2/IN#1. At most one
// exchange is in flight at a time (spec.md §4.4 "Concurrency invariant");
// callMu is the single owner serialising every OUT-#2 write and the
// matching IN-#1 read, the lock-based alternative the invariant allows in
// place of a dedicated owning goroutine with a command queue.
type Session struct {
	ep  Endpoints
	log clog.Clog

	callMu sync.Mutex

	monitor *monitor
}

// NewSession wraps ep (optionally already tunnelled by secure.go) in a
// Session with a callback monitor for IN#3 that is not yet running; Start
// launches it.
func NewSession(ep Endpoints, log clog.Clog) *Session {
	s := &Session{ep: ep, log: log}
	s.monitor = newMonitor(ep, log)
	return s
}

// Handlers registers the callback dispatch table; see callback.go.
func (s *Session) Handlers() *Handlers { return s.monitor.handlers }

// Start launches the callback monitor goroutine. Call exactly once after
// registering handlers, before issuing any requests.
func (s *Session) Start(ctx context.Context) {
	s.monitor.start(ctx)
}

// Call issues one request/response exchange: serialise call, write it to
// OUT#2, read a response from IN#1 bounded by deadline, and parse it. A
// zero deadline uses DefaultDeadline.
//
// A malformed response is returned as an error (spec.md §4.4: "Responses
// missing the expected shape are reported as parse errors, not silently
// tolerated"). A well-formed fault response is not an error here: it is
// returned as a MethodResponse with IsFault() true, untouched, for the
// caller to classify -- Session deliberately does not know which faults
// are tolerable for which command (control does, see control.Error Kind
// Xfs/Bnr and the cancel/close recovery rule).
func (s *Session) Call(ctx context.Context, call xfs.MethodCall, deadline time.Duration) (xfs.MethodResponse, error) {
	if deadline <= 0 {
		deadline = DefaultDeadline
	}

	s.callMu.Lock()
	defer s.callMu.Unlock()

	data, err := xfs.EncodeCall(call)
	if err != nil {
		return xfs.MethodResponse{}, err
	}

	s.log.Debug("bnr: transport: -> %s", call.Name)
	if err := s.ep.WriteCall(ctx, data); err != nil {
		return xfs.MethodResponse{}, err
	}

	readCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	raw, err := s.ep.ReadResponse(readCtx)
	if err != nil {
		return xfs.MethodResponse{}, err
	}

	resp, err := xfs.DecodeResponse(raw)
	if err != nil {
		return xfs.MethodResponse{}, err
	}
	if resp.IsFault() {
		s.log.Warn("bnr: transport: %s fault %d: %s", call.Name, resp.Fault().Code, resp.Fault().String)
	} else {
		s.log.Debug("bnr: transport: <- %s ok", call.Name)
	}
	return resp, nil
}

// Close stops the callback monitor and releases the endpoints. Per
// spec.md §4.4 "Shutdown", the caller is responsible for sending
// bnr.stopsession over Call before invoking Close.
func (s *Session) Close() error {
	s.monitor.stop()
	return s.ep.Close()
}
