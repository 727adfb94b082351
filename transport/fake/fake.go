// Package fake is an in-process mock of the BNR's four bulk endpoints,
// driving the §8 scenario tests end-to-end without a real device. It is
// grounded in the teacher's own pattern of abstracting the wire behind a
// narrow interface (cs104's APCI framing talks only to a byte slice, never
// to a raw net.Conn) generalized here to transport.Endpoints.
package fake

import (
	"context"
	"io"
	"sync"

	"github.com/go-bnr/bnr/transport"
)

// Device is the device-side handle of a mock endpoint quartet: a test
// plays the role of the firmware, reading calls written by the driver and
// writing back responses and callback calls.
type Device struct {
	callR   io.ReadCloser
	callW   io.WriteCloser
	respR   io.ReadCloser
	respW   io.WriteCloser
	cbCallR io.ReadCloser
	cbCallW io.WriteCloser
	cbRespR io.ReadCloser
	cbRespW io.WriteCloser
}

// endpoints is the driver-side (transport.Endpoints) half of the quartet.
type endpoints struct {
	callW   io.WriteCloser
	respR   io.ReadCloser
	cbCallR io.ReadCloser
	cbRespW io.WriteCloser

	mu     sync.Mutex
	closed bool
}

// New creates a connected mock endpoint quartet: the returned
// transport.Endpoints is what the driver uses, the returned *Device is
// what the test uses to play the firmware.
func New() (transport.Endpoints, *Device) {
	callR, callW := io.Pipe()
	respR, respW := io.Pipe()
	cbCallR, cbCallW := io.Pipe()
	cbRespR, cbRespW := io.Pipe()

	dev := &Device{
		callR: callR, callW: callW,
		respR: respR, respW: respW,
		cbCallR: cbCallR, cbCallW: cbCallW,
		cbRespR: cbRespR, cbRespW: cbRespW,
	}
	ep := &endpoints{
		callW: callW, respR: respR,
		cbCallR: cbCallR, cbRespW: cbRespW,
	}
	return ep, dev
}

func (e *endpoints) WriteCall(ctx context.Context, data []byte) error {
	return writeChunked(ctx, e.callW, data)
}

func (e *endpoints) ReadResponse(ctx context.Context) ([]byte, error) {
	return readChunked(ctx, e.respR)
}

func (e *endpoints) ReadCallback(ctx context.Context) ([]byte, error) {
	return readChunked(ctx, e.cbCallR)
}

func (e *endpoints) WriteCallbackResponse(ctx context.Context, data []byte) error {
	return writeChunked(ctx, e.cbRespW, data)
}

func (e *endpoints) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	e.callW.Close()
	e.respR.Close()
	e.cbCallR.Close()
	e.cbRespW.Close()
	return nil
}

// WriteResponse plays the firmware's half of a request/response exchange:
// write resp in response to whatever the driver last sent on OUT#2.
func (d *Device) WriteResponse(ctx context.Context, data []byte) error {
	return writeChunked(ctx, d.respW, data)
}

// ReadCall reads one complete method-call document the driver wrote to
// OUT#2.
func (d *Device) ReadCall(ctx context.Context) ([]byte, error) {
	return readChunked(ctx, d.callR)
}

// WriteCallback plays the firmware's half of the callback channel: push a
// callback call to the driver on IN#3.
func (d *Device) WriteCallback(ctx context.Context, data []byte) error {
	return writeChunked(ctx, d.cbCallW, data)
}

// ReadCallbackResponse reads the driver's acknowledgment of a callback
// call from OUT#4.
func (d *Device) ReadCallbackResponse(ctx context.Context) ([]byte, error) {
	return readChunked(ctx, d.cbRespR)
}

// Close closes the device-side halves of all four pipes.
func (d *Device) Close() error {
	d.callR.Close()
	d.respW.Close()
	d.cbCallW.Close()
	d.cbRespR.Close()
	return nil
}

// writeChunked and readChunked replicate the real transport's framing
// (transport.ChunkSize, short-read termination) over an io.Pipe, so tests
// exercise the same chunk-accumulation logic the USB endpoints do.
func writeChunked(ctx context.Context, w io.Writer, data []byte) error {
	errCh := make(chan error, 1)
	go func() {
		for len(data) > 0 {
			n := len(data)
			if n > transport.ChunkSize {
				n = transport.ChunkSize
			}
			if _, err := w.Write(data[:n]); err != nil {
				errCh <- err
				return
			}
			data = data[n:]
		}
		errCh <- nil
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func readChunked(ctx context.Context, r io.Reader) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	resCh := make(chan result, 1)
	go func() {
		var doc []byte
		buf := make([]byte, transport.ChunkSize)
		for {
			n, err := r.Read(buf)
			if err != nil {
				resCh <- result{err: err}
				return
			}
			doc = append(doc, buf[:n]...)
			if n < transport.ChunkSize {
				resCh <- result{data: doc}
				return
			}
		}
	}()
	select {
	case res := <-resCh:
		return res.data, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
