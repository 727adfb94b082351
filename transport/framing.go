package transport

import "context"

// ChunkSize is the BNR's bulk transfer chunk size (spec.md §4.4, §6): a
// message is emitted as one transfer if it fits, or as a sequence of
// transfers of up to this many bytes each.
const ChunkSize = 4096

// MaxFrameBytes bounds how large an accumulated, still-incomplete document
// may grow before the reader gives up and reports a framing fault. The
// device has no documented maximum message size; this is the
// implementation-defined ceiling spec.md §4.4 calls for.
const MaxFrameBytes = 16 << 20 // 16 MiB

// rawReader reads one chunk at a time from a single bulk IN endpoint.
// usb.go's chunkReader implements it; transport/fake does not use it and
// repeats the same framing over io.Pipe in its own readChunked.
type rawReader interface {
	ReadChunk(ctx context.Context, buf []byte) (int, error)
}

// readFrame accumulates chunks of up to ChunkSize bytes from r until a
// short read (fewer than ChunkSize bytes) terminates the document, per
// spec.md §4.4's framing rule. It never returns a partial document: either
// a complete frame, or an error.
func readFrame(ctx context.Context, r rawReader) ([]byte, error) {
	var doc []byte
	buf := make([]byte, ChunkSize)
	for {
		n, err := r.ReadChunk(ctx, buf)
		if err != nil {
			return nil, err
		}
		doc = append(doc, buf[:n]...)
		if n < ChunkSize {
			return doc, nil
		}
		if len(doc) > MaxFrameBytes {
			return nil, NewError(KindUsbTransport, "readFrame", errFrameTooLarge)
		}
	}
}

var errFrameTooLarge = frameTooLargeError{}

type frameTooLargeError struct{}

func (frameTooLargeError) Error() string { return "incomplete document exceeded the framing ceiling" }

// writeChunks writes data to w in ChunkSize pieces. The BNR devices this
// has been observed against accept a single oversize bulk transfer just as
// well, but chunking here matches the read side and keeps both directions
// governed by the same constant.
func writeChunks(ctx context.Context, w rawWriter, data []byte) error {
	for len(data) > 0 {
		n := len(data)
		if n > ChunkSize {
			n = ChunkSize
		}
		if err := w.WriteChunk(ctx, data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// rawWriter writes one chunk at a time to a single bulk OUT endpoint.
type rawWriter interface {
	WriteChunk(ctx context.Context, buf []byte) error
}
