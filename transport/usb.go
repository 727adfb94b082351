package transport

import (
	"context"
	"fmt"

	"github.com/google/gousb"

	"github.com/go-bnr/bnr/clog"
)

// BNR USB vendor/product id and endpoint addresses (spec.md §4.4, §6;
// grounded on bnr-xfs/src/device_handle.rs's BNR_VID/BNR_PID/BNR_*_EP
// constants).
const (
	DefaultVendorID  = 0x0bed
	DefaultProductID = 0x0a00

	callEndpoint             = 2    // OUT#2, host -> device method calls
	responseEndpoint         = 0x81 // IN#1, device -> host method responses
	callbackCallEndpoint     = 0x83 // IN#3, device -> host callback calls
	callbackResponseEndpoint = 4    // OUT#4, host -> device callback acks
)

// Config configures the USB transport. Zero-valued fields take the
// defaults documented against each one.
type Config struct {
	// VendorID/ProductID default to the BNR's own values; overridable for
	// bench rigs and simulators that enumerate under a different pair.
	VendorID  gousb.ID
	ProductID gousb.ID

	// CallEndpoint/ResponseEndpoint/CallbackCallEndpoint/
	// CallbackResponseEndpoint default to the BNR's own OUT#2/IN#1/IN#3/
	// OUT#4 addresses; overridable for simulators that expose the same
	// four-endpoint shape under different addresses.
	CallEndpoint             int
	ResponseEndpoint         int
	CallbackCallEndpoint     int
	CallbackResponseEndpoint int
}

func (c Config) vendorID() gousb.ID {
	if c.VendorID == 0 {
		return DefaultVendorID
	}
	return c.VendorID
}

func (c Config) productID() gousb.ID {
	if c.ProductID == 0 {
		return DefaultProductID
	}
	return c.ProductID
}

func (c Config) callEndpoint() int {
	if c.CallEndpoint == 0 {
		return callEndpoint
	}
	return c.CallEndpoint
}

func (c Config) responseEndpoint() int {
	if c.ResponseEndpoint == 0 {
		return responseEndpoint
	}
	return c.ResponseEndpoint
}

func (c Config) callbackCallEndpoint() int {
	if c.CallbackCallEndpoint == 0 {
		return callbackCallEndpoint
	}
	return c.CallbackCallEndpoint
}

func (c Config) callbackResponseEndpoint() int {
	if c.CallbackResponseEndpoint == 0 {
		return callbackResponseEndpoint
	}
	return c.CallbackResponseEndpoint
}

// usbEndpoints implements Endpoints over a real claimed USB interface via
// gousb, the out-of-pack counterpart of the retrieved pack's own
// descriptor-parsing code (Daedaluz-gousb in other_examples), named rather
// than grounded per SPEC_FULL.md §2 DOMAIN STACK.
type usbEndpoints struct {
	log     clog.Clog
	ctx     *gousb.Context
	dev     *gousb.Device
	cfg     *gousb.Config
	intf    *gousb.Interface
	call    *gousb.OutEndpoint
	resp    *gousb.InEndpoint
	cbCall  *gousb.InEndpoint
	cbResp  *gousb.OutEndpoint
}

// OpenUSB discovers the BNR by VendorID/ProductID, opens it, reads the
// language and interface string descriptors on a best-effort basis
// (spec.md §4.4 "Discovery": failures logged but non-fatal), and claims
// interface 0.
func OpenUSB(cfg Config, log clog.Clog) (Endpoints, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(cfg.vendorID(), cfg.productID())
	if err != nil {
		ctx.Close()
		return nil, NewError(KindUsbTransport, "OpenUSB", err)
	}
	if dev == nil {
		ctx.Close()
		return nil, NewError(KindUsbTransport, "OpenUSB", fmt.Errorf(
			"no USB device with vendor=%#04x product=%#04x", cfg.vendorID(), cfg.productID()))
	}

	if err := dev.SetAutoDetach(true); err != nil {
		log.Warn("bnr: usb: set auto detach: %v", err)
	}

	if manufacturer, err := dev.Manufacturer(); err != nil {
		log.Warn("bnr: usb: read manufacturer string descriptor: %v", err)
	} else {
		log.Debug("bnr: usb: manufacturer=%q", manufacturer)
	}
	if product, err := dev.Product(); err != nil {
		log.Warn("bnr: usb: read product string descriptor: %v", err)
	} else {
		log.Debug("bnr: usb: product=%q", product)
	}

	gcfg, err := dev.Config(1)
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, NewError(KindUsbTransport, "OpenUSB", fmt.Errorf("select config: %w", err))
	}
	intf, err := gcfg.Interface(0, 0)
	if err != nil {
		gcfg.Close()
		dev.Close()
		ctx.Close()
		return nil, NewError(KindUsbTransport, "OpenUSB", fmt.Errorf("claim interface 0: %w", err))
	}

	call, err := intf.OutEndpoint(cfg.callEndpoint())
	if err != nil {
		return nil, closeAndWrap(intf, gcfg, dev, ctx, "call endpoint", err)
	}
	resp, err := intf.InEndpoint(cfg.responseEndpoint())
	if err != nil {
		return nil, closeAndWrap(intf, gcfg, dev, ctx, "response endpoint", err)
	}
	cbCall, err := intf.InEndpoint(cfg.callbackCallEndpoint())
	if err != nil {
		return nil, closeAndWrap(intf, gcfg, dev, ctx, "callback call endpoint", err)
	}
	cbResp, err := intf.OutEndpoint(cfg.callbackResponseEndpoint())
	if err != nil {
		return nil, closeAndWrap(intf, gcfg, dev, ctx, "callback response endpoint", err)
	}

	return &usbEndpoints{
		log: log, ctx: ctx, dev: dev, cfg: gcfg, intf: intf,
		call: call, resp: resp, cbCall: cbCall, cbResp: cbResp,
	}, nil
}

func closeAndWrap(intf *gousb.Interface, cfg *gousb.Config, dev *gousb.Device, ctx *gousb.Context, what string, err error) error {
	intf.Close()
	cfg.Close()
	dev.Close()
	ctx.Close()
	return NewError(KindUsbTransport, "OpenUSB", fmt.Errorf("open %s: %w", what, err))
}

func (e *usbEndpoints) WriteCall(ctx context.Context, data []byte) error {
	return writeChunks(ctx, chunkWriter{e.call}, data)
}

func (e *usbEndpoints) ReadResponse(ctx context.Context) ([]byte, error) {
	return readFrame(ctx, chunkReader{e.resp})
}

func (e *usbEndpoints) ReadCallback(ctx context.Context) ([]byte, error) {
	return readFrame(ctx, chunkReader{e.cbCall})
}

func (e *usbEndpoints) WriteCallbackResponse(ctx context.Context, data []byte) error {
	return writeChunks(ctx, chunkWriter{e.cbResp}, data)
}

func (e *usbEndpoints) Close() error {
	e.intf.Close()
	e.cfg.Close()
	err := e.dev.Close()
	e.ctx.Close()
	if err != nil {
		return NewError(KindUsbTransport, "Close", err)
	}
	return nil
}

// chunkReader/chunkWriter adapt gousb's io.Reader/io.Writer endpoints to
// this package's context-aware rawReader/rawWriter. gousb's bulk transfer
// does not accept a context directly; the read/write runs to completion
// or to the endpoint's own libusb timeout, whichever is shorter. Deadlines
// on IN#1 are enforced one level up, in Session.Call.
type chunkReader struct{ ep *gousb.InEndpoint }

func (r chunkReader) ReadChunk(ctx context.Context, buf []byte) (int, error) {
	n, err := r.ep.Read(buf)
	if err != nil {
		return n, NewError(KindUsbTransport, "ReadChunk", err)
	}
	return n, nil
}

type chunkWriter struct{ ep *gousb.OutEndpoint }

func (w chunkWriter) WriteChunk(ctx context.Context, buf []byte) error {
	_, err := w.ep.Write(buf)
	if err != nil {
		return NewError(KindUsbTransport, "WriteChunk", err)
	}
	return nil
}
