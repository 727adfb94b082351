package transport

import "github.com/go-bnr/bnr/clog"

// Transport owns the USB device handle and interface for its full
// lifetime (spec.md §5 "Resource policy"): no other component may touch
// them directly. It exposes only the Session for issuing requests and
// registering callback handlers.
type Transport struct {
	*Session
}

// Open discovers and claims the BNR over USB (spec.md §4.4 "Discovery"),
// optionally wraps it in a secure tunnel if sharedSecret is non-nil, and
// returns a Transport with its callback monitor not yet started -- call
// Start after registering callback handlers via Handlers().
func Open(cfg Config, sharedSecret []byte, log clog.Clog) (*Transport, error) {
	ep, err := OpenUSB(cfg, log)
	if err != nil {
		return nil, err
	}
	if sharedSecret != nil {
		ep, err = NewSecureTunnel(ep, sharedSecret)
		if err != nil {
			return nil, err
		}
	}
	return &Transport{Session: NewSession(ep, log)}, nil
}

// OpenWithEndpoints builds a Transport over an already-constructed
// Endpoints, bypassing USB discovery entirely -- the entry point
// transport/fake and tests use to drive the stack without real hardware.
func OpenWithEndpoints(ep Endpoints, log clog.Clog) *Transport {
	return &Transport{Session: NewSession(ep, log)}
}
