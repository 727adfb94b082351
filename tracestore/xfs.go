package tracestore

import "github.com/go-bnr/bnr/xfs"

// CallEntry builds an Entry recording an outgoing method call, encoding
// its wire form the same way the transport layer does before sending it.
func CallEntry(call xfs.MethodCall) (Entry, error) {
	raw, err := xfs.EncodeCall(call)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Kind: KindCall, Method: call.Name.String(), Payload: raw}, nil
}

// ResponseEntry builds an Entry recording a method response. A fault
// response is recorded with Kind KindFault, carrying its code and string
// alongside the raw encoded document, rather than as an ordinary response.
func ResponseEntry(method xfs.MethodName, resp xfs.MethodResponse) (Entry, error) {
	raw, err := xfs.EncodeResponse(resp)
	if err != nil {
		return Entry{}, err
	}
	if resp.IsFault() {
		f := resp.Fault()
		return Entry{
			Kind:         KindFault,
			Method:       method.String(),
			Payload:      raw,
			FaultCode:    f.Code,
			FaultMessage: f.String,
		}, nil
	}
	return Entry{Kind: KindResponse, Method: method.String(), Payload: raw}, nil
}
