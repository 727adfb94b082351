package domain

import "github.com/go-bnr/bnr/xfs"

// OperationID identifies the wire operation (xfs.MethodName) a device
// callback call belongs to.
type OperationID int32

// IdentificationID uniquely identifies a single callback invocation, so
// the host's response to BnrListener.operationCompleteOccured can be
// correlated back to the call that produced it.
type IdentificationID int32

// CallbackOperationResponse is the first struct param of a device-issued
// BnrListener.* callback call: which invocation this is, and which
// operation it belongs to.
type CallbackOperationResponse struct {
	ID   IdentificationID
	OpID OperationID
}

const recordCallbackOperationResponse = "callbackOperationResponse"

func (r CallbackOperationResponse) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("identificationId", int4Value(int32(r.ID))),
		member("operationId", int4Value(int32(r.OpID))),
	}})
}

func CallbackOperationResponseFromValue(v xfs.Value) (CallbackOperationResponse, error) {
	var r CallbackOperationResponse
	s := v.Struct()
	if s == nil {
		return r, missing(recordCallbackOperationResponse, "<struct>")
	}
	id, err := requireInt4(s, recordCallbackOperationResponse, "identificationId")
	if err != nil {
		return r, err
	}
	r.ID = IdentificationID(id)
	opID, err := requireInt4(s, recordCallbackOperationResponse, "operationId")
	if err != nil {
		return r, err
	}
	r.OpID = OperationID(opID)
	return r, nil
}

// CallbackStatusResponse is the second struct param of a device-issued
// BnrListener.* callback call: the status code it reports, and the result
// code the device delivers alongside it.
type CallbackStatusResponse struct {
	Status int32
	Result int32
}

const recordCallbackStatusResponse = "callbackStatusResponse"

func (r CallbackStatusResponse) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("status", int4Value(r.Status)),
		member("result", int4Value(r.Result)),
	}})
}

func CallbackStatusResponseFromValue(v xfs.Value) (CallbackStatusResponse, error) {
	var r CallbackStatusResponse
	s := v.Struct()
	if s == nil {
		return r, missing(recordCallbackStatusResponse, "<struct>")
	}
	var err error
	if r.Status, err = requireInt4(s, recordCallbackStatusResponse, "status"); err != nil {
		return r, err
	}
	if r.Result, err = requireInt4(s, recordCallbackStatusResponse, "result"); err != nil {
		return r, err
	}
	return r, nil
}
