package domain

import "github.com/go-bnr/bnr/xfs"

// MaxRecognitionSensorTemperatures bounds SystemUseHistory's per-sensor
// temperature array (bnr-xfs history/system_use_history.rs
// SENSOR_TEMPS_LEN).
const MaxRecognitionSensorTemperatures = 4

// SystemUseHistory is the device's lifetime usage telemetry, returned by
// module.getidentification for the use-history module class.
type SystemUseHistory struct {
	CurrentDateTime               string
	UpTime                        int32
	TotalUpTime                   int32
	TimeSinceOperational          int32
	SystemCycleCount              int32
	SystemTemperature             int32
	RecognitionSensorTemperatures []int32
	PowerSupplyVoltage            int32
}

const recordSystemUseHistory = "systemUseHistory"

func (h SystemUseHistory) Value() xfs.Value {
	temps := make([]xfs.Value, 0, len(h.RecognitionSensorTemperatures))
	for _, t := range h.RecognitionSensorTemperatures {
		temps = append(temps, int4Value(t))
	}
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("currentDateTime", xfs.DateTime(h.CurrentDateTime)),
		member("upTime", int4Value(h.UpTime)),
		member("totalUpTime", int4Value(h.TotalUpTime)),
		member("timeSinceOperational", int4Value(h.TimeSinceOperational)),
		member("systemCycleCount", int4Value(h.SystemCycleCount)),
		member("systemTemperature", int4Value(h.SystemTemperature)),
		member("recognitionSensorTemperatures", xfs.ArrayValue(xfs.Array{Values: temps})),
		member("powerSupplyVoltage", int4Value(h.PowerSupplyVoltage)),
	}})
}

func SystemUseHistoryFromValue(v xfs.Value) (SystemUseHistory, error) {
	var h SystemUseHistory
	s := v.Struct()
	if s == nil {
		return h, missing(recordSystemUseHistory, "<struct>")
	}
	dateTimeValue, ok := s.Get("currentDateTime")
	if !ok || dateTimeValue.Kind() != xfs.KindDateTime {
		return h, missing(recordSystemUseHistory, "currentDateTime")
	}
	h.CurrentDateTime = dateTimeValue.DateTimeString()

	var err error
	if h.UpTime, err = requireInt4(s, recordSystemUseHistory, "upTime"); err != nil {
		return h, err
	}
	if h.TotalUpTime, err = requireInt4(s, recordSystemUseHistory, "totalUpTime"); err != nil {
		return h, err
	}
	if h.TimeSinceOperational, err = requireInt4(s, recordSystemUseHistory, "timeSinceOperational"); err != nil {
		return h, err
	}
	if h.SystemCycleCount, err = requireInt4(s, recordSystemUseHistory, "systemCycleCount"); err != nil {
		return h, err
	}
	if h.SystemTemperature, err = requireInt4(s, recordSystemUseHistory, "systemTemperature"); err != nil {
		return h, err
	}
	tempsArr, err := requireArray(s, recordSystemUseHistory, "recognitionSensorTemperatures")
	if err != nil {
		return h, err
	}
	temps := tempsArr.Values
	if len(temps) > MaxRecognitionSensorTemperatures {
		temps = temps[:MaxRecognitionSensorTemperatures]
	}
	for _, tv := range temps {
		if tv.Kind() != xfs.KindInt4 {
			return h, missing(recordSystemUseHistory, "recognitionSensorTemperatures")
		}
		h.RecognitionSensorTemperatures = append(h.RecognitionSensorTemperatures, tv.Int32())
	}
	if h.PowerSupplyVoltage, err = requireInt4(s, recordSystemUseHistory, "powerSupplyVoltage"); err != nil {
		return h, err
	}
	return h, nil
}

// SystemOpeningDetails breaks down SystemRestartHistory's opening count
// by which cover or lock was involved.
type SystemOpeningDetails struct {
	WithBillStoppedCount        int32
	CashModulesLockCount        int32
	BillIntakeCoverCount        int32
	RecognitionSensorCoverCount int32
	SpineCoverCount             int32
}

const recordSystemOpeningDetails = "systemOpeningDetails"

func (d SystemOpeningDetails) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("withBillStoppedCount", int4Value(d.WithBillStoppedCount)),
		member("cashModulesLockCount", int4Value(d.CashModulesLockCount)),
		member("billIntakeCoverCount", int4Value(d.BillIntakeCoverCount)),
		member("recognitionSensorCoverCount", int4Value(d.RecognitionSensorCoverCount)),
		member("spineCoverCount", int4Value(d.SpineCoverCount)),
	}})
}

func SystemOpeningDetailsFromValue(v xfs.Value) (SystemOpeningDetails, error) {
	var d SystemOpeningDetails
	s := v.Struct()
	if s == nil {
		return d, missing(recordSystemOpeningDetails, "<struct>")
	}
	var err error
	if d.WithBillStoppedCount, err = requireInt4(s, recordSystemOpeningDetails, "withBillStoppedCount"); err != nil {
		return d, err
	}
	if d.CashModulesLockCount, err = requireInt4(s, recordSystemOpeningDetails, "cashModulesLockCount"); err != nil {
		return d, err
	}
	if d.BillIntakeCoverCount, err = requireInt4(s, recordSystemOpeningDetails, "billIntakeCoverCount"); err != nil {
		return d, err
	}
	if d.RecognitionSensorCoverCount, err = requireInt4(s, recordSystemOpeningDetails, "recognitionSensorCoverCount"); err != nil {
		return d, err
	}
	if d.SpineCoverCount, err = requireInt4(s, recordSystemOpeningDetails, "spineCoverCount"); err != nil {
		return d, err
	}
	return d, nil
}

// SystemRestartHistory tallies how often and in what state the device has
// restarted, returned by module.getidentification for the restart-history
// module class.
type SystemRestartHistory struct {
	PowerUpCount                      int32
	PowerDownWithBillStoppedCount     int32
	InternalResetCount                int32
	InternalResetWithBillStoppedCount int32
	SystemOpeningCount                int32
	SystemOpeningDetails              SystemOpeningDetails
}

const recordSystemRestartHistory = "systemRestartHistory"

func (h SystemRestartHistory) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("powerUpCount", int4Value(h.PowerUpCount)),
		member("powerDownWithBillStoppedCount", int4Value(h.PowerDownWithBillStoppedCount)),
		member("internalResetCount", int4Value(h.InternalResetCount)),
		member("internalResetWithBillStoppedCount", int4Value(h.InternalResetWithBillStoppedCount)),
		member("systemOpeningCount", int4Value(h.SystemOpeningCount)),
		member("systemOpeningDetails", h.SystemOpeningDetails.Value()),
	}})
}

func SystemRestartHistoryFromValue(v xfs.Value) (SystemRestartHistory, error) {
	var h SystemRestartHistory
	s := v.Struct()
	if s == nil {
		return h, missing(recordSystemRestartHistory, "<struct>")
	}
	var err error
	if h.PowerUpCount, err = requireInt4(s, recordSystemRestartHistory, "powerUpCount"); err != nil {
		return h, err
	}
	if h.PowerDownWithBillStoppedCount, err = requireInt4(s, recordSystemRestartHistory, "powerDownWithBillStoppedCount"); err != nil {
		return h, err
	}
	if h.InternalResetCount, err = requireInt4(s, recordSystemRestartHistory, "internalResetCount"); err != nil {
		return h, err
	}
	if h.InternalResetWithBillStoppedCount, err = requireInt4(s, recordSystemRestartHistory, "internalResetWithBillStoppedCount"); err != nil {
		return h, err
	}
	if h.SystemOpeningCount, err = requireInt4(s, recordSystemRestartHistory, "systemOpeningCount"); err != nil {
		return h, err
	}
	detailsValue, ok := s.Get("systemOpeningDetails")
	if !ok {
		return h, missing(recordSystemRestartHistory, "systemOpeningDetails")
	}
	details, err := SystemOpeningDetailsFromValue(detailsValue)
	if err != nil {
		return h, err
	}
	h.SystemOpeningDetails = details
	return h, nil
}

// SystemFailureHistory tallies bill-path and module failure events,
// returned by module.getidentification for the failure-history module
// class. The original implementation this is grounded on names around
// forty discrete counters across bill-ending and incident-start sections;
// this projection keeps four of them as named fields (positioner,
// recognition system, bottom transport, bundler) and folds the remaining
// int4 counters into Counters, keyed by
// their canonical wire member name, so a firmware revision that adds or
// removes one doesn't require a matching struct-field change here.
type SystemFailureHistory struct {
	BottomTransportCount   int32
	BundlerCount           int32
	PositionerCount        int32
	RecognitionSystemCount int32
	Counters               map[string]int32
}

const recordSystemFailureHistory = "systemFailureHistory"

func (h SystemFailureHistory) Value() xfs.Value {
	members := []xfs.Member{
		member("positionerCount", int4Value(h.PositionerCount)),
		member("recognitionSystemCount", int4Value(h.RecognitionSystemCount)),
		member("bottomTransportCount", int4Value(h.BottomTransportCount)),
		member("bundlerCount", int4Value(h.BundlerCount)),
	}
	for name, count := range h.Counters {
		members = append(members, member(name, int4Value(count)))
	}
	return xfs.StructValue(xfs.Struct{Members: members})
}

func SystemFailureHistoryFromValue(v xfs.Value) (SystemFailureHistory, error) {
	h := SystemFailureHistory{Counters: map[string]int32{}}
	s := v.Struct()
	if s == nil {
		return h, missing(recordSystemFailureHistory, "<struct>")
	}
	var err error
	if h.PositionerCount, err = requireInt4(s, recordSystemFailureHistory, "positionerCount"); err != nil {
		return h, err
	}
	if h.RecognitionSystemCount, err = requireInt4(s, recordSystemFailureHistory, "recognitionSystemCount"); err != nil {
		return h, err
	}
	if h.BottomTransportCount, err = requireInt4(s, recordSystemFailureHistory, "bottomTransportCount"); err != nil {
		return h, err
	}
	if h.BundlerCount, err = requireInt4(s, recordSystemFailureHistory, "bundlerCount"); err != nil {
		return h, err
	}
	known := map[string]bool{
		"positionerCount": true, "recognitionSystemCount": true,
		"bottomTransportCount": true, "bundlerCount": true,
	}
	for _, m := range s.Members {
		if known[m.Name] {
			continue
		}
		if m.Value.Kind() == xfs.KindInt4 {
			h.Counters[m.Name] = m.Value.Int32()
		}
	}
	return h, nil
}
