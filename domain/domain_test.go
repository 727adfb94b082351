package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-bnr/bnr/xfs"
)

func TestCapabilitiesRoundTrip(t *testing.T) {
	c := NewCapabilities()
	c.AutoPresent = true
	c.AntiFishingLevel = AntiFishingHigh
	c.PositionCapabilities.SetItems([]PositionCapabilities{
		{Position: CdrPositionTop, MaxItems: 200, Input: true},
		{Position: CdrPositionBottom, MaxItems: 600, Output: true},
	})

	got, err := CapabilitiesFromValue(c.Value())
	require.NoError(t, err)
	assert.Equal(t, c.AutoPresent, got.AutoPresent)
	assert.Equal(t, c.AntiFishingLevel, got.AntiFishingLevel)
	assert.Equal(t, c.CdType, got.CdType)
	assert.Equal(t, c.MaxOutBills, got.MaxOutBills)
	assert.Equal(t, c.RecognitionSensorType, got.RecognitionSensorType)
	require.Len(t, got.PositionCapabilities.Items(), 2)
	assert.Equal(t, int32(200), got.PositionCapabilities.Items()[0].MaxItems)
}

func TestCapabilitiesDecodeRejectsMissingMember(t *testing.T) {
	v := xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		{Name: "autoPresent", Value: xfs.Bool(true)},
	}})
	_, err := CapabilitiesFromValue(v)
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, recordCapabilities, derr.Record)
}

func TestCapabilitiesEnumDecodesUnknownToDefault(t *testing.T) {
	c := NewCapabilities()
	v := c.Value()
	s := v.Struct()
	for i, m := range s.Members {
		if m.Name == "antiFishingLevel" {
			s.Members[i].Value = xfs.Int4(99)
		}
	}
	got, err := CapabilitiesFromValue(xfs.StructValue(*s))
	require.NoError(t, err)
	assert.Equal(t, AntiFishingNormal, got.AntiFishingLevel)
}

func TestPositionCapabilitiesListTruncatesOverlongArray(t *testing.T) {
	var values []xfs.Value
	for i := 0; i < 5; i++ {
		values = append(values, PositionCapabilities{Position: CdrPositionTop}.Value())
	}
	list, err := PositionCapabilitiesListFromValue(xfs.ArrayValue(xfs.Array{Values: values}))
	require.NoError(t, err)
	assert.Len(t, list.Items(), MaxPositionCapabilities)
}

func TestCurrencyMDUConversion(t *testing.T) {
	usd := CurrencyFromCode("USD")
	assert.Equal(t, int32(2), usd.Exponent)
	assert.Equal(t, uint32(1000), usd.ToMDU(10))
	assert.Equal(t, uint32(10), usd.FromMDU(1000))

	jpy := CurrencyFromCode("JPY")
	assert.Equal(t, int32(0), jpy.Exponent)
	assert.Equal(t, uint32(500), jpy.ToMDU(500))
}

func TestDenominationRoundTrip(t *testing.T) {
	d := NewDenomination()
	d.Amount = 5000
	d.Cashbox = 0
	d.SetItems([]DenominationItem{{Unit: 1, Count: 10}, {Unit: 2, Count: 5}})

	got, err := DenominationFromValue(d.Value())
	require.NoError(t, err)
	assert.Equal(t, d.Amount, got.Amount)
	require.Len(t, got.Items(), 2)
	assert.Equal(t, int32(10), got.Items()[0].Count)
}

func newTestCashUnit(logical []LogicalCashUnit, physical []PhysicalCashUnit) CashUnit {
	var cu CashUnit
	cu.LogicalCashUnits = NewLogicalCashUnitList()
	cu.LogicalCashUnits.SetItems(logical)
	cu.PhysicalCashUnits = NewPhysicalCashUnitList()
	cu.PhysicalCashUnits.SetItems(physical)
	return cu
}

func TestCashUnitPhysicalUnitLookupByUnitID(t *testing.T) {
	cu := newTestCashUnit(
		[]LogicalCashUnit{{Number: 1, PhysicalCuIndex: 42}},
		[]PhysicalCashUnit{{UnitID: 42, Name: "recycler1"}},
	)
	got, err := CashUnitFromValue(cu.Value())
	require.NoError(t, err)
	require.Equal(t, 1, got.LogicalCashUnits.Len())
	pcu, ok := got.PhysicalUnit(got.LogicalCashUnits.Items()[0])
	require.True(t, ok)
	assert.Equal(t, "recycler1", pcu.Name)
	assert.Empty(t, got.Validate())
}

// TestCashUnitValidateReportsDanglingPhysicalReference covers spec.md §8
// scenario 4: a Logical unit whose PhysicalCuIndex names a Physical unit
// absent from the same CashUnit decodes successfully, the reference
// resolves to false, and Validate reports the inconsistency.
func TestCashUnitValidateReportsDanglingPhysicalReference(t *testing.T) {
	cu := newTestCashUnit(
		[]LogicalCashUnit{{Number: 1, UnitID: 7, PhysicalCuIndex: 99}},
		[]PhysicalCashUnit{{UnitID: 42, Name: "recycler1"}},
	)
	got, err := CashUnitFromValue(cu.Value())
	require.NoError(t, err)

	_, ok := got.PhysicalUnit(got.LogicalCashUnits.Items()[0])
	assert.False(t, ok)

	problems := got.Validate()
	require.Len(t, problems, 1)
	assert.Equal(t, uint64(7), problems[0].LogicalUnitID)
	assert.Equal(t, uint64(99), problems[0].PhysicalCuIndex)
}

// TestCashUnitListsTruncateToDocumentedMaxima covers spec.md §4.2: arrays
// decode truncating overlong wire inputs to their compile-time maximum.
func TestCashUnitListsTruncateToDocumentedMaxima(t *testing.T) {
	logical := make([]LogicalCashUnit, MaxLogicalCashUnits+5)
	for i := range logical {
		logical[i] = LogicalCashUnit{Number: int32(i)}
	}
	physical := make([]PhysicalCashUnit, MaxPhysicalCashUnits+3)
	for i := range physical {
		physical[i] = PhysicalCashUnit{UnitID: uint64(i)}
	}
	cu := newTestCashUnit(logical, physical)
	assert.Equal(t, MaxLogicalCashUnits, cu.LogicalCashUnits.Len())
	assert.Equal(t, MaxPhysicalCashUnits, cu.PhysicalCashUnits.Len())

	got, err := CashUnitFromValue(cu.Value())
	require.NoError(t, err)
	assert.Equal(t, MaxLogicalCashUnits, got.LogicalCashUnits.Len())
	assert.Equal(t, MaxPhysicalCashUnits, got.PhysicalCashUnits.Len())
}

func TestThresholdResolveUsesCountBoundaries(t *testing.T) {
	th := Threshold{Full: 100, High: 80, Low: 20, Empty: 0}
	assert.Equal(t, ThresholdFull, th.Resolve(100))
	assert.Equal(t, ThresholdHigh, th.Resolve(90))
	assert.Equal(t, ThresholdOk, th.Resolve(50))
	assert.Equal(t, ThresholdLow, th.Resolve(10))
	assert.Equal(t, ThresholdEmpty, th.Resolve(0))
}

func TestHardwareStatusFoldOrder(t *testing.T) {
	assert.Equal(t, HardwareError, FoldHardwareStatus(HardwareOk, HardwareWarning, HardwareError))
	assert.Equal(t, HardwareWarning, FoldHardwareStatus(HardwareOk, HardwareWarning, HardwareMissing))
	assert.Equal(t, HardwareMissing, FoldHardwareStatus(HardwareOk, HardwareMissing, HardwareNotification))
	assert.Equal(t, HardwareNotification, FoldHardwareStatus(HardwareOk, HardwareNotification))
	assert.Equal(t, HardwareOk, FoldHardwareStatus(HardwareOk))
}

func TestCdrStatusRoundTripAndFold(t *testing.T) {
	status := CdrStatus{
		DeviceStatus:              DeviceOnline,
		DispenserStatus:           DispenserOk,
		IntermediateStackerStatus: IntermediateStackerEmpty,
		SafeDoorStatus:            SafeDoorLocked,
		ShutterStatus:             ShutterClosed,
		TransportStatus:           TransportOk,
	}
	status.PositionStatusList.SetItems([]PositionStatus{
		{Position: CdrPositionTop, ContentStatus: ContentEmpty, ShutterStatus: ShutterClosed},
	})

	got, err := CdrStatusFromValue(status.Value())
	require.NoError(t, err)
	assert.Equal(t, HardwareOk, got.Hardware())

	got.TransportStatus = TransportInop
	assert.Equal(t, HardwareError, got.Hardware())
}

func TestSystemUseHistoryRoundTrip(t *testing.T) {
	h := SystemUseHistory{
		CurrentDateTime:               "20260730T120000",
		UpTime:                        1000,
		RecognitionSensorTemperatures: []int32{20, 21, 22, 23},
	}
	got, err := SystemUseHistoryFromValue(h.Value())
	require.NoError(t, err)
	assert.Equal(t, h.CurrentDateTime, got.CurrentDateTime)
	assert.Equal(t, h.UpTime, got.UpTime)
	assert.Equal(t, h.RecognitionSensorTemperatures, got.RecognitionSensorTemperatures)
}

func TestSystemFailureHistoryPreservesUnknownCounters(t *testing.T) {
	v := xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		{Name: "positionerCount", Value: xfs.Int4(1)},
		{Name: "recognitionSystemCount", Value: xfs.Int4(2)},
		{Name: "bottomTransportCount", Value: xfs.Int4(3)},
		{Name: "bundlerCount", Value: xfs.Int4(4)},
		{Name: "billJamCount", Value: xfs.Int4(7)},
	}})
	got, err := SystemFailureHistoryFromValue(v)
	require.NoError(t, err)
	assert.Equal(t, int32(7), got.Counters["billJamCount"])
}

func TestBillsetIDListRoundTrip(t *testing.T) {
	l := BillsetIDList{IDs: []string{"USD-001", "EUR-002"}}
	got, err := BillsetIDListFromValue(l.Value())
	require.NoError(t, err)
	assert.Equal(t, l.IDs, got.IDs)
}

func TestCallbackOperationResponseRoundTrip(t *testing.T) {
	r := CallbackOperationResponse{ID: 7, OpID: 3}
	got, err := CallbackOperationResponseFromValue(r.Value())
	require.NoError(t, err)
	assert.Equal(t, r, got)
}
