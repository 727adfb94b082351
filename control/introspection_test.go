package control_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-bnr/bnr/domain"
	"github.com/go-bnr/bnr/xfs"
)

func TestGetStatusDecodesCdrStatus(t *testing.T) {
	c, dev := newTestController(t)
	want := domain.CdrStatus{
		DeviceStatus:    domain.DeviceOnline,
		DispenserStatus: domain.DispenserOk,
	}

	done := respondOnce(t, dev, paramsResponse(want.Value()))
	got, err := c.GetStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want.DeviceStatus, got.DeviceStatus)
	<-done
}

func TestGetCapabilitiesSendsEmptyParamsQueryForm(t *testing.T) {
	c, dev := newTestController(t)
	caps := domain.NewCapabilities()

	done := respondOnce(t, dev, paramsResponse(caps.Value()))
	_, err := c.GetCapabilities(context.Background())
	require.NoError(t, err)
	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodSetCapabilities, call.Name)
	assert.Empty(t, call.Params.Params)
}

func TestSetCapabilitiesSendsWritableFields(t *testing.T) {
	c, dev := newTestController(t)
	caps := domain.NewCapabilities()

	done := respondOnce(t, dev, okResponse())
	require.NoError(t, c.SetCapabilities(context.Background(), caps))
	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodSetCapabilities, call.Name)
	require.Len(t, call.Params.Params, 1)
	assert.Equal(t, xfs.KindStruct, call.Params.Params[0].Value.Kind())
}

func TestQueryDenominationsSendsEmptyParams(t *testing.T) {
	c, dev := newTestController(t)
	d := domain.NewDenomination()

	done := respondOnce(t, dev, paramsResponse(d.Value()))
	_, err := c.QueryDenominations(context.Background())
	require.NoError(t, err)
	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodConfigureCashUnit, call.Name)
	assert.Empty(t, call.Params.Params)
}

// TestQueryCashUnitDecodesDanglingPhysicalReference covers spec.md §8
// scenario 4: a canned queryCashUnit response where a Logical unit
// references a missing Physical unit still decodes successfully, with
// the reference marked absent and Validate reporting it.
func TestQueryCashUnitDecodesDanglingPhysicalReference(t *testing.T) {
	c, dev := newTestController(t)
	var cu domain.CashUnit
	cu.LogicalCashUnits = domain.NewLogicalCashUnitList()
	cu.LogicalCashUnits.SetItems([]domain.LogicalCashUnit{{Number: 1, UnitID: 7, PhysicalCuIndex: 99}})
	cu.PhysicalCashUnits = domain.NewPhysicalCashUnitList()
	cu.PhysicalCashUnits.SetItems([]domain.PhysicalCashUnit{{UnitID: 42, Name: "recycler1"}})

	done := respondOnce(t, dev, paramsResponse(cu.Value()))
	got, err := c.QueryCashUnit(context.Background())
	require.NoError(t, err)
	<-done

	_, ok := got.PhysicalUnit(got.LogicalCashUnits.Items()[0])
	assert.False(t, ok)
	problems := got.Validate()
	require.Len(t, problems, 1)
	assert.Equal(t, uint64(7), problems[0].LogicalUnitID)
}

func TestUpdateDenominationsSendsConfiguredValue(t *testing.T) {
	c, dev := newTestController(t)
	d := domain.NewDenomination()
	d.Amount = 500

	done := respondOnce(t, dev, okResponse())
	require.NoError(t, c.UpdateDenominations(context.Background(), d))
	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodUpdateCashUnit, call.Name)
	require.Len(t, call.Params.Params, 1)
}
