package control_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-bnr/bnr/control"
	"github.com/go-bnr/bnr/domain"
	"github.com/go-bnr/bnr/xfs"
)

func TestQueryBillsetIDsFaultIsNotSupported(t *testing.T) {
	c, dev := newTestController(t)

	done := respondOnce(t, dev, faultResponse(6100, "unknown method"))
	_, err := c.QueryBillsetIDs(context.Background())
	require.Error(t, err)
	var ce *control.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, control.KindNotSupported, ce.Kind)
	<-done
}

func TestQueryBillsetIDsDecodesList(t *testing.T) {
	c, dev := newTestController(t)
	list := domain.BillsetIDList{}

	done := respondOnce(t, dev, paramsResponse(list.Value()))
	_, err := c.QueryBillsetIDs(context.Background())
	require.NoError(t, err)
	call, ok := <-done
	require.True(t, ok)
	assert.Equal(t, xfs.MethodGetIdentification, call.Name)
}
