package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC)

func at(seconds int) time.Time {
	return t0.Add(time.Duration(seconds) * time.Second)
}

func newTestBook() *OrderBook {
	return New("AAPL", DefaultMaxImpact, DefaultResilience)
}

func TestSend_PassiveOrderRestsInBook(t *testing.T) {
	ob := newTestBook()

	require.NoError(t, ob.Send(true, 100, 10.00, 5, false, at(0)))

	st, err := ob.Get(5)
	require.NoError(t, err)
	assert.True(t, st.Active)
	assert.Equal(t, int64(100), st.LeavesQty)
	assert.Equal(t, int64(0), st.CumQty)

	px, vol, ok := ob.Bbid()
	require.True(t, ok)
	assert.Equal(t, 10.00, px)
	assert.Equal(t, int64(100), vol)
}

func TestSend_FullyCrossingOrderFillsAndLeavesBookFlat(t *testing.T) {
	ob := newTestBook()
	require.NoError(t, ob.Send(false, 100, 10.00, 10, false, at(0)))

	require.NoError(t, ob.Send(true, 100, 10.00, -1, true, at(1)))

	_, _, ok := ob.Bask()
	assert.False(t, ok)
	assert.Equal(t, int64(1), ob.ntrds)
	assert.Equal(t, int64(100), ob.cumVol)

	restingSt, err := ob.Get(10)
	require.NoError(t, err)
	assert.False(t, restingSt.Active)
	assert.Equal(t, int64(100), restingSt.CumQty)

	aggSt, err := ob.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), aggSt.LeavesQty)
	assert.Equal(t, int64(100), aggSt.CumQty)
}

func TestSend_ParticipantAggressorAccumulatesMarketImpact(t *testing.T) {
	ob := newTestBook()
	require.NoError(t, ob.Send(false, 100, 10.00, 10, false, at(0)))

	require.NoError(t, ob.Send(true, 50, 10.00, -1, true, at(1)))

	assert.InDelta(t, 0.5, ob.marketImpact, 1e-9)
	assert.Equal(t, int64(50), ob.myCumVol)
	// The only trade in the book so far is the participant's own fill,
	// so it accounts for all traded volume.
	assert.InDelta(t, 1.0, ob.MyPOV(), 1e-9)
}

func TestSend_AccumulatedImpactShiftsLaterHistoricalOrders(t *testing.T) {
	ob := newTestBook()
	require.NoError(t, ob.Send(false, 100, 10.00, 10, false, at(0)))
	require.NoError(t, ob.Send(true, 100, 10.00, -1, true, at(1)))

	ob.marketImpact = 1.3

	require.NoError(t, ob.Send(false, 50, 10.00, 20, false, at(2)))

	st, err := ob.Get(20)
	require.NoError(t, err)
	assert.Equal(t, 10.01, st.Price)
}

func TestSend_RestingOrdersMatchInFIFOOrder(t *testing.T) {
	ob := newTestBook()
	require.NoError(t, ob.Send(false, 100, 10.00, 10, false, at(0)))
	require.NoError(t, ob.Send(false, 50, 10.00, 11, false, at(1)))

	require.NoError(t, ob.Send(true, 40, 10.00, -1, true, at(2)))

	first, err := ob.Get(10)
	require.NoError(t, err)
	assert.Equal(t, int64(60), first.LeavesQty)
	assert.True(t, first.Active)

	second, err := ob.Get(11)
	require.NoError(t, err)
	assert.Equal(t, int64(50), second.LeavesQty)
}

func TestModify_DownsizePreservesQueuePriority(t *testing.T) {
	ob := newTestBook()
	require.NoError(t, ob.Send(false, 100, 10.00, 10, false, at(0)))
	require.NoError(t, ob.Send(false, 50, 10.00, 11, false, at(1)))

	ob.Modify(10, 40)
	st, err := ob.Get(10)
	require.NoError(t, err)
	assert.Equal(t, int64(60), st.LeavesQty)

	require.NoError(t, ob.Send(true, 80, 10.00, -1, true, at(2)))

	first, err := ob.Get(10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), first.LeavesQty)
	assert.False(t, first.Active)

	second, err := ob.Get(11)
	require.NoError(t, err)
	assert.Equal(t, int64(30), second.LeavesQty)
}

func TestCancel_UnknownUIDReturnsError(t *testing.T) {
	ob := newTestBook()
	err := ob.Cancel(999)
	assert.Error(t, err)
}

func TestSend_UIDSignMustMatchIsMine(t *testing.T) {
	ob := newTestBook()
	err := ob.Send(true, 10, 10.00, 5, true, at(0))
	assert.Error(t, err)
}

func TestReset_ResetAllClearsBookAndCounters(t *testing.T) {
	ob := newTestBook()
	require.NoError(t, ob.Send(false, 100, 10.00, 10, false, at(0)))
	require.NoError(t, ob.Send(true, 50, 10.00, -1, true, at(1)))

	ob.Reset(true)

	_, _, ok := ob.Bbid()
	assert.False(t, ok)
	_, err := ob.Get(10)
	assert.Error(t, err)
	assert.Equal(t, int64(0), ob.ntrds)
	assert.InDelta(t, 0, ob.marketImpact, 1e-9)
}

func TestSweep_ConsumesMultiplePriceLevels(t *testing.T) {
	ob := newTestBook()
	require.NoError(t, ob.Send(false, 50, 10.00, 10, false, at(0)))
	require.NoError(t, ob.Send(false, 50, 10.01, 11, false, at(1)))

	require.NoError(t, ob.Send(true, 80, 10.01, -1, true, at(2)))

	_, _, okBest := ob.Bask()
	require.True(t, okBest)
	askPx, askVol, _ := ob.Bask()
	assert.Equal(t, 10.01, askPx)
	assert.Equal(t, int64(20), askVol)
}

func TestTopBids_PadsWithNaNPastAvailableLevels(t *testing.T) {
	ob := newTestBook()
	require.NoError(t, ob.Send(true, 10, 10.00, 10, false, at(0)))

	prices, vols := ob.TopBids(3)
	assert.Equal(t, 10.00, prices[0])
	assert.Equal(t, 10.0, vols[0])
	assert.True(t, prices[1] != prices[1]) // NaN
	assert.True(t, vols[2] != vols[2])     // NaN
}

func TestVWAP_NoTradesIsNaN(t *testing.T) {
	ob := newTestBook()
	v := ob.VWAP()
	assert.True(t, v != v)
}
