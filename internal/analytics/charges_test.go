package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCharges_EquityIsChargeFree(t *testing.T) {
	for _, side := range []Side{SideBuy, SideSell} {
		cs := ComputeCharges(100000, 110000, InstrumentEquity, side)
		assert.Equal(t, ChargeSet{}, cs)
		assert.Zero(t, cs.Total)
	}
}

func TestComputeCharges_Options(t *testing.T) {
	// Sell options leg: entry 220 x 225, exit 210 x 225.
	entryValue := 220.0 * 225
	exitValue := 210.0 * 225
	turnover := entryValue + exitValue

	cs := ComputeCharges(entryValue, exitValue, InstrumentOptions, SideSell)

	assert.InDelta(t, turnover*0.0003, cs.Brokerage, 1e-9)
	assert.Zero(t, cs.TransactionTax, "no transaction tax when the close is a buy-back")
	assert.InDelta(t, turnover*0.0005, cs.ExchangeFee, 1e-9)
	assert.InDelta(t, cs.Brokerage*0.18, cs.GST, 1e-9, "GST applies to brokerage, not turnover")
	assert.Greater(t, cs.Total, 0.0)
	assert.InDelta(t, cs.Brokerage+cs.TransactionTax+cs.ExchangeFee+cs.RegulatoryFee+cs.StampDuty+cs.GST, cs.Total, 1e-9)
}

func TestComputeCharges_TransactionTaxOnSellToClose(t *testing.T) {
	// A Buy position closes with a sell, so the exit leg carries the tax.
	buy := ComputeCharges(50000, 52000, InstrumentFutures, SideBuy)
	sell := ComputeCharges(50000, 52000, InstrumentFutures, SideSell)

	assert.InDelta(t, 52000*0.000125, buy.TransactionTax, 1e-9)
	assert.Zero(t, sell.TransactionTax)
	assert.Greater(t, buy.Total, sell.Total)
}

func TestComputeCharges_NeverNegative(t *testing.T) {
	tests := []struct {
		name       string
		entryValue float64
		exitValue  float64
		instrument Instrument
		side       Side
	}{
		{"zero values", 0, 0, InstrumentOptions, SideBuy},
		{"negative inputs clamped", -1000, -2000, InstrumentFutures, SideSell},
		{"unknown instrument", 1000, 2000, Instrument("CRYPTO"), SideBuy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := ComputeCharges(tt.entryValue, tt.exitValue, tt.instrument, tt.side)
			assert.GreaterOrEqual(t, cs.Total, 0.0)
			assert.GreaterOrEqual(t, cs.Brokerage, 0.0)
			assert.GreaterOrEqual(t, cs.TransactionTax, 0.0)
		})
	}
}

func TestNewChargeSet_NormalizesLineItems(t *testing.T) {
	items := []ChargeLineItem{
		{Kind: ChargeBrokerage, Amount: 20},
		{Kind: ChargeBrokerage, Amount: 10},
		{Kind: ChargeGST, Amount: 5.4},
		{Kind: ChargeStampDuty, Amount: 1.2},
	}

	cs := NewChargeSet(items)

	assert.Equal(t, 30.0, cs.Brokerage)
	assert.Equal(t, 5.4, cs.GST)
	assert.Equal(t, 1.2, cs.StampDuty)
	assert.InDelta(t, 36.6, cs.Total, 1e-9)
}

func TestComputedLineItems_RoundTrip(t *testing.T) {
	cs := ComputeCharges(49500, 47250, InstrumentOptions, SideBuy)
	rebuilt := NewChargeSet(ComputedLineItems(cs))

	assert.InDelta(t, cs.Total, rebuilt.Total, 1e-9)
	assert.InDelta(t, cs.Brokerage, rebuilt.Brokerage, 1e-9)
	assert.InDelta(t, cs.TransactionTax, rebuilt.TransactionTax, 1e-9)
}
