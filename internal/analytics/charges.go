package analytics

type chargeRates struct {
	brokerage      float64
	transactionTax float64
	exchangeFee    float64
	regulatoryFee  float64
	stampDuty      float64
}

// Flat percentage rates in the shape of an Indian discount broker.
// Brokerage, exchange, regulatory and stamp rates apply to turnover
// (entry + exit value); transaction tax applies to the exit leg only.
var ratesByInstrument = map[Instrument]chargeRates{
	InstrumentFutures: {
		brokerage:      0.0003,
		transactionTax: 0.000125,
		exchangeFee:    0.0000188,
		regulatoryFee:  0.000001,
		stampDuty:      0.00002,
	},
	InstrumentOptions: {
		brokerage:      0.0003,
		transactionTax: 0.000625,
		exchangeFee:    0.0005,
		regulatoryFee:  0.000001,
		stampDuty:      0.00003,
	},
}

// GST is levied on brokerage, not on turnover.
const gstRate = 0.18

// ComputeCharges derives the regulatory and brokerage charges for one trade
// leg. Equity legs are charge-free in this domain model. Transaction tax is
// charged on the exit value only when the position closes with a sell, which
// for a journal entry means a Buy position being sold to close. Negative
// inputs are clamped so the result is never negative.
func ComputeCharges(entryValue, exitValue float64, instrument Instrument, side Side) ChargeSet {
	if instrument == InstrumentEquity {
		return ChargeSet{}
	}

	rates, ok := ratesByInstrument[instrument]
	if !ok {
		return ChargeSet{}
	}

	if entryValue < 0 {
		entryValue = 0
	}
	if exitValue < 0 {
		exitValue = 0
	}

	turnover := entryValue + exitValue

	cs := ChargeSet{
		Brokerage:     turnover * rates.brokerage,
		ExchangeFee:   turnover * rates.exchangeFee,
		RegulatoryFee: turnover * rates.regulatoryFee,
		StampDuty:     turnover * rates.stampDuty,
	}

	if side == SideBuy {
		cs.TransactionTax = exitValue * rates.transactionTax
	}

	cs.GST = cs.Brokerage * gstRate
	cs.Total = cs.Brokerage + cs.TransactionTax + cs.ExchangeFee + cs.RegulatoryFee + cs.StampDuty + cs.GST

	return cs
}

// ComputedLineItems expands a computed breakdown back into line items, for
// persisting the per-type rows when a trade is closed.
func ComputedLineItems(cs ChargeSet) []ChargeLineItem {
	var items []ChargeLineItem
	for _, kind := range ChargeKinds {
		if amount := cs.Amount(kind); amount > 0 {
			items = append(items, ChargeLineItem{Kind: kind, Amount: amount})
		}
	}
	return items
}
