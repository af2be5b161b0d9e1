package analytics

import "time"

type Instrument string

const (
	InstrumentEquity  Instrument = "EQUITY"
	InstrumentFutures Instrument = "FUTURES"
	InstrumentOptions Instrument = "OPTIONS"
)

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

type ChargeKind string

const (
	ChargeBrokerage      ChargeKind = "BROKERAGE"
	ChargeTransactionTax ChargeKind = "TRANSACTION_TAX"
	ChargeExchangeFee    ChargeKind = "EXCHANGE_FEE"
	ChargeRegulatoryFee  ChargeKind = "REGULATORY_FEE"
	ChargeStampDuty      ChargeKind = "STAMP_DUTY"
	ChargeGST            ChargeKind = "GST"
)

// ChargeKinds is the fixed reporting order for charge breakdowns.
var ChargeKinds = []ChargeKind{
	ChargeBrokerage,
	ChargeTransactionTax,
	ChargeExchangeFee,
	ChargeRegulatoryFee,
	ChargeStampDuty,
	ChargeGST,
}

// Leg is one side of a trade: the primary position or its hedge.
// A leg is open while ExitPrice is nil and closed once it is set.
type Leg struct {
	Instrument Instrument
	Side       Side
	EntryPrice float64
	ExitPrice  *float64
	Quantity   float64
	EntryDate  time.Time
	ExitDate   *time.Time
}

func (l Leg) Closed() bool {
	return l.ExitPrice != nil
}

type ChargeLineItem struct {
	Kind   ChargeKind
	Amount float64
}

// ChargeSet is the single canonical per-type charge breakdown. Every input
// shape (recorded line items, computed breakdowns) is normalized into it once;
// nothing downstream branches on where the charges came from.
type ChargeSet struct {
	Brokerage      float64 `json:"brokerage"`
	TransactionTax float64 `json:"transactionTax"`
	ExchangeFee    float64 `json:"exchangeFee"`
	RegulatoryFee  float64 `json:"regulatoryFee"`
	StampDuty      float64 `json:"stampDuty"`
	GST            float64 `json:"gst"`
	Total          float64 `json:"total"`
}

// NewChargeSet folds recorded charge line items into a ChargeSet.
// Unknown kinds still count toward the total.
func NewChargeSet(items []ChargeLineItem) ChargeSet {
	var cs ChargeSet
	for _, item := range items {
		switch item.Kind {
		case ChargeBrokerage:
			cs.Brokerage += item.Amount
		case ChargeTransactionTax:
			cs.TransactionTax += item.Amount
		case ChargeExchangeFee:
			cs.ExchangeFee += item.Amount
		case ChargeRegulatoryFee:
			cs.RegulatoryFee += item.Amount
		case ChargeStampDuty:
			cs.StampDuty += item.Amount
		case ChargeGST:
			cs.GST += item.Amount
		}
		cs.Total += item.Amount
	}
	return cs
}

// Amount returns the amount recorded for a single charge kind.
func (cs ChargeSet) Amount(kind ChargeKind) float64 {
	switch kind {
	case ChargeBrokerage:
		return cs.Brokerage
	case ChargeTransactionTax:
		return cs.TransactionTax
	case ChargeExchangeFee:
		return cs.ExchangeFee
	case ChargeRegulatoryFee:
		return cs.RegulatoryFee
	case ChargeStampDuty:
		return cs.StampDuty
	case ChargeGST:
		return cs.GST
	default:
		return 0
	}
}

func (cs ChargeSet) Add(other ChargeSet) ChargeSet {
	return ChargeSet{
		Brokerage:      cs.Brokerage + other.Brokerage,
		TransactionTax: cs.TransactionTax + other.TransactionTax,
		ExchangeFee:    cs.ExchangeFee + other.ExchangeFee,
		RegulatoryFee:  cs.RegulatoryFee + other.RegulatoryFee,
		StampDuty:      cs.StampDuty + other.StampDuty,
		GST:            cs.GST + other.GST,
		Total:          cs.Total + other.Total,
	}
}

// Record is one fully materialized journal entry fed into the engine:
// the main leg, its optional hedge leg, recorded charge line items per leg,
// and an optional last-traded price for valuing open equity positions.
type Record struct {
	ID           uint
	Strategy     string
	Leg          Leg
	Hedge        *Leg
	Charges      []ChargeLineItem
	HedgeCharges []ChargeLineItem
	LastPrice    *float64
}

// Outcome is the economic result of a single leg.
type Outcome struct {
	EntryValue       float64
	ExitValue        float64
	GrossPnl         float64
	NetPnl           float64
	PercentageReturn float64
	Charges          ChargeSet
}

// TradeOutcome is the consolidated result of a main leg combined with its
// optional hedge. Derived fresh on every aggregation run, never persisted.
type TradeOutcome struct {
	RecordID         uint
	Strategy         string
	Instrument       Instrument
	EntryDate        time.Time
	ExitDate         *time.Time
	Open             bool
	EntryValue       float64
	ExitValue        float64
	Turnover         float64
	GrossPnl         float64
	TotalCharges     float64
	NetPnl           float64
	PercentageReturn float64
	Charges          ChargeSet
}

// ExcludedRecord flags a journal entry the engine refused to aggregate,
// so one bad row never poisons portfolio-level numbers.
type ExcludedRecord struct {
	RecordID uint   `json:"recordId"`
	Reason   string `json:"reason"`
}
