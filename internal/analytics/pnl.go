package analytics

import (
	"fmt"
	"math"
)

// LegOutcome computes the economic outcome of a single main leg.
// For an open equity leg a caller-supplied last-traded price substitutes for
// the exit price, producing an unrealized snapshot. An open leg with no last
// price contributes nothing: exit value and gross P&L stay zero.
func LegOutcome(leg Leg, charges ChargeSet, lastPrice *float64) Outcome {
	entryValue := leg.EntryPrice * leg.Quantity

	// A leg is valued when it has an exit price or, for open equity, an LTP.
	// An exit value of 0 on a valued leg is a real price (e.g. an option
	// expiring worthless), not a missing one.
	var exitValue float64
	var valued bool
	switch {
	case leg.Closed():
		exitValue = *leg.ExitPrice * leg.Quantity
		valued = true
	case leg.Instrument == InstrumentEquity && lastPrice != nil:
		exitValue = *lastPrice * leg.Quantity
		valued = true
	}

	var gross float64
	if valued {
		if leg.Side == SideSell {
			gross = entryValue - exitValue
		} else {
			gross = exitValue - entryValue
		}
	}

	return buildOutcome(entryValue, exitValue, gross, charges)
}

// HedgeOutcome computes a hedge leg's contribution. Hedge gross P&L is
// sign-agnostic (exit - entry regardless of recorded side): the hedge is
// assumed structured so this always represents its actual gain or loss.
func HedgeOutcome(leg Leg, charges ChargeSet, lastPrice *float64) Outcome {
	entryValue := leg.EntryPrice * leg.Quantity

	var exitValue float64
	var valued bool
	switch {
	case leg.Closed():
		exitValue = *leg.ExitPrice * leg.Quantity
		valued = true
	case leg.Instrument == InstrumentEquity && lastPrice != nil:
		exitValue = *lastPrice * leg.Quantity
		valued = true
	}

	var gross float64
	if valued {
		gross = exitValue - entryValue
	}

	return buildOutcome(entryValue, exitValue, gross, charges)
}

func buildOutcome(entryValue, exitValue, gross float64, charges ChargeSet) Outcome {
	net := gross - charges.Total

	var pct float64
	if entryValue > 0 {
		pct = net / entryValue * 100
	}

	return Outcome{
		EntryValue:       entryValue,
		ExitValue:        exitValue,
		GrossPnl:         gross,
		NetPnl:           net,
		PercentageReturn: pct,
		Charges:          charges,
	}
}

// Combine merges a main leg outcome with its optional hedge outcome into one
// consolidated economic result. Values and charges are summed; the percentage
// return is recomputed from the combined figures.
func Combine(main Outcome, hedge *Outcome) Outcome {
	if hedge == nil {
		return main
	}

	combined := Outcome{
		EntryValue: main.EntryValue + hedge.EntryValue,
		ExitValue:  main.ExitValue + hedge.ExitValue,
		GrossPnl:   main.GrossPnl + hedge.GrossPnl,
		Charges:    main.Charges.Add(hedge.Charges),
	}
	combined.NetPnl = combined.GrossPnl - combined.Charges.Total

	if combined.EntryValue > 0 {
		combined.PercentageReturn = combined.NetPnl / combined.EntryValue * 100
	}

	return combined
}

// ResolveOutcome turns one journal record into a consolidated TradeOutcome.
// Malformed legs and non-finite arithmetic results yield an error so the
// caller can exclude the record without failing the whole aggregation.
func ResolveOutcome(record Record) (TradeOutcome, error) {
	if err := validateLeg(record.Leg); err != nil {
		return TradeOutcome{}, err
	}

	mainCharges := legCharges(record.Leg, record.Charges)
	main := LegOutcome(record.Leg, mainCharges, record.LastPrice)

	var hedge *Outcome
	if record.Hedge != nil {
		if err := validateLeg(*record.Hedge); err != nil {
			return TradeOutcome{}, fmt.Errorf("hedge leg: %w", err)
		}
		h := HedgeOutcome(*record.Hedge, legCharges(*record.Hedge, record.HedgeCharges), record.LastPrice)
		hedge = &h
	}

	combined := Combine(main, hedge)

	if !isFinite(combined.EntryValue) || !isFinite(combined.GrossPnl) || !isFinite(combined.NetPnl) {
		return TradeOutcome{}, fmt.Errorf("non-finite result for record %d", record.ID)
	}

	return TradeOutcome{
		RecordID:         record.ID,
		Strategy:         record.Strategy,
		Instrument:       record.Leg.Instrument,
		EntryDate:        record.Leg.EntryDate,
		ExitDate:         record.Leg.ExitDate,
		Open:             !record.Leg.Closed(),
		EntryValue:       combined.EntryValue,
		ExitValue:        combined.ExitValue,
		Turnover:         combined.EntryValue + combined.ExitValue,
		GrossPnl:         combined.GrossPnl,
		TotalCharges:     combined.Charges.Total,
		NetPnl:           combined.NetPnl,
		PercentageReturn: combined.PercentageReturn,
		Charges:          combined.Charges,
	}, nil
}

// legCharges normalizes the recorded line items for a leg, falling back to the
// computed breakdown for a closed derivatives leg that has none recorded.
func legCharges(leg Leg, items []ChargeLineItem) ChargeSet {
	if len(items) > 0 {
		return NewChargeSet(items)
	}
	if leg.Closed() && leg.Instrument != InstrumentEquity {
		return ComputeCharges(leg.EntryPrice*leg.Quantity, *leg.ExitPrice*leg.Quantity, leg.Instrument, leg.Side)
	}
	return ChargeSet{}
}

func validateLeg(leg Leg) error {
	if leg.EntryPrice <= 0 || math.IsNaN(leg.EntryPrice) || math.IsInf(leg.EntryPrice, 0) {
		return fmt.Errorf("entry price must be positive, got %v", leg.EntryPrice)
	}
	if leg.Quantity <= 0 || math.IsNaN(leg.Quantity) || math.IsInf(leg.Quantity, 0) {
		return fmt.Errorf("quantity must be positive, got %v", leg.Quantity)
	}
	if leg.ExitPrice != nil && (math.IsNaN(*leg.ExitPrice) || math.IsInf(*leg.ExitPrice, 0)) {
		return fmt.Errorf("exit price is not a finite number")
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
