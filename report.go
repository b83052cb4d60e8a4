package skins

import (
	"fmt"
	"log"
)

// Line is the valuation of one reported item.
type Line struct {
	Item  Item
	Buy   *Money // nil when the buy price is unknown
	Check Money  // latest market price
	Age   int    // days since the price check
	Stale bool   // Age is above the configured threshold
}

// Performance returns the change from Buy to Check, false if Buy is unknown.
func (l Line) Performance() (Performance, bool) {
	if l.Buy == nil {
		return Performance{}, false
	}
	return NewPerformance(*l.Buy, l.Check), true
}

// AdvisoryKind identifies the reason of an Advisory.
type AdvisoryKind int

const (
	StalePrice       AdvisoryKind = iota // price check older than the threshold
	RefreshRequested                     // the caller asked for a price refresh
	MissingBuyPrice                      // buy date without buy price
)

// Advisory is a non fatal warning about the report data.
//
// None of them triggers any recovery: price refresh and buy price estimation
// from the price history are not implemented.
type Advisory struct {
	Kind    AdvisoryKind
	Item    string // item title, empty for report wide advisories
	Message string
}

func (a Advisory) String() string {
	if a.Item == "" {
		return a.Message
	}
	return a.Item + ": " + a.Message
}

// Report is the valuation of the weapons of an inventory.
type Report struct {
	AsOf       Date
	Currency   string
	StaleAfter int
	Lines      []Line
	Total      Performance
	Advisories []Advisory
}

// NewReport values the weapons among items as of 'asOf'.
//
// Items without the weapon category are skipped. Reported items are checked
// first: a missing latest price, an unknown rarity or a missing check date
// fails with a *MalformedRecordError before anything is computed.
// 'refresh' records that the caller asked for fresh prices, which is only
// reported as an advisory.
func NewReport(items []Item, asOf Date, cfg Config, refresh bool) (*Report, error) {
	r := &Report{
		AsOf:       asOf,
		Currency:   cfg.Currency,
		StaleAfter: cfg.StaleAfter,
	}
	for i, it := range items {
		if !it.IsWeapon() {
			continue
		}
		if err := it.Validate(i, cfg.Currency); err != nil {
			return nil, err
		}
		r.Lines = append(r.Lines, newLine(it, asOf, cfg.StaleAfter))
	}

	if refresh {
		r.advise(Advisory{Kind: RefreshRequested, Message: "price refresh requested, automatic price update is not implemented"})
	}
	for _, l := range r.Lines {
		if l.Stale {
			r.advise(Advisory{
				Kind:    StalePrice,
				Item:    l.Item.Title(),
				Message: fmt.Sprintf("latest price checked %d days ago (%s), automatic price update is not implemented", l.Age, l.Item.CheckedOn),
			})
		}
		if l.Item.BoughtOn != nil && l.Buy == nil {
			r.advise(Advisory{
				Kind:    MissingBuyPrice,
				Item:    l.Item.Title(),
				Message: "buy date without buy price, estimation from the price history is not implemented",
			})
		}
	}

	r.Total = KnownCostTotal(r.Lines)
	if r.Total.Start.Currency() == "" {
		r.Total = NewPerformance(M(0, cfg.Currency), M(0, cfg.Currency))
	}
	return r, nil
}

func newLine(it Item, asOf Date, staleAfter int) Line {
	age := asOf.DaysSince(it.CheckedOn)
	return Line{
		Item:  it,
		Buy:   it.BuyPrice,
		Check: *it.Latest,
		Age:   age,
		Stale: age > staleAfter,
	}
}

func (r *Report) advise(a Advisory) {
	log.Printf("warning: %s", a)
	r.Advisories = append(r.Advisories, a)
}

// KnownCostTotal sums the buy and check prices of the lines with a known buy price.
//
// Lines without a buy price are left out of both sums, so the total
// understates the current value of the inventory.
func KnownCostTotal(lines []Line) Performance {
	var total Performance
	for _, l := range lines {
		p, ok := l.Performance()
		if !ok {
			continue
		}
		total.Start = total.Start.Add(p.Start)
		total.End = total.End.Add(p.End)
	}
	return total
}
