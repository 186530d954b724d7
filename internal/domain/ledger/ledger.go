// Package ledger accumulates completed purchases for one buyer session and
// computes settlement totals.
package ledger

import (
	"github.com/google/uuid"
)

// PurchaseRecord is one completed purchase. Records are immutable once
// appended; the ledger only grows.
type PurchaseRecord struct {
	ID         string  `json:"id"`
	Seller     string  `json:"seller"`
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// Broker charges a flat fee applied once to the buyer's total at settlement.
// It never alters individual purchase records.
type Broker struct {
	Name    string  `json:"name"`
	FlatFee float64 `json:"flat_fee"`
}

// Ledger is a buyer's running record of completed purchases.
type Ledger struct {
	buyer   string
	records []PurchaseRecord
}

// New creates an empty ledger for the named buyer.
func New(buyer string) *Ledger {
	return &Ledger{buyer: buyer}
}

// Buyer returns the buyer name the ledger was created with.
func (l *Ledger) Buyer() string {
	return l.buyer
}

// Record appends a purchase. Anomalous records (negative prices) are
// accepted but flagged at read time, never rejected here. An empty ID is
// assigned a fresh uuid.
func (l *Ledger) Record(rec PurchaseRecord) PurchaseRecord {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	l.records = append(l.records, rec)
	return rec
}

// Records returns a copy of all purchases in append order.
func (l *Ledger) Records() []PurchaseRecord {
	out := make([]PurchaseRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of recorded purchases.
func (l *Ledger) Len() int {
	return len(l.records)
}

// TotalCost sums the totals of all purchases. Records with a negative total
// are excluded from the sum; they are reported separately by Anomalies so
// the headline total never goes negative because of bad data.
func (l *Ledger) TotalCost() float64 {
	var total float64
	for _, rec := range l.records {
		if rec.TotalPrice < 0 {
			continue
		}
		total += rec.TotalPrice
	}
	return total
}

// Anomalies returns the records carrying a negative price. They stay in the
// ledger but are surfaced as warnings in any display.
func (l *Ledger) Anomalies() []PurchaseRecord {
	var out []PurchaseRecord
	for _, rec := range l.records {
		if rec.TotalPrice < 0 {
			out = append(out, rec)
		}
	}
	return out
}

// SettleWithBroker returns total plus the broker's flat fee. The fee is
// waived when the total is zero: a session with no purchases is never
// charged brokerage.
func SettleWithBroker(total, fee float64) float64 {
	if total == 0 {
		return 0
	}
	return total + fee
}
