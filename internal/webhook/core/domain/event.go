package domain

import (
	"strconv"
	"strings"
	"time"
)

// RawEvent is a single webhook delivery exactly as the upstream store
// returns it. Data is loosely typed; no key is guaranteed to be present.
type RawEvent struct {
	Timestamp string            `json:"timestamp"`
	Data      map[string]string `json:"data"`
}

// SaleEvent is the normalized form of a RawEvent. Missing fields stay at
// their zero value; PaymentValid reports whether Paymentamount parsed.
type SaleEvent struct {
	Timestamp      time.Time
	OfficerName    string
	OpenerName     string
	LeadSource     string
	CaseID         string
	LeadSale       bool
	InitialPayment bool
	PaymentAmount  float64
	PaymentValid   bool
	RawAmount      string
}

// Accepts optional fractional seconds and an explicit numeric offset.
const timestampLayout = "2006-01-02T15:04:05.999999999-07:00"

// ParseTimestamp parses an upstream timestamp string. A trailing "Z" is
// normalized to "+00:00" before parsing; real payloads carry both forms.
func ParseTimestamp(s string) (time.Time, error) {
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	return time.Parse(timestampLayout, s)
}

// FlagSet reports whether a yes/no field is set to "yes", case-insensitively.
// Every aggregator checks flags through here so the semantics stay uniform.
func FlagSet(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}

// ParseAmount parses a currency string like "$1,200.50".
func ParseAmount(s string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.Trim(strings.TrimSpace(s), "$"), ",", "")
	return strconv.ParseFloat(cleaned, 64)
}

// Normalize converts the event into a SaleEvent with its timestamp in loc.
// An unparsable timestamp fails the whole event; an unparsable payment
// amount only leaves PaymentValid false so the rest of the event is usable.
func (e RawEvent) Normalize(loc *time.Location) (SaleEvent, error) {
	ts, err := ParseTimestamp(e.Timestamp)
	if err != nil {
		return SaleEvent{}, err
	}

	se := SaleEvent{
		Timestamp:      ts.In(loc),
		OfficerName:    e.Data["SetOfficerName"],
		OpenerName:     e.Data["OpenerName"],
		LeadSource:     e.Data["Leadsource"],
		CaseID:         e.Data["CaseID"],
		LeadSale:       FlagSet(e.Data["Leadsales"]),
		InitialPayment: FlagSet(e.Data["InitialPayment"]),
		RawAmount:      e.Data["Paymentamount"],
	}

	if se.RawAmount != "" {
		if amount, err := ParseAmount(se.RawAmount); err == nil {
			se.PaymentAmount = amount
			se.PaymentValid = true
		}
	}

	return se, nil
}
