package domain

import "time"

// TransactionView is the display projection of a payment record. Field names
// follow the dashboard wire format.
type TransactionView struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Donor     string    `json:"donor"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	Fund      string    `json:"fund,omitempty"`
	Reference string    `json:"reference,omitempty"`
}

// TransactionPage is a display page of transactions. HasMore reports whether
// the upstream has pages beyond the one projected here.
type TransactionPage struct {
	Transactions []TransactionView `json:"transactions"`
	TotalCount   int               `json:"totalCount"`
	HasMore      bool              `json:"hasMore"`
}

// FundSummary holds rolled-up totals for a fund over a requested window.
// DailyTotals is keyed by UTC calendar day (YYYY-MM-DD); iteration order is
// unspecified and consumers must sort keys before charting.
type FundSummary struct {
	TotalAmount      float64            `json:"totalAmount"`
	AverageAmount    float64            `json:"averageAmount"`
	TransactionCount int                `json:"transactionCount"`
	DailyTotals      map[string]float64 `json:"dailyTotals"`
	Period           int                `json:"period"`
}
