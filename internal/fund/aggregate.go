package fund

import (
	"funddash/internal/domain"
)

// anonymousDonor is shown when the upstream record carries no payer name.
const anonymousDonor = "Anonymous"

// dayFormat keys DailyTotals by UTC calendar day.
const dayFormat = "2006-01-02"

// NewTransactionPage projects an upstream payments page into its display
// shape. Records are mapped 1:1 in upstream order; the upstream is asked for
// newest-first and nothing is re-sorted or filtered here.
func NewTransactionPage(page *domain.PaymentPage) *domain.TransactionPage {
	views := make([]domain.TransactionView, 0, len(page.Items))
	for _, rec := range page.Items {
		views = append(views, newTransactionView(rec))
	}
	return &domain.TransactionPage{
		Transactions: views,
		TotalCount:   page.TotalCount,
		HasMore:      page.Page < page.TotalPages,
	}
}

func newTransactionView(rec domain.PaymentRecord) domain.TransactionView {
	donor := rec.PayerName
	if donor == "" {
		donor = anonymousDonor
	}
	return domain.TransactionView{
		ID:        rec.ID,
		Amount:    rec.Amount.Value,
		Currency:  rec.Amount.Currency,
		Donor:     donor,
		Date:      rec.CreatedAt,
		Status:    string(rec.Status),
		Fund:      rec.FundName,
		Reference: rec.Reference,
	}
}

// Summarize rolls a payment list up into totals, a count, an average and
// per-day buckets. Days are bucketed on the record's creation timestamp in
// UTC, and buckets exist only for days that have at least one record.
// Amounts are summed as-is; a fund's records are assumed to share a currency.
func Summarize(records []domain.PaymentRecord, periodDays int) *domain.FundSummary {
	summary := &domain.FundSummary{
		DailyTotals: map[string]float64{},
		Period:      periodDays,
	}
	for _, rec := range records {
		summary.TotalAmount += rec.Amount.Value
		day := rec.CreatedAt.UTC().Format(dayFormat)
		summary.DailyTotals[day] += rec.Amount.Value
	}
	summary.TransactionCount = len(records)
	if summary.TransactionCount > 0 {
		summary.AverageAmount = summary.TotalAmount / float64(summary.TransactionCount)
	}
	return summary
}
