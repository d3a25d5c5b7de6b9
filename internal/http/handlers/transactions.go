package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"funddash/internal/fund"
)

// TransactionsByFund returns the newest transactions for a fund.
// Query parameters: fromDate, toDate (RFC 3339 or YYYY-MM-DD), limit.
func (a *App) TransactionsByFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundID")
	q := r.URL.Query()

	var opts fund.ListOptions
	if v := q.Get("fromDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			a.error(w, http.StatusBadRequest, "Invalid fromDate", err.Error())
			return
		}
		opts.From = t
	}
	if v := q.Get("toDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			a.error(w, http.StatusBadRequest, "Invalid toDate", err.Error())
			return
		}
		opts.To = t
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			a.error(w, http.StatusBadRequest, "Invalid limit", "limit must be a positive integer")
			return
		}
		opts.Limit = n
	}

	page, err := a.Funds.ListTransactions(r.Context(), fundID, opts)
	if err != nil {
		a.fundError(w, r, err, "Failed to fetch transactions")
		return
	}
	a.json(w, http.StatusOK, page)
}

// FundSummary returns rolled-up fund activity over a trailing window.
// Query parameter: period (days, default 30).
func (a *App) FundSummary(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundID")

	period := fund.DefaultPeriodDays
	if v := r.URL.Query().Get("period"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			a.error(w, http.StatusBadRequest, "Invalid period", "period must be a positive number of days")
			return
		}
		period = n
	}

	summary, err := a.Funds.Summary(r.Context(), fundID, period)
	if err != nil {
		a.fundError(w, r, err, "Failed to fetch fund summary")
		return
	}
	a.json(w, http.StatusOK, summary)
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
