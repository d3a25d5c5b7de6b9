package fund

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"funddash/internal/domain"
	"funddash/internal/pushpay"
)

const (
	// DefaultLimit caps a transaction listing when the caller does not ask
	// for one.
	DefaultLimit = 50

	// DefaultPeriodDays is the summary window when the caller does not ask
	// for one.
	DefaultPeriodDays = 30

	// summaryTake is how many records a summary pulls from upstream; wide
	// enough to cover a month of activity for a single fund.
	summaryTake = 1000
)

// PaymentLister fetches pages of payments for a fund from the payment
// platform.
type PaymentLister interface {
	ListPayments(ctx context.Context, fundID string, q pushpay.PaymentQuery) (*domain.PaymentPage, error)
}

// Service exposes donation-fund activity for the dashboard. It holds no state
// beyond its collaborators; every call fetches fresh data upstream.
type Service struct {
	payments PaymentLister
	logger   zerolog.Logger
	now      func() time.Time
}

func NewService(payments PaymentLister, logger zerolog.Logger) *Service {
	return &Service{
		payments: payments,
		logger:   logger,
		now:      time.Now,
	}
}

// ListOptions narrows a transaction listing. Zero times mean no bound.
type ListOptions struct {
	From  time.Time
	To    time.Time
	Limit int
}

// ListTransactions returns the newest transactions for a fund in display
// shape.
func (s *Service) ListTransactions(ctx context.Context, fundID string, opts ListOptions) (*domain.TransactionPage, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	page, err := s.payments.ListPayments(ctx, fundID, pushpay.PaymentQuery{
		From: opts.From,
		To:   opts.To,
		Take: limit,
	})
	if err != nil {
		return nil, err
	}
	return NewTransactionPage(page), nil
}

// Summary aggregates the fund's activity over the trailing periodDays window.
// A failed fetch returns no summary rather than a zeroed one.
func (s *Service) Summary(ctx context.Context, fundID string, periodDays int) (*domain.FundSummary, error) {
	if periodDays <= 0 {
		periodDays = DefaultPeriodDays
	}
	from := s.now().AddDate(0, 0, -periodDays)
	page, err := s.payments.ListPayments(ctx, fundID, pushpay.PaymentQuery{
		From: from,
		Take: summaryTake,
	})
	if err != nil {
		return nil, err
	}
	return Summarize(page.Items, periodDays), nil
}
