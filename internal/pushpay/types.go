package pushpay

import (
	"strings"
	"time"

	"golang.org/x/text/currency"

	"funddash/internal/domain"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type paymentsResponse struct {
	Items      []wirePayment `json:"items"`
	TotalCount int           `json:"totalCount"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

type wirePayment struct {
	TransactionID string     `json:"transactionId"`
	Amount        wireAmount `json:"amount"`
	Payer         *wirePayer `json:"payer"`
	CreatedOn     time.Time  `json:"createdOn"`
	Status        string     `json:"status"`
	Fund          *wireFund  `json:"fund"`
	Reference     string     `json:"reference"`
}

type wireAmount struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type wirePayer struct {
	FullName string `json:"fullName"`
}

type wireFund struct {
	Name string `json:"name"`
}

func (p wirePayment) toDomain() domain.PaymentRecord {
	rec := domain.PaymentRecord{
		ID: p.TransactionID,
		Amount: domain.Amount{
			Value:    p.Amount.Amount,
			Currency: normalizeCurrency(p.Amount.Currency),
		},
		CreatedAt: p.CreatedOn,
		Status:    domain.ParsePaymentStatus(p.Status),
		Reference: strings.TrimSpace(p.Reference),
	}
	if p.Payer != nil {
		rec.PayerName = strings.TrimSpace(p.Payer.FullName)
	}
	if p.Fund != nil {
		rec.FundName = strings.TrimSpace(p.Fund.Name)
	}
	return rec
}

func (r paymentsResponse) toDomain() *domain.PaymentPage {
	items := make([]domain.PaymentRecord, 0, len(r.Items))
	for _, p := range r.Items {
		items = append(items, p.toDomain())
	}
	return &domain.PaymentPage{
		Items:      items,
		TotalCount: r.TotalCount,
		Page:       r.Page,
		TotalPages: r.TotalPages,
	}
}

// normalizeCurrency upper-cases well-formed ISO 4217 codes and passes
// anything else through untouched.
func normalizeCurrency(code string) string {
	code = strings.TrimSpace(code)
	if unit, err := currency.ParseISO(code); err == nil {
		return unit.String()
	}
	return code
}
