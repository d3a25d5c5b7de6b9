package domain

import "testing"

func TestParsePaymentStatus(t *testing.T) {
	tests := []struct {
		in   string
		want PaymentStatus
	}{
		{"Success", StatusSuccessful},
		{"successful", StatusSuccessful},
		{"Completed", StatusSuccessful},
		{"Failed", StatusFailed},
		{"declined", StatusFailed},
		{"Processing", StatusPending},
		{"Pending", StatusPending},
		{" pending ", StatusPending},
		{"Refunded", StatusOther},
		{"", StatusOther},
	}
	for _, tc := range tests {
		if got := ParsePaymentStatus(tc.in); got != tc.want {
			t.Fatalf("ParsePaymentStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
