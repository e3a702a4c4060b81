package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/bookstore-next/internal/i18n"
	"github.com/bookstore-next/internal/models"

	"github.com/shopspring/decimal"
)

func TestBuildOrderStatusContent(t *testing.T) {
	tests := []struct {
		name                string
		locale              string
		status              string
		address             string
		wantSubjectContains []string
		wantBodyContains    []string
	}{
		{
			name:   "created_zh",
			locale: i18n.LocaleZH,
			status: "created",
			wantSubjectContains: []string{
				"您的订单",
				"已创建",
			},
			wantBodyContains: []string{
				"BS-CREATED",
				"订单金额",
			},
		},
		{
			name:   "canceled_en",
			locale: i18n.LocaleEN,
			status: "canceled",
			wantSubjectContains: []string{
				"Your order is",
				"Canceled",
			},
			wantBodyContains: []string{
				"BS-CANCEL",
				"contact support",
			},
		},
		{
			name:    "delivered_with_address_en",
			locale:  i18n.LocaleEN,
			status:  "delivered",
			address: "221B Baker Street",
			wantSubjectContains: []string{
				"Delivered",
			},
			wantBodyContains: []string{
				"BS-DELIVER",
				"221B Baker Street",
			},
		},
		{
			name:    "delivered_no_address_en",
			locale:  i18n.LocaleEN,
			status:  "delivered",
			address: "",
			wantSubjectContains: []string{
				"Delivered",
			},
			wantBodyContains: []string{
				"BS-DELIVER",
				"Total",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := OrderStatusEmailInput{
				OrderNo:         pickOrderNo(tt.status),
				Status:          tt.status,
				Total:           models.NewMoneyFromDecimal(decimal.NewFromFloat(19.8)),
				ShippingAddress: tt.address,
			}
			subject, body := buildOrderStatusContent(input, tt.locale)
			for _, expected := range tt.wantSubjectContains {
				if !strings.Contains(subject, expected) {
					t.Fatalf("subject missing %q: %s", expected, subject)
				}
			}
			for _, expected := range tt.wantBodyContains {
				if !strings.Contains(body, expected) {
					t.Fatalf("body missing %q: %s", expected, body)
				}
			}
		})
	}
}

func pickOrderNo(status string) string {
	switch status {
	case "created":
		return "BS-CREATED"
	case "canceled":
		return "BS-CANCEL"
	default:
		return "BS-DELIVER"
	}
}

func TestIsEmailRecipientRejected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "smtp_550_no_such_recipient",
			err:  errors.New("550 No such recipient here"),
			want: true,
		},
		{
			name: "smtp_user_unknown",
			err:  errors.New("SMTP 5.1.1 user unknown"),
			want: true,
		},
		{
			name: "smtp_550_mailbox_unavailable",
			err:  errors.New("550 mailbox unavailable"),
			want: true,
		},
		{
			name: "network_timeout",
			err:  errors.New("dial tcp timeout"),
			want: false,
		},
		{
			name: "nil_error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isEmailRecipientRejected(tt.err); got != tt.want {
				t.Fatalf("isEmailRecipientRejected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeEmailSendError(t *testing.T) {
	rejected := errors.New("550 No such recipient here")
	if got := normalizeEmailSendError(rejected); !errors.Is(got, ErrEmailRecipientRejected) {
		t.Fatalf("normalizeEmailSendError() expected ErrEmailRecipientRejected, got %v", got)
	}

	networkErr := errors.New("dial tcp timeout")
	if got := normalizeEmailSendError(networkErr); !errors.Is(got, networkErr) {
		t.Fatalf("normalizeEmailSendError() should keep original error, got %v", got)
	}

	if got := normalizeEmailSendError(nil); got != nil {
		t.Fatalf("normalizeEmailSendError(nil) should be nil, got %v", got)
	}
}
