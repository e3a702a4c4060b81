package service

import (
	"errors"
	"testing"
)

func TestCanonicalizeOrderStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
		err  error
	}{
		{in: "created", want: "created"},
		{in: "Created", want: "created"},
		{in: "  DELIVERED  ", want: "delivered"},
		{in: "pEnDiNg", want: "pending"},
		{in: "completed", want: "completed"},
		{in: "canceled", want: "canceled"},
		{in: "shipped", err: ErrInvalidOrderStatus},
		{in: "cancelled", err: ErrInvalidOrderStatus},
		{in: "", err: ErrInvalidOrderStatus},
		{in: "   ", err: ErrInvalidOrderStatus},
	}
	for _, item := range cases {
		got, err := canonicalizeOrderStatus(item.in)
		if item.err != nil {
			if !errors.Is(err, item.err) {
				t.Fatalf("in=%q want err %v, got %v", item.in, item.err, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("in=%q unexpected error: %v", item.in, err)
		}
		if got != item.want {
			t.Fatalf("in=%q want %q, got %q", item.in, item.want, got)
		}
	}
}
