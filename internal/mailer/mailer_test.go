package mailer

import (
	"strings"
	"testing"

	"github.com/byp-portal/backend/pkg/queue"
)

func TestComposeRegistration(t *testing.T) {
	subject, body := compose(queue.EmailPayload{
		Kind:          queue.EmailKindRegistration,
		RecipientName: "Asha",
		TokenNumber:   "BYP-1700000000000-0042",
		AmountPaid:    10000,
	})
	if !strings.Contains(subject, "registration") {
		t.Fatalf("subject %q", subject)
	}
	if !strings.Contains(body, "BYP-1700000000000-0042") {
		t.Fatal("body must carry the token number")
	}
	if !strings.Contains(body, "INR 100.00") {
		t.Fatalf("body %q must state the amount in rupees", body)
	}
}

func TestComposeDonation(t *testing.T) {
	subject, body := compose(queue.EmailPayload{
		Kind:          queue.EmailKindDonation,
		RecipientName: "Ravi",
		TokenNumber:   "BYP-1700000000000-0007",
		AmountPaid:    50000,
	})
	if !strings.Contains(subject, "donation") {
		t.Fatalf("subject %q", subject)
	}
	if !strings.Contains(body, "INR 500.00") {
		t.Fatalf("body %q", body)
	}
}

func TestSendWithoutAPIKeyIsNoop(t *testing.T) {
	m := New(Config{FromAddress: "noreply@example.org", FromName: "BYP"}, nil)
	if err := m.Send(queue.EmailPayload{Kind: queue.EmailKindRegistration, RecipientEmail: "a@b.c"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
