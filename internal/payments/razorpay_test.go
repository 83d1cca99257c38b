package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test_secret"
	sig := sign("order_abc", "pay_xyz", secret)

	if !VerifySignature("order_abc", "pay_xyz", sig, secret) {
		t.Fatal("expected valid signature to verify")
	}
	if VerifySignature("order_abc", "pay_other", sig, secret) {
		t.Fatal("expected mismatched payment id to fail")
	}
	if VerifySignature("order_abc", "pay_xyz", sig, "wrong_secret") {
		t.Fatal("expected wrong secret to fail")
	}
	if VerifySignature("order_abc", "pay_xyz", "", secret) {
		t.Fatal("expected empty signature to fail")
	}
}
