// Package payments integrates the Razorpay hosted checkout: order creation,
// signature verification and the pending-order ledger that bounds how long
// an unpaid checkout stays open.
package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// Currency is the only currency the forms charge in.
const Currency = "INR"

// Order is the descriptor handed to the hosted checkout widget.
type Order struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Key      string `json:"key"` // public key id for the checkout widget
}

// Gateway creates orders against the Razorpay API and verifies the
// signatures its checkout widget reports back.
type Gateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
	logger    *zap.Logger
}

// NewGateway creates a Razorpay gateway client.
func NewGateway(keyID, keySecret string, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
		logger:    logger,
	}
}

// CreateOrder creates a gateway order for amount in minor units.
func (g *Gateway) CreateOrder(amount int64, receipt string) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": Currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}
	orderID, _ := body["id"].(string)
	if orderID == "" {
		return nil, fmt.Errorf("razorpay order create: no order id in response")
	}
	g.logger.Info("razorpay order created", zap.String("order_id", orderID), zap.Int64("amount", amount))
	return &Order{
		OrderID:  orderID,
		Amount:   amount,
		Currency: Currency,
		Key:      g.keyID,
	}, nil
}

// VerifySignature checks the checkout callback signature. Razorpay signs
// "<order_id>|<payment_id>" with the key secret using HMAC-SHA256.
func (g *Gateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, g.keySecret)
}

// VerifySignature checks a checkout signature against the given secret.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
