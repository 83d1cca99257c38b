package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrOrderNotPending is returned when an order id has no pending record:
// either it never existed, was already verified, or its TTL lapsed because
// the user abandoned the checkout.
var ErrOrderNotPending = errors.New("order is not pending (unknown, already verified, or expired)")

const pendingKeyPrefix = "orders:pending:"

// PendingOrder is the record kept between order creation and verification.
type PendingOrder struct {
	OrderID   string    `json:"order_id"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// PendingStore keeps unverified orders in Redis with a TTL, so an abandoned
// checkout times out instead of staying claimable forever.
type PendingStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPendingStore creates a pending-order store.
func NewPendingStore(client *redis.Client, ttl time.Duration) *PendingStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &PendingStore{client: client, ttl: ttl}
}

// Put records a freshly created order.
func (s *PendingStore) Put(ctx context.Context, order PendingOrder) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode pending order: %w", err)
	}
	if err := s.client.Set(ctx, pendingKeyPrefix+order.OrderID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("store pending order: %w", err)
	}
	return nil
}

// Get returns the pending record for an order id.
func (s *PendingStore) Get(ctx context.Context, orderID string) (*PendingOrder, error) {
	raw, err := s.client.Get(ctx, pendingKeyPrefix+orderID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrOrderNotPending
	}
	if err != nil {
		return nil, fmt.Errorf("load pending order: %w", err)
	}
	var order PendingOrder
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("decode pending order: %w", err)
	}
	return &order, nil
}

// Delete removes the pending record once verification settles the order.
func (s *PendingStore) Delete(ctx context.Context, orderID string) error {
	return s.client.Del(ctx, pendingKeyPrefix+orderID).Err()
}
