package registrations

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/byp-portal/backend/internal/models"
	"github.com/byp-portal/backend/internal/payments"
	"github.com/byp-portal/backend/pkg/docstore"
	"github.com/byp-portal/backend/pkg/queue"
	"github.com/byp-portal/backend/pkg/response"
)

// CreateOrderRequest is the body for POST /create-order. Amount is in the
// currency's smallest unit, already multiplied by 100 by the caller.
type CreateOrderRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// VerifyRequest is the body for the verify-payment endpoints: the full form
// payload plus the three values the checkout widget hands to its success
// callback.
type VerifyRequest struct {
	Submission
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// Handler owns the registration submission pipeline.
type Handler struct {
	repo    *docstore.Repository[models.Registration]
	gateway *payments.Gateway
	pending *payments.PendingStore
	jobs    *queue.Queue
	logger  *zap.Logger
}

// NewHandler creates a registrations handler.
func NewHandler(repo *docstore.Repository[models.Registration], gateway *payments.Gateway, pending *payments.PendingStore, jobs *queue.Queue, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, gateway: gateway, pending: pending, jobs: jobs, logger: logger}
}

// CreateOrder handles POST /create-order. It creates a gateway order and
// records it as pending; verification later refuses orders it cannot find
// pending, which bounds abandoned checkouts to the pending TTL.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: amount (minor units) required")
		return
	}

	order, err := h.gateway.CreateOrder(req.Amount, "byp-"+uuid.New().String())
	if err != nil {
		h.logger.Error("create order failed", zap.Error(err), zap.Int64("amount", req.Amount))
		response.Internal(c, "failed to create payment order")
		return
	}

	if err := h.pending.Put(c.Request.Context(), payments.PendingOrder{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}); err != nil {
		h.logger.Error("record pending order failed", zap.Error(err), zap.String("order_id", order.OrderID))
		response.Internal(c, "failed to create payment order")
		return
	}

	response.OK(c, order)
}

// Verify returns the handler for a verify-payment endpoint. The registration
// document is written here and nowhere else, and only after the signature,
// pending-order and amount checks all pass.
func (h *Handler) Verify(t models.RegistrationType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "invalid request: "+err.Error())
			return
		}

		if errs := req.Validate(); len(errs) > 0 {
			response.FieldErrors(c, errs)
			return
		}

		order, err := h.pending.Get(c.Request.Context(), req.RazorpayOrderID)
		if err != nil {
			if errors.Is(err, payments.ErrOrderNotPending) {
				response.BadRequest(c, "payment order not found or expired; please start over")
				return
			}
			h.logger.Error("pending order lookup failed", zap.Error(err), zap.String("order_id", req.RazorpayOrderID))
			response.Internal(c, "payment verification failed")
			return
		}

		if !h.gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
			h.logger.Warn("payment signature mismatch",
				zap.String("order_id", req.RazorpayOrderID),
				zap.String("payment_id", req.RazorpayPaymentID))
			response.BadRequest(c, "payment signature verification failed")
			return
		}

		fee, err := Fee(t, req.Mode)
		if err != nil {
			response.BadRequest(c, "unknown registration type")
			return
		}
		if order.Amount != fee {
			h.logger.Warn("order amount does not match fee",
				zap.Int64("order_amount", order.Amount),
				zap.Int64("fee", fee),
				zap.String("type", string(t)))
			response.BadRequest(c, "paid amount does not match the registration fee")
			return
		}

		token := TokenNumber()
		doc, err := h.repo.Create(c.Request.Context(),
			req.Registration(t, order.Amount, token, req.RazorpayPaymentID, req.RazorpayOrderID))
		if err != nil {
			h.logger.Error("persist registration failed", zap.Error(err), zap.String("order_id", req.RazorpayOrderID))
			response.Internal(c, "payment verified but registration could not be saved; contact support")
			return
		}

		if err := h.pending.Delete(c.Request.Context(), req.RazorpayOrderID); err != nil {
			h.logger.Warn("clear pending order failed", zap.Error(err), zap.String("order_id", req.RazorpayOrderID))
		}

		if err := h.jobs.EnqueueEmail(c.Request.Context(), queue.EmailPayload{
			Kind:           queue.EmailKindRegistration,
			DocumentID:     doc.ID,
			RecipientEmail: req.Email,
			RecipientName:  req.Name,
			TokenNumber:    token,
			AmountPaid:     order.Amount,
		}); err != nil {
			// Confirmation mail is best effort; the registration stands.
			h.logger.Warn("enqueue confirmation email failed", zap.Error(err), zap.String("registration_id", doc.ID.String()))
		}

		h.logger.Info("registration verified",
			zap.String("registration_id", doc.ID.String()),
			zap.String("type", string(t)),
			zap.String("token_number", token))
		response.OK(c, gin.H{
			"registration_id": doc.ID,
			"token_number":    token,
		})
	}
}

// Get handles GET /registrations/:id (public confirmation view).
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid registration id")
		return
	}
	doc, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "registration not found")
		return
	}
	response.OK(c, gin.H{
		"id":           doc.ID,
		"type":         doc.Data.Type,
		"name":         doc.Data.Name,
		"mode":         doc.Data.Mode,
		"amount_paid":  doc.Data.AmountPaid,
		"token_number": doc.Data.TokenNumber,
		"created_at":   doc.CreatedAt,
	})
}
