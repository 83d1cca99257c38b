// Package donations handles the donation checkout flow and the two
// payment-free public forms, sponsorship enquiries and contact messages.
package donations

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/byp-portal/backend/internal/models"
	"github.com/byp-portal/backend/internal/payments"
	"github.com/byp-portal/backend/internal/registrations"
	"github.com/byp-portal/backend/pkg/docstore"
	"github.com/byp-portal/backend/pkg/queue"
	"github.com/byp-portal/backend/pkg/response"
	"github.com/byp-portal/backend/pkg/validate"
)

// MinDonation is the smallest accepted donation, in minor units.
const MinDonation = 100 * 100

// VerifyRequest is the body for POST /verify-donation. Amount is what the
// donor chose on the form, in minor units; it must match the order.
type VerifyRequest struct {
	Name              string `json:"name" validate:"required,min=2"`
	Organization      string `json:"organization"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required,len=10,numeric"`
	City              string `json:"city"`
	State             string `json:"state"`
	Amount            int64  `json:"amount" validate:"required,gt=0"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

// SponsorshipRequest is the body for POST /sponsorships.
type SponsorshipRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	Organization string `json:"organization" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,len=10,numeric"`
	Tier         string `json:"tier" validate:"required"`
	Message      string `json:"message"`
}

// ContactRequest is the body for POST /contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required,min=10"`
}

// Handler owns the donation pipeline and the enquiry forms.
type Handler struct {
	donations    *docstore.Repository[models.Donation]
	sponsorships *docstore.Repository[models.Sponsorship]
	contacts     *docstore.Repository[models.ContactMessage]
	gateway      *payments.Gateway
	pending      *payments.PendingStore
	jobs         *queue.Queue
	logger       *zap.Logger
}

// NewHandler creates a donations handler.
func NewHandler(
	donations *docstore.Repository[models.Donation],
	sponsorships *docstore.Repository[models.Sponsorship],
	contacts *docstore.Repository[models.ContactMessage],
	gateway *payments.Gateway,
	pending *payments.PendingStore,
	jobs *queue.Queue,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		donations:    donations,
		sponsorships: sponsorships,
		contacts:     contacts,
		gateway:      gateway,
		pending:      pending,
		jobs:         jobs,
		logger:       logger,
	}
}

// Verify handles POST /verify-donation. Unlike registrations there is no
// fixed fee: the expected amount is whatever the donor entered, so the check
// is submitted amount against the pending order's amount.
func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if errs := validate.Struct(req); len(errs) > 0 {
		response.FieldErrors(c, errs)
		return
	}
	if req.Amount < MinDonation {
		response.FieldErrors(c, map[string]string{"amount": "donation must be at least 100 rupees"})
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
		h.logger.Warn("donation signature mismatch",
			zap.String("order_id", req.RazorpayOrderID),
			zap.String("payment_id", req.RazorpayPaymentID))
		response.BadRequest(c, "payment signature verification failed")
		return
	}

	if order.Amount != req.Amount {
		h.logger.Warn("order amount does not match donation",
			zap.Int64("order_amount", order.Amount),
			zap.Int64("submitted", req.Amount))
		response.BadRequest(c, "paid amount does not match the donation amount")
		return
	}

	token := registrations.TokenNumber()
	doc, err := h.donations.Create(c.Request.Context(), models.Donation{
		Name:         req.Name,
		Organization: req.Organization,
		Email:        req.Email,
		Phone:        req.Phone,
		City:         req.City,
		State:        req.State,
		Amount:       order.Amount,
		TokenNumber:  token,
		PaymentID:    req.RazorpayPaymentID,
		OrderID:      req.RazorpayOrderID,
	})
	if err != nil {
		h.logger.Error("persist donation failed", zap.Error(err), zap.String("order_id", req.RazorpayOrderID))
		response.Internal(c, "payment verified but donation could not be saved; contact support")
		return
	}

	if err := h.pending.Delete(c.Request.Context(), req.RazorpayOrderID); err != nil {
		h.logger.Warn("clear pending order failed", zap.Error(err), zap.String("order_id", req.RazorpayOrderID))
	}

	if err := h.jobs.EnqueueEmail(c.Request.Context(), queue.EmailPayload{
		Kind:           queue.EmailKindDonation,
		DocumentID:     doc.ID,
		RecipientEmail: req.Email,
		RecipientName:  req.Name,
		TokenNumber:    token,
		AmountPaid:     order.Amount,
	}); err != nil {
		h.logger.Warn("enqueue receipt email failed", zap.Error(err), zap.String("donation_id", doc.ID.String()))
	}

	h.logger.Info("donation verified",
		zap.String("donation_id", doc.ID.String()),
		zap.Int64("amount", order.Amount),
		zap.String("token_number", token))
	response.OK(c, gin.H{
		"donation_id":  doc.ID,
		"token_number": token,
	})
}

// CreateSponsorship handles POST /sponsorships.
func (h *Handler) CreateSponsorship(c *gin.Context) {
	var req SponsorshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if errs := validate.Struct(req); len(errs) > 0 {
		response.FieldErrors(c, errs)
		return
	}
	doc, err := h.sponsorships.Create(c.Request.Context(), models.Sponsorship{
		Name:         req.Name,
		Organization: req.Organization,
		Email:        req.Email,
		Phone:        req.Phone,
		Tier:         req.Tier,
		Message:      req.Message,
	})
	if err != nil {
		h.logger.Error("persist sponsorship failed", zap.Error(err))
		response.Internal(c, "failed to submit sponsorship enquiry")
		return
	}
	response.Created(c, gin.H{"id": doc.ID})
}

// CreateContact handles POST /contact.
func (h *Handler) CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if errs := validate.Struct(req); len(errs) > 0 {
		response.FieldErrors(c, errs)
		return
	}
	doc, err := h.contacts.Create(c.Request.Context(), models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.logger.Error("persist contact message failed", zap.Error(err))
		response.Internal(c, "failed to submit message")
		return
	}
	response.Created(c, gin.H{"id": doc.ID})
}
