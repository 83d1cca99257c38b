// Package admins manages admin profiles and their identity accounts.
// Management is restricted to master and super admins, and an admin can only
// ever see admins strictly below their own role.
package admins

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/byp-portal/backend/internal/auth"
	"github.com/byp-portal/backend/internal/middleware"
	"github.com/byp-portal/backend/internal/models"
	"github.com/byp-portal/backend/pkg/docstore"
	"github.com/byp-portal/backend/pkg/response"
)

// CreateRequest is the body for POST /admins.
type CreateRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

// Handler handles admin management endpoints.
type Handler struct {
	users  *auth.Repository
	repo   *docstore.Repository[models.Admin]
	logger *zap.Logger
}

// NewHandler creates an admins handler.
func NewHandler(users *auth.Repository, repo *docstore.Repository[models.Admin], logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{users: users, repo: repo, logger: logger}
}

// List handles GET /admins. The result is filtered to admins the requester
// is allowed to see: those with a strictly lower role.
func (h *Handler) List(c *gin.Context) {
	viewer := middleware.ViewerRole(c)
	docs, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list admins failed", zap.Error(err))
		response.Internal(c, "failed to list admins")
		return
	}
	visible := make([]docstore.Doc[models.Admin], 0, len(docs))
	for _, doc := range docs {
		if models.CanView(viewer, doc.Data.Role) {
			visible = append(visible, doc)
		}
	}
	response.OK(c, visible)
}

// Create handles POST /admins. Provisioning is two writes, identity account
// then profile document; a failed profile write is compensated by deleting
// the account so no half-provisioned admin can log in.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		response.BadRequest(c, "invalid role")
		return
	}
	viewer := middleware.ViewerRole(c)
	if !models.CanView(viewer, role) {
		response.Forbidden(c, "cannot create an admin at or above your own role")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := h.users.GetByEmail(c.Request.Context(), email); err == nil {
		response.Conflict(c, "an account with this email already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("hash password failed", zap.Error(err))
		response.Internal(c, "failed to create admin")
		return
	}

	user, err := h.users.Create(c.Request.Context(), email, hash)
	if err != nil {
		h.logger.Error("create identity account failed", zap.Error(err), zap.String("email", email))
		response.Internal(c, "failed to create admin")
		return
	}

	doc, err := h.repo.Create(c.Request.Context(), models.Admin{
		UserID: user.ID,
		Name:   req.Name,
		Email:  email,
		Role:   role,
	})
	if err != nil {
		h.logger.Error("create admin profile failed", zap.Error(err), zap.String("user_id", user.ID.String()))
		if cerr := h.users.Delete(c.Request.Context(), user.ID); cerr != nil {
			// The account exists without a profile; it cannot log in but
			// needs manual cleanup.
			h.logger.Error("compensating account delete failed",
				zap.Error(cerr), zap.String("user_id", user.ID.String()))
			response.Internal(c, "failed to create admin; orphaned account "+user.ID.String()+" requires cleanup")
			return
		}
		response.Internal(c, "failed to create admin")
		return
	}

	h.logger.Info("admin provisioned",
		zap.String("admin_id", doc.ID.String()),
		zap.String("role", string(role)))
	response.Created(c, doc)
}

// Delete handles DELETE /admins/:id. Only the profile document is removed;
// the identity account stays, and without a profile it can no longer log in.
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid admin id")
		return
	}

	doc, err := h.repo.Get(c.Request.Context(), id)
	if err == docstore.ErrNotFound {
		response.NotFound(c, "admin not found")
		return
	}
	if err != nil {
		h.logger.Error("get admin failed", zap.Error(err), zap.String("id", id.String()))
		response.Internal(c, "failed to delete admin")
		return
	}

	viewer := middleware.ViewerRole(c)
	if !models.CanView(viewer, doc.Data.Role) {
		response.Forbidden(c, "cannot delete an admin at or above your own role")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("delete admin failed", zap.Error(err), zap.String("id", id.String()))
		response.Internal(c, "failed to delete admin")
		return
	}
	response.OK(c, gin.H{"id": id})
}
