package auth

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/byp-portal/backend/internal/models"
	"github.com/byp-portal/backend/pkg/docstore"
	"github.com/byp-portal/backend/pkg/response"
)

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the auth response with JWT and the admin profile.
type TokenResponse struct {
	Token string       `json:"token"`
	Admin models.Admin `json:"admin"`
}

// Handler handles auth HTTP endpoints.
type Handler struct {
	repo   *Repository
	admins *docstore.Repository[models.Admin]
	jwt    *JWTService
	logger *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(repo *Repository, admins *docstore.Repository[models.Admin], jwt *JWTService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, admins: admins, jwt: jwt, logger: logger}
}

// Login handles POST /auth/login. Only identity accounts with a matching
// admin profile document may sign in.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, err := h.repo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Unauthorized(c, "invalid email or password")
		return
	}
	if !CheckPassword(req.Password, user.Password) {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	profile, err := h.ProfileByUserID(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Warn("login without admin profile", zap.String("email", req.Email))
		response.Forbidden(c, "no admin profile for this account")
		return
	}

	token, err := h.jwt.Generate(user.ID, user.Email, string(profile.Role))
	if err != nil {
		h.logger.Error("generate token failed", zap.Error(err))
		response.Internal(c, "failed to generate token")
		return
	}

	response.OK(c, TokenResponse{Token: token, Admin: profile})
}

// ProfileByUserID finds the admin profile document for an identity account.
func (h *Handler) ProfileByUserID(ctx context.Context, userID uuid.UUID) (models.Admin, error) {
	docs, err := h.admins.List(ctx)
	if err != nil {
		return models.Admin{}, err
	}
	for _, doc := range docs {
		if doc.Data.UserID == userID {
			return doc.Data, nil
		}
	}
	return models.Admin{}, docstore.ErrNotFound
}
