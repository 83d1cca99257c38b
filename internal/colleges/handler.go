package colleges

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/byp-portal/backend/internal/models"
	"github.com/byp-portal/backend/pkg/docstore"
	"github.com/byp-portal/backend/pkg/export"
	"github.com/byp-portal/backend/pkg/response"
)

// CreateRequest is the body for POST /colleges.
type CreateRequest struct {
	Name  string `json:"name" binding:"required,min=2"`
	City  string `json:"city" binding:"required"`
	State string `json:"state" binding:"required"`
	Type  string `json:"type" binding:"required,oneof=government private deemed"`
}

// UpdateRequest is the body for PATCH /colleges/:id. The code is never
// editable; it is stamped once at creation.
type UpdateRequest struct {
	Name  *string `json:"name"`
	City  *string `json:"city"`
	State *string `json:"state"`
	Type  *string `json:"type"`
}

// Handler handles college CRUD with code generation and name dedup.
type Handler struct {
	repo   *docstore.Repository[models.College]
	logger *zap.Logger
}

// NewHandler creates a colleges handler.
func NewHandler(repo *docstore.Repository[models.College], logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /colleges. Public: the registration form dropdown binds
// to this, alphabetically.
func (h *Handler) List(c *gin.Context) {
	docs, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list colleges failed", zap.Error(err))
		response.Internal(c, "failed to list colleges")
		return
	}
	response.OK(c, docs)
}

// Create handles POST /colleges (admin only).
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	docs, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list colleges failed", zap.Error(err))
		response.Internal(c, "failed to create college")
		return
	}
	if dupe := findByName(docs, req.Name, uuid.Nil); dupe != nil {
		response.Conflict(c, "a college with this name already exists")
		return
	}

	codes := make([]string, 0, len(docs))
	for _, doc := range docs {
		codes = append(codes, doc.Data.Code)
	}

	college := models.College{
		Name:  strings.TrimSpace(req.Name),
		City:  req.City,
		State: req.State,
		Type:  req.Type,
		Code:  GenerateCode(req.Name, codes),
	}
	doc, err := h.repo.Create(c.Request.Context(), college)
	if err != nil {
		h.logger.Error("create college failed", zap.Error(err))
		response.Internal(c, "failed to create college")
		return
	}
	response.Created(c, doc)
}

// Update handles PATCH /colleges/:id (admin only). Name dedup excludes the
// record being edited; the generated code is preserved.
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid college id")
		return
	}
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			response.BadRequest(c, "name cannot be empty")
			return
		}
		docs, err := h.repo.List(c.Request.Context())
		if err != nil {
			h.logger.Error("list colleges failed", zap.Error(err))
			response.Internal(c, "failed to update college")
			return
		}
		if dupe := findByName(docs, name, id); dupe != nil {
			response.Conflict(c, "a college with this name already exists")
			return
		}
		fields["name"] = name
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.State != nil {
		fields["state"] = *req.State
	}
	if req.Type != nil {
		switch *req.Type {
		case models.CollegeGovernment, models.CollegePrivate, models.CollegeDeemed:
			fields["type"] = *req.Type
		default:
			response.BadRequest(c, "invalid college type")
			return
		}
	}
	if len(fields) == 0 {
		response.BadRequest(c, "nothing to update")
		return
	}

	doc, err := h.repo.Patch(c.Request.Context(), id, fields)
	if err == docstore.ErrNotFound {
		response.NotFound(c, "college not found")
		return
	}
	if err != nil {
		h.logger.Error("update college failed", zap.Error(err), zap.String("id", id.String()))
		response.Internal(c, "failed to update college")
		return
	}
	response.OK(c, doc)
}

// Delete handles DELETE /colleges/:id (admin only). Registrations reference
// colleges by name, so deletion does not cascade.
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid college id")
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("delete college failed", zap.Error(err), zap.String("id", id.String()))
		response.Internal(c, "failed to delete college")
		return
	}
	response.OK(c, gin.H{"id": id})
}

// Export handles GET /colleges/export (admin only).
func (h *Handler) Export(c *gin.Context) {
	docs, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list colleges failed", zap.Error(err))
		response.Internal(c, "failed to export colleges")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="colleges.csv"`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := export.CSV(c.Writer, docs); err != nil {
		h.logger.Error("export colleges failed", zap.Error(err))
	}
}

func findByName(docs []docstore.Doc[models.College], name string, exclude uuid.UUID) *docstore.Doc[models.College] {
	for i, doc := range docs {
		if doc.ID == exclude {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(doc.Data.Name), strings.TrimSpace(name)) {
			return &docs[i]
		}
	}
	return nil
}
