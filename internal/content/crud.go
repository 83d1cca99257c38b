// Package content provides the one generic CRUD surface every admin screen
// binds to: list with client-side search, create, patch, delete and CSV
// export over a document collection.
package content

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/byp-portal/backend/pkg/docstore"
	"github.com/byp-portal/backend/pkg/export"
	"github.com/byp-portal/backend/pkg/response"
)

// CRUD is a typed admin screen over one collection.
type CRUD[T any] struct {
	name       string
	repo       *docstore.Repository[T]
	search     func(T) []string
	publicOnly func(T) bool
	immutable  bool
	logger     *zap.Logger
}

// Option configures a CRUD surface.
type Option[T any] func(*CRUD[T])

// WithSearch supplies the strings ?q= matches against, case-insensitively.
func WithSearch[T any](fields func(T) []string) Option[T] {
	return func(h *CRUD[T]) { h.search = fields }
}

// WithPublicListing exposes a public list of documents passing filter
// (typically published-only).
func WithPublicListing[T any](filter func(T) bool) Option[T] {
	return func(h *CRUD[T]) { h.publicOnly = filter }
}

// ReadOnly disables create and patch: the collection is fed by the public
// forms and admins may only inspect, export and delete.
func ReadOnly[T any]() Option[T] {
	return func(h *CRUD[T]) { h.immutable = true }
}

// NewCRUD creates a CRUD surface for a collection.
func NewCRUD[T any](name string, repo *docstore.Repository[T], logger *zap.Logger, opts ...Option[T]) *CRUD[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &CRUD[T]{name: name, repo: repo, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Mount registers the admin routes under /{name}.
func (h *CRUD[T]) Mount(admin *gin.RouterGroup) {
	admin.GET("/"+h.name, h.List)
	admin.GET("/"+h.name+"/export", h.Export)
	admin.DELETE("/"+h.name+"/:id", h.Delete)
	if !h.immutable {
		admin.POST("/"+h.name, h.Create)
		admin.PATCH("/"+h.name+"/:id", h.Patch)
	}
}

// MountPublic registers the public listing under /{name} when configured.
func (h *CRUD[T]) MountPublic(public *gin.RouterGroup) {
	if h.publicOnly != nil {
		public.GET("/"+h.name, h.PublicList)
	}
}

// List handles GET /{name} (admin). ?q= filters the fetched list in memory.
func (h *CRUD[T]) List(c *gin.Context) {
	docs, err := h.listFiltered(c)
	if err != nil {
		response.Internal(c, "failed to list "+h.name)
		return
	}
	response.OK(c, docs)
}

// PublicList handles GET /{name} on the public site.
func (h *CRUD[T]) PublicList(c *gin.Context) {
	docs, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list failed", zap.String("collection", h.name), zap.Error(err))
		response.Internal(c, "failed to list "+h.name)
		return
	}
	visible := make([]docstore.Doc[T], 0, len(docs))
	for _, doc := range docs {
		if h.publicOnly(doc.Data) {
			visible = append(visible, doc)
		}
	}
	response.OK(c, visible)
}

// Create handles POST /{name} (admin).
func (h *CRUD[T]) Create(c *gin.Context) {
	var v T
	if err := c.ShouldBindJSON(&v); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	doc, err := h.repo.Create(c.Request.Context(), v)
	if err != nil {
		h.logger.Error("create failed", zap.String("collection", h.name), zap.Error(err))
		response.Internal(c, "failed to create "+h.name)
		return
	}
	response.Created(c, doc)
}

// Patch handles PATCH /{name}/:id (admin). Fields merge into the document;
// last write wins.
func (h *CRUD[T]) Patch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		response.BadRequest(c, "invalid request: fields object required")
		return
	}
	doc, err := h.repo.Patch(c.Request.Context(), id, fields)
	if err == docstore.ErrNotFound {
		response.NotFound(c, h.name+" document not found")
		return
	}
	if err != nil {
		h.logger.Error("patch failed", zap.String("collection", h.name), zap.Error(err))
		response.Internal(c, "failed to update "+h.name)
		return
	}
	response.OK(c, doc)
}

// Delete handles DELETE /{name}/:id (admin). Safe to repeat.
func (h *CRUD[T]) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("delete failed", zap.String("collection", h.name), zap.Error(err))
		response.Internal(c, "failed to delete "+h.name)
		return
	}
	response.OK(c, gin.H{"id": id})
}

// Export handles GET /{name}/export (admin): CSV of the currently filtered
// list, columns named after the document fields.
func (h *CRUD[T]) Export(c *gin.Context) {
	docs, err := h.listFiltered(c)
	if err != nil {
		response.Internal(c, "failed to export "+h.name)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+h.name+`.csv"`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := export.CSV(c.Writer, docs); err != nil {
		h.logger.Error("export failed", zap.String("collection", h.name), zap.Error(err))
	}
}

func (h *CRUD[T]) listFiltered(c *gin.Context) ([]docstore.Doc[T], error) {
	docs, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list failed", zap.String("collection", h.name), zap.Error(err))
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if q == "" || h.search == nil {
		if docs == nil {
			docs = []docstore.Doc[T]{}
		}
		return docs, nil
	}
	matched := make([]docstore.Doc[T], 0, len(docs))
	for _, doc := range docs {
		for _, field := range h.search(doc.Data) {
			if strings.Contains(strings.ToLower(field), q) {
				matched = append(matched, doc)
				break
			}
		}
	}
	return matched, nil
}
