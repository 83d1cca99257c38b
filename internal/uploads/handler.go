// Package uploads exposes the multipart media upload endpoint backing the
// registration form (photo, speech video) and the admin content screens.
package uploads

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/byp-portal/backend/pkg/response"
	"github.com/byp-portal/backend/pkg/storage"
)

var allowedPrefixes = map[string]struct{}{
	storage.PrefixRegistrations: {},
	storage.PrefixBlogs:         {},
	storage.PrefixSpeakers:      {},
	storage.PrefixGallery:       {},
	storage.PrefixSpots:         {},
	storage.PrefixClippings:     {},
	storage.PrefixCreatives:     {},
	storage.PrefixSponsors:      {},
}

// Handler handles media uploads.
type Handler struct {
	store  *storage.Store
	logger *zap.Logger
}

// NewHandler creates an uploads handler.
func NewHandler(store *storage.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

// Upload handles POST /uploads/:prefix/:id. The file arrives as the "file"
// multipart part; the response carries the public URL the caller then writes
// into its form payload or document. Uploads are sequenced by the caller,
// one request per file.
func (h *Handler) Upload(c *gin.Context) {
	prefix := c.Param("prefix")
	if _, ok := allowedPrefixes[prefix]; !ok {
		response.BadRequest(c, "unknown upload prefix")
		return
	}
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "invalid upload id")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "multipart field 'file' required")
		return
	}
	if file.Size > h.store.MaxUploadBytes() {
		response.BadRequest(c, "file exceeds the upload size limit")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !storage.ValidMediaType(contentType, file.Filename) {
		response.BadRequest(c, "unsupported media type; use jpg, png, webp, mp4 or mov")
		return
	}
	if contentType == "" {
		contentType = storage.ContentTypeForFilename(file.Filename)
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error("open multipart file failed", zap.Error(err))
		response.Internal(c, "failed to read uploaded file")
		return
	}
	defer src.Close()

	url, err := h.store.Upload(c.Request.Context(), prefix, id, file.Filename, contentType, src, file.Size)
	if err != nil {
		h.logger.Error("upload failed",
			zap.Error(err),
			zap.String("prefix", prefix),
			zap.String("filename", file.Filename))
		response.Internal(c, "failed to upload file")
		return
	}

	h.logger.Info("media uploaded",
		zap.String("prefix", prefix),
		zap.String("id", id),
		zap.Int64("size", file.Size))
	response.OK(c, gin.H{"url": url})
}
