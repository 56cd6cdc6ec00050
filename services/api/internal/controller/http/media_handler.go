package http

import (
	"mime"
	"path/filepath"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/pkg/response"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaUseCase usecase.MediaUseCase
	logger       *logger.Logger
}

func NewMediaHandler(mediaUseCase usecase.MediaUseCase, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUseCase: mediaUseCase,
		logger:       logger,
	}
}

type UploadMediaRequest struct {
	AltText string `form:"altText" binding:"max=200"`
	Caption string `form:"caption" binding:"max=1000"`
	Credit  string `form:"credit" binding:"max=200"`
}

type UpdateMediaRequest struct {
	AltText *string `json:"altText" binding:"omitempty,max=200"`
	Caption *string `json:"caption" binding:"omitempty,max=1000"`
	Credit  *string `json:"credit" binding:"omitempty,max=200"`
}

type AttachMediaRequest struct {
	StoryID string `json:"storyId" binding:"required,uuid"`
	Order   int    `json:"order" binding:"gte=0"`
}

type DetachMediaRequest struct {
	StoryID string `json:"storyId" binding:"required,uuid"`
}

// UploadMedia godoc
// @Summary      Upload a media file
// @Description  Images up to 5MB, audio up to 50MB, video up to 100MB, documents up to 10MB
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Security     CookieAuth
// @Param        file    formData file   true  "File"
// @Param        altText formData string false "Alternative text"
// @Param        caption formData string false "Caption"
// @Param        credit  formData string false "Credit"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /media/upload [post]
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	var req UploadMediaRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, bindingError(err))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, apperror.Validation("No file uploaded", apperror.FieldIssue{Field: "file", Issue: "is required"}))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(filepath.Ext(fileHeader.Filename)); byExt != "" {
			mimeType = byExt
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, apperror.Internal("Failed to read upload", err))
		return
	}
	defer file.Close()

	media, err := h.mediaUseCase.Upload(c.Request.Context(), currentUserID(c), usecase.UploadMediaInput{
		File:         file,
		OriginalName: fileHeader.Filename,
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		AltText:      req.AltText,
		Caption:      req.Caption,
		Credit:       req.Credit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedWithMessage(c, "File uploaded successfully", media)
}

// ListMedia godoc
// @Summary      List the caller's media
// @Tags         media
// @Produce      json
// @Security     CookieAuth
// @Param        type     query string false "IMAGE, VIDEO, AUDIO or DOCUMENT"
// @Param        search   query string false "Search in file names, alt text and caption"
// @Param        page     query int    false "Page (default 1)"
// @Param        per_page query int    false "Page size (default 20, max 50)"
// @Param        sort     query string false "createdAt, size or usageCount"
// @Param        order    query string false "asc or desc"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /media [get]
func (h *MediaHandler) ListMedia(c *gin.Context) {
	page, err := parsePage(c, mediaPageOptions)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := entity.MediaFilter{
		Type:   entity.MediaType(c.Query("type")),
		Search: c.Query("search"),
	}
	items, total, err := h.mediaUseCase.List(c.Request.Context(), currentUserID(c), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, items, pagination.NewMeta(page, total))
}

// StorageUsage godoc
// @Summary      Storage used by the caller
// @Tags         media
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  response.Envelope
// @Router       /media/storage/usage [get]
func (h *MediaHandler) StorageUsage(c *gin.Context) {
	usage, err := h.mediaUseCase.StorageUsage(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, usage)
}

// GetMedia godoc
// @Summary      Get a media file's metadata
// @Tags         media
// @Produce      json
// @Security     CookieAuth
// @Param        id path string true "Media ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /media/{id} [get]
func (h *MediaHandler) GetMedia(c *gin.Context) {
	media, err := h.mediaUseCase.Get(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, media)
}

// UpdateMedia godoc
// @Summary      Update media metadata
// @Tags         media
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id      path string             true "Media ID"
// @Param        request body UpdateMediaRequest true "Metadata"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /media/{id} [patch]
func (h *MediaHandler) UpdateMedia(c *gin.Context) {
	var req UpdateMediaRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	media, err := h.mediaUseCase.Update(c.Request.Context(), c.Param("id"), currentUserID(c), usecase.UpdateMediaInput{
		AltText: req.AltText,
		Caption: req.Caption,
		Credit:  req.Credit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, media)
}

// DeleteMedia godoc
// @Summary      Delete a media file
// @Tags         media
// @Security     CookieAuth
// @Param        id path string true "Media ID"
// @Success      204
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Failure      409  {object}  response.ErrorEnvelope
// @Router       /media/{id} [delete]
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	if err := h.mediaUseCase.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AttachMedia godoc
// @Summary      Attach media to a story
// @Tags         media
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id      path string             true "Media ID"
// @Param        request body AttachMediaRequest true "Story and position"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      409  {object}  response.ErrorEnvelope
// @Router       /media/{id}/attach [post]
func (h *MediaHandler) AttachMedia(c *gin.Context) {
	var req AttachMediaRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.mediaUseCase.Attach(c.Request.Context(), c.Param("id"), currentUserID(c), req.StoryID, req.Order); err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "Media attached to story", gin.H{"attached": true})
}

// DetachMedia godoc
// @Summary      Detach media from a story
// @Tags         media
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id      path string             true "Media ID"
// @Param        request body DetachMediaRequest true "Story"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /media/{id}/detach [post]
func (h *MediaHandler) DetachMedia(c *gin.Context) {
	var req DetachMediaRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.mediaUseCase.Detach(c.Request.Context(), c.Param("id"), currentUserID(c), req.StoryID); err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "Media detached from story", gin.H{"detached": true})
}
