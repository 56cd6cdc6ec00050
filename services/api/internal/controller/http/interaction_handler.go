package http

import (
	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/pkg/response"
	"sekor-bkc/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewInteractionHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

type CommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

// ListComments godoc
// @Summary      List comments on a published story
// @Tags         interactions
// @Produce      json
// @Param        id       path  string true  "Story ID"
// @Param        page     query int    false "Page (default 1)"
// @Param        per_page query int    false "Page size (default 20, max 100)"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /stories/{id}/comments [get]
func (h *InteractionHandler) ListComments(c *gin.Context) {
	page, err := parsePage(c, commentPageOptions)
	if err != nil {
		response.Error(c, err)
		return
	}

	comments, total, err := h.interactionUseCase.ListComments(c.Request.Context(), c.Param("id"), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, comments, pagination.NewMeta(page, total))
}

// AddComment godoc
// @Summary      Comment on a story
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id      path string         true "Story ID"
// @Param        request body CommentRequest true "Comment"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /stories/{id}/comments [post]
func (h *InteractionHandler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := h.interactionUseCase.AddComment(c.Request.Context(), c.Param("id"), currentUserID(c), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}

// Bookmark godoc
// @Summary      Bookmark a story
// @Description  Idempotent
// @Tags         interactions
// @Produce      json
// @Security     CookieAuth
// @Param        id path string true "Story ID"
// @Success      201  {object}  response.Envelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /stories/{id}/bookmark [post]
func (h *InteractionHandler) Bookmark(c *gin.Context) {
	if err := h.interactionUseCase.Bookmark(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"bookmarked": true})
}

// RemoveBookmark godoc
// @Summary      Remove a bookmark
// @Tags         interactions
// @Security     CookieAuth
// @Param        id path string true "Story ID"
// @Success      204
// @Router       /stories/{id}/bookmark [delete]
func (h *InteractionHandler) RemoveBookmark(c *gin.Context) {
	if err := h.interactionUseCase.RemoveBookmark(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// React godoc
// @Summary      React to a story
// @Tags         interactions
// @Produce      json
// @Security     CookieAuth
// @Param        id path string true "Story ID"
// @Success      201  {object}  response.Envelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /stories/{id}/react [post]
func (h *InteractionHandler) React(c *gin.Context) {
	if err := h.interactionUseCase.React(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"reacted": true})
}

// Share godoc
// @Summary      Record a share
// @Tags         interactions
// @Produce      json
// @Security     CookieAuth
// @Param        id path string true "Story ID"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /stories/{id}/share [post]
func (h *InteractionHandler) Share(c *gin.Context) {
	if err := h.interactionUseCase.Share(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"shared": true})
}
