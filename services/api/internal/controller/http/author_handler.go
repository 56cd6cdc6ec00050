package http

import (
	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/pkg/response"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	authorUseCase usecase.AuthorUseCase
	logger        *logger.Logger
}

func NewAuthorHandler(authorUseCase usecase.AuthorUseCase, logger *logger.Logger) *AuthorHandler {
	return &AuthorHandler{
		authorUseCase: authorUseCase,
		logger:        logger,
	}
}

// ListAuthors godoc
// @Summary      List authors
// @Description  Active users with an author role, with published story and follower counts
// @Tags         authors
// @Produce      json
// @Param        role     query string false "AUTHOR, EDITOR or ADMIN"
// @Param        search   query string false "Search by name"
// @Param        page     query int    false "Page (default 1)"
// @Param        per_page query int    false "Page size (default 20, max 100)"
// @Param        sort     query string false "createdAt or name"
// @Param        order    query string false "asc or desc"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	page, err := parsePage(c, authorPageOptions)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := entity.AuthorFilter{
		Role:   entity.Role(c.Query("role")),
		Search: c.Query("search"),
	}
	authors, total, err := h.authorUseCase.List(c.Request.Context(), filter, currentUserID(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, authors, pagination.NewMeta(page, total))
}

// GetAuthor godoc
// @Summary      Get an author
// @Tags         authors
// @Produce      json
// @Param        id path string true "Author ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	author, err := h.authorUseCase.Get(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, author)
}

// Follow godoc
// @Summary      Follow an author
// @Description  Idempotent
// @Tags         authors
// @Produce      json
// @Security     CookieAuth
// @Param        id path string true "Author ID"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /authors/{id}/follow [post]
func (h *AuthorHandler) Follow(c *gin.Context) {
	h.follow(c, c.Param("id"))
}

// FollowAlias godoc
// @Summary      Follow an author
// @Tags         follows
// @Produce      json
// @Security     CookieAuth
// @Param        authorId path string true "Author ID"
// @Success      201  {object}  response.Envelope
// @Router       /follows/{authorId} [post]
func (h *AuthorHandler) FollowAlias(c *gin.Context) {
	h.follow(c, c.Param("authorId"))
}

func (h *AuthorHandler) follow(c *gin.Context, authorID string) {
	if err := h.authorUseCase.Follow(c.Request.Context(), currentUserID(c), authorID); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"followed": true})
}

// Unfollow godoc
// @Summary      Unfollow an author
// @Description  Idempotent
// @Tags         authors
// @Security     CookieAuth
// @Param        id path string true "Author ID"
// @Success      204
// @Router       /authors/{id}/follow [delete]
func (h *AuthorHandler) Unfollow(c *gin.Context) {
	h.unfollow(c, c.Param("id"))
}

// UnfollowAlias godoc
// @Summary      Unfollow an author
// @Tags         follows
// @Security     CookieAuth
// @Param        authorId path string true "Author ID"
// @Success      204
// @Router       /follows/{authorId} [delete]
func (h *AuthorHandler) UnfollowAlias(c *gin.Context) {
	h.unfollow(c, c.Param("authorId"))
}

func (h *AuthorHandler) unfollow(c *gin.Context, authorID string) {
	if err := h.authorUseCase.Unfollow(c.Request.Context(), currentUserID(c), authorID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListFollowing godoc
// @Summary      Authors the caller follows
// @Tags         authors
// @Produce      json
// @Security     CookieAuth
// @Param        page     query int    false "Page (default 1)"
// @Param        per_page query int    false "Page size (default 20, max 100)"
// @Param        sort     query string false "followedAt or name"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /authors/following [get]
func (h *AuthorHandler) ListFollowing(c *gin.Context) {
	page, err := parsePage(c, followingPageOptions)
	if err != nil {
		response.Error(c, err)
		return
	}

	authors, total, err := h.authorUseCase.ListFollowing(c.Request.Context(), currentUserID(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, authors, pagination.NewMeta(page, total))
}
