package http

import (
	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/pkg/response"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleUseCase usecase.ArticleUseCase
	logger         *logger.Logger
}

func NewArticleHandler(articleUseCase usecase.ArticleUseCase, logger *logger.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleUseCase: articleUseCase,
		logger:         logger,
	}
}

type CreateArticleRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Summary    string `json:"summary" binding:"max=500"`
	Content    string `json:"content" binding:"required"`
	ImageURL   string `json:"imageUrl" binding:"max=500"`
	CategoryID string `json:"categoryId" binding:"required"`
	Status     string `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
}

type UpdateArticleRequest struct {
	Title      *string `json:"title" binding:"omitempty,min=1,max=200"`
	Summary    *string `json:"summary" binding:"omitempty,max=500"`
	Content    *string `json:"content" binding:"omitempty,min=1"`
	ImageURL   *string `json:"imageUrl" binding:"omitempty,max=500"`
	CategoryID *string `json:"categoryId" binding:"omitempty,min=1"`
	Status     *string `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
}

// ListArticles godoc
// @Summary      List articles
// @Description  Published articles, or the caller's own drafts when filtering by their authorId
// @Tags         articles
// @Produce      json
// @Param        categoryId query string false "Category filter"
// @Param        authorId   query string false "Author filter"
// @Param        status     query string false "DRAFT or PUBLISHED"
// @Param        search     query string false "Search in title and summary"
// @Param        page       query int    false "Page (default 1)"
// @Param        per_page   query int    false "Page size (default 20, max 100)"
// @Param        sort       query string false "createdAt, publishedAt, views or title"
// @Param        order      query string false "asc or desc"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /articles [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	filter := entity.ArticleFilter{
		CategoryID: c.Query("categoryId"),
		AuthorID:   c.Query("authorId"),
		Status:     entity.ArticleStatus(c.Query("status")),
		Search:     c.Query("search"),
	}
	h.list(c, filter)
}

// ListAuthorArticles godoc
// @Summary      List articles by author
// @Tags         articles
// @Produce      json
// @Param        authorId path  string true  "Author ID"
// @Param        page     query int    false "Page (default 1)"
// @Param        per_page query int    false "Page size (default 20, max 100)"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /articles/author/{authorId} [get]
func (h *ArticleHandler) ListAuthorArticles(c *gin.Context) {
	filter := entity.ArticleFilter{
		AuthorID: c.Param("authorId"),
		Status:   entity.ArticleStatus(c.Query("status")),
	}
	h.list(c, filter)
}

func (h *ArticleHandler) list(c *gin.Context, filter entity.ArticleFilter) {
	if filter.Status != "" && !filter.Status.Valid() {
		response.Error(c, invalidFilter("status", "must be DRAFT or PUBLISHED"))
		return
	}
	page, err := parsePage(c, articlePageOptions)
	if err != nil {
		response.Error(c, err)
		return
	}

	articles, total, err := h.articleUseCase.List(c.Request.Context(), filter, currentUserID(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, articles, pagination.NewMeta(page, total))
}

// GetArticle godoc
// @Summary      Get an article
// @Description  Increments the view counter. Drafts are visible to their author only.
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /articles/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleUseCase.Get(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, article)
}

// CreateArticle godoc
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        request body CreateArticleRequest true "Article"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	article, err := h.articleUseCase.Create(c.Request.Context(), currentUserID(c), usecase.CreateArticleInput{
		Title:      req.Title,
		Summary:    req.Summary,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
		Status:     entity.ArticleStatus(req.Status),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, article)
}

// UpdateArticle godoc
// @Summary      Update an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id      path string               true "Article ID"
// @Param        request body UpdateArticleRequest true "Fields to change"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /articles/{id} [patch]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req UpdateArticleRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	input := usecase.UpdateArticleInput{
		Title:      req.Title,
		Summary:    req.Summary,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
	}
	if req.Status != nil {
		status := entity.ArticleStatus(*req.Status)
		input.Status = &status
	}

	article, err := h.articleUseCase.Update(c.Request.Context(), c.Param("id"), currentUserID(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, article)
}

// DeleteArticle godoc
// @Summary      Delete an article
// @Tags         articles
// @Security     CookieAuth
// @Param        id path string true "Article ID"
// @Success      204
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.articleUseCase.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
