package http

import (
	"encoding/json"
	"time"

	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/pkg/response"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StoryHandler struct {
	storyUseCase usecase.StoryUseCase
	logger       *logger.Logger
}

func NewStoryHandler(storyUseCase usecase.StoryUseCase, logger *logger.Logger) *StoryHandler {
	return &StoryHandler{
		storyUseCase: storyUseCase,
		logger:       logger,
	}
}

type CreateStoryRequest struct {
	Title         string          `json:"title" binding:"required"`
	TitleBn       string          `json:"titleBn"`
	TitleEn       string          `json:"titleEn"`
	Abstract      string          `json:"abstract"`
	AbstractBn    string          `json:"abstractBn"`
	AbstractEn    string          `json:"abstractEn"`
	Body          json.RawMessage `json:"body" binding:"required" swaggertype:"object"`
	BodyBn        json.RawMessage `json:"bodyBn" swaggertype:"object"`
	BodyEn        json.RawMessage `json:"bodyEn" swaggertype:"object"`
	Thumbnail     string          `json:"thumbnail" binding:"omitempty,url"`
	ThumbnailAlt  string          `json:"thumbnailAlt" binding:"max=200"`
	Language      string          `json:"language"`
	ContentType   string          `json:"contentType"`
	CategoryID    string          `json:"categoryId" binding:"required,uuid"`
	CoAuthorIDs   []string        `json:"coAuthorIds" binding:"omitempty,dive,uuid"`
	Tags          []string        `json:"tags" binding:"omitempty,max=20,dive,max=50"`
	LocationIDs   []string        `json:"locationIds" binding:"omitempty,dive,uuid"`
	Sources       []entity.Source `json:"sources"`
	Copyright     string          `json:"copyright"`
	AllowComments *bool           `json:"allowComments"`
	AllowSharing  *bool           `json:"allowSharing"`
	IsPremium     bool            `json:"isPremium"`
	ScheduledFor  *time.Time      `json:"scheduledFor"`
	ExpiryDate    *time.Time      `json:"expiryDate"`
}

// UpdateStoryRequest is a partial update. Workflow status is not editable here.
type UpdateStoryRequest struct {
	Title         *string          `json:"title"`
	TitleBn       *string          `json:"titleBn"`
	TitleEn       *string          `json:"titleEn"`
	Abstract      *string          `json:"abstract"`
	AbstractBn    *string          `json:"abstractBn"`
	AbstractEn    *string          `json:"abstractEn"`
	Body          json.RawMessage  `json:"body" swaggertype:"object"`
	BodyBn        json.RawMessage  `json:"bodyBn" swaggertype:"object"`
	BodyEn        json.RawMessage  `json:"bodyEn" swaggertype:"object"`
	Thumbnail     *string          `json:"thumbnail" binding:"omitempty,url"`
	ThumbnailAlt  *string          `json:"thumbnailAlt" binding:"omitempty,max=200"`
	Language      *string          `json:"language"`
	ContentType   *string          `json:"contentType"`
	CategoryID    *string          `json:"categoryId" binding:"omitempty,uuid"`
	CoAuthorIDs   *[]string        `json:"coAuthorIds" binding:"omitempty,dive,uuid"`
	Tags          *[]string        `json:"tags" binding:"omitempty,max=20,dive,max=50"`
	LocationIDs   *[]string        `json:"locationIds" binding:"omitempty,dive,uuid"`
	Sources       *[]entity.Source `json:"sources"`
	Copyright     *string          `json:"copyright"`
	AllowComments *bool            `json:"allowComments"`
	AllowSharing  *bool            `json:"allowSharing"`
	IsPremium     *bool            `json:"isPremium"`
	ScheduledFor  *time.Time       `json:"scheduledFor"`
	ExpiryDate    *time.Time       `json:"expiryDate"`
}

type ReviewStoryRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve request_changes"`
	Notes    string `json:"notes" binding:"max=2000"`
}

// ListStories godoc
// @Summary      List published stories
// @Tags         stories
// @Produce      json
// @Param        authorId    query string false "Author filter"
// @Param        categoryId  query string false "Category filter"
// @Param        language    query string false "BN, EN or BOTH"
// @Param        contentType query string false "STORY, ARTICLE, ESSAY, POEM, INTERVIEW or REPORT"
// @Param        locationId  query string false "Location filter"
// @Param        search      query string false "Search in titles, abstract and tags"
// @Param        page        query int    false "Page (default 1)"
// @Param        per_page    query int    false "Page size (default 10, max 100)"
// @Param        sort        query string false "createdAt, updatedAt, publishedAt, viewCount or reactionCount"
// @Param        order       query string false "asc or desc"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /stories [get]
func (h *StoryHandler) ListStories(c *gin.Context) {
	filter := entity.StoryFilter{
		AuthorID:    c.Query("authorId"),
		CategoryID:  c.Query("categoryId"),
		Language:    entity.Language(c.Query("language")),
		ContentType: entity.ContentType(c.Query("contentType")),
		LocationID:  c.Query("locationId"),
		Search:      c.Query("search"),
	}
	if filter.Language != "" && !filter.Language.Valid() {
		response.Error(c, invalidFilter("language", "must be one of BN, EN, BOTH"))
		return
	}
	if filter.ContentType != "" && !filter.ContentType.Valid() {
		response.Error(c, invalidFilter("contentType", "must be one of STORY, ARTICLE, ESSAY, POEM, INTERVIEW, REPORT"))
		return
	}

	page, err := parsePage(c, storyPageOptions)
	if err != nil {
		response.Error(c, err)
		return
	}

	stories, total, err := h.storyUseCase.List(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, stories, pagination.NewMeta(page, total))
}

// ListMyStories godoc
// @Summary      List the caller's stories
// @Description  Stories the caller authored or co-authored, in any status
// @Tags         stories
// @Produce      json
// @Security     CookieAuth
// @Param        status   query string false "Workflow status"
// @Param        page     query int    false "Page (default 1)"
// @Param        per_page query int    false "Page size (default 10, max 100)"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /stories/me/all [get]
func (h *StoryHandler) ListMyStories(c *gin.Context) {
	page, err := parsePage(c, myStoryPageOptions)
	if err != nil {
		response.Error(c, err)
		return
	}

	status := entity.StoryStatus(c.Query("status"))
	stories, total, err := h.storyUseCase.ListMine(c.Request.Context(), currentUserID(c), status, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, stories, pagination.NewMeta(page, total))
}

// GetStory godoc
// @Summary      Get a story
// @Description  Published stories are public and count a view. Other statuses are visible to authors and the reviewer.
// @Tags         stories
// @Produce      json
// @Param        id path string true "Story ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /stories/{id} [get]
func (h *StoryHandler) GetStory(c *gin.Context) {
	story, err := h.storyUseCase.Get(c.Request.Context(), c.Param("id"), currentUserID(c), visitorKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, story)
}

// CreateStory godoc
// @Summary      Create a draft story
// @Tags         stories
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        request body CreateStoryRequest true "Story"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /stories [post]
func (h *StoryHandler) CreateStory(c *gin.Context) {
	var req CreateStoryRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	story, err := h.storyUseCase.Create(c.Request.Context(), currentUserID(c), usecase.CreateStoryInput{
		Title:         req.Title,
		TitleBn:       req.TitleBn,
		TitleEn:       req.TitleEn,
		Abstract:      req.Abstract,
		AbstractBn:    req.AbstractBn,
		AbstractEn:    req.AbstractEn,
		Body:          req.Body,
		BodyBn:        req.BodyBn,
		BodyEn:        req.BodyEn,
		Thumbnail:     req.Thumbnail,
		ThumbnailAlt:  req.ThumbnailAlt,
		Language:      entity.Language(req.Language),
		ContentType:   entity.ContentType(req.ContentType),
		CategoryID:    req.CategoryID,
		CoAuthorIDs:   req.CoAuthorIDs,
		Tags:          req.Tags,
		LocationIDs:   req.LocationIDs,
		Sources:       req.Sources,
		Copyright:     entity.Copyright(req.Copyright),
		AllowComments: req.AllowComments,
		AllowSharing:  req.AllowSharing,
		IsPremium:     req.IsPremium,
		ScheduledFor:  req.ScheduledFor,
		ExpiryDate:    req.ExpiryDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, story)
}

// UpdateStory godoc
// @Summary      Update a story
// @Description  Partial update by the author or a co-author. A given list replaces the stored one.
// @Tags         stories
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id      path string             true "Story ID"
// @Param        request body UpdateStoryRequest true "Fields to change"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /stories/{id} [patch]
func (h *StoryHandler) UpdateStory(c *gin.Context) {
	var req UpdateStoryRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	input := usecase.UpdateStoryInput{
		Title:         req.Title,
		TitleBn:       req.TitleBn,
		TitleEn:       req.TitleEn,
		Abstract:      req.Abstract,
		AbstractBn:    req.AbstractBn,
		AbstractEn:    req.AbstractEn,
		Body:          req.Body,
		BodyBn:        req.BodyBn,
		BodyEn:        req.BodyEn,
		Thumbnail:     req.Thumbnail,
		ThumbnailAlt:  req.ThumbnailAlt,
		CategoryID:    req.CategoryID,
		CoAuthorIDs:   req.CoAuthorIDs,
		Tags:          req.Tags,
		LocationIDs:   req.LocationIDs,
		Sources:       req.Sources,
		AllowComments: req.AllowComments,
		AllowSharing:  req.AllowSharing,
		IsPremium:     req.IsPremium,
		ScheduledFor:  req.ScheduledFor,
		ExpiryDate:    req.ExpiryDate,
	}
	if req.Language != nil {
		language := entity.Language(*req.Language)
		input.Language = &language
	}
	if req.ContentType != nil {
		contentType := entity.ContentType(*req.ContentType)
		input.ContentType = &contentType
	}
	if req.Copyright != nil {
		copyright := entity.Copyright(*req.Copyright)
		input.Copyright = &copyright
	}

	story, err := h.storyUseCase.Update(c.Request.Context(), c.Param("id"), currentUserID(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, story)
}

// DeleteStory godoc
// @Summary      Delete a story
// @Tags         stories
// @Security     CookieAuth
// @Param        id path string true "Story ID"
// @Success      204
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /stories/{id} [delete]
func (h *StoryHandler) DeleteStory(c *gin.Context) {
	if err := h.storyUseCase.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// SubmitStory godoc
// @Summary      Submit a story for review
// @Tags         stories
// @Produce      json
// @Security     CookieAuth
// @Param        id path string true "Story ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /stories/{id}/submit [post]
func (h *StoryHandler) SubmitStory(c *gin.Context) {
	story, err := h.storyUseCase.Submit(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "Story submitted for review", story)
}

// ReviewStory godoc
// @Summary      Review a submitted story
// @Description  Editors and admins approve a story or request changes
// @Tags         stories
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id      path string             true "Story ID"
// @Param        request body ReviewStoryRequest true "Decision"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /stories/{id}/review [post]
func (h *StoryHandler) ReviewStory(c *gin.Context) {
	var req ReviewStoryRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	story, err := h.storyUseCase.Review(c.Request.Context(), c.Param("id"), currentUserID(c), entity.StoryAction(req.Decision), req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "Story reviewed", story)
}

// PublishStory godoc
// @Summary      Publish an approved story
// @Tags         stories
// @Produce      json
// @Security     CookieAuth
// @Param        id path string true "Story ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /stories/{id}/publish [post]
func (h *StoryHandler) PublishStory(c *gin.Context) {
	story, err := h.storyUseCase.Publish(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "Story published", story)
}

// ArchiveStory godoc
// @Summary      Archive a story
// @Tags         stories
// @Produce      json
// @Security     CookieAuth
// @Param        id path string true "Story ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /stories/{id}/archive [post]
func (h *StoryHandler) ArchiveStory(c *gin.Context) {
	story, err := h.storyUseCase.Archive(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "Story archived", story)
}

// StoryStats godoc
// @Summary      Story engagement statistics
// @Tags         stories
// @Produce      json
// @Security     CookieAuth
// @Param        id path string true "Story ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /stories/{id}/stats [get]
func (h *StoryHandler) StoryStats(c *gin.Context) {
	stats, err := h.storyUseCase.Stats(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}
