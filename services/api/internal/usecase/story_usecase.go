package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/pkg/queue"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const (
	storyTitleMin    = 5
	storyTitleMax    = 200
	storyAbstractMin = 50
	storyAbstractMax = 500
	slugAttempts     = 3
	uniqueVisitorTTL = 24 * time.Hour
)

type CreateStoryInput struct {
	Title         string
	TitleBn       string
	TitleEn       string
	Abstract      string
	AbstractBn    string
	AbstractEn    string
	Body          json.RawMessage
	BodyBn        json.RawMessage
	BodyEn        json.RawMessage
	Thumbnail     string
	ThumbnailAlt  string
	Language      entity.Language
	ContentType   entity.ContentType
	CategoryID    string
	CoAuthorIDs   []string
	Tags          []string
	LocationIDs   []string
	Sources       []entity.Source
	Copyright     entity.Copyright
	AllowComments *bool
	AllowSharing  *bool
	IsPremium     bool
	ScheduledFor  *time.Time
	ExpiryDate    *time.Time
}

// UpdateStoryInput is a partial update. Nil fields are left unchanged; a
// non-nil set replaces the stored set.
type UpdateStoryInput struct {
	Title         *string
	TitleBn       *string
	TitleEn       *string
	Abstract      *string
	AbstractBn    *string
	AbstractEn    *string
	Body          json.RawMessage
	BodyBn        json.RawMessage
	BodyEn        json.RawMessage
	Thumbnail     *string
	ThumbnailAlt  *string
	Language      *entity.Language
	ContentType   *entity.ContentType
	CategoryID    *string
	CoAuthorIDs   *[]string
	Tags          *[]string
	LocationIDs   *[]string
	Sources       *[]entity.Source
	Copyright     *entity.Copyright
	AllowComments *bool
	AllowSharing  *bool
	IsPremium     *bool
	ScheduledFor  *time.Time
	ExpiryDate    *time.Time
}

type StoryUseCase interface {
	List(ctx context.Context, filter entity.StoryFilter, page pagination.Params) ([]*entity.Story, int64, error)
	ListMine(ctx context.Context, actorID string, status entity.StoryStatus, page pagination.Params) ([]*entity.Story, int64, error)
	Get(ctx context.Context, id, viewerID, visitorKey string) (*entity.Story, error)
	Create(ctx context.Context, actorID string, input CreateStoryInput) (*entity.Story, error)
	Update(ctx context.Context, id, actorID string, input UpdateStoryInput) (*entity.Story, error)
	Delete(ctx context.Context, id, actorID string) error
	Submit(ctx context.Context, id, actorID string) (*entity.Story, error)
	Review(ctx context.Context, id, actorID string, decision entity.StoryAction, notes string) (*entity.Story, error)
	Publish(ctx context.Context, id, actorID string) (*entity.Story, error)
	Archive(ctx context.Context, id, actorID string) (*entity.Story, error)
	Stats(ctx context.Context, id, actorID string) (*entity.StoryStats, error)
}

type storyUseCase struct {
	storyRepo    persistent.StoryRepository
	userRepo     persistent.UserRepository
	taxonomyRepo persistent.TaxonomyRepository
	redisClient  *redis.Client
	publisher    queue.Publisher
	logger       *logger.Logger
}

func NewStoryUseCase(
	storyRepo persistent.StoryRepository,
	userRepo persistent.UserRepository,
	taxonomyRepo persistent.TaxonomyRepository,
	redisClient *redis.Client,
	publisher queue.Publisher,
	logger *logger.Logger,
) StoryUseCase {
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}
	return &storyUseCase{
		storyRepo:    storyRepo,
		userRepo:     userRepo,
		taxonomyRepo: taxonomyRepo,
		redisClient:  redisClient,
		publisher:    publisher,
		logger:       logger,
	}
}

// List returns published stories only.
func (uc *storyUseCase) List(ctx context.Context, filter entity.StoryFilter, page pagination.Params) ([]*entity.Story, int64, error) {
	filter.Statuses = []entity.StoryStatus{entity.StoryStatusPublished}
	filter.MemberID = ""

	stories, total, err := uc.storyRepo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, wrapRepoError("Failed to list stories", err)
	}
	return stories, total, nil
}

// ListMine returns stories the actor authored or co-authored, in any status.
func (uc *storyUseCase) ListMine(ctx context.Context, actorID string, status entity.StoryStatus, page pagination.Params) ([]*entity.Story, int64, error) {
	filter := entity.StoryFilter{MemberID: actorID}
	if status != "" {
		if !status.Valid() {
			return nil, 0, apperror.Validation("Invalid filter", apperror.FieldIssue{Field: "status", Issue: "unknown story status"})
		}
		filter.Statuses = []entity.StoryStatus{status}
	}

	stories, total, err := uc.storyRepo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, wrapRepoError("Failed to list stories", err)
	}
	return stories, total, nil
}

// Get enforces visibility and counts a view for published stories. The
// returned story carries the counters as they were read.
func (uc *storyUseCase) Get(ctx context.Context, id, viewerID, visitorKey string) (*entity.Story, error) {
	story, err := uc.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("Failed to load story", err)
	}
	if !story.CanView(viewerID) {
		return nil, apperror.Forbidden("You do not have access to this story")
	}

	if story.Status == entity.StoryStatusPublished {
		if err := uc.storyRepo.IncrementViews(ctx, id); err != nil {
			logger.FromContext(ctx).Warn("Failed to increment views for story %s: %v", id, err)
		}
		uc.trackVisitor(ctx, id, visitorKey)
	}
	return story, nil
}

func (uc *storyUseCase) Create(ctx context.Context, actorID string, input CreateStoryInput) (*entity.Story, error) {
	story := &entity.Story{
		Title:         strings.TrimSpace(input.Title),
		TitleBn:       strings.TrimSpace(input.TitleBn),
		TitleEn:       strings.TrimSpace(input.TitleEn),
		Abstract:      strings.TrimSpace(input.Abstract),
		AbstractBn:    strings.TrimSpace(input.AbstractBn),
		AbstractEn:    strings.TrimSpace(input.AbstractEn),
		Body:          input.Body,
		BodyBn:        optionalJSON(input.BodyBn),
		BodyEn:        optionalJSON(input.BodyEn),
		Thumbnail:     input.Thumbnail,
		ThumbnailAlt:  input.ThumbnailAlt,
		Language:      input.Language,
		ContentType:   input.ContentType,
		Status:        entity.StoryStatusDraft,
		CategoryID:    input.CategoryID,
		AuthorID:      actorID,
		Copyright:     input.Copyright,
		AllowComments: true,
		AllowSharing:  true,
		IsPremium:     input.IsPremium,
		Sources:       input.Sources,
		ScheduledFor:  input.ScheduledFor,
		ExpiryDate:    input.ExpiryDate,
	}
	if story.Language == "" {
		story.Language = entity.LanguageBn
	}
	if story.ContentType == "" {
		story.ContentType = entity.ContentTypeStory
	}
	if story.Copyright == "" {
		story.Copyright = entity.CopyrightAllRightsReserved
	}
	if input.AllowComments != nil {
		story.AllowComments = *input.AllowComments
	}
	if input.AllowSharing != nil {
		story.AllowSharing = *input.AllowSharing
	}
	setCoAuthors(story, input.CoAuthorIDs)
	setTags(story, input.Tags)
	setLocations(story, input.LocationIDs)

	if err := uc.validate(ctx, story, true, true, true); err != nil {
		return nil, err
	}
	story.WordCount, story.ReadingTime = entity.ReadingStats(story.Body)

	err := uc.withSlugRetry(story, func() error {
		return uc.storyRepo.Create(ctx, story)
	})
	if err != nil {
		return nil, wrapRepoError("Failed to create story", err)
	}

	logger.FromContext(ctx).Info("Story created: %s by %s", story.ID, actorID)
	return story, nil
}

func (uc *storyUseCase) Update(ctx context.Context, id, actorID string, input UpdateStoryInput) (*entity.Story, error) {
	story, err := uc.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("Failed to load story", err)
	}
	if !story.CanEdit(actorID) {
		return nil, apperror.Forbidden("You do not have permission to edit this story")
	}

	titleChanged := false
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		titleChanged = title != story.Title
		story.Title = title
	}
	applyString(&story.TitleBn, input.TitleBn)
	applyString(&story.TitleEn, input.TitleEn)
	applyString(&story.Abstract, input.Abstract)
	applyString(&story.AbstractBn, input.AbstractBn)
	applyString(&story.AbstractEn, input.AbstractEn)
	applyString(&story.Thumbnail, input.Thumbnail)
	applyString(&story.ThumbnailAlt, input.ThumbnailAlt)

	bodyChanged := input.Body != nil
	if bodyChanged {
		story.Body = input.Body
	}
	if input.BodyBn != nil {
		story.BodyBn = optionalJSON(input.BodyBn)
	}
	if input.BodyEn != nil {
		story.BodyEn = optionalJSON(input.BodyEn)
	}

	categoryChanged := input.CategoryID != nil && *input.CategoryID != story.CategoryID
	if input.CategoryID != nil {
		story.CategoryID = *input.CategoryID
	}
	if input.Language != nil {
		story.Language = *input.Language
	}
	if input.ContentType != nil {
		story.ContentType = *input.ContentType
	}
	if input.Copyright != nil {
		story.Copyright = *input.Copyright
	}
	if input.AllowComments != nil {
		story.AllowComments = *input.AllowComments
	}
	if input.AllowSharing != nil {
		story.AllowSharing = *input.AllowSharing
	}
	if input.IsPremium != nil {
		story.IsPremium = *input.IsPremium
	}
	if input.ScheduledFor != nil {
		story.ScheduledFor = input.ScheduledFor
	}
	if input.ExpiryDate != nil {
		story.ExpiryDate = input.ExpiryDate
	}

	var replace []persistent.StoryAssociation
	if input.CoAuthorIDs != nil {
		setCoAuthors(story, *input.CoAuthorIDs)
		replace = append(replace, persistent.AssocCoAuthors)
	}
	if input.Tags != nil {
		setTags(story, *input.Tags)
		replace = append(replace, persistent.AssocTags)
	}
	if input.LocationIDs != nil {
		setLocations(story, *input.LocationIDs)
		replace = append(replace, persistent.AssocLocations)
	}
	if input.Sources != nil {
		story.Sources = *input.Sources
		replace = append(replace, persistent.AssocSources)
	}

	if err := uc.validate(ctx, story, categoryChanged, input.CoAuthorIDs != nil, input.LocationIDs != nil); err != nil {
		return nil, err
	}
	if bodyChanged {
		story.WordCount, story.ReadingTime = entity.ReadingStats(story.Body)
	}

	save := func() error {
		return uc.storyRepo.Update(ctx, story, replace...)
	}
	if titleChanged {
		err = uc.withSlugRetry(story, save)
	} else {
		err = save()
	}
	if err != nil {
		return nil, wrapRepoError("Failed to update story", err)
	}
	return story, nil
}

func (uc *storyUseCase) Delete(ctx context.Context, id, actorID string) error {
	story, err := uc.storyRepo.GetByID(ctx, id)
	if err != nil {
		return wrapRepoError("Failed to load story", err)
	}
	if !story.IsAuthor(actorID) {
		return apperror.Forbidden("Only the author can delete this story")
	}

	if err := uc.storyRepo.Delete(ctx, id); err != nil {
		return wrapRepoError("Failed to delete story", err)
	}
	logger.FromContext(ctx).Info("Story deleted: %s by %s", id, actorID)
	return nil
}

func (uc *storyUseCase) Submit(ctx context.Context, id, actorID string) (*entity.Story, error) {
	story, err := uc.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("Failed to load story", err)
	}
	if !story.CanEdit(actorID) {
		return nil, apperror.Forbidden("Only the authors can submit this story")
	}

	next, ok := story.Status.Next(entity.ActionSubmit)
	if !ok {
		return nil, apperror.InvalidState("Only draft stories or stories with requested changes can be submitted")
	}
	story.Status = next

	if err := uc.storyRepo.UpdateWorkflow(ctx, story); err != nil {
		return nil, wrapRepoError("Failed to submit story", err)
	}
	uc.publishEvent(ctx, queue.EventStorySubmitted, 5, story, actorID)
	return story, nil
}

// Review applies an editor decision. The actor's role is read from storage,
// never from the token.
func (uc *storyUseCase) Review(ctx context.Context, id, actorID string, decision entity.StoryAction, notes string) (*entity.Story, error) {
	if decision != entity.ActionApprove && decision != entity.ActionRequestChanges {
		return nil, apperror.Validation("Invalid review", apperror.FieldIssue{Field: "decision", Issue: "must be approve or request_changes"})
	}

	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.Unauthorized("User no longer exists")
		}
		return nil, apperror.Internal("Failed to load user", err)
	}
	if !actor.Role.CanReview() {
		return nil, apperror.Forbidden("Only editors can review stories")
	}

	story, err := uc.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("Failed to load story", err)
	}
	if story.CanEdit(actorID) {
		return nil, apperror.Forbidden("You cannot review your own story")
	}

	next, ok := story.Status.Next(decision)
	if !ok {
		return nil, apperror.InvalidState(fmt.Sprintf("Cannot %s a story in %s status", strings.ReplaceAll(string(decision), "_", " "), story.Status))
	}
	story.Status = next
	story.ReviewerID = &actorID
	story.ReviewNotes = notes

	if err := uc.storyRepo.UpdateWorkflow(ctx, story); err != nil {
		return nil, wrapRepoError("Failed to review story", err)
	}
	uc.publishEvent(ctx, queue.EventStoryReviewed, 5, story, actorID)
	return story, nil
}

func (uc *storyUseCase) Publish(ctx context.Context, id, actorID string) (*entity.Story, error) {
	story, err := uc.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("Failed to load story", err)
	}
	if !story.IsAuthor(actorID) {
		return nil, apperror.Forbidden("Only the author can publish this story")
	}

	next, ok := story.Status.Next(entity.ActionPublish)
	if !ok {
		return nil, apperror.InvalidState("Story must be approved before publishing")
	}
	now := time.Now()
	story.Status = next
	story.PublishedAt = &now

	if err := uc.storyRepo.UpdateWorkflow(ctx, story); err != nil {
		return nil, wrapRepoError("Failed to publish story", err)
	}
	uc.publishEvent(ctx, queue.EventStoryPublished, 8, story, actorID)
	return story, nil
}

func (uc *storyUseCase) Archive(ctx context.Context, id, actorID string) (*entity.Story, error) {
	story, err := uc.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("Failed to load story", err)
	}
	if !story.IsAuthor(actorID) {
		return nil, apperror.Forbidden("Only the author can archive this story")
	}
	if story.Status == entity.StoryStatusArchived {
		return story, nil
	}

	next, _ := story.Status.Next(entity.ActionArchive)
	story.Status = next
	if err := uc.storyRepo.UpdateWorkflow(ctx, story); err != nil {
		return nil, wrapRepoError("Failed to archive story", err)
	}
	return story, nil
}

func (uc *storyUseCase) Stats(ctx context.Context, id, actorID string) (*entity.StoryStats, error) {
	story, err := uc.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("Failed to load story", err)
	}
	if !story.CanEdit(actorID) {
		return nil, apperror.Forbidden("Only the authors can view story statistics")
	}

	return &entity.StoryStats{
		Views:          story.ViewCount,
		UniqueVisitors: story.UniqueVisitors,
		Reactions:      story.ReactionCount,
		Comments:       story.CommentCount,
		Shares:         story.ShareCount,
		Bookmarks:      story.BookmarkCount,
		WordCount:      story.WordCount,
		ReadingTime:    story.ReadingTime,
	}, nil
}

// validate checks field rules and, when asked, that referenced rows exist.
func (uc *storyUseCase) validate(ctx context.Context, story *entity.Story, checkCategory, checkCoAuthors, checkLocations bool) error {
	var issues []apperror.FieldIssue
	add := func(field, issue string) {
		issues = append(issues, apperror.FieldIssue{Field: field, Issue: issue})
	}

	if n := utf8.RuneCountInString(story.Title); n < storyTitleMin || n > storyTitleMax {
		add("title", fmt.Sprintf("must be between %d and %d characters", storyTitleMin, storyTitleMax))
	}
	if utf8.RuneCountInString(story.TitleBn) > storyTitleMax {
		add("titleBn", fmt.Sprintf("must be at most %d characters", storyTitleMax))
	}
	if utf8.RuneCountInString(story.TitleEn) > storyTitleMax {
		add("titleEn", fmt.Sprintf("must be at most %d characters", storyTitleMax))
	}
	if n := utf8.RuneCountInString(story.Abstract); n > 0 && (n < storyAbstractMin || n > storyAbstractMax) {
		add("abstract", fmt.Sprintf("must be between %d and %d characters", storyAbstractMin, storyAbstractMax))
	}
	if utf8.RuneCountInString(story.AbstractBn) > storyAbstractMax {
		add("abstractBn", fmt.Sprintf("must be at most %d characters", storyAbstractMax))
	}
	if utf8.RuneCountInString(story.AbstractEn) > storyAbstractMax {
		add("abstractEn", fmt.Sprintf("must be at most %d characters", storyAbstractMax))
	}
	if _, ok := entity.ParseDelta(story.Body); !ok {
		add("body", "must be a rich-text document with an ops array")
	}
	if len(story.BodyBn) > 0 {
		if _, ok := entity.ParseDelta(story.BodyBn); !ok {
			add("bodyBn", "must be a rich-text document with an ops array")
		}
	}
	if len(story.BodyEn) > 0 {
		if _, ok := entity.ParseDelta(story.BodyEn); !ok {
			add("bodyEn", "must be a rich-text document with an ops array")
		}
	}
	if !story.Language.Valid() {
		add("language", "must be one of BN, EN, BOTH")
	}
	if !story.ContentType.Valid() {
		add("contentType", "must be one of STORY, ARTICLE, ESSAY, POEM, INTERVIEW, REPORT")
	}
	if !story.Copyright.Valid() {
		add("copyright", "unknown copyright")
	}
	for i, source := range story.Sources {
		if strings.TrimSpace(source.Type) == "" || strings.TrimSpace(source.Title) == "" {
			add(fmt.Sprintf("sources[%d]", i), "type and title are required")
		}
	}

	if len(issues) > 0 {
		return apperror.Validation("Invalid story", issues...)
	}

	if checkCategory {
		exists, err := uc.taxonomyRepo.CategoryExists(ctx, story.CategoryID)
		if err != nil {
			return apperror.Internal("Failed to load category", err)
		}
		if !exists {
			return apperror.Validation("Invalid story", apperror.FieldIssue{Field: "categoryId", Issue: "category does not exist"})
		}
	}
	if checkCoAuthors && len(story.CoAuthors) > 0 {
		ids := make([]string, len(story.CoAuthors))
		for i, co := range story.CoAuthors {
			ids[i] = co.ID
		}
		count, err := uc.userRepo.CountByIDs(ctx, ids)
		if err != nil {
			return apperror.Internal("Failed to load co-authors", err)
		}
		if count != int64(len(ids)) {
			return apperror.Validation("Invalid story", apperror.FieldIssue{Field: "coAuthorIds", Issue: "contains unknown users"})
		}
	}
	if checkLocations && len(story.Locations) > 0 {
		ids := make([]string, len(story.Locations))
		for i, l := range story.Locations {
			ids[i] = l.ID
		}
		count, err := uc.taxonomyRepo.CountLocations(ctx, ids)
		if err != nil {
			return apperror.Internal("Failed to load locations", err)
		}
		if count != int64(len(ids)) {
			return apperror.Validation("Invalid story", apperror.FieldIssue{Field: "locationIds", Issue: "contains unknown locations"})
		}
	}
	return nil
}

// withSlugRetry regenerates the slug and retries save while it collides.
func (uc *storyUseCase) withSlugRetry(story *entity.Story, save func() error) error {
	var err error
	for attempt := 1; attempt <= slugAttempts; attempt++ {
		story.Slug = entity.GenerateSlug(story.Title)
		err = save()
		if err == nil || !apperror.Is(err, apperror.KindConflict) {
			return err
		}
		uc.logger.Warn("Slug collision on %q (attempt %d/%d)", story.Slug, attempt, slugAttempts)
	}
	return apperror.Internal("Failed to generate a unique slug", err)
}

// trackVisitor counts a visitor once per story per day.
func (uc *storyUseCase) trackVisitor(ctx context.Context, storyID, visitorKey string) {
	if uc.redisClient == nil || visitorKey == "" {
		return
	}

	key := fmt.Sprintf("story:visitor:%s:%s", storyID, visitorKey)
	first, err := uc.redisClient.SetNX(ctx, key, 1, uniqueVisitorTTL).Result()
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to track visitor for story %s: %v", storyID, err)
		return
	}
	if !first {
		return
	}
	if err := uc.storyRepo.IncrementUniqueVisitors(ctx, storyID); err != nil {
		logger.FromContext(ctx).Warn("Failed to increment unique visitors for story %s: %v", storyID, err)
	}
}

func (uc *storyUseCase) publishEvent(ctx context.Context, eventType string, priority int, story *entity.Story, actorID string) {
	event := queue.Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Priority:   priority,
		Data: map[string]interface{}{
			"story_id":  story.ID,
			"author_id": story.AuthorID,
			"actor_id":  actorID,
			"status":    string(story.Status),
			"title":     story.Title,
		},
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Error("Failed to publish %s for story %s: %v", eventType, story.ID, err)
	}
}

func setCoAuthors(story *entity.Story, ids []string) {
	story.CoAuthors = story.CoAuthors[:0]
	seen := map[string]bool{story.AuthorID: true}
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		story.CoAuthors = append(story.CoAuthors, entity.UserSummary{ID: id})
	}
}

func setTags(story *entity.Story, names []string) {
	story.Tags = story.Tags[:0]
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			story.Tags = append(story.Tags, entity.Tag{Name: name, Slug: entity.TagSlug(name)})
		}
	}
}

func setLocations(story *entity.Story, ids []string) {
	story.Locations = story.Locations[:0]
	seen := make(map[string]bool)
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		story.Locations = append(story.Locations, entity.Location{ID: id})
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// optionalJSON treats an explicit JSON null as absent.
func optionalJSON(raw json.RawMessage) json.RawMessage {
	if strings.TrimSpace(string(raw)) == "null" {
		return nil
	}
	return raw
}
