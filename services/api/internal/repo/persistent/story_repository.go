package persistent

import (
	"context"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/model"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoryAssociation names a set that Update replaces wholesale.
type StoryAssociation string

const (
	AssocCoAuthors StoryAssociation = "co_authors"
	AssocTags      StoryAssociation = "tags"
	AssocLocations StoryAssociation = "locations"
	AssocSources   StoryAssociation = "sources"
)

var allStoryAssociations = []StoryAssociation{AssocCoAuthors, AssocTags, AssocLocations, AssocSources}

var storySortColumns = map[string]string{
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
	"publishedAt":   "published_at",
	"viewCount":     "view_count",
	"reactionCount": "reaction_count",
}

var storyEditableColumns = []string{
	"title", "title_bn", "title_en",
	"abstract", "abstract_bn", "abstract_en",
	"body", "body_bn", "body_en", "slug",
	"thumbnail", "thumbnail_alt", "language", "content_type", "category_id",
	"copyright", "allow_comments", "allow_sharing", "is_premium",
	"word_count", "reading_time", "scheduled_for", "expiry_date", "updated_at",
}

type StoryRepository interface {
	Create(ctx context.Context, story *entity.Story) error
	GetByID(ctx context.Context, id string) (*entity.Story, error)
	List(ctx context.Context, filter entity.StoryFilter, page pagination.Params) ([]*entity.Story, int64, error)
	Update(ctx context.Context, story *entity.Story, replace ...StoryAssociation) error
	UpdateWorkflow(ctx context.Context, story *entity.Story) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	IncrementUniqueVisitors(ctx context.Context, id string) error
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

// Create inserts the story with every association taken from the entity and
// reloads it. A slug collision surfaces as a Conflict.
func (r *storyRepository) Create(ctx context.Context, story *entity.Story) error {
	storyModel := ToStoryModel(story)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(storyModel).Error; err != nil {
			return translateError(err, "Story not found")
		}
		story.ID = storyModel.ID
		return replaceStoryAssociations(tx, story, allStoryAssociations)
	})
	if err != nil {
		return err
	}

	return r.reload(ctx, story)
}

func (r *storyRepository) GetByID(ctx context.Context, id string) (*entity.Story, error) {
	var storyModel model.StoryModel
	err := r.preloaded(r.db.WithContext(ctx)).
		Preload("Sources").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("story_media.sort_order ASC")
		}).
		Preload("Media.Media").
		Where("stories.id = ?", id).
		First(&storyModel).Error
	if err != nil {
		return nil, translateError(err, "Story not found")
	}
	return ToStoryEntity(&storyModel), nil
}

func (r *storyRepository) preloaded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Category").
		Preload("CoAuthors").
		Preload("Tags").
		Preload("Locations")
}

func (r *storyRepository) filtered(ctx context.Context, filter entity.StoryFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.StoryModel{})

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		query = query.Where("stories.status IN ?", statuses)
	}
	if filter.AuthorID != "" {
		query = query.Where("stories.author_id = ?", filter.AuthorID)
	}
	if filter.MemberID != "" {
		query = query.Where(
			"(stories.author_id = ? OR stories.id IN (SELECT story_id FROM story_co_authors WHERE user_id = ?))",
			filter.MemberID, filter.MemberID,
		)
	}
	if filter.CategoryID != "" {
		query = query.Where("stories.category_id = ?", filter.CategoryID)
	}
	if filter.Language != "" {
		query = query.Where("stories.language = ?", string(filter.Language))
	}
	if filter.ContentType != "" {
		query = query.Where("stories.content_type = ?", string(filter.ContentType))
	}
	if filter.LocationID != "" {
		query = query.Where("stories.id IN (SELECT story_id FROM story_locations WHERE location_id = ?)", filter.LocationID)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where(
			"(LOWER(stories.title) LIKE ? OR LOWER(stories.title_bn) LIKE ? OR LOWER(stories.title_en) LIKE ? "+
				"OR LOWER(stories.abstract) LIKE ? "+
				"OR stories.id IN (SELECT st.story_id FROM story_tags st JOIN tags t ON t.id = st.tag_id WHERE LOWER(t.name) LIKE ?))",
			pattern, pattern, pattern, pattern, pattern,
		)
	}
	return query
}

func (r *storyRepository) List(ctx context.Context, filter entity.StoryFilter, page pagination.Params) ([]*entity.Story, int64, error) {
	var (
		total       int64
		storyModels []model.StoryModel
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.filtered(gctx, filter).Count(&total).Error
	})
	g.Go(func() error {
		return r.preloaded(r.filtered(gctx, filter)).
			Order(orderBy("stories", storySortColumns, page)).
			Limit(page.PerPage).
			Offset(page.Offset()).
			Find(&storyModels).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	stories := make([]*entity.Story, len(storyModels))
	for i := range storyModels {
		stories[i] = ToStoryEntity(&storyModels[i])
	}
	return stories, total, nil
}

// Update writes the editable columns and replaces the named association sets
// with exactly the entity's current values.
func (r *storyRepository) Update(ctx context.Context, story *entity.Story, replace ...StoryAssociation) error {
	storyModel := ToStoryModel(story)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.StoryModel{ID: story.ID}).Select(storyEditableColumns).Updates(storyModel)
		if result.Error != nil {
			return translateError(result.Error, "Story not found")
		}
		if result.RowsAffected == 0 {
			return apperror.NotFound("Story not found")
		}
		return replaceStoryAssociations(tx, story, replace)
	})
	if err != nil {
		return err
	}

	return r.reload(ctx, story)
}

// UpdateWorkflow persists a state machine transition.
func (r *storyRepository) UpdateWorkflow(ctx context.Context, story *entity.Story) error {
	storyModel := ToStoryModel(story)
	result := r.db.WithContext(ctx).Model(&model.StoryModel{ID: story.ID}).
		Select("status", "reviewer_id", "review_notes", "published_at", "updated_at").
		Updates(storyModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("Story not found")
	}
	story.UpdatedAt = storyModel.UpdatedAt
	return nil
}

// Delete removes the story with its dependent rows and releases the usage
// count of any attached media.
func (r *storyRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mediaIDs []string
		if err := tx.Model(&model.StoryMediaModel{}).Where("story_id = ?", id).Pluck("media_id", &mediaIDs).Error; err != nil {
			return err
		}
		if len(mediaIDs) > 0 {
			if err := tx.Model(&model.MediaModel{}).Where("id IN ?", mediaIDs).
				UpdateColumn("usage_count", decrementExpr("usage_count")).Error; err != nil {
				return err
			}
		}

		dependents := []interface{}{
			&model.StoryMediaModel{},
			&model.StoryCoAuthorModel{},
			&model.StoryTagModel{},
			&model.StoryLocationModel{},
			&model.StorySourceModel{},
			&model.CommentModel{},
			&model.SavedContentModel{},
			&model.ContentEngagementModel{},
		}
		for _, dep := range dependents {
			if err := tx.Where("story_id = ?", id).Delete(dep).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.StoryModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperror.NotFound("Story not found")
		}
		return nil
	})
}

func (r *storyRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.StoryModel{}).Where("id = ?", id).
		UpdateColumn("view_count", clause.Expr{SQL: "view_count + ?", Vars: []interface{}{1}}).Error
}

func (r *storyRepository) IncrementUniqueVisitors(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.StoryModel{}).Where("id = ?", id).
		UpdateColumn("unique_visitors", clause.Expr{SQL: "unique_visitors + ?", Vars: []interface{}{1}}).Error
}

func (r *storyRepository) reload(ctx context.Context, story *entity.Story) error {
	loaded, err := r.GetByID(ctx, story.ID)
	if err != nil {
		return err
	}
	*story = *loaded
	return nil
}

func replaceStoryAssociations(tx *gorm.DB, story *entity.Story, sets []StoryAssociation) error {
	for _, set := range sets {
		var err error
		switch set {
		case AssocCoAuthors:
			err = replaceCoAuthors(tx, story)
		case AssocTags:
			err = replaceTags(tx, story)
		case AssocLocations:
			err = replaceLocations(tx, story)
		case AssocSources:
			err = replaceSources(tx, story)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func replaceCoAuthors(tx *gorm.DB, story *entity.Story) error {
	if err := tx.Where("story_id = ?", story.ID).Delete(&model.StoryCoAuthorModel{}).Error; err != nil {
		return err
	}
	seen := make(map[string]bool)
	var rows []model.StoryCoAuthorModel
	for _, co := range story.CoAuthors {
		if co.ID == "" || co.ID == story.AuthorID || seen[co.ID] {
			continue
		}
		seen[co.ID] = true
		rows = append(rows, model.StoryCoAuthorModel{StoryID: story.ID, UserID: co.ID})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func replaceTags(tx *gorm.DB, story *entity.Story) error {
	if err := tx.Where("story_id = ?", story.ID).Delete(&model.StoryTagModel{}).Error; err != nil {
		return err
	}
	seen := make(map[string]bool)
	var rows []model.StoryTagModel
	for _, t := range story.Tags {
		slug := entity.TagSlug(t.Name)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true

		var tag model.TagModel
		err := tx.Where(model.TagModel{Slug: slug}).
			Attrs(model.TagModel{Name: t.Name}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return translateError(err, "Tag not found")
		}
		rows = append(rows, model.StoryTagModel{StoryID: story.ID, TagID: tag.ID})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func replaceLocations(tx *gorm.DB, story *entity.Story) error {
	if err := tx.Where("story_id = ?", story.ID).Delete(&model.StoryLocationModel{}).Error; err != nil {
		return err
	}
	seen := make(map[string]bool)
	var rows []model.StoryLocationModel
	for _, l := range story.Locations {
		if l.ID == "" || seen[l.ID] {
			continue
		}
		seen[l.ID] = true
		rows = append(rows, model.StoryLocationModel{StoryID: story.ID, LocationID: l.ID})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func replaceSources(tx *gorm.DB, story *entity.Story) error {
	if err := tx.Where("story_id = ?", story.ID).Delete(&model.StorySourceModel{}).Error; err != nil {
		return err
	}
	rows := toSourceModels(story.ID, story.Sources)
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// decrementExpr lowers a counter without going below zero.
func decrementExpr(column string) clause.Expr {
	return clause.Expr{SQL: "CASE WHEN " + column + " > 0 THEN " + column + " - 1 ELSE 0 END"}
}
