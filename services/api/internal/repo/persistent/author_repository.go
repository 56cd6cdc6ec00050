package persistent

import (
	"context"
	"time"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/model"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var authorSortColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
}

const authorCountsSelect = "users.*, " +
	"(SELECT COUNT(*) FROM stories s WHERE s.author_id = users.id AND s.status = ?) AS stories_count, " +
	"(SELECT COUNT(*) FROM user_follows f WHERE f.following_id = users.id) AS followers_count, " +
	"(SELECT COUNT(*) FROM user_follows f2 WHERE f2.follower_id = users.id) AS following_count"

type authorRow struct {
	model.UserModel
	StoriesCount   int64
	FollowersCount int64
	FollowingCount int64
	FollowedAt     time.Time
}

func (row *authorRow) profile() *entity.AuthorProfile {
	return &entity.AuthorProfile{
		ID:             row.ID,
		Name:           row.Name,
		NameBn:         row.NameBn,
		Bio:            row.Bio,
		BioBn:          row.BioBn,
		AvatarURL:      row.AvatarURL,
		Role:           entity.Role(row.Role),
		CreatedAt:      row.CreatedAt,
		StoriesCount:   row.StoriesCount,
		FollowersCount: row.FollowersCount,
	}
}

// AuthorRepository serves author discovery and the follow graph.
type AuthorRepository interface {
	List(ctx context.Context, filter entity.AuthorFilter, viewerID string, page pagination.Params) ([]*entity.AuthorProfile, int64, error)
	GetByID(ctx context.Context, id, viewerID string) (*entity.AuthorProfile, error)
	Follow(ctx context.Context, followerID, followingID string) (bool, error)
	Unfollow(ctx context.Context, followerID, followingID string) error
	ListFollowing(ctx context.Context, followerID string, page pagination.Params) ([]*entity.FollowedAuthor, int64, error)
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

// eligible restricts users to active accounts holding an author role.
func (r *authorRepository) eligible(ctx context.Context, filter entity.AuthorFilter) *gorm.DB {
	roles := make([]string, 0, len(entity.AuthorRoles))
	if filter.Role != "" {
		roles = append(roles, string(filter.Role))
	} else {
		for _, role := range entity.AuthorRoles {
			roles = append(roles, string(role))
		}
	}

	query := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("users.role IN ? AND users.status = ?", roles, string(entity.UserStatusActive))
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(LOWER(users.name) LIKE ? OR LOWER(users.name_bn) LIKE ?)", pattern, pattern)
	}
	return query
}

func (r *authorRepository) List(ctx context.Context, filter entity.AuthorFilter, viewerID string, page pagination.Params) ([]*entity.AuthorProfile, int64, error) {
	var (
		total int64
		rows  []authorRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.eligible(gctx, filter).Count(&total).Error
	})
	g.Go(func() error {
		return r.eligible(gctx, filter).
			Select(authorCountsSelect, string(entity.StoryStatusPublished)).
			Order(orderBy("users", authorSortColumns, page)).
			Limit(page.PerPage).
			Offset(page.Offset()).
			Scan(&rows).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	ids := make([]string, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	followed, err := r.followedAmong(ctx, viewerID, ids)
	if err != nil {
		return nil, 0, err
	}

	authors := make([]*entity.AuthorProfile, len(rows))
	for i := range rows {
		authors[i] = rows[i].profile()
		authors[i].IsFollowing = followed[rows[i].ID]
	}
	return authors, total, nil
}

func (r *authorRepository) GetByID(ctx context.Context, id, viewerID string) (*entity.AuthorProfile, error) {
	var rows []authorRow
	err := r.eligible(ctx, entity.AuthorFilter{}).
		Select(authorCountsSelect, string(entity.StoryStatusPublished)).
		Where("users.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperror.NotFound("Author not found")
	}

	followed, err := r.followedAmong(ctx, viewerID, []string{id})
	if err != nil {
		return nil, err
	}

	author := rows[0].profile()
	following := rows[0].FollowingCount
	author.FollowingCount = &following
	author.IsFollowing = followed[id]
	return author, nil
}

// Follow inserts the edge unless it already exists. It reports whether a new
// edge was created.
func (r *authorRepository) Follow(ctx context.Context, followerID, followingID string) (bool, error) {
	edge := model.UserFollowModel{FollowerID: followerID, FollowingID: followingID}
	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *authorRepository) Unfollow(ctx context.Context, followerID, followingID string) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.UserFollowModel{}).Error
}

func (r *authorRepository) following(ctx context.Context, followerID string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.UserModel{}).
		Joins("JOIN user_follows ON user_follows.following_id = users.id").
		Where("user_follows.follower_id = ?", followerID)
}

func (r *authorRepository) ListFollowing(ctx context.Context, followerID string, page pagination.Params) ([]*entity.FollowedAuthor, int64, error) {
	var (
		total int64
		rows  []authorRow
	)

	order := clause.OrderByColumn{Column: clause.Column{Table: "user_follows", Name: "created_at"}, Desc: page.Desc()}
	if page.Sort == "name" {
		order = clause.OrderByColumn{Column: clause.Column{Table: "users", Name: "name"}, Desc: page.Desc()}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.following(gctx, followerID).Count(&total).Error
	})
	g.Go(func() error {
		return r.following(gctx, followerID).
			Select(authorCountsSelect+", user_follows.created_at AS followed_at", string(entity.StoryStatusPublished)).
			Order(order).
			Limit(page.PerPage).
			Offset(page.Offset()).
			Scan(&rows).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	authors := make([]*entity.FollowedAuthor, len(rows))
	for i := range rows {
		profile := rows[i].profile()
		profile.IsFollowing = true
		authors[i] = &entity.FollowedAuthor{AuthorProfile: *profile, FollowedAt: rows[i].FollowedAt}
	}
	return authors, total, nil
}

func (r *authorRepository) followedAmong(ctx context.Context, viewerID string, ids []string) (map[string]bool, error) {
	followed := make(map[string]bool)
	if viewerID == "" || len(ids) == 0 {
		return followed, nil
	}

	var followingIDs []string
	err := r.db.WithContext(ctx).Model(&model.UserFollowModel{}).
		Where("follower_id = ? AND following_id IN ?", viewerID, ids).
		Pluck("following_id", &followingIDs).Error
	if err != nil {
		return nil, err
	}
	for _, id := range followingIDs {
		followed[id] = true
	}
	return followed, nil
}
