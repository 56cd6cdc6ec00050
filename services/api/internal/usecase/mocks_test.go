package usecase

import (
	"context"

	"sekor-bkc/pkg/pagination"
	"sekor-bkc/pkg/queue"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockStoryRepository struct {
	mock.Mock
}

func (m *MockStoryRepository) Create(ctx context.Context, story *entity.Story) error {
	args := m.Called(ctx, story)
	return args.Error(0)
}

func (m *MockStoryRepository) GetByID(ctx context.Context, id string) (*entity.Story, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Story), args.Error(1)
}

func (m *MockStoryRepository) List(ctx context.Context, filter entity.StoryFilter, page pagination.Params) ([]*entity.Story, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Story), args.Get(1).(int64), args.Error(2)
}

func (m *MockStoryRepository) Update(ctx context.Context, story *entity.Story, replace ...persistent.StoryAssociation) error {
	args := m.Called(ctx, story, replace)
	return args.Error(0)
}

func (m *MockStoryRepository) UpdateWorkflow(ctx context.Context, story *entity.Story) error {
	args := m.Called(ctx, story)
	return args.Error(0)
}

func (m *MockStoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoryRepository) IncrementViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoryRepository) IncrementUniqueVisitors(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ persistent.StoryRepository = (*MockStoryRepository)(nil)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

type MockTaxonomyRepository struct {
	mock.Mock
}

func (m *MockTaxonomyRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockTaxonomyRepository) CategoryExists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaxonomyRepository) CountLocations(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.TaxonomyRepository = (*MockTaxonomyRepository)(nil)

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *entity.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*entity.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleRepository) List(ctx context.Context, filter entity.ArticleFilter, page pagination.Params) ([]*entity.Article, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *entity.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) IncrementViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ persistent.ArticleRepository = (*MockArticleRepository)(nil)

type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) List(ctx context.Context, filter entity.AuthorFilter, viewerID string, page pagination.Params) ([]*entity.AuthorProfile, int64, error) {
	args := m.Called(ctx, filter, viewerID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.AuthorProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuthorRepository) GetByID(ctx context.Context, id, viewerID string) (*entity.AuthorProfile, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuthorProfile), args.Error(1)
}

func (m *MockAuthorRepository) Follow(ctx context.Context, followerID, followingID string) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthorRepository) Unfollow(ctx context.Context, followerID, followingID string) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockAuthorRepository) ListFollowing(ctx context.Context, followerID string, page pagination.Params) ([]*entity.FollowedAuthor, int64, error) {
	args := m.Called(ctx, followerID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.FollowedAuthor), args.Get(1).(int64), args.Error(2)
}

var _ persistent.AuthorRepository = (*MockAuthorRepository)(nil)

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(ctx context.Context, media *entity.Media) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MockMediaRepository) GetByID(ctx context.Context, id string) (*entity.Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Media), args.Error(1)
}

func (m *MockMediaRepository) List(ctx context.Context, filter entity.MediaFilter, page pagination.Params) ([]*entity.Media, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Media), args.Get(1).(int64), args.Error(2)
}

func (m *MockMediaRepository) UpdateMetadata(ctx context.Context, media *entity.Media) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MockMediaRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMediaRepository) Attach(ctx context.Context, mediaID, storyID string, order int) error {
	args := m.Called(ctx, mediaID, storyID, order)
	return args.Error(0)
}

func (m *MockMediaRepository) Detach(ctx context.Context, mediaID, storyID string) error {
	args := m.Called(ctx, mediaID, storyID)
	return args.Error(0)
}

func (m *MockMediaRepository) Usage(ctx context.Context, ownerID string) (*entity.StorageUsage, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StorageUsage), args.Error(1)
}

var _ persistent.MediaRepository = (*MockMediaRepository)(nil)

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockInteractionRepository) ListComments(ctx context.Context, storyID string, page pagination.Params) ([]*entity.Comment, int64, error) {
	args := m.Called(ctx, storyID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockInteractionRepository) AddBookmark(ctx context.Context, userID, storyID string) (bool, error) {
	args := m.Called(ctx, userID, storyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) RemoveBookmark(ctx context.Context, userID, storyID string) error {
	args := m.Called(ctx, userID, storyID)
	return args.Error(0)
}

func (m *MockInteractionRepository) AddEngagement(ctx context.Context, userID, storyID string, kind entity.EngagementType) error {
	args := m.Called(ctx, userID, storyID, kind)
	return args.Error(0)
}

var _ persistent.InteractionRepository = (*MockInteractionRepository)(nil)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event queue.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var _ queue.Publisher = (*MockPublisher)(nil)
