package http

import (
	"context"

	"sekor-bkc/pkg/pagination"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, *usecase.AuthTokens, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.User), args.Get(1).(*usecase.AuthTokens), args.Error(2)
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, *usecase.AuthTokens, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.User), args.Get(1).(*usecase.AuthTokens), args.Error(2)
}

func (m *MockAuthUseCase) Refresh(ctx context.Context, refreshToken string) (*entity.User, *usecase.AuthTokens, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.User), args.Get(1).(*usecase.AuthTokens), args.Error(2)
}

func (m *MockAuthUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UpdateProfile(ctx context.Context, userID string, input usecase.UpdateProfileInput) (*entity.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

type MockArticleUseCase struct {
	mock.Mock
}

func (m *MockArticleUseCase) List(ctx context.Context, filter entity.ArticleFilter, viewerID string, page pagination.Params) ([]*entity.Article, int64, error) {
	args := m.Called(ctx, filter, viewerID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleUseCase) Get(ctx context.Context, id, viewerID string) (*entity.Article, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) Create(ctx context.Context, authorID string, input usecase.CreateArticleInput) (*entity.Article, error) {
	args := m.Called(ctx, authorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) Update(ctx context.Context, id, actorID string, input usecase.UpdateArticleInput) (*entity.Article, error) {
	args := m.Called(ctx, id, actorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) Delete(ctx context.Context, id, actorID string) error {
	args := m.Called(ctx, id, actorID)
	return args.Error(0)
}

var _ usecase.ArticleUseCase = (*MockArticleUseCase)(nil)

type MockStoryUseCase struct {
	mock.Mock
}

func (m *MockStoryUseCase) List(ctx context.Context, filter entity.StoryFilter, page pagination.Params) ([]*entity.Story, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Story), args.Get(1).(int64), args.Error(2)
}

func (m *MockStoryUseCase) ListMine(ctx context.Context, actorID string, status entity.StoryStatus, page pagination.Params) ([]*entity.Story, int64, error) {
	args := m.Called(ctx, actorID, status, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Story), args.Get(1).(int64), args.Error(2)
}

func (m *MockStoryUseCase) Get(ctx context.Context, id, viewerID, visitorKey string) (*entity.Story, error) {
	args := m.Called(ctx, id, viewerID, visitorKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Story), args.Error(1)
}

func (m *MockStoryUseCase) Create(ctx context.Context, actorID string, input usecase.CreateStoryInput) (*entity.Story, error) {
	args := m.Called(ctx, actorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Story), args.Error(1)
}

func (m *MockStoryUseCase) Update(ctx context.Context, id, actorID string, input usecase.UpdateStoryInput) (*entity.Story, error) {
	args := m.Called(ctx, id, actorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Story), args.Error(1)
}

func (m *MockStoryUseCase) Delete(ctx context.Context, id, actorID string) error {
	args := m.Called(ctx, id, actorID)
	return args.Error(0)
}

func (m *MockStoryUseCase) Submit(ctx context.Context, id, actorID string) (*entity.Story, error) {
	return m.transition(m.Called(ctx, id, actorID))
}

func (m *MockStoryUseCase) Review(ctx context.Context, id, actorID string, decision entity.StoryAction, notes string) (*entity.Story, error) {
	return m.transition(m.Called(ctx, id, actorID, decision, notes))
}

func (m *MockStoryUseCase) Publish(ctx context.Context, id, actorID string) (*entity.Story, error) {
	return m.transition(m.Called(ctx, id, actorID))
}

func (m *MockStoryUseCase) Archive(ctx context.Context, id, actorID string) (*entity.Story, error) {
	return m.transition(m.Called(ctx, id, actorID))
}

func (m *MockStoryUseCase) Stats(ctx context.Context, id, actorID string) (*entity.StoryStats, error) {
	args := m.Called(ctx, id, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StoryStats), args.Error(1)
}

func (m *MockStoryUseCase) transition(args mock.Arguments) (*entity.Story, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Story), args.Error(1)
}

var _ usecase.StoryUseCase = (*MockStoryUseCase)(nil)

type MockAuthorUseCase struct {
	mock.Mock
}

func (m *MockAuthorUseCase) List(ctx context.Context, filter entity.AuthorFilter, viewerID string, page pagination.Params) ([]*entity.AuthorProfile, int64, error) {
	args := m.Called(ctx, filter, viewerID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.AuthorProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuthorUseCase) Get(ctx context.Context, id, viewerID string) (*entity.AuthorProfile, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuthorProfile), args.Error(1)
}

func (m *MockAuthorUseCase) Follow(ctx context.Context, followerID, authorID string) error {
	args := m.Called(ctx, followerID, authorID)
	return args.Error(0)
}

func (m *MockAuthorUseCase) Unfollow(ctx context.Context, followerID, authorID string) error {
	args := m.Called(ctx, followerID, authorID)
	return args.Error(0)
}

func (m *MockAuthorUseCase) ListFollowing(ctx context.Context, followerID string, page pagination.Params) ([]*entity.FollowedAuthor, int64, error) {
	args := m.Called(ctx, followerID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.FollowedAuthor), args.Get(1).(int64), args.Error(2)
}

var _ usecase.AuthorUseCase = (*MockAuthorUseCase)(nil)

type MockMediaUseCase struct {
	mock.Mock
}

func (m *MockMediaUseCase) Upload(ctx context.Context, ownerID string, input usecase.UploadMediaInput) (*entity.Media, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Media), args.Error(1)
}

func (m *MockMediaUseCase) List(ctx context.Context, ownerID string, filter entity.MediaFilter, page pagination.Params) ([]*entity.Media, int64, error) {
	args := m.Called(ctx, ownerID, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Media), args.Get(1).(int64), args.Error(2)
}

func (m *MockMediaUseCase) Get(ctx context.Context, id, ownerID string) (*entity.Media, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Media), args.Error(1)
}

func (m *MockMediaUseCase) Update(ctx context.Context, id, ownerID string, input usecase.UpdateMediaInput) (*entity.Media, error) {
	args := m.Called(ctx, id, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Media), args.Error(1)
}

func (m *MockMediaUseCase) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockMediaUseCase) Attach(ctx context.Context, id, ownerID, storyID string, order int) error {
	args := m.Called(ctx, id, ownerID, storyID, order)
	return args.Error(0)
}

func (m *MockMediaUseCase) Detach(ctx context.Context, id, ownerID, storyID string) error {
	args := m.Called(ctx, id, ownerID, storyID)
	return args.Error(0)
}

func (m *MockMediaUseCase) StorageUsage(ctx context.Context, ownerID string) (*entity.StorageUsage, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StorageUsage), args.Error(1)
}

var _ usecase.MediaUseCase = (*MockMediaUseCase)(nil)
