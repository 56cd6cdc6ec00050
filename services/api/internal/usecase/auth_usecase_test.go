package usecase

import (
	"context"
	"errors"
	"testing"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/jwt"
	"sekor-bkc/pkg/logger"
	"sekor-bkc/services/api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUseCase(users *MockUserRepository) (AuthUseCase, *jwt.Service) {
	jwtService := jwt.NewService("test-secret")
	return NewAuthUseCase(users, jwtService, logger.New()), jwtService
}

func hashedUser(t *testing.T, password string, status entity.UserStatus) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:       authorID,
		Email:    "rahim@example.com",
		Password: string(hash),
		Name:     "Rahim",
		Role:     entity.RoleAuthor,
		Status:   status,
	}
}

func TestAuthUseCase_Register(t *testing.T) {
	users := new(MockUserRepository)
	uc, jwtService := newAuthUseCase(users)

	users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.User).ID = authorID }).
		Return(nil)

	user, tokens, err := uc.Register(context.Background(), RegisterInput{
		Email:    "  Rahim@Example.com ",
		Password: "s3cret-pass",
		Name:     "Rahim",
	})

	require.NoError(t, err)
	assert.Equal(t, "rahim@example.com", user.Email)
	assert.Equal(t, entity.RoleReader, user.Role)
	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")))

	claims, err := jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, authorID, claims.UserID)
	_, err = jwtService.ValidateRefreshToken(tokens.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthUseCase_RegisterDuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	uc, _ := newAuthUseCase(users)
	users.On("Create", mock.Anything, mock.Anything).Return(apperror.Conflict("Email already registered"))

	_, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "password1", Name: "A"})

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestAuthUseCase_Login(t *testing.T) {
	tests := []struct {
		name     string
		user     *entity.User
		repoErr  error
		password string
		wantKind apperror.Kind
		wantOK   bool
	}{
		{name: "valid credentials", user: hashedUser(t, "correct-horse", entity.UserStatusActive), password: "correct-horse", wantOK: true},
		{name: "wrong password", user: hashedUser(t, "correct-horse", entity.UserStatusActive), password: "battery", wantKind: apperror.KindUnauthorized},
		{name: "unknown email", repoErr: apperror.NotFound("User not found"), password: "x", wantKind: apperror.KindUnauthorized},
		{name: "suspended account", user: hashedUser(t, "correct-horse", entity.UserStatusSuspended), password: "correct-horse", wantKind: apperror.KindForbidden},
		{name: "database failure", repoErr: errors.New("connection refused"), password: "x", wantKind: apperror.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			uc, _ := newAuthUseCase(users)
			if tt.user != nil {
				users.On("GetByEmail", mock.Anything, "rahim@example.com").Return(tt.user, nil)
			} else {
				users.On("GetByEmail", mock.Anything, "rahim@example.com").Return(nil, tt.repoErr)
			}

			user, tokens, err := uc.Login(context.Background(), "rahim@example.com", tt.password)

			if tt.wantOK {
				require.NoError(t, err)
				assert.Equal(t, authorID, user.ID)
				assert.NotEmpty(t, tokens.AccessToken)
				return
			}
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
			if tt.wantKind == apperror.KindUnauthorized {
				assert.EqualError(t, err, invalidCredentials)
			}
		})
	}
}

func TestAuthUseCase_Refresh(t *testing.T) {
	users := new(MockUserRepository)
	uc, jwtService := newAuthUseCase(users)
	users.On("GetByID", mock.Anything, authorID).Return(hashedUser(t, "pw", entity.UserStatusActive), nil)

	refresh, err := jwtService.GenerateRefreshToken(authorID, "rahim@example.com")
	require.NoError(t, err)
	access, err := jwtService.GenerateToken(authorID, "rahim@example.com")
	require.NoError(t, err)

	_, tokens, err := uc.Refresh(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.RefreshToken)

	_, _, err = uc.Refresh(context.Background(), access)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))

	_, _, err = uc.Refresh(context.Background(), "")
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestAuthUseCase_UpdateProfile(t *testing.T) {
	users := new(MockUserRepository)
	uc, _ := newAuthUseCase(users)
	users.On("GetByID", mock.Anything, authorID).Return(hashedUser(t, "pw", entity.UserStatusActive), nil)
	users.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil)

	nameBn := "রহিম"
	user, err := uc.UpdateProfile(context.Background(), authorID, UpdateProfileInput{NameBn: &nameBn})
	require.NoError(t, err)
	assert.Equal(t, "Rahim", user.Name)
	assert.Equal(t, "রহিম", user.NameBn)

	blank := "   "
	_, err = uc.UpdateProfile(context.Background(), authorID, UpdateProfileInput{Name: &blank})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}
