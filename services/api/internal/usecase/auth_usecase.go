package usecase

import (
	"context"
	"strings"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/jwt"
	"sekor-bkc/pkg/logger"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid email or password"

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type UpdateProfileInput struct {
	Name      *string
	NameBn    *string
	Bio       *string
	BioBn     *string
	AvatarURL *string
}

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, *AuthTokens, error)
	Login(ctx context.Context, email, password string) (*entity.User, *AuthTokens, error)
	Refresh(ctx context.Context, refreshToken string) (*entity.User, *AuthTokens, error)
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, *AuthTokens, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, apperror.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: string(hashedPassword),
		Name:     strings.TrimSpace(input.Name),
		Role:     entity.RoleReader,
		Status:   entity.UserStatusActive,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, nil, wrapRepoError("Failed to create user", err)
	}

	tokens, err := uc.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	uc.logger.Info("User registered: %s", user.ID)
	return user, tokens, nil
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, *AuthTokens, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, nil, apperror.Unauthorized(invalidCredentials)
		}
		return nil, nil, apperror.Internal("Failed to load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, apperror.Unauthorized(invalidCredentials)
	}
	if user.Status != entity.UserStatusActive {
		return nil, nil, apperror.Forbidden("Account is not active")
	}

	tokens, err := uc.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Refresh rotates both tokens from a valid refresh token.
func (uc *authUseCase) Refresh(ctx context.Context, refreshToken string) (*entity.User, *AuthTokens, error) {
	if refreshToken == "" {
		return nil, nil, apperror.Unauthorized("Refresh token required")
	}
	claims, err := uc.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, nil, apperror.Unauthorized("Invalid or expired refresh token")
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, nil, apperror.Unauthorized("Invalid or expired refresh token")
		}
		return nil, nil, apperror.Internal("Failed to load user", err)
	}
	if user.Status != entity.UserStatusActive {
		return nil, nil, apperror.Forbidden("Account is not active")
	}

	tokens, err := uc.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (uc *authUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, wrapRepoError("Failed to load user", err)
	}
	return user, nil
}

func (uc *authUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, wrapRepoError("Failed to load user", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.Validation("Invalid profile", apperror.FieldIssue{Field: "name", Issue: "must not be empty"})
		}
		user.Name = name
	}
	if input.NameBn != nil {
		user.NameBn = *input.NameBn
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.BioBn != nil {
		user.BioBn = *input.BioBn
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}

	if err := uc.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, wrapRepoError("Failed to update profile", err)
	}
	return user, nil
}

func (uc *authUseCase) issueTokens(user *entity.User) (*AuthTokens, error) {
	accessToken, err := uc.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal("Failed to generate token", err)
	}
	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal("Failed to generate token", err)
	}
	return &AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
