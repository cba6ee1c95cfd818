package impl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hatzenkracher/ipurchase/config"
	"github.com/hatzenkracher/ipurchase/internal/domain/entity"
	domainerrors "github.com/hatzenkracher/ipurchase/internal/domain/errors"
	"github.com/hatzenkracher/ipurchase/internal/domain/repository"
	"github.com/hatzenkracher/ipurchase/internal/domain/service"
	"github.com/hatzenkracher/ipurchase/internal/errors"
	"github.com/hatzenkracher/ipurchase/internal/usecase"

	"github.com/google/uuid"
)

const defaultPasswordMinLength = 6

type userService struct {
	userRepo          repository.UserRepository
	passwordHasher    service.PasswordHasher
	tokenService      service.TokenService
	logger            *slog.Logger
	passwordMinLength int
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	passwordHasher service.PasswordHasher,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.UserUsecase {
	minLength := defaultPasswordMinLength
	if cfg != nil && cfg.Auth != nil && cfg.Auth.PasswordMinLength > 0 {
		minLength = cfg.Auth.PasswordMinLength
	}

	return &userService{
		userRepo:          userRepo,
		passwordHasher:    passwordHasher,
		tokenService:      tokenService,
		logger:            logger,
		passwordMinLength: minLength,
	}
}

// Register creates a new account and signs the user in.
func (s *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if len(input.Password) < s.passwordMinLength {
		return nil, domainerrors.ErrPasswordTooShort
	}
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrPasswordMismatch
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hash,
		Name:         input.Name,
		Email:        input.Email,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domainerrors.ErrUsernameTaken
		}

		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("username", input.Username),
			slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("userID", user.ID.String()),
		slog.String("username", user.Username))

	return s.issueTokens(ctx, user)
}

// Login authenticates a user by username and password. A missing user and a
// wrong password produce the same error.
func (s *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		s.logger.ErrorContext(ctx, "failed to look up user",
			slog.String("username", input.Username),
			slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "Anmeldung fehlgeschlagen")
	}

	if !s.passwordHasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("userID", user.ID.String()))

	return s.issueTokens(ctx, user)
}

// GetProfile returns the account of the given user.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		s.logger.ErrorContext(ctx, "failed to load user profile",
			slog.String("userID", userID.String()),
			slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "Fehler beim Laden des Profils")
	}

	return user, nil
}

func (s *userService) issueTokens(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := s.tokenService.GenerateTokens(user.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to generate tokens",
			slog.String("userID", user.ID.String()),
			slog.Any("error", err))

		return nil, domainerrors.NewBaseError(http.StatusInternalServerError,
			"TOKEN_GENERATION_FAILED", "Anmeldung fehlgeschlagen", err.Error())
	}

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
