package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/hatzenkracher/ipurchase/internal/domain/entity"
	domainerrors "github.com/hatzenkracher/ipurchase/internal/domain/errors"
	"github.com/hatzenkracher/ipurchase/internal/domain/repository"
	mocksrepo "github.com/hatzenkracher/ipurchase/internal/mocks/repository"
	mocksservice "github.com/hatzenkracher/ipurchase/internal/mocks/service"
	"github.com/hatzenkracher/ipurchase/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserService(t *testing.T) (*userService, *mocksrepo.MockUserRepository, *mocksservice.MockPasswordHasher, *mocksservice.MockTokenService) {
	t.Helper()

	userRepo := mocksrepo.NewMockUserRepository(t)
	hasher := mocksservice.NewMockPasswordHasher(t)
	tokens := mocksservice.NewMockTokenService(t)

	svc := &userService{
		userRepo:          userRepo,
		passwordHasher:    hasher,
		tokenService:      tokens,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		passwordMinLength: 6,
	}

	return svc, userRepo, hasher, tokens
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc, userRepo, hasher, tokens := newTestUserService(t)
		userID := uuid.New()

		hasher.EXPECT().Hash("geheim123").Return("$2a$10$hash", nil)
		userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "haendler" && u.PasswordHash == "$2a$10$hash"
		})).Run(func(_ context.Context, u *entity.User) {
			u.ID = userID
		}).Return(nil)
		tokens.EXPECT().GenerateTokens(userID).Return("access", "refresh", nil)

		out, err := svc.Register(context.Background(), &usecase.RegisterInput{
			Username:        "haendler",
			Password:        "geheim123",
			ConfirmPassword: "geheim123",
			Name:            "Händler GmbH",
		})

		require.NoError(t, err)
		assert.Equal(t, userID, out.User.ID)
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, "refresh", out.RefreshToken)
	})

	t.Run("password too short", func(t *testing.T) {
		t.Parallel()

		svc, _, _, _ := newTestUserService(t)

		_, err := svc.Register(context.Background(), &usecase.RegisterInput{
			Username:        "haendler",
			Password:        "kurz",
			ConfirmPassword: "kurz",
			Name:            "Händler GmbH",
		})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
	})

	t.Run("password mismatch", func(t *testing.T) {
		t.Parallel()

		svc, _, _, _ := newTestUserService(t)

		_, err := svc.Register(context.Background(), &usecase.RegisterInput{
			Username:        "haendler",
			Password:        "geheim123",
			ConfirmPassword: "geheim124",
			Name:            "Händler GmbH",
		})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
	})

	t.Run("username taken", func(t *testing.T) {
		t.Parallel()

		svc, userRepo, hasher, _ := newTestUserService(t)

		hasher.EXPECT().Hash("geheim123").Return("$2a$10$hash", nil)
		userRepo.EXPECT().Create(mock.Anything, mock.Anything).
			Return(repository.ErrDuplicateUsername)

		_, err := svc.Register(context.Background(), &usecase.RegisterInput{
			Username:        "haendler",
			Password:        "geheim123",
			ConfirmPassword: "geheim123",
			Name:            "Händler GmbH",
		})

		assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc, userRepo, hasher, tokens := newTestUserService(t)
		user := &entity.User{
			ID:           uuid.New(),
			Username:     "haendler",
			PasswordHash: "$2a$10$hash",
		}

		userRepo.EXPECT().FindByUsername(mock.Anything, "haendler").Return(user, nil)
		hasher.EXPECT().Check("geheim123", "$2a$10$hash").Return(true)
		tokens.EXPECT().GenerateTokens(user.ID).Return("access", "refresh", nil)

		out, err := svc.Login(context.Background(), &usecase.LoginInput{
			Username: "haendler",
			Password: "geheim123",
		})

		require.NoError(t, err)
		assert.Equal(t, user, out.User)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		svc, userRepo, hasher, _ := newTestUserService(t)

		userRepo.EXPECT().FindByUsername(mock.Anything, "niemand").
			Return(nil, repository.ErrUserNotFound)

		_, unknownErr := svc.Login(context.Background(), &usecase.LoginInput{
			Username: "niemand",
			Password: "geheim123",
		})

		user := &entity.User{ID: uuid.New(), Username: "haendler", PasswordHash: "$2a$10$hash"}
		userRepo.EXPECT().FindByUsername(mock.Anything, "haendler").Return(user, nil)
		hasher.EXPECT().Check("falsch", "$2a$10$hash").Return(false)

		_, wrongErr := svc.Login(context.Background(), &usecase.LoginInput{
			Username: "haendler",
			Password: "falsch",
		})

		assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	})
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	svc, userRepo, _, _ := newTestUserService(t)
	userID := uuid.New()

	userRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetProfile(context.Background(), userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
