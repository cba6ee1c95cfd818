package usecase

import (
	"context"

	"github.com/hatzenkracher/ipurchase/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username        string  `json:"username" validate:"required,min=3,max=100"`
	Password        string  `json:"password" validate:"required"`
	ConfirmPassword string  `json:"confirm_password" validate:"required"`
	Name            string  `json:"name" validate:"required,max=100"`
	Email           *string `json:"email" validate:"omitempty,email"`
}

// LoginInput carries the credentials of a login request.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput is the result of a successful registration or login.
type AuthOutput struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// UserUsecase defines account registration and authentication.
type UserUsecase interface {
	// Register creates a new account and signs the user in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login authenticates a user by username and password.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetProfile returns the account of the given user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
