package auth

import (
	"context"

	"github.com/BerryBytes/hrctl/models"
)

type Service interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, in models.ProfileUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	Register(ctx context.Context, in models.RegisterRequest) (*models.User, error)
	Status(ctx context.Context) (*Status, error)
	Refresh(ctx context.Context) error
}

// OTPSource supplies the one-time code for a two-factor login.
type OTPSource interface {
	Code(ctx context.Context) (string, error)
}
