package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/BerryBytes/hrctl/internal/apiclient"
	"github.com/BerryBytes/hrctl/internal/session"
	"github.com/BerryBytes/hrctl/models"
	"go.uber.org/zap"
)

const (
	loginPath     = "/auth/login/"
	twoFactorPath = "/auth/2fa/verify/"
	logoutPath    = "/auth/logout/"
	profilePath   = "/auth/profile/"
	passwordPath  = "/auth/change-password/"
	registerPath  = "/auth/register/"
)

var (
	ErrTwoFactorRequired = errors.New("two-factor code required but no code source is configured")
	ErrNoAccessToken     = errors.New("login response carried no access token")
	ErrEmptyProfile      = errors.New("profile update has no fields set")
)

// Status describes the stored session without contacting the server.
type Status struct {
	SignedIn     bool
	HasRefresh   bool
	AccessExpiry time.Time
	Expired      bool
}

type AuthService struct {
	Client    apiclient.Requester
	Refresher apiclient.Refresher
	State     *session.State
	OTP       OTPSource
	log       *zap.Logger
	now       func() time.Time
}

type Option func(*AuthService)

func WithLogger(l *zap.Logger) Option {
	return func(s *AuthService) {
		if l != nil {
			s.log = l
		}
	}
}

func WithOTPSource(otp OTPSource) Option {
	return func(s *AuthService) {
		s.OTP = otp
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *AuthService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewAuthService(client apiclient.Requester, refresher apiclient.Refresher, state *session.State, opts ...Option) *AuthService {
	s := &AuthService{
		Client:    client,
		Refresher: refresher,
		State:     state,
		log:       zap.NewNop(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Login exchanges email and password for a credential pair and stores it.
// Accounts with two-factor enabled get a second round trip with the code
// from the configured OTPSource.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := s.Client.Request(ctx, http.MethodPost, loginPath,
		models.LoginRequest{Email: email, Password: password}, apiclient.WithoutAuth())
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	var login models.LoginResponse
	if err := resp.Decode(&login); err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	if login.TwoFactorRequired {
		if login, err = s.verifyTwoFactor(ctx, login.MFAToken); err != nil {
			return nil, err
		}
	}

	if login.Access == "" {
		return nil, ErrNoAccessToken
	}

	if err := s.State.Replace(ctx, session.Credentials{AccessToken: login.Access, RefreshToken: login.Refresh}); err != nil {
		return nil, err
	}

	s.log.Info("logged in", zap.String("email", email))
	return login.User, nil
}

func (s *AuthService) verifyTwoFactor(ctx context.Context, mfaToken string) (models.LoginResponse, error) {
	if s.OTP == nil {
		return models.LoginResponse{}, ErrTwoFactorRequired
	}

	code, err := s.OTP.Code(ctx)
	if err != nil {
		return models.LoginResponse{}, err
	}

	resp, err := s.Client.Request(ctx, http.MethodPost, twoFactorPath,
		models.TwoFactorRequest{MFAToken: mfaToken, Code: code}, apiclient.WithoutAuth())
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("failed to verify two-factor code: %w", err)
	}

	var login models.LoginResponse
	if err := resp.Decode(&login); err != nil {
		return models.LoginResponse{}, fmt.Errorf("failed to verify two-factor code: %w", err)
	}
	return login, nil
}

// Logout tells the server to revoke the refresh token and then forgets the
// pair locally. The local clear happens even when the server call fails.
func (s *AuthService) Logout(ctx context.Context) error {
	creds, err := s.State.Current(ctx)
	if err != nil {
		s.log.Warn("could not read stored credentials before logout", zap.Error(err))
	}

	if creds.RefreshToken != "" {
		opts := []apiclient.RequestOption{apiclient.WithoutAuth()}
		if creds.AccessToken != "" {
			opts = append(opts, apiclient.WithHeader("Authorization", "Bearer "+creds.AccessToken))
		}
		_, err := s.Client.Request(ctx, http.MethodPost, logoutPath,
			models.LogoutRequest{RefreshToken: creds.RefreshToken}, opts...)
		if err != nil {
			s.log.Warn("server logout failed, clearing local session anyway", zap.Error(err))
		}
	}

	if err := s.State.Clear(ctx); err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}
	return nil
}

func (s *AuthService) Profile(ctx context.Context) (*models.User, error) {
	resp, err := s.Client.Request(ctx, http.MethodGet, profilePath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var user models.User
	if err := resp.Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, in models.ProfileUpdate) (*models.User, error) {
	if in == (models.ProfileUpdate{}) {
		return nil, ErrEmptyProfile
	}

	resp, err := s.Client.Request(ctx, http.MethodPatch, profilePath, in)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	var user models.User
	if err := resp.Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &user, nil
}

// ChangePassword replaces the account password. The stored session stays
// valid; the backend does not revoke issued tokens.
func (s *AuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := models.ChangePasswordRequest{
		OldPassword:  oldPassword,
		NewPassword:  newPassword,
		NewPassword2: newPassword,
	}
	if _, err := s.Client.Request(ctx, http.MethodPut, passwordPath, body); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

// Register creates an account. Registration is open, so the request is sent
// without the session's bearer token and does not touch the stored pair.
func (s *AuthService) Register(ctx context.Context, in models.RegisterRequest) (*models.User, error) {
	resp, err := s.Client.Request(ctx, http.MethodPost, registerPath, in, apiclient.WithoutAuth())
	if err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", in.Email, err)
	}

	var user models.User
	if err := resp.Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", in.Email, err)
	}
	return &user, nil
}

func (s *AuthService) Status(ctx context.Context) (*Status, error) {
	creds, err := s.State.Reload(ctx)
	if err != nil {
		return nil, err
	}

	st := &Status{
		SignedIn:   !creds.IsZero(),
		HasRefresh: creds.RefreshToken != "",
	}
	if exp, ok := creds.AccessExpiry(); ok {
		st.AccessExpiry = exp
		st.Expired = !s.now().Before(exp)
	}
	return st, nil
}

func (s *AuthService) Refresh(ctx context.Context) error {
	if err := s.Refresher.RefreshNow(ctx); err != nil {
		return fmt.Errorf("failed to refresh session: %w", err)
	}
	return nil
}
