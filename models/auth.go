package models

// LoginRequest is the body of POST /auth/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by the login and two-factor endpoints. When
// TwoFactorRequired is set the token fields are empty and MFAToken must be
// exchanged together with a one-time code.
type LoginResponse struct {
	Access            string `json:"access"`
	Refresh           string `json:"refresh"`
	User              *User  `json:"user,omitempty"`
	TwoFactorRequired bool   `json:"two_factor_required,omitempty"`
	MFAToken          string `json:"mfa_token,omitempty"`
}

type TwoFactorRequest struct {
	MFAToken string `json:"mfa_token"`
	Code     string `json:"code"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse carries a rotated pair. Refresh is empty when the backend
// does not rotate refresh tokens.
type RefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RegisterRequest is the body of POST /auth/register/.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Password2   string `json:"password2"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        Role   `json:"role,omitempty"`
	Department  string `json:"department,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// ProfileUpdate is a partial PATCH of /auth/profile/.
type ProfileUpdate struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Department  string `json:"department,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword  string `json:"old_password"`
	NewPassword  string `json:"new_password"`
	NewPassword2 string `json:"new_password2"`
}
