package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	promptUtils "github.com/BerryBytes/hrctl/utils/prompt"
	"github.com/pquerna/otp/totp"
)

// TOTPSource derives codes from a shared secret, for unattended logins.
type TOTPSource struct {
	Secret string
	Now    func() time.Time
}

func (s *TOTPSource) Code(_ context.Context) (string, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	code, err := totp.GenerateCode(strings.ReplaceAll(s.Secret, " ", ""), now())
	if err != nil {
		return "", fmt.Errorf("failed to generate TOTP code: %w", err)
	}
	return code, nil
}

// PromptOTPSource asks the user for the code from their authenticator app.
type PromptOTPSource struct {
	Prompter promptUtils.Prompter
}

func (s *PromptOTPSource) Code(_ context.Context) (string, error) {
	code, err := s.Prompter.PromptForInput("Authentication code", "")
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(code, " ", ""), nil
}
