package configure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BerryBytes/hrctl/internal/app"
	generalutils "github.com/BerryBytes/hrctl/utils/general"
	promptutils "github.com/BerryBytes/hrctl/utils/prompt"

	"github.com/spf13/cobra"
)

var storeDrivers = []string{"file", "memory", "redis", "ssm"}

func NewConfigureCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:         "configure",
		Short:       "Set the API endpoint and login defaults",
		Long:        "Interactively set the HR API base URL, the default login email and the credential store.",
		Annotations: map[string]string{app.SkipSession: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := configure(cmd, a)
			if errors.Is(err, promptutils.ErrInterrupted) {
				return nil
			}
			return err
		},
	}
}

func configure(cmd *cobra.Command, a *app.App) error {
	cfg := a.Config

	baseURL, err := a.Prompter.PromptForInput("HR API base URL", cfg.API.BaseURL)
	if err != nil {
		return err
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !generalutils.IsValidBaseURL(baseURL) {
		return fmt.Errorf("invalid base URL %q: must be an absolute http or https URL", baseURL)
	}

	email, err := a.Prompter.PromptForInput("Login email", cfg.Auth.Email)
	if err != nil {
		return err
	}
	email = strings.TrimSpace(email)
	if email != "" && !generalutils.IsValidEmail(email) {
		return fmt.Errorf("invalid email address %q", email)
	}

	driver, err := a.Prompter.PromptForSelection("Credential store", orderedDrivers(cfg.Store.Driver))
	if err != nil {
		return err
	}

	cfg.API.BaseURL = baseURL
	cfg.Auth.Email = email
	cfg.Store.Driver = driver

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := cfg.Save(a.Fs); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", cfg.Path)
	return nil
}

// orderedDrivers puts the current driver first so it is the default choice.
func orderedDrivers(current string) []string {
	items := []string{}
	for _, d := range storeDrivers {
		if d == current {
			items = append([]string{d}, items...)
			continue
		}
		items = append(items, d)
	}
	return items
}
