package generalutils

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"regexp"
	"syscall"
)

type GeneralUtilsInterface interface {
	HandleSignals() context.Context
	PrintSessionDetails(w io.Writer, details SessionDetails)
}

type SessionDetails struct {
	Email      string
	Name       string
	Role       string
	BaseURL    string
	Store      string
	Expiration string
}

type DefaultGeneralUtilsManager struct{}

func (g *DefaultGeneralUtilsManager) HandleSignals() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Fprintf(os.Stderr, "Received termination signal: %v\n", sig)
		cancel()
	}()

	return ctx
}

func (d *DefaultGeneralUtilsManager) PrintSessionDetails(w io.Writer, s SessionDetails) {
	fmt.Fprintf(w, `
HR Session Details:
---------------------------------
Email        : %s
Name         : %s
Role         : %s
API          : %s
Store        : %s
Expiration   : %s
---------------------------------
`, s.Email, s.Name, s.Role, s.BaseURL, s.Store, s.Expiration)
}

func NewGeneralUtilsManager() GeneralUtilsInterface {
	return &DefaultGeneralUtilsManager{}
}

var validEmailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func IsValidEmail(email string) bool {
	return validEmailRegex.MatchString(email)
}

// IsValidBaseURL accepts absolute http(s) URLs only.
func IsValidBaseURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
