package generalutils

import (
	"bytes"
	"io"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHandleSignals(t *testing.T) {
	manager := &DefaultGeneralUtilsManager{}

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	ctx := manager.HandleSignals()

	err := syscall.Kill(syscall.Getpid(), syscall.SIGINT)
	if err != nil {
		t.Fatalf("Failed to send signal: %v", err)
	}

	select {
	case <-ctx.Done():
		assert.Error(t, ctx.Err(), "context should be cancelled")
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for signal handling")
	}

	w.Close()
	os.Stderr = oldStderr
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	if err != nil {
		t.Fatalf("Failed to copy output: %v", err)
	}

	assert.Contains(t, buf.String(), "Received termination signal")

	signal.Reset()
}

func TestPrintSessionDetails(t *testing.T) {
	var buf bytes.Buffer

	manager := &DefaultGeneralUtilsManager{}
	manager.PrintSessionDetails(&buf, SessionDetails{
		Email:      "ada@example.com",
		Name:       "Ada Lovelace",
		Role:       "hr",
		BaseURL:    "http://localhost:8000/api",
		Store:      "file",
		Expiration: "2026-10-19T10:00:00Z",
	})

	output := buf.String()
	assert.Contains(t, output, "HR Session Details")
	assert.Contains(t, output, "Email        : ada@example.com")
	assert.Contains(t, output, "Name         : Ada Lovelace")
	assert.Contains(t, output, "Role         : hr")
	assert.Contains(t, output, "API          : http://localhost:8000/api")
	assert.Contains(t, output, "Expiration   : 2026-10-19T10:00:00Z")
}

func TestValidators(t *testing.T) {
	assert.True(t, IsValidEmail("ada@example.com"))
	assert.False(t, IsValidEmail("ada@"))
	assert.False(t, IsValidEmail("ada example.com"))

	assert.True(t, IsValidBaseURL("https://hr.example.com/api"))
	assert.True(t, IsValidBaseURL("http://localhost:8000/api"))
	assert.False(t, IsValidBaseURL("localhost:8000"))
	assert.False(t, IsValidBaseURL("ftp://hr.example.com"))
}

func TestNewGeneralUtilsManager(t *testing.T) {
	manager := NewGeneralUtilsManager()
	assert.NotNil(t, manager)
	_, ok := manager.(*DefaultGeneralUtilsManager)
	assert.True(t, ok, "should return DefaultGeneralUtilsManager")
}
