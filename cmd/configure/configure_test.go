package configure

import (
	"bytes"
	"testing"
	"time"

	"github.com/BerryBytes/hrctl/internal/app"
	"github.com/BerryBytes/hrctl/internal/config"
	mock_hrctl "github.com/BerryBytes/hrctl/tests/mock"
	promptUtils "github.com/BerryBytes/hrctl/utils/prompt"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configPath = "/home/ada/.config/hrctl/config.yaml"

func TestConfigureCmd(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(m *mock_hrctl.MockPrompter)
		expectedOutput string
		expectedError  string
		expectSaved    bool
	}{
		{
			name: "saves answers",
			mockSetup: func(m *mock_hrctl.MockPrompter) {
				m.EXPECT().PromptForInput("HR API base URL", "http://localhost:8000/api").Return("https://hr.example.com/api/", nil)
				m.EXPECT().PromptForInput("Login email", "").Return("ada@example.com", nil)
				m.EXPECT().PromptForSelection("Credential store", []string{"file", "memory", "redis", "ssm"}).Return("redis", nil)
			},
			expectedOutput: "Configuration saved to " + configPath,
			expectSaved:    true,
		},
		{
			name: "invalid base url",
			mockSetup: func(m *mock_hrctl.MockPrompter) {
				m.EXPECT().PromptForInput("HR API base URL", "http://localhost:8000/api").Return("hr.example.com", nil)
			},
			expectedError: `invalid base URL "hr.example.com"`,
		},
		{
			name: "invalid email",
			mockSetup: func(m *mock_hrctl.MockPrompter) {
				m.EXPECT().PromptForInput("HR API base URL", "http://localhost:8000/api").Return("https://hr.example.com/api", nil)
				m.EXPECT().PromptForInput("Login email", "").Return("ada", nil)
			},
			expectedError: `invalid email address "ada"`,
		},
		{
			name: "interrupted",
			mockSetup: func(m *mock_hrctl.MockPrompter) {
				m.EXPECT().PromptForInput("HR API base URL", "http://localhost:8000/api").Return("", promptUtils.ErrInterrupted)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPrompter := mock_hrctl.NewMockPrompter(ctrl)
			tt.mockSetup(mockPrompter)

			fs := afero.NewMemMapFs()
			a := app.New("test")
			a.Fs = fs
			a.Prompter = mockPrompter
			a.Config = &config.Config{
				API:   config.APIConfig{BaseURL: "http://localhost:8000/api", Timeout: 30 * time.Second},
				Store: config.StoreConfig{Driver: "file", Path: "/home/ada/.config/hrctl/credentials.yaml"},
				Log:   config.LogConfig{Level: "warn"},
				Path:  configPath,
			}

			cmd := NewConfigureCmd(a)
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{})

			err := cmd.Execute()
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Contains(t, out.String(), tt.expectedOutput)
			}

			exists, err := afero.Exists(fs, configPath)
			require.NoError(t, err)
			assert.Equal(t, tt.expectSaved, exists)

			if tt.expectSaved {
				data, err := afero.ReadFile(fs, configPath)
				require.NoError(t, err)
				assert.Contains(t, string(data), "base_url: https://hr.example.com/api")
				assert.Contains(t, string(data), "email: ada@example.com")
				assert.Contains(t, string(data), "driver: redis")
			}
		})
	}
}

func TestOrderedDrivers(t *testing.T) {
	assert.Equal(t, []string{"ssm", "file", "memory", "redis"}, orderedDrivers("ssm"))
	assert.Equal(t, []string{"file", "memory", "redis", "ssm"}, orderedDrivers("unknown"))
}
