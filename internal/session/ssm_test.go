package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/BerryBytes/hrctl/internal/session"
	mock_hrctl "github.com/BerryBytes/hrctl/tests/mock"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestSSMStore_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSSMClient := mock_hrctl.NewMockSSMClientInterface(ctrl)

	tests := []struct {
		name          string
		setupMocks    func()
		expected      session.Credentials
		expectedError string
	}{
		{
			name: "decodes stored pair",
			setupMocks: func() {
				mockSSMClient.EXPECT().GetParameter(gomock.Any(), &ssm.GetParameterInput{
					Name:           aws.String(session.DefaultSSMParameter),
					WithDecryption: aws.Bool(true),
				}).Return(&ssm.GetParameterOutput{
					Parameter: &types.Parameter{Value: aws.String(`{"access":"a1","refresh":"r1"}`)},
				}, nil)
			},
			expected: session.Credentials{AccessToken: "a1", RefreshToken: "r1"},
		},
		{
			name: "typed not found is empty",
			setupMocks: func() {
				mockSSMClient.EXPECT().GetParameter(gomock.Any(), gomock.Any()).
					Return(nil, &types.ParameterNotFound{Message: aws.String("missing")})
			},
		},
		{
			name: "generic not found code is empty",
			setupMocks: func() {
				mockSSMClient.EXPECT().GetParameter(gomock.Any(), gomock.Any()).
					Return(nil, &smithy.GenericAPIError{Code: "ParameterNotFound"})
			},
		},
		{
			name: "other api error",
			setupMocks: func() {
				mockSSMClient.EXPECT().GetParameter(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("access denied"))
			},
			expectedError: "failed to get parameter /hrctl/session: access denied",
		},
		{
			name: "corrupt value",
			setupMocks: func() {
				mockSSMClient.EXPECT().GetParameter(gomock.Any(), gomock.Any()).Return(&ssm.GetParameterOutput{
					Parameter: &types.Parameter{Value: aws.String("{")},
				}, nil)
			},
			expectedError: "failed to decode parameter /hrctl/session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			store := session.NewSSMStore(mockSSMClient, "", "")

			creds, err := store.Load(context.Background())

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, creds)
			}
		})
	}
}

func TestSSMStore_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSSMClient := mock_hrctl.NewMockSSMClientInterface(ctrl)
	mockSSMClient.EXPECT().PutParameter(gomock.Any(), &ssm.PutParameterInput{
		Name:      aws.String("/team/hrctl"),
		Value:     aws.String(`{"access":"a1","refresh":"r1"}`),
		Type:      types.ParameterTypeSecureString,
		Overwrite: aws.Bool(true),
		KeyId:     aws.String("alias/hrctl"),
	}).Return(&ssm.PutParameterOutput{}, nil)

	store := session.NewSSMStore(mockSSMClient, "/team/hrctl", "alias/hrctl")
	assert.NoError(t, store.Save(context.Background(), session.Credentials{AccessToken: "a1", RefreshToken: "r1"}))
}

func TestSSMStore_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSSMClient := mock_hrctl.NewMockSSMClientInterface(ctrl)
	store := session.NewSSMStore(mockSSMClient, "", "")

	mockSSMClient.EXPECT().DeleteParameter(gomock.Any(), gomock.Any()).
		Return(nil, &types.ParameterNotFound{})
	assert.NoError(t, store.Clear(context.Background()))

	mockSSMClient.EXPECT().DeleteParameter(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("throttled"))
	assert.ErrorContains(t, store.Clear(context.Background()), "throttled")
}
