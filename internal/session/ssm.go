package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
)

const DefaultSSMParameter = "/hrctl/session"

type SSMOptions struct {
	Region          string
	Profile         string
	AccessKeyID     string
	SecretAccessKey string
}

// NewSSMClient builds an SSM client from the default AWS chain. Static keys
// take precedence over the chain when both are set.
func NewSSMClient(ctx context.Context, opts SSMOptions) (*ssm.Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// SSMStore keeps the pair in one SecureString parameter.
type SSMStore struct {
	Client SSMClientInterface
	Name   string
	KMSKey string
}

func NewSSMStore(client SSMClientInterface, name, kmsKey string) *SSMStore {
	if name == "" {
		name = DefaultSSMParameter
	}
	return &SSMStore{Client: client, Name: name, KMSKey: kmsKey}
}

func (s *SSMStore) Load(ctx context.Context) (Credentials, error) {
	out, err := s.Client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(s.Name),
		WithDecryption: aws.Bool(true),
	})
	if isParameterNotFound(err) {
		return Credentials{}, nil
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to get parameter %s: %w", s.Name, err)
	}
	if out.Parameter == nil || aws.ToString(out.Parameter.Value) == "" {
		return Credentials{}, nil
	}

	var creds Credentials
	if err := json.Unmarshal([]byte(aws.ToString(out.Parameter.Value)), &creds); err != nil {
		return Credentials{}, fmt.Errorf("failed to decode parameter %s: %w", s.Name, err)
	}
	return creds, nil
}

func (s *SSMStore) Save(ctx context.Context, creds Credentials) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	input := &ssm.PutParameterInput{
		Name:      aws.String(s.Name),
		Value:     aws.String(string(raw)),
		Type:      types.ParameterTypeSecureString,
		Overwrite: aws.Bool(true),
	}
	if s.KMSKey != "" {
		input.KeyId = aws.String(s.KMSKey)
	}

	if _, err := s.Client.PutParameter(ctx, input); err != nil {
		return fmt.Errorf("failed to put parameter %s: %w", s.Name, err)
	}
	return nil
}

func (s *SSMStore) Clear(ctx context.Context) error {
	_, err := s.Client.DeleteParameter(ctx, &ssm.DeleteParameterInput{Name: aws.String(s.Name)})
	if err != nil && !isParameterNotFound(err) {
		return fmt.Errorf("failed to delete parameter %s: %w", s.Name, err)
	}
	return nil
}

func isParameterNotFound(err error) bool {
	if err == nil {
		return false
	}
	var notFound *types.ParameterNotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "ParameterNotFound"
}
