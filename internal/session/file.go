package session

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const fileFormatVersion = 1

var ErrSealed = errors.New("credentials file is encrypted but no passphrase is configured")

type fileDocument struct {
	Version   int       `yaml:"version"`
	Access    string    `yaml:"access,omitempty"`
	Refresh   string    `yaml:"refresh,omitempty"`
	Salt      string    `yaml:"salt,omitempty"`
	Sealed    string    `yaml:"sealed,omitempty"`
	UpdatedAt time.Time `yaml:"updatedAt"`
}

// FileStore keeps the pair in a YAML file readable only by its owner. With a
// passphrase the tokens are sealed instead of written in clear.
type FileStore struct {
	Fs         afero.Fs
	Path       string
	passphrase []byte
	now        func() time.Time
	mu         sync.Mutex
}

type FileOption func(*FileStore)

func WithPassphrase(passphrase string) FileOption {
	return func(f *FileStore) {
		if passphrase != "" {
			f.passphrase = []byte(passphrase)
		}
	}
}

func NewFileStore(fs afero.Fs, path string, opts ...FileOption) *FileStore {
	f := &FileStore{
		Fs:   fs,
		Path: path,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *FileStore) Load(_ context.Context) (Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := afero.ReadFile(f.Fs, f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return Credentials{}, nil
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read %s: %w", f.Path, err)
	}
	if len(data) == 0 {
		return Credentials{}, nil
	}

	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse %s: %w", f.Path, err)
	}

	if doc.Sealed == "" {
		return Credentials{AccessToken: doc.Access, RefreshToken: doc.Refresh}, nil
	}
	return f.unseal(doc)
}

func (f *FileStore) unseal(doc fileDocument) (Credentials, error) {
	if len(f.passphrase) == 0 {
		return Credentials{}, ErrSealed
	}

	salt, err := base64.StdEncoding.DecodeString(doc.Salt)
	if err != nil {
		return Credentials{}, fmt.Errorf("invalid salt in %s: %w", f.Path, err)
	}
	box, err := base64.StdEncoding.DecodeString(doc.Sealed)
	if err != nil {
		return Credentials{}, fmt.Errorf("invalid sealed payload in %s: %w", f.Path, err)
	}

	plaintext, err := open(f.passphrase, salt, box)
	if err != nil {
		return Credentials{}, err
	}

	var creds Credentials
	if err := yaml.Unmarshal(plaintext, &creds); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse sealed credentials: %w", err)
	}
	return creds, nil
}

func (f *FileStore) Save(_ context.Context, creds Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc := fileDocument{
		Version:   fileFormatVersion,
		UpdatedAt: f.now().UTC(),
	}

	if len(f.passphrase) == 0 {
		doc.Access = creds.AccessToken
		doc.Refresh = creds.RefreshToken
	} else {
		plaintext, err := yaml.Marshal(creds)
		if err != nil {
			return fmt.Errorf("failed to marshal credentials: %w", err)
		}
		salt, box, err := seal(f.passphrase, plaintext)
		if err != nil {
			return err
		}
		doc.Salt = base64.StdEncoding.EncodeToString(salt)
		doc.Sealed = base64.StdEncoding.EncodeToString(box)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials file: %w", err)
	}

	dir := filepath.Dir(f.Path)
	if err := f.Fs.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp := f.Path + ".tmp"
	if err := afero.WriteFile(f.Fs, tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := f.Fs.Rename(tmp, f.Path); err != nil {
		_ = f.Fs.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", f.Path, err)
	}
	return nil
}

func (f *FileStore) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.Fs.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", f.Path, err)
	}
	return nil
}
