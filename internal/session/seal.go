package session

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	sealSaltSize = 16

	argonTime    = 2
	argonMemory  = 19 * 1024
	argonThreads = 1
)

var ErrBadPassphrase = errors.New("credentials could not be decrypted with the configured passphrase")

func deriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
}

// seal encrypts plaintext with XChaCha20-Poly1305 under a key derived from
// passphrase. The returned box is nonce||ciphertext.
func seal(passphrase, plaintext []byte) (salt, box []byte, err error) {
	salt = make([]byte, sealSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	aead, err := chacha20poly1305.NewX(deriveKey(passphrase, salt))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return salt, aead.Seal(nonce, nonce, plaintext, nil), nil
}

func open(passphrase, salt, box []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	if len(box) < aead.NonceSize() {
		return nil, ErrBadPassphrase
	}

	nonce, ciphertext := box[:aead.NonceSize()], box[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrBadPassphrase
	}
	return plaintext, nil
}
