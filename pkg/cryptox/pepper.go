package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadOrCreateKeyFile returns the base64url-encoded key stored at path,
// creating the file with size fresh random bytes when it does not exist.
// The password pepper and the development QR token secret both live in
// files managed this way.
func LoadOrCreateKeyFile(path string, size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("key size must be positive, got %d", size)
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", err
	}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		key := strings.TrimSpace(string(existing))
		if key == "" {
			return "", fmt.Errorf("key file %s is empty", path)
		}
		return key, nil
	case !errors.Is(err, os.ErrNotExist):
		return "", err
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	key := base64.RawURLEncoding.EncodeToString(buf)

	if err := os.WriteFile(path, []byte(key), 0600); err != nil {
		return "", err
	}
	return key, nil
}
