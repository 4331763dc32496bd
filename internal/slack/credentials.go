// Package slack provides Slack Web API integration: token loading and a
// client for the channel, history and delete calls slack-purge needs.
package slack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidToken is returned when the token file is missing or empty, or
// when Slack rejects the token.
var ErrInvalidToken = errors.New("invalid token")

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// LoadCredentials reads the token stored at path. The whole file, trimmed,
// is the token. No network call is made; validate with Client.AuthTest.
func LoadCredentials(path string) (*Credentials, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(expanded)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: no token file at %s", ErrInvalidToken, expanded)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("reading token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return nil, fmt.Errorf("%w: token file %s is empty", ErrInvalidToken, expanded)
	}

	return &Credentials{Token: token}, nil
}
