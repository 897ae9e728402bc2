package gateway

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"skillswap/internal/biddingerrors"
)

// CredentialProvider supplies the bearer token for each request
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed token, handy for tests and service accounts
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	if strings.TrimSpace(string(t)) == "" {
		return "", fmt.Errorf("%w: no token configured", biddingerrors.ErrAuth)
	}
	return string(t), nil
}

// FileTokenStore keeps the token in a file so it survives restarts
type FileTokenStore struct {
	mu   sync.Mutex
	path string
}

// NewFileTokenStore returns a store backed by path. The file need not exist yet.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Token(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: not signed in", biddingerrors.ErrAuth)
	}
	if err != nil {
		return "", fmt.Errorf("%w: read token file: %v", biddingerrors.ErrAuth, err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", fmt.Errorf("%w: token file is empty", biddingerrors.ErrAuth)
	}
	return token, nil
}

// Save writes token, readable only by the current user
func (s *FileTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(strings.TrimSpace(token)+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear signs out by removing the token file
func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
