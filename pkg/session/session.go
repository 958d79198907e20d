// Package session persists the signed-in employee's credentials between
// CLI invocations. It is the single owner of the "who am I" state: commands
// load it once at startup and hand the employee snapshot down by value.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shiftbridge/swapboard/pkg/core/model"
)

// ErrNotSignedIn is returned when no stored session exists
var ErrNotSignedIn = errors.New("not signed in - run the login command first")

// Session holds the bearer token and the employee profile snapshot returned
// at login. The token is opaque and replayed verbatim on every API call.
type Session struct {
	Token    string         `json:"token"`
	Employee model.Employee `json:"employee"`
}

// Store reads and writes the session file
type Store struct {
	path string
}

// DefaultPath returns the default session file location under the user's
// config directory
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(configDir, "swapboard", "session.json"), nil
}

// NewStore creates a session store at the given path, or at the default
// location when path is empty
func NewStore(path string) (*Store, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	return &Store{path: path}, nil
}

// Load reads the stored session. A missing file or an empty token is
// reported as ErrNotSignedIn.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotSignedIn
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}

	if sess.Token == "" {
		return nil, ErrNotSignedIn
	}

	return &sess, nil
}

// Save writes the session to disk. The file is created 0600 since it holds
// a live credential.
func (s *Store) Save(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Clear removes the stored session. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
