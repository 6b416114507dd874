package auth

import (
	"os"
	"time"
)

// EnvironmentStore implements CredentialStore using environment variables.
// Read-only; useful for CI and scripted runs.
type EnvironmentStore struct{}

// NewEnvironmentStore creates a new environment-based credential store
func NewEnvironmentStore() *EnvironmentStore {
	return &EnvironmentStore{}
}

// Store is not supported for environment variables
func (e *EnvironmentStore) Store(account *Account) error {
	return ErrStoreUnavailable
}

// Retrieve gets credentials from environment variables
func (e *EnvironmentStore) Retrieve(username string) (*Account, error) {
	userID := os.Getenv("ROMSCRAPER_USER_ID")
	userPass := os.Getenv("ROMSCRAPER_USER_PASSWORD")

	if userID == "" || userPass == "" {
		return nil, ErrCredentialsNotFound
	}

	if username != "" && username != userID {
		return nil, ErrCredentialsNotFound
	}

	return &Account{
		Username:     userID,
		Password:     userPass,
		LastModified: time.Now(),
	}, nil
}

// List returns a single account if environment variables are set
func (e *EnvironmentStore) List() ([]*Account, error) {
	account, err := e.Retrieve("")
	if err != nil {
		return []*Account{}, nil
	}
	return []*Account{account}, nil
}

// Delete is not supported for environment variables
func (e *EnvironmentStore) Delete(username string) error {
	return ErrStoreUnavailable
}

// Exists checks if environment credentials exist
func (e *EnvironmentStore) Exists(username string) bool {
	_, err := e.Retrieve(username)
	return err == nil
}
