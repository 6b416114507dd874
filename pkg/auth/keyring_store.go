package auth

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "romscraper"
	keyringPrefix  = "provider_"
	keyringIndex   = "account_index"
)

// KeyringStore implements CredentialStore using the system keychain
type KeyringStore struct{}

// NewKeyringStore creates a new keyring-based credential store
func NewKeyringStore() (*KeyringStore, error) {
	// Test if keyring is available
	testKey := "test_availability"
	err := keyring.Set(keyringService, testKey, "test")
	if err != nil {
		return nil, fmt.Errorf("keyring not available: %w", err)
	}
	_ = keyring.Delete(keyringService, testKey)

	return &KeyringStore{}, nil
}

// Store saves credentials to the system keychain
func (k *KeyringStore) Store(account *Account) error {
	if account == nil || account.Username == "" {
		return ErrInvalidCredentials
	}

	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}

	key := keyringPrefix + account.Username
	if err := keyring.Set(keyringService, key, string(data)); err != nil {
		return fmt.Errorf("failed to store in keyring: %w", err)
	}

	return k.addToIndex(account.Username)
}

// Retrieve gets credentials from the system keychain
func (k *KeyringStore) Retrieve(username string) (*Account, error) {
	if username == "" {
		return nil, ErrInvalidCredentials
	}

	key := keyringPrefix + username
	data, err := keyring.Get(keyringService, key)
	if err != nil {
		return nil, ErrCredentialsNotFound
	}

	var account Account
	if err := json.Unmarshal([]byte(data), &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &account, nil
}

// List returns all accounts known to the keychain index
func (k *KeyringStore) List() ([]*Account, error) {
	names, err := k.readIndex()
	if err != nil {
		return []*Account{}, nil
	}

	var accounts []*Account
	for _, name := range names {
		if account, err := k.Retrieve(name); err == nil {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

// Delete removes credentials from the system keychain
func (k *KeyringStore) Delete(username string) error {
	if username == "" {
		return ErrInvalidCredentials
	}

	key := keyringPrefix + username
	if err := keyring.Delete(keyringService, key); err != nil {
		return ErrCredentialsNotFound
	}

	return k.removeFromIndex(username)
}

// Exists checks if credentials exist for a username
func (k *KeyringStore) Exists(username string) bool {
	_, err := k.Retrieve(username)
	return err == nil
}

// The keyring has no enumeration API, so account names are tracked in a
// separate index entry.
func (k *KeyringStore) readIndex() ([]string, error) {
	data, err := keyring.Get(keyringService, keyringIndex)
	if err != nil || data == "" {
		return nil, err
	}
	return strings.Split(data, ","), nil
}

func (k *KeyringStore) addToIndex(username string) error {
	names, _ := k.readIndex()
	for _, name := range names {
		if name == username {
			return nil
		}
	}
	names = append(names, username)
	return keyring.Set(keyringService, keyringIndex, strings.Join(names, ","))
}

func (k *KeyringStore) removeFromIndex(username string) error {
	names, err := k.readIndex()
	if err != nil {
		return nil
	}
	var kept []string
	for _, name := range names {
		if name != username {
			kept = append(kept, name)
		}
	}
	if len(kept) == 0 {
		return keyring.Delete(keyringService, keyringIndex)
	}
	return keyring.Set(keyringService, keyringIndex, strings.Join(kept, ","))
}
