package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const credentialsFile = "credentials.yaml"

// Credentials are the stored auth token and the stable per-install device
// id sent with login requests.
type Credentials struct {
	Username string `yaml:"username"`
	Token    string `yaml:"token"`
	DeviceID string `yaml:"device_id"`
}

// LoadCredentials reads stored credentials from dir. A missing file yields
// empty credentials with a freshly generated device id.
func LoadCredentials(dir string) (Credentials, error) {
	data, err := os.ReadFile(filepath.Join(dir, credentialsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return Credentials{DeviceID: uuid.NewString()}, nil
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("read credentials: %w", err)
	}
	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("parse credentials: %w", err)
	}
	if creds.DeviceID == "" {
		creds.DeviceID = uuid.NewString()
	}
	return creds, nil
}

// SaveCredentials writes credentials into dir, readable by the owner only.
func SaveCredentials(dir string, creds Credentials) error {
	data, err := yaml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, credentialsFile), data, 0o600)
}

// ClearCredentials removes the stored credentials file. Clearing when no
// file exists is not an error.
func ClearCredentials(dir string) error {
	err := os.Remove(filepath.Join(dir, credentialsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
