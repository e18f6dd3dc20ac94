package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDir_EnvOverride(t *testing.T) {
	ResetResolveCache()
	defer ResetResolveCache()
	dir := t.TempDir()
	t.Setenv("ANAGRID_DIR", dir)

	got, err := ResolveDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %s, got %s", dir, got)
	}
}

func TestResolveDir_Cached(t *testing.T) {
	ResetResolveCache()
	defer ResetResolveCache()
	dir := t.TempDir()
	t.Setenv("ANAGRID_DIR", dir)
	first, _ := ResolveDir()

	t.Setenv("ANAGRID_DIR", t.TempDir())
	second, _ := ResolveDir()
	if first != second {
		t.Fatalf("expected cached result %s, got %s", first, second)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := Config{ServerURL: "http://localhost:9999", Theme: "dark", Hints: false}
	if err := Save(dir, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLoad_MalformedConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadCredentials_GeneratesDeviceID(t *testing.T) {
	creds, err := LoadCredentials(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.DeviceID == "" {
		t.Fatal("expected generated device id")
	}
	if creds.Token != "" {
		t.Fatalf("expected empty token, got %q", creds.Token)
	}
}

func TestCredentials_RoundTripAndClear(t *testing.T) {
	dir := t.TempDir()
	want := Credentials{Username: "ada", Token: "tok-1", DeviceID: "dev-1"}
	if err := SaveCredentials(dir, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "credentials.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 perms, got %o", info.Mode().Perm())
	}

	got, err := LoadCredentials(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	if err := ClearCredentials(dir); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := ClearCredentials(dir); err != nil {
		t.Fatalf("second clear should be a no-op, got %v", err)
	}
}
