package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"samadhan-setu/services/reel-api/internal/config"
)

func newTestLocalStorage(t *testing.T, baseURL string) *LocalStorage {
	t.Helper()
	cfg := &config.Config{
		LocalStoragePath:    t.TempDir(),
		LocalStorageBaseURL: baseURL,
	}
	storage, err := NewLocalStorage(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return storage
}

func TestLocalStorageUploadAndPublicURL(t *testing.T) {
	storage := newTestLocalStorage(t, "http://localhost:8190/files/")

	err := storage.Upload(context.Background(), "reel_1.mp4", bytes.NewReader([]byte("payload")), 7, "video/mp4")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(storage.basePath, "reel_1.mp4"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("Stored content %q, want %q", data, "payload")
	}

	url, ok := storage.PublicURL("reel_1.mp4")
	if !ok {
		t.Fatal("Expected public URL")
	}
	if url != "http://localhost:8190/files/reel_1.mp4" {
		t.Errorf("Unexpected URL %q", url)
	}
}

func TestLocalStorageUploadOverwrites(t *testing.T) {
	storage := newTestLocalStorage(t, "http://localhost:8190/files")
	ctx := context.Background()

	if err := storage.Upload(ctx, "reel_2.mp4", bytes.NewReader([]byte("one")), 3, "video/mp4"); err != nil {
		t.Fatalf("first Upload: %v", err)
	}
	if err := storage.Upload(ctx, "reel_2.mp4", bytes.NewReader([]byte("two")), 3, "video/mp4"); err != nil {
		t.Fatalf("second Upload: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(storage.basePath, "reel_2.mp4"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "two" {
		t.Errorf("Expected overwrite with %q, got %q", "two", data)
	}

	firstURL, _ := storage.PublicURL("reel_2.mp4")
	secondURL, _ := storage.PublicURL("reel_2.mp4")
	if firstURL != secondURL {
		t.Errorf("Re-upload must keep the same URL: %q vs %q", firstURL, secondURL)
	}
}

func TestLocalStorageDisabledWithoutPath(t *testing.T) {
	storage, err := NewLocalStorage(&config.Config{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if err := storage.Upload(context.Background(), "k", bytes.NewReader(nil), 0, "video/mp4"); err == nil {
		t.Error("Expected upload to fail when storage is disabled")
	}
	if _, ok := storage.PublicURL("k"); ok {
		t.Error("Expected no public URL when storage is disabled")
	}
}

func TestLocalStoragePublicURLRequiresBaseURL(t *testing.T) {
	storage := newTestLocalStorage(t, "")

	if err := storage.Upload(context.Background(), "reel_3.mp4", bytes.NewReader([]byte("x")), 1, "video/mp4"); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if _, ok := storage.PublicURL("reel_3.mp4"); ok {
		t.Error("Expected no public URL without a configured base URL")
	}
}
