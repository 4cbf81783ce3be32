package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	return s
}

func TestUploadAndPublicURL(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	url, err := s.Upload(ctx, "site-logs/a.jpg", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "/uploads/site-logs/a.jpg" {
		t.Errorf("Upload url = %s", url)
	}

	data, err := os.ReadFile(filepath.Join(s.Dir(), "site-logs", "a.jpg"))
	if err != nil {
		t.Fatalf("stored object missing: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestPathFromURL(t *testing.T) {
	s := newTestStore(t)

	p, ok := s.PathFromURL("/uploads/site-logs/a.jpg")
	if !ok || p != "site-logs/a.jpg" {
		t.Errorf("PathFromURL = %q, %v", p, ok)
	}
	if _, ok := s.PathFromURL("https://elsewhere.example/a.jpg"); ok {
		t.Error("foreign URL accepted")
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Upload(ctx, "site-logs/b.png", strings.NewReader("png")); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if err := s.Remove(ctx, []string{"site-logs/b.png"}); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.Dir(), "site-logs", "b.png")); !os.IsNotExist(err) {
		t.Error("object still present after Remove")
	}

	// Removing a missing object is not an error.
	if err := s.Remove(ctx, []string{"site-logs/b.png"}); err != nil {
		t.Errorf("Remove of missing object: %v", err)
	}
}

func TestUploadRejectsTraversal(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Upload(ctx, "../escape.txt", strings.NewReader("x")); err == nil {
		t.Error("traversal path accepted")
	}
	if _, err := s.Upload(ctx, "", strings.NewReader("x")); err == nil {
		t.Error("empty path accepted")
	}
}
