package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return s
}

func TestSave_WritesAndReportsAsset(t *testing.T) {
	s := newTestStore(t)

	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02, 0x03}
	asset, err := s.Save(context.Background(), CategoryImages, "photo.jpg", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if asset.Size != int64(len(payload)) {
		t.Fatalf("Expected size %d, got %d", len(payload), asset.Size)
	}
	if !strings.HasSuffix(asset.Filename, ".jpg") {
		t.Fatalf("Expected .jpg extension, got %s", asset.Filename)
	}
	if asset.PublicPath != "/uploads/images/"+asset.Filename {
		t.Fatalf("Unexpected public path: %s", asset.PublicPath)
	}

	written, err := os.ReadFile(filepath.Join(s.root, CategoryImages, asset.Filename))
	if err != nil {
		t.Fatalf("Asset not written to disk: %v", err)
	}
	if !bytes.Equal(written, payload) {
		t.Fatal("Written bytes differ from payload")
	}
}

func TestSave_NoOverwriteOnRepeatUpload(t *testing.T) {
	s := newTestStore(t)

	payload := []byte("same content twice")
	a1, err := s.Save(context.Background(), CategoryVideos, "clip.mp4", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	a2, err := s.Save(context.Background(), CategoryVideos, "clip.mp4", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if a1.Filename == a2.Filename {
		t.Fatalf("Re-upload must produce a distinct filename, both were %s", a1.Filename)
	}

	assets, err := s.List(context.Background(), CategoryVideos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("Expected 2 stored assets, got %d", len(assets))
	}
}

func TestSave_AbortsOnCancelledContext(t *testing.T) {
	s := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Save(ctx, CategoryVideos, "clip.mp4", bytes.NewReader(bytes.Repeat([]byte("x"), 1024)))
	if err == nil {
		t.Fatal("Expected error for cancelled context")
	}

	// No temp or final files may survive an aborted write.
	entries, _ := os.ReadDir(filepath.Join(s.root, CategoryVideos))
	if len(entries) != 0 {
		t.Fatalf("Expected no files after aborted save, found %d", len(entries))
	}
}

func TestList_EmptyCategory(t *testing.T) {
	s := newTestStore(t)

	assets, err := s.List(context.Background(), CategoryRawImages)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(assets) != 0 {
		t.Fatalf("Expected no assets, got %d", len(assets))
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	asset, err := s.Save(context.Background(), CategoryVideos, "clip.mp4", strings.NewReader("video bytes"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := s.Delete(context.Background(), CategoryVideos, asset.Filename); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	assets, _ := s.List(context.Background(), CategoryVideos)
	if len(assets) != 0 {
		t.Fatal("Expected asset to be deleted")
	}

	// Deleting again is benign.
	if err := s.Delete(context.Background(), CategoryVideos, asset.Filename); err != nil {
		t.Fatalf("Deleting a missing file must not error: %v", err)
	}

	// Path traversal is rejected.
	if err := s.Delete(context.Background(), CategoryVideos, "../outside.txt"); err == nil {
		t.Fatal("Expected traversal filename to be rejected")
	}
}

func TestGenerateFilename_Shape(t *testing.T) {
	name := GenerateFilename("My Video.MP4")
	if !strings.HasSuffix(name, ".mp4") {
		t.Fatalf("Expected lowercase extension, got %s", name)
	}
	if !strings.Contains(name, "-") {
		t.Fatalf("Expected timestamp-suffix shape, got %s", name)
	}
	// Two names generated back to back must differ.
	time.Sleep(time.Millisecond)
	if other := GenerateFilename("My Video.MP4"); other == name {
		t.Fatal("Expected distinct generated filenames")
	}
}
