package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	// Create temp directory for test database
	tmpDir, err := os.MkdirTemp("", "mangapress-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := InitDuckDB(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to init DB: %v", err)
	}

	repo := &Repository{db: db}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return repo, cleanup
}

func TestSaveAndListArtifacts(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// Initially empty
	artifacts, err := repo.ListArtifacts()
	if err != nil {
		t.Fatalf("Failed to list artifacts: %v", err)
	}
	if len(artifacts) != 0 {
		t.Errorf("Expected 0 artifacts, got %d", len(artifacts))
	}

	artifact := &Artifact{
		Series: "Test Series",
		Title:  "Volume 1",
		Path:   "/output/Test Series/Volume 1.pdf",
		Format: "pdf",
		Pages:  42,
	}

	if err := repo.SaveArtifact(artifact); err != nil {
		t.Fatalf("Failed to save artifact: %v", err)
	}

	if artifact.ID == "" {
		t.Error("Expected SaveArtifact to assign an ID")
	}
	if artifact.CreatedAt.IsZero() {
		t.Error("Expected SaveArtifact to assign a timestamp")
	}

	artifacts, err = repo.ListArtifacts()
	if err != nil {
		t.Fatalf("Failed to list artifacts: %v", err)
	}
	if len(artifacts) != 1 {
		t.Fatalf("Expected 1 artifact, got %d", len(artifacts))
	}

	got := artifacts[0]
	if got.Series != artifact.Series {
		t.Errorf("Expected Series %q, got %q", artifact.Series, got.Series)
	}
	if got.Pages != 42 {
		t.Errorf("Expected 42 pages, got %d", got.Pages)
	}
	if got.Merged {
		t.Error("Expected Merged to be false")
	}
}

func TestSaveArtifactUpsert(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	artifact := &Artifact{
		ID:     "artifact-1",
		Series: "Series",
		Title:  "Volume 1",
		Path:   "/out/v1.epub",
		Format: "epub",
		Pages:  10,
	}
	repo.SaveArtifact(artifact)

	// Re-encode of the same target replaces the record
	artifact.Pages = 12
	if err := repo.SaveArtifact(artifact); err != nil {
		t.Fatalf("Failed to update artifact: %v", err)
	}

	artifacts, _ := repo.ListArtifacts()
	if len(artifacts) != 1 {
		t.Fatalf("Expected 1 artifact after upsert, got %d", len(artifacts))
	}
	if artifacts[0].Pages != 12 {
		t.Errorf("Expected Pages 12, got %d", artifacts[0].Pages)
	}
}

func TestArtifactsBySeries(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	base := time.Now().Add(-time.Hour)
	records := []*Artifact{
		{ID: "a", Series: "One", Title: "Vol 1", Path: "/o/1", Format: "pdf", CreatedAt: base},
		{ID: "b", Series: "One", Title: "Vol 2", Path: "/o/2", Format: "pdf", CreatedAt: base.Add(time.Minute)},
		{ID: "c", Series: "Two", Title: "Vol 1", Path: "/t/1", Format: "pdf", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "d", Series: "One", Title: "总集", Path: "/o/m", Format: "pdf", Merged: true, CreatedAt: base.Add(3 * time.Minute)},
	}
	for _, a := range records {
		if err := repo.SaveArtifact(a); err != nil {
			t.Fatalf("Failed to save artifact %s: %v", a.ID, err)
		}
	}

	artifacts, err := repo.ArtifactsBySeries("One")
	if err != nil {
		t.Fatalf("Failed to query by series: %v", err)
	}

	if len(artifacts) != 3 {
		t.Fatalf("Expected 3 artifacts for series One, got %d", len(artifacts))
	}

	// Oldest first, merged omnibus last
	if artifacts[0].Title != "Vol 1" {
		t.Errorf("Expected first artifact 'Vol 1', got %q", artifacts[0].Title)
	}
	if !artifacts[2].Merged {
		t.Error("Expected last artifact to be the merged omnibus")
	}
}

func TestDeleteArtifact(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	artifact := &Artifact{Series: "S", Title: "V", Path: "/s/v.pdf", Format: "pdf"}
	repo.SaveArtifact(artifact)

	if err := repo.DeleteArtifact(artifact.ID); err != nil {
		t.Fatalf("Failed to delete artifact: %v", err)
	}

	artifacts, _ := repo.ListArtifacts()
	if len(artifacts) != 0 {
		t.Errorf("Expected 0 artifacts after delete, got %d", len(artifacts))
	}
}
