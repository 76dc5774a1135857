package data

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb/v2"
)

const artifactSchema = `
CREATE TABLE IF NOT EXISTS artifacts (
	id VARCHAR PRIMARY KEY,
	series VARCHAR NOT NULL,
	title VARCHAR NOT NULL,
	path VARCHAR NOT NULL,
	format VARCHAR NOT NULL,
	merged BOOLEAN NOT NULL DEFAULT false,
	pages INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
)`

func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(artifactSchema); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Repository records the artifacts produced by conversion runs.
type Repository struct {
	db *sql.DB
}

var duckDB *sql.DB

func NewDuckDBRepository() *Repository {
	if duckDB == nil {
		db, err := InitDuckDB("mangapress.db")
		if err != nil {
			log.Fatal(err)
		}
		duckDB = db
	}

	return &Repository{db: duckDB}
}

// SaveArtifact upserts an artifact record, filling in ID and timestamp when
// the caller left them empty.
func (r *Repository) SaveArtifact(a *Artifact) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO artifacts (id, series, title, path, format, merged, pages, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Series, a.Title, a.Path, a.Format, a.Merged, a.Pages, a.CreatedAt,
	)
	return err
}

// ListArtifacts returns all recorded artifacts, newest first.
func (r *Repository) ListArtifacts() ([]*Artifact, error) {
	return r.queryArtifacts(
		`SELECT id, series, title, path, format, merged, pages, created_at
		 FROM artifacts ORDER BY created_at DESC, series, title`)
}

// ArtifactsBySeries returns the recorded artifacts of one series, oldest first.
func (r *Repository) ArtifactsBySeries(series string) ([]*Artifact, error) {
	return r.queryArtifacts(
		`SELECT id, series, title, path, format, merged, pages, created_at
		 FROM artifacts WHERE series = ? ORDER BY created_at, title`, series)
}

func (r *Repository) DeleteArtifact(id string) error {
	_, err := r.db.Exec(`DELETE FROM artifacts WHERE id = ?`, id)
	return err
}

func (r *Repository) queryArtifacts(query string, args ...any) ([]*Artifact, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artifacts []*Artifact
	for rows.Next() {
		a := &Artifact{}
		if err := rows.Scan(&a.ID, &a.Series, &a.Title, &a.Path, &a.Format, &a.Merged, &a.Pages, &a.CreatedAt); err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, rows.Err()
}
