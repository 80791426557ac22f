// Package sqlite implements the persistence client for cereal records.
// The Store is the single gateway to the database: every public CRUD
// operation returns a *types.Response and no driver error escapes its
// boundary.
package sqlite

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/dukaforge/pantry/pkg/types"
)

// Store owns the database handle. The handle is a connection pool; each
// operation runs a single statement or short transaction on its own pooled
// connection and commits before returning, so no cursor or transaction
// state is shared across concurrent requests.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens (or creates) the SQLite database at path.
func Open(path string, log *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}
	return &Store{db: db, log: log}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// InitSchema ensures the cereals table exists. Safe to call on every
// process start.
func (s *Store) InitSchema() error {
	if _, err := s.db.Exec(createCereals); err != nil {
		return fmt.Errorf("create cereals table: %w", err)
	}
	s.log.Debug("schema initialized")
	return nil
}

// failure logs a driver error and converts it to a 500 envelope carrying
// the error text as diagnostic details.
func (s *Store) failure(op string, err error) *types.Response {
	s.log.Error("database operation failed", zap.String("op", op), zap.Error(err))
	return types.NewError("database query failed", http.StatusInternalServerError, err.Error())
}

// placeholders returns n comma-joined bind markers.
func placeholders(n int) string {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = "?"
	}
	return strings.Join(marks, ", ")
}
