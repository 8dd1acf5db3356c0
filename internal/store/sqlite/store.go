// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"log"

	_ "modernc.org/sqlite"

	"github.com/battlegrid/bf42con/internal/stdlib"
)

//go:embed schema.sql
var schemaDDL string

// Store wraps a SQLite connection holding a dumped WorldData.
type Store struct {
	path string
	db   *sql.DB
	ctx  context.Context
}

// Create creates a new, empty database at path and runs the embedded
// schema against it. Returns ErrDatabaseExists if a file is already
// there; the caller must remove it first to start fresh.
func Create(ctx context.Context, path string) (*Store, error) {
	if ok, err := stdlib.IsFileExists(path); err != nil {
		log.Printf("sqlite: create: %q: %v\n", path, err)
		return nil, err
	} else if ok {
		log.Printf("sqlite: create: %q: %s\n", path, "database already exists")
		return nil, ErrDatabaseExists
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("sqlite: create: %v\n", err)
		return nil, err
	}

	if err := enableForeignKeys(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		_ = db.Close()
		log.Printf("sqlite: create: failed to initialize schema: %v\n", err)
		return nil, errors.Join(ErrCreateSchema, err)
	}

	log.Printf("sqlite: create: created %s\n", path)
	return &Store{path: path, db: db, ctx: ctx}, nil
}

// Open opens an existing database at path. Returns ErrInvalidPath if the
// file doesn't exist.
func Open(ctx context.Context, path string) (*Store, error) {
	if ok, err := stdlib.IsFileExists(path); err != nil {
		log.Printf("sqlite: open: %q: %v\n", path, err)
		return nil, err
	} else if !ok {
		log.Printf("sqlite: open: %q: %s\n", path, "not a database")
		return nil, ErrInvalidPath
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("sqlite: open: %s: %v\n", path, err)
		return nil, err
	}
	if err := enableForeignKeys(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{path: path, db: db, ctx: ctx}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func enableForeignKeys(db *sql.DB) error {
	if rslt, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		log.Printf("sqlite: foreign keys are disabled\n")
		return ErrForeignKeysDisabled
	} else if rslt == nil {
		log.Printf("sqlite: foreign keys pragma failed\n")
		return ErrPragmaReturnedNil
	}
	return nil
}
