// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/humdov/postfeed/internal/metrics"
	"github.com/humdov/postfeed/internal/models"
)

// CreateUser inserts a user and returns it with the assigned ID.
// A duplicate username fails with ErrDuplicate.
func (db *DB) CreateUser(ctx context.Context, username string) (*models.User, error) {
	start := time.Now()
	createdAt := time.Now().UTC()

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (username, created_at) VALUES (?, ?)`,
		username, createdAt.UnixNano(),
	)
	metrics.RecordDBQuery("INSERT", "users", time.Since(start), err)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("username %q: %w", username, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read user id: %w", err)
	}

	return &models.User{ID: id, Username: username, CreatedAt: createdAt}, nil
}

// GetUser returns the user with the given ID, ErrNotFound if absent.
func (db *DB) GetUser(ctx context.Context, id int64) (*models.User, error) {
	start := time.Now()
	var u models.User
	var createdAt int64
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, username, created_at FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Username, &createdAt)
	metrics.RecordDBQuery("SELECT", "users", time.Since(start), err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	u.CreatedAt = time.Unix(0, createdAt).UTC()
	return &u, nil
}

// ListUsers returns all users ordered by ID.
func (db *DB) ListUsers(ctx context.Context) ([]models.User, error) {
	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, username, created_at FROM users ORDER BY id`)
	metrics.RecordDBQuery("SELECT", "users", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		var createdAt int64
		if err := rows.Scan(&u.ID, &u.Username, &createdAt); err != nil {
			return nil, err
		}
		u.CreatedAt = time.Unix(0, createdAt).UTC()
		users = append(users, u)
	}
	return users, rows.Err()
}

// userExists reports whether the user ID is present.
func (db *DB) userExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := db.conn.QueryRowContext(ctx,
		`SELECT 1 FROM users WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return true, nil
}
