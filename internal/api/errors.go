// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package api

import (
	"errors"
	"net/http"

	"github.com/humdov/postfeed/internal/database"
	"github.com/humdov/postfeed/internal/feed"
)

// API error codes.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeInvalidLimit  = "INVALID_LIMIT"
	CodeNotFound      = "NOT_FOUND"
	CodeUserNotFound  = "USER_NOT_FOUND"
	CodePostNotFound  = "POST_NOT_FOUND"
	CodeDuplicate     = "DUPLICATE"
	CodeDatabaseError = "DATABASE_ERROR"
)

// respondDomainError maps storage and ranking errors to HTTP
// responses. Unknown errors become a 500 with no internal detail
// leaked to the client.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, feed.ErrInvalidLimit):
		respondError(w, http.StatusBadRequest, CodeInvalidLimit, "Limit must be a positive integer", nil)
	case errors.Is(err, feed.ErrUserNotFound):
		respondError(w, http.StatusNotFound, CodeUserNotFound, "User not found", nil)
	case errors.Is(err, database.ErrDuplicate):
		respondError(w, http.StatusConflict, CodeDuplicate, "Resource already exists", nil)
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, CodeNotFound, "Resource not found", nil)
	default:
		respondError(w, http.StatusInternalServerError, CodeDatabaseError, "Internal storage error", err)
	}
}
