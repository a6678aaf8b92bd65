// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package validation

import (
	"strings"
	"testing"
)

type createUserForm struct {
	Username string `validate:"required,min=1,max=64,username"`
}

type createPostForm struct {
	Title     string   `validate:"required,min=1,max=256"`
	CreatorID int64    `validate:"required,gt=0"`
	Tags      []string `validate:"max=16,dive,min=1,max=64"`
}

func TestValidateStructPass(t *testing.T) {
	form := createPostForm{
		Title:     "Ramen guide",
		CreatorID: 1,
		Tags:      []string{"food", "travel"},
	}
	if err := ValidateStruct(&form); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestValidateStructSingleError(t *testing.T) {
	form := createPostForm{CreatorID: 1}
	err := ValidateStruct(&form)
	if err == nil {
		t.Fatal("expected validation error for empty title")
	}
	if len(err.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "Title is required" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Title is required")
	}
	if apiErr.Details["field"] != "Title" {
		t.Errorf("Details[field] = %v, want Title", apiErr.Details["field"])
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	form := createPostForm{}
	err := ValidateStruct(&form)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if !strings.Contains(apiErr.Message, "Title") || !strings.Contains(apiErr.Message, "CreatorID") {
		t.Errorf("combined message missing fields: %q", apiErr.Message)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("expected fields list in details")
	}
}

func TestValidateStructDive(t *testing.T) {
	form := createPostForm{
		Title:     "ok",
		CreatorID: 1,
		Tags:      []string{"food", ""},
	}
	err := ValidateStruct(&form)
	if err == nil {
		t.Fatal("expected error for empty tag")
	}
	if got := err.Errors()[0].Tag(); got != "min" {
		t.Errorf("Tag() = %q, want min", got)
	}
}

func TestUsernameValidator(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"plain", "alice", false},
		{"with separators", "bob_the.builder-2", false},
		{"spaces rejected", "alice smith", true},
		{"slash rejected", "alice/admin", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&createUserForm{Username: tt.username})
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestTranslateMessages(t *testing.T) {
	type bounds struct {
		Limit int `validate:"gte=1,lte=100"`
	}
	err := ValidateStruct(&bounds{Limit: 500})
	if err == nil {
		t.Fatal("expected error")
	}
	want := "Limit must be less than or equal to 100"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
