package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorStatusField(t *testing.T) {
	if got := NewNotFound("").Status(); got != "fail" {
		t.Fatalf("4xx should be fail, got %s", got)
	}
	if got := NewInternal("").Status(); got != "error" {
		t.Fatalf("5xx should be error, got %s", got)
	}
}

func TestConstructorsFixStatusCodes(t *testing.T) {
	cases := []struct {
		err  *Error
		code int
	}{
		{NewBadRequest(""), http.StatusBadRequest},
		{NewValidation(""), http.StatusUnprocessableEntity},
		{NewCast(""), http.StatusBadRequest},
		{NewDuplicate(""), http.StatusConflict},
		{NewNotFound(""), http.StatusNotFound},
		{NewUnauthenticated(""), http.StatusUnauthorized},
		{NewUnauthorized(""), http.StatusForbidden},
		{NewInternal(""), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if tc.err.Code != tc.code {
			t.Fatalf("kind %s: expected %d, got %d", tc.err.Kind, tc.code, tc.err.Code)
		}
		if tc.err.Message == "" {
			t.Fatalf("kind %s: empty default message", tc.err.Kind)
		}
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	inner := NewNotFound("No tour found with that ID")
	wrapped := fmt.Errorf("find tour: %w", inner)

	if !IsKind(wrapped, KindNotFound) {
		t.Fatalf("kind lost through wrapping")
	}
	if IsKind(wrapped, KindDuplicate) {
		t.Fatalf("wrong kind matched")
	}
	if IsOperational(errors.New("raw")) {
		t.Fatalf("raw error treated as operational")
	}
}
