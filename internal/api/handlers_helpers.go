// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/vortax/internal/database"
	"github.com/tomtom215/vortax/internal/validation"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes.
//
// Example:
//
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    rw.ValidationError(apiErr.Message, apiErr.Details)
//	    return
//	}
func validateRequest(v interface{}) *validation.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	return validationErr.ToAPIError()
}

// decodeJSON reads a size-limited JSON body into dst. An empty body leaves
// dst untouched so validation can report the missing fields.
func decodeJSON(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return errors.New("request body too large")
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// decodeAndValidate decodes the body into dst and validates it, writing a
// 400 and returning false on failure.
func decodeAndValidate(rw *ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(r, dst); err != nil {
		rw.BadRequest(err.Error())
		return false
	}
	if apiErr := validateRequest(dst); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

// uuidParam reads a URL parameter that must be a UUID, writing a 400 and
// returning false otherwise.
func uuidParam(rw *ResponseWriter, r *http.Request, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if verr := validation.ValidateVar(name, value, "required,uuid"); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return "", false
	}
	return value, true
}

// getIntParam extracts an integer query parameter with a default value
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// getBoolParam reports whether a query parameter is "true" or "1".
func getBoolParam(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && v
}

// writeStoreError maps database sentinels to 404 and 409, everything else to 500.
func writeStoreError(rw *ResponseWriter, err error, notFound, conflict string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		rw.NotFound(notFound)
	case errors.Is(err, database.ErrConflict):
		rw.Conflict(conflict)
	default:
		rw.DatabaseError(err)
	}
}
