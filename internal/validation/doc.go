// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

// Package validation wraps go-playground/validator/v10 behind a process-wide
// singleton and translates its errors into VALIDATION_ERROR payloads.
//
// Field names in messages come from json struct tags, so a failure on
//
//	type AddWatchlistRequest struct {
//	    ItemID string `json:"itemId" validate:"required,uuid"`
//	}
//
// reads "itemId must be a valid UUID".
//
// Custom tags:
//   - notblank: string is non-empty after trimming whitespace
//   - genrename: lowercase letters with single inner spaces ("science fiction")
//
// Path and query parameters are checked with ValidateVar:
//
//	if verr := validation.ValidateVar("id", chi.URLParam(r, "id"), "required,uuid"); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    rw.ValidationError(apiErr.Message, apiErr.Details)
//	    return
//	}
package validation
