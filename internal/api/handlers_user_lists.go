// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package api

import (
	"net/http"

	"github.com/tomtom215/vortax/internal/metrics"
	"github.com/tomtom215/vortax/internal/models"
)

const (
	listWatchlist = "watchlist"
	listHistory   = "history"

	msgItemNotFound  = "Item not found"
	msgEntryNotFound = "Entry not found"
	msgDuplicateItem = "Item is already in the watchlist"
)

// ClearResult reports how many entries a clear removed.
type ClearResult struct {
	Removed int64 `json:"removed"`
}

// userListBody decodes the {itemId, type} body shared by both lists.
func userListBody(rw *ResponseWriter, r *http.Request) (string, models.ItemKind, bool) {
	var req UserListRequest
	if !decodeAndValidate(rw, r, &req) {
		return "", "", false
	}
	kind, _ := models.ParseItemKind(req.Type)
	return req.ItemID, kind, true
}

// GetWatchlist lists a user's watchlist, newest first.
//
// @Summary Get a user's watchlist
// @Tags User Lists
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} APIResponse{data=[]models.WatchlistEntry}
// @Router /users/{userID}/watchlist [get]
func (h *Handler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, ok := uuidParam(rw, r, "userID")
	if !ok {
		return
	}

	entries, err := h.db.GetWatchlist(r.Context(), userID)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	if entries == nil {
		entries = []models.WatchlistEntry{}
	}
	rw.Success(entries)
}

// AddToWatchlist adds a catalog item to a user's watchlist.
//
// @Summary Add to watchlist
// @Tags User Lists
// @Accept json
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Param request body UserListRequest true "Item reference"
// @Success 201 {object} APIResponse{data=models.WatchlistEntry}
// @Failure 404 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /users/{userID}/watchlist [post]
func (h *Handler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, ok := uuidParam(rw, r, "userID")
	if !ok {
		return
	}
	itemID, kind, ok := userListBody(rw, r)
	if !ok {
		return
	}

	entry, err := h.db.AddToWatchlist(r.Context(), userID, itemID, kind)
	if err != nil {
		writeStoreError(rw, err, msgItemNotFound, msgDuplicateItem)
		return
	}
	metrics.RecordWatchEvent(listWatchlist, "add")
	rw.Created(entry)
}

// RemoveFromWatchlist removes one item from a user's watchlist.
//
// @Summary Remove from watchlist
// @Tags User Lists
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Param itemID path string true "Item ID (UUID)"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /users/{userID}/watchlist/{itemID} [delete]
func (h *Handler) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, ok := uuidParam(rw, r, "userID")
	if !ok {
		return
	}
	itemID, ok := uuidParam(rw, r, "itemID")
	if !ok {
		return
	}

	if err := h.db.RemoveFromWatchlist(r.Context(), userID, itemID); err != nil {
		writeStoreError(rw, err, msgEntryNotFound, "")
		return
	}
	metrics.RecordWatchEvent(listWatchlist, "remove")
	rw.Success(map[string]string{"message": "Removed from watchlist", "itemId": itemID})
}

// ClearWatchlist removes every entry of a user's watchlist.
//
// @Summary Clear watchlist
// @Tags User Lists
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} APIResponse{data=ClearResult}
// @Router /users/{userID}/watchlist [delete]
func (h *Handler) ClearWatchlist(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, ok := uuidParam(rw, r, "userID")
	if !ok {
		return
	}

	n, err := h.db.ClearWatchlist(r.Context(), userID)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	metrics.RecordWatchEvent(listWatchlist, "clear")
	rw.Success(ClearResult{Removed: n})
}

// GetHistory lists a user's watch history, newest first.
//
// @Summary Get a user's watch history
// @Tags User Lists
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} APIResponse{data=[]models.HistoryEntry}
// @Router /users/{userID}/history [get]
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, ok := uuidParam(rw, r, "userID")
	if !ok {
		return
	}

	entries, err := h.db.GetHistory(r.Context(), userID)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	rw.Success(entries)
}

// RecordWatch marks an item as watched now.
//
// @Summary Record a watch
// @Tags User Lists
// @Accept json
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Param request body UserListRequest true "Item reference"
// @Success 201 {object} APIResponse{data=models.HistoryEntry}
// @Failure 404 {object} APIResponse
// @Router /users/{userID}/history [post]
func (h *Handler) RecordWatch(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, ok := uuidParam(rw, r, "userID")
	if !ok {
		return
	}
	itemID, kind, ok := userListBody(rw, r)
	if !ok {
		return
	}

	entry, err := h.db.RecordWatch(r.Context(), userID, itemID, kind)
	if err != nil {
		writeStoreError(rw, err, msgItemNotFound, "")
		return
	}
	metrics.RecordWatchEvent(listHistory, "add")
	rw.Created(entry)
}

// RemoveFromHistory removes one item from a user's watch history.
//
// @Summary Remove from history
// @Tags User Lists
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Param itemID path string true "Item ID (UUID)"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /users/{userID}/history/{itemID} [delete]
func (h *Handler) RemoveFromHistory(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, ok := uuidParam(rw, r, "userID")
	if !ok {
		return
	}
	itemID, ok := uuidParam(rw, r, "itemID")
	if !ok {
		return
	}

	if err := h.db.RemoveFromHistory(r.Context(), userID, itemID); err != nil {
		writeStoreError(rw, err, msgEntryNotFound, "")
		return
	}
	metrics.RecordWatchEvent(listHistory, "remove")
	rw.Success(map[string]string{"message": "Removed from history", "itemId": itemID})
}

// ClearHistory removes a user's whole watch history.
//
// @Summary Clear history
// @Tags User Lists
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} APIResponse{data=ClearResult}
// @Router /users/{userID}/history [delete]
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, ok := uuidParam(rw, r, "userID")
	if !ok {
		return
	}

	n, err := h.db.ClearHistory(r.Context(), userID)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	metrics.RecordWatchEvent(listHistory, "clear")
	rw.Success(ClearResult{Removed: n})
}

// PersonalRecommendations builds the "for you" section from a user's lists.
//
// @Summary Personal recommendations
// @Description Picks unwatched titles from the user's top genres, or recent titles for a new user
// @Tags Recommendations
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} APIResponse{data=models.PersonalRecommendations}
// @Router /users/{userID}/recommendations [get]
func (h *Handler) PersonalRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, ok := uuidParam(rw, r, "userID")
	if !ok {
		return
	}

	recs, err := h.personal.Build(r.Context(), userID)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	rw.Success(recs)
}
