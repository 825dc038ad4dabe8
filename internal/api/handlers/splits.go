package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/settleup/settleup/internal/api/dto"
	"github.com/settleup/settleup/internal/api/middleware"
	"github.com/settleup/settleup/internal/cache"
	"github.com/settleup/settleup/internal/engine"
	"github.com/settleup/settleup/internal/metrics"
	"github.com/settleup/settleup/internal/models"
	"github.com/settleup/settleup/internal/storage"
)

// SplitsHandler handles split CRUD. Settlements are recomputed on every
// write and persisted alongside the contributor list; reads serve the
// stored copy, shortcut by the cache when one is configured.
type SplitsHandler struct {
	store storage.Store
	cache cache.Cache
}

// NewSplitsHandler creates a new splits handler.
func NewSplitsHandler(store storage.Store, c cache.Cache) *SplitsHandler {
	return &SplitsHandler{store: store, cache: c}
}

// cacheKey scopes cached split views to their owner, so the ownership
// check cannot be bypassed by a cache hit.
func cacheKey(splitID, userID string) string {
	return fmt.Sprintf("split:%s:%s", splitID, userID)
}

// Create handles POST /api/splits.
func (h *SplitsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSplitRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, dto.CodeInvalidRequest, "invalid request body")
		return
	}

	if err := validateContributors(req.Contributors, true); err != nil {
		WriteError(w, http.StatusBadRequest, dto.CodeInvalidRequest, err.Error())
		return
	}

	transfers := engine.Settle(toEngineContributors(req.Contributors))
	metrics.SettlementsComputed.Inc()
	metrics.TransfersPerSettlement.Observe(float64(len(transfers)))

	split := &models.Split{
		Title:        req.Title,
		Currency:     req.Currency,
		Contributors: toModelContributors(req.Contributors),
		Transfers:    toModelTransfers(transfers),
		CreatedBy:    middleware.GetUserID(r.Context()),
	}

	if err := h.store.CreateSplit(r.Context(), split); err != nil {
		slog.Error("CreateSplit failed", "error", err)
		WriteError(w, http.StatusInternalServerError, dto.CodeInternal, "failed to create split")
		return
	}

	WriteJSON(w, http.StatusCreated, splitToResponse(split))
}

// Get handles GET /api/splits/{id}.
func (h *SplitsHandler) Get(w http.ResponseWriter, r *http.Request) {
	splitID := chi.URLParam(r, "id")
	userID := middleware.GetUserID(r.Context())

	if cached, ok := h.cache.Get(r.Context(), cacheKey(splitID, userID)); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(cached))
		return
	}

	split, ok := h.loadOwned(w, r, splitID)
	if !ok {
		return
	}

	resp := splitToResponse(split)
	if body, err := json.Marshal(resp); err == nil {
		if err := h.cache.Set(r.Context(), cacheKey(splitID, userID), string(body)); err != nil {
			slog.Warn("failed to cache split view", "split_id", splitID, "error", err)
		}
	}

	WriteJSON(w, http.StatusOK, resp)
}

// List handles GET /api/splits.
func (h *SplitsHandler) List(w http.ResponseWriter, r *http.Request) {
	splits, err := h.store.ListSplits(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		slog.Error("ListSplits failed", "error", err)
		WriteError(w, http.StatusInternalServerError, dto.CodeInternal, "failed to list splits")
		return
	}

	summaries := make([]dto.SplitSummary, len(splits))
	for i, split := range splits {
		summaries[i] = splitToSummary(split)
	}

	WriteJSON(w, http.StatusOK, dto.ListSplitsResponse{Splits: summaries})
}

// Update handles PUT /api/splits/{id}. The settlement is recomputed
// from the new contributor list and the stored copy replaced.
func (h *SplitsHandler) Update(w http.ResponseWriter, r *http.Request) {
	splitID := chi.URLParam(r, "id")

	var req dto.UpdateSplitRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, dto.CodeInvalidRequest, "invalid request body")
		return
	}

	if err := validateContributors(req.Contributors, true); err != nil {
		WriteError(w, http.StatusBadRequest, dto.CodeInvalidRequest, err.Error())
		return
	}

	existing, ok := h.loadOwned(w, r, splitID)
	if !ok {
		return
	}

	transfers := engine.Settle(toEngineContributors(req.Contributors))
	metrics.SettlementsComputed.Inc()
	metrics.TransfersPerSettlement.Observe(float64(len(transfers)))

	split := &models.Split{
		ID:           existing.ID,
		Title:        req.Title,
		Currency:     req.Currency,
		Contributors: toModelContributors(req.Contributors),
		Transfers:    toModelTransfers(transfers),
		CreatedAt:    existing.CreatedAt,
		CreatedBy:    existing.CreatedBy,
	}

	if err := h.store.UpdateSplit(r.Context(), split); err != nil {
		slog.Error("UpdateSplit failed", "split_id", splitID, "error", err)
		WriteError(w, http.StatusInternalServerError, dto.CodeInternal, "failed to update split")
		return
	}

	h.invalidate(r, splitID, existing.CreatedBy)

	WriteJSON(w, http.StatusOK, splitToResponse(split))
}

// Delete handles DELETE /api/splits/{id}.
func (h *SplitsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	splitID := chi.URLParam(r, "id")

	existing, ok := h.loadOwned(w, r, splitID)
	if !ok {
		return
	}

	if err := h.store.DeleteSplit(r.Context(), splitID); err != nil {
		slog.Error("DeleteSplit failed", "split_id", splitID, "error", err)
		WriteError(w, http.StatusInternalServerError, dto.CodeInternal, "failed to delete split")
		return
	}

	h.invalidate(r, splitID, existing.CreatedBy)

	w.WriteHeader(http.StatusNoContent)
}

// loadOwned fetches a split and enforces that the caller owns it,
// writing the error response itself on failure.
func (h *SplitsHandler) loadOwned(w http.ResponseWriter, r *http.Request, splitID string) (*models.Split, bool) {
	split, err := h.store.GetSplit(r.Context(), splitID)
	if errors.Is(err, storage.ErrNotFound) {
		WriteError(w, http.StatusNotFound, dto.CodeNotFound, "split not found")
		return nil, false
	}
	if err != nil {
		slog.Error("GetSplit failed", "split_id", splitID, "error", err)
		WriteError(w, http.StatusInternalServerError, dto.CodeInternal, "failed to load split")
		return nil, false
	}

	if split.CreatedBy != middleware.GetUserID(r.Context()) {
		WriteError(w, http.StatusForbidden, dto.CodeForbidden, "you do not own this split")
		return nil, false
	}

	return split, true
}

func (h *SplitsHandler) invalidate(r *http.Request, splitID, ownerID string) {
	if err := h.cache.Delete(r.Context(), cacheKey(splitID, ownerID)); err != nil {
		slog.Warn("failed to invalidate split cache", "split_id", splitID, "error", err)
	}
}
