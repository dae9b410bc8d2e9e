// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/buildmyrig/internal/models"
	"github.com/tomtom215/buildmyrig/internal/validation"
)

// Parts handles listing the full catalog
//
// @Summary List all parts
// @Description Returns every part in the catalog ordered by category and id
// @Tags Catalog
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.Part} "All parts"
// @Router /parts [get]
func (h *Handler) Parts(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	parts, err := h.catalog.All(r.Context())
	if err != nil {
		rw.CatalogError(err)
		return
	}

	rw.SuccessWithPagination(parts, &PaginationMeta{
		Total: len(parts),
		Count: len(parts),
	})
}

// PartsByCategory handles paged listing of one category
//
// @Summary List parts in a category
// @Description Returns parts of one category with optional brand filter, sorting and pagination
// @Tags Catalog
// @Produce json
// @Param category path string true "cpu, gpu, motherboard, ram, storage, psu or case"
// @Param brand query string false "Brand; chip vendor for cpu and gpu"
// @Param limit query int false "Page size (default 50, max 100)"
// @Param offset query int false "Items to skip"
// @Param sort_by query string false "performance_score, price or name"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} APIResponse{data=[]models.Part} "Parts page"
// @Failure 400 {object} APIResponse "Invalid category or parameters"
// @Failure 404 {object} APIResponse "No matching parts"
// @Router /parts/{category} [get]
func (h *Handler) PartsByCategory(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := r.URL.Query()

	req := PartsRequest{
		Category:  chi.URLParam(r, "category"),
		Brand:     strings.TrimSpace(q.Get("brand")),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	var err error
	if req.Limit, err = getIntParam(r, "limit", models.DefaultListLimit); err != nil {
		rw.ValidationError(err.Error(), map[string]interface{}{"field": "limit"})
		return
	}
	if req.Offset, err = getIntParam(r, "offset", 0); err != nil {
		rw.ValidationError(err.Error(), map[string]interface{}{"field": "offset"})
		return
	}

	if _, err := models.ParseCategory(req.Category); err != nil {
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeInvalidCategory,
			"Invalid category. Must be one of: "+strings.Join(models.CategoryNames(), ", "),
			map[string]interface{}{"category": req.Category})
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	query := req.Query()
	parts, total, err := h.catalog.List(r.Context(), query)
	if err != nil {
		rw.CatalogError(err)
		return
	}

	if len(parts) == 0 {
		msg := fmt.Sprintf("No parts found for category '%s'", query.Category)
		if req.Brand != "" {
			msg += fmt.Sprintf(" with brand '%s'", req.Brand)
		}
		rw.NotFound(msg)
		return
	}

	rw.SuccessWithPagination(parts, &PaginationMeta{
		Total:   total,
		Count:   len(parts),
		Offset:  query.Offset,
		Limit:   query.Limit,
		HasMore: query.Offset+len(parts) < total,
	})
}

// Stats handles catalog statistics requests
//
// @Summary Catalog statistics
// @Description Returns part counts per category and brand, and the price range
// @Tags Catalog
// @Produce json
// @Success 200 {object} APIResponse{data=models.CatalogStats} "Statistics"
// @Failure 404 {object} APIResponse "Catalog is empty"
// @Router /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	stats, err := h.catalog.Stats(r.Context())
	if err != nil {
		rw.CatalogError(err)
		return
	}
	if stats.TotalParts == 0 {
		rw.Error(http.StatusNotFound, ErrCodeCatalogEmpty, "The parts catalog is empty")
		return
	}

	rw.Success(stats)
}
