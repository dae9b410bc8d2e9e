// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/buildmyrig/internal/models"
	"github.com/tomtom215/buildmyrig/internal/recommend"
)

// maxRequestBodyBytes bounds POST bodies.
const maxRequestBodyBytes = 64 << 10

// RecommendRequest is the body of POST /api/v1/recommend.
//
// Fields:
//   - Budget: Maximum total price in USD (> 0)
//   - BrandPreferences: Category name to brand; cpu and gpu name the chip vendor
//   - UseCase: gaming, workstation, general; anything else is scored unadjusted
type RecommendRequest struct {
	Budget           float64           `json:"budget" validate:"required,gt=0,lte=1000000"`
	BrandPreferences map[string]string `json:"brand_preferences" validate:"omitempty,max=7,dive,keys,category,endkeys,max=100"`
	UseCase          string            `json:"use_case" validate:"required,max=50"`
}

// EngineRequest translates brand preferences into catalog filters.
func (req *RecommendRequest) EngineRequest(requestID string) recommend.Request {
	filters := make(map[models.Category]models.BrandFilter, len(req.BrandPreferences))
	for key, pref := range req.BrandPreferences {
		cat, err := models.ParseCategory(key)
		if err != nil {
			continue
		}
		if f := models.BrandFilterFor(cat, pref); !f.Empty() {
			filters[cat] = f
		}
	}

	return recommend.Request{
		RequestID: requestID,
		Budget:    req.Budget,
		Filters:   filters,
		UseCase:   req.UseCase,
	}
}

// RecommendResponse is the success payload of POST /api/v1/recommend.
type RecommendResponse struct {
	Builds         []models.Build         `json:"builds"`
	Message        string                 `json:"message"`
	RequestSummary RequestSummary         `json:"request_summary"`
	Stats          *recommend.SearchStats `json:"stats,omitempty"`
}

// RequestSummary echoes the request inputs.
type RequestSummary struct {
	Budget           float64           `json:"budget"`
	BrandPreferences map[string]string `json:"brand_preferences"`
	UseCase          string            `json:"use_case"`
}

// PartsRequest represents the validated parameters of GET /api/v1/parts/{category}.
//
// Fields:
//   - Category: One of the seven part categories
//   - Brand: Optional brand, translated like a recommendation preference
//   - Limit: Page size (0 means default 50; values above 100 are capped)
//   - Offset: Items to skip (>= 0)
//   - SortBy, SortOrder: Unknown values fall back to performance_score desc
type PartsRequest struct {
	Category  string `json:"category" validate:"required,category"`
	Brand     string `json:"brand" validate:"omitempty,max=100"`
	Limit     int    `json:"limit" validate:"min=0"`
	Offset    int    `json:"offset" validate:"min=0"`
	SortBy    string `json:"sort_by" validate:"omitempty,max=50"`
	SortOrder string `json:"sort_order" validate:"omitempty,max=10"`
}

// Query converts the request to a normalized catalog query. The category
// must already be validated.
func (req *PartsRequest) Query() models.PartQuery {
	cat, _ := models.ParseCategory(req.Category) //nolint:errcheck // validated by the category tag
	return models.PartQuery{
		Category:  cat,
		Filter:    models.BrandFilterFor(cat, req.Brand),
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Limit:     req.Limit,
		Offset:    req.Offset,
	}.Normalize()
}

// getIntParam reads an integer query parameter, returning def when absent.
func getIntParam(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}
