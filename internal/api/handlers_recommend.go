// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/samber/lo"

	"github.com/tomtom215/buildmyrig/internal/logging"
	"github.com/tomtom215/buildmyrig/internal/metrics"
	"github.com/tomtom215/buildmyrig/internal/recommend"
	"github.com/tomtom215/buildmyrig/internal/validation"
)

// noBuildsMessage is returned with 404 when no combination fits.
const noBuildsMessage = "No valid builds found within the specified budget and preferences"

// Recommend handles build recommendation requests
//
// @Summary Recommend PC builds
// @Description Returns up to three compatible builds within budget, ranked for the use case
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Budget, brand preferences and use case"
// @Success 200 {object} APIResponse{data=RecommendResponse} "Builds found"
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 404 {object} APIResponse "No build satisfies the constraints"
// @Failure 503 {object} APIResponse "Catalog unavailable"
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()

	var req RecommendRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordRecommendation("", metrics.ResultInvalid, time.Since(start))
		rw.BadRequest("Invalid JSON request body")
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordRecommendation(req.UseCase, metrics.ResultInvalid, time.Since(start))
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	ctx := r.Context()
	if h.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
		defer cancel()
	}

	resp, err := h.engine.Recommend(ctx, req.EngineRequest(logging.RequestIDFromContext(ctx)))
	if err != nil {
		h.recommendError(rw, &req, err, time.Since(start))
		return
	}

	metrics.RecordSearch(resp.Stats.TuplesEvaluated, len(resp.Builds),
		lo.MapKeys(resp.Stats.Rejections, func(_ int64, reason recommend.Reason) string {
			return string(reason)
		}))

	if resp.Empty() {
		metrics.RecordRecommendation(req.UseCase, metrics.ResultEmpty, time.Since(start))
		rw.ErrorWithDetails(http.StatusNotFound, ErrCodeNoBuildsFound, noBuildsMessage, map[string]interface{}{
			"budget":       req.Budget,
			"use_case":     req.UseCase,
			"valid_builds": resp.Stats.ValidBuilds,
		})
		return
	}

	metrics.RecordRecommendation(req.UseCase, metrics.ResultOK, time.Since(start))

	prefs := req.BrandPreferences
	if prefs == nil {
		prefs = map[string]string{}
	}
	rw.Success(RecommendResponse{
		Builds:  resp.Builds,
		Message: fmt.Sprintf("Found %d optimized build(s) for your %s setup", len(resp.Builds), req.UseCase),
		RequestSummary: RequestSummary{
			Budget:           req.Budget,
			BrandPreferences: prefs,
			UseCase:          req.UseCase,
		},
		Stats: &resp.Stats,
	})
}

func (h *Handler) recommendError(rw *ResponseWriter, req *RecommendRequest, err error, elapsed time.Duration) {
	if errors.Is(err, recommend.ErrInvalidRequest) {
		metrics.RecordRecommendation(req.UseCase, metrics.ResultInvalid, elapsed)
		rw.ValidationError(err.Error(), nil)
		return
	}

	metrics.RecordRecommendation(req.UseCase, metrics.ResultError, elapsed)
	if errors.Is(err, recommend.ErrCatalogUnavailable) {
		rw.CatalogError(err)
		return
	}

	logging.Ctx(rw.r.Context()).Error().Err(err).Msg("Recommendation failed")
	rw.InternalError("Failed to generate recommendations")
}
