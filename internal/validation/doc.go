// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with custom validators and user-friendly error
// messages that plug into the API error envelope.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - JSON field names in error messages ("budget", not "Budget")
//   - A custom category tag accepting the seven part categories
//   - APIError conversion with the VALIDATION_FAILED code
//
// # Quick Start
//
//	type RecommendRequest struct {
//	    Budget           float64           `json:"budget" validate:"required,gt=0"`
//	    BrandPreferences map[string]string `json:"brand_preferences" validate:"omitempty,dive,keys,category,endkeys,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// # API Error Integration
//
// A single failing field produces:
//
//	{
//	    "code": "VALIDATION_FAILED",
//	    "message": "budget must be greater than 0",
//	    "details": {"field": "budget", "tag": "gt", "value": -5}
//	}
//
// Several failing fields are listed under details.fields.
//
// # Custom Tags
//
//	category -> value must parse as a part category (cpu, gpu, motherboard,
//	            ram, storage, psu, case), case-insensitive
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use.
package validation
