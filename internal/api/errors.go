// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/buildmyrig/internal/catalog"
	"github.com/tomtom215/buildmyrig/internal/database"
)

// catalogErrorStatus maps a catalog failure to an HTTP status. Open
// circuits, timeouts and closed stores are transient and map to 503;
// anything else is a 500.
func catalogErrorStatus(err error) int {
	switch {
	case errors.Is(err, catalog.ErrCircuitOpen),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, catalog.ErrStoreClosed),
		errors.Is(err, database.ErrDatabaseClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
