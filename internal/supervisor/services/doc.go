// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

/*
Package services provides suture.Service wrappers for BuildMyRig components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the ListenAndServe pattern to Serve

Catalog Import (ImportService):
  - Re-imports price and benchmark CSV files on CATALOG_IMPORT_INTERVAL
  - Logs failures and keeps the previous catalog

Catalog Gauges (CatalogStatsService):
  - Refreshes catalog_parts and app_uptime_seconds gauges

# Error Handling

Return values determine supervisor behavior:

	nil         -> Service stopped on its own, supervisor restarts it
	error       -> Service crashed, supervisor restarts it with backoff
	ctx.Err()   -> Shutdown requested, normal termination

# Service Identification

All services implement fmt.Stringer so suture names them in its events:
"http-server", "catalog-import", "catalog-stats".
*/
package services
