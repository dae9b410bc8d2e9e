// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

/*
Package supervisor provides process supervision for BuildMyRig using suture v4.

The tree organizes long-running services into two layers:

	RootSupervisor ("buildmyrig")
	├── DataSupervisor ("data-layer")
	│   ├── ImportService (if CATALOG_IMPORT_INTERVAL > 0)
	│   └── CatalogStatsService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's exponential backoff. Supervisor
events are logged through sutureslog, bridged to zerolog by
logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	return tree.Serve(ctx)
*/
package supervisor
