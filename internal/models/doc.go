// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

/*
Package models defines the catalog and build types shared across BuildMyRig.

Key Components:

  - Part: a catalog entry with price, performance score and typed Tags
  - Tags: per-category compatibility attributes, resolved with defaults when
    a part is loaded (ResolveTags)
  - Build: one part per category plus derived totals
  - BrandFilter: manufacturer / silicon-vendor narrowing with an "any" wildcard
  - PartQuery and CatalogStats: catalog browsing types used by the API

Tag Resolution:

Catalog sources are messy. Numeric attributes may arrive as numbers or as
strings with units ("440mm", "128GB"), and many parts omit attributes
entirely. ResolveTags runs once per part and fills every field, so the
recommendation engine reads typed values and never re-parses:

	p := models.NewPart(id, name, models.CategoryCase, 109.99, 80, "Fractal Design", "Fractal Design",
	    models.RawTags{"max_gpu_length": "440mm"})
	p.Tags.Case.MaxGPULengthMM // 440

Processor sockets missing from the source are derived from the product name
(DeriveCPUSocket). A socket that cannot be derived is SocketUnknown and never
matches any motherboard.

Thread Safety:

Models are plain values. Part.Clone returns a copy sharing no mutable state,
which the engine relies on when adjusting scores per request.
*/
package models
