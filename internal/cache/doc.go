// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

/*
Package cache provides a thread-safe in-memory cache with TTL expiration.

The catalog store uses it to serve repeated browse and statistics queries
without touching the backend. Writes to the catalog clear the whole cache,
so a completed import is visible to the next read.

Expiration is checked lazily on Get; a background goroutine also sweeps
expired entries every DefaultCleanupInterval until Close is called.

# Usage Example

	c := cache.New(30 * time.Second)
	defer c.Close()

	key := cache.GenerateKey("list", query)
	if v, ok := c.Get(key); ok {
	    return v.([]models.Part), nil
	}
	parts := load()
	c.Set(key, parts)

# Keys

GenerateKey hashes the JSON encoding of its parameters with SHA-256, so any
JSON-serializable query struct produces a stable, compact key:

	cache.GenerateKey("list", models.PartQuery{Category: "gpu", Limit: 20})
	// list:3f2a...

# Thread Safety

All methods are safe for concurrent use. Statistics are tracked under their
own lock and GetStats returns a copy.
*/
package cache
