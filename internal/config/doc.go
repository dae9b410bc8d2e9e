// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

// Package config loads BuildMyRig configuration with Koanf v2.
//
// Sources are layered defaults, then an optional YAML file (CONFIG_PATH or
// config.yaml / /etc/buildmyrig/config.yaml), then environment variables.
// Environment variables are mapped explicitly; unknown variables are ignored.
//
// Example config.yaml:
//
//	server:
//	  port: 8080
//	catalog:
//	  backend: badger
//	  badger_path: /data/catalog
//	  import_dir: /data/prices
//	  import_interval: 24h
//	  cache_ttl: 30s
//	recommend:
//	  shortlist_size: 6
//	security:
//	  cors_origins: ["https://buildmyrig.example"]
//
// Usage:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engineCfg := cfg.Recommend.EngineConfig()
package config
