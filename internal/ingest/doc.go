// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

// Package ingest loads catalog parts from retailer price lists and
// UserBenchmark exports.
//
// # Inputs
//
// A price directory holds one CSV per category:
//
//	CPUs.csv  GPUs.csv  Motherboards.csv  RAMs.csv  SSDs.csv  Power Supply.csv  Cases.csv
//
// Each file has a header row with at least "name" and "price". Optional
// columns (tdp, core_count, length, socket, form_factor, memory_slots,
// max_memory, speed, type, capacity, interface, wattage, efficiency, modular)
// feed the compatibility tags. Every other non-empty column is kept as a
// specification.
//
// An optional benchmark directory holds
//
//	CPU_UserBenchmarks.csv  GPU_UserBenchmarks.csv  RAM_UserBenchmarks.csv  SSD_UserBenchmarks.csv
//
// with Model, Benchmark, Rank, Samples and URL columns.
//
// # Derivation
//
//   - Rows with an empty, unparsable or non-positive price are skipped and
//     counted by reason.
//   - The manufacturer comes from an alias table (ROG, TUF and PRIME map to
//     ASUS, and so on), falling back to the first word of the name.
//   - The hardware brand (AMD, Intel, NVIDIA) comes from per-category
//     keywords, falling back to the manufacturer.
//   - The performance score is the Benchmark value of the closest benchmark
//     model (word-set Jaccard similarity above 0.6 after name cleaning), or an
//     estimate from name keywords when nothing matches.
//
// # Scheduling
//
// Importer combines a Loader with a catalog store and can run once at startup
// or periodically under the supervisor tree.
package ingest
