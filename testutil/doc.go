// Package testutil provides testing utilities for lloyd.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and generators for clustered data.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	flat := rng.Blobs(centers, 100, 0.5)   // 100 gaussian points per center
//	tokens := testutil.Tokens(cfg, flat)   // header + coordinates
//
// RNG satisfies lloyd.Source, so the same value seeds initialization.
package testutil
