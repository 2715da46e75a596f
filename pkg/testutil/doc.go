// Package testutil provides utilities for testing overlay components.
//
// Key components:
//   - NewFixtureFS: in-memory filesystem holding the standard pack fixtures
//   - Unit / RootUnit: static units with inline extra configuration
//   - TestPack: on-disk pack setup for discovery and linking tests
//
// All test data should be defined inline, not in external files, and each
// test should be completely isolated with no shared state.
package testutil
