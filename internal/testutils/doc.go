// Package testutils provides shared test helpers for the Dual Class API.
//
// Helper functions follow these naming conventions:
//   - Create*: build valid domain entities in memory, customised with With* options
//   - Write*: write fixture files into a test directory
//   - Must*: perform an operation and fail the test on error
//
// TestSlogHandler captures structured log records so tests can assert on
// what a component logged.
package testutils
