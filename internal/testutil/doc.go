// Package testutil provides deterministic helpers for tests: sequential
// spawn tokens and captured debug logs.
package testutil
