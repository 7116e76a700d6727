// Package snapshot captures a built entity hierarchy as a plain value tree.
//
// Snapshots are how spawned hierarchies are inspected: the CLI prints them
// and tests compare them against golden files. Component values are
// converted by reflection into a small closed set of Value types, which
// have a canonical JSON encoding (RFC 8785 key order, NFC-normalized
// strings) so equal trees always serialize to identical bytes.
package snapshot
