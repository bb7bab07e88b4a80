// Package buildinfo collects the human-readable build stamp embedded in
// rendered recipes: a short description of the current git revision and
// the UTC time of generation.
//
// Both lookups are best-effort. A missing git binary, a working directory
// outside a repository or a timed-out command all yield an empty string and
// a debug log line; generation continues.
//
// Tests and reproducible builds use Static to pin both values.
package buildinfo
