// Package defaults provides centralized configuration constants for raspi-recipe.
//
// This package defines file names, file modes and timeout values used across
// the codebase. Centralizing these values keeps the CLI, the generator and
// the tests in agreement about where recipes are read from and written to.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/raspi-recipe/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.RevisionTimeout)
//	defer cancel()
package defaults
