// Package recipe generates vmdb2 build recipes for Raspberry Pi images.
//
// A Generator reads the master template, resolves the variables for a build
// target and writes the rendered recipe next to it:
//
//	g := recipe.NewGenerator()
//	path, err := g.Generate(ctx, t) // raspi_4_bookworm.yaml
//
// Each call reads the template afresh and overwrites any existing recipe of
// the same name. If the template cannot be read nothing is written.
//
// # Errors
//
//   - NOT_FOUND: the template does not exist
//   - INTERNAL: the template is unreadable or the recipe cannot be written
package recipe
