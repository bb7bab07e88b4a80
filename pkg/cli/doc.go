// Package cli implements the command-line interface of raspi-recipe.
//
// # Overview
//
// raspi-recipe writes a vmdb2 recipe for one Raspberry Pi hardware version
// and Debian suite by filling in the placeholders of raspi_master.yaml.
//
// # Usage
//
//	raspi-recipe [flags] <version> <suite>
//	raspi-recipe list
//	raspi-recipe vars [--format yaml|json|table] <version> <suite>
//
// Supported versions are 1, 2, 3 and 4. Supported suites are bullseye,
// bookworm and trixie. The recipe is written to raspi_<version>_<suite>.yaml
// in the output directory, replacing any existing file.
//
// # Flags
//
//	--template PATH      Master template (default: raspi_master.yaml)
//	--output-dir DIR     Where to write the recipe (default: .)
//	--stdout             Print the recipe instead of writing it
//	--backports REASON   Enable backports, writing REASON above the source line
//	--fix-firmware       Rename raspi-firmware in the reconfigure unit
//	--config PATH        YAML file with defaults for the flags above
//	--log-level LEVEL    debug, info, warn or error (default: warn)
//
// # Exit Codes
//
//	0  Success
//	1  Usage error (argument count, version or suite) or I/O failure
//
// Usage errors are reported before any file is read or written.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/raspi-recipe/pkg/cli.version=1.0.0'"
package cli
