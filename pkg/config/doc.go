// Package config holds generator settings.
//
// Settings come from three layers, later ones winning: built-in defaults, an
// optional YAML file passed with --config, and command-line flags. The file
// is strict; unknown keys are rejected so typos do not silently fall back to
// defaults.
//
// Example file:
//
//	template: templates/raspi_master.yaml
//	outputDir: build
//	backports: "# Pi 4 needs the newer kernel"
//	fixFirmware: false
//	logLevel: info
package config
