// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/raspi-recipe/pkg/defaults"
	"github.com/NVIDIA/raspi-recipe/pkg/errors"
)

// Config contains the generator settings. Create it with NewConfig or Load.
type Config struct {
	// templatePath is the master template to render.
	templatePath string

	// outputDir is where rendered recipes are written.
	outputDir string

	// backports is the reason line written above an enabled backports
	// source. Empty keeps backports disabled.
	backports string

	// fixFirmware renames the firmware package in the reconfigure unit.
	fixFirmware bool

	// logLevel is the slog level name.
	logLevel string
}

// TemplatePath returns the master template path.
func (c *Config) TemplatePath() string {
	return c.templatePath
}

// OutputDir returns the output directory.
func (c *Config) OutputDir() string {
	return c.outputDir
}

// Backports returns the backports reason, or "" when disabled.
func (c *Config) Backports() string {
	return c.backports
}

// FixFirmware returns the firmware rename setting.
func (c *Config) FixFirmware() bool {
	return c.fixFirmware
}

// LogLevel returns the log level name.
func (c *Config) LogLevel() string {
	return c.logLevel
}

// Validate checks if the Config has valid settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.templatePath) == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "template path cannot be empty")
	}
	if strings.TrimSpace(c.outputDir) == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "output directory cannot be empty")
	}
	if strings.ContainsAny(c.backports, "\r\n") {
		return errors.New(errors.ErrCodeInvalidRequest, "backports reason must be a single line")
	}
	switch strings.ToLower(c.logLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", c.logLevel))
	}
	return nil
}

// Option is a functional option for Config.
type Option func(*Config)

// WithTemplatePath sets the master template path.
func WithTemplatePath(path string) Option {
	return func(c *Config) {
		c.templatePath = path
	}
}

// WithOutputDir sets the output directory.
func WithOutputDir(dir string) Option {
	return func(c *Config) {
		c.outputDir = dir
	}
}

// WithBackports enables backports with the given reason line.
func WithBackports(reason string) Option {
	return func(c *Config) {
		c.backports = reason
	}
}

// WithFixFirmware sets the firmware rename setting.
func WithFixFirmware(enabled bool) Option {
	return func(c *Config) {
		c.fixFirmware = enabled
	}
}

// WithLogLevel sets the log level name.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.logLevel = level
	}
}

// NewConfig returns a Config with default values.
func NewConfig(options ...Option) *Config {
	c := &Config{
		templatePath: defaults.TemplateFile,
		outputDir:    defaults.OutputDir,
		logLevel:     defaults.LogLevel,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// file is the on-disk representation. Pointers distinguish unset keys from
// zero values.
type file struct {
	Template    *string `yaml:"template"`
	OutputDir   *string `yaml:"outputDir"`
	Backports   *string `yaml:"backports"`
	FixFirmware *bool   `yaml:"fixFirmware"`
	LogLevel    *string `yaml:"logLevel"`
}

// Load reads a YAML config file and returns a Config with the file's values
// applied over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return NewConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"failed to read config file", err, map[string]any{"path": path})
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid config file", err, map[string]any{"path": path})
	}
	return cfg, nil
}

// Parse decodes YAML config data. Empty input yields the defaults.
func Parse(data []byte) (*Config, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	var opts []Option
	if f.Template != nil {
		opts = append(opts, WithTemplatePath(*f.Template))
	}
	if f.OutputDir != nil {
		opts = append(opts, WithOutputDir(*f.OutputDir))
	}
	if f.Backports != nil {
		opts = append(opts, WithBackports(*f.Backports))
	}
	if f.FixFirmware != nil {
		opts = append(opts, WithFixFirmware(*f.FixFirmware))
	}
	if f.LogLevel != nil {
		opts = append(opts, WithLogLevel(*f.LogLevel))
	}

	cfg := NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply returns a copy of c with opts applied.
func (c *Config) Apply(opts ...Option) *Config {
	cp := *c
	for _, opt := range opts {
		opt(&cp)
	}
	return &cp
}
