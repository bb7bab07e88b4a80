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

package recipe

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/NVIDIA/raspi-recipe/pkg/defaults"
	"github.com/NVIDIA/raspi-recipe/pkg/errors"
	"github.com/NVIDIA/raspi-recipe/pkg/render"
	"github.com/NVIDIA/raspi-recipe/pkg/resolver"
	"github.com/NVIDIA/raspi-recipe/pkg/target"
)

// Option is a functional option for configuring Generator instances.
type Option func(*Generator)

// WithTemplatePath sets the master template path.
func WithTemplatePath(path string) Option {
	return func(g *Generator) {
		g.templatePath = path
	}
}

// WithOutputDir sets the directory recipes are written to.
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		g.outputDir = dir
	}
}

// WithResolverOptions passes opts to the variable resolver.
func WithResolverOptions(opts ...resolver.Option) Option {
	return func(g *Generator) {
		g.resolverOpts = append(g.resolverOpts, opts...)
	}
}

// Generator renders recipes from a master template.
type Generator struct {
	templatePath string
	outputDir    string
	resolverOpts []resolver.Option
}

// NewGenerator creates a Generator reading defaults.TemplateFile and writing
// to defaults.OutputDir unless overridden by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		templatePath: defaults.TemplateFile,
		outputDir:    defaults.OutputDir,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OutputPath returns where Generate writes the recipe for t.
func (g *Generator) OutputPath(t target.BuildTarget) string {
	return filepath.Join(g.outputDir, t.OutputName())
}

// Render returns the recipe for t without writing it.
func (g *Generator) Render(ctx context.Context, t target.BuildTarget) (string, error) {
	tmpl, err := g.readTemplate()
	if err != nil {
		return "", err
	}

	vars, err := resolver.Resolve(ctx, t, g.resolverOpts...)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "failed to resolve variables", err)
	}
	if err := vars.Validate(); err != nil {
		return "", err
	}

	return render.Render(vars, tmpl), nil
}

// RenderTo writes the recipe for t to w.
func (g *Generator) RenderTo(ctx context.Context, t target.BuildTarget, w io.Writer) error {
	out, err := g.Render(ctx, t)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to write recipe", err)
	}
	return nil
}

// Generate renders the recipe for t and writes it to OutputPath, replacing
// any existing file. It returns the path written.
func (g *Generator) Generate(ctx context.Context, t target.BuildTarget) (string, error) {
	out, err := g.Render(ctx, t)
	if err != nil {
		return "", err
	}

	path := g.OutputPath(t)
	if err := os.WriteFile(path, []byte(out), defaults.OutputFileMode); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeInternal, "failed to write recipe", err,
			map[string]any{"path": path})
	}

	slog.Info("recipe generated", "target", t.String(), "path", path, "bytes", len(out))

	return path, nil
}

func (g *Generator) readTemplate() (string, error) {
	data, err := os.ReadFile(g.templatePath)
	if err != nil {
		code := errors.ErrCodeInternal
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrCodeNotFound
		}
		return "", errors.WrapWithContext(code, "failed to read template", err,
			map[string]any{"path": g.templatePath})
	}
	slog.Debug("template loaded", "path", g.templatePath, "bytes", len(data))
	return string(data), nil
}
