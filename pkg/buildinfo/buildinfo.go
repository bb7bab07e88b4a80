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

package buildinfo

import (
	"context"
	"log/slog"
	"strings"

	"k8s.io/utils/clock"
	"k8s.io/utils/exec"

	"github.com/NVIDIA/raspi-recipe/pkg/defaults"
)

// Provider supplies the build stamp. Implementations must not fail: an
// unavailable value is reported as "".
type Provider interface {
	// Revision describes the current source revision.
	Revision(ctx context.Context) string
	// Timestamp returns the generation time.
	Timestamp() string
}

// revisionArgs reproduce `git show -s --pretty='format:%C(auto)%h (%s, %ad)' --date=short`.
var revisionArgs = []string{
	"show", "-s",
	"--pretty=format:%C(auto)%h (%s, %ad)",
	"--date=short",
}

// Option configures a GitProvider.
type Option func(*GitProvider)

// WithExec sets the command runner used for git.
func WithExec(e exec.Interface) Option {
	return func(p *GitProvider) {
		p.exec = e
	}
}

// WithClock sets the clock used for the timestamp.
func WithClock(c clock.PassiveClock) Option {
	return func(p *GitProvider) {
		p.clock = c
	}
}

// WithDir runs git in dir instead of the working directory.
func WithDir(dir string) Option {
	return func(p *GitProvider) {
		p.dir = dir
	}
}

// GitProvider reads the revision from git and the time from a clock.
type GitProvider struct {
	exec  exec.Interface
	clock clock.PassiveClock
	dir   string
}

// NewProvider returns a GitProvider backed by the host's git and real clock
// unless overridden by opts.
func NewProvider(opts ...Option) *GitProvider {
	p := &GitProvider{
		exec:  exec.New(),
		clock: clock.RealClock{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Revision returns the abbreviated hash, subject and date of HEAD, or "" when
// git is unavailable.
func (p *GitProvider) Revision(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, defaults.RevisionTimeout)
	defer cancel()

	cmd := p.exec.CommandContext(ctx, "git", revisionArgs...)
	if p.dir != "" {
		cmd.SetDir(p.dir)
	}
	out, err := cmd.Output()
	if err != nil {
		slog.Debug("git revision unavailable", "error", err)
		return ""
	}
	return strings.TrimRight(string(out), "\r\n")
}

// Timestamp returns the current UTC time in defaults.BuildTimeLayout.
func (p *GitProvider) Timestamp() string {
	return p.clock.Now().UTC().Format(defaults.BuildTimeLayout)
}

// Static is a Provider with fixed values.
type Static struct {
	Rev  string
	Time string
}

// Revision returns s.Rev.
func (s Static) Revision(context.Context) string {
	return s.Rev
}

// Timestamp returns s.Time.
func (s Static) Timestamp() string {
	return s.Time
}
