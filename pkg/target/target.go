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

package target

import (
	"fmt"

	"github.com/NVIDIA/raspi-recipe/pkg/defaults"
	"github.com/NVIDIA/raspi-recipe/pkg/errors"
)

// Version is a Raspberry Pi hardware family.
type Version string

// Supported hardware versions.
const (
	Version1 Version = "1"
	Version2 Version = "2"
	Version3 Version = "3"
	Version4 Version = "4"
)

// String returns the version as passed on the command line.
func (v Version) String() string {
	return string(v)
}

// IsValid reports whether v is a supported version.
func (v Version) IsValid() bool {
	switch v {
	case Version1, Version2, Version3, Version4:
		return true
	default:
		return false
	}
}

// SupportedVersions returns all supported versions in ascending order.
func SupportedVersions() []string {
	return []string{"1", "2", "3", "4"}
}

// ParseVersion validates s against the supported versions. Matching is exact:
// " 4" or "v4" are rejected.
func ParseVersion(s string) (Version, error) {
	v := Version(s)
	if !v.IsValid() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported version %s", s),
			map[string]any{"supported": SupportedVersions()})
	}
	return v, nil
}

// Suite is a Debian release codename.
type Suite string

// Supported suites.
const (
	SuiteBullseye Suite = "bullseye"
	SuiteBookworm Suite = "bookworm"
	SuiteTrixie   Suite = "trixie"
)

// String returns the suite codename.
func (s Suite) String() string {
	return string(s)
}

// IsValid reports whether s is a supported suite.
func (s Suite) IsValid() bool {
	switch s {
	case SuiteBullseye, SuiteBookworm, SuiteTrixie:
		return true
	default:
		return false
	}
}

// SupportedSuites returns all supported suites, oldest first.
func SupportedSuites() []string {
	return []string{"bullseye", "bookworm", "trixie"}
}

// ParseSuite validates s against the supported suites.
func ParseSuite(s string) (Suite, error) {
	suite := Suite(s)
	if !suite.IsValid() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported suite %s", s),
			map[string]any{"supported": SupportedSuites()})
	}
	return suite, nil
}

// BuildTarget is a validated (version, suite) pair. The zero value is not a
// valid target; use New.
type BuildTarget struct {
	version Version
	suite   Suite
}

// New validates version and suite and returns the target. The version is
// checked first, so a call with two bad values reports the version.
func New(version, suite string) (BuildTarget, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return BuildTarget{}, err
	}
	s, err := ParseSuite(suite)
	if err != nil {
		return BuildTarget{}, err
	}
	return BuildTarget{version: v, suite: s}, nil
}

// Version returns the hardware version.
func (t BuildTarget) Version() Version {
	return t.version
}

// Suite returns the Debian suite.
func (t BuildTarget) Suite() Suite {
	return t.suite
}

// OutputName returns the file name of the rendered recipe for t.
func (t BuildTarget) OutputName() string {
	return fmt.Sprintf(defaults.OutputPattern, t.version, t.suite)
}

// String returns "<version>/<suite>".
func (t BuildTarget) String() string {
	return fmt.Sprintf("%s/%s", t.version, t.suite)
}

// All returns every supported target, ordered by version then suite.
func All() []BuildTarget {
	versions := SupportedVersions()
	suites := SupportedSuites()
	out := make([]BuildTarget, 0, len(versions)*len(suites))
	for _, v := range versions {
		for _, s := range suites {
			out = append(out, BuildTarget{version: Version(v), suite: Suite(s)})
		}
	}
	return out
}
