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

package defaults

import (
	"os"
	"time"
)

// File locations used by the generator.
const (
	// TemplateFile is the master template read from the working directory.
	TemplateFile = "raspi_master.yaml"

	// OutputDir is the directory rendered recipes are written to.
	OutputDir = "."

	// OutputPattern is the name of a rendered recipe, formatted with the
	// version and suite exactly as they were passed on the command line.
	OutputPattern = "raspi_%s_%s.yaml"

	// OutputFileMode is the permission set on rendered recipes.
	OutputFileMode os.FileMode = 0o644
)

// Build stamp settings.
const (
	// RevisionTimeout bounds the source-control lookup for the build stamp.
	// The lookup is best-effort, so hitting it only empties the stamp.
	RevisionTimeout = 5 * time.Second

	// BuildTimeLayout is the UTC layout of the build time stamp.
	BuildTimeLayout = "2006-01-02 15:04"
)

// LogLevel is the default log level of the CLI.
const LogLevel = "warn"
