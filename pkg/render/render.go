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

package render

import (
	"strings"
	"unicode"
)

// Scalar is a marker replaced by a single value wherever it appears.
type Scalar struct {
	Marker string
	Value  string
}

// Block is a marker line replaced by a list of indented lines.
type Block struct {
	Marker string
	Lines  []string
}

// Substitutions is the set of values a template is rendered with.
type Substitutions interface {
	Scalars() []Scalar
	Blocks() []Block
}

// Render applies subs to text and returns the cleaned result.
func Render(subs Substitutions, text string) string {
	text = ReplaceScalars(text, subs.Scalars())

	lines := splitLines(text)
	for _, b := range subs.Blocks() {
		lines = ReplaceBlock(lines, b.Marker, b.Lines)
	}

	return strings.Join(Cleanup(lines), "\n") + "\n"
}

// ReplaceScalars replaces every occurrence of each marker with its value.
// Markers must not overlap; their order is irrelevant.
func ReplaceScalars(text string, scalars []Scalar) string {
	if len(scalars) == 0 {
		return text
	}
	pairs := make([]string, 0, len(scalars)*2)
	for _, s := range scalars {
		pairs = append(pairs, s.Marker, s.Value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// ReplaceBlock replaces the first line consisting of marker, optionally
// surrounded by whitespace, with items. Each item is prefixed with the
// marker line's leading whitespace. An empty items removes the line. lines is
// returned unchanged when no line matches.
func ReplaceBlock(lines []string, marker string, items []string) []string {
	for i, line := range lines {
		content := strings.TrimLeftFunc(line, unicode.IsSpace)
		if strings.TrimRightFunc(content, unicode.IsSpace) != marker {
			continue
		}
		indent := line[:len(line)-len(content)]

		out := make([]string, 0, len(lines)-1+len(items))
		out = append(out, lines[:i]...)
		for _, item := range items {
			out = append(out, indent+item)
		}
		return append(out, lines[i+1:]...)
	}
	return lines
}

// Cleanup drops lines made only of whitespace and lines holding an indented
// bare "-" bullet. Lines with no characters at all are kept.
func Cleanup(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if isBlank(line) || isBareBullet(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

// isBlank matches ^\s+$.
func isBlank(line string) bool {
	return line != "" && strings.TrimSpace(line) == ""
}

// isBareBullet matches ^\s+-\s*$.
func isBareBullet(line string) bool {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	if len(rest) == len(line) {
		return false
	}
	rest, ok := strings.CutPrefix(rest, "-")
	return ok && strings.TrimSpace(rest) == ""
}

// splitLines splits text on line boundaries the way a line reader would:
// a trailing newline does not produce an extra empty line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
