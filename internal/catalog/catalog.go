/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package catalog discovers card definition files, compiles them into typed
// cards and exports normalized manifests. One malformed file fails only that
// file; the rest of the batch keeps going and all failures are reported
// together at the end.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gocardgen/internal/card"
	"gocardgen/internal/log"
)

// Entry is one successfully compiled definition.
type Entry struct {
	Path     string
	Card     card.Card
	Warnings []card.Warning
}

// Failure records the single error collected for one failing file.
type Failure struct {
	Path string
	Err  error
}

// Result is the outcome of compiling a batch.
type Result struct {
	Entries  []Entry
	Failures []Failure
}

// WarningCount sums the warnings across all entries.
func (r *Result) WarningCount() int {
	n := 0
	for _, e := range r.Entries {
		n += len(e.Warnings)
	}
	return n
}

// Options controls batch compilation.
type Options struct {
	// SchemaCheck runs the JSON-Schema shape check before decoding, so
	// structural mistakes get friendlier messages.
	SchemaCheck bool
}

// Discover returns the definition files under input, which may itself be a
// single file. Directories are walked recursively for .yaml/.yml files; the
// result is sorted for stable output order.
func Discover(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}
	var files []string
	err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", input, err)
	}
	sort.Strings(files)
	return files, nil
}

// Compile discovers and compiles every definition under input. Per-file
// errors land in Result.Failures; only discovery problems are returned as an
// error.
func Compile(input string, opts Options) (*Result, error) {
	files, err := Discover(input)
	if err != nil {
		return nil, err
	}
	logger := log.WithComponent("catalog")

	res := &Result{}
	for _, path := range files {
		c, warnings, err := compileFile(path, opts)
		if err != nil {
			logger.Warn("definition failed", "path", path, "err", err)
			res.Failures = append(res.Failures, Failure{Path: path, Err: err})
			continue
		}
		for _, w := range warnings {
			logger.Warn("card warning", "path", path, "card", w.Card, "code", w.Code.String(), "msg", w.Message)
		}
		res.Entries = append(res.Entries, Entry{Path: path, Card: c, Warnings: warnings})
	}
	logger.Info("batch compiled", "files", len(files), "ok", len(res.Entries), "failed", len(res.Failures), "warnings", res.WarningCount())
	return res, nil
}

// compileFile runs the full pipeline for one file: optional schema check,
// strict decode, advisory validation.
func compileFile(path string, opts Options) (card.Card, []card.Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read definition: %w", err)
	}
	if opts.SchemaCheck {
		violations, err := card.CheckSchema(data)
		if err != nil {
			return nil, nil, err
		}
		if len(violations) > 0 {
			return nil, nil, fmt.Errorf("schema violations: %s", strings.Join(violations, "; "))
		}
	}
	c, err := card.DecodeDefinition(data)
	if err != nil {
		return nil, nil, err
	}
	return c, card.Validate(c), nil
}
