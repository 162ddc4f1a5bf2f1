/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package catalog

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"gocardgen/internal/card"
	"gocardgen/internal/log"
	"gocardgen/internal/naming"
)

// manifest is the normalized JSON document written per card. Costs render
// in canonical brace form, so the export is a cleaned-up restatement of the
// definition.
type manifest struct {
	Layout   card.Layout `json:"layout"`
	Card     card.Card   `json:"card"`
	Warnings []string    `json:"warnings,omitempty"`
}

// ExportJSON writes one normalized manifest per compiled entry into outDir,
// named after the sanitized card name. Writes are transactional: temp file
// in the target directory, then rename over the destination.
func ExportJSON(res *Result, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	logger := log.WithComponent("export")

	for _, e := range res.Entries {
		m := manifest{Layout: e.Card.Layout(), Card: e.Card}
		for _, w := range e.Warnings {
			m.Warnings = append(m.Warnings, w.String())
		}
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s: %w", e.Card.Base().Name, err)
		}
		data = append(data, '\n')

		name := naming.ForCard(e.Card.Base().Name)
		if name == "" {
			name = "card"
		}
		dst := filepath.Join(outDir, name+".json")
		if err := writeFileSync(dst, data); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
		logger.Debug("manifest written", "card", e.Card.Base().Name, "path", dst)
	}
	return nil
}

// writeFileSync writes data transactionally: a temp file in the same
// directory, fsynced, then renamed over the target.
func writeFileSync(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	temp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%d-%d", filepath.Base(path), os.Getpid(), rand.Int()))
	f, err := os.OpenFile(temp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(temp)
		}
	}()
	if _, werr := f.Write(data); werr != nil {
		_ = f.Close()
		return werr
	}
	if serr := f.Sync(); serr != nil {
		_ = f.Close()
		return serr
	}
	if cerr := f.Close(); cerr != nil {
		return cerr
	}
	return os.Rename(temp, path)
}
