/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package naming derives filesystem-safe names from card names.
package naming

import "strings"

// ForCard sanitizes a card name for use as a filename: lower-case, ASCII
// alphanumerics kept, whitespace and / , - become underscores, apostrophes
// and anything else are dropped, and underscore runs collapse.
//
//	ForCard("Jace, the Mind Sculptor") == "jace_the_mind_sculptor"
//	ForCard("Fire // Ice")             == "fire_ice"
func ForCard(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '/' || r == ',' || r == '-':
			b.WriteByte('_')
		}
		// Apostrophes and any other characters (accents, etc.) drop out.
	}
	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '_' })
	return strings.Join(parts, "_")
}
