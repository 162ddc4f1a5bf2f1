/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package naming

import "testing"

func TestForCard(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Llanowar Elves", "llanowar_elves"},
		{"Fire // Ice", "fire_ice"},
		{"Jace, the Mind Sculptor", "jace_the_mind_sculptor"},
		{"Emeria's Call", "emerias_call"},
		{"Delver of Secrets // Insectile Aberration", "delver_of_secrets_insectile_aberration"},
		{"Nicol Bolas, Dragon-God", "nicol_bolas_dragon_god"},
		{"Lim-Dûl's Vault", "lim_dls_vault"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ForCard(tc.in); got != tc.want {
			t.Fatalf("ForCard(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
