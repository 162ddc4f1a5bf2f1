/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package card

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rarity is the closed four-value rarity set. It is never a free string:
// decoding rejects anything outside the set.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityMythic
)

var rarityNames = [...]string{"common", "uncommon", "rare", "mythic"}

func (r Rarity) String() string {
	if r < RarityCommon || r > RarityMythic {
		return "unknown"
	}
	return rarityNames[r]
}

// ParseRarity maps the lower-case wire form to a Rarity.
func ParseRarity(s string) (Rarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "common":
		return RarityCommon, nil
	case "uncommon":
		return RarityUncommon, nil
	case "rare":
		return RarityRare, nil
	case "mythic":
		return RarityMythic, nil
	}
	return 0, fmt.Errorf("unknown rarity %q", s)
}

func (r *Rarity) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: rarity must be a scalar", value.Line)
	}
	parsed, err := ParseRarity(value.Value)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Rarity) MarshalYAML() (interface{}, error) { return r.String(), nil }

func (r Rarity) MarshalJSON() ([]byte, error) { return json.Marshal(r.String()) }
