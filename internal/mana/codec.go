/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package mana

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Cost and loyalty values travel as plain strings in card definition files
// and in the normalized JSON export. The codecs below parse on the way in
// and render the canonical form on the way out.

// scalarValue extracts the raw text of a scalar node. Reading node.Value
// directly keeps unquoted YAML integers (loyalty: 3) usable as text.
func scalarValue(value *yaml.Node, what string) (string, error) {
	if value.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: %s must be a scalar", value.Line, what)
	}
	return value.Value, nil
}

// UnmarshalYAML parses a casting cost from its string notation.
func (c *CastingCost) UnmarshalYAML(value *yaml.Node) error {
	raw, err := scalarValue(value, "mana cost")
	if err != nil {
		return err
	}
	parsed, err := ParseCastingCost(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML renders the canonical brace form.
func (c CastingCost) MarshalYAML() (interface{}, error) { return c.String(), nil }

// MarshalJSON renders the canonical brace form.
func (c CastingCost) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

// UnmarshalYAML parses an ability cost from its string notation.
func (c *ActionCost) UnmarshalYAML(value *yaml.Node) error {
	raw, err := scalarValue(value, "ability cost")
	if err != nil {
		return err
	}
	parsed, err := ParseActionCost(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c ActionCost) MarshalYAML() (interface{}, error) { return c.String(), nil }

func (c ActionCost) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

// UnmarshalYAML parses a loyalty ability cost such as "+2", "-X" or "0".
func (c *LoyaltyCost) UnmarshalYAML(value *yaml.Node) error {
	raw, err := scalarValue(value, "loyalty cost")
	if err != nil {
		return err
	}
	parsed, err := ParseLoyaltyCost(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c LoyaltyCost) MarshalYAML() (interface{}, error) { return c.String(), nil }

func (c LoyaltyCost) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

// UnmarshalYAML parses a starting loyalty such as "4" or "X". Bare integer
// scalars are accepted; their literal text is parsed.
func (v *LoyaltyValue) UnmarshalYAML(value *yaml.Node) error {
	raw, err := scalarValue(value, "loyalty value")
	if err != nil {
		return err
	}
	parsed, err := ParseLoyaltyValue(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v LoyaltyValue) MarshalYAML() (interface{}, error) { return v.String(), nil }

func (v LoyaltyValue) MarshalJSON() ([]byte, error) { return json.Marshal(v.String()) }

// UnmarshalYAML parses a color from its letter or full name (color
// indicators commonly use full names).
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	raw, err := scalarValue(value, "color")
	if err != nil {
		return err
	}
	u := strings.ToUpper(strings.TrimSpace(raw))
	switch u {
	case "W", "WHITE":
		*c = White
	case "U", "BLUE":
		*c = Blue
	case "B", "BLACK":
		*c = Black
	case "R", "RED":
		*c = Red
	case "G", "GREEN":
		*c = Green
	default:
		return fmt.Errorf("unknown color %q", raw)
	}
	return nil
}

func (c Color) MarshalYAML() (interface{}, error) { return c.Letter(), nil }

func (c Color) MarshalJSON() ([]byte, error) { return json.Marshal(c.Letter()) }
