/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package mana

import (
	"fmt"
	"strings"
)

// CastingCost is an ordered sequence of casting symbols. Symbol order is
// display-significant and preserved from parse to render. An empty cost is
// valid (lands have no cost).
type CastingCost struct {
	Symbols []CastingSymbol
}

// ActionCost is an ordered sequence over the full symbol domain; this is the
// only cost kind that may contain tap/untap/energy/chaos.
type ActionCost struct {
	Symbols []Symbol
}

// splitGroups cuts a cost string into the interiors of its brace groups.
// Whitespace between groups is tolerated; anything else outside a group, or
// an unclosed group, fails.
func splitGroups(s string) ([]string, error) {
	var groups []string
	for i := 0; i < len(s); {
		switch {
		case s[i] == '{':
			end := strings.IndexByte(s[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("position %d: %w", i, ErrUnterminatedBrace)
			}
			groups = append(groups, s[i+1:i+1+end])
			i += end + 2
		case s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r':
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q at position %d: %w", s[i], i, ErrUnterminatedBrace)
		}
	}
	return groups, nil
}

// ParseCastingCost parses a casting cost string such as "{2}{W}{U}".
// Symbols that are only legal in ability costs are rejected. An empty string
// yields an empty, valid cost.
func ParseCastingCost(s string) (CastingCost, error) {
	groups, err := splitGroups(s)
	if err != nil {
		return CastingCost{}, err
	}
	cost := CastingCost{}
	for _, g := range groups {
		sym, err := parseSymbol(g)
		if err != nil {
			return CastingCost{}, err
		}
		cs, ok := sym.(CastingSymbol)
		if !ok {
			return CastingCost{}, fmt.Errorf("symbol %s in casting cost: %w", sym, ErrInvalidSymbolForContext)
		}
		cost.Symbols = append(cost.Symbols, cs)
	}
	return cost, nil
}

// ParseActionCost parses an activated-ability cost string such as
// "{T}{2}{U}". It accepts the full symbol domain.
func ParseActionCost(s string) (ActionCost, error) {
	groups, err := splitGroups(s)
	if err != nil {
		return ActionCost{}, err
	}
	cost := ActionCost{}
	for _, g := range groups {
		sym, err := parseSymbol(g)
		if err != nil {
			return ActionCost{}, err
		}
		cost.Symbols = append(cost.Symbols, sym)
	}
	return cost, nil
}

// String renders the cost back to canonical brace form. For canonical input
// (upper-case, wheel-ordered hybrids) this round-trips the parsed string.
func (c CastingCost) String() string {
	var b strings.Builder
	for _, s := range c.Symbols {
		b.WriteString(s.String())
	}
	return b.String()
}

func (c ActionCost) String() string {
	var b strings.Builder
	for _, s := range c.Symbols {
		b.WriteString(s.String())
	}
	return b.String()
}

// IsEmpty reports whether the cost has no symbols.
func (c CastingCost) IsEmpty() bool { return len(c.Symbols) == 0 }

// GenericValue sums the numeric amounts of all generic symbols.
func (c CastingCost) GenericValue() int {
	total := 0
	for _, s := range c.Symbols {
		if g, ok := s.(Generic); ok {
			total += g.Amount
		}
	}
	return total
}

// HasVariable reports whether the cost contains X, Y or Z.
func (c CastingCost) HasVariable() bool {
	for _, s := range c.Symbols {
		if _, ok := s.(Variable); ok {
			return true
		}
	}
	return false
}

// ColoredCount counts the single-color symbols in the cost. Hybrid, twobrid
// and Phyrexian symbols are not counted; they are payable without the color.
func (c CastingCost) ColoredCount() int {
	n := 0
	for _, s := range c.Symbols {
		if _, ok := s.(ColorSymbol); ok {
			n++
		}
	}
	return n
}
