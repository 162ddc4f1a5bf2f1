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
	"strconv"
	"strings"
)

// LoyaltyKind discriminates the five loyalty cost shapes.
type LoyaltyKind int

const (
	LoyaltyPlus LoyaltyKind = iota
	LoyaltyMinus
	LoyaltyZero
	LoyaltyPlusX
	LoyaltyMinusX
)

// LoyaltyCost is the cost of one planeswalker ability: +n, -n, 0, +X or -X.
// Amount is meaningful only for LoyaltyPlus and LoyaltyMinus and is always
// non-negative.
type LoyaltyCost struct {
	Kind   LoyaltyKind
	Amount int
}

// PlusLoyalty returns a +n loyalty cost.
func PlusLoyalty(n int) LoyaltyCost { return LoyaltyCost{Kind: LoyaltyPlus, Amount: n} }

// MinusLoyalty returns a -n loyalty cost.
func MinusLoyalty(n int) LoyaltyCost { return LoyaltyCost{Kind: LoyaltyMinus, Amount: n} }

// ZeroLoyalty returns the bare 0 loyalty cost.
func ZeroLoyalty() LoyaltyCost { return LoyaltyCost{Kind: LoyaltyZero} }

func (c LoyaltyCost) String() string {
	switch c.Kind {
	case LoyaltyPlus:
		return "+" + strconv.Itoa(c.Amount)
	case LoyaltyMinus:
		return "-" + strconv.Itoa(c.Amount)
	case LoyaltyZero:
		return "0"
	case LoyaltyPlusX:
		return "+X"
	case LoyaltyMinusX:
		return "-X"
	}
	return "?"
}

// ParseLoyaltyCost parses a loyalty ability cost. The grammar is
// ('+'|'-')(digits|'X') or the bare literal 0; bare 0 is LoyaltyZero, never
// Plus(0) or Minus(0). Anything else (double signs, bare X, bare non-zero
// integers, empty input) fails.
func ParseLoyaltyCost(s string) (LoyaltyCost, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	switch v {
	case "0":
		return ZeroLoyalty(), nil
	case "+X":
		return LoyaltyCost{Kind: LoyaltyPlusX}, nil
	case "-X":
		return LoyaltyCost{Kind: LoyaltyMinusX}, nil
	}
	if len(v) >= 2 && (v[0] == '+' || v[0] == '-') && isDigits(v[1:]) {
		n, err := strconv.Atoi(v[1:])
		if err != nil {
			return LoyaltyCost{}, fmt.Errorf("loyalty cost %q: %w", s, ErrInvalidLoyaltyCost)
		}
		if v[0] == '+' {
			return PlusLoyalty(n), nil
		}
		return MinusLoyalty(n), nil
	}
	return LoyaltyCost{}, fmt.Errorf("loyalty cost %q: %w", s, ErrInvalidLoyaltyCost)
}

// LoyaltyValue is a planeswalker's starting loyalty: a fixed number or X.
type LoyaltyValue struct {
	Variable bool
	Amount   int
}

// FixedLoyalty returns a fixed starting loyalty.
func FixedLoyalty(n int) LoyaltyValue { return LoyaltyValue{Amount: n} }

// VariableLoyalty returns the X starting loyalty.
func VariableLoyalty() LoyaltyValue { return LoyaltyValue{Variable: true} }

func (v LoyaltyValue) String() string {
	if v.Variable {
		return "X"
	}
	return strconv.Itoa(v.Amount)
}

// ParseLoyaltyValue parses a starting loyalty: unsigned digits or the
// literal X. Signs are never legal here.
func ParseLoyaltyValue(s string) (LoyaltyValue, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if v == "X" {
		return VariableLoyalty(), nil
	}
	if isDigits(v) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return LoyaltyValue{}, fmt.Errorf("loyalty value %q: %w", s, ErrInvalidLoyaltyValue)
		}
		return FixedLoyalty(n), nil
	}
	return LoyaltyValue{}, fmt.Errorf("loyalty value %q: %w", s, ErrInvalidLoyaltyValue)
}
