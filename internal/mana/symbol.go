/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package mana parses the brace-delimited cost notation used in card
// definitions (e.g. "{2}{W/U}{B/P}") into typed symbol sequences, and the
// signed loyalty notation used by planeswalkers.
//
// Two symbol domains exist: CastingSymbol covers everything legal in a
// casting cost, and Symbol additionally admits tap/untap/energy/chaos, which
// only appear in activated-ability costs. The subset relation is expressed
// through the type system so a CastingCost can never hold a tap symbol.
package mana

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is one of the five colors, in color-wheel order. The ordering is
// significant: hybrid symbols display their halves in wheel order.
type Color int

const (
	White Color = iota
	Blue
	Black
	Red
	Green
)

var colorLetters = [...]string{"W", "U", "B", "R", "G"}

// Letter returns the single-letter notation for the color.
func (c Color) Letter() string {
	if c < White || c > Green {
		return "?"
	}
	return colorLetters[c]
}

func (c Color) String() string { return c.Letter() }

// colorFromLetter maps a single letter (already upper-cased) to a color.
func colorFromLetter(s string) (Color, bool) {
	switch s {
	case "W":
		return White, true
	case "U":
		return Blue, true
	case "B":
		return Black, true
	case "R":
		return Red, true
	case "G":
		return Green, true
	}
	return 0, false
}

// Symbol is any symbol that may appear in a cost. The interface is sealed:
// only the types in this package implement it, so a switch over all concrete
// symbol types is exhaustive.
type Symbol interface {
	// String renders the symbol in canonical upper-case brace form.
	String() string
	symbol()
}

// CastingSymbol is the strict subset of Symbol legal in casting costs.
// Tap, Untap, Energy and Chaos deliberately do not implement it.
type CastingSymbol interface {
	Symbol
	castingSymbol()
}

// MaxGenericAmount is the largest numeric amount a generic symbol may carry.
const MaxGenericAmount = 20

// ColorSymbol is a single colored mana symbol, e.g. {W}.
type ColorSymbol struct{ Color Color }

// Colorless is the {C} symbol.
type Colorless struct{}

// Generic is a numeric amount of generic mana, e.g. {0} or {13}.
type Generic struct{ Amount int }

// Variable is one of the variable-amount symbols {X}, {Y} or {Z}.
type Variable struct{ Letter byte }

// Snow is the {S} symbol.
type Snow struct{}

// Hybrid is payable with either of two distinct colors, e.g. {W/U}.
// First always precedes Second in color-wheel order.
type Hybrid struct{ First, Second Color }

// Twobrid is payable with two generic mana or one color, e.g. {2/W}.
type Twobrid struct{ Color Color }

// Phyrexian is payable with one color or by paying life, e.g. {W/P}.
type Phyrexian struct{ Color Color }

// Tap is the {T} symbol (ability costs only).
type Tap struct{}

// Untap is the {Q} symbol (ability costs only).
type Untap struct{}

// Energy is the {E} symbol (ability costs only).
type Energy struct{}

// Chaos is the {CHAOS} symbol (ability costs only).
type Chaos struct{}

func (ColorSymbol) symbol() {}
func (Colorless) symbol()   {}
func (Generic) symbol()     {}
func (Variable) symbol()    {}
func (Snow) symbol()        {}
func (Hybrid) symbol()      {}
func (Twobrid) symbol()     {}
func (Phyrexian) symbol()   {}
func (Tap) symbol()         {}
func (Untap) symbol()       {}
func (Energy) symbol()      {}
func (Chaos) symbol()       {}

func (ColorSymbol) castingSymbol() {}
func (Colorless) castingSymbol()   {}
func (Generic) castingSymbol()     {}
func (Variable) castingSymbol()    {}
func (Snow) castingSymbol()        {}
func (Hybrid) castingSymbol()      {}
func (Twobrid) castingSymbol()     {}
func (Phyrexian) castingSymbol()   {}

func (s ColorSymbol) String() string { return "{" + s.Color.Letter() + "}" }
func (Colorless) String() string     { return "{C}" }
func (s Generic) String() string     { return "{" + strconv.Itoa(s.Amount) + "}" }
func (s Variable) String() string    { return "{" + string(s.Letter) + "}" }
func (Snow) String() string          { return "{S}" }
func (s Hybrid) String() string {
	return "{" + s.First.Letter() + "/" + s.Second.Letter() + "}"
}
func (s Twobrid) String() string   { return "{2/" + s.Color.Letter() + "}" }
func (s Phyrexian) String() string { return "{" + s.Color.Letter() + "/P}" }
func (Tap) String() string         { return "{T}" }
func (Untap) String() string       { return "{Q}" }
func (Energy) String() string      { return "{E}" }
func (Chaos) String() string       { return "{CHAOS}" }

// NewHybrid builds a hybrid symbol in canonical color-wheel order,
// regardless of the argument order.
func NewHybrid(a, b Color) Hybrid {
	if b < a {
		a, b = b, a
	}
	return Hybrid{First: a, Second: b}
}

// parseSymbol resolves the interior of one brace group into a symbol.
// Matching is case-insensitive; each form has a distinct shape so the
// grammar is unambiguous. Pure function, no state.
func parseSymbol(interior string) (Symbol, error) {
	u := strings.ToUpper(strings.TrimSpace(interior))
	if u == "" {
		return nil, fmt.Errorf("empty brace group: %w", ErrUnknownSymbol)
	}
	if u == "CHAOS" {
		return Chaos{}, nil
	}
	if c, ok := colorFromLetter(u); ok {
		return ColorSymbol{Color: c}, nil
	}
	switch u {
	case "C":
		return Colorless{}, nil
	case "X", "Y", "Z":
		return Variable{Letter: u[0]}, nil
	case "S":
		return Snow{}, nil
	case "T":
		return Tap{}, nil
	case "Q":
		return Untap{}, nil
	case "E":
		return Energy{}, nil
	}
	if isDigits(u) {
		n, err := strconv.Atoi(u)
		if err != nil || n > MaxGenericAmount {
			return nil, fmt.Errorf("generic amount %q exceeds %d: %w", u, MaxGenericAmount, ErrGenericAmountOutOfRange)
		}
		return Generic{Amount: n}, nil
	}
	if strings.Contains(u, "/") {
		return parseCompound(u)
	}
	return nil, fmt.Errorf("symbol %q: %w", interior, ErrUnknownSymbol)
}

// parseCompound handles the slash forms: hybrid, twobrid and Phyrexian.
func parseCompound(u string) (Symbol, error) {
	parts := strings.Split(u, "/")
	if len(parts) != 2 {
		return nil, fmt.Errorf("symbol %q: %w", u, ErrMalformedHybrid)
	}
	left, right := parts[0], parts[1]
	if left == "2" {
		if c, ok := colorFromLetter(right); ok {
			return Twobrid{Color: c}, nil
		}
		return nil, fmt.Errorf("twobrid %q: %w", u, ErrMalformedHybrid)
	}
	if right == "P" {
		if c, ok := colorFromLetter(left); ok {
			return Phyrexian{Color: c}, nil
		}
		return nil, fmt.Errorf("phyrexian %q: %w", u, ErrMalformedHybrid)
	}
	a, okA := colorFromLetter(left)
	b, okB := colorFromLetter(right)
	if !okA || !okB || a == b {
		return nil, fmt.Errorf("hybrid %q: %w", u, ErrMalformedHybrid)
	}
	return NewHybrid(a, b), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
