/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package card

import (
	"fmt"
	"strings"
)

// WarningCode tags an advisory diagnostic.
type WarningCode int

const (
	MissingPowerToughness WarningCode = iota
	MissingLoyaltyData
	MissingChapters
	MissingDefense
)

var warningCodeNames = [...]string{
	"MissingPowerToughness",
	"MissingLoyaltyData",
	"MissingChapters",
	"MissingDefense",
}

func (c WarningCode) String() string {
	if c < MissingPowerToughness || c > MissingDefense {
		return "Unknown"
	}
	return warningCodeNames[c]
}

// Warning is an advisory diagnostic about a conventionally-expected but
// missing field. Warnings never fail anything; the card remains usable.
type Warning struct {
	Code    WarningCode
	Card    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s (%s)", w.Card, w.Message, w.Code)
}

// Validate runs the advisory pass over a constructed card and returns zero
// or more warnings. It is pure and never fails. The pass is a Visitor so the
// variant dispatch stays exhaustive.
func Validate(c Card) []Warning {
	chk := &checker{name: c.Base().Name}
	c.Accept(chk)
	return chk.warnings
}

type checker struct {
	name     string
	warnings []Warning
}

func (ch *checker) add(code WarningCode, format string, args ...interface{}) {
	ch.warnings = append(ch.warnings, Warning{
		Code:    code,
		Card:    ch.name,
		Message: fmt.Sprintf(format, args...),
	})
}

func isCreatureTyped(typeLine string) bool {
	return strings.Contains(strings.ToLower(typeLine), "creature")
}

// checkBasePT flags creature-typed bases missing power or toughness.
func (ch *checker) checkBasePT(b *CardBase) {
	if isCreatureTyped(b.TypeLine) && (b.Power == "" || b.Toughness == "") {
		ch.add(MissingPowerToughness, "creature card is missing power or toughness")
	}
}

// checkFacesPT flags creature-typed faces missing power or toughness.
func (ch *checker) checkFacesPT(faces []Face) {
	for i, f := range faces {
		if isCreatureTyped(f.TypeLine) && (f.Power == "" || f.Toughness == "") {
			name := f.Name
			if name == "" {
				name = fmt.Sprintf("face %d", i+1)
			}
			ch.add(MissingPowerToughness, "creature face %q is missing power or toughness", name)
		}
	}
}

func (ch *checker) VisitNormal(c *Normal) { ch.checkBasePT(&c.CardBase) }

func (ch *checker) VisitPlaneswalker(c *Planeswalker) {
	if c.Loyalty == nil {
		ch.add(MissingLoyaltyData, "planeswalker has no starting loyalty")
	}
	if len(c.LoyaltyAbilities) == 0 {
		ch.add(MissingLoyaltyData, "planeswalker has no loyalty abilities")
	}
}

func (ch *checker) VisitSaga(c *Saga) {
	if len(c.Chapters) == 0 {
		ch.add(MissingChapters, "saga has no chapters")
	}
}

func (ch *checker) VisitClass(c *Class) {}

func (ch *checker) VisitAdventure(c *Adventure) { ch.checkBasePT(&c.CardBase) }

func (ch *checker) VisitSplit(c *Split) {}

func (ch *checker) VisitFlip(c *Flip) { ch.checkFacesPT(c.Faces) }

func (ch *checker) VisitTransform(c *Transform) { ch.checkFacesPT(c.Faces) }

func (ch *checker) VisitModalDfc(c *ModalDfc) {}

func (ch *checker) VisitBattle(c *Battle) {
	if c.Defense == "" {
		ch.add(MissingDefense, "battle has no defense")
	}
}

func (ch *checker) VisitMeld(c *Meld) { ch.checkFacesPT(c.Faces) }

func (ch *checker) VisitLeveler(c *Leveler) {}

func (ch *checker) VisitPrototype(c *Prototype) {}
