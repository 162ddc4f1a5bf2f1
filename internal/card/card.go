/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package card models card definitions as a closed set of layout-specific
// shapes. Each of the thirteen layouts is its own type carrying exactly the
// fields meaningful for that layout, so an invalid combination of fields is
// not constructible. Construction happens in decode.go from YAML field bags;
// validate.go runs an advisory warning pass afterwards.
package card

import "gocardgen/internal/mana"

// Layout is the discriminator value selecting a card variant on the wire.
type Layout string

const (
	LayoutNormal       Layout = "normal"
	LayoutPlaneswalker Layout = "planeswalker"
	LayoutSaga         Layout = "saga"
	LayoutClass        Layout = "class"
	LayoutAdventure    Layout = "adventure"
	LayoutSplit        Layout = "split"
	LayoutFlip         Layout = "flip"
	LayoutTransform    Layout = "transform"
	LayoutModalDfc     Layout = "modal_dfc"
	LayoutBattle       Layout = "battle"
	LayoutMeld         Layout = "meld"
	LayoutLeveler      Layout = "leveler"
	LayoutPrototype    Layout = "prototype"
)

// Layouts lists every known layout in wire order.
var Layouts = []Layout{
	LayoutNormal, LayoutPlaneswalker, LayoutSaga, LayoutClass,
	LayoutAdventure, LayoutSplit, LayoutFlip, LayoutTransform,
	LayoutModalDfc, LayoutBattle, LayoutMeld, LayoutLeveler,
	LayoutPrototype,
}

// Card is the closed union over the thirteen layout variants. The interface
// is sealed; consumers dispatch exhaustively through Visitor, so adding a
// variant forces every consumer to be updated at compile time.
type Card interface {
	Layout() Layout
	Base() *CardBase
	Accept(v Visitor)
	sealedCard()
}

// Visitor has one method per card variant. Implementations that miss a
// variant do not compile.
type Visitor interface {
	VisitNormal(c *Normal)
	VisitPlaneswalker(c *Planeswalker)
	VisitSaga(c *Saga)
	VisitClass(c *Class)
	VisitAdventure(c *Adventure)
	VisitSplit(c *Split)
	VisitFlip(c *Flip)
	VisitTransform(c *Transform)
	VisitModalDfc(c *ModalDfc)
	VisitBattle(c *Battle)
	VisitMeld(c *Meld)
	VisitLeveler(c *Leveler)
	VisitPrototype(c *Prototype)
}

// CardBase holds the fields shared by every layout. Power/Toughness are
// strings because values like "*" and "1+*" exist; empty means absent.
type CardBase struct {
	Name       string            `yaml:"name" json:"name"`
	ManaCost   *mana.CastingCost `yaml:"mana_cost,omitempty" json:"mana_cost,omitempty"`
	TypeLine   string            `yaml:"type_line" json:"type_line"`
	RulesText  string            `yaml:"rules_text,omitempty" json:"rules_text,omitempty"`
	FlavorText string            `yaml:"flavor_text,omitempty" json:"flavor_text,omitempty"`
	Power      string            `yaml:"power,omitempty" json:"power,omitempty"`
	Toughness  string            `yaml:"toughness,omitempty" json:"toughness,omitempty"`
	Rarity     Rarity            `yaml:"rarity" json:"rarity"`
}

// ManaCostOrEmpty returns the casting cost, or an empty cost if none is set.
func (b *CardBase) ManaCostOrEmpty() mana.CastingCost {
	if b.ManaCost == nil {
		return mana.CastingCost{}
	}
	return *b.ManaCost
}

// SagaChapter is one chapter entry. Chapters lists the chapter numbers this
// entry answers; combined chapters like [1, 2] share one text.
type SagaChapter struct {
	Chapters []ChapterNumber `yaml:"chapters" json:"chapters"`
	Text     string          `yaml:"text" json:"text"`
}

// ClassLevel is one level of a class enchantment. Cost is the level-up cost
// and is absent on level 1.
type ClassLevel struct {
	Level LevelNumber       `yaml:"level" json:"level"`
	Cost  *mana.CastingCost `yaml:"cost,omitempty" json:"cost,omitempty"`
	Text  string            `yaml:"text" json:"text"`
}

// AdventureHalf is the adventure spell half of an adventure card.
type AdventureHalf struct {
	Name      string           `yaml:"name" json:"name"`
	ManaCost  mana.CastingCost `yaml:"mana_cost" json:"mana_cost"`
	TypeLine  string           `yaml:"type_line" json:"type_line"`
	RulesText string           `yaml:"rules_text" json:"rules_text"`
}

// LoyaltyAbility is one planeswalker ability with its loyalty cost.
type LoyaltyAbility struct {
	Cost mana.LoyaltyCost `yaml:"cost" json:"cost"`
	Text string           `yaml:"text" json:"text"`
}

// LevelRange is one band of a leveler creature.
type LevelRange struct {
	Span      LevelSpan `yaml:"range" json:"range"`
	Power     string    `yaml:"power,omitempty" json:"power,omitempty"`
	Toughness string    `yaml:"toughness,omitempty" json:"toughness,omitempty"`
	Text      string    `yaml:"text,omitempty" json:"text,omitempty"`
}

// Face is one face of a multi-face card (split, flip, transform, modal DFC,
// battle, meld) or the prototype box.
type Face struct {
	Name           string            `yaml:"name,omitempty" json:"name,omitempty"`
	ManaCost       *mana.CastingCost `yaml:"mana_cost,omitempty" json:"mana_cost,omitempty"`
	TypeLine       string            `yaml:"type_line,omitempty" json:"type_line,omitempty"`
	RulesText      string            `yaml:"rules_text,omitempty" json:"rules_text,omitempty"`
	FlavorText     string            `yaml:"flavor_text,omitempty" json:"flavor_text,omitempty"`
	Power          string            `yaml:"power,omitempty" json:"power,omitempty"`
	Toughness      string            `yaml:"toughness,omitempty" json:"toughness,omitempty"`
	ColorIndicator []mana.Color      `yaml:"color_indicator,omitempty" json:"color_indicator,omitempty"`
}

// Normal is a plain single-face card.
type Normal struct {
	CardBase `yaml:",inline"`
}

// Planeswalker carries a starting loyalty and loyalty abilities. Loyalty is
// a pointer so a missing value surfaces as a validator warning instead of a
// decode failure.
type Planeswalker struct {
	CardBase         `yaml:",inline"`
	Loyalty          *mana.LoyaltyValue `yaml:"loyalty,omitempty" json:"loyalty,omitempty"`
	LoyaltyAbilities []LoyaltyAbility   `yaml:"loyalty_abilities,omitempty" json:"loyalty_abilities,omitempty"`
}

// Saga is a chaptered enchantment.
type Saga struct {
	CardBase `yaml:",inline"`
	Chapters []SagaChapter `yaml:"chapters,omitempty" json:"chapters,omitempty"`
}

// Class is a leveled enchantment.
type Class struct {
	CardBase `yaml:",inline"`
	Levels   []ClassLevel `yaml:"levels,omitempty" json:"levels,omitempty"`
}

// Adventure is a permanent with an attached adventure spell half.
type Adventure struct {
	CardBase  `yaml:",inline"`
	Adventure AdventureHalf `yaml:"adventure" json:"adventure"`
}

// Split is a side-by-side two-spell card.
type Split struct {
	CardBase  `yaml:",inline"`
	Faces     []Face `yaml:"faces" json:"faces"`
	Fuse      bool   `yaml:"fuse,omitempty" json:"fuse,omitempty"`
	Aftermath bool   `yaml:"aftermath,omitempty" json:"aftermath,omitempty"`
}

// Flip is a card with an upside-down second half.
type Flip struct {
	CardBase `yaml:",inline"`
	Faces    []Face `yaml:"faces" json:"faces"`
}

// Transform is a double-faced card that transforms.
type Transform struct {
	CardBase `yaml:",inline"`
	Faces    []Face `yaml:"faces" json:"faces"`
}

// ModalDfc is a double-faced card playable from either face.
type ModalDfc struct {
	CardBase `yaml:",inline"`
	Faces    []Face `yaml:"faces" json:"faces"`
}

// Battle is a siege with a defense counter total. The backside uses the
// shared two-face shape rather than a dedicated field pair. Defense is a
// string so an absent value becomes a validator warning, matching power and
// toughness handling.
type Battle struct {
	CardBase `yaml:",inline"`
	Defense  string `yaml:"defense,omitempty" json:"defense,omitempty"`
	Faces    []Face `yaml:"faces,omitempty" json:"faces,omitempty"`
}

// Meld is one part of a meld pair; the melded face rides along.
type Meld struct {
	CardBase `yaml:",inline"`
	Faces    []Face `yaml:"faces" json:"faces"`
}

// Leveler is a creature with level-up bands.
type Leveler struct {
	CardBase `yaml:",inline"`
	Ranges   []LevelRange `yaml:"leveler_ranges" json:"leveler_ranges"`
}

// Prototype is a card with an alternate prototype casting box.
type Prototype struct {
	CardBase  `yaml:",inline"`
	Prototype Face `yaml:"prototype" json:"prototype"`
}

func (c *Normal) Layout() Layout       { return LayoutNormal }
func (c *Planeswalker) Layout() Layout { return LayoutPlaneswalker }
func (c *Saga) Layout() Layout         { return LayoutSaga }
func (c *Class) Layout() Layout        { return LayoutClass }
func (c *Adventure) Layout() Layout    { return LayoutAdventure }
func (c *Split) Layout() Layout        { return LayoutSplit }
func (c *Flip) Layout() Layout         { return LayoutFlip }
func (c *Transform) Layout() Layout    { return LayoutTransform }
func (c *ModalDfc) Layout() Layout     { return LayoutModalDfc }
func (c *Battle) Layout() Layout       { return LayoutBattle }
func (c *Meld) Layout() Layout         { return LayoutMeld }
func (c *Leveler) Layout() Layout      { return LayoutLeveler }
func (c *Prototype) Layout() Layout    { return LayoutPrototype }

func (c *Normal) Base() *CardBase       { return &c.CardBase }
func (c *Planeswalker) Base() *CardBase { return &c.CardBase }
func (c *Saga) Base() *CardBase         { return &c.CardBase }
func (c *Class) Base() *CardBase        { return &c.CardBase }
func (c *Adventure) Base() *CardBase    { return &c.CardBase }
func (c *Split) Base() *CardBase        { return &c.CardBase }
func (c *Flip) Base() *CardBase         { return &c.CardBase }
func (c *Transform) Base() *CardBase    { return &c.CardBase }
func (c *ModalDfc) Base() *CardBase     { return &c.CardBase }
func (c *Battle) Base() *CardBase       { return &c.CardBase }
func (c *Meld) Base() *CardBase         { return &c.CardBase }
func (c *Leveler) Base() *CardBase      { return &c.CardBase }
func (c *Prototype) Base() *CardBase    { return &c.CardBase }

func (c *Normal) Accept(v Visitor)       { v.VisitNormal(c) }
func (c *Planeswalker) Accept(v Visitor) { v.VisitPlaneswalker(c) }
func (c *Saga) Accept(v Visitor)         { v.VisitSaga(c) }
func (c *Class) Accept(v Visitor)        { v.VisitClass(c) }
func (c *Adventure) Accept(v Visitor)    { v.VisitAdventure(c) }
func (c *Split) Accept(v Visitor)        { v.VisitSplit(c) }
func (c *Flip) Accept(v Visitor)         { v.VisitFlip(c) }
func (c *Transform) Accept(v Visitor)    { v.VisitTransform(c) }
func (c *ModalDfc) Accept(v Visitor)     { v.VisitModalDfc(c) }
func (c *Battle) Accept(v Visitor)       { v.VisitBattle(c) }
func (c *Meld) Accept(v Visitor)         { v.VisitMeld(c) }
func (c *Leveler) Accept(v Visitor)      { v.VisitLeveler(c) }
func (c *Prototype) Accept(v Visitor)    { v.VisitPrototype(c) }

func (c *Normal) sealedCard()       {}
func (c *Planeswalker) sealedCard() {}
func (c *Saga) sealedCard()         {}
func (c *Class) sealedCard()        {}
func (c *Adventure) sealedCard()    {}
func (c *Split) sealedCard()        {}
func (c *Flip) sealedCard()         {}
func (c *Transform) sealedCard()    {}
func (c *ModalDfc) sealedCard()     {}
func (c *Battle) sealedCard()       {}
func (c *Meld) sealedCard()         {}
func (c *Leveler) sealedCard()      {}
func (c *Prototype) sealedCard()    {}
