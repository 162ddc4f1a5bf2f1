/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocardgen/internal/mana"
)

func TestDecodeNormalCreature(t *testing.T) {
	y := `
type: normal
name: Llanowar Elves
mana_cost: "{G}"
type_line: "Creature — Elf Druid"
rules_text: "{T}: Add {G}."
flavor_text: "One bone broken for every twig snapped underfoot."
power: "1"
toughness: "1"
rarity: common
`
	c, err := DecodeDefinition([]byte(y))
	require.NoError(t, err)
	n, ok := c.(*Normal)
	require.True(t, ok, "expected *Normal, got %T", c)

	assert.Equal(t, LayoutNormal, n.Layout())
	assert.Equal(t, "Llanowar Elves", n.Name)
	require.NotNil(t, n.ManaCost)
	assert.Equal(t, "{G}", n.ManaCost.String())
	assert.Equal(t, "Creature — Elf Druid", n.TypeLine)
	assert.Equal(t, "{T}: Add {G}.", n.RulesText)
	assert.Equal(t, "1", n.Power)
	assert.Equal(t, "1", n.Toughness)
	assert.Equal(t, RarityCommon, n.Rarity)
}

func TestDecodeNormalLandHasNoCost(t *testing.T) {
	y := `
type: normal
name: Wastes
type_line: "Basic Land"
rules_text: "{T}: Add {C}."
rarity: common
`
	c, err := DecodeDefinition([]byte(y))
	require.NoError(t, err)
	assert.Nil(t, c.Base().ManaCost)
	assert.True(t, c.Base().ManaCostOrEmpty().IsEmpty())
}

func TestDecodePlaneswalker(t *testing.T) {
	y := `
type: planeswalker
name: "Jace, the Mind Sculptor"
mana_cost: "{2}{U}{U}"
type_line: "Legendary Planeswalker — Jace"
rarity: mythic
loyalty: 3
loyalty_abilities:
  - cost: "+2"
    text: "Look at the top card of target player's library."
  - cost: "0"
    text: "Draw three cards, then put two cards back."
  - cost: "-1"
    text: "Return target creature to its owner's hand."
  - cost: "-12"
    text: "Exile all cards from target player's library."
`
	c, err := DecodeDefinition([]byte(y))
	require.NoError(t, err)
	pw, ok := c.(*Planeswalker)
	require.True(t, ok, "expected *Planeswalker, got %T", c)

	require.NotNil(t, pw.Loyalty)
	assert.Equal(t, mana.FixedLoyalty(3), *pw.Loyalty)
	require.Len(t, pw.LoyaltyAbilities, 4)
	assert.Equal(t, mana.PlusLoyalty(2), pw.LoyaltyAbilities[0].Cost)
	assert.Equal(t, mana.ZeroLoyalty(), pw.LoyaltyAbilities[1].Cost)
	assert.Equal(t, mana.MinusLoyalty(1), pw.LoyaltyAbilities[2].Cost)
	assert.Equal(t, mana.MinusLoyalty(12), pw.LoyaltyAbilities[3].Cost)
}

func TestDecodeSaga(t *testing.T) {
	y := `
type: saga
name: "History of Benalia"
mana_cost: "{1}{W}{W}"
type_line: "Enchantment — Saga"
rarity: mythic
chapters:
  - chapters: [1, 2]
    text: "Create a 2/2 white Knight creature token with vigilance."
  - chapters: [3]
    text: "Knights you control get +2/+1 until end of turn."
`
	c, err := DecodeDefinition([]byte(y))
	require.NoError(t, err)
	s, ok := c.(*Saga)
	require.True(t, ok)
	require.Len(t, s.Chapters, 2)
	assert.Equal(t, []ChapterNumber{1, 2}, s.Chapters[0].Chapters)
	assert.Equal(t, []ChapterNumber{3}, s.Chapters[1].Chapters)
}

func TestDecodeRejectsNonPositiveChapterNumbers(t *testing.T) {
	y := `
type: saga
name: "Broken Story"
type_line: "Enchantment — Saga"
rarity: rare
chapters:
  - chapters: [0]
    text: "nope"
`
	_, err := DecodeDefinition([]byte(y))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chapter number 0")
}

func TestDecodeClass(t *testing.T) {
	y := `
type: class
name: "Ranger Class"
mana_cost: "{1}{G}"
type_line: "Enchantment — Class"
rarity: rare
levels:
  - level: 1
    text: "When Ranger Class enters, create a 2/2 green Wolf token."
  - level: 2
    cost: "{2}{G}"
    text: "Whenever you attack, put a +1/+1 counter on target creature."
  - level: 3
    cost: "{3}{G}"
    text: "You may look at the top card of your library any time."
`
	c, err := DecodeDefinition([]byte(y))
	require.NoError(t, err)
	cl, ok := c.(*Class)
	require.True(t, ok)
	require.Len(t, cl.Levels, 3)
	assert.Equal(t, LevelNumber(1), cl.Levels[0].Level)
	assert.Nil(t, cl.Levels[0].Cost)
	require.NotNil(t, cl.Levels[1].Cost)
	assert.Equal(t, "{2}{G}", cl.Levels[1].Cost.String())
}

func TestDecodeRejectsNonPositiveClassLevel(t *testing.T) {
	y := `
type: class
name: "Broken Class"
type_line: "Enchantment — Class"
rarity: rare
levels:
  - level: 0
    text: "nope"
`
	_, err := DecodeDefinition([]byte(y))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class level 0")
}

func TestDecodeAdventure(t *testing.T) {
	y := `
type: adventure
name: "Brazen Borrower"
mana_cost: "{1}{U}{U}"
type_line: "Creature — Faerie Rogue"
power: "3"
toughness: "1"
rarity: mythic
adventure:
  name: "Petty Theft"
  mana_cost: "{1}{U}"
  type_line: "Instant — Adventure"
  rules_text: "Return target nonland permanent an opponent controls to its owner's hand."
`
	c, err := DecodeDefinition([]byte(y))
	require.NoError(t, err)
	a, ok := c.(*Adventure)
	require.True(t, ok)
	assert.Equal(t, "Petty Theft", a.Adventure.Name)
	assert.Equal(t, "{1}{U}", a.Adventure.ManaCost.String())
}

func TestDecodeSplitWithFuse(t *testing.T) {
	y := `
type: split
name: "Wear // Tear"
type_line: "Instant"
rarity: uncommon
fuse: true
faces:
  - name: "Wear"
    mana_cost: "{1}{R}"
    type_line: "Instant"
    rules_text: "Destroy target artifact."
  - name: "Tear"
    mana_cost: "{W}"
    type_line: "Instant"
    rules_text: "Destroy target enchantment."
`
	c, err := DecodeDefinition([]byte(y))
	require.NoError(t, err)
	sp, ok := c.(*Split)
	require.True(t, ok)
	assert.True(t, sp.Fuse)
	assert.False(t, sp.Aftermath)
	require.Len(t, sp.Faces, 2)
	assert.Equal(t, "{1}{R}", sp.Faces[0].ManaCost.String())
}

func TestDecodeTransformFaces(t *testing.T) {
	y := `
type: transform
name: "Delver of Secrets"
mana_cost: "{U}"
type_line: "Creature — Human Wizard"
power: "1"
toughness: "1"
rarity: common
faces:
  - name: "Delver of Secrets"
    mana_cost: "{U}"
    type_line: "Creature — Human Wizard"
    power: "1"
    toughness: "1"
  - name: "Insectile Aberration"
    type_line: "Creature — Human Insect"
    power: "3"
    toughness: "2"
    color_indicator: [U]
`
	c, err := DecodeDefinition([]byte(y))
	require.NoError(t, err)
	tr, ok := c.(*Transform)
	require.True(t, ok)
	require.Len(t, tr.Faces, 2)
	assert.Nil(t, tr.Faces[1].ManaCost)
	assert.Equal(t, []mana.Color{mana.Blue}, tr.Faces[1].ColorIndicator)
}

func TestDecodeModalDfcFlipAndMeld(t *testing.T) {
	for _, layout := range []Layout{LayoutModalDfc, LayoutFlip, LayoutMeld} {
		y := `
type: ` + string(layout) + `
name: "Two Faces"
type_line: "Creature"
power: "2"
toughness: "2"
rarity: rare
faces:
  - name: "Front"
    type_line: "Creature"
    power: "2"
    toughness: "2"
  - name: "Back"
    type_line: "Land"
`
		c, err := DecodeDefinition([]byte(y))
		require.NoError(t, err, layout)
		assert.Equal(t, layout, c.Layout())
	}
}

func TestDecodeBattle(t *testing.T) {
	y := `
type: battle
name: "Invasion of Gobakhan"
mana_cost: "{1}{W}"
type_line: "Battle — Siege"
defense: "3"
rarity: rare
faces:
  - name: "Invasion of Gobakhan"
    type_line: "Battle — Siege"
  - name: "Lightshield Array"
    type_line: "Enchantment"
`
	c, err := DecodeDefinition([]byte(y))
	require.NoError(t, err)
	b, ok := c.(*Battle)
	require.True(t, ok)
	assert.Equal(t, "3", b.Defense)
	assert.Len(t, b.Faces, 2)
}

func TestDecodeBattleUnquotedDefense(t *testing.T) {
	y := `
type: battle
name: "Invasion of Zendikar"
mana_cost: "{3}{G}"
type_line: "Battle — Siege"
defense: 4
rarity: uncommon
`
	c, err := DecodeDefinition([]byte(y))
	require.NoError(t, err)
	b, ok := c.(*Battle)
	require.True(t, ok)
	assert.Equal(t, "4", b.Defense)
}

func TestDecodeLeveler(t *testing.T) {
	y := `
type: leveler
name: "Transcendent Master"
mana_cost: "{W}{W}{W}"
type_line: "Creature — Human Cleric"
power: "3"
toughness: "3"
rarity: mythic
leveler_ranges:
  - range: [0, 5]
    power: "3"
    toughness: "3"
  - range: [6, 11]
    power: "6"
    toughness: "6"
    text: "Lifelink"
  - range: [12, null]
    power: "9"
    toughness: "9"
    text: "Lifelink, indestructible"
`
	c, err := DecodeDefinition([]byte(y))
	require.NoError(t, err)
	lv, ok := c.(*Leveler)
	require.True(t, ok)
	require.Len(t, lv.Ranges, 3)
	assert.Equal(t, 0, lv.Ranges[0].Span.Min)
	require.NotNil(t, lv.Ranges[0].Span.Max)
	assert.Equal(t, 5, *lv.Ranges[0].Span.Max)
	assert.Nil(t, lv.Ranges[2].Span.Max)
	assert.Equal(t, "12+", lv.Ranges[2].Span.String())
}

func TestDecodePrototype(t *testing.T) {
	y := `
type: prototype
name: "Phyrexian Fleshgorger"
mana_cost: "{7}"
type_line: "Artifact Creature — Phyrexian Wurm"
power: "7"
toughness: "5"
rarity: mythic
prototype:
  mana_cost: "{1}{B}{B}"
  power: "3"
  toughness: "3"
`
	c, err := DecodeDefinition([]byte(y))
	require.NoError(t, err)
	p, ok := c.(*Prototype)
	require.True(t, ok)
	require.NotNil(t, p.Prototype.ManaCost)
	assert.Equal(t, "{1}{B}{B}", p.Prototype.ManaCost.String())
}

func TestDecodeRejectsUndeclaredFields(t *testing.T) {
	// chapters is a saga field; a normal card must not carry it.
	y := `
type: normal
name: "Bad Card"
type_line: "Creature"
rarity: common
chapters:
  - chapters: [1]
    text: "nope"
`
	_, err := DecodeDefinition([]byte(y))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chapters")
}

func TestDecodeRejectsUnknownLayout(t *testing.T) {
	_, err := DecodeDefinition([]byte("type: scheme\nname: X\ntype_line: Y\nrarity: common\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownLayout)

	_, err = DecodeDefinition([]byte("name: X\ntype_line: Y\nrarity: common\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownLayout)
}

func TestDecodeRejectsBadCost(t *testing.T) {
	y := `
type: normal
name: "Bad Cost"
mana_cost: "{T}"
type_line: "Sorcery"
rarity: common
`
	_, err := DecodeDefinition([]byte(y))
	require.Error(t, err)
	assert.ErrorIs(t, err, mana.ErrInvalidSymbolForContext)
}

func TestDecodeRejectsBadRarity(t *testing.T) {
	y := `
type: normal
name: "Bad Rarity"
type_line: "Sorcery"
rarity: legendary
`
	_, err := DecodeDefinition([]byte(y))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rarity")
}

// layoutRecorder implements Visitor; the compiler enforces a method per
// variant, which is the exhaustiveness property the model promises.
type layoutRecorder struct {
	seen []Layout
}

func (r *layoutRecorder) VisitNormal(c *Normal)             { r.seen = append(r.seen, c.Layout()) }
func (r *layoutRecorder) VisitPlaneswalker(c *Planeswalker) { r.seen = append(r.seen, c.Layout()) }
func (r *layoutRecorder) VisitSaga(c *Saga)                 { r.seen = append(r.seen, c.Layout()) }
func (r *layoutRecorder) VisitClass(c *Class)               { r.seen = append(r.seen, c.Layout()) }
func (r *layoutRecorder) VisitAdventure(c *Adventure)       { r.seen = append(r.seen, c.Layout()) }
func (r *layoutRecorder) VisitSplit(c *Split)               { r.seen = append(r.seen, c.Layout()) }
func (r *layoutRecorder) VisitFlip(c *Flip)                 { r.seen = append(r.seen, c.Layout()) }
func (r *layoutRecorder) VisitTransform(c *Transform)       { r.seen = append(r.seen, c.Layout()) }
func (r *layoutRecorder) VisitModalDfc(c *ModalDfc)         { r.seen = append(r.seen, c.Layout()) }
func (r *layoutRecorder) VisitBattle(c *Battle)             { r.seen = append(r.seen, c.Layout()) }
func (r *layoutRecorder) VisitMeld(c *Meld)                 { r.seen = append(r.seen, c.Layout()) }
func (r *layoutRecorder) VisitLeveler(c *Leveler)           { r.seen = append(r.seen, c.Layout()) }
func (r *layoutRecorder) VisitPrototype(c *Prototype)       { r.seen = append(r.seen, c.Layout()) }

func TestVisitorCoversAllThirteenVariants(t *testing.T) {
	cards := []Card{
		&Normal{}, &Planeswalker{}, &Saga{}, &Class{}, &Adventure{},
		&Split{}, &Flip{}, &Transform{}, &ModalDfc{}, &Battle{},
		&Meld{}, &Leveler{}, &Prototype{},
	}
	rec := &layoutRecorder{}
	for _, c := range cards {
		c.Accept(rec)
	}
	assert.Equal(t, Layouts, rec.seen)
}
