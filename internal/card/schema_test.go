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
)

func TestSchemaAcceptsValidDefinition(t *testing.T) {
	y := `
type: normal
name: Llanowar Elves
mana_cost: "{G}"
type_line: "Creature — Elf Druid"
power: "1"
toughness: "1"
rarity: common
`
	violations, err := CheckSchema([]byte(y))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestSchemaRejectsMissingRequiredFields(t *testing.T) {
	violations, err := CheckSchema([]byte("type: normal\nname: Incomplete\n"))
	require.NoError(t, err)
	assert.NotEmpty(t, violations)
}

func TestSchemaRejectsBadRarityAndLayout(t *testing.T) {
	y := `
type: scheme
name: Weird
type_line: "Scheme"
rarity: legendary
`
	violations, err := CheckSchema([]byte(y))
	require.NoError(t, err)
	assert.Len(t, violations, 2)
}

func TestSchemaAcceptsIntegerDefense(t *testing.T) {
	y := `
type: battle
name: "Invasion of Zendikar"
mana_cost: "{3}{G}"
type_line: "Battle — Siege"
defense: 4
rarity: uncommon
`
	violations, err := CheckSchema([]byte(y))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestSchemaRejectsMalformedCostShape(t *testing.T) {
	y := `
type: normal
name: Broken
mana_cost: "2WU"
type_line: "Sorcery"
rarity: common
`
	violations, err := CheckSchema([]byte(y))
	require.NoError(t, err)
	assert.NotEmpty(t, violations)
}

func TestSchemaRejectsNonYAMLInput(t *testing.T) {
	_, err := CheckSchema([]byte("\t{ not yaml"))
	assert.Error(t, err)
}
