/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package mana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCastingCostSingleColors(t *testing.T) {
	cases := map[string]Color{
		"{W}": White,
		"{U}": Blue,
		"{B}": Black,
		"{R}": Red,
		"{G}": Green,
	}
	for in, want := range cases {
		cost, err := ParseCastingCost(in)
		require.NoError(t, err, in)
		require.Len(t, cost.Symbols, 1, in)
		assert.Equal(t, ColorSymbol{Color: want}, cost.Symbols[0], in)
	}
}

func TestParseCastingCostColorlessAndGeneric(t *testing.T) {
	cost, err := ParseCastingCost("{C}")
	require.NoError(t, err)
	assert.Equal(t, []CastingSymbol{Colorless{}}, cost.Symbols)

	for _, n := range []int{0, 1, 5, 20} {
		cost, err := ParseCastingCost(Generic{Amount: n}.String())
		require.NoError(t, err)
		assert.Equal(t, []CastingSymbol{Generic{Amount: n}}, cost.Symbols)
	}
}

func TestParseCastingCostVariablesAndSnow(t *testing.T) {
	for _, l := range []string{"X", "Y", "Z"} {
		cost, err := ParseCastingCost("{" + l + "}")
		require.NoError(t, err)
		assert.Equal(t, []CastingSymbol{Variable{Letter: l[0]}}, cost.Symbols)
	}
	cost, err := ParseCastingCost("{S}")
	require.NoError(t, err)
	assert.Equal(t, []CastingSymbol{Snow{}}, cost.Symbols)
}

func TestParseCastingCostHybrid(t *testing.T) {
	cost, err := ParseCastingCost("{W/U}")
	require.NoError(t, err)
	assert.Equal(t, []CastingSymbol{Hybrid{First: White, Second: Blue}}, cost.Symbols)

	// Reversed input normalizes to wheel order.
	rev, err := ParseCastingCost("{U/W}")
	require.NoError(t, err)
	assert.Equal(t, cost.Symbols, rev.Symbols)
	assert.Equal(t, "{W/U}", rev.String())

	all := []struct {
		in   string
		want Hybrid
	}{
		{"{W/B}", Hybrid{White, Black}},
		{"{U/R}", Hybrid{Blue, Red}},
		{"{B/G}", Hybrid{Black, Green}},
		{"{R/G}", Hybrid{Red, Green}},
		{"{G/U}", Hybrid{Blue, Green}},
	}
	for _, tc := range all {
		cost, err := ParseCastingCost(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, []CastingSymbol{tc.want}, cost.Symbols, tc.in)
	}
}

func TestParseCastingCostTwobridAndPhyrexian(t *testing.T) {
	cost, err := ParseCastingCost("{2/W}")
	require.NoError(t, err)
	assert.Equal(t, []CastingSymbol{Twobrid{Color: White}}, cost.Symbols)

	cost, err = ParseCastingCost("{W/P}")
	require.NoError(t, err)
	assert.Equal(t, []CastingSymbol{Phyrexian{Color: White}}, cost.Symbols)

	cost, err = ParseCastingCost("{B/P}")
	require.NoError(t, err)
	assert.Equal(t, "{B/P}", cost.String())
}

func TestParseCastingCostSequenceOrderPreserved(t *testing.T) {
	cost, err := ParseCastingCost("{2}{W}{U}")
	require.NoError(t, err)
	require.Equal(t, []CastingSymbol{Generic{Amount: 2}, ColorSymbol{White}, ColorSymbol{Blue}}, cost.Symbols)
	assert.Equal(t, "{2}{W}{U}", cost.String())
}

func TestParseCastingCostEmptyIsValid(t *testing.T) {
	cost, err := ParseCastingCost("")
	require.NoError(t, err)
	assert.True(t, cost.IsEmpty())
	assert.Equal(t, "", cost.String())
}

func TestParseCastingCostCaseInsensitive(t *testing.T) {
	cost, err := ParseCastingCost("{w/u}{g}")
	require.NoError(t, err)
	assert.Equal(t, "{W/U}{G}", cost.String())
}

func TestParseCastingCostWhitespaceBetweenGroups(t *testing.T) {
	cost, err := ParseCastingCost(" {1} {G} ")
	require.NoError(t, err)
	assert.Equal(t, "{1}{G}", cost.String())
}

func TestParseCastingCostErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"{21}", ErrGenericAmountOutOfRange},
		{"{100}", ErrGenericAmountOutOfRange},
		{"{T}", ErrInvalidSymbolForContext},
		{"{Q}", ErrInvalidSymbolForContext},
		{"{E}", ErrInvalidSymbolForContext},
		{"{CHAOS}", ErrInvalidSymbolForContext},
		{"{W", ErrUnterminatedBrace},
		{"W", ErrUnterminatedBrace},
		{"{W}}", ErrUnterminatedBrace},
		{"{A}", ErrUnknownSymbol},
		{"{}", ErrUnknownSymbol},
		{"{W/W}", ErrMalformedHybrid},
		{"{W/U/B}", ErrMalformedHybrid},
		{"{2/P}", ErrMalformedHybrid},
		{"{3/W}", ErrMalformedHybrid},
	}
	for _, tc := range cases {
		_, err := ParseCastingCost(tc.in)
		require.Error(t, err, tc.in)
		assert.ErrorIs(t, err, tc.want, tc.in)
	}
}

func TestParseActionCostSupersetSymbols(t *testing.T) {
	cost, err := ParseActionCost("{T}")
	require.NoError(t, err)
	assert.Equal(t, []Symbol{Tap{}}, cost.Symbols)

	cost, err = ParseActionCost("{T}{Q}{E}{CHAOS}{2}{U/P}")
	require.NoError(t, err)
	assert.Equal(t, "{T}{Q}{E}{CHAOS}{2}{U/P}", cost.String())
}

func TestParseActionCostStillRejectsGarbage(t *testing.T) {
	_, err := ParseActionCost("{TAP}")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
	_, err = ParseActionCost("{T")
	assert.ErrorIs(t, err, ErrUnterminatedBrace)
}

// Round-trip: display(parse(s)) == s for canonical strings.
func TestCastingCostRoundTrip(t *testing.T) {
	canonical := []string{
		"",
		"{0}",
		"{20}",
		"{G}",
		"{2}{W}{U}",
		"{X}{X}{R}{R}",
		"{W/U}{B/R}{G/P}{2/B}{S}{C}",
		"{1}{W/B}{W/B}",
	}
	for _, s := range canonical {
		cost, err := ParseCastingCost(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, cost.String(), s)
	}
}

func TestCastingCostQueries(t *testing.T) {
	cost, err := ParseCastingCost("{3}{1}{X}{W}{W}{U}{W/U}")
	require.NoError(t, err)
	assert.Equal(t, 4, cost.GenericValue())
	assert.True(t, cost.HasVariable())
	assert.Equal(t, 3, cost.ColoredCount())

	land, err := ParseCastingCost("")
	require.NoError(t, err)
	assert.Equal(t, 0, land.GenericValue())
	assert.False(t, land.HasVariable())
	assert.Equal(t, 0, land.ColoredCount())
}
