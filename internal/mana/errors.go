/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package mana

import "errors"

// Sentinel errors for cost and loyalty parsing. Callers classify with
// errors.Is; the wrapped message carries the offending input and position.
var (
	// ErrUnknownSymbol is returned when a brace group does not match any
	// known symbol form.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrUnterminatedBrace is returned when braces are unbalanced or a
	// non-brace character appears between brace groups.
	ErrUnterminatedBrace = errors.New("unterminated brace")

	// ErrMalformedHybrid is returned for a slash-separated group that is
	// not a valid hybrid, twobrid or Phyrexian pair.
	ErrMalformedHybrid = errors.New("malformed hybrid symbol")

	// ErrGenericAmountOutOfRange is returned for numeric symbols outside
	// the 0-20 range.
	ErrGenericAmountOutOfRange = errors.New("generic amount out of range")

	// ErrInvalidSymbolForContext is returned when a casting cost contains
	// a symbol that is only legal in ability costs (tap, untap, energy,
	// chaos).
	ErrInvalidSymbolForContext = errors.New("symbol not allowed in this context")

	// ErrInvalidLoyaltyCost is returned for loyalty ability costs that do
	// not match the loyalty grammar.
	ErrInvalidLoyaltyCost = errors.New("invalid loyalty cost")

	// ErrInvalidLoyaltyValue is returned for starting loyalty values that
	// are neither unsigned integers nor X.
	ErrInvalidLoyaltyValue = errors.New("invalid loyalty value")
)
