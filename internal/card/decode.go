/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package card

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownLayout is returned when a definition has no type tag or one
// outside the closed layout set.
var ErrUnknownLayout = errors.New("unknown card layout")

// header is read leniently first, only to route on the discriminator.
type header struct {
	Type Layout `yaml:"type"`
}

// doc wraps a variant for strict decoding so the discriminator itself is a
// known field.
type doc[T any] struct {
	Type Layout `yaml:"type"`
	Card T      `yaml:",inline"`
}

// decodeVariant strict-decodes the field bag for one variant. Any field not
// declared for the variant is rejected here, before a Card value exists.
func decodeVariant[T any](data []byte) (*T, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var d doc[T]
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode card fields: %w", err)
	}
	return &d.Card, nil
}

// DecodeDefinition turns one YAML card definition into its Card variant.
// The type tag selects the variant; the remaining fields are decoded
// strictly so every populated field is one the variant declares. The
// returned value is immutable by convention: nothing in this package
// mutates a Card after construction.
func DecodeDefinition(data []byte) (Card, error) {
	var h header
	if err := yaml.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("read card definition: %w", err)
	}
	switch h.Type {
	case LayoutNormal:
		return asCard(decodeVariant[Normal](data))
	case LayoutPlaneswalker:
		return asCard(decodeVariant[Planeswalker](data))
	case LayoutSaga:
		return asCard(decodeVariant[Saga](data))
	case LayoutClass:
		return asCard(decodeVariant[Class](data))
	case LayoutAdventure:
		return asCard(decodeVariant[Adventure](data))
	case LayoutSplit:
		return asCard(decodeVariant[Split](data))
	case LayoutFlip:
		return asCard(decodeVariant[Flip](data))
	case LayoutTransform:
		return asCard(decodeVariant[Transform](data))
	case LayoutModalDfc:
		return asCard(decodeVariant[ModalDfc](data))
	case LayoutBattle:
		return asCard(decodeVariant[Battle](data))
	case LayoutMeld:
		return asCard(decodeVariant[Meld](data))
	case LayoutLeveler:
		return asCard(decodeVariant[Leveler](data))
	case LayoutPrototype:
		return asCard(decodeVariant[Prototype](data))
	case "":
		return nil, fmt.Errorf("card definition has no type tag: %w", ErrUnknownLayout)
	default:
		return nil, fmt.Errorf("type %q: %w", h.Type, ErrUnknownLayout)
	}
}

// asCard narrows a decoded variant pointer to the Card interface while
// keeping a typed nil out of the interface on error.
func asCard[T any, P interface {
	*T
	Card
}](v *T, err error) (Card, error) {
	if err != nil {
		return nil, err
	}
	return P(v), nil
}
