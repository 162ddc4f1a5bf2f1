/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package card

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// LevelSpan is a leveler band: Min up to Max, or open-ended when Max is nil.
// The wire form is a two-element sequence, e.g. [1, 3] or [7, null].
type LevelSpan struct {
	Min int
	Max *int
}

func (s LevelSpan) String() string {
	if s.Max == nil {
		return fmt.Sprintf("%d+", s.Min)
	}
	return fmt.Sprintf("%d-%d", s.Min, *s.Max)
}

func (s *LevelSpan) UnmarshalYAML(value *yaml.Node) error {
	var raw []*int
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("line %d: level range must be a [min, max] sequence: %w", value.Line, err)
	}
	if len(raw) != 2 || raw[0] == nil {
		return fmt.Errorf("line %d: level range must be [min, max] with null max for open-ended", value.Line)
	}
	if raw[1] != nil && *raw[1] < *raw[0] {
		return fmt.Errorf("line %d: level range max %d below min %d", value.Line, *raw[1], *raw[0])
	}
	s.Min = *raw[0]
	s.Max = raw[1]
	return nil
}

func (s LevelSpan) MarshalYAML() (interface{}, error) {
	return []*int{&s.Min, s.Max}, nil
}

func (s LevelSpan) MarshalJSON() ([]byte, error) {
	return json.Marshal([]*int{&s.Min, s.Max})
}

// ChapterNumber is a 1-based saga chapter number.
type ChapterNumber int

func (n *ChapterNumber) UnmarshalYAML(value *yaml.Node) error {
	var v int
	if err := value.Decode(&v); err != nil {
		return fmt.Errorf("line %d: chapter number must be an integer: %w", value.Line, err)
	}
	if v < 1 {
		return fmt.Errorf("line %d: chapter number %d must be positive", value.Line, v)
	}
	*n = ChapterNumber(v)
	return nil
}

// LevelNumber is a 1-based class level.
type LevelNumber int

func (n *LevelNumber) UnmarshalYAML(value *yaml.Node) error {
	var v int
	if err := value.Decode(&v); err != nil {
		return fmt.Errorf("line %d: class level must be an integer: %w", value.Line, err)
	}
	if v < 1 {
		return fmt.Errorf("line %d: class level %d must be positive", value.Line, v)
	}
	*n = LevelNumber(v)
	return nil
}
