// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/poiesic/compendium/core"
)

// MarshalEntry serializes a ResolvedEntry to bytes.
// The entry is followed by a presence flag and, when set, its Details.
func MarshalEntry(entry *core.ResolvedEntry) []byte {
	hasDetails := entry.Details != nil
	size := core.ResolvedEntryMUS.Size(*entry) + ord.Bool.Size(hasDetails)
	if hasDetails {
		size += core.DetailsMUS.Size(entry.Details)
	}
	buf := make([]byte, size)
	n := core.ResolvedEntryMUS.Marshal(*entry, buf)
	n += ord.Bool.Marshal(hasDetails, buf[n:])
	if hasDetails {
		core.DetailsMUS.Marshal(entry.Details, buf[n:])
	}
	return buf
}

// UnmarshalEntry deserializes a ResolvedEntry from bytes.
// Empty collections decode as nil, matching freshly resolved entries.
func UnmarshalEntry(data []byte) (*core.ResolvedEntry, error) {
	if len(data) == 0 {
		return nil, ErrTruncatedData
	}
	entry, n, err := core.ResolvedEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: entry: %w", ErrSerializationFailed, err)
	}
	hasDetails, n1, err := ord.Bool.Unmarshal(data[n:])
	n += n1
	if err != nil {
		return nil, fmt.Errorf("%w: entry details flag: %w", ErrSerializationFailed, err)
	}
	if hasDetails {
		entry.Details, n1, err = core.DetailsMUS.Unmarshal(data[n:])
		n += n1
		if err != nil {
			return nil, fmt.Errorf("%w: entry details: %w", ErrSerializationFailed, err)
		}
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: entry: %d trailing bytes", ErrSerializationFailed, len(data)-n)
	}
	compactEntry(&entry)
	return &entry, nil
}

func compactEntry(e *core.ResolvedEntry) {
	e.Traits = nilIfEmpty(e.Traits)
	e.Traditions = nilIfEmpty(e.Traditions)
	switch d := e.Details.(type) {
	case core.CreatureDetails:
		d.Senses = nilIfEmpty(d.Senses)
		d.Languages = nilIfEmpty(d.Languages)
		d.Skills = nilIfEmpty(d.Skills)
		d.Abilities = nilIfEmpty(d.Abilities)
		d.Immunities = nilIfEmpty(d.Immunities)
		d.Resistances = nilIfEmpty(d.Resistances)
		d.Weaknesses = nilIfEmpty(d.Weaknesses)
		e.Details = d
	case core.FeatDetails:
		d.Prerequisites = nilIfEmpty(d.Prerequisites)
		e.Details = d
	}
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

// MarshalMetadata serializes snapshot Metadata to bytes.
func MarshalMetadata(meta *core.Metadata) []byte {
	buf := make([]byte, core.MetadataMUS.Size(*meta))
	core.MetadataMUS.Marshal(*meta, buf)
	return buf
}

// UnmarshalMetadata deserializes snapshot Metadata from bytes.
func UnmarshalMetadata(data []byte) (*core.Metadata, error) {
	if len(data) == 0 {
		return nil, ErrTruncatedData
	}
	meta, _, err := core.MetadataMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: metadata: %w", ErrSerializationFailed, err)
	}
	return &meta, nil
}
