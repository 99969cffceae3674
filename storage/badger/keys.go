package badger

import (
	"encoding/binary"
)

// Key prefixes for different data types
const (
	entryPrefix       = "ent:"
	entryIDPrefix     = "entid:"
	metadataPrefix    = "entmeta:"
	currentGeneration = "entcur"
	generationSeq     = "entgenseq"
)

// appendUint64 writes v in BigEndian order so lexicographic sort works correctly.
func appendUint64(buf []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(buf, v)
}

// makeGenerationPrefix generates the prefix shared by one generation's keys.
// Format: prefix:generation
func makeGenerationPrefix(prefix string, gen uint64) []byte {
	buf := make([]byte, 0, len(prefix)+8)
	buf = append(buf, prefix...)
	return appendUint64(buf, gen)
}

// makeEntryKey generates a key for an entry by its corpus position.
// Format: prefix:generation:position
func makeEntryKey(gen, position uint64) []byte {
	return appendUint64(makeGenerationPrefix(entryPrefix, gen), position)
}

// makeEntryIDKey generates a composite key for the id index.
// Format: prefix:generation:id
func makeEntryIDKey(gen uint64, id string) []byte {
	return append(makeGenerationPrefix(entryIDPrefix, gen), id...)
}

// makeMetadataKey generates a key for a generation's metadata.
func makeMetadataKey(gen uint64) []byte {
	return makeGenerationPrefix(metadataPrefix, gen)
}

// generationPrefixes lists every prefix owned by a generation.
func generationPrefixes(gen uint64) [][]byte {
	return [][]byte{
		makeGenerationPrefix(entryPrefix, gen),
		makeGenerationPrefix(entryIDPrefix, gen),
		makeMetadataKey(gen),
	}
}

// generationOf extracts the generation from a key under prefix.
func generationOf(prefix string, key []byte) (uint64, bool) {
	if len(key) < len(prefix)+8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(key[len(prefix):]), true
}

func encodeUint64(v uint64) []byte {
	return appendUint64(nil, v)
}

func decodeUint64(b []byte) (uint64, bool) {
	if len(b) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(b), true
}
