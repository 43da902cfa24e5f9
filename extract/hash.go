// Package extract walks a parse result and produces content items for
// every fragment qualifying under the configured rule set, assigning
// each a content-addressed identifier.
package extract

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hasher derives the base identifier of a fragment body. It must be a
// pure function of the body: identical content anywhere in a document
// yields the identical identifier.
type Hasher func(body string) string

// XXHash returns the 16-hex-character xxHash identifier of body.
func XXHash(body string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(body))
	return hex.EncodeToString(b)
}

// identifierTable guarantees identifier uniqueness per distinct body
// within one extraction run. Two distinct bodies hashing to the same
// base identifier are disambiguated with a deterministic numeric
// suffix; an item is never silently dropped.
type identifierTable struct {
	hash   Hasher
	byID   map[string]string // identifier -> body
	byBody map[string]string // body -> identifier
}

func newIdentifierTable(hash Hasher) *identifierTable {
	return &identifierTable{
		hash:   hash,
		byID:   make(map[string]string),
		byBody: make(map[string]string),
	}
}

// identify returns the identifier for body, minting one on first use.
func (t *identifierTable) identify(body string) string {
	if id, ok := t.byBody[body]; ok {
		return id
	}

	base := t.hash(body)
	id := base
	for n := 2; ; n++ {
		if _, taken := t.byID[id]; !taken {
			break
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}

	t.byID[id] = body
	t.byBody[body] = id
	return id
}
