// Package record holds the analyzed-string aggregate. A Record is created
// once via Analyze and never mutated.
package record

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Properties are the derived facts of a stored value. They are fully
// determined by the value and computed exactly once.
type Properties struct {
	Length             int
	IsPalindrome       bool
	UniqueCharacters   int
	WordCount          int
	SHA256Hash         string
	CharacterFrequency map[string]int
}

// Record is the unit of storage (immutable value object).
type Record struct {
	value      string
	id         string
	properties Properties
	createdAt  time.Time
}

// Analyze computes a Record from a raw value. It is total and deterministic:
// any string, including the empty string, yields a valid Record, and equal
// values yield identical properties (the timestamp excepted).
func Analyze(value string) Record {
	sum := sha256.Sum256([]byte(value))
	id := hex.EncodeToString(sum[:])

	folded := strings.ToLower(value)

	// Frequency map is built over the case-folded value with whitespace
	// dropped; the unique-character count is the key count of that map, so
	// the two can never disagree.
	freq := make(map[string]int)
	for _, r := range folded {
		if unicode.IsSpace(r) {
			continue
		}
		freq[string(r)]++
	}

	return Record{
		value: value,
		id:    id,
		properties: Properties{
			Length:             utf8.RuneCountInString(value),
			IsPalindrome:       isPalindrome(folded),
			UniqueCharacters:   len(freq),
			WordCount:          len(strings.Fields(value)),
			SHA256Hash:         id,
			CharacterFrequency: freq,
		},
		createdAt: time.Now().UTC(),
	}
}

// Reconstruct creates a Record with an explicit timestamp (test fixtures).
func Reconstruct(value string, createdAt time.Time) Record {
	rec := Analyze(value)
	rec.createdAt = createdAt
	return rec
}

// Value returns the original string exactly as submitted.
func (r *Record) Value() string { return r.value }

// ID returns the content fingerprint: hex-encoded SHA-256 of the value.
func (r *Record) ID() string { return r.id }

// Properties returns the derived facts.
func (r *Record) Properties() Properties { return r.properties }

// CreatedAt returns the insertion timestamp.
func (r *Record) CreatedAt() time.Time { return r.createdAt }

// isPalindrome checks the case-folded value rune-wise. Whitespace and
// punctuation are kept: "madam im adam" is not a palindrome here.
func isPalindrome(folded string) bool {
	runes := []rune(folded)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
