// Package filter defines the structured constraint set applied to stored
// records and its conjunctive evaluator.
package filter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/strandhq/strand/internal/domain/record"
)

// Set is a partial specification of constraints. An unset field imposes no
// constraint; the zero Set matches every record.
type Set struct {
	isPalindrome *bool
	minLength    *int
	maxLength    *int
	wordCount    *int
	// Lower-cased single character; empty means unset.
	containsCharacter string
}

// New validates and creates a Set. Nil pointers mean "unset"; an empty
// containsCharacter means "unset".
func New(isPalindrome *bool, minLength, maxLength, wordCount *int, containsCharacter string) (Set, error) {
	if minLength != nil && *minLength < 0 {
		return Set{}, fmt.Errorf("min_length must be non-negative, got %d", *minLength)
	}
	if maxLength != nil && *maxLength < 0 {
		return Set{}, fmt.Errorf("max_length must be non-negative, got %d", *maxLength)
	}
	if minLength != nil && maxLength != nil && *minLength > *maxLength {
		return Set{}, fmt.Errorf("min_length %d exceeds max_length %d", *minLength, *maxLength)
	}
	if wordCount != nil && *wordCount < 0 {
		return Set{}, fmt.Errorf("word_count must be non-negative, got %d", *wordCount)
	}
	if containsCharacter != "" && utf8.RuneCountInString(containsCharacter) != 1 {
		return Set{}, fmt.Errorf("contains_character must be a single character, got %q", containsCharacter)
	}
	return Set{
		isPalindrome:      isPalindrome,
		minLength:         minLength,
		maxLength:         maxLength,
		wordCount:         wordCount,
		containsCharacter: strings.ToLower(containsCharacter),
	}, nil
}

// IsPalindrome returns the palindrome constraint, nil if unset.
func (s Set) IsPalindrome() *bool { return s.isPalindrome }

// MinLength returns the inclusive lower length bound, nil if unset.
func (s Set) MinLength() *int { return s.minLength }

// MaxLength returns the inclusive upper length bound, nil if unset.
func (s Set) MaxLength() *int { return s.maxLength }

// WordCount returns the exact word-count constraint, nil if unset.
func (s Set) WordCount() *int { return s.wordCount }

// ContainsCharacter returns the lower-cased character constraint, "" if unset.
func (s Set) ContainsCharacter() string { return s.containsCharacter }

// IsEmpty reports whether no constraint is set.
func (s Set) IsEmpty() bool {
	return s.isPalindrome == nil &&
		s.minLength == nil &&
		s.maxLength == nil &&
		s.wordCount == nil &&
		s.containsCharacter == ""
}

// Matches evaluates every set field as an AND predicate against the record.
func (s Set) Matches(rec record.Record) bool {
	props := rec.Properties()

	if s.isPalindrome != nil && props.IsPalindrome != *s.isPalindrome {
		return false
	}
	if s.minLength != nil && props.Length < *s.minLength {
		return false
	}
	if s.maxLength != nil && props.Length > *s.maxLength {
		return false
	}
	if s.wordCount != nil && props.WordCount != *s.wordCount {
		return false
	}
	if s.containsCharacter != "" &&
		!strings.Contains(strings.ToLower(rec.Value()), s.containsCharacter) {
		return false
	}
	return true
}
