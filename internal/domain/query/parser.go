// Package query maps free-text English queries onto structured filter sets.
// The grammar is a small fixed set of recognized phrases, evaluated in order
// over the case-folded query text; it is not general NLP.
package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/strandhq/strand/internal/domain"
	"github.com/strandhq/strand/internal/domain/filter"
)

var (
	longerThanRe  = regexp.MustCompile(`longer than (\d+)`)
	shorterThanRe = regexp.MustCompile(`shorter than (\d+)`)
	wordCountRe   = regexp.MustCompile(`\b(\d+)[ -]words?\b`)
	// The specific letter phrase is checked before the generic one so the
	// two never double-apply.
	containsLetterRe  = regexp.MustCompile(`containing the letter ([a-z])`)
	containsGenericRe = regexp.MustCompile(`containing ([a-z])\b`)
)

// Parse interprets a natural-language query as a filter set. All matching
// phrases contribute to the same set; a query with no recognized phrase
// fails with domain.ErrUnparsableQuery. Recognized phrases:
//
//	"palindrome" / "palindromic"      -> is_palindrome = true
//	"single word" / "single-word"     -> word_count = 1
//	"longer than N"                   -> min_length = N+1
//	"shorter than N"                  -> max_length = N-1
//	"N words" / "N-word"              -> word_count = N
//	"containing the letter X"         -> contains_character = X
//	"containing X"                    -> contains_character = X
func Parse(text string) (filter.Set, error) {
	q := strings.ToLower(strings.TrimSpace(text))

	var (
		isPalindrome *bool
		minLength    *int
		maxLength    *int
		wordCount    *int
		contains     string
	)
	matched := false

	if strings.Contains(q, "palindrome") || strings.Contains(q, "palindromic") {
		v := true
		isPalindrome = &v
		matched = true
	}

	if strings.Contains(q, "single word") || strings.Contains(q, "single-word") {
		v := 1
		wordCount = &v
		matched = true
	}

	if m := longerThanRe.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			v := n + 1 // strictly longer
			minLength = &v
			matched = true
		}
	}

	if m := shorterThanRe.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			v := n - 1 // strictly shorter
			maxLength = &v
			matched = true
		}
	}

	if wordCount == nil {
		if m := wordCountRe.FindStringSubmatch(q); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				wordCount = &n
				matched = true
			}
		}
	}

	if m := containsLetterRe.FindStringSubmatch(q); m != nil {
		contains = m[1]
		matched = true
	} else if m := containsGenericRe.FindStringSubmatch(q); m != nil {
		contains = m[1]
		matched = true
	}

	if !matched {
		return filter.Set{}, fmt.Errorf("no recognized phrase in %q: %w", text, domain.ErrUnparsableQuery)
	}

	set, err := filter.New(isPalindrome, minLength, maxLength, wordCount, contains)
	if err != nil {
		// Phrases were recognized but contradict each other, e.g.
		// "longer than 10 and shorter than 3".
		return filter.Set{}, fmt.Errorf("%v: %w", err, domain.ErrUnparsableQuery)
	}
	return set, nil
}
