package record

import (
	"testing"
	"time"
)

func TestAnalyze_Palindrome(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"Madam", true},
		{"noon", true},
		{"hello", false},
		{"madam im adam", false}, // interior spaces are not stripped
		{"a b a", true},          // symmetric including spaces
		{"", true},
		{"x", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			rec := Analyze(tt.value)
			if got := rec.Properties().IsPalindrome; got != tt.want {
				t.Errorf("IsPalindrome(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestAnalyze_WordCount(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"hello", 1},
		{"a b  c", 3},
		{"  leading and trailing  ", 3},
		{"tab\tseparated\twords", 3},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			rec := Analyze(tt.value)
			if got := rec.Properties().WordCount; got != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestAnalyze_UniqueCharactersAndFrequency(t *testing.T) {
	rec := Analyze("aabB")

	if got := rec.Properties().UniqueCharacters; got != 2 {
		t.Errorf("UniqueCharacters = %d, want 2", got)
	}

	freq := rec.Properties().CharacterFrequency
	if len(freq) != 2 {
		t.Fatalf("frequency map has %d keys, want 2: %v", len(freq), freq)
	}
	if freq["a"] != 2 || freq["b"] != 2 {
		t.Errorf("frequency map = %v, want a:2 b:2", freq)
	}
}

func TestAnalyze_FrequencyExcludesWhitespace(t *testing.T) {
	rec := Analyze("a a\tb\n")

	freq := rec.Properties().CharacterFrequency
	if _, ok := freq[" "]; ok {
		t.Error("frequency map must not contain spaces")
	}
	if _, ok := freq["\t"]; ok {
		t.Error("frequency map must not contain tabs")
	}
	if freq["a"] != 2 || freq["b"] != 1 {
		t.Errorf("frequency map = %v, want a:2 b:1", freq)
	}
	// Unique-character count is exactly the key count.
	if got := rec.Properties().UniqueCharacters; got != len(freq) {
		t.Errorf("UniqueCharacters = %d, want %d", got, len(freq))
	}
}

func TestAnalyze_LengthCountsRunes(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 0},
		{"hello", 5},
		{"héllo", 5},
		{"日本語", 3},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			rec := Analyze(tt.value)
			if got := rec.Properties().Length; got != tt.want {
				t.Errorf("Length(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := Analyze("determinism")
	b := Analyze("determinism")

	if a.ID() != b.ID() {
		t.Errorf("IDs differ: %q vs %q", a.ID(), b.ID())
	}
	if a.Properties().SHA256Hash != a.ID() {
		t.Error("SHA256Hash must equal ID")
	}
	if len(a.ID()) != 64 {
		t.Errorf("ID length = %d, want 64 hex chars", len(a.ID()))
	}
}

func TestAnalyze_PreservesCase(t *testing.T) {
	rec := Analyze("MiXeD CaSe")
	if rec.Value() != "MiXeD CaSe" {
		t.Errorf("Value() = %q, want original casing", rec.Value())
	}
}

func TestReconstruct_SetsTimestamp(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := Reconstruct("fixed", ts)

	if !rec.CreatedAt().Equal(ts) {
		t.Errorf("CreatedAt = %v, want %v", rec.CreatedAt(), ts)
	}
	want := Analyze("fixed")
	if rec.ID() != want.ID() {
		t.Error("Reconstruct must derive the same ID as Analyze")
	}
}
