package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/strandhq/strand/internal/domain/record"
)

func init() {
	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze a string without storing it",
		Long:  "Run the analyzer on the given text and print the derived properties as JSON.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAnalyze,
	}

	RootCmd.AddCommand(cmd)
}

type analyzeOutput struct {
	ID         string `json:"id"`
	Value      string `json:"value"`
	Properties struct {
		Length                int            `json:"length"`
		IsPalindrome          bool           `json:"is_palindrome"`
		UniqueCharacters      int            `json:"unique_characters"`
		WordCount             int            `json:"word_count"`
		SHA256Hash            string         `json:"sha256_hash"`
		CharacterFrequencyMap map[string]int `json:"character_frequency_map"`
	} `json:"properties"`
	CreatedAt time.Time `json:"created_at"`
}

func runAnalyze(cmd *cobra.Command, args []string) {
	rec := record.Analyze(strings.Join(args, " "))

	var out analyzeOutput
	out.ID = rec.ID()
	out.Value = rec.Value()
	out.Properties.Length = rec.Properties().Length
	out.Properties.IsPalindrome = rec.Properties().IsPalindrome
	out.Properties.UniqueCharacters = rec.Properties().UniqueCharacters
	out.Properties.WordCount = rec.Properties().WordCount
	out.Properties.SHA256Hash = rec.Properties().SHA256Hash
	out.Properties.CharacterFrequencyMap = rec.Properties().CharacterFrequency
	out.CreatedAt = rec.CreatedAt()

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: marshal: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(b))
}
