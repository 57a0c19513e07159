package match

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"ats-backend/internal/ats/rubric"
)

func TestKeywords(t *testing.T) {
	result := Keywords(
		"Experienced Python engineer skilled in Docker",
		"Looking for a Python developer with AWS and Docker experience",
		rubric.DefaultVocabulary(),
	)

	// "aws" is dropped by the minimum token length, "with" by the stopword
	// list, and "experience" matches inside "Experienced".
	wantMatched := []string{"python", "docker", "experience"}
	if !reflect.DeepEqual(result.MatchedKeywords, wantMatched) {
		t.Errorf("matched = %v, want %v", result.MatchedKeywords, wantMatched)
	}
	wantMissing := []string{"looking", "developer"}
	if !reflect.DeepEqual(result.MissingKeywords, wantMissing) {
		t.Errorf("missing = %v, want %v", result.MissingKeywords, wantMissing)
	}
	if result.MatchPercentage != 60 {
		t.Errorf("percentage = %d, want 60", result.MatchPercentage)
	}
}

func TestKeywordsCaseInsensitive(t *testing.T) {
	result := Keywords("KUBERNETES operator", "kubernetes", rubric.DefaultVocabulary())
	if len(result.MatchedKeywords) != 1 || result.MatchedKeywords[0] != "kubernetes" {
		t.Fatalf("matched = %v", result.MatchedKeywords)
	}
	if result.MatchPercentage != 100 {
		t.Fatalf("percentage = %d, want 100", result.MatchPercentage)
	}
}

func TestKeywordsNoUsableKeywords(t *testing.T) {
	// Every token is either too short or a stopword.
	result := Keywords("anything", "the and for a an it", rubric.DefaultVocabulary())
	if result.MatchPercentage != 0 {
		t.Fatalf("percentage = %d, want 0", result.MatchPercentage)
	}
	if len(result.MatchedKeywords) != 0 || len(result.MissingKeywords) != 0 {
		t.Fatalf("keyword lists should be empty, got %v / %v",
			result.MatchedKeywords, result.MissingKeywords)
	}
}

func TestKeywordsDeduplicates(t *testing.T) {
	result := Keywords("", "python python Python", rubric.DefaultVocabulary())
	if len(result.MissingKeywords) != 1 || result.MissingKeywords[0] != "python" {
		t.Fatalf("missing = %v, want [python]", result.MissingKeywords)
	}
}

func TestKeywordsPreservesJobOrder(t *testing.T) {
	result := Keywords("", "zebra apple mango", rubric.DefaultVocabulary())
	want := []string{"zebra", "apple", "mango"}
	if !reflect.DeepEqual(result.MissingKeywords, want) {
		t.Fatalf("missing = %v, want %v", result.MissingKeywords, want)
	}
}

func TestKeywordsTruncatesAtThirty(t *testing.T) {
	var words []string
	for i := 0; i < 40; i++ {
		words = append(words, fmt.Sprintf("keyword%02d", i))
	}
	job := strings.Join(words, " ")

	result := Keywords("", job, rubric.DefaultVocabulary())
	if len(result.MissingKeywords) != 30 {
		t.Fatalf("missing = %d entries, want 30", len(result.MissingKeywords))
	}
	if result.MissingKeywords[0] != "keyword00" || result.MissingKeywords[29] != "keyword29" {
		t.Fatalf("truncation lost order: first %s last %s",
			result.MissingKeywords[0], result.MissingKeywords[29])
	}
	// Percentage reflects all keywords, not just the truncated lists.
	if result.MatchPercentage != 0 {
		t.Fatalf("percentage = %d, want 0", result.MatchPercentage)
	}
}

func TestKeywordsSplitsOnPunctuation(t *testing.T) {
	result := Keywords("node.js developer", "Node.js required", rubric.DefaultVocabulary())
	// "node.js" tokenizes into "node" and "js"; only "node" survives the
	// length filter and it is contained in the resume text.
	wantMatched := []string{"node"}
	if !reflect.DeepEqual(result.MatchedKeywords, wantMatched) {
		t.Fatalf("matched = %v, want %v", result.MatchedKeywords, wantMatched)
	}
}
