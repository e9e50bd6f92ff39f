package parser

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"nestflat/internal/ast"
)

const (
	KeywordStruct = ast.KeywordStruct
	KeywordPub    = "pub"
	KeywordWhere  = "where"
	KeywordConst  = "const"
)

// maxSuggestionDistance is the largest edit distance at which a misspelled
// keyword is still suggested.
const maxSuggestionDistance = 2

// suggestKeyword returns keyword if word looks like a misspelling of it,
// and the empty string otherwise.
func suggestKeyword(word string, keyword string) string {
	if word == keyword || len(word) < 3 {
		return ""
	}

	distance := levenshtein.DistanceForStrings(
		[]rune(word),
		[]rune(keyword),
		levenshtein.DefaultOptions,
	)
	if distance > maxSuggestionDistance {
		return ""
	}

	return keyword
}
