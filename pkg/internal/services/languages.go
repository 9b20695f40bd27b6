package services

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var languageDetector = sync.OnceValue(func() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.Korean,
			lingua.Japanese,
			lingua.French,
			lingua.German,
			lingua.Spanish,
		).
		Build()
})

// DetectLanguage guesses the language of user written content.
// Returns the lowercase ISO 639-1 code, or an empty string when there is
// nothing to go on.
func DetectLanguage(content string) string {
	if len(strings.TrimSpace(content)) == 0 {
		return ""
	}

	if language, ok := languageDetector().DetectLanguageOf(content); ok {
		return strings.ToLower(language.IsoCode639_1().String())
	}

	return ""
}
