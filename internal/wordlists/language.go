// Package wordlists loads and queries the 10 BIP-39 word lists. The
// static *.txt files are external, read-only inputs — this package
// only knows how to load and index them. Grounded on
// internal/core/wordlists.go's embed.FS + sync.Once pattern from the
// rememory codebase, generalized from 6 languages to a closed set of
// 10 and from byte-offset lookups to an explicit per-language index.
package wordlists

import "github.com/halborn/keyshard/internal/kerrors"

// Language is a closed enum of the 10 BIP-39 word list tags.
type Language int

const (
	ChineseSimplified Language = iota
	ChineseTraditional
	Czech
	English
	French
	Italian
	Japanese
	Korean
	Portuguese
	Spanish

	numLanguages
)

// allLanguages lists every closed-enum value, for range loops and the
// registry loader.
var allLanguages = [...]Language{
	ChineseSimplified, ChineseTraditional, Czech, English, French,
	Italian, Japanese, Korean, Portuguese, Spanish,
}

// tag is the canonical lowercase string name of each language, used as
// the embedded filename stem.
var tag = [numLanguages]string{
	ChineseSimplified:  "chinese_simplified",
	ChineseTraditional: "chinese_traditional",
	Czech:              "czech",
	English:            "english",
	French:             "french",
	Italian:            "italian",
	Japanese:           "japanese",
	Korean:             "korean",
	Portuguese:         "portuguese",
	Spanish:            "spanish",
}

// String returns the canonical lowercase tag for lang.
func (lang Language) String() string {
	if lang < 0 || int(lang) >= len(tag) {
		return "unknown"
	}
	return tag[lang]
}

// ParseLanguage resolves a canonical tag string to its Language value.
// Fails with a *kerrors.LanguageError for any tag outside the closed
// enum — the only place a free-form string is allowed to cross into
// the type.
func ParseLanguage(s string) (Language, error) {
	for _, lang := range allLanguages {
		if tag[lang] == s {
			return lang, nil
		}
	}
	return 0, &kerrors.LanguageError{Tag: s}
}
