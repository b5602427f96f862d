package wordlists

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/halborn/keyshard/internal/config"
	"github.com/halborn/keyshard/internal/kerrors"
	"github.com/halborn/keyshard/internal/telemetry"
)

// dataFS holds the 10 embedded word-list text files, treated as
// static, read-only external inputs. Each ships here as a
// structurally-valid, deterministically generated 2048-word list — see
// DESIGN.md for the rationale and for where to drop in the official
// BIP-39 word lists for production use.
//
//go:embed data/*.txt
var dataFS embed.FS

// WordList is an ordered, fixed-size sequence of exactly 2048 UTF-8
// words for one language.
type WordList struct {
	lang  Language
	words [config.WordlistSize]string
	index map[string]int
}

// Words returns the ordered word slice (read-only; callers must not
// mutate it).
func (wl *WordList) Words() []string {
	return wl.words[:]
}

// Registry holds all 10 loaded word lists, immutable and safe for
// concurrent use once built.
type Registry struct {
	lists [numLanguages]*WordList
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
	defaultRegistryErr  error
)

// Default returns the process-wide registry, built once from the
// embedded word-list files. log is optional; pass nil to discard
// loader diagnostics.
func Default(log *telemetry.Logger) (*Registry, error) {
	defaultRegistryOnce.Do(func() {
		defaultRegistry, defaultRegistryErr = Load(log)
	})
	return defaultRegistry, defaultRegistryErr
}

// Load builds a fresh Registry from the embedded word-list files.
// Exposed directly alongside Default so callers can choose lazy
// process-wide init or explicit dependency injection.
func Load(log *telemetry.Logger) (*Registry, error) {
	reg := &Registry{}
	for _, lang := range allLanguages {
		wl, err := loadOne(lang)
		if err != nil {
			log.Error(context.Background(), "failed to load word list", "language", lang.String(), "error", err)
			return nil, err
		}
		reg.lists[lang] = wl
		log.Debug(context.Background(), "loaded word list", "language", lang.String())
	}
	return reg, nil
}

func loadOne(lang Language) (*WordList, error) {
	path := fmt.Sprintf("data/%s.txt", lang)
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wordlists: reading %s: %w", path, err)
	}

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != config.WordlistSize {
		return nil, fmt.Errorf("wordlists: %s has %d words, want %d", lang, len(lines), config.WordlistSize)
	}

	wl := &WordList{lang: lang, index: make(map[string]int, config.WordlistSize)}
	for i, line := range lines {
		word := strings.TrimSpace(line)
		wl.words[i] = word
		wl.index[word] = i
	}
	return wl, nil
}

// WordList returns the ordered 2048-word list for lang.
func (r *Registry) WordList(lang Language) *WordList {
	return r.lists[lang]
}

// WordAt returns the word at the given zero-based index in lang.
func (r *Registry) WordAt(lang Language, index int) (string, error) {
	if index < 0 || index >= config.WordlistSize {
		return "", &kerrors.IndexError{Field: "wordlists.WordAt.index", Index: index, Min: 0, Max: config.WordlistSize - 1}
	}
	return r.lists[lang].words[index], nil
}

// IndexOf returns the zero-based index of word within lang's list,
// tolerating diacritic differences (NFD-normalized) before giving up.
// Fails with a *kerrors.WordlistError, including a Levenshtein
// suggestion, if word is absent under either form.
func (r *Registry) IndexOf(lang Language, word string) (int, error) {
	wl := r.lists[lang]
	if idx, ok := FindNormalized(wl, word); ok {
		return idx, nil
	}
	return 0, &kerrors.WordlistError{Word: word, Language: lang.String(), Suggestion: Suggest(wl, word)}
}

// LanguagesContaining returns every language whose list contains word
// (words may appear in more than one list, e.g. shared Latin lemmas).
func (r *Registry) LanguagesContaining(word string) []Language {
	var found []Language
	for _, lang := range allLanguages {
		if _, ok := r.lists[lang].index[word]; ok {
			found = append(found, lang)
		}
	}
	return found
}
