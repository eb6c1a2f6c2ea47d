package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// MatchKind classifies how a submitted token relates to the expected one.
type MatchKind string

const (
	MatchExact                MatchKind = "exact"
	MatchGrammaticalVariation MatchKind = "grammatical_variation"
	MatchSpelling             MatchKind = "spelling"
	MatchWrong                MatchKind = "wrong"
)

// irregularPlurals maps singular to plural for nouns the suffix rules
// cannot reach. Extend freely; lookups run in both directions.
var irregularPlurals = map[string]string{
	"child":      "children",
	"foot":       "feet",
	"mouse":      "mice",
	"person":     "people",
	"index":      "indices",
	"vertex":     "vertices",
	"matrix":     "matrices",
	"man":        "men",
	"woman":      "women",
	"tooth":      "teeth",
	"goose":      "geese",
	"ox":         "oxen",
	"criterion":  "criteria",
	"phenomenon": "phenomena",
	"datum":      "data",
	"cactus":     "cacti",
	"louse":      "lice",
}

// irregularVerbs maps a base verb to its irregular inflected forms.
var irregularVerbs = map[string][]string{
	"be":     {"am", "is", "are", "was", "were", "been", "being"},
	"go":     {"goes", "went", "gone", "going"},
	"do":     {"does", "did", "done", "doing"},
	"have":   {"has", "had", "having"},
	"eat":    {"ate", "eaten"},
	"run":    {"ran", "running"},
	"see":    {"saw", "seen"},
	"take":   {"took", "taken"},
	"give":   {"gave", "given"},
	"come":   {"came"},
	"write":  {"wrote", "written"},
	"speak":  {"spoke", "spoken"},
	"teach":  {"taught"},
	"buy":    {"bought"},
	"bring":  {"brought"},
	"think":  {"thought"},
	"catch":  {"caught"},
	"swim":   {"swam", "swum", "swimming"},
	"begin":  {"began", "begun", "beginning"},
	"break":  {"broke", "broken"},
	"choose": {"chose", "chosen"},
}

// MorphologyMatcher decides whether a mismatched token is an inflection of
// the expected token, a near-miss spelling, or simply a different word.
type MorphologyMatcher struct{}

// NewMorphologyMatcher creates a new MorphologyMatcher instance.
func NewMorphologyMatcher() *MorphologyMatcher {
	return &MorphologyMatcher{}
}

// Classify compares actual against expected. Comparison is case-insensitive
// and trims surrounding whitespace. Grammar rules are checked before the
// edit-distance spelling threshold: an inflected form can sit within the
// spelling distance by construction, and must still classify as a
// grammatical variation.
func (m *MorphologyMatcher) Classify(expected, actual string) MatchKind {
	e := strings.ToLower(strings.TrimSpace(expected))
	a := strings.ToLower(strings.TrimSpace(actual))

	if e == a {
		return MatchExact
	}
	if e == "" || a == "" {
		return MatchWrong
	}
	if m.isGrammaticalVariant(e, a) || m.isGrammaticalVariant(a, e) {
		return MatchGrammaticalVariation
	}
	if withinSpellingDistance(e, a) {
		return MatchSpelling
	}
	return MatchWrong
}

// withinSpellingDistance applies the bounded edit-distance check: one edit
// for short words, two for words longer than five runes.
func withinSpellingDistance(expected, actual string) bool {
	limit := 1
	if utf8.RuneCountInString(expected) > 5 {
		limit = 2
	}
	return levenshtein.Distance(expected, actual, nil) <= limit
}

// isGrammaticalVariant reports whether form is reachable from base by a
// plural or verb inflection rule. Both arguments must be lowercased.
func (m *MorphologyMatcher) isGrammaticalVariant(base, form string) bool {
	if plural, ok := irregularPlurals[base]; ok && plural == form {
		return true
	}
	for _, candidate := range pluralForms(base) {
		if candidate == form {
			return true
		}
	}
	if inflections, ok := irregularVerbs[base]; ok {
		for _, candidate := range inflections {
			if candidate == form {
				return true
			}
		}
	}
	for _, candidate := range verbForms(base) {
		if candidate == form {
			return true
		}
	}
	return false
}

// pluralForms generates the regular plural candidates of a stem.
func pluralForms(stem string) []string {
	forms := []string{stem + "s"}

	for _, suffix := range []string{"s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(stem, suffix) {
			forms = append(forms, stem+"es")
			break
		}
	}
	if n := len(stem); n > 1 && strings.HasSuffix(stem, "y") && !isVowel(rune(stem[n-2])) {
		forms = append(forms, stem[:n-1]+"ies")
	}
	if strings.HasSuffix(stem, "fe") {
		forms = append(forms, stem[:len(stem)-2]+"ves")
	} else if strings.HasSuffix(stem, "f") {
		forms = append(forms, stem[:len(stem)-1]+"ves")
	}
	if strings.HasSuffix(stem, "o") {
		forms = append(forms, stem+"es")
	}
	return forms
}

// verbForms generates the regular verb inflection candidates of a stem:
// progressive, third person and past forms.
func verbForms(stem string) []string {
	forms := []string{
		stem + "ing",
		stem + "s",
		stem + "es",
		stem + "ed",
		stem + "d",
	}
	if strings.HasSuffix(stem, "e") && len(stem) > 1 {
		forms = append(forms, stem[:len(stem)-1]+"ing")
	}
	if n := len(stem); n > 1 && strings.HasSuffix(stem, "y") && !isVowel(rune(stem[n-2])) {
		forms = append(forms, stem[:n-1]+"ies", stem[:n-1]+"ied")
	}
	return forms
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
