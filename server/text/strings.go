package text

import (
	"cmp"
	"maps"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EqualFoldAny reports if s is equal to any of others under Unicode case
// folding.
func EqualFoldAny(s string, others ...string) bool {
	return slices.ContainsFunc(others, func(o string) bool {
		return strings.EqualFold(s, o)
	})
}

// EqualsAny reports if s is exactly equal to any of others.
func EqualsAny(s string, others ...string) bool {
	return slices.Contains(others, s)
}

// StartsAndEndsWith reports if s both starts and ends with affix.
func StartsAndEndsWith(s, affix string, ignoreCase bool) bool {
	if len(s) < len(affix) {
		return false
	}
	if ignoreCase {
		return strings.EqualFold(s[:len(affix)], affix) && strings.EqualFold(s[len(s)-len(affix):], affix)
	}
	return strings.HasPrefix(s, affix) && strings.HasSuffix(s, affix)
}

// StartsAndEndsWithSameRune reports if the first and last rune of s are the
// same. s must hold at least two runes.
func StartsAndEndsWithSameRune(s string, ignoreCase bool) bool {
	if utf8.RuneCountInString(s) < 2 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	if ignoreCase {
		return unicode.ToLower(first) == unicode.ToLower(last)
	}
	return first == last
}

// TrimPrefixes removes the first of prefixes that s starts with.
func TrimPrefixes(s string, prefixes ...string) string {
	for _, p := range prefixes {
		if after, ok := strings.CutPrefix(s, p); ok {
			return after
		}
	}
	return s
}

// TrimSuffixes removes the first of suffixes that s ends with.
func TrimSuffixes(s string, suffixes ...string) string {
	for _, suf := range suffixes {
		if before, ok := strings.CutSuffix(s, suf); ok {
			return before
		}
	}
	return s
}

// Capitalize upper-cases the first rune of s and lower-cases the rest. Leading
// punctuation is left as-is, so "-foo" stays "-foo".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + cases.Lower(language.Und).String(s[size:])
}

// IsCapitalized reports if the first rune of s is an upper-case letter.
func IsCapitalized(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(first)
}

// CapitalizeWords splits s on delim and title-cases every word, joining the
// words with spaces. It is meant for upper snake case identifiers such as
// DARK_GREY, which becomes "Dark Grey".
func CapitalizeWords(s, delim string) string {
	if delim == "" || !strings.Contains(s, delim) {
		return Capitalize(s)
	}
	caser := cases.Title(language.English)
	words := strings.Split(s, delim)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// ReplacePlaceholders replaces every %key in s with the corresponding value.
// Longer keys are replaced first so that %name does not clobber %names.
func ReplacePlaceholders(s string, replacements map[string]string) string {
	keys := slices.Collect(maps.Keys(replacements))
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	for _, k := range keys {
		s = strings.ReplaceAll(s, "%"+k, replacements[k])
	}
	return s
}

var percentageForm = regexp.MustCompile(`^\d+(\.\d+)?%$`)

// IsPercentage reports if s is a non-negative number directly followed by a
// percent sign, such as 10% or 0.5%.
func IsPercentage(s string) bool {
	return percentageForm.MatchString(s)
}
